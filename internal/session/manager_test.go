package session

import (
	"testing"
	"time"

	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestManager_StartAndGet(t *testing.T) {
	m := NewManager()

	assert.Nil(t, m.Get(123))

	draft := m.Start(123)
	assert.Equal(t, int64(123), draft.UserID)
	assert.Equal(t, domain.StepBoat, draft.Step)
	assert.Same(t, draft, m.Get(123))
	assert.Equal(t, 1, m.Active())
}

func TestManager_StartReplacesDraft(t *testing.T) {
	m := NewManager()

	first := m.Start(123)
	first.BoatName = "BoatA"

	second := m.Start(123)
	assert.NotSame(t, first, second)
	assert.Empty(t, second.BoatName)
	assert.Equal(t, 1, m.Active())
}

func TestManager_Cancel(t *testing.T) {
	m := NewManager()
	m.Start(123)

	m.Cancel(123)
	assert.Nil(t, m.Get(123))

	// Cancelling without a draft is a no-op
	m.Cancel(456)
	assert.Equal(t, 0, m.Active())
}

func TestManager_DraftsAreIndependent(t *testing.T) {
	m := NewManager()

	a := m.Start(1)
	b := m.Start(2)
	a.BoatName = "BoatA"

	assert.Empty(t, b.BoatName)
	assert.Equal(t, 2, m.Active())

	m.Cancel(1)
	assert.Nil(t, m.Get(1))
	assert.NotNil(t, m.Get(2))
}

func TestManager_EvictIdle(t *testing.T) {
	m := NewManager()

	stale := m.Start(1)
	stale.UpdatedAt = time.Now().Add(-13 * time.Hour)
	m.Start(2)

	evicted := m.EvictIdle(12 * time.Hour)

	assert.Equal(t, 1, evicted)
	assert.Nil(t, m.Get(1))
	assert.NotNil(t, m.Get(2))
}

func TestManager_TouchKeepsDraftAlive(t *testing.T) {
	m := NewManager()

	draft := m.Start(1)
	draft.UpdatedAt = time.Now().Add(-13 * time.Hour)

	m.Touch(1)

	assert.Equal(t, 0, m.EvictIdle(12*time.Hour))
	assert.NotNil(t, m.Get(1))
}
