package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodConstructors(t *testing.T) {
	tests := []struct {
		name     string
		rng      DateRange
		wantDays float64
	}{
		{
			name:     "last week",
			rng:      LastWeek(),
			wantDays: 7,
		},
		{
			name:     "last month",
			rng:      LastMonth(),
			wantDays: 30,
		},
		{
			name:     "last 3 months",
			rng:      Last3Months(),
			wantDays: 90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rng.End.Sub(tt.rng.Start).Hours() / 24
			assert.InDelta(t, tt.wantDays, got, 0.1)
			assert.True(t, tt.rng.Start.Before(tt.rng.End))
		})
	}
}

func TestThisMonth(t *testing.T) {
	rng := ThisMonth()
	now := time.Now()

	assert.Equal(t, 1, rng.Start.Day())
	assert.Equal(t, now.Month(), rng.Start.Month())
	assert.False(t, rng.End.Before(rng.Start))
}

func TestDateRange_DisplayString(t *testing.T) {
	rng := DateRange{
		Start: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "01.08 — 25.08.2026", rng.DisplayString())
}
