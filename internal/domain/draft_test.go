package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeDraft() *Draft {
	d := NewDraft(123)
	d.BoatName = "BoatA"
	d.CaptainName = "Andrey"
	d.ProgramName = "Sunset Cruise"
	d.PierName = "Central Pier"
	d.Liters = 25.5
	return d
}

func TestDraft_Complete(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Draft)
		expected bool
	}{
		{
			name:     "all required fields filled",
			mutate:   func(d *Draft) {},
			expected: true,
		},
		{
			name:     "missing boat",
			mutate:   func(d *Draft) { d.BoatName = "" },
			expected: false,
		},
		{
			name:     "missing captain",
			mutate:   func(d *Draft) { d.CaptainName = "" },
			expected: false,
		},
		{
			name:     "missing pier",
			mutate:   func(d *Draft) { d.PierName = "" },
			expected: false,
		},
		{
			name:     "zero liters",
			mutate:   func(d *Draft) { d.Liters = 0 },
			expected: false,
		},
		{
			name:     "negative liters",
			mutate:   func(d *Draft) { d.Liters = -5 },
			expected: false,
		},
		{
			name: "private tour without route",
			mutate: func(d *Draft) {
				d.ProgramName = PrivateTourProgram
				d.PrivateRoute = ""
			},
			expected: false,
		},
		{
			name: "private tour with route",
			mutate: func(d *Draft) {
				d.ProgramName = PrivateTourProgram
				d.PrivateRoute = "Secret Lagoon"
			},
			expected: true,
		},
		{
			name:     "photos are optional",
			mutate:   func(d *Draft) { d.OdometerPhotoID = ""; d.ReceiptPhotoID = "" },
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := completeDraft()
			tt.mutate(draft)
			assert.Equal(t, tt.expected, draft.Complete())
		})
	}
}

func TestNewDraft(t *testing.T) {
	draft := NewDraft(42)

	assert.Equal(t, int64(42), draft.UserID)
	assert.Equal(t, StepBoat, draft.Step)
	assert.Equal(t, []Step{StepBoat}, draft.History)
	assert.False(t, draft.UpdatedAt.IsZero())
}

func TestDraft_ToReport(t *testing.T) {
	draft := completeDraft()
	draft.OdometerPhotoID = "photo-1"

	report := draft.ToReport()

	assert.Equal(t, int64(123), report.UserID)
	assert.Equal(t, "BoatA", report.BoatName)
	assert.Equal(t, "Andrey", report.CaptainName)
	assert.Equal(t, "Sunset Cruise", report.ProgramName)
	assert.Equal(t, "Central Pier", report.PierName)
	assert.Equal(t, 25.5, report.Liters)
	assert.Equal(t, "photo-1", report.OdometerPhotoID)
	assert.Zero(t, report.ID)
	assert.True(t, report.CreatedAt.IsZero())
}

func TestReport_ProgramLabel(t *testing.T) {
	report := Report{ProgramName: "N/A", PrivateRoute: "Secret Lagoon"}
	assert.Equal(t, "N/A → Secret Lagoon", report.ProgramLabel())

	report = Report{ProgramName: "Sunset Cruise"}
	assert.Equal(t, "Sunset Cruise", report.ProgramLabel())
}
