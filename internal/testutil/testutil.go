package testutil

import (
	"time"

	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/dictionary"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestDictionary creates a small fixed dictionary
func NewTestDictionary() *dictionary.Dictionary {
	return dictionary.New(
		[]string{"Andrey", "Maksim"},
		[]string{"BoatA", "BoatB"},
		[]string{"Sunset Cruise", "N/A"},
		[]string{"Central Pier", "North Dock"},
	)
}

// NewTestReport creates a test report
func NewTestReport(id int64, boat, captain string, liters float64) domain.Report {
	return domain.Report{
		ID:          id,
		UserID:      123,
		BoatName:    boat,
		CaptainName: captain,
		ProgramName: "Sunset Cruise",
		PierName:    "Central Pier",
		Liters:      liters,
		CreatedAt:   time.Now(),
	}
}

// NewCompleteDraft creates a draft with all required fields filled
func NewCompleteDraft(userID int64) *domain.Draft {
	draft := domain.NewDraft(userID)
	draft.BoatName = "BoatA"
	draft.CaptainName = "Andrey"
	draft.ProgramName = "Sunset Cruise"
	draft.PierName = "Central Pier"
	draft.Liters = 25.5
	draft.Step = domain.StepConfirm
	return draft
}
