package domain

import "time"

// Step is the current position of a report draft in the form flow.
type Step string

const (
	StepBoat         Step = "boat"
	StepCaptain      Step = "captain"
	StepProgram      Step = "program"
	StepPrivateRoute Step = "private_route"
	StepPier         Step = "pier"
	StepLiters       Step = "liters"
	StepPhotos       Step = "photos"
	StepConfirm      Step = "confirm"
)

// Draft holds the fields collected so far for one in-progress report.
// It lives only in memory and is discarded on completion or cancellation.
type Draft struct {
	UserID          int64
	Step            Step
	History         []Step // visited steps, for "back" navigation
	BoatName        string
	CaptainName     string
	ProgramName     string
	PrivateRoute    string
	PierName        string
	Liters          float64
	OdometerPhotoID string
	ReceiptPhotoID  string
	Editing         bool // set while revisiting a single step from confirmation
	UpdatedAt       time.Time
}

// NewDraft starts an empty draft at the first step.
func NewDraft(userID int64) *Draft {
	return &Draft{
		UserID:    userID,
		Step:      StepBoat,
		History:   []Step{StepBoat},
		UpdatedAt: time.Now(),
	}
}

// Complete reports whether all required fields are filled.
func (d *Draft) Complete() bool {
	if d.BoatName == "" || d.CaptainName == "" || d.ProgramName == "" || d.PierName == "" {
		return false
	}
	if d.ProgramName == PrivateTourProgram && d.PrivateRoute == "" {
		return false
	}
	return d.Liters > 0
}

// ToReport converts a complete draft into a report ready for persistence.
func (d *Draft) ToReport() Report {
	return Report{
		UserID:          d.UserID,
		BoatName:        d.BoatName,
		CaptainName:     d.CaptainName,
		ProgramName:     d.ProgramName,
		PrivateRoute:    d.PrivateRoute,
		PierName:        d.PierName,
		Liters:          d.Liters,
		OdometerPhotoID: d.OdometerPhotoID,
		ReceiptPhotoID:  d.ReceiptPhotoID,
	}
}
