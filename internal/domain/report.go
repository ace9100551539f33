package domain

import "time"

// PrivateTourProgram is the program value that marks a private tour.
// A report with this program carries a free-text route label.
const PrivateTourProgram = "N/A"

// Report is a single confirmed fuel report. Reports are created once at
// the confirmation step and never mutated or deleted afterwards.
type Report struct {
	ID              int64
	UserID          int64
	BoatName        string
	CaptainName     string
	ProgramName     string
	PrivateRoute    string // route label for private tours, empty otherwise
	PierName        string
	Liters          float64
	OdometerPhotoID string
	ReceiptPhotoID  string
	CreatedAt       time.Time
}

// ProgramLabel returns the program name with the private tour route appended.
func (r Report) ProgramLabel() string {
	if r.PrivateRoute != "" {
		return r.ProgramName + " → " + r.PrivateRoute
	}
	return r.ProgramName
}

// Dimension is a grouping axis for analytics.
type Dimension string

const (
	DimensionBoat    Dimension = "boat"
	DimensionCaptain Dimension = "captain"
	DimensionProgram Dimension = "program"
)

// DimensionStat is one aggregate row for a grouping key.
type DimensionStat struct {
	Key         string
	TotalLiters float64
	ReportCount int
	AvgLiters   float64
}

// ReportFilter constrains store queries. Zero values mean "no constraint".
type ReportFilter struct {
	BoatName    string
	CaptainName string
	ProgramName string
	Range       *DateRange
}
