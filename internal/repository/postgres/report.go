package postgres

import (
	"database/sql"
	"fmt"

	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"
)

// ReportRepo implements repository.ReportRepository
type ReportRepo struct {
	db *sql.DB
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// dimensionColumn maps an analytics dimension to its grouping column.
func dimensionColumn(dim domain.Dimension) (string, error) {
	switch dim {
	case domain.DimensionBoat:
		return "boat_name", nil
	case domain.DimensionCaptain:
		return "captain_name", nil
	case domain.DimensionProgram:
		return "program_name", nil
	}
	return "", fmt.Errorf("unknown dimension: %s", dim)
}

// Save inserts a confirmed report and returns it with the assigned
// identifier and creation timestamp.
func (r *ReportRepo) Save(report domain.Report) (domain.Report, error) {
	query := `
		INSERT INTO reports (user_id, boat_name, captain_name, program_name, private_route, pier_name, liters, odometer_photo_id, receipt_photo_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(query,
		report.UserID,
		report.BoatName,
		report.CaptainName,
		report.ProgramName,
		nullString(report.PrivateRoute),
		report.PierName,
		report.Liters,
		nullString(report.OdometerPhotoID),
		nullString(report.ReceiptPhotoID),
	).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return domain.Report{}, err
	}

	return report, nil
}

// Recent returns the latest reports by creation time, newest first.
func (r *ReportRepo) Recent(limit int) ([]domain.Report, error) {
	query := `
		SELECT id, user_id, boat_name, captain_name, program_name, private_route, pier_name, liters, odometer_photo_id, receipt_photo_id, created_at
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReports(rows)
}

// Query returns reports matching the filter, oldest first so that exports
// come out in creation order.
func (r *ReportRepo) Query(filter domain.ReportFilter) ([]domain.Report, error) {
	query := `
		SELECT id, user_id, boat_name, captain_name, program_name, private_route, pier_name, liters, odometer_photo_id, receipt_photo_id, created_at
		FROM reports
		WHERE ($1 = '' OR boat_name = $1)
			AND ($2 = '' OR captain_name = $2)
			AND ($3 = '' OR program_name = $3)
			AND ($4::timestamptz IS NULL OR created_at >= $4)
			AND ($5::timestamptz IS NULL OR created_at <= $5)
		ORDER BY created_at ASC
	`
	var start, end sql.NullTime
	if filter.Range != nil {
		start = sql.NullTime{Time: filter.Range.Start, Valid: true}
		end = sql.NullTime{Time: filter.Range.End, Valid: true}
	}

	rows, err := r.db.Query(query, filter.BoatName, filter.CaptainName, filter.ProgramName, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReports(rows)
}

// AggregateBy groups reports over the range and returns totals, counts and
// averages ordered by total liters descending, ties by key name ascending.
func (r *ReportRepo) AggregateBy(dim domain.Dimension, rng *domain.DateRange) ([]domain.DimensionStat, error) {
	column, err := dimensionColumn(dim)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s, SUM(liters), COUNT(*), AVG(liters)
		FROM reports
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
			AND ($2::timestamptz IS NULL OR created_at <= $2)
		GROUP BY %s
		ORDER BY SUM(liters) DESC, %s ASC
	`, column, column, column)

	var start, end sql.NullTime
	if rng != nil {
		start = sql.NullTime{Time: rng.Start, Valid: true}
		end = sql.NullTime{Time: rng.End, Valid: true}
	}

	rows, err := r.db.Query(query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.DimensionStat
	for rows.Next() {
		var s domain.DimensionStat
		if err := rows.Scan(&s.Key, &s.TotalLiters, &s.ReportCount, &s.AvgLiters); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

func scanReports(rows *sql.Rows) ([]domain.Report, error) {
	var reports []domain.Report
	for rows.Next() {
		var rep domain.Report
		var privateRoute, odometerPhoto, receiptPhoto sql.NullString
		err := rows.Scan(
			&rep.ID, &rep.UserID, &rep.BoatName, &rep.CaptainName, &rep.ProgramName,
			&privateRoute, &rep.PierName, &rep.Liters, &odometerPhoto, &receiptPhoto, &rep.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		rep.PrivateRoute = privateRoute.String
		rep.OdometerPhotoID = odometerPhoto.String
		rep.ReceiptPhotoID = receiptPhoto.String
		reports = append(reports, rep)
	}

	return reports, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
