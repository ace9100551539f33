package repository

import (
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"
)

// ReportRepository defines report persistence operations. Reports are
// append-only; there are no update or delete paths.
type ReportRepository interface {
	Save(report domain.Report) (domain.Report, error)
	Recent(limit int) ([]domain.Report, error)
	Query(filter domain.ReportFilter) ([]domain.Report, error)
	AggregateBy(dim domain.Dimension, rng *domain.DateRange) ([]domain.DimensionStat, error)
}
