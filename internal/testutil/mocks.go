package testutil

import (
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockReportRepository is a mock for ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Save(report domain.Report) (domain.Report, error) {
	args := m.Called(report)
	return args.Get(0).(domain.Report), args.Error(1)
}

func (m *MockReportRepository) Recent(limit int) ([]domain.Report, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Report), args.Error(1)
}

func (m *MockReportRepository) Query(filter domain.ReportFilter) ([]domain.Report, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Report), args.Error(1)
}

func (m *MockReportRepository) AggregateBy(dim domain.Dimension, rng *domain.DateRange) ([]domain.DimensionStat, error) {
	args := m.Called(dim, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DimensionStat), args.Error(1)
}
