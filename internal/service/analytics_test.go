package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"testing"
	"time"

	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_AggregateBy(t *testing.T) {
	// {(BoatA, 10L), (BoatA, 20L), (BoatB, 5L)} grouped by boat
	stats := []domain.DimensionStat{
		{Key: "BoatA", TotalLiters: 30, ReportCount: 2, AvgLiters: 15},
		{Key: "BoatB", TotalLiters: 5, ReportCount: 1, AvgLiters: 5},
	}

	mockRepo := new(testutil.MockReportRepository)
	mockRepo.On("AggregateBy", domain.DimensionBoat, (*domain.DateRange)(nil)).Return(stats, nil)

	service := NewAnalyticsService(mockRepo, testutil.NewTestLogger())

	got, err := service.AggregateBy(domain.DimensionBoat, nil)
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	// Group totals add up to the liters over all reports
	var total float64
	var count int
	for _, s := range got {
		total += s.TotalLiters
		count += s.ReportCount
	}
	assert.Equal(t, 35.0, total)
	assert.Equal(t, 3, count)
}

func TestAnalyticsService_AggregateBy_Empty(t *testing.T) {
	mockRepo := new(testutil.MockReportRepository)
	mockRepo.On("AggregateBy", domain.DimensionProgram, mock.Anything).
		Return([]domain.DimensionStat{}, nil)

	service := NewAnalyticsService(mockRepo, testutil.NewTestLogger())

	got, err := service.AggregateBy(domain.DimensionProgram, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnalyticsService_AggregateBy_Error(t *testing.T) {
	mockRepo := new(testutil.MockReportRepository)
	mockRepo.On("AggregateBy", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("db error"))

	service := NewAnalyticsService(mockRepo, testutil.NewTestLogger())

	_, err := service.AggregateBy(domain.DimensionBoat, nil)
	assert.Error(t, err)
}

func TestAnalyticsService_EfficiencyRanking(t *testing.T) {
	// Repo rows come ordered by total liters descending
	stats := []domain.DimensionStat{
		{Key: "BoatA", TotalLiters: 60, ReportCount: 3, AvgLiters: 20},
		{Key: "BoatC", TotalLiters: 30, ReportCount: 2, AvgLiters: 15},
		{Key: "BoatB", TotalLiters: 15, ReportCount: 1, AvgLiters: 15},
		{Key: "BoatD", TotalLiters: 5, ReportCount: 1, AvgLiters: 5},
	}

	mockRepo := new(testutil.MockReportRepository)
	mockRepo.On("AggregateBy", domain.DimensionBoat, (*domain.DateRange)(nil)).Return(stats, nil)

	service := NewAnalyticsService(mockRepo, testutil.NewTestLogger())

	ranked, err := service.EfficiencyRanking(domain.DimensionBoat, nil)
	require.NoError(t, err)
	require.Len(t, ranked, 4)

	// Lowest average first, ties broken by key name ascending
	assert.Equal(t, "BoatD", ranked[0].Key)
	assert.Equal(t, "BoatB", ranked[1].Key)
	assert.Equal(t, "BoatC", ranked[2].Key)
	assert.Equal(t, "BoatA", ranked[3].Key)

	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].AvgLiters, ranked[i].AvgLiters)
	}

	// The aggregate order itself is untouched
	got, err := service.AggregateBy(domain.DimensionBoat, nil)
	require.NoError(t, err)
	assert.Equal(t, "BoatA", got[0].Key)
}

func TestAnalyticsService_ExportCSV(t *testing.T) {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		{ID: 1, UserID: 111, BoatName: "BoatA", CaptainName: "Andrey", ProgramName: "Sunset Cruise", PierName: "Central Pier", Liters: 10, CreatedAt: base},
		{ID: 2, UserID: 111, BoatName: "BoatA", CaptainName: "Andrey", ProgramName: "N/A", PrivateRoute: "Secret Lagoon", PierName: "Central Pier", Liters: 20, CreatedAt: base.Add(time.Hour)},
		{ID: 3, UserID: 222, BoatName: "BoatB", CaptainName: "Maksim", ProgramName: "Fishing Tour", PierName: "North Dock", Liters: 5, CreatedAt: base.Add(2 * time.Hour)},
	}

	mockRepo := new(testutil.MockReportRepository)
	mockRepo.On("Query", domain.ReportFilter{}).Return(reports, nil)

	service := NewAnalyticsService(mockRepo, testutil.NewTestLogger())

	data, err := service.ExportCSV(nil)
	require.NoError(t, err)

	// Leading BOM for Excel
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	rows, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)

	// One header row plus one row per report, in creation order
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"timestamp", "boat", "captain", "program", "pier", "liters", "user"}, rows[0])
	assert.Equal(t, []string{"2026-08-20 10:00:00", "BoatA", "Andrey", "Sunset Cruise", "Central Pier", "10", "111"}, rows[1])
	assert.Equal(t, "N/A → Secret Lagoon", rows[2][3])
	assert.Equal(t, []string{"2026-08-20 12:00:00", "BoatB", "Maksim", "Fishing Tour", "North Dock", "5", "222"}, rows[3])
}

func TestAnalyticsService_ExportCSV_Empty(t *testing.T) {
	mockRepo := new(testutil.MockReportRepository)
	mockRepo.On("Query", mock.Anything).Return([]domain.Report{}, nil)

	service := NewAnalyticsService(mockRepo, testutil.NewTestLogger())

	data, err := service.ExportCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestAnalyticsService_FormatDimension(t *testing.T) {
	service := NewAnalyticsService(new(testutil.MockReportRepository), testutil.NewTestLogger())

	stats := []domain.DimensionStat{
		{Key: "BoatA", TotalLiters: 30, ReportCount: 2, AvgLiters: 15},
		{Key: "BoatB", TotalLiters: 5, ReportCount: 1, AvgLiters: 5},
	}

	text := service.FormatDimension(domain.DimensionBoat, stats, nil)

	assert.Contains(t, text, "Boat Analytics")
	assert.Contains(t, text, "🥇 *BoatA*")
	assert.Contains(t, text, "🥈 *BoatB*")
	assert.Contains(t, text, "15.0L")

	empty := service.FormatDimension(domain.DimensionBoat, nil, nil)
	assert.Contains(t, empty, "No data for selected period.")
}
