package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/repository"

	"go.uber.org/zap"
)

// csvHeader is the fixed export layout, one row per report.
var csvHeader = []string{"timestamp", "boat", "captain", "program", "pier", "liters", "user"}

// utf8BOM makes Excel detect the encoding when the file is opened directly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// AnalyticsService computes grouped statistics over stored reports.
type AnalyticsService struct {
	reportRepo repository.ReportRepository
	logger     *zap.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(reportRepo repository.ReportRepository, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// AggregateBy returns per-key totals over the range, ordered by total
// liters descending with ties broken by key name. An empty range means
// all time; no data yields an empty slice.
func (s *AnalyticsService) AggregateBy(dim domain.Dimension, rng *domain.DateRange) ([]domain.DimensionStat, error) {
	stats, err := s.reportRepo.AggregateBy(dim, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by %s: %w", dim, err)
	}
	return stats, nil
}

// EfficiencyRanking re-sorts the same aggregates by average liters per
// report ascending (lowest consumption first), ties by key name.
func (s *AnalyticsService) EfficiencyRanking(dim domain.Dimension, rng *domain.DateRange) ([]domain.DimensionStat, error) {
	stats, err := s.AggregateBy(dim, rng)
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.DimensionStat, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AvgLiters != ranked[j].AvgLiters {
			return ranked[i].AvgLiters < ranked[j].AvgLiters
		}
		return ranked[i].Key < ranked[j].Key
	})

	return ranked, nil
}

// ExportCSV serializes every report in the range to CSV, one row per
// report in creation order, with a header row and a UTF-8 BOM.
func (s *AnalyticsService) ExportCSV(rng *domain.DateRange) ([]byte, error) {
	reports, err := s.reportRepo.Query(domain.ReportFilter{Range: rng})
	if err != nil {
		return nil, fmt.Errorf("failed to query reports for export: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, r := range reports {
		row := []string{
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.BoatName,
			r.CaptainName,
			r.ProgramLabel(),
			r.PierName,
			strconv.FormatFloat(r.Liters, 'f', -1, 64),
			strconv.FormatInt(r.UserID, 10),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	s.logger.Info("CSV export generated", zap.Int("reports", len(reports)))

	return buf.Bytes(), nil
}

// FormatDimension renders one dimension's aggregates for the chat, with
// medals for the top three consumers.
func (s *AnalyticsService) FormatDimension(dim domain.Dimension, stats []domain.DimensionStat, rng *domain.DateRange) string {
	titles := map[domain.Dimension]string{
		domain.DimensionBoat:    "🚤 *Boat Analytics*",
		domain.DimensionCaptain: "👨‍✈️ *Captain Analytics*",
		domain.DimensionProgram: "🏝 *Program Analytics*",
	}

	text := titles[dim]
	if rng != nil {
		text += "\n📅 Period: " + rng.DisplayString()
	}
	text += "\n"

	if len(stats) == 0 {
		return text + "\nNo data for selected period."
	}

	medals := []string{"🥇 ", "🥈 ", "🥉 "}
	for i, st := range stats {
		medal := ""
		if i < len(medals) {
			medal = medals[i]
		}
		text += fmt.Sprintf("\n%s*%s*\n", medal, st.Key)
		text += fmt.Sprintf("   📊 Reports: %d\n", st.ReportCount)
		text += fmt.Sprintf("   ⛽ Avg. consumption: %.1fL\n", st.AvgLiters)
		text += fmt.Sprintf("   🔋 Total consumed: %.1fL\n", st.TotalLiters)
	}

	return text
}

// FormatRanking renders the efficiency ranking (lowest average first).
func (s *AnalyticsService) FormatRanking(dim domain.Dimension, ranked []domain.DimensionStat, rng *domain.DateRange) string {
	text := "🏆 *Efficiency Ranking*"
	if rng != nil {
		text += "\n📅 " + rng.DisplayString()
	}
	text += "\n"

	if len(ranked) == 0 {
		return text + "\nNo data."
	}

	medals := []string{"🥇", "🥈", "🥉"}
	for i, st := range ranked {
		marker := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			marker = medals[i]
		}
		text += fmt.Sprintf("\n%s %s — %.1fL/report", marker, st.Key, st.AvgLiters)
	}

	return text
}
