package service

import (
	"fmt"

	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/repository"

	"go.uber.org/zap"
)

// DefaultHistoryLimit is how many reports the history view shows.
const DefaultHistoryLimit = 10

// ReportService handles report persistence and history reads.
type ReportService struct {
	reportRepo repository.ReportRepository
	logger     *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, logger *zap.Logger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Submit persists a completed draft as a report. A storage failure is
// retried once before being surfaced to the caller; the draft itself is
// kept by the caller so the user can confirm again.
func (s *ReportService) Submit(draft *domain.Draft) (domain.Report, error) {
	if !draft.Complete() {
		return domain.Report{}, domain.ErrDraftIncomplete
	}

	report := draft.ToReport()

	saved, err := s.reportRepo.Save(report)
	if err != nil {
		s.logger.Warn("Failed to save report, retrying once",
			zap.Int64("user_id", draft.UserID),
			zap.Error(err),
		)
		saved, err = s.reportRepo.Save(report)
	}
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to save report: %w", err)
	}

	s.logger.Info("Report saved",
		zap.Int64("report_id", saved.ID),
		zap.Int64("user_id", saved.UserID),
		zap.String("boat", saved.BoatName),
		zap.String("captain", saved.CaptainName),
		zap.Float64("liters", saved.Liters),
	)

	return saved, nil
}

// RecentReports returns the latest n reports, newest first. A non-positive
// n falls back to the default history size.
func (s *ReportService) RecentReports(n int) ([]domain.Report, error) {
	if n <= 0 {
		n = DefaultHistoryLimit
	}
	return s.reportRepo.Recent(n)
}
