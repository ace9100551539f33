package handler

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAnalyticsMenu shows the analytics type selection
func (h *Handler) handleAnalyticsMenu(c tele.Context) error {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("🚤 By Boats", "an_boats")),
		markup.Row(markup.Data("👨‍✈️ By Captains", "an_captains")),
		markup.Row(markup.Data("🏝 By Programs", "an_programs")),
		markup.Row(markup.Data("🏆 Efficiency Ranking", "an_ranking")),
		markup.Row(markup.Data("📥 Export CSV", "an_export")),
		markup.Row(btnMainMenu),
	)

	return h.reply(c, "📊 *Analytics & Reports*\n\nSelect analytics type:", markup)
}

// handleAnalyticsSelection shows the period picker for the chosen view
func (h *Handler) handleAnalyticsSelection(c tele.Context, action string) error {
	if action == "menu" {
		return h.handleAnalyticsMenu(c)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("7 days", "anp_"+action+"_week"),
			markup.Data("30 days", "anp_"+action+"_month"),
		),
		markup.Row(
			markup.Data("This month", "anp_"+action+"_thismonth"),
			markup.Data("3 months", "anp_"+action+"_3months"),
		),
		markup.Row(markup.Data("All time", "anp_"+action+"_all")),
		markup.Row(markup.Data("⬅️ Back", "an_menu")),
	)

	return h.reply(c, "📅 *Select period:*", markup)
}

// handleAnalyticsPeriod renders the chosen view for the chosen period
func (h *Handler) handleAnalyticsPeriod(c tele.Context, data string) error {
	idx := strings.LastIndex(data, "_")
	if idx < 0 {
		return c.Respond()
	}
	action, periodCode := data[:idx], data[idx+1:]
	rng := periodFromCode(periodCode)

	if action == "export" {
		return h.sendCSVExport(c, rng)
	}

	var text string
	var err error

	switch action {
	case "boats":
		text, err = h.dimensionText(domain.DimensionBoat, rng)
	case "captains":
		text, err = h.dimensionText(domain.DimensionCaptain, rng)
	case "programs":
		text, err = h.dimensionText(domain.DimensionProgram, rng)
	case "ranking":
		text, err = h.rankingText(rng)
	default:
		return c.Respond()
	}

	if err != nil {
		h.logger.Error("Failed to build analytics",
			zap.String("action", action),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to load analytics"})
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("⬅️ Analytics Menu", "an_menu")),
		markup.Row(btnMainMenu),
	)

	return h.reply(c, text, markup)
}

func (h *Handler) dimensionText(dim domain.Dimension, rng *domain.DateRange) (string, error) {
	stats, err := h.analyticsService.AggregateBy(dim, rng)
	if err != nil {
		return "", err
	}
	return h.analyticsService.FormatDimension(dim, stats, rng), nil
}

func (h *Handler) rankingText(rng *domain.DateRange) (string, error) {
	ranked, err := h.analyticsService.EfficiencyRanking(domain.DimensionBoat, rng)
	if err != nil {
		return "", err
	}
	return h.analyticsService.FormatRanking(domain.DimensionBoat, ranked, rng), nil
}

// sendCSVExport generates the CSV and uploads it as a document
func (h *Handler) sendCSVExport(c tele.Context, rng *domain.DateRange) error {
	data, err := h.analyticsService.ExportCSV(rng)
	if err != nil {
		h.logger.Error("Failed to export CSV", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Failed to generate export"})
	}

	doc := &tele.Document{
		File:     tele.FromReader(bytes.NewReader(data)),
		FileName: fmt.Sprintf("fuel_reports_%s.csv", time.Now().Format("20060102")),
		MIME:     "text/csv",
	}

	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}

	return c.Send(doc)
}

// periodFromCode maps a period button code to a date range; nil = all time.
func periodFromCode(code string) *domain.DateRange {
	var rng domain.DateRange
	switch code {
	case "week":
		rng = domain.LastWeek()
	case "month":
		rng = domain.LastMonth()
	case "thismonth":
		rng = domain.ThisMonth()
	case "3months":
		rng = domain.Last3Months()
	default:
		return nil
	}
	return &rng
}
