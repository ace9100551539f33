package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleHistory shows the most recent reports
func (h *Handler) handleHistory(c tele.Context) error {
	reports, err := h.reportService.RecentReports(0)
	if err != nil {
		h.logger.Error("Failed to load report history", zap.Error(err))
		if c.Callback() != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Failed to load history"})
		}
		return c.Send("❌ Failed to load history. Please try again.")
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))

	if len(reports) == 0 {
		return h.reply(c, "📋 *Report History*\n\nThere are no reports yet.", markup)
	}

	text := "📋 *Recent Reports:*\n\n"
	for i, report := range reports {
		text += fmt.Sprintf(
			"*%d. %s*\n"+
				"   👨‍✈️ %s | 🚤 %s\n"+
				"   🏝 %s\n"+
				"   ⛽ Used: %.1fL\n\n",
			i+1,
			report.CreatedAt.Format("02.01.2006"),
			report.CaptainName,
			report.BoatName,
			report.ProgramLabel(),
			report.Liters,
		)
	}

	return h.reply(c, text, markup)
}
