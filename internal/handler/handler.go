package handler

import (
	"strings"
	"unicode"

	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/service"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot              *tele.Bot
	authService      *service.AuthService
	formService      *service.FormService
	reportService    *service.ReportService
	analyticsService *service.AnalyticsService
	sessions         *session.Manager
	logger           *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	formService *service.FormService,
	reportService *service.ReportService,
	analyticsService *service.AnalyticsService,
	sessions *session.Manager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:              bot,
		authService:      authService,
		formService:      formService,
		reportService:    reportService,
		analyticsService: analyticsService,
		sessions:         sessions,
		logger:           logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/cancel", h.handleCancel)
	h.bot.Handle("/report", h.handleNewReport)

	// Text and photo messages feed the report form
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnPhoto, h.handlePhoto)

	// Static inline buttons
	h.bot.Handle(&btnNewReport, h.handleNewReport)
	h.bot.Handle(&btnAnalytics, h.handleAnalyticsMenu)
	h.bot.Handle(&btnHistory, h.handleHistory)
	h.bot.Handle(&btnHelp, h.handleHelp)
	h.bot.Handle(&btnMainMenu, h.handleStart)
	h.bot.Handle(&btnFormBack, h.handleFormBack)
	h.bot.Handle(&btnFormCancel, h.handleCancel)
	h.bot.Handle(&btnFormSkip, h.handleFormSkip)
	h.bot.Handle(&btnConfirmYes, h.handleConfirmYes)
	h.bot.Handle(&btnConfirmNo, h.handleCancel)
	h.bot.Handle(&btnConfirmEdit, h.handleConfirmEdit)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard buttons
var (
	btnNewReport = tele.Btn{
		Unique: "new_report",
		Text:   "📝 New Report",
	}
	btnAnalytics = tele.Btn{
		Unique: "analytics_menu",
		Text:   "📊 Analytics",
	}
	btnHistory = tele.Btn{
		Unique: "history",
		Text:   "📋 History",
	}
	btnHelp = tele.Btn{
		Unique: "help",
		Text:   "ℹ️ Help",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main Menu",
	}
	btnFormBack = tele.Btn{
		Unique: "form_back",
		Text:   "⬅️ Back",
	}
	btnFormCancel = tele.Btn{
		Unique: "form_cancel",
		Text:   "❌ Cancel",
	}
	btnFormSkip = tele.Btn{
		Unique: "form_skip",
		Text:   "⏭ Skip",
	}
	btnConfirmYes = tele.Btn{
		Unique: "confirm_yes",
		Text:   "✅ Submit",
	}
	btnConfirmNo = tele.Btn{
		Unique: "confirm_no",
		Text:   "❌ Cancel",
	}
	btnConfirmEdit = tele.Btn{
		Unique: "confirm_edit",
		Text:   "✏️ Edit",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnNewReport),
		menu.Row(btnAnalytics, btnHistory),
		menu.Row(btnHelp),
	)
	return menu
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback handles callback queries carrying dynamic data
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Unique)
	if data == "" {
		data = cleanCallbackData(callback.Data)
	}

	switch {
	case strings.HasPrefix(data, "opt_"):
		return h.handleFormOption(c, strings.TrimPrefix(data, "opt_"))
	case strings.HasPrefix(data, "edit_"):
		return h.handleEditStep(c, strings.TrimPrefix(data, "edit_"))
	case strings.HasPrefix(data, "an_"):
		return h.handleAnalyticsSelection(c, strings.TrimPrefix(data, "an_"))
	case strings.HasPrefix(data, "anp_"):
		return h.handleAnalyticsPeriod(c, strings.TrimPrefix(data, "anp_"))
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}

// handleEditError handles errors from c.Edit() - if message is not modified,
// just acknowledge the callback; otherwise acknowledge and return the error
// so the caller can send a new message instead.
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// reply edits the current message for callbacks and sends a new one for
// plain messages.
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup, tele.ModeMarkdown); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, markup, tele.ModeMarkdown)
		}
		return c.Respond()
	}
	return c.Send(text, markup, tele.ModeMarkdown)
}

// promptMarkup renders a form prompt's response description to a keyboard.
func promptMarkup(p service.Prompt) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	row := tele.Row{}
	for _, option := range p.Options {
		row = append(row, markup.Data(option, "opt_"+option))
		if len(row) == 2 {
			rows = append(rows, row)
			row = tele.Row{}
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if p.AllowSkip {
		rows = append(rows, markup.Row(btnFormSkip))
	}

	if p.Confirm {
		rows = append(rows,
			markup.Row(btnConfirmYes, btnConfirmNo),
			markup.Row(btnConfirmEdit),
		)
		markup.Inline(rows...)
		return markup
	}

	if p.Editable {
		for _, step := range service.EditableSteps() {
			rows = append(rows, markup.Row(markup.Data(stepLabel(step), "edit_"+string(step))))
		}
	}

	if p.Done || p.Cancelled {
		rows = append(rows, markup.Row(btnMainMenu))
		markup.Inline(rows...)
		return markup
	}

	rows = append(rows, markup.Row(btnFormBack, btnFormCancel))
	markup.Inline(rows...)
	return markup
}

func stepLabel(step domain.Step) string {
	switch step {
	case domain.StepBoat:
		return "🚤 Boat"
	case domain.StepCaptain:
		return "👨‍✈️ Captain"
	case domain.StepProgram:
		return "🏝 Program"
	case domain.StepPier:
		return "⚓ Pier"
	case domain.StepLiters:
		return "⛽ Liters"
	case domain.StepPhotos:
		return "📷 Photos"
	}
	return string(step)
}
