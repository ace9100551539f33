package handler

import (
	"errors"
	"strings"

	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/domain"
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleNewReport starts the report form, replacing any draft in progress
func (h *Handler) handleNewReport(c tele.Context) error {
	prompt := h.formService.Start(c.Sender().ID)
	return h.reply(c, prompt.Text, promptMarkup(prompt))
}

// handleFormOption handles a dictionary option button press
func (h *Handler) handleFormOption(c tele.Context, value string) error {
	return h.applyFormInput(c, service.FormInput{Value: value})
}

// handleText feeds typed text into the form (liters, private tour route)
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if h.sessions.Get(c.Sender().ID) == nil {
		return c.Send("Use the menu to start a new report.", mainMenuMarkup())
	}

	return h.applyFormInput(c, service.FormInput{Value: text})
}

// handlePhoto feeds an attached photo into the form's photo step
func (h *Handler) handlePhoto(c tele.Context) error {
	photo := c.Message().Photo
	if photo == nil {
		return nil
	}

	if h.sessions.Get(c.Sender().ID) == nil {
		return nil
	}

	return h.applyFormInput(c, service.FormInput{PhotoID: photo.FileID})
}

// handleFormBack returns the form to the previous step
func (h *Handler) handleFormBack(c tele.Context) error {
	return h.applyFormInput(c, service.FormInput{Back: true})
}

// handleFormSkip skips the optional photo step
func (h *Handler) handleFormSkip(c tele.Context) error {
	return h.applyFormInput(c, service.FormInput{Skip: true})
}

// handleConfirmYes persists the draft as a report
func (h *Handler) handleConfirmYes(c tele.Context) error {
	return h.applyFormInput(c, service.FormInput{Confirm: true})
}

// handleConfirmEdit shows the list of steps that can be changed
func (h *Handler) handleConfirmEdit(c tele.Context) error {
	return h.applyFormInput(c, service.FormInput{Edit: true})
}

// handleEditStep jumps back to the chosen step, keeping collected fields
func (h *Handler) handleEditStep(c tele.Context, step string) error {
	return h.applyFormInput(c, service.FormInput{Edit: true, EditStep: domain.Step(step)})
}

// applyFormInput runs one form transition and renders the resulting prompt.
func (h *Handler) applyFormInput(c tele.Context, in service.FormInput) error {
	userID := c.Sender().ID

	prompt, err := h.formService.Handle(userID, in)
	switch {
	case errors.Is(err, domain.ErrNoDraft):
		return h.reply(c, "Use the menu to start a new report.", mainMenuMarkup())

	case domain.IsValidation(err):
		// Invalid input: re-prompt the same step, draft unchanged
		h.logger.Debug("Form input rejected",
			zap.Int64("user_id", userID),
			zap.String("reason", err.Error()),
		)
		return h.reply(c, "❌ "+err.Error()+"\n\n"+prompt.Text, promptMarkup(prompt))

	case err != nil:
		// Storage failure: the draft stays on the confirmation step
		h.logger.Error("Failed to save report",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return h.reply(c, "❌ *Save error*\n\nPlease try again.\n\n"+prompt.Text, promptMarkup(prompt))
	}

	return h.reply(c, prompt.Text, promptMarkup(prompt))
}
