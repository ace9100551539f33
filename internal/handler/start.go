package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command and the main menu button
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
	)

	// A fresh start discards any report in progress
	h.sessions.Cancel(sender.ID)

	greeting := fmt.Sprintf(
		"👋 Hello, %s!\n\n"+
			"🚤 *BBD Gasoline Report Bot*\n\n"+
			"This bot helps you fill out fuel reports.\n\n"+
			"Choose an action:",
		sender.FirstName,
	)

	return h.reply(c, greeting, mainMenuMarkup())
}

// handleHelp handles /help and the help button
func (h *Handler) handleHelp(c tele.Context) error {
	helpText := "ℹ️ *BBD Gasoline Report Bot*\n\n" +
		"*Commands:*\n" +
		"/start - Start the bot\n" +
		"/report - New fuel report\n" +
		"/help - Show help\n" +
		"/cancel - Cancel current action\n\n" +
		"*How to fill a report:*\n" +
		"1. Press \"📝 New Report\"\n" +
		"2. Select boat, captain, program and pier\n" +
		"3. Enter fuel used in liters\n" +
		"4. Optionally add photos\n" +
		"5. Confirm submission\n\n" +
		"*Navigation:*\n" +
		"• ⬅️ Back - return to previous step\n" +
		"• ❌ Cancel - cancel filling\n" +
		"• ⏭ Skip - skip optional field"

	return h.reply(c, helpText, mainMenuMarkup())
}

// handleCancel discards the report in progress from any step
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	prompt := h.formService.Cancel(userID)

	h.logger.Info("Report cancelled", zap.Int64("user_id", userID))

	return h.reply(c, prompt.Text, promptMarkup(prompt))
}
