package middleware

import (
	"github.com/ElectroNickP/BBD-Gasoline-Report-Bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware rejects updates from users missing from the whitelist.
// Unauthorized users get a polite refusal, never an error.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return nil
			}

			if !authService.IsAuthorized(sender.ID) {
				logger.Warn("Access denied",
					zap.Int64("user_id", sender.ID),
					zap.String("username", sender.Username),
				)
				return c.Send("⛔ You don't have access to this bot.\nContact the administrator.")
			}

			return next(c)
		}
	}
}
