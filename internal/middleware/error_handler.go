package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/internal/apperrors"
)

type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// ErrorHandler translates application errors into JSON responses. Client
// errors log at warn, server errors at error; underlying causes are logged
// but never serialized into the response.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := apperrors.FromError(err)

		fields := []zap.Field{
			zap.Int("status_code", appErr.Status),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		}
		if appErr.Status >= fiber.StatusInternalServerError {
			logger.Error("request failed", fields...)
		} else {
			logger.Warn("request rejected", fields...)
		}

		return c.Status(appErr.Status).JSON(ErrorResponse{
			StatusCode: appErr.Status,
			Message:    appErr.Message,
		})
	}
}
