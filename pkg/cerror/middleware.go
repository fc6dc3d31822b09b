package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"finesight-api/pkg/logger"
)

// Middleware is the fiber error handler. Custom errors are logged with their
// tagged severity and surfaced to the client as {"error": message}; anything
// else becomes an opaque 500.
func Middleware(ctx *fiber.Ctx, err error) error {
	log := logger.FromContext(ctx.Context())

	var cerr *CustomError
	isCerror := errors.As(err, &cerr)
	if !isCerror {
		log.Desugar().Error("unhandled error", zap.Error(err))
		return ctx.
			Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "internal server error"})
	}

	zapLog := log.Desugar()
	if len(cerr.LogFields) > 0 {
		zapLog = zapLog.With(cerr.LogFields...)
	}
	zapLog.Log(cerr.LogSeverity, cerr.LogMessage)

	return ctx.
		Status(cerr.HttpStatusCode).
		JSON(fiber.Map{"error": cerr.LogMessage})
}
