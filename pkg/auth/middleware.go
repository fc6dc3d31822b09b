package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"

	"finesight-api/pkg/cerror"
	"finesight-api/pkg/jwt_generator"
)

const (
	ContextUserIdKey    = "userId"
	ContextUserEmailKey = "userEmail"
)

// Middleware gates a route on a valid bearer access token and stores the
// subject's id and email in fiber locals for the handler.
func Middleware(jwtGenerator jwt_generator.JwtGenerator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authorizationHeader := ctx.Get(fiber.HeaderAuthorization)
		if authorizationHeader == "" {
			return cerror.NewError(
				fiber.StatusUnauthorized,
				"Access token required",
			).SetSeverity(zapcore.WarnLevel)
		}

		rawToken := strings.TrimPrefix(authorizationHeader, "Bearer ")
		if rawToken == authorizationHeader || rawToken == "" {
			return cerror.NewError(
				fiber.StatusUnauthorized,
				"Access token required",
			).SetSeverity(zapcore.WarnLevel)
		}

		claims, err := jwtGenerator.VerifyAccessToken(rawToken)
		if err != nil {
			return cerror.NewError(
				fiber.StatusForbidden,
				"Invalid or expired access token",
			).SetSeverity(zapcore.WarnLevel)
		}

		ctx.Locals(ContextUserIdKey, claims.Subject)
		ctx.Locals(ContextUserEmailKey, claims.Email)

		return ctx.Next()
	}
}

// UserId returns the authenticated user id installed by Middleware, empty
// when the route ran without it.
func UserId(ctx *fiber.Ctx) string {
	userId, _ := ctx.Locals(ContextUserIdKey).(string)
	return userId
}

// UserEmail returns the authenticated user email installed by Middleware.
func UserEmail(ctx *fiber.Ctx) string {
	userEmail, _ := ctx.Locals(ContextUserEmailKey).(string)
	return userEmail
}
