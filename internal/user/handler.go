package user

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"finesight-api/pkg/auth"
	"finesight-api/pkg/cerror"
	"finesight-api/pkg/logger"
	"finesight-api/pkg/server"
)

type handler struct {
	userService    Service
	authMiddleware fiber.Handler
}

func NewHandler(userService Service, authMiddleware fiber.Handler) server.Handler {
	return &handler{
		userService:    userService,
		authMiddleware: authMiddleware,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)
	authGroup.Post("/verify-otp", h.VerifyOtp)
	authGroup.Post("/refresh", h.Refresh)
	authGroup.Post("/create-test-account", h.CreateTestAccount)
	authGroup.Post("/logout", h.authMiddleware, h.Logout)
	authGroup.Get("/verify-token", h.authMiddleware, h.VerifyToken)
}

func (h *handler) Register(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "register"))
	ctx.Locals(logger.ContextKey, log)

	var payload RegisterPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	validate := validator.New()
	err = validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	result, err := h.userService.Register(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(result)
}

func (h *handler) Login(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "login"))
	ctx.Locals(logger.ContextKey, log)

	var payload LoginPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	validate := validator.New()
	err = validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	result, err := h.userService.Login(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func (h *handler) VerifyOtp(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "verifyOtp"))
	ctx.Locals(logger.ContextKey, log)

	var payload VerifyOtpPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	validate := validator.New()
	err = validate.Struct(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	err = h.userService.VerifyOtp(ctx.Context(), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "Email verified successfully",
		})
}

func (h *handler) Refresh(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "refreshAccessToken"))
	ctx.Locals(logger.ContextKey, log)

	var payload RefreshPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	validate := validator.New()
	err = validate.Struct(&payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"Refresh token is required",
		).SetSeverity(zap.WarnLevel)
	}

	result, err := h.userService.RefreshAccessToken(ctx.Context(), payload.RefreshToken)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func (h *handler) Logout(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "logout"))
	ctx.Locals(logger.ContextKey, log)

	err := h.userService.Logout(ctx.Context(), auth.UserId(ctx))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"message": "Logged out successfully",
		})
}

func (h *handler) VerifyToken(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "verifyToken"))
	ctx.Locals(logger.ContextKey, log)

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"valid": true,
			"user": fiber.Map{
				"id":    auth.UserId(ctx),
				"email": auth.UserEmail(ctx),
			},
			"message": "Token is valid",
		})
}

func (h *handler) CreateTestAccount(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "createTestAccount"))
	ctx.Locals(logger.ContextKey, log)

	result, err := h.userService.CreateTestAccount(ctx.Context())
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}
