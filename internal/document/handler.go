package document

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"finesight-api/pkg/auth"
	"finesight-api/pkg/cerror"
	"finesight-api/pkg/logger"
	"finesight-api/pkg/server"
)

type handler struct {
	documentService Service
	authMiddleware  fiber.Handler
}

func NewHandler(documentService Service, authMiddleware fiber.Handler) server.Handler {
	return &handler{
		documentService: documentService,
		authMiddleware:  authMiddleware,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	fileGroup := app.Group("/api/file")
	fileGroup.Post("/upload", h.UploadFile)
	fileGroup.Post("/process", h.authMiddleware, h.ProcessLegalDocument)
	fileGroup.Post("/process-expense", h.authMiddleware, h.ProcessExpenseDocument)
	fileGroup.Post("/rag-chat", h.authMiddleware, h.RagChat)
	fileGroup.Get("/user-files", h.authMiddleware, h.GetUserFiles)
	fileGroup.Get("/:id", h.authMiddleware, h.GetFileById)
}

// readFileUpload pulls the multipart part named "file" into memory.
func readFileUpload(ctx *fiber.Ctx) (*FileUpload, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			"No file uploaded. Please upload a PDF document.",
		).SetSeverity(zap.WarnLevel)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while open uploaded file",
			zap.Error(err),
		)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while read uploaded file",
			zap.Error(err),
		)
	}

	return &FileUpload{
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		Content:  content,
	}, nil
}

func (h *handler) UploadFile(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "uploadFile"))
	ctx.Locals(logger.ContextKey, log)

	upload, err := readFileUpload(ctx)
	if err != nil {
		return err
	}

	result, err := h.documentService.UploadFile(ctx.Context(), upload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func (h *handler) ProcessLegalDocument(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "processLegalDocument"))
	ctx.Locals(logger.ContextKey, log)

	upload, err := readFileUpload(ctx)
	if err != nil {
		return err
	}

	result, err := h.documentService.ProcessLegalDocument(ctx.Context(), auth.UserId(ctx), upload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func (h *handler) ProcessExpenseDocument(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "processExpenseDocument"))
	ctx.Locals(logger.ContextKey, log)

	upload, err := readFileUpload(ctx)
	if err != nil {
		return err
	}

	result, err := h.documentService.ProcessExpenseDocument(ctx.Context(), auth.UserId(ctx), upload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func (h *handler) RagChat(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "ragChat"))
	ctx.Locals(logger.ContextKey, log)

	var payload RagChatPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	validate := validator.New()
	err = validate.Struct(&payload)
	if err != nil {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"question and documentId are required",
		).SetSeverity(zap.WarnLevel)
	}

	result, err := h.documentService.RagChat(ctx.Context(), auth.UserId(ctx), &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func (h *handler) GetUserFiles(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getUserFiles"))
	ctx.Locals(logger.ContextKey, log)

	result, err := h.documentService.GetUserFiles(ctx.Context(), auth.UserId(ctx))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}

func (h *handler) GetFileById(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getFileById"))
	ctx.Locals(logger.ContextKey, log)

	result, err := h.documentService.GetFileById(ctx.Context(), auth.UserId(ctx), ctx.Params("id"))
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(result)
}
