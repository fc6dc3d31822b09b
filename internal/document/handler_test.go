//go:build unit

package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finesight-api/pkg/auth"
	"finesight-api/pkg/cerror"
)

func stubAuthMiddleware(ctx *fiber.Ctx) error {
	ctx.Locals(auth.ContextUserIdKey, TestUserId)
	ctx.Locals(auth.ContextUserEmailKey, TestUserEmail)
	return ctx.Next()
}

func setupTestApp(documentService Service) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})

	documentHandler := NewHandler(documentService, stubAuthMiddleware)
	documentHandler.RegisterRoutes(app)

	return app
}

func newMultipartRequest(t *testing.T, target, fieldName, fileName, mimeType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set(
		"Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldName, fileName),
	)
	partHeader.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	request := httptest.NewRequest(fiber.MethodPost, target, &body)
	request.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	return request
}

func TestHandler_UploadFile(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockDocumentService := NewMockService(mockController)
		mockDocumentService.
			EXPECT().
			UploadFile(gomock.Any(), gomock.Any()).
			Return(&UploadFileResult{
				Message: "File uploaded.",
				Url:     TestSignedUrl,
			}, nil)

		app := setupTestApp(mockDocumentService)

		request := newMultipartRequest(
			t, "/api/file/upload", "file", TestFileName, "application/pdf", []byte("%PDF-1.4"),
		)
		response, err := app.Test(request)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, response.StatusCode)

		responseBody, err := io.ReadAll(response.Body)
		require.NoError(t, err)

		var result UploadFileResult
		require.NoError(t, json.Unmarshal(responseBody, &result))
		assert.Equal(t, TestSignedUrl, result.Url)
	})

	t.Run("when no file part is sent should return bad request", func(t *testing.T) {
		app := setupTestApp(NewMockService(mockController))

		request := httptest.NewRequest(fiber.MethodPost, "/api/file/upload", nil)
		response, err := app.Test(request)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
	})
}

func TestHandler_ProcessLegalDocument(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockDocumentService := NewMockService(mockController)
		mockDocumentService.
			EXPECT().
			ProcessLegalDocument(gomock.Any(), TestUserId, gomock.Any()).
			Do(func(_ context.Context, _ string, upload *FileUpload) {
				assert.Equal(t, TestFileName, upload.FileName)
				assert.Equal(t, "application/pdf", upload.MimeType)
				assert.Equal(t, []byte("%PDF-1.4"), upload.Content)
			}).
			Return(&ProcessResult{
				Success:    true,
				UserId:     TestUserId,
				DocumentId: TestDocumentId,
				Timestamp:  time.Now().UTC(),
			}, nil)

		app := setupTestApp(mockDocumentService)

		request := newMultipartRequest(
			t, "/api/file/process", "file", TestFileName, "application/pdf", []byte("%PDF-1.4"),
		)
		response, err := app.Test(request)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, response.StatusCode)
	})

	t.Run("when service rejects the file should return its status code", func(t *testing.T) {
		mockDocumentService := NewMockService(mockController)
		mockDocumentService.
			EXPECT().
			ProcessLegalDocument(gomock.Any(), TestUserId, gomock.Any()).
			Return(nil, cerror.NewError(
				fiber.StatusBadRequest,
				"Invalid file type. Please upload a PDF document.",
			))

		app := setupTestApp(mockDocumentService)

		request := newMultipartRequest(
			t, "/api/file/process", "file", "picture.png", "image/png", []byte("png-bytes"),
		)
		response, err := app.Test(request)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
	})
}

func TestHandler_ProcessExpenseDocument(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockDocumentService := NewMockService(mockController)
		mockDocumentService.
			EXPECT().
			ProcessExpenseDocument(gomock.Any(), TestUserId, gomock.Any()).
			Return(&ExpenseResult{
				Success:         true,
				SavedToDatabase: true,
				FileId:          TestFileId,
				Timestamp:       time.Now().UTC(),
			}, nil)

		app := setupTestApp(mockDocumentService)

		request := newMultipartRequest(
			t, "/api/file/process-expense", "file", "receipt.pdf", "application/pdf", []byte("%PDF-1.4"),
		)
		response, err := app.Test(request)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, response.StatusCode)
	})
}

func TestHandler_RagChat(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockDocumentService := NewMockService(mockController)
		mockDocumentService.
			EXPECT().
			RagChat(gomock.Any(), TestUserId, &RagChatPayload{
				Question:   TestQuestion,
				DocumentId: TestDocumentId,
			}).
			Return(&RagChatResult{
				Success:  true,
				Question: TestQuestion,
				Answer:   "The notice period is 30 days.",
			}, nil)

		app := setupTestApp(mockDocumentService)

		requestBody, err := json.Marshal(&RagChatPayload{
			Question:   TestQuestion,
			DocumentId: TestDocumentId,
		})
		require.NoError(t, err)

		request := httptest.NewRequest(fiber.MethodPost, "/api/file/rag-chat", bytes.NewReader(requestBody))
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		response, err := app.Test(request)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, response.StatusCode)

		responseBody, err := io.ReadAll(response.Body)
		require.NoError(t, err)

		var result RagChatResult
		require.NoError(t, json.Unmarshal(responseBody, &result))
		assert.Equal(t, "The notice period is 30 days.", result.Answer)
	})

	t.Run("when documentId is missing should return bad request", func(t *testing.T) {
		app := setupTestApp(NewMockService(mockController))

		requestBody, err := json.Marshal(&RagChatPayload{
			Question: TestQuestion,
		})
		require.NoError(t, err)

		request := httptest.NewRequest(fiber.MethodPost, "/api/file/rag-chat", bytes.NewReader(requestBody))
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		response, err := app.Test(request)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
	})

	t.Run("when request body is unparseable should return bad request", func(t *testing.T) {
		app := setupTestApp(NewMockService(mockController))

		request := httptest.NewRequest(
			fiber.MethodPost,
			"/api/file/rag-chat",
			bytes.NewReader([]byte("not-json")),
		)
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		response, err := app.Test(request)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, response.StatusCode)
	})
}

func TestHandler_GetUserFiles(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockDocumentService := NewMockService(mockController)
		mockDocumentService.
			EXPECT().
			GetUserFiles(gomock.Any(), TestUserId).
			Return(&UserFilesResult{
				Success:    true,
				UserId:     TestUserId,
				Email:      TestUserEmail,
				TotalFiles: 1,
				Files: []FileDocument{
					{Id: TestFileId, FileName: TestFileName, UploadedBy: TestUserId},
				},
				Timestamp: time.Now().UTC(),
			}, nil)

		app := setupTestApp(mockDocumentService)

		request := httptest.NewRequest(fiber.MethodGet, "/api/file/user-files", nil)
		response, err := app.Test(request)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, response.StatusCode)

		responseBody, err := io.ReadAll(response.Body)
		require.NoError(t, err)

		var result UserFilesResult
		require.NoError(t, json.Unmarshal(responseBody, &result))
		assert.Equal(t, 1, result.TotalFiles)
	})
}

func TestHandler_GetFileById(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		mockDocumentService := NewMockService(mockController)
		mockDocumentService.
			EXPECT().
			GetFileById(gomock.Any(), TestUserId, TestFileId).
			Return(&FileResult{
				Success:   true,
				File:      &FileDocument{Id: TestFileId, UploadedBy: TestUserId},
				Timestamp: time.Now().UTC(),
			}, nil)

		app := setupTestApp(mockDocumentService)

		request := httptest.NewRequest(fiber.MethodGet, "/api/file/"+TestFileId, nil)
		response, err := app.Test(request)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, response.StatusCode)
	})

	t.Run("when file does not belong to the user should return not found", func(t *testing.T) {
		mockDocumentService := NewMockService(mockController)
		mockDocumentService.
			EXPECT().
			GetFileById(gomock.Any(), TestUserId, TestFileId).
			Return(nil, cerror.NewError(
				fiber.StatusNotFound,
				"File not found or access denied",
			))

		app := setupTestApp(mockDocumentService)

		request := httptest.NewRequest(fiber.MethodGet, "/api/file/"+TestFileId, nil)
		response, err := app.Test(request)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusNotFound, response.StatusCode)
	})
}
