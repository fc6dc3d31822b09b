//go:build unit

package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finesight-api/internal/user"
	"finesight-api/pkg/cerror"
	"finesight-api/pkg/cloudstorage"
	"finesight-api/pkg/config"
	"finesight-api/pkg/docai"
	"finesight-api/pkg/gemini"
	"finesight-api/pkg/vectorstore"
)

const (
	TestUserId     = "abcd-abcd-abcd-abcd-abcd"
	TestUserEmail  = "test@test.com"
	TestFileId     = "file-abcd-abcd-abcd"
	TestDocumentId = "document-abcd-abcd-abcd"
	TestFileName   = "contract.pdf"
	TestSignedUrl  = "https://storage.googleapis.com/bucket/contract.pdf?signature=abc"
	TestQuestion   = "What is the termination notice period?"
)

var testGoogleCloudConfig = config.GoogleCloudConfig{
	ProjectId:          "test-project",
	Location:           "us",
	ProcessorId:        "legal-processor",
	ExpenseProcessorId: "expense-processor",
	BucketName:         "test-bucket",
}

const testAnalysisJson = `{
	"summary": "A service agreement between two parties.",
	"parties": [{"role": "Provider", "details": "Delivers the service."}],
	"paymentDetails": {"amount": "100 USD monthly", "penalties": "5% late fee", "refunds": "None"},
	"durationAndTermination": {"startDate": "2024-01-01", "endDate": "2025-01-01", "renewal": "Automatic", "termination": "30 days notice"},
	"confidentialityAndPrivacy": {"dataHandling": "Encrypted", "restrictions": "No sharing"},
	"liabilityAndIndemnity": {"responsibility": "Provider", "limits": "Capped at fees paid"},
	"disputeResolution": {"process": "Arbitration", "jurisdiction": "Delaware"},
	"warrantiesAndGuarantees": {"promises": "99.9% uptime", "coverage": "Service only"},
	"forceMajeure": {"events": "Natural disasters", "impact": "Obligations suspended"},
	"intellectualProperty": {"ownership": "Provider", "usage": "Licensed"},
	"complianceAndRegulations": {"requirements": "GDPR", "penalties": "Termination"},
	"amendmentsAndModifications": {"process": "Written notice", "consent": "Both parties"},
	"assignmentAndTransfer": {"conditions": "Not without consent"},
	"insuranceRequirements": {"coverage": "Not applicable"},
	"signaturesAndWitnesses": {"protocols": "Electronic signature"},
	"accessibilityAndLanguage": {"jargon": "Indemnification", "clarifications": "Section 7"},
	"redFlags": [{"title": "Auto-renewal", "explanation": "Renews without notice."}],
	"actionableQuestions": ["Can the notice period be extended?"],
	"additionalConsiderations": [{"title": "Insurance", "explanation": "Not covered."}],
	"disclaimer": "This is AI-generated information, not legal advice."
}`

func testPdfUpload() *FileUpload {
	return &FileUpload{
		FileName: TestFileName,
		MimeType: "application/pdf",
		Size:     2048,
		Content:  []byte("%PDF-1.4 test content"),
	}
}

func TestNewService(t *testing.T) {
	documentService := NewService(nil, nil, nil, nil, nil, nil, config.GoogleCloudConfig{})

	assert.Implements(t, (*Service)(nil), documentService)
}

func TestService_UploadFile(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()

		mockObjectStore := NewMockObjectStore(mockController)
		mockObjectStore.
			EXPECT().
			Upload(ctx, gomock.Any(), gomock.Any(), "application/pdf", legalSignedUrlTtl).
			Return(&cloudstorage.UploadResult{SignedUrl: TestSignedUrl}, nil)

		documentService := NewService(nil, nil, nil, mockObjectStore, nil, nil, testGoogleCloudConfig)
		result, err := documentService.UploadFile(ctx, testPdfUpload())

		require.NoError(t, err)
		assert.Equal(t, "File uploaded.", result.Message)
		assert.Equal(t, TestSignedUrl, result.Url)
	})

	t.Run("when upload fails should return bad gateway error", func(t *testing.T) {
		ctx := context.Background()

		mockObjectStore := NewMockObjectStore(mockController)
		mockObjectStore.
			EXPECT().
			Upload(ctx, gomock.Any(), gomock.Any(), "application/pdf", legalSignedUrlTtl).
			Return(nil, errors.New("bucket not found"))

		documentService := NewService(nil, nil, nil, mockObjectStore, nil, nil, testGoogleCloudConfig)
		result, err := documentService.UploadFile(ctx, testPdfUpload())

		assert.Nil(t, result)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, fiber.StatusBadGateway, cerr.HttpStatusCode)
	})
}

func TestService_ProcessLegalDocument(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()

		mockDocumentProcessor := NewMockDocumentProcessor(mockController)
		mockDocumentProcessor.
			EXPECT().
			Process(ctx, gomock.Any(), "application/pdf", "legal-processor").
			Return(&docai.ExtractionResult{
				Text:      "This agreement is made between the parties.",
				Entities:  []docai.Entity{{Type: "party", MentionText: "Provider", Confidence: 0.9}},
				PageCount: 2,
			}, nil)

		mockObjectStore := NewMockObjectStore(mockController)
		mockObjectStore.
			EXPECT().
			Upload(ctx, gomock.Any(), gomock.Any(), "application/pdf", legalSignedUrlTtl).
			Return(&cloudstorage.UploadResult{
				SignedUrl: TestSignedUrl,
				FileName:  "1_contract.pdf",
				MimeType:  "application/pdf",
				FilePath:  "gs://test-bucket/1_contract.pdf",
			}, nil)

		mockAnalyzer := NewMockAnalyzer(mockController)
		mockAnalyzer.
			EXPECT().
			GenerateContent(ctx, gomock.Any(), gomock.Any()).
			Return(testAnalysisJson, nil)
		mockAnalyzer.
			EXPECT().
			EmbedTexts(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, texts []string) ([][]float32, error) {
				vectors := make([][]float32, len(texts))
				for i := range vectors {
					vectors[i] = make([]float32, vectorstore.EmbeddingDim)
				}
				return vectors, nil
			})

		mockVectorIndex := NewMockVectorIndex(mockController)
		mockVectorIndex.
			EXPECT().
			Upsert(ctx, gomock.Any()).
			Do(func(_ context.Context, points []vectorstore.Point) {
				require.NotEmpty(t, points)
				for i, point := range points {
					assert.Equal(t, TestUserId, point.Payload["userId"])
					assert.Equal(t, i, point.Payload["chunkIndex"])
					assert.NotEmpty(t, point.Payload["content"])
				}
			}).
			Return(nil)

		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(&user.UserDocument{
				Id:    TestUserId,
				Email: TestUserEmail,
			}, nil)

		mockFileRepository := NewMockRepository(mockController)
		mockFileRepository.
			EXPECT().
			InsertFile(ctx, gomock.Any()).
			Do(func(_ context.Context, file *FileDocument) {
				assert.Equal(t, TestUserId, file.UploadedBy)
				assert.Equal(t, DocumentTypeLegal, file.DocumentType)
				assert.Equal(t, "A service agreement between two parties.", file.Summary)
				assert.Equal(t, []string{"Provider: Delivers the service."}, file.PartiesInvolved)
				assert.Equal(t, "100 USD monthly | Penalties: 5% late fee | Refunds: None", file.PaymentDetails)
			}).
			Return(TestFileId, nil)

		documentService := NewService(
			mockFileRepository,
			mockUserRepository,
			mockDocumentProcessor,
			mockObjectStore,
			mockAnalyzer,
			mockVectorIndex,
			testGoogleCloudConfig,
		)

		result, err := documentService.ProcessLegalDocument(ctx, TestUserId, testPdfUpload())

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, TestUserId, result.UserId)
		assert.NotEmpty(t, result.DocumentId)
		assert.Equal(t, TestSignedUrl, result.FileInfo.FileUrl)
		assert.Equal(t, 2, result.DocumentProcessing.PageCount)
		assert.Equal(t, TestFileId, result.MongoDb.FileId)
		assert.Equal(t, result.DocumentId, result.VectorStorage.DocumentId)
		require.NotNil(t, result.LegalAnalysis)
		assert.Equal(t, "A service agreement between two parties.", result.LegalAnalysis.Summary)
	})

	t.Run("when file is not a pdf should reject before calling collaborators", func(t *testing.T) {
		ctx := context.Background()

		// No expectations registered; any collaborator call fails the test.
		documentService := NewService(
			NewMockRepository(mockController),
			user.NewMockRepository(mockController),
			NewMockDocumentProcessor(mockController),
			NewMockObjectStore(mockController),
			NewMockAnalyzer(mockController),
			NewMockVectorIndex(mockController),
			testGoogleCloudConfig,
		)

		upload := testPdfUpload()
		upload.MimeType = "image/png"

		result, err := documentService.ProcessLegalDocument(ctx, TestUserId, upload)

		assert.Nil(t, result)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, fiber.StatusBadRequest, cerr.HttpStatusCode)
	})

	t.Run("when text extraction fails should return bad gateway error", func(t *testing.T) {
		ctx := context.Background()

		mockDocumentProcessor := NewMockDocumentProcessor(mockController)
		mockDocumentProcessor.
			EXPECT().
			Process(ctx, gomock.Any(), "application/pdf", "legal-processor").
			Return(nil, errors.New("processor unavailable"))

		documentService := NewService(
			NewMockRepository(mockController),
			user.NewMockRepository(mockController),
			mockDocumentProcessor,
			NewMockObjectStore(mockController),
			NewMockAnalyzer(mockController),
			NewMockVectorIndex(mockController),
			testGoogleCloudConfig,
		)

		result, err := documentService.ProcessLegalDocument(ctx, TestUserId, testPdfUpload())

		assert.Nil(t, result)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, fiber.StatusBadGateway, cerr.HttpStatusCode)
		assert.Equal(t, "Error processing document with AI service", cerr.LogMessage)
	})

	t.Run("when model returns unparseable output should return bad gateway error", func(t *testing.T) {
		ctx := context.Background()

		mockDocumentProcessor := NewMockDocumentProcessor(mockController)
		mockDocumentProcessor.
			EXPECT().
			Process(ctx, gomock.Any(), "application/pdf", "legal-processor").
			Return(&docai.ExtractionResult{Text: "agreement text"}, nil)

		mockObjectStore := NewMockObjectStore(mockController)
		mockObjectStore.
			EXPECT().
			Upload(ctx, gomock.Any(), gomock.Any(), "application/pdf", legalSignedUrlTtl).
			Return(&cloudstorage.UploadResult{SignedUrl: TestSignedUrl}, nil)

		mockAnalyzer := NewMockAnalyzer(mockController)
		mockAnalyzer.
			EXPECT().
			GenerateContent(ctx, gomock.Any(), gomock.Any()).
			Return("the model refused to answer", nil)

		documentService := NewService(
			NewMockRepository(mockController),
			user.NewMockRepository(mockController),
			mockDocumentProcessor,
			mockObjectStore,
			mockAnalyzer,
			NewMockVectorIndex(mockController),
			testGoogleCloudConfig,
		)

		result, err := documentService.ProcessLegalDocument(ctx, TestUserId, testPdfUpload())

		assert.Nil(t, result)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, fiber.StatusBadGateway, cerr.HttpStatusCode)
		assert.Equal(t, "Error analyzing document with AI service", cerr.LogMessage)
	})
}

func TestService_ProcessExpenseDocument(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()

		mockObjectStore := NewMockObjectStore(mockController)
		mockObjectStore.
			EXPECT().
			Upload(ctx, gomock.Any(), gomock.Any(), "application/pdf", expenseSignedUrlTtl).
			Do(func(_ context.Context, _ []byte, objectName, _ string, _ time.Duration) {
				assert.Contains(t, objectName, "expenses_")
			}).
			Return(&cloudstorage.UploadResult{
				SignedUrl: TestSignedUrl,
				FileName:  "expenses_1_contract.pdf",
			}, nil)

		mockDocumentProcessor := NewMockDocumentProcessor(mockController)
		mockDocumentProcessor.
			EXPECT().
			Process(ctx, gomock.Any(), "application/pdf", "expense-processor").
			Return(&docai.ExtractionResult{
				Text: "Receipt total 42.50",
				Entities: []docai.Entity{
					{Type: "total_amount", MentionText: "42.50", Confidence: 0.95},
				},
			}, nil)

		mockFileRepository := NewMockRepository(mockController)
		mockFileRepository.
			EXPECT().
			InsertFile(ctx, gomock.Any()).
			Do(func(_ context.Context, file *FileDocument) {
				assert.Equal(t, DocumentTypeExpense, file.DocumentType)
				assert.Equal(t, "42.50", file.Summary)
				require.NotNil(t, file.ExpenseData)
				assert.Equal(t, 1, file.ExpenseData.EntityCount)
			}).
			Return(TestFileId, nil)

		documentService := NewService(
			mockFileRepository,
			nil,
			mockDocumentProcessor,
			mockObjectStore,
			nil,
			nil,
			testGoogleCloudConfig,
		)

		result, err := documentService.ProcessExpenseDocument(ctx, TestUserId, testPdfUpload())

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.True(t, result.SavedToDatabase)
		assert.Equal(t, TestFileId, result.FileId)
		assert.Equal(t, "42.50", result.ExpenseAnalysis.Summary)
	})

	t.Run("when persistence fails processing should still succeed", func(t *testing.T) {
		ctx := context.Background()

		mockObjectStore := NewMockObjectStore(mockController)
		mockObjectStore.
			EXPECT().
			Upload(ctx, gomock.Any(), gomock.Any(), "application/pdf", expenseSignedUrlTtl).
			Return(&cloudstorage.UploadResult{SignedUrl: TestSignedUrl}, nil)

		mockDocumentProcessor := NewMockDocumentProcessor(mockController)
		mockDocumentProcessor.
			EXPECT().
			Process(ctx, gomock.Any(), "application/pdf", "expense-processor").
			Return(&docai.ExtractionResult{Text: "Receipt"}, nil)

		mockFileRepository := NewMockRepository(mockController)
		mockFileRepository.
			EXPECT().
			InsertFile(ctx, gomock.Any()).
			Return("", errors.New("connection reset"))

		documentService := NewService(
			mockFileRepository,
			nil,
			mockDocumentProcessor,
			mockObjectStore,
			nil,
			nil,
			testGoogleCloudConfig,
		)

		result, err := documentService.ProcessExpenseDocument(ctx, TestUserId, testPdfUpload())

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.False(t, result.SavedToDatabase)
		assert.Empty(t, result.FileId)
	})

	t.Run("when no entities extracted summary should fall back", func(t *testing.T) {
		ctx := context.Background()

		mockObjectStore := NewMockObjectStore(mockController)
		mockObjectStore.
			EXPECT().
			Upload(ctx, gomock.Any(), gomock.Any(), "application/pdf", expenseSignedUrlTtl).
			Return(&cloudstorage.UploadResult{SignedUrl: TestSignedUrl}, nil)

		mockDocumentProcessor := NewMockDocumentProcessor(mockController)
		mockDocumentProcessor.
			EXPECT().
			Process(ctx, gomock.Any(), "application/pdf", "expense-processor").
			Return(&docai.ExtractionResult{Text: "Receipt"}, nil)

		mockFileRepository := NewMockRepository(mockController)
		mockFileRepository.
			EXPECT().
			InsertFile(ctx, gomock.Any()).
			Return(TestFileId, nil)

		documentService := NewService(
			mockFileRepository,
			nil,
			mockDocumentProcessor,
			mockObjectStore,
			nil,
			nil,
			testGoogleCloudConfig,
		)

		result, err := documentService.ProcessExpenseDocument(ctx, TestUserId, testPdfUpload())

		require.NoError(t, err)
		assert.Equal(t, "No summary available", result.ExpenseAnalysis.Summary)
	})
}

func TestService_RagChat(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	payload := &RagChatPayload{
		Question:   TestQuestion,
		DocumentId: TestDocumentId,
	}

	questionVector := make([]float32, vectorstore.EmbeddingDim)

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()

		mockAnalyzer := NewMockAnalyzer(mockController)
		mockAnalyzer.
			EXPECT().
			EmbedText(ctx, TestQuestion).
			Return(questionVector, nil)

		mockVectorIndex := NewMockVectorIndex(mockController)
		mockVectorIndex.
			EXPECT().
			Search(ctx, questionVector, ragCandidateLimit, vectorstore.Filter{
				"userId":     TestUserId,
				"documentId": TestDocumentId,
			}).
			Return([]vectorstore.Candidate{
				{
					Id:    "point-1",
					Score: 0.92,
					Payload: map[string]interface{}{
						"content":    "Termination requires 30 days written notice.",
						"userId":     TestUserId,
						"documentId": TestDocumentId,
					},
				},
				{
					Id:    "point-2",
					Score: 0.81,
					Payload: map[string]interface{}{
						"content":    "Chunk from another user's document.",
						"userId":     "someone-else",
						"documentId": TestDocumentId,
					},
				},
			}, nil)

		mockAnalyzer.
			EXPECT().
			GenerateContent(ctx, gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, prompt string, _ *gemini.GenerationConfig) {
				assert.Contains(t, prompt, "Termination requires 30 days written notice.")
				assert.NotContains(t, prompt, "another user's document")
			}).
			Return("The notice period is 30 days.", nil)

		documentService := NewService(nil, nil, nil, nil, mockAnalyzer, mockVectorIndex, testGoogleCloudConfig)
		result, err := documentService.RagChat(ctx, TestUserId, payload)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "The notice period is 30 days.", result.Answer)
		assert.Equal(t, 1, result.RelevantChunks)
		assert.Equal(t, 2, result.TotalChunksInDB)
	})

	t.Run("when no chunk matches should answer without calling the model", func(t *testing.T) {
		ctx := context.Background()

		mockAnalyzer := NewMockAnalyzer(mockController)
		mockAnalyzer.
			EXPECT().
			EmbedText(ctx, TestQuestion).
			Return(questionVector, nil)

		mockVectorIndex := NewMockVectorIndex(mockController)
		mockVectorIndex.
			EXPECT().
			Search(ctx, questionVector, ragCandidateLimit, gomock.Any()).
			Return([]vectorstore.Candidate{}, nil)

		documentService := NewService(nil, nil, nil, nil, mockAnalyzer, mockVectorIndex, testGoogleCloudConfig)
		result, err := documentService.RagChat(ctx, TestUserId, payload)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 0, result.RelevantChunks)
		assert.Contains(t, result.Answer, "couldn't find any content")
	})

	t.Run("when vector search fails should return bad gateway error", func(t *testing.T) {
		ctx := context.Background()

		mockAnalyzer := NewMockAnalyzer(mockController)
		mockAnalyzer.
			EXPECT().
			EmbedText(ctx, TestQuestion).
			Return(questionVector, nil)

		mockVectorIndex := NewMockVectorIndex(mockController)
		mockVectorIndex.
			EXPECT().
			Search(ctx, questionVector, ragCandidateLimit, gomock.Any()).
			Return(nil, errors.New("connection refused"))

		documentService := NewService(nil, nil, nil, nil, mockAnalyzer, mockVectorIndex, testGoogleCloudConfig)
		result, err := documentService.RagChat(ctx, TestUserId, payload)

		assert.Nil(t, result)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, fiber.StatusBadGateway, cerr.HttpStatusCode)
	})
}

func TestService_GetUserFiles(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()

		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(&user.UserDocument{
				Id:    TestUserId,
				Email: TestUserEmail,
			}, nil)

		mockFileRepository := NewMockRepository(mockController)
		mockFileRepository.
			EXPECT().
			FindFilesByUserId(ctx, TestUserId).
			Return([]FileDocument{
				{Id: TestFileId, FileName: TestFileName, UploadedBy: TestUserId},
			}, nil)

		documentService := NewService(
			mockFileRepository,
			mockUserRepository,
			nil, nil, nil, nil,
			testGoogleCloudConfig,
		)

		result, err := documentService.GetUserFiles(ctx, TestUserId)

		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalFiles)
		assert.Equal(t, TestUserEmail, result.Email)
	})

	t.Run("when user not found should return error", func(t *testing.T) {
		ctx := context.Background()

		mockUserRepository := user.NewMockRepository(mockController)
		mockUserRepository.
			EXPECT().
			FindUserWithId(ctx, TestUserId).
			Return(nil, cerror.NewError(fiber.StatusNotFound, "User not found"))

		documentService := NewService(nil, mockUserRepository, nil, nil, nil, nil, testGoogleCloudConfig)
		result, err := documentService.GetUserFiles(ctx, TestUserId)

		assert.Nil(t, result)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, fiber.StatusNotFound, cerr.HttpStatusCode)
	})
}

func TestService_GetFileById(t *testing.T) {
	mockController := gomock.NewController(t)
	defer mockController.Finish()

	t.Run("happy path", func(t *testing.T) {
		ctx := context.Background()

		mockFileRepository := NewMockRepository(mockController)
		mockFileRepository.
			EXPECT().
			FindFileByIdAndUserId(ctx, TestFileId, TestUserId).
			Return(&FileDocument{Id: TestFileId, UploadedBy: TestUserId}, nil)

		documentService := NewService(mockFileRepository, nil, nil, nil, nil, nil, testGoogleCloudConfig)
		result, err := documentService.GetFileById(ctx, TestUserId, TestFileId)

		require.NoError(t, err)
		assert.Equal(t, TestFileId, result.File.Id)
	})

	t.Run("when file belongs to another user should return not found error", func(t *testing.T) {
		ctx := context.Background()

		mockFileRepository := NewMockRepository(mockController)
		mockFileRepository.
			EXPECT().
			FindFileByIdAndUserId(ctx, TestFileId, TestUserId).
			Return(nil, cerror.NewError(fiber.StatusNotFound, "File not found or access denied"))

		documentService := NewService(mockFileRepository, nil, nil, nil, nil, nil, testGoogleCloudConfig)
		result, err := documentService.GetFileById(ctx, TestUserId, TestFileId)

		assert.Nil(t, result)

		var cerr *cerror.CustomError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, fiber.StatusNotFound, cerr.HttpStatusCode)
	})
}
