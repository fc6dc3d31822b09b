package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"finesight-api/internal/user"
	"finesight-api/pkg/cerror"
	"finesight-api/pkg/chunker"
	"finesight-api/pkg/cloudstorage"
	"finesight-api/pkg/config"
	"finesight-api/pkg/docai"
	"finesight-api/pkg/gemini"
	"finesight-api/pkg/logger"
	"finesight-api/pkg/vectorstore"
)

const (
	pdfMimeType = "application/pdf"

	legalSignedUrlTtl   = 1 * time.Hour
	expenseSignedUrlTtl = 15 * time.Minute

	ragCandidateLimit = 10

	noChunksAnswer = "I couldn't find any content from the specified document. " +
		"Please make sure the document has been properly processed and try again."
)

// DocumentProcessor extracts text and entities from a raw document.
type DocumentProcessor interface {
	Process(ctx context.Context, content []byte, mimeType, processorId string) (*docai.ExtractionResult, error)
}

// ObjectStore persists the original upload and hands back a signed read URL.
type ObjectStore interface {
	Upload(
		ctx context.Context,
		content []byte,
		objectName, mimeType string,
		signedUrlTtl time.Duration,
	) (*cloudstorage.UploadResult, error)
}

// Analyzer is the generative model used for document analysis, question
// answering, and embeddings.
type Analyzer interface {
	GenerateContent(ctx context.Context, prompt string, generationConfig *gemini.GenerationConfig) (string, error)
	EmbedText(ctx context.Context, text string) ([]float32, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorIndex stores and searches chunk embeddings.
type VectorIndex interface {
	Upsert(ctx context.Context, points []vectorstore.Point) error
	Search(ctx context.Context, vector []float32, limit int, filter vectorstore.Filter) ([]vectorstore.Candidate, error)
}

type Service interface {
	UploadFile(ctx context.Context, upload *FileUpload) (*UploadFileResult, error)
	ProcessLegalDocument(ctx context.Context, userId string, upload *FileUpload) (*ProcessResult, error)
	ProcessExpenseDocument(ctx context.Context, userId string, upload *FileUpload) (*ExpenseResult, error)
	RagChat(ctx context.Context, userId string, payload *RagChatPayload) (*RagChatResult, error)
	GetUserFiles(ctx context.Context, userId string) (*UserFilesResult, error)
	GetFileById(ctx context.Context, userId, fileId string) (*FileResult, error)
}

type service struct {
	fileRepository    Repository
	userRepository    user.Repository
	documentProcessor DocumentProcessor
	objectStore       ObjectStore
	analyzer          Analyzer
	vectorIndex       VectorIndex
	splitter          *chunker.Splitter
	googleCloudConfig config.GoogleCloudConfig
}

func NewService(
	fileRepository Repository,
	userRepository user.Repository,
	documentProcessor DocumentProcessor,
	objectStore ObjectStore,
	analyzer Analyzer,
	vectorIndex VectorIndex,
	googleCloudConfig config.GoogleCloudConfig,
) Service {
	return &service{
		fileRepository:    fileRepository,
		userRepository:    userRepository,
		documentProcessor: documentProcessor,
		objectStore:       objectStore,
		analyzer:          analyzer,
		vectorIndex:       vectorIndex,
		splitter:          chunker.NewSplitter(chunker.DefaultChunkSize, chunker.DefaultChunkOverlap),
		googleCloudConfig: googleCloudConfig,
	}
}

func (s *service) UploadFile(ctx context.Context, upload *FileUpload) (*UploadFileResult, error) {
	objectName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), upload.FileName)
	uploadResult, err := s.objectStore.Upload(ctx, upload.Content, objectName, upload.MimeType, legalSignedUrlTtl)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadGateway,
			"Error uploading file to cloud storage",
			zap.Error(err),
		)
	}

	return &UploadFileResult{
		Message: "File uploaded.",
		Url:     uploadResult.SignedUrl,
	}, nil
}

// ProcessLegalDocument runs the full ingestion pipeline: extraction, upload
// of the original, structured analysis, chunk embedding, and persistence.
// Only a fully processed document is persisted; any stage failure aborts the
// request before the record or vectors exist.
func (s *service) ProcessLegalDocument(
	ctx context.Context,
	userId string,
	upload *FileUpload,
) (*ProcessResult, error) {
	startedAt := time.Now()
	log := logger.FromContext(ctx)

	if upload.MimeType != pdfMimeType {
		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			"Invalid file type. Please upload a PDF document.",
			zap.String("mimeType", upload.MimeType),
		).SetSeverity(zapcore.WarnLevel)
	}

	documentId := uuid.New().String()

	extraction, err := s.documentProcessor.Process(ctx, upload.Content, pdfMimeType, s.googleCloudConfig.ProcessorId)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadGateway,
			"Error processing document with AI service",
			zap.Error(err),
		)
	}

	objectName := fmt.Sprintf("%d_%s", startedAt.UnixMilli(), upload.FileName)
	uploadResult, err := s.objectStore.Upload(ctx, upload.Content, objectName, upload.MimeType, legalSignedUrlTtl)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadGateway,
			"Error uploading file to cloud storage",
			zap.Error(err),
		)
	}

	responseText, err := s.analyzer.GenerateContent(
		ctx,
		legalDocumentPrompt+extraction.Text,
		legalAnalysisGenerationConfig(),
	)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadGateway,
			"Error analyzing document with AI service",
			zap.Error(err),
		)
	}

	analysis, err := ParseLegalAnalysis(responseText)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadGateway,
			"Error analyzing document with AI service",
			zap.Error(err),
		)
	}

	combinedReport := BuildCombinedReport(extraction.Text, analysis, upload.FileName, startedAt)

	chunksStored, err := s.storeChunks(ctx, combinedReport, userId, documentId)
	if err != nil {
		return nil, err
	}

	foundUser, err := s.userRepository.FindUserWithId(ctx, userId)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	file := &FileDocument{
		Id:           uuid.New().String(),
		FileName:     upload.FileName,
		FileUrl:      uploadResult.SignedUrl,
		UploadedBy:   foundUser.Id,
		DocumentId:   documentId,
		Size:         upload.Size,
		DocumentType: DocumentTypeLegal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	analysis.FlattenToFields(file)

	fileId, err := s.fileRepository.InsertFile(ctx, file)
	if err != nil {
		return nil, err
	}

	log.Infow(
		"legal document processed",
		zap.String("documentId", documentId),
		zap.String("fileId", fileId),
		zap.Int("chunksStored", chunksStored),
	)

	return &ProcessResult{
		Success:        true,
		ProcessingTime: fmt.Sprintf("%dms", time.Since(startedAt).Milliseconds()),
		UserId:         userId,
		DocumentId:     documentId,
		FileInfo: FileInfo{
			OriginalName: upload.FileName,
			FileName:     uploadResult.FileName,
			FileUrl:      uploadResult.SignedUrl,
			MimeType:     uploadResult.MimeType,
			Size:         upload.Size,
		},
		DocumentProcessing: DocumentProcessingSummary{
			ExtractedTextLength: len(extraction.Text),
			PageCount:           extraction.PageCount,
			EntityCount:         len(extraction.Entities),
			CombinedTextLength:  len(combinedReport),
		},
		VectorStorage: VectorStorageSummary{
			DocumentsStored: chunksStored,
			UserId:          userId,
			DocumentId:      documentId,
		},
		MongoDb: MongoDbSummary{
			FileId:     fileId,
			UploadedBy: foundUser.Id,
			SavedAt:    now,
		},
		LegalAnalysis: analysis,
		Timestamp:     time.Now().UTC(),
	}, nil
}

// storeChunks splits the combined report, embeds every chunk, and writes the
// vectors with ownership metadata so searches stay partitioned per user and
// document.
func (s *service) storeChunks(ctx context.Context, combinedReport, userId, documentId string) (int, error) {
	chunks := s.splitter.SplitText(combinedReport)

	vectors, err := s.analyzer.EmbedTexts(ctx, chunks)
	if err != nil {
		return 0, cerror.NewError(
			fiber.StatusBadGateway,
			"Error storing data in vector database",
			zap.Error(err),
		)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	points := make([]vectorstore.Point, 0, len(chunks))
	for i, chunk := range chunks {
		points = append(points, vectorstore.Point{
			Id:     uuid.New().String(),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				"id":         fmt.Sprintf("%s_chunk_%d", documentId, i),
				"content":    chunk,
				"userId":     userId,
				"documentId": documentId,
				"chunkIndex": i,
				"timestamp":  timestamp,
			},
		})
	}

	if err := s.vectorIndex.Upsert(ctx, points); err != nil {
		return 0, cerror.NewError(
			fiber.StatusBadGateway,
			"Error storing data in vector database",
			zap.Error(err),
		)
	}

	return len(points), nil
}

// ProcessExpenseDocument runs the lighter expense pipeline: upload, entity
// extraction with the expense processor, and best-effort persistence. A
// failed database write is logged and reported in the response instead of
// failing the request.
func (s *service) ProcessExpenseDocument(
	ctx context.Context,
	userId string,
	upload *FileUpload,
) (*ExpenseResult, error) {
	startedAt := time.Now()
	log := logger.FromContext(ctx)

	if upload.MimeType != pdfMimeType {
		return nil, cerror.NewError(
			fiber.StatusBadRequest,
			"Invalid file type. Please upload a PDF document.",
			zap.String("mimeType", upload.MimeType),
		).SetSeverity(zapcore.WarnLevel)
	}

	objectName := fmt.Sprintf("expenses_%d_%s", startedAt.UnixMilli(), upload.FileName)
	uploadResult, err := s.objectStore.Upload(ctx, upload.Content, objectName, upload.MimeType, expenseSignedUrlTtl)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadGateway,
			"Error uploading file to cloud storage",
			zap.Error(err),
		)
	}

	extraction, err := s.documentProcessor.Process(
		ctx,
		upload.Content,
		pdfMimeType,
		s.googleCloudConfig.ExpenseProcessorId,
	)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadGateway,
			"Error processing document with AI service",
			zap.Error(err),
		)
	}

	summary := "No summary available"
	if len(extraction.Entities) > 0 {
		summary = extraction.Entities[0].MentionText
	}

	documentId := uuid.New().String()

	var fileId string
	if userId != "" {
		now := time.Now().UTC()
		fileId, err = s.fileRepository.InsertFile(ctx, &FileDocument{
			Id:           uuid.New().String(),
			FileName:     upload.FileName,
			FileUrl:      uploadResult.SignedUrl,
			UploadedBy:   userId,
			DocumentId:   documentId,
			Size:         upload.Size,
			Summary:      summary,
			DocumentType: DocumentTypeExpense,
			ExpenseData: &ExpenseData{
				DocumentText: extraction.Text,
				Entities:     extraction.Entities,
				EntityCount:  len(extraction.Entities),
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			log.Warnw("could not save expense file", zap.Error(err))
			fileId = ""
		}
	}

	return &ExpenseResult{
		Success:        true,
		ProcessingTime: fmt.Sprintf("%dms", time.Since(startedAt).Milliseconds()),
		DocumentId:     documentId,
		FileInfo: FileInfo{
			OriginalName: upload.FileName,
			FileName:     uploadResult.FileName,
			FileUrl:      uploadResult.SignedUrl,
			Size:         upload.Size,
		},
		ExpenseAnalysis: ExpenseAnalysis{
			DocumentText: extraction.Text,
			Summary:      summary,
			Entities:     extraction.Entities,
			EntityCount:  len(extraction.Entities),
		},
		SavedToDatabase: fileId != "",
		FileId:          fileId,
		Timestamp:       time.Now().UTC(),
	}, nil
}

// RagChat answers a question against the stored chunks of one document. The
// search is filtered server-side by owner and document, and candidates are
// re-checked locally before their content reaches the prompt.
func (s *service) RagChat(ctx context.Context, userId string, payload *RagChatPayload) (*RagChatResult, error) {
	startedAt := time.Now()

	questionVector, err := s.analyzer.EmbedText(ctx, payload.Question)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadGateway,
			"Error generating question embedding",
			zap.Error(err),
		)
	}

	candidates, err := s.vectorIndex.Search(ctx, questionVector, ragCandidateLimit, vectorstore.Filter{
		"userId":     userId,
		"documentId": payload.DocumentId,
	})
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadGateway,
			"Error querying vector database",
			zap.Error(err),
		)
	}

	relevantChunks := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Payload["userId"] != userId || candidate.Payload["documentId"] != payload.DocumentId {
			continue
		}

		chunk, ok := candidate.Payload["content"].(string)
		if !ok {
			continue
		}
		relevantChunks = append(relevantChunks, chunk)
	}

	if len(relevantChunks) == 0 {
		return &RagChatResult{
			Success:         true,
			Question:        payload.Question,
			Answer:          noChunksAnswer,
			RelevantChunks:  0,
			TotalChunksInDB: len(candidates),
			UserId:          userId,
			DocumentId:      payload.DocumentId,
			ProcessingTime:  fmt.Sprintf("%dms", time.Since(startedAt).Milliseconds()),
			Timestamp:       time.Now().UTC(),
		}, nil
	}

	ragContext := strings.Join(relevantChunks, "\n\n")
	prompt := fmt.Sprintf(ragPromptTemplate, ragContext, payload.Question)

	answer, err := s.analyzer.GenerateContent(ctx, prompt, ragGenerationConfig())
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusBadGateway,
			"Error generating answer with AI service",
			zap.Error(err),
		)
	}

	return &RagChatResult{
		Success:         true,
		Question:        payload.Question,
		Answer:          answer,
		RelevantChunks:  len(relevantChunks),
		TotalChunksInDB: len(candidates),
		UserId:          userId,
		DocumentId:      payload.DocumentId,
		ProcessingTime:  fmt.Sprintf("%dms", time.Since(startedAt).Milliseconds()),
		Timestamp:       time.Now().UTC(),
	}, nil
}

func (s *service) GetUserFiles(ctx context.Context, userId string) (*UserFilesResult, error) {
	foundUser, err := s.userRepository.FindUserWithId(ctx, userId)
	if err != nil {
		return nil, err
	}

	files, err := s.fileRepository.FindFilesByUserId(ctx, foundUser.Id)
	if err != nil {
		return nil, err
	}

	return &UserFilesResult{
		Success:    true,
		UserId:     foundUser.Id,
		Email:      foundUser.Email,
		TotalFiles: len(files),
		Files:      files,
		Timestamp:  time.Now().UTC(),
	}, nil
}

func (s *service) GetFileById(ctx context.Context, userId, fileId string) (*FileResult, error) {
	file, err := s.fileRepository.FindFileByIdAndUserId(ctx, fileId, userId)
	if err != nil {
		return nil, err
	}

	return &FileResult{
		Success:   true,
		File:      file,
		Timestamp: time.Now().UTC(),
	}, nil
}
