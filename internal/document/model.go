package document

import (
	"time"

	"finesight-api/pkg/docai"
)

const (
	DocumentTypeLegal   = "legal"
	DocumentTypeExpense = "expense"
)

// FileUpload carries a multipart upload through the processing pipeline.
type FileUpload struct {
	FileName string
	MimeType string
	Size     int64
	Content  []byte
}

type RagChatPayload struct {
	Question   string `json:"question" validate:"required"`
	DocumentId string `json:"documentId" validate:"required"`
}

// ExpenseData holds the raw extraction output persisted for expense
// documents instead of the legal analysis fields.
type ExpenseData struct {
	DocumentText string         `bson:"documentText,omitempty" json:"documentText,omitempty"`
	Entities     []docai.Entity `bson:"entities,omitempty" json:"entities,omitempty"`
	EntityCount  int            `bson:"entityCount,omitempty" json:"entityCount,omitempty"`
}

// FileDocument is the persisted record of a processed upload. The legal
// analysis sections are flattened to strings so the record stays queryable
// without replaying the model output.
type FileDocument struct {
	Id                         string       `bson:"_id" json:"id"`
	FileName                   string       `bson:"fileName" json:"fileName"`
	FileUrl                    string       `bson:"fileUrl" json:"fileUrl"`
	UploadedBy                 string       `bson:"uploadedBy" json:"uploadedBy"`
	DocumentId                 string       `bson:"documentId" json:"documentId"`
	Size                       int64        `bson:"size" json:"size"`
	Summary                    string       `bson:"summary,omitempty" json:"summary,omitempty"`
	PartiesInvolved            []string     `bson:"partiesInvolved,omitempty" json:"partiesInvolved,omitempty"`
	PaymentDetails             string       `bson:"paymentDetails,omitempty" json:"paymentDetails,omitempty"`
	DurationAndTermination     string       `bson:"durationAndTermination,omitempty" json:"durationAndTermination,omitempty"`
	ConfidentialityAndPrivacy  string       `bson:"confidentialityAndPrivacy,omitempty" json:"confidentialityAndPrivacy,omitempty"`
	LiabilityAndIndemnity      string       `bson:"liabilityAndIndemnity,omitempty" json:"liabilityAndIndemnity,omitempty"`
	DisputeResolution          string       `bson:"disputeResolution,omitempty" json:"disputeResolution,omitempty"`
	WarrantiesAndGuarantees    string       `bson:"warrantiesAndGuarantees,omitempty" json:"warrantiesAndGuarantees,omitempty"`
	ForceMajeure               string       `bson:"forceMajeure,omitempty" json:"forceMajeure,omitempty"`
	IntellectualProperty       string       `bson:"intellectualProperty,omitempty" json:"intellectualProperty,omitempty"`
	ComplianceAndRegulations   string       `bson:"complianceAndRegulations,omitempty" json:"complianceAndRegulations,omitempty"`
	AmendmentsAndModifications string       `bson:"amendmentsAndModifications,omitempty" json:"amendmentsAndModifications,omitempty"`
	AssignmentAndTransfer      string       `bson:"assignmentAndTransfer,omitempty" json:"assignmentAndTransfer,omitempty"`
	InsuranceRequirements      string       `bson:"insuranceRequirements,omitempty" json:"insuranceRequirements,omitempty"`
	SignaturesAndWitnesses     string       `bson:"signaturesAndWitnesses,omitempty" json:"signaturesAndWitnesses,omitempty"`
	AccessibilityAndLanguage   string       `bson:"accessibilityAndLanguage,omitempty" json:"accessibilityAndLanguage,omitempty"`
	RedFlags                   []string     `bson:"redFlags,omitempty" json:"redFlags,omitempty"`
	ActionableQuestions        []string     `bson:"actionableQuestions,omitempty" json:"actionableQuestions,omitempty"`
	AdditionalConsiderations   []string     `bson:"additionalConsiderations,omitempty" json:"additionalConsiderations,omitempty"`
	Disclaimer                 string       `bson:"disclaimer,omitempty" json:"disclaimer,omitempty"`
	DocumentType               string       `bson:"documentType" json:"documentType"`
	ExpenseData                *ExpenseData `bson:"expenseData,omitempty" json:"expenseData,omitempty"`
	CreatedAt                  time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt                  time.Time    `bson:"updatedAt" json:"updatedAt"`
}

type FileInfo struct {
	OriginalName string `json:"originalName"`
	FileName     string `json:"fileName"`
	FileUrl      string `json:"fileUrl"`
	MimeType     string `json:"mimeType,omitempty"`
	Size         int64  `json:"size"`
}

type DocumentProcessingSummary struct {
	ExtractedTextLength int `json:"extractedTextLength"`
	PageCount           int `json:"pageCount"`
	EntityCount         int `json:"entityCount"`
	CombinedTextLength  int `json:"combinedTextLength"`
}

type VectorStorageSummary struct {
	DocumentsStored int    `json:"documentsStored"`
	UserId          string `json:"userId"`
	DocumentId      string `json:"documentId"`
}

type MongoDbSummary struct {
	FileId     string    `json:"fileId"`
	UploadedBy string    `json:"uploadedBy"`
	SavedAt    time.Time `json:"savedAt"`
}

// ProcessResult is the full response of the legal pipeline, echoing each
// stage's outcome alongside the structured analysis.
type ProcessResult struct {
	Success            bool                      `json:"success"`
	ProcessingTime     string                    `json:"processingTime"`
	UserId             string                    `json:"userId"`
	DocumentId         string                    `json:"documentId"`
	FileInfo           FileInfo                  `json:"fileInfo"`
	DocumentProcessing DocumentProcessingSummary `json:"documentProcessing"`
	VectorStorage      VectorStorageSummary      `json:"vectorStorage"`
	MongoDb            MongoDbSummary            `json:"mongoDB"`
	LegalAnalysis      *LegalAnalysis            `json:"legalAnalysis"`
	Timestamp          time.Time                 `json:"timestamp"`
}

type ExpenseAnalysis struct {
	DocumentText string         `json:"documentText"`
	Summary      string         `json:"summary"`
	Entities     []docai.Entity `json:"entities"`
	EntityCount  int            `json:"entityCount"`
}

type ExpenseResult struct {
	Success         bool            `json:"success"`
	ProcessingTime  string          `json:"processingTime"`
	DocumentId      string          `json:"documentId"`
	FileInfo        FileInfo        `json:"fileInfo"`
	ExpenseAnalysis ExpenseAnalysis `json:"expenseAnalysis"`
	SavedToDatabase bool            `json:"savedToDatabase"`
	FileId          string          `json:"fileId,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
}

type RagChatResult struct {
	Success         bool      `json:"success"`
	Question        string    `json:"question"`
	Answer          string    `json:"answer"`
	RelevantChunks  int       `json:"relevantChunks"`
	TotalChunksInDB int       `json:"totalChunksInDB"`
	UserId          string    `json:"userId"`
	DocumentId      string    `json:"documentId"`
	ProcessingTime  string    `json:"processingTime"`
	Timestamp       time.Time `json:"timestamp"`
}

type UploadFileResult struct {
	Message string `json:"message"`
	Url     string `json:"url"`
}

type UserFilesResult struct {
	Success    bool           `json:"success"`
	UserId     string         `json:"userId"`
	Email      string         `json:"email"`
	TotalFiles int            `json:"totalFiles"`
	Files      []FileDocument `json:"files"`
	Timestamp  time.Time      `json:"timestamp"`
}

type FileResult struct {
	Success   bool          `json:"success"`
	File      *FileDocument `json:"file"`
	Timestamp time.Time     `json:"timestamp"`
}
