package config

import "time"

// #nosec
const (
	EnvironmentVariableNotDefined = "%s variable is not defined"

	IsAtRemote = "IS_AT_REMOTE"
	ServerPort = "SERVER_PORT"

	MongodbUri            = "MONGODB_URI"
	MongodbUsername       = "MONGODB_USERNAME"
	MongodbPassword       = "MONGODB_PASSWORD"
	MongodbDatabase       = "MONGODB_DATABASE"
	MongodbUserCollection = "MONGODB_USER_COLLECTION"
	MongodbFileCollection = "MONGODB_FILE_COLLECTION"

	JwtAccessSecret     = "JWT_ACCESS_SECRET"
	JwtRefreshSecret    = "JWT_REFRESH_SECRET"
	JwtAccessExpiresIn  = "JWT_ACCESS_EXPIRES_IN"
	JwtRefreshExpiresIn = "JWT_REFRESH_EXPIRES_IN"

	GoogleCloudProjectId          = "GOOGLE_CLOUD_PROJECT_ID"
	GoogleCloudLocation           = "GOOGLE_CLOUD_LOCATION"
	GoogleCloudProcessorId        = "GOOGLE_CLOUD_PROCESSOR_ID"
	GoogleCloudExpenseProcessorId = "GOOGLE_CLOUD_EXPENSE_PROCESSOR_ID"
	GoogleCloudCredentialsFile    = "GOOGLE_CLOUD_CREDENTIALS_FILE"
	GcsBucketName                 = "GCS_BUCKET_NAME"

	GeminiApiKey         = "GOOGLE_API_KEY"
	GeminiModel          = "GEMINI_MODEL"
	GeminiEmbeddingModel = "GEMINI_EMBEDDING_MODEL"

	QdrantUrl            = "QDRANT_URL"
	QdrantCollectionName = "QDRANT_COLLECTION_NAME"

	SmtpHost     = "SMTP_HOST"
	SmtpPort     = "SMTP_PORT"
	SmtpUsername = "SMTP_USERNAME"
	SmtpPassword = "SMTP_PASSWORD"
)

type MongodbConfig struct {
	Uri         string
	Username    string
	Password    string
	Database    string
	Collections map[string]string
}

// JwtConfig carries the HMAC secrets for the two token classes. The insecure
// fallbacks mirror the original deployment and are only hit when the env vars
// are unset.
type JwtConfig struct {
	AccessSecret     []byte
	RefreshSecret    []byte
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type GoogleCloudConfig struct {
	ProjectId          string
	Location           string
	ProcessorId        string
	ExpenseProcessorId string
	CredentialsFile    string
	BucketName         string
}

type GeminiConfig struct {
	ApiKey         string
	Model          string
	EmbeddingModel string
}

type QdrantConfig struct {
	Url            string
	CollectionName string
}

type SmtpConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}
