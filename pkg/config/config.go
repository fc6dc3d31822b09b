package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kr/pretty"
)

const (
	defaultAccessTokenTtl  = 50 * time.Minute
	defaultRefreshTokenTtl = 168 * time.Hour

	// Insecure fallbacks carried over from the original deployment; a real
	// deployment overrides both via the environment.
	defaultAccessSecret  = "your-access-secret-key"
	defaultRefreshSecret = "your-refresh-secret-key"
)

type Config struct {
	ServerPort  string
	Mongodb     MongodbConfig
	Jwt         JwtConfig
	GoogleCloud GoogleCloudConfig
	Gemini      GeminiConfig
	Qdrant      QdrantConfig
	Smtp        SmtpConfig
}

func ReadConfig() (*Config, error) {
	serverPort := os.Getenv(ServerPort)
	if serverPort == "" {
		serverPort = "8080"
		fmt.Println("server port environment variable is empty its declared 8080 by default")
	}

	mongodbConfig, err := ReadMongoDbConfig()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := ReadJwtConfig()
	if err != nil {
		return nil, err
	}

	googleCloudConfig, err := ReadGoogleCloudConfig()
	if err != nil {
		return nil, err
	}

	geminiConfig, err := ReadGeminiConfig()
	if err != nil {
		return nil, err
	}

	qdrantConfig := ReadQdrantConfig()
	smtpConfig := ReadSmtpConfig()

	return &Config{
		ServerPort:  serverPort,
		Mongodb:     mongodbConfig,
		Jwt:         jwtConfig,
		GoogleCloud: googleCloudConfig,
		Gemini:      geminiConfig,
		Qdrant:      qdrantConfig,
		Smtp:        smtpConfig,
	}, nil
}

func (c *Config) Print() {
	_, _ = pretty.Println(c)
}

func ReadMongoDbConfig() (MongodbConfig, error) {
	mongodbUri := os.Getenv(MongodbUri)
	if mongodbUri == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUri)
	}

	mongodbUsername := os.Getenv(MongodbUsername)
	if mongodbUsername == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUsername)
	}

	mongodbPassword := os.Getenv(MongodbPassword)
	if mongodbPassword == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbPassword)
	}

	mongodbDatabase := os.Getenv(MongodbDatabase)
	if mongodbDatabase == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbDatabase)
	}

	mongodbUserCollection := os.Getenv(MongodbUserCollection)
	if mongodbUserCollection == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbUserCollection)
	}

	mongodbFileCollection := os.Getenv(MongodbFileCollection)
	if mongodbFileCollection == "" {
		return MongodbConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, MongodbFileCollection)
	}

	return MongodbConfig{
		Uri:      mongodbUri,
		Username: mongodbUsername,
		Password: mongodbPassword,
		Database: mongodbDatabase,
		Collections: map[string]string{
			MongodbUserCollection: mongodbUserCollection,
			MongodbFileCollection: mongodbFileCollection,
		},
	}, nil
}

func ReadJwtConfig() (JwtConfig, error) {
	accessSecret := os.Getenv(JwtAccessSecret)
	if accessSecret == "" {
		accessSecret = defaultAccessSecret
	}

	refreshSecret := os.Getenv(JwtRefreshSecret)
	if refreshSecret == "" {
		refreshSecret = defaultRefreshSecret
	}

	accessExpiresIn := defaultAccessTokenTtl
	if rawTtl := os.Getenv(JwtAccessExpiresIn); rawTtl != "" {
		parsedTtl, err := time.ParseDuration(rawTtl)
		if err != nil {
			return JwtConfig{}, fmt.Errorf("invalid %s duration: %w", JwtAccessExpiresIn, err)
		}
		accessExpiresIn = parsedTtl
	}

	refreshExpiresIn := defaultRefreshTokenTtl
	if rawTtl := os.Getenv(JwtRefreshExpiresIn); rawTtl != "" {
		parsedTtl, err := time.ParseDuration(rawTtl)
		if err != nil {
			return JwtConfig{}, fmt.Errorf("invalid %s duration: %w", JwtRefreshExpiresIn, err)
		}
		refreshExpiresIn = parsedTtl
	}

	return JwtConfig{
		AccessSecret:     []byte(accessSecret),
		RefreshSecret:    []byte(refreshSecret),
		AccessExpiresIn:  accessExpiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

func ReadGoogleCloudConfig() (GoogleCloudConfig, error) {
	projectId := os.Getenv(GoogleCloudProjectId)
	if projectId == "" {
		return GoogleCloudConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, GoogleCloudProjectId)
	}

	location := os.Getenv(GoogleCloudLocation)
	if location == "" {
		location = "us"
	}

	processorId := os.Getenv(GoogleCloudProcessorId)
	if processorId == "" {
		return GoogleCloudConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, GoogleCloudProcessorId)
	}

	bucketName := os.Getenv(GcsBucketName)
	if bucketName == "" {
		return GoogleCloudConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, GcsBucketName)
	}

	return GoogleCloudConfig{
		ProjectId:          projectId,
		Location:           location,
		ProcessorId:        processorId,
		ExpenseProcessorId: os.Getenv(GoogleCloudExpenseProcessorId),
		CredentialsFile:    os.Getenv(GoogleCloudCredentialsFile),
		BucketName:         bucketName,
	}, nil
}

func ReadGeminiConfig() (GeminiConfig, error) {
	apiKey := os.Getenv(GeminiApiKey)
	if apiKey == "" {
		return GeminiConfig{}, fmt.Errorf(EnvironmentVariableNotDefined, GeminiApiKey)
	}

	model := os.Getenv(GeminiModel)
	if model == "" {
		model = "gemini-2.0-flash"
	}

	embeddingModel := os.Getenv(GeminiEmbeddingModel)
	if embeddingModel == "" {
		embeddingModel = "text-embedding-004"
	}

	return GeminiConfig{
		ApiKey:         apiKey,
		Model:          model,
		EmbeddingModel: embeddingModel,
	}, nil
}

func ReadQdrantConfig() QdrantConfig {
	url := os.Getenv(QdrantUrl)
	if url == "" {
		url = "http://localhost:6333"
	}

	collectionName := os.Getenv(QdrantCollectionName)
	if collectionName == "" {
		collectionName = "LegalDocsCollection"
	}

	return QdrantConfig{
		Url:            url,
		CollectionName: collectionName,
	}
}

func ReadSmtpConfig() SmtpConfig {
	return SmtpConfig{
		Host:     os.Getenv(SmtpHost),
		Port:     os.Getenv(SmtpPort),
		Username: os.Getenv(SmtpUsername),
		Password: os.Getenv(SmtpPassword),
	}
}
