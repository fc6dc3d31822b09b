package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"finesight-api/internal/document"
	"finesight-api/internal/user"
	"finesight-api/pkg/auth"
	"finesight-api/pkg/cloudstorage"
	"finesight-api/pkg/config"
	"finesight-api/pkg/docai"
	"finesight-api/pkg/gemini"
	"finesight-api/pkg/jwt_generator"
	"finesight-api/pkg/logger"
	"finesight-api/pkg/mailer"
	"finesight-api/pkg/server"
	"finesight-api/pkg/vectorstore"
)

func main() {
	logWithProductionConfig, _ := zap.NewProduction()
	log := logWithProductionConfig.Sugar()
	defer func(l *zap.Logger) {
		err := l.Sync()
		if err != nil {
			panic(err)
		}
	}(logWithProductionConfig)

	isAtRemote := os.Getenv(config.IsAtRemote)
	if isAtRemote == "" {
		err := godotenv.Load()
		if err != nil {
			log.Warnw(
				"failed to load .env file",
				zap.Error(err),
			)
		}
	}

	cfg, err := config.ReadConfig()
	if err != nil {
		panic(err)
	}
	cfg.Print()

	jwtGenerator := jwt_generator.NewJwtGenerator(cfg.Jwt)
	otpMailer := mailer.NewSmtpMailer(cfg.Smtp)

	ctx := context.Background()
	mongoDbClient, err := setupMongodbClient(cfg)
	if err != nil {
		log.Fatalw(
			"failed to setup mongodb client",
			zap.Error(err),
		)
	}

	defer func(client *mongo.Client, ctx context.Context) {
		err := client.Disconnect(ctx)
		if err != nil {
			log.Fatalw(
				"failed to disconnect mongodb client",
				zap.Error(err),
			)
		}
	}(mongoDbClient, ctx)

	documentProcessor, err := docai.NewClient(ctx, cfg.GoogleCloud)
	if err != nil {
		log.Fatalw(
			"failed to create document processor client",
			zap.Error(err),
		)
	}
	defer documentProcessor.Close() //nolint:errcheck

	objectStore, err := cloudstorage.NewClient(ctx, cfg.GoogleCloud)
	if err != nil {
		log.Fatalw(
			"failed to create cloud storage client",
			zap.Error(err),
		)
	}
	defer objectStore.Close() //nolint:errcheck

	analyzer := gemini.NewClient(cfg.Gemini.ApiKey, cfg.Gemini.Model, cfg.Gemini.EmbeddingModel)

	vectorIndex := vectorstore.NewClient(cfg.Qdrant.Url, cfg.Qdrant.CollectionName)
	err = vectorIndex.EnsureCollection(ctx)
	if err != nil {
		log.Fatalw(
			"failed to ensure vector collection",
			zap.Error(err),
		)
	}

	authMiddleware := auth.Middleware(jwtGenerator)

	userRepository := user.NewRepository(mongoDbClient, cfg.Mongodb)
	userService := user.NewService(userRepository, jwtGenerator, otpMailer, cfg.Jwt)
	userHandler := user.NewHandler(userService, authMiddleware)

	fileRepository := document.NewRepository(mongoDbClient, cfg.Mongodb)
	documentService := document.NewService(
		fileRepository,
		userRepository,
		documentProcessor,
		objectStore,
		analyzer,
		vectorIndex,
		cfg.GoogleCloud,
	)
	documentHandler := document.NewHandler(documentService, authMiddleware)

	var handlers []server.Handler
	handlers = append(handlers, userHandler, documentHandler)
	srv := server.NewServer(cfg, handlers)

	logMiddleware := logger.Middleware(log)
	app := srv.GetFiberInstance()
	app.Use(cors.New())
	app.Use(logMiddleware)
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).SendString("OK")
	})

	srv.RegisterRoutes()

	if isAtRemote == "" {
		err = srv.Start()
		if err != nil {
			panic(err)
		}
	} else {
		lambda.Start(srv.LambdaProxyHandler)
	}
}

func setupMongodbClient(cfg *config.Config) (*mongo.Client, error) {
	mongodbServerAPIOptions := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().
		ApplyURI(cfg.Mongodb.Uri).
		SetServerAPIOptions(mongodbServerAPIOptions)

	if cfg.Mongodb.Username != "" {
		clientOptions = clientOptions.SetAuth(options.Credential{
			Username: cfg.Mongodb.Username,
			Password: cfg.Mongodb.Password,
		})
	}

	ctx := context.Background()
	mongodbClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	return mongodbClient, nil
}
