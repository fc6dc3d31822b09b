package document

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"finesight-api/pkg/cerror"
	"finesight-api/pkg/config"
)

type Repository interface {
	InsertFile(ctx context.Context, file *FileDocument) (string, error)
	FindFilesByUserId(ctx context.Context, userId string) ([]FileDocument, error)
	FindFileByIdAndUserId(ctx context.Context, fileId, userId string) (*FileDocument, error)
}

type repository struct {
	mongoClient   *mongo.Client
	mongodbConfig config.MongodbConfig
}

func NewRepository(mongoClient *mongo.Client, mongodbConfig config.MongodbConfig) Repository {
	return &repository{
		mongoClient:   mongoClient,
		mongodbConfig: mongodbConfig,
	}
}

func (r *repository) collection() *mongo.Collection {
	return r.mongoClient.
		Database(r.mongodbConfig.Database).
		Collection(r.mongodbConfig.Collections[config.MongodbFileCollection])
}

func (r *repository) InsertFile(ctx context.Context, file *FileDocument) (string, error) {
	result, err := r.collection().InsertOne(ctx, file)
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert file",
			zap.Error(err),
		)
	}

	fileId, ok := result.InsertedID.(string)
	if !ok {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while type casting for file id",
		)
	}

	return fileId, nil
}

func (r *repository) FindFilesByUserId(ctx context.Context, userId string) ([]FileDocument, error) {
	filter := bson.D{{Key: "uploadedBy", Value: userId}}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection().Find(ctx, &filter, findOptions)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find files with user id",
			zap.Error(err),
		)
	}
	defer cursor.Close(ctx)

	files := make([]FileDocument, 0)
	if err := cursor.All(ctx, &files); err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while decode files",
			zap.Error(err),
		)
	}

	return files, nil
}

func (r *repository) FindFileByIdAndUserId(ctx context.Context, fileId, userId string) (*FileDocument, error) {
	var file FileDocument

	filter := bson.D{
		{Key: "_id", Value: fileId},
		{Key: "uploadedBy", Value: userId},
	}
	err := r.collection().FindOne(ctx, &filter).Decode(&file)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, cerror.NewError(
				fiber.StatusNotFound,
				"File not found or access denied",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find file with id",
			zap.Error(err),
		)
	}

	return &file, nil
}
