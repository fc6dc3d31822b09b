package user

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"finesight-api/pkg/cerror"
	"finesight-api/pkg/config"
)

type Repository interface {
	InsertUser(ctx context.Context, user *UserDocument) (string, error)
	FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error)
	FindUserWithId(ctx context.Context, userId string) (*UserDocument, error)
	UpdateOtp(ctx context.Context, userId, otp string, otpExpiry time.Time) error
	MarkUserVerified(ctx context.Context, userId string) error
	UpdateRefreshToken(ctx context.Context, userId, refreshToken string, expiresAt time.Time) error
	ClearRefreshToken(ctx context.Context, userId string) error
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
		Collection(r.mongodbConfig.Collections[config.MongodbUserCollection])
}

func (r *repository) InsertUser(ctx context.Context, user *UserDocument) (string, error) {
	var foundUser bson.D
	filter := bson.D{{Key: "email", Value: user.Email}}
	err := r.collection().FindOne(ctx, &filter).Decode(&foundUser)
	if err != nil && err != mongo.ErrNoDocuments {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while user existing check",
			zap.Error(err),
		)
	}

	if len(foundUser) > 0 {
		return "", cerror.NewError(
			fiber.StatusConflict,
			"User already exists",
		).SetSeverity(zapcore.WarnLevel)
	}

	result, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert user",
			zap.Error(err),
		)
	}

	userId, ok := result.InsertedID.(string)
	if !ok {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while type casting for user id",
		)
	}

	return userId, nil
}

func (r *repository) FindUserWithEmail(ctx context.Context, email string) (*UserDocument, error) {
	var user UserDocument

	filter := bson.D{{Key: "email", Value: email}}
	err := r.collection().FindOne(ctx, &filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, cerror.ErrorUserNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with email",
			zap.Error(err),
		)
	}

	return &user, nil
}

func (r *repository) FindUserWithId(ctx context.Context, userId string) (*UserDocument, error) {
	var user UserDocument

	filter := bson.D{{Key: "_id", Value: userId}}
	err := r.collection().FindOne(ctx, &filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, cerror.ErrorUserNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while find user with id",
			zap.Error(err),
		)
	}

	return &user, nil
}

func (r *repository) UpdateOtp(ctx context.Context, userId, otp string, otpExpiry time.Time) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "otp", Value: otp},
			{Key: "otpExpiry", Value: otpExpiry},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
	}

	return r.updateUserById(ctx, userId, update, "error occurred while update otp")
}

// MarkUserVerified flips the verification flag and clears the OTP fields in
// one update so a consumed passcode can never be replayed.
func (r *repository) MarkUserVerified(ctx context.Context, userId string) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "isVerified", Value: true},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
		{Key: "$unset", Value: bson.D{
			{Key: "otp", Value: ""},
			{Key: "otpExpiry", Value: ""},
		}},
	}

	return r.updateUserById(ctx, userId, update, "error occurred while mark user verified")
}

func (r *repository) UpdateRefreshToken(
	ctx context.Context,
	userId, refreshToken string,
	expiresAt time.Time,
) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "refreshToken", Value: refreshToken},
			{Key: "refreshTokenExpiry", Value: expiresAt},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
	}

	return r.updateUserById(ctx, userId, update, "error occurred while update refresh token")
}

func (r *repository) ClearRefreshToken(ctx context.Context, userId string) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
		{Key: "$unset", Value: bson.D{
			{Key: "refreshToken", Value: ""},
			{Key: "refreshTokenExpiry", Value: ""},
		}},
	}

	return r.updateUserById(ctx, userId, update, "error occurred while clear refresh token")
}

func (r *repository) updateUserById(ctx context.Context, userId string, update bson.D, logMessage string) error {
	filter := bson.D{{Key: "_id", Value: userId}}
	result, err := r.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return cerror.NewError(
			fiber.StatusInternalServerError,
			logMessage,
			zap.Error(err),
		)
	}

	if result.MatchedCount == 0 {
		return cerror.ErrorUserNotFound
	}

	return nil
}
