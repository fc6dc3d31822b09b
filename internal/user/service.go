package user

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"

	"finesight-api/pkg/cerror"
	"finesight-api/pkg/config"
	"finesight-api/pkg/jwt_generator"
	"finesight-api/pkg/logger"
	"finesight-api/pkg/mailer"
)

const (
	bcryptCost = 12
	otpTtl     = 10 * time.Minute
)

type Service interface {
	Register(ctx context.Context, payload *RegisterPayload) (*RegisterResult, error)
	VerifyOtp(ctx context.Context, payload *VerifyOtpPayload) error
	Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*RefreshResult, error)
	Logout(ctx context.Context, userId string) error
	CreateTestAccount(ctx context.Context) (*TestAccountResult, error)
}

type service struct {
	userRepository Repository
	jwtGenerator   jwt_generator.JwtGenerator
	otpMailer      mailer.Mailer
	jwtConfig      config.JwtConfig
}

func NewService(
	userRepository Repository,
	jwtGenerator jwt_generator.JwtGenerator,
	otpMailer mailer.Mailer,
	jwtConfig config.JwtConfig,
) Service {
	return &service{
		userRepository: userRepository,
		jwtGenerator:   jwtGenerator,
		otpMailer:      otpMailer,
		jwtConfig:      jwtConfig,
	}
}

func (s *service) Register(ctx context.Context, payload *RegisterPayload) (*RegisterResult, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcryptCost)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate hash from password",
			zap.Error(err),
		)
	}

	now := time.Now().UTC()
	userId, err := s.userRepository.InsertUser(ctx, &UserDocument{
		Id:         uuid.New().String(),
		Email:      normalizeEmail(payload.Email),
		Password:   string(hashedPassword),
		Name:       strings.TrimSpace(payload.Username),
		IsVerified: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	otp, err := generateOtp()
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate otp",
			zap.Error(err),
		)
	}

	otpExpiry := time.Now().UTC().Add(otpTtl)
	err = s.userRepository.UpdateOtp(ctx, userId, otp, otpExpiry)
	if err != nil {
		return nil, err
	}

	// Delivery failure must not fail registration; the user stays unverified
	// until a passcode reaches them.
	err = s.otpMailer.SendOtp(normalizeEmail(payload.Email), otp)
	if err != nil {
		logger.FromContext(ctx).Warnw(
			"failed to send otp email",
			zap.Error(err),
		)
	}

	return &RegisterResult{
		Message: "User registered successfully. Please check your email for verification code.",
		UserId:  userId,
	}, nil
}

func (s *service) VerifyOtp(ctx context.Context, payload *VerifyOtpPayload) error {
	user, err := s.userRepository.FindUserWithEmail(ctx, normalizeEmail(payload.Email))
	if err != nil {
		return err
	}

	if user.IsVerified {
		return cerror.NewError(
			fiber.StatusConflict,
			"User already verified",
		).SetSeverity(zapcore.WarnLevel)
	}

	if user.Otp == "" || user.Otp != payload.Otp {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"Invalid OTP",
		).SetSeverity(zapcore.WarnLevel)
	}

	if user.OtpExpiry == nil || user.OtpExpiry.Before(time.Now().UTC()) {
		return cerror.NewError(
			fiber.StatusBadRequest,
			"OTP expired",
		).SetSeverity(zapcore.WarnLevel)
	}

	return s.userRepository.MarkUserVerified(ctx, user.Id)
}

func (s *service) Login(ctx context.Context, payload *LoginPayload) (*LoginResult, error) {
	user, err := s.userRepository.FindUserWithEmail(ctx, normalizeEmail(payload.Email))
	if err != nil {
		var cerr *cerror.CustomError
		if errors.As(err, &cerr) && cerr.HttpStatusCode == fiber.StatusNotFound {
			return nil, cerror.NewError(
				fiber.StatusUnauthorized,
				"User not found",
			).SetSeverity(zapcore.WarnLevel)
		}

		return nil, err
	}

	if !user.IsVerified {
		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			"Please verify your email first",
		).SetSeverity(zapcore.WarnLevel)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password))
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			"Invalid credentials",
		).SetSeverity(zapcore.WarnLevel)
	}

	accessTokenExpiresAt := time.Now().UTC().Add(s.jwtConfig.AccessExpiresIn)
	accessToken, err := s.jwtGenerator.GenerateAccessToken(accessTokenExpiresAt, user.Email, user.Id)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate access token",
			zap.Error(err),
		)
	}

	refreshTokenExpiresAt := time.Now().UTC().Add(s.jwtConfig.RefreshExpiresIn)
	refreshToken, err := s.jwtGenerator.GenerateRefreshToken(refreshTokenExpiresAt, user.Email, user.Id)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate refresh token",
			zap.Error(err),
		)
	}

	// Overwriting the stored token invalidates every previously issued
	// refresh token for this user.
	err = s.userRepository.UpdateRefreshToken(ctx, user.Id, refreshToken, refreshTokenExpiresAt)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Message:      "Login successful",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: PublicUser{
			Id:    user.Id,
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}

func (s *service) RefreshAccessToken(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	claims, err := s.jwtGenerator.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			"Invalid or expired refresh token",
		).SetSeverity(zapcore.WarnLevel)
	}

	user, err := s.userRepository.FindUserWithId(ctx, claims.Subject)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			"Invalid refresh token",
		).SetSeverity(zapcore.WarnLevel)
	}

	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			"Invalid refresh token",
		).SetSeverity(zapcore.WarnLevel)
	}

	if user.RefreshTokenExpiry == nil || user.RefreshTokenExpiry.Before(time.Now().UTC()) {
		return nil, cerror.NewError(
			fiber.StatusUnauthorized,
			"Refresh token expired",
		).SetSeverity(zapcore.WarnLevel)
	}

	accessTokenExpiresAt := time.Now().UTC().Add(s.jwtConfig.AccessExpiresIn)
	accessToken, err := s.jwtGenerator.GenerateAccessToken(accessTokenExpiresAt, user.Email, user.Id)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate access token",
			zap.Error(err),
		)
	}

	return &RefreshResult{
		AccessToken: accessToken,
		User: PublicUser{
			Id:    user.Id,
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}

func (s *service) Logout(ctx context.Context, userId string) error {
	err := s.userRepository.ClearRefreshToken(ctx, userId)
	if err != nil {
		var cerr *cerror.CustomError
		if errors.As(err, &cerr) && cerr.HttpStatusCode == fiber.StatusNotFound {
			return nil
		}

		return err
	}

	return nil
}

func (s *service) CreateTestAccount(ctx context.Context) (*TestAccountResult, error) {
	credentials := TestAccountCredentials{
		Email:    TestAccountEmail,
		Password: TestAccountPassword,
		Username: TestAccountName,
	}

	_, err := s.userRepository.FindUserWithEmail(ctx, TestAccountEmail)
	if err == nil {
		return &TestAccountResult{
			Message:     "Test account already exists",
			Credentials: credentials,
		}, nil
	}

	var cerr *cerror.CustomError
	if !errors.As(err, &cerr) || cerr.HttpStatusCode != fiber.StatusNotFound {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestAccountPassword), bcryptCost)
	if err != nil {
		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while generate hash from password",
			zap.Error(err),
		)
	}

	now := time.Now().UTC()
	_, err = s.userRepository.InsertUser(ctx, &UserDocument{
		Id:         uuid.New().String(),
		Email:      TestAccountEmail,
		Password:   string(hashedPassword),
		Name:       TestAccountName,
		IsVerified: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	return &TestAccountResult{
		Message:     "Test account created successfully",
		Credentials: credentials,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
