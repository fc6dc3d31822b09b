package jwt_generator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"finesight-api/pkg/config"
)

// JwtGenerator issues and checks the two token classes. Access and refresh
// tokens are signed with distinct secrets; a token presented to the wrong
// verify method fails even when its signature is valid.
type JwtGenerator interface {
	GenerateAccessToken(expirationTime time.Time, email, userId string) (string, error)
	GenerateRefreshToken(expirationTime time.Time, email, userId string) (string, error)
	VerifyAccessToken(rawJwtToken string) (*Claims, error)
	VerifyRefreshToken(rawJwtToken string) (*Claims, error)
}

type jwtGenerator struct {
	accessSecret  []byte
	refreshSecret []byte
}

func NewJwtGenerator(jwtConfig config.JwtConfig) JwtGenerator {
	return &jwtGenerator{
		accessSecret:  jwtConfig.AccessSecret,
		refreshSecret: jwtConfig.RefreshSecret,
	}
}

func (generator *jwtGenerator) GenerateAccessToken(
	expirationTime time.Time,
	email, userId string,
) (string, error) {
	return generator.generateToken(expirationTime, email, userId, TokenTypeAccess, generator.accessSecret)
}

func (generator *jwtGenerator) GenerateRefreshToken(
	expirationTime time.Time,
	email, userId string,
) (string, error) {
	return generator.generateToken(expirationTime, email, userId, TokenTypeRefresh, generator.refreshSecret)
}

func (generator *jwtGenerator) generateToken(
	expirationTime time.Time,
	email, userId, tokenType string,
	secret []byte,
) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userId,
			Issuer:    IssuerDefault,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func (generator *jwtGenerator) VerifyAccessToken(rawJwtToken string) (*Claims, error) {
	return generator.verifyToken(rawJwtToken, TokenTypeAccess, generator.accessSecret)
}

func (generator *jwtGenerator) VerifyRefreshToken(rawJwtToken string) (*Claims, error) {
	return generator.verifyToken(rawJwtToken, TokenTypeRefresh, generator.refreshSecret)
}

func (generator *jwtGenerator) verifyToken(rawJwtToken, expectedType string, secret []byte) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(rawJwtToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("jwt token is not valid signature")
		}

		return secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, err
	}

	if claims.TokenType != expectedType {
		return nil, errors.New("ambiguous jwt token type")
	}

	isValidIssuer := claims.VerifyIssuer(IssuerDefault, true)
	if !isValidIssuer {
		return nil, errors.New("ambiguous jwt token issuer")
	}

	now := time.Now().UTC()
	isJwtTokenNotExpired := claims.VerifyExpiresAt(now, true)
	if !isJwtTokenNotExpired {
		return nil, errors.New("expired jwt token")
	}

	isTokenStarted := claims.VerifyNotBefore(now, true)
	if !isTokenStarted {
		return nil, errors.New("jwt token is not started")
	}

	return &claims, nil
}
