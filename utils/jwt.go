package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pizza-delivery/config"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrWrongTokenType = errors.New("wrong token type")

// Claims is the signed token payload. The subject is the username; the
// staff flag is deliberately not embedded — it is resolved from the user
// record on every request so a role change takes effect immediately.
type Claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	if config.AppConfig != nil && config.AppConfig.JWTSecret != "" {
		return []byte(config.AppConfig.JWTSecret)
	}
	return []byte("secret")
}

func accessExpiry() time.Duration {
	if config.AppConfig != nil && config.AppConfig.JWTAccessExpiry > 0 {
		return config.AppConfig.JWTAccessExpiry
	}
	return 15 * time.Minute
}

func refreshExpiry() time.Duration {
	if config.AppConfig != nil && config.AppConfig.JWTRefreshExpiry > 0 {
		return config.AppConfig.JWTRefreshExpiry
	}
	return 720 * time.Hour
}

func generateToken(username, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

func GenerateAccessToken(username string) (string, error) {
	return generateToken(username, TokenTypeAccess, accessExpiry())
}

func GenerateRefreshToken(username string) (string, error) {
	return generateToken(username, TokenTypeRefresh, refreshExpiry())
}

func validateToken(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.TokenType != wantType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

func ValidateAccessToken(tokenString string) (*Claims, error) {
	return validateToken(tokenString, TokenTypeAccess)
}

func ValidateRefreshToken(tokenString string) (*Claims, error) {
	return validateToken(tokenString, TokenTypeRefresh)
}
