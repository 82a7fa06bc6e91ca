// file: internals/features/users/service/token.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"hostelku_backend/internals/configs"
	model "hostelku_backend/internals/features/users/model"
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// IssueAccessToken signs the short-lived token carrying the identity and the
// owner scope every query filters by.
func IssueAccessToken(u model.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      u.UserID.String(),
		"role":     u.UserRole,
		"owner_id": u.OwnerScope().String(),
		"iat":      now.Unix(),
		"exp":      now.Add(AccessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken signs the long-lived token; it carries only the subject.
func IssueRefreshToken(u model.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": u.UserID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken verifies a refresh token and returns the subject.
func ParseRefreshToken(raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sub, nil
}
