package services

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"

	apperrors "github.com/pratapadwait/pratapliving/errors"
)

const tokenLifetime = 24 * time.Hour

func jwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("pratapliving-dev-secret")
}

// IssueToken signs an admin session token.
func IssueToken(userID, username string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// VerifyToken checks signature and expiry and returns the user id.
func VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "unexpected signing method", nil)
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "invalid or expired token", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "malformed claims", nil)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "token has no subject", nil)
	}
	return sub, nil
}
