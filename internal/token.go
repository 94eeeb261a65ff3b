package internal

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sessions stay valid for 30 days.
const tokenTTL = 30 * 24 * time.Hour

// Demo application: the signing key only protects a local file against
// accidental edits, not against an adversary.
var tokenSigningKey = []byte("aicad-demo-signing-key")

// IssueToken creates a signed session token for the given user ID.
func IssueToken(userID string) (string, error) {
	return issueTokenAt(userID, time.Now())
}

func issueTokenAt(userID string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tokenSigningKey)
}

// ValidateToken verifies a session token and returns the embedded user ID.
func ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tokenSigningKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid session token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("session token missing user_id")
	}
	return userID, nil
}
