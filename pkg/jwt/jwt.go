package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// WebhookSubject is the subject carried by content webhook tokens.
const WebhookSubject = "content-webhook"

// ErrEmptySecret is returned when signing or verifying without a secret.
var ErrEmptySecret = errors.New("jwt: empty secret")

// GenerateToken creates a signed token for subject. A zero ttl produces a
// token without expiry.
func GenerateToken(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
	}
	if ttl > 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// ParseToken verifies tokenString with secret and returns its subject.
func ParseToken(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	return token.Claims.GetSubject()
}
