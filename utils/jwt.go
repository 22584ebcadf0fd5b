package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"glowdesk/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "glowdesk-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token with the given subject
// (a business owner or customer ID), the tenant business ID, and a role
// ("owner" or "customer"). The token expires after the specified duration.
func GenerateToken(subject, businessID, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"biz":  businessID,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractClaims validates the token and returns subject, business ID and role.
func ExtractClaims(tokenString string) (subject, businessID, role string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil || !token.Valid {
		return "", "", "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", "", errors.New("invalid token claims")
	}
	subject, _ = claims["sub"].(string)
	businessID, _ = claims["biz"].(string)
	role, _ = claims["role"].(string)
	if subject == "" || role == "" {
		return "", "", "", errors.New("missing token claims")
	}
	return subject, businessID, role, nil
}
