package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IssueTokens signs an access/refresh pair for the user. Claims carry the
// numeric user id and role so middleware can scope requests without a lookup.
func IssueTokens(userID uint, email, role string) (*Tokens, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))

	access, err := signToken(jwt.MapClaims{
		"user_id": float64(userID),
		"email":   email,
		"role":    role,
		"type":    "access",
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}, secret)
	if err != nil {
		return nil, err
	}

	refresh, err := signToken(jwt.MapClaims{
		"user_id": float64(userID),
		"type":    "refresh",
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}, secret)
	if err != nil {
		return nil, err
	}

	return &Tokens{Access: access, Refresh: refresh}, nil
}

func signToken(claims jwt.MapClaims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
