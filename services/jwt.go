package services

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a token with user ID, email, and role
func GenerateJWT(secret []byte, userID, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(time.Hour * 24).Unix(), // Token expires in 24 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
