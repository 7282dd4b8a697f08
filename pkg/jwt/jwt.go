package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/config"
)

// GenerateAdminToken creates a new JWT carrying the admin claim.
func GenerateAdminToken() (string, error) {
	claims := jwt.MapClaims{
		"sub":   "admin",
		"admin": true,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
