package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecretKey signs the session tokens. It can be overridden through the
// JWT_SECRET environment variable; the fallback only exists so a local
// checkout runs without a .env file.
var jwtSecretKey = func() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("RETROSTORE_DEV_SECRET_REPLACE_IN_PROD")
}()

// GenerateToken creates a JWT whose subject is the server-side session id.
// The token is what the storefront client keeps instead of the old
// localStorage login flag.
func GenerateToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": sessionID,
		"exp": time.Now().Add(time.Hour * 72).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateToken parses a token string and returns the session id inside.
func ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecretKey, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		sessionID, ok := claims["sub"].(string)
		if !ok || sessionID == "" {
			return "", errors.New("invalid subject claim")
		}
		return sessionID, nil
	}

	return "", errors.New("invalid token")
}
