package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims del access token (incluye RBAC simple: IsAdmin + rol comercial)
type Claims struct {
	UserID  uint   `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
	Rol     string `json:"rol"` // "SDR" | "AE"
	jwt.RegisteredClaims
}

// Tiempo de vida del access token
const AccessTTL = 15 * time.Minute

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerarAccessToken genera un JWT HS256 con iat, nbf y jti
func GenerarAccessToken(userID uint, isAdmin bool, rol string) (string, error) {
	secret := jwtSecret()
	if len(secret) == 0 {
		return "", fmt.Errorf("JWT_SECRET no definida")
	}

	now := time.Now()
	jti := fmt.Sprintf("%d-%d", userID, now.UnixNano())

	claims := &Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
		Rol:     rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidarToken valida el token y devuelve las claims
func ValidarToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido o expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("no se pudieron extraer las claims")
	}
	return claims, nil
}
