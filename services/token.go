package services

import (
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"

	"luxurystay-backend/models"
)

// UserInfo is the identity embedded in every access token.
type UserInfo struct {
	UserID uint   `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var ErrInvalidToken = errors.New("invalid token")

func accessSecret() []byte {
	return []byte(os.Getenv("SECRET_KEY_ACCESS_TOKEN"))
}

func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(accessSecret())
}

// ParseToken verifies the signature and expiry and returns the embedded
// identity.
func ParseToken(tokenString string) (UserInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return accessSecret(), nil
	})
	if err != nil || !token.Valid {
		return UserInfo{}, ErrInvalidToken
	}
	if claims.UserInfo.UserID == 0 {
		return UserInfo{}, ErrInvalidToken
	}
	if claims.UserInfo.Role != models.RoleUser && claims.UserInfo.Role != models.RoleAdmin {
		return UserInfo{}, ErrInvalidToken
	}
	return claims.UserInfo, nil
}
