package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken - токен не прошел проверку подписи или протух.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAccountInactive - аккаунт существует, но вход запрещен
	// (suspended / banned).
	ErrAccountInactive = errors.New("account is not active")
)

// Claims - полезная нагрузка токена входа. ID обязан совпадать
// с записью игрока в хранилище.
type Claims struct {
	PlayerID string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Verifier проверяет токен входа и возвращает его claims.
type Verifier interface {
	Verify(tokenString string) (*Claims, error)
}

// JWTVerifier - проверка HMAC-подписанных токенов общим секретом.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.PlayerID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Sign выпускает токен входа. Используется инструментами и тестами;
// боевые токены выпускает внешний сервис аккаунтов тем же секретом.
func Sign(secret, playerID, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		PlayerID: playerID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
