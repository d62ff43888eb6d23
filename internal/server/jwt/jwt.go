// Package jwt выпускает и проверяет access-токены contents-сервера (HS256).
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "notesync-server"

// ErrInvalidToken возвращается для любого токена, который не прошёл проверку
var ErrInvalidToken = errors.New("invalid token")

// Claims claims access-токена. Subject имя пользователя, которому выдан токен.
type Claims struct {
	jwt.RegisteredClaims
}

// Manager подписывает и проверяет токены одним секретом
type Manager struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
}

// NewManager создаёт Manager
func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL время жизни выпускаемых токенов
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue выпускает токен для subject.
// Возвращает саму строку токена и время жизни в секундах.
func (m *Manager) Issue(subject string) (string, int64, error) {
	now := m.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, int64(m.ttl.Seconds()), nil
}

// Validate проверяет подпись, алгоритм, issuer и срок действия токена
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
