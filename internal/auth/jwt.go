package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"servhub_backend/pkg/apperrors"
)

// TokenPurpose задаёт назначение токена. Токен, выпущенный для одного
// назначения, не принимается операциями другого.
type TokenPurpose string

const (
	PurposeLogin         TokenPurpose = "login"
	PurposeConfirmEmail  TokenPurpose = "confirm-email"
	PurposeResetPassword TokenPurpose = "reset-password"
)

// Claims - полезная нагрузка всех токенов сервиса
type Claims struct {
	jwt.RegisteredClaims
	Email   string       `json:"email"`
	Purpose TokenPurpose `json:"purpose"`
}

// Signer выпускает и проверяет токены одного вида аккаунтов.
// У каждого вида (client/business/admin) свой секрет, поэтому токен
// клиента никогда не пройдёт проверку на админском маршруте.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Issue выпускает подписанный токен для аккаунта.
// IssuedAt усечён до секунды: водяные метки сравниваются с той же точностью.
func (s *Signer) Issue(accountID, email string, purpose TokenPurpose, ttl time.Duration) (string, error) {
	now := time.Now().Truncate(time.Second)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:   email,
		Purpose: purpose,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись, срок действия и назначение токена.
// Любая причина отказа схлопывается в одну и ту же ошибку: наружу не
// утекает, чем именно токен плох.
func (s *Signer) Verify(tokenString string, purpose TokenPurpose) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.Subject == "" || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// IssuedAtOnOrAfter сообщает, выпущен ли токен не раньше водяной метки.
// Метка nil означает «не установлена»: любой токен проходит.
// Сравнение включительное и с точностью до секунды, иначе токен,
// выпущенный в ту же секунду, что и метка, ложно отбраковывался бы.
func IssuedAtOnOrAfter(claims *Claims, watermark *time.Time) bool {
	if watermark == nil {
		return true
	}
	issued := claims.IssuedAt.Time.Truncate(time.Second)
	mark := watermark.Truncate(time.Second)
	return !issued.Before(mark)
}
