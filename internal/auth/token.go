package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
)

// TokenTTL é a validade de um token emitido no login.
const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	TenantID       uint   `json:"tenantId"`
	Role           string `json:"role"`
	ProfessionalID uint   `json:"professionalId,omitempty"`
	jwt.RegisteredClaims
}

// Issue assina o token de sessão do usuário da loja.
func Issue(secret string, userID, tenantID uint, role access.Role, professionalID uint, now time.Time) (string, error) {
	claims := Claims{
		TenantID:       tenantID,
		Role:           string(role),
		ProfessionalID: professionalID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida assinatura/expiração e devolve o ator do token.
func Parse(secret, raw string) (access.Actor, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return access.Actor{}, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || claims.TenantID == 0 {
		return access.Actor{}, ErrInvalidToken
	}

	role, ok := access.ParseRole(claims.Role)
	// clientes e sistema não recebem token de sessão
	if !ok || role == access.RoleClient || role == access.RoleSystem {
		return access.Actor{}, ErrInvalidToken
	}
	if role == access.RoleProfessional && claims.ProfessionalID == 0 {
		return access.Actor{}, ErrInvalidToken
	}

	return access.Actor{
		Role:           role,
		TenantID:       claims.TenantID,
		UserID:         uint(userID),
		ProfessionalID: claims.ProfessionalID,
	}, nil
}
