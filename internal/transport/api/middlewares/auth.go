package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/service/tokens"
	"github.com/gin-gonic/gin"
)

var (
	ErrTokenNotExist = errors.New("token not exist")
	ErrTokenRevoked  = errors.New("token revoked")
)

const (
	CurrentClaimsKey  = "currentClaims"
	SessionCookieName = "session"
)

// RevocationChecker хранилище отозванных сессий.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// ExtractToken возвращает сессионный токен из cookie SessionCookieName, а при ее отсутствии из заголовка
// Authorization: Bearer. Если токен не передан, вернется ErrTokenNotExist.
func ExtractToken(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie, nil
	}

	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "
	if len(tokenHeader) <= len(bearer) || !strings.EqualFold(tokenHeader[:len(bearer)], bearer) {
		return "", ErrTokenNotExist
	}
	return tokenHeader[len(bearer):], nil
}

func checkAuthorization(c *gin.Context, jwtTokenSecret []byte, revoked RevocationChecker) (*tokens.SessionClaims, error) {
	tokenStr, err := ExtractToken(c)
	if err != nil {
		return nil, err
	}

	claims, err := tokens.ValidateSessionJWT(tokenStr, jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}

	isRevoked, err := revoked.IsRevoked(c, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	if isRevoked {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

// AuthRequired проверяет, что запрос несет действующую сессию. Записывает в контекст (поле CurrentClaimsKey)
// содержимое токена.
func AuthRequired(jwtTokenSecret []byte, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret, revoked)
		if err != nil {
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(CurrentClaimsKey, claims)
		c.Next()
	}
}

// RoleRequired пропускает только участников с указанной ролью. Должен идти после AuthRequired.
func RoleRequired(role domain.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": fmt.Sprintf("only %s can access this", role)})
			return
		}
		c.Next()
	}
}

func CurrentClaims(c *gin.Context) (*tokens.SessionClaims, bool) {
	v, exists := c.Get(CurrentClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*tokens.SessionClaims)
	return claims, ok
}
