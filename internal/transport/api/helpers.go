package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var errNoActor = errors.New("no session claims in context")

// currentActor достает участника из контекста. Вызывается только за middlewares.AuthRequired.
func currentActor(c *gin.Context) (domain.Actor, error) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		return domain.Actor{}, errNoActor
	}
	return claims.Actor(), nil
}

// mustActor как currentActor, но сам завершает запрос ошибкой. Второе значение false означает, что обработчик
// должен вернуться.
func mustActor(c *gin.Context) (domain.Actor, bool) {
	actor, err := currentActor(c)
	if err != nil {
		_ = c.AbortWithError(http.StatusUnauthorized, err).SetType(gin.ErrorTypePrivate)
		return domain.Actor{}, false
	}
	return actor, true
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("invalid %s", name)).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

// bindJSON разбирает тело запроса. Ошибки разбора и валидации отдаются клиенту с кодом 400.
func bindJSON(c *gin.Context, params any) bool {
	bindErr := c.ShouldBindJSON(params)
	if bindErr == nil {
		return true
	}

	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validationMessage(valErrs)})
		return false
	}
	_ = c.AbortWithError(http.StatusBadRequest, errors.New("malformed request body")).SetType(gin.ErrorTypePublic)
	_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
	return false
}

func validationMessage(valErrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(valErrs))
	for _, fe := range valErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: failed on %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: failed on %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}

// abortWithServiceError переводит ошибку сервиса в HTTP ответ. Текст ошибок валидации, доступа и конфликтов
// уходит клиенту, остальные ошибки клиент видит только как текст статуса.
func abortWithServiceError(c *gin.Context, err error) {
	var valErr *domain.ValidationError
	var forbiddenErr *domain.ForbiddenError

	switch {
	case errors.As(err, &valErr):
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": valErr.Error()})
	case errors.Is(err, domain.ErrValidation):
		// нарушение ограничений базы, текст ошибки содержит детали запроса.
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
	case errors.As(err, &forbiddenErr):
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": forbiddenErr.Error()})
	case errors.Is(err, domain.ErrForbidden):
		_ = c.AbortWithError(http.StatusForbidden, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrUnauthenticated):
		_ = c.AbortWithError(http.StatusUnauthorized, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, err).SetType(gin.ErrorTypePrivate)
	case errors.Is(err, domain.ErrDueAlreadyPaid):
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "due already paid"})
	case errors.Is(err, domain.ErrConflict):
		_ = c.AbortWithError(http.StatusConflict, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
