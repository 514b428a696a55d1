package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/service"
	"github.com/fsdevblog/tradecredit/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	partyService PartyServicer
	sessions     SessionStore
	cookieSecure bool
}

func NewAuthHandler(partyService PartyServicer, sessions SessionStore, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		partyService: partyService,
		sessions:     sessions,
		cookieSecure: cookieSecure,
	}
}

type RegisterCredentialsParams struct {
	Email     string `binding:"required,email,max_bytes=254" json:"email"`
	Password  string `binding:"required,min=6,max=255"       json:"password"`
	FirstName string `binding:"max_bytes=150"                json:"firstName"`
}

type RegisterParams struct {
	UserType     domain.RoleType           `binding:"required,role"                json:"user_type"`
	User         RegisterCredentialsParams `binding:"required"                     json:"user"`
	BusinessName string                    `binding:"required,max_bytes=255"       json:"businessName"`
	Phone        string                    `binding:"max_bytes=20"                 json:"phone"`
	GSTNumber    string                    `binding:"max_bytes=15"                 json:"gstNumber"`
	Address      string                    `binding:"max_bytes=1000"               json:"address"`
}

type SessionUserResponse struct {
	ID           int64           `json:"id"`
	Email        string          `json:"email"`
	UserType     domain.RoleType `json:"user_type"`
	BusinessName string          `json:"business_name"`
}

func newSessionUserResponse(p *domain.Party) SessionUserResponse {
	return SessionUserResponse{
		ID:           p.ID,
		Email:        p.Email,
		UserType:     p.Role,
		BusinessName: p.BusinessName,
	}
}

// Register POST RouteGroup + RegisterRoute. Регистрирует участника и сразу открывает для него сессию.
func (h *AuthHandler) Register(c *gin.Context) {
	var params RegisterParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	party, token, err := h.partyService.Register(ctx, service.RegisterPartyArgs{
		Role:         params.UserType,
		Email:        params.User.Email,
		Password:     params.User.Password,
		FirstName:    params.User.FirstName,
		BusinessName: params.BusinessName,
		Phone:        params.Phone,
		GSTNumber:    params.GSTNumber,
		Address:      params.Address,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("user with this email already exists")).
				SetType(gin.ErrorTypePublic)
			return
		}
		abortWithServiceError(c, err)
		return
	}

	h.setSession(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"user":    newSessionUserResponse(party),
	})
}

type LoginParams struct {
	Email    string `binding:"required" json:"email"`
	Password string `binding:"required" json:"password"`
}

// Login POST RouteGroup + LoginRoute. Аутентификация по паре email/пароль.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if err := c.ShouldBindJSON(&params); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	party, token, err := h.partyService.Login(ctx, service.LoginArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	h.setSession(c, token)
	c.JSON(http.StatusOK, gin.H{"user": newSessionUserResponse(party)})
}

// Logout POST RouteGroup + LogoutRoute. Отзывает текущий токен и удаляет cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		_ = c.AbortWithError(http.StatusUnauthorized, errNoActor).SetType(gin.ErrorTypePrivate)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	expiresAt := time.Now()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := h.sessions.Revoke(ctx, claims.ID, expiresAt); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) setSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middlewares.SessionCookieName,
		token,
		int(h.partyService.SessionTTL().Seconds()),
		"/",
		"",
		h.cookieSecure,
		true,
	)
	c.Header("Authorization", "Bearer "+token)
}
