package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/service"
	"github.com/fsdevblog/tradecredit/internal/service/tokens"
	"github.com/fsdevblog/tradecredit/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	routerSuite
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func registerBody(role string, email string) map[string]any {
	return map[string]any{
		"user_type": role,
		"user": map[string]any{
			"email":     email,
			"password":  "secret123",
			"firstName": gofakeit.FirstName(),
		},
		"businessName": gofakeit.Company(),
		"phone":        "9876543210",
		"gstNumber":    "22AAAAA0000A1Z5",
		"address":      gofakeit.Street(),
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	okEmail := gofakeit.Email()
	dupEmail := gofakeit.Email()
	weakEmail := gofakeit.Email()

	s.mockPartyService.EXPECT().
		Register(gomock.Any(), gomock.AssignableToTypeOf(service.RegisterPartyArgs{})).
		DoAndReturn(func(_ context.Context, args service.RegisterPartyArgs) (*domain.Party, string, error) {
			switch args.Email {
			case dupEmail:
				return nil, "", fmt.Errorf("registering party: %w", domain.ErrDuplicateKey)
			case weakEmail:
				return nil, "", domain.NewValidationError("businessName", "is required")
			}
			s.Equal(domain.RoleRetailer, args.Role)
			s.Equal("secret123", args.Password)
			return &domain.Party{ID: 7, Email: args.Email, Role: args.Role, BusinessName: args.BusinessName},
				"jwt-token", nil
		}).Times(3)

	cases := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantError  string
	}{
		{name: "all ok", body: registerBody("retailer", okEmail), wantStatus: http.StatusCreated},
		{name: "invalid role", body: registerBody("admin", gofakeit.Email()), wantStatus: http.StatusBadRequest},
		{name: "missing role", body: registerBody("", gofakeit.Email()), wantStatus: http.StatusBadRequest},
		{name: "invalid email", body: registerBody("supplier", "not-an-email"), wantStatus: http.StatusBadRequest},
		{
			name:       "duplicate email",
			body:       registerBody("supplier", dupEmail),
			wantStatus: http.StatusConflict,
			wantError:  "user with this email already exists",
		},
		{
			name:       "service validation",
			body:       registerBody("supplier", weakEmail),
			wantStatus: http.StatusBadRequest,
			wantError:  "businessName: is required",
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			resp := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + RegisterRoute,
				Body:   testutils.JSONBody(t.body),
			})
			defer resp.Body.Close()
			s.Equal(t.wantStatus, resp.StatusCode)

			var body struct {
				Message string              `json:"message"`
				User    SessionUserResponse `json:"user"`
				Error   string              `json:"error"`
			}
			s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))

			if t.wantStatus != http.StatusCreated {
				s.NotEmpty(body.Error)
				if t.wantError != "" {
					s.Equal(t.wantError, body.Error)
				}
				return
			}
			s.Equal("Registration successful", body.Message)
			s.Equal(int64(7), body.User.ID)
			s.Equal(okEmail, body.User.Email)
			s.Equal(domain.RoleRetailer, body.User.UserType)
			s.Equal("Bearer jwt-token", resp.Header.Get("Authorization"))

			var cookieFound bool
			for _, c := range resp.Cookies() {
				if c.Name == "session" {
					cookieFound = true
					s.Equal("jwt-token", c.Value)
					s.True(c.HttpOnly)
					s.Equal(int(time.Hour.Seconds()), c.MaxAge)
				}
			}
			s.True(cookieFound)
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	party := &domain.Party{ID: 5, Email: gofakeit.Email(), Role: domain.RoleSupplier, BusinessName: gofakeit.Company()}

	s.mockPartyService.EXPECT().
		Login(gomock.Any(), service.LoginArgs{Email: party.Email, Password: "right"}).
		Return(party, "jwt-token", nil).Times(1)
	s.mockPartyService.EXPECT().
		Login(gomock.Any(), service.LoginArgs{Email: party.Email, Password: "wrong"}).
		Return(nil, "", domain.ErrInvalidCredentials).Times(1)

	cases := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{name: "all ok", body: map[string]string{"email": party.Email, "password": "right"}, wantStatus: http.StatusOK},
		{
			name:       "wrong password",
			body:       map[string]string{"email": party.Email, "password": "wrong"},
			wantStatus: http.StatusBadRequest,
		},
		{name: "empty body", body: map[string]string{}, wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: "{", wantStatus: http.StatusBadRequest},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodPost, RouteGroup+LoginRoute, t.body, "")
			s.Equal(t.wantStatus, status)
			if t.wantStatus != http.StatusOK {
				s.Equal("Invalid credentials", s.errorMessage(body))
				return
			}
			var res struct {
				User SessionUserResponse `json:"user"`
			}
			s.Require().NoError(json.Unmarshal(body, &res))
			s.Equal(party.ID, res.User.ID)
			s.Equal(domain.RoleSupplier, res.User.UserType)
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogout() {
	claims, err := tokens.ValidateSessionJWT(s.supplierJWT, s.jwtSecret)
	s.Require().NoError(err)

	s.mockSessions.EXPECT().
		Revoke(gomock.Any(), claims.ID, claims.ExpiresAt.Time).
		Return(nil).Times(1)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + LogoutRoute,
	}, testutils.WithBearer(s.supplierJWT))
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			s.Empty(c.Value)
			s.Negative(c.MaxAge)
		}
	}

	status, _ := s.do(http.MethodPost, RouteGroup+LogoutRoute, nil, "")
	s.Equal(http.StatusUnauthorized, status)
}
