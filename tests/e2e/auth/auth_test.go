//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"cinema-ticketing/internal/domain/user"
	"cinema-ticketing/internal/handler/dto/request"
	"cinema-ticketing/internal/handler/httperr"
	"cinema-ticketing/internal/pkg/cookie"
	"cinema-ticketing/internal/usecase/queries"
	"cinema-ticketing/tests/common/authtest"
	"cinema-ticketing/tests/common/builder"
	"cinema-ticketing/tests/common/dbtest"
	"cinema-ticketing/tests/common/httptest"
	"cinema-ticketing/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
	password    = "correct-horse-battery"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateTestUser(s.T(), s.DB, "emma", password, string(user.RoleCustomer))
}

func (s *authSuite) TestRegister() {
	s.Run("creates a customer with zero points", func() {
		t := s.T()
		b := builder.NewAuthBuilder().WithUsername("lucia").WithEmail("lucia@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, b.BuildRegisterDTO(), "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var role string
		var points int
		err := s.DB.QueryRow(t.Context(), "SELECT role, points FROM users WHERE username = $1", "lucia").Scan(&role, &points)
		require.NoError(t, err)
		require.Equal(t, string(user.RoleCustomer), role)
		require.Zero(t, points)
	})

	s.Run("rejects a taken username", func() {
		t := s.T()
		b := builder.NewAuthBuilder().WithUsername("emma")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, b.BuildRegisterDTO(), "")
		require.Equal(t, http.StatusConflict, w.Code)
		httptest.AssertErrorCode(t, w, httperr.CodeUsernameTaken)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "users", "username = $1", "emma"))
	})

	s.Run("rejects mismatched passwords", func() {
		t := s.T()
		dto := builder.NewAuthBuilder().WithUsername("lucia").BuildRegisterDTO()
		dto.RepeatPassword = "something-else-entirely"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, dto, "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Zero(t, dbtest.CountRows(t, s.DB, "users", "username = $1", "lucia"))
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
		succeeded      bool
	}{
		{"valid credentials", "emma", password, http.StatusOK, true},
		{"wrong password", "emma", "wrong-password-123", http.StatusUnauthorized, false},
		{"unknown user", "nobody", password, http.StatusUnauthorized, false},
		{"empty username", "", password, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusBadRequest {
				require.Zero(t, dbtest.CountRows(t, s.DB, "login_audits", ""))
				return
			}
			require.Equal(t, 1, dbtest.CountRows(t, s.DB, "login_audits", "username = $1 AND succeeded = $2", tt.username, tt.succeeded))

			if tt.succeeded {
				c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
				require.NotNil(t, c)
				require.True(t, c.HttpOnly)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("returns the profile with a cookie token", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "emma", password)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var me queries.UserView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		require.Equal(t, "emma", me.Username)
		require.Equal(t, string(user.RoleCustomer), me.Role)
	})

	s.Run("rejects a missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("rejects an expired token", func() {
		token := s.jwtHelper.CreateExpiredToken(s.T(), uuid.New(), user.RoleCustomer)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("valid token for a deleted user is 404", func() {
		token := s.jwtHelper.GenerateToken(s.T(), uuid.New(), user.RoleCustomer)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorCode(s.T(), w, httperr.CodeUserNotFound)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the cookie", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "emma", password)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, c)
		require.Empty(t, c.Value)
	})
}
