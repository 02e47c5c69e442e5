//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"cinema-ticketing/internal/handler/dto/request"
	"cinema-ticketing/internal/pkg/cookie"
	"cinema-ticketing/tests/common/builder"
	"cinema-ticketing/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser returns the access token set as cookie by the login endpoint.
func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// RegisterAndLogin creates a customer through the API and logs it in.
func RegisterAndLogin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	b := builder.NewAuthBuilder().WithUsername(username).WithEmail(username + "@example.com")
	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register", b.BuildRegisterDTO(), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return LoginUser(t, router, b.Username, b.Password)
}
