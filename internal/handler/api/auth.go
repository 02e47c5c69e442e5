package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "cinema-ticketing/internal/handler/dto/request"
	resdto "cinema-ticketing/internal/handler/dto/response"
	"cinema-ticketing/internal/handler/httperr"
	"cinema-ticketing/internal/pkg/config"
	"cinema-ticketing/internal/pkg/cookie"
	"cinema-ticketing/internal/usecase/commands"
	"cinema-ticketing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingIdentity = errors.New("user id missing from request context")

type AuthHandler struct {
	accounts     commands.AccountCommands
	users        queries.UserQueries
	cookieCfg    config.CookieConfig
	cookieMaxAge time.Duration
}

func NewAuthHandler(accounts commands.AccountCommands, users queries.UserQueries, cfg config.Config) *AuthHandler {
	maxAge, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		maxAge = time.Hour
	}
	return &AuthHandler{
		accounts:     accounts,
		users:        users,
		cookieCfg:    cfg.Cookie,
		cookieMaxAge: maxAge,
	}
}

// @Summary Register
// @Description Create a customer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.accounts.RegisterUser(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	resp, err := resdto.FromRegisterResult(result)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/auth/me")
	c.JSON(http.StatusCreated, resp)
}

// @Summary User login
// @Description Login with username and password. Every attempt is audited.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.accounts.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	resp, err := resdto.FromLoginResult(result)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, h.cookieMaxAge)
	c.JSON(http.StatusOK, resp)
}

// @Summary User logout
// @Description Clears the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; only the cookie is dropped.
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Profile of the authenticated user, points included
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.UserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
