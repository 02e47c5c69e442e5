package api

import (
	"net/http"
	"strconv"

	"cinema-ticketing/internal/handler/httperr"
	"cinema-ticketing/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID parses a uuid path parameter; it aborts with 400 and reports false on failure.
func pathID(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid "+label+" ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

// queryInt returns def when the parameter is absent.
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid "+name+" parameter", nil)
		return 0, false
	}
	return v, true
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithCode(c, http.StatusBadRequest, err, httperr.CodeInvalidRequest, "Invalid request format", nil)
		return false
	}
	return true
}
