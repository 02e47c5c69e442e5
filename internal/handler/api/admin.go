package api

import (
	"net/http"

	reqdto "cinema-ticketing/internal/handler/dto/request"
	resdto "cinema-ticketing/internal/handler/dto/response"
	"cinema-ticketing/internal/handler/httperr"
	"cinema-ticketing/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	catalog commands.CatalogCommands
}

func NewAdminHandler(catalog commands.CatalogCommands) *AdminHandler {
	return &AdminHandler{catalog: catalog}
}

// @Summary Add movie
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddMovieRequest true "Movie"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/movies [post]
func (h *AdminHandler) AddMovie(c *gin.Context) {
	var req reqdto.AddMovieRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.catalog.AddMovie(c.Request.Context(), req.ToCommand())
	created(c, "/api/movies/", id, err)
}

// @Summary Add actor
// @Description Appends a cast entry to the movie
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movie ID"
// @Param request body reqdto.AddActorRequest true "Actor"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/movies/{id}/actors [post]
func (h *AdminHandler) AddActor(c *gin.Context) {
	movieID, ok := pathID(c, "id", "movie")
	if !ok {
		return
	}
	var req reqdto.AddActorRequest
	if !bindJSON(c, &req) {
		return
	}
	err := h.catalog.AddActor(c.Request.Context(), req.ToCommand(movieID))
	created(c, "/api/movies/", movieID, err)
}

// @Summary Add theater
// @Description Seat numbers win over seat_count when both are given
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddTheaterRequest true "Theater"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/theaters [post]
func (h *AdminHandler) AddTheater(c *gin.Context) {
	var req reqdto.AddTheaterRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.catalog.AddTheater(c.Request.Context(), req.ToCommand())
	created(c, "", id, err)
}

// @Summary Schedule show
// @Description Creates a show whose seats mirror the theater layout
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScheduleShowRequest true "Show"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/shows [post]
func (h *AdminHandler) ScheduleShow(c *gin.Context) {
	var req reqdto.ScheduleShowRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.catalog.ScheduleShow(c.Request.Context(), req.ToCommand())
	created(c, "/api/shows/", id, err)
}

// created writes 201 with the new id, plus a Location header when locationPrefix is set.
func created(c *gin.Context, locationPrefix string, id uuid.UUID, err error) {
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	if locationPrefix != "" {
		c.Header("Location", locationPrefix+id.String())
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}
