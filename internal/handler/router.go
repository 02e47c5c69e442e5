package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cinema-ticketing/internal/domain/user"
	"cinema-ticketing/internal/handler/api"
	reqdto "cinema-ticketing/internal/handler/dto/request"
	"cinema-ticketing/internal/handler/middleware"
	"cinema-ticketing/internal/pkg/config"
	"cinema-ticketing/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth  *api.AuthHandler
	Show  *api.ShowHandler
	Movie *api.MovieHandler
	Admin *api.AdminHandler
}

func NewHandlers(auth *api.AuthHandler, show *api.ShowHandler, movie *api.MovieHandler, admin *api.AdminHandler) Handlers {
	return Handlers{Auth: auth, Show: show, Movie: movie, Admin: admin}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	reqdto.RegisterValidators()
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	if cfg.Metrics.Enabled && m != nil {
		engine.Use(middleware.MetricsMiddleware(m))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		shows := apiGroup.Group("/shows")
		{
			addRoutes(shows, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Show.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Show.SeatMap},
				{Method: http.MethodPost, Path: "/:id/reservations", Handler: h.Show.Reserve, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/purchases", Handler: h.Show.Purchase, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		movies := apiGroup.Group("/movies")
		{
			addRoutes(movies, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Movie.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Movie.Get},
				{Method: http.MethodGet, Path: "/:id/rates", Handler: h.Movie.ListRates},
				{Method: http.MethodPost, Path: "/:id/rates", Handler: h.Movie.Rate, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/movies", Handler: h.Admin.AddMovie},
				{Method: http.MethodPost, Path: "/movies/:id/actors", Handler: h.Admin.AddActor},
				{Method: http.MethodPost, Path: "/theaters", Handler: h.Admin.AddTheater},
				{Method: http.MethodPost, Path: "/shows", Handler: h.Admin.ScheduleShow},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
