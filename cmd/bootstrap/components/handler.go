package components

import (
	"cinema-ticketing/internal/handler"
	"cinema-ticketing/internal/handler/api"
	"cinema-ticketing/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewShowHandler,
		api.NewMovieHandler,
		api.NewAdminHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
