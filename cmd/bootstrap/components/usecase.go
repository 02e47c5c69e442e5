package components

import (
	"context"
	"log/slog"

	"cinema-ticketing/internal/infra/payment"
	"cinema-ticketing/internal/pkg/clock"
	"cinema-ticketing/internal/pkg/config"
	"cinema-ticketing/internal/pkg/password"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/internal/usecase/commands"
	"cinema-ticketing/internal/usecase/queries"
	"cinema-ticketing/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		password.NewHasher,
		fx.As(new(commands.PasswordHasher)),
	),
	fx.Annotate(
		payment.NewFakeGateway,
		fx.As(new(commands.PaymentGateway)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAccountUseCase,
		NewBookingCommands,
		commands.NewRatingUseCase,
		commands.NewCatalogUseCase,
	),
	fx.Invoke(ensureAdmin),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewShowQueries,
		queries.NewMovieQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	gateway commands.PaymentGateway,
	invalidator commands.SeatMapInvalidator,
	observer commands.OperationObserver,
	cfg config.Config,
) commands.BookingCommands {
	return commands.NewBookingUseCase(uow, clk, gateway, invalidator, observer, cfg.Booking.HoldDuration)
}

func ensureAdmin(lc fx.Lifecycle, cfg config.Config, accounts commands.AccountCommands, logger *slog.Logger) {
	if cfg.Admin.Username == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			err := accounts.EnsureAdmin(ctx, commands.RegisterUserRequest{
				Name:           cfg.Admin.Name,
				Surname:        cfg.Admin.Surname,
				Email:          cfg.Admin.Email,
				Username:       cfg.Admin.Username,
				Password:       cfg.Admin.Password,
				RepeatPassword: cfg.Admin.Password,
			})
			if err != nil {
				return err
			}
			logger.Info("admin account ready", "username", cfg.Admin.Username)
			return nil
		},
	})
}
