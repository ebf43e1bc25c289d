package components

import (
	"yogaflow/internal/handler"
	"yogaflow/internal/handler/api"
	"yogaflow/internal/handler/middleware"
	"yogaflow/internal/pkg/config"
	"yogaflow/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewBookingHandler,
		NewBillingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewBillingHandler(billingCommands commands.BillingCommands, cfg config.Config) *api.BillingHandler {
	return api.NewBillingHandler(billingCommands, cfg.Stripe)
}
