package components

import (
	"checkout-core/internal/infra/gateway"
	"checkout-core/internal/infra/materializer"
	"checkout-core/internal/pkg/clock"
	"checkout-core/internal/pkg/config"
	"checkout-core/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseGatewaysModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.CheckoutConfig { return cfg.Checkout },
	func(cfg config.Config) config.GatewayConfig { return cfg.Gateway },
)

var usecaseGatewaysModule = fx.Module("usecase/gateways",
	fx.Provide(
		fx.Annotate(
			gateway.NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			gateway.NewPricingEngine,
			fx.As(new(commands.PricingEngine)),
		),
		fx.Annotate(
			gateway.NewWarehouseSelector,
			fx.As(new(commands.WarehouseSelector)),
		),
		fx.Annotate(
			materializer.NewOrderMaterializer,
			fx.As(new(commands.OrderMaterializer)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewStockCommands,
		commands.NewPricingCommands,
		commands.NewCheckoutCommands,
	),
)
