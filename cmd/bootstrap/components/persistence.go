package components

import (
	"checkout-core/internal/infra/db"
	"checkout-core/internal/infra/readstore"
	"checkout-core/internal/infra/uow"
	"checkout-core/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerQueries)),
		),
		fx.Annotate(
			readstore.NewCheckoutReadStore,
			fx.As(new(queries.CheckoutQueries)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
