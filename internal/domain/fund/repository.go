package fund

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByFundID(ctx context.Context, fundID string) (*Application, error)
	// GetByFundIDForUpdate locks the row for the enclosing transaction.
	GetByFundIDForUpdate(ctx context.Context, fundID string) (*Application, error)
	ListByProvider(ctx context.Context, providerID string) ([]Application, error)
	ListAll(ctx context.Context) ([]Application, error)
	Save(ctx context.Context, a *Application) error
	// SumApproved totals the amounts of approved applications; zero when none.
	SumApproved(ctx context.Context) (decimal.Decimal, error)
}
