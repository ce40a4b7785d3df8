package fundmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "loanbook/internal/domain/fund"
)

// Repo is a function-backed mock that satisfies fund.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, a *domain.Application) error
	GetByFundIDFn          func(ctx context.Context, fundID string) (*domain.Application, error)
	GetByFundIDForUpdateFn func(ctx context.Context, fundID string) (*domain.Application, error)
	ListByProviderFn       func(ctx context.Context, providerID string) ([]domain.Application, error)
	ListAllFn              func(ctx context.Context) ([]domain.Application, error)
	SaveFn                 func(ctx context.Context, a *domain.Application) error
	SumApprovedFn          func(ctx context.Context) (decimal.Decimal, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByFundID(ctx context.Context, fundID string) (*domain.Application, error) {
	if m.GetByFundIDFn != nil {
		return m.GetByFundIDFn(ctx, fundID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByFundIDForUpdate(ctx context.Context, fundID string) (*domain.Application, error) {
	if m.GetByFundIDForUpdateFn != nil {
		return m.GetByFundIDForUpdateFn(ctx, fundID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByProvider(ctx context.Context, providerID string) ([]domain.Application, error) {
	if m.ListByProviderFn != nil {
		return m.ListByProviderFn(ctx, providerID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Application, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) SumApproved(ctx context.Context) (decimal.Decimal, error) {
	if m.SumApprovedFn != nil {
		return m.SumApprovedFn(ctx)
	}
	return decimal.Zero, nil
}
