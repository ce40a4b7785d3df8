package policymock

import (
	"context"

	domainLoan "loanbook/internal/domain/loan"
	domain "loanbook/internal/domain/policy"
)

// Repo is a function-backed mock that satisfies policy.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, p *domain.Policy) error
	ActiveByCategoryFn     func(ctx context.Context, c domainLoan.Category) (*domain.Policy, error)
	DeactivateByCategoryFn func(ctx context.Context, c domainLoan.Category) error
	ListByOwnerFn          func(ctx context.Context, ownerID string) ([]domain.Policy, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, p *domain.Policy) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) ActiveByCategory(ctx context.Context, c domainLoan.Category) (*domain.Policy, error) {
	if m.ActiveByCategoryFn != nil {
		return m.ActiveByCategoryFn(ctx, c)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) DeactivateByCategory(ctx context.Context, c domainLoan.Category) error {
	if m.DeactivateByCategoryFn != nil {
		return m.DeactivateByCategoryFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Policy, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}
	return nil, context.Canceled
}
