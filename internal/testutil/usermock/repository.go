package usermock

import (
	"context"

	domain "loanbook/internal/domain/user"
)

// Repo is a function-backed mock that satisfies user.Repository.
type Repo struct {
	GetByUserIDFn         func(ctx context.Context, userID string) (*domain.User, error)
	GetProviderByUserIDFn func(ctx context.Context, userID string) (*domain.Provider, error)
	GetCustomerByUserIDFn func(ctx context.Context, userID string) (*domain.Customer, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetProviderByUserID(ctx context.Context, userID string) (*domain.Provider, error) {
	if m.GetProviderByUserIDFn != nil {
		return m.GetProviderByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetCustomerByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	if m.GetCustomerByUserIDFn != nil {
		return m.GetCustomerByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}
