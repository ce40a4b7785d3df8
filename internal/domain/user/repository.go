package user

import "context"

type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetProviderByUserID(ctx context.Context, userID string) (*Provider, error)
	GetCustomerByUserID(ctx context.Context, userID string) (*Customer, error)
}
