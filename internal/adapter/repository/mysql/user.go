package mysql

import (
	"context"

	"gorm.io/gorm"

	userDomain "loanbook/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetProviderByUserID(ctx context.Context, userID string) (*userDomain.Provider, error) {
	var out userDomain.Provider
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetCustomerByUserID(ctx context.Context, userID string) (*userDomain.Customer, error) {
	var out userDomain.Customer
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}
