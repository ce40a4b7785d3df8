package user

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("user not found")
	// ErrPermission is returned whenever the caller's role or ownership does
	// not allow the requested operation.
	ErrPermission = errors.New("permission denied")
)

type Role string

const (
	RoleProvider Role = "provider"
	RoleCustomer Role = "customer"
	RoleBank     Role = "bank"
)

type User struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID    string    `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Username  string    `gorm:"size:150;uniqueIndex:ux_users_username" json:"username"`
	Role      Role      `gorm:"size:20" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

// Provider is the lending-side profile of a user.
type Provider struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	ProviderID  string          `gorm:"size:32;uniqueIndex:ux_providers_provider_id" json:"provider_id"`
	UserID      string          `gorm:"size:32;uniqueIndex:ux_providers_user_id" json:"user_id"`
	TotalBudget decimal.Decimal `gorm:"type:decimal(12,2)" json:"total_budget"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Provider) TableName() string { return "loan_providers" }

// Customer is the borrowing-side profile of a user. Bank personnel may also
// carry one, which lets them pay against their own loans.
type Customer struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	CustomerID string    `gorm:"size:32;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	UserID     string    `gorm:"size:32;uniqueIndex:ux_customers_user_id" json:"user_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string { return "loan_customers" }

// Principal is the authenticated caller as seen by handlers and usecases.
// Profile ids are empty when the user has no matching profile.
type Principal struct {
	UserID     string
	Role       Role
	ProviderID string
	CustomerID string
}
