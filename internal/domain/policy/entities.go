package policy

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"loanbook/internal/domain/loan"
)

var (
	ErrNotFound     = errors.New("policy not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Policy is the authoritative amount/rate/term constraints for a loan
// category, effective while Active. Policies are superseded by deactivation,
// never deleted, so loans approved under an old policy keep their reference.
type Policy struct {
	ID       uint64        `gorm:"primaryKey;column:id" json:"-"`
	PolicyID string        `gorm:"size:32;uniqueIndex:ux_policies_policy_id" json:"policy_id"`
	// OwnerID is the bank-personnel user who created the policy.
	OwnerID      string          `gorm:"size:32;index" json:"owner_id"`
	Category     loan.Category   `gorm:"size:20;index:idx_policies_category_active" json:"category"`
	MinAmount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"min_amount"`
	MaxAmount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"max_amount"`
	InterestRate decimal.Decimal `gorm:"type:decimal(4,2)" json:"interest_rate"`
	// Duration is the required loan term in months.
	Duration  int       `gorm:"column:duration" json:"duration"`
	Active    bool      `gorm:"index:idx_policies_category_active" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Policy) TableName() string { return "loan_policies" }
