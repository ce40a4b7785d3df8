package fund

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("fund application not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrAlreadyDecided = errors.New("fund application already decided")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Application is a provider's offer of funds. Only approved applications
// count toward the funding ceiling; the amount is immutable once created.
type Application struct {
	ID         uint64          `gorm:"primaryKey;column:id" json:"-"`
	FundID     string          `gorm:"size:32;uniqueIndex:ux_funds_fund_id" json:"fund_id"`
	ProviderID string          `gorm:"size:32;index:idx_funds_provider" json:"provider_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Status     Status          `gorm:"size:20;default:'pending';index" json:"status"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "fund_applications" }
