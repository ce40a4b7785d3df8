package payment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid input")

// Payment records money received against a loan. Settlement and status
// transitions to paid are handled elsewhere; this is bookkeeping only.
type Payment struct {
	ID        uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string          `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID    string          `gorm:"size:32;index:idx_payments_loan" json:"loan_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	PaidAt    time.Time       `gorm:"autoCreateTime" json:"paid_at"`
}

func (Payment) TableName() string { return "loan_payments" }
