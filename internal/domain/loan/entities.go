package loan

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusPaid     Status = "paid"
)

type Category string

const (
	CategoryHouse Category = "house"
	CategoryCar   Category = "car"
)

// Label returns the display name used in validation messages.
func (c Category) Label() string {
	switch c {
	case CategoryHouse:
		return "House Loan"
	case CategoryCar:
		return "Car Loan"
	default:
		return string(c)
	}
}

func (c Category) Valid() bool { return c == CategoryHouse || c == CategoryCar }

type Loan struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID       string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	CustomerID   string          `gorm:"size:32;index:idx_loans_customer" json:"customer_id"`
	Category     Category        `gorm:"size:20;index" json:"category"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	// Term is the loan term in months.
	Term         int             `gorm:"column:term" json:"term"`
	InterestRate decimal.Decimal `gorm:"type:decimal(4,2)" json:"interest_rate"`
	Status       Status          `gorm:"size:20;default:'pending';index" json:"status"`
	// AutoRejected marks a rejection produced by the funds-ceiling downgrade,
	// not a direct bank decision.
	AutoRejected bool           `gorm:"column:auto_rejected" json:"-"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
