package loan

import (
	"time"

	"github.com/shopspring/decimal"

	domain "loanbook/internal/domain/loan"
)

type CreateLoanInput struct {
	Category     string
	Amount       decimal.Decimal
	Term         int
	InterestRate decimal.Decimal
}

// UpdateLoanInput is a partial update; nil fields are left unchanged.
type UpdateLoanInput struct {
	Category     *string
	Amount       *decimal.Decimal
	Term         *int
	InterestRate *decimal.Decimal
	Status       *string
}

type LoanDTO struct {
	LoanID       string          `json:"loan_id"`
	CustomerID   string          `json:"customer_id"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Term         int             `json:"term"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	// Message annotates auto-rejected loans; presentation only.
	Message string `json:"message,omitempty"`
}

const autoRejectMessage = "Loan auto rejected: total available funds cannot cover this loan."

func toDTO(l *domain.Loan) *LoanDTO {
	dto := &LoanDTO{
		LoanID:       l.LoanID,
		CustomerID:   l.CustomerID,
		Category:     string(l.Category),
		Amount:       l.Amount,
		Term:         l.Term,
		InterestRate: l.InterestRate,
		Status:       string(l.Status),
		CreatedAt:    l.CreatedAt,
	}
	if l.AutoRejected {
		dto.Message = autoRejectMessage
	}
	return dto
}
