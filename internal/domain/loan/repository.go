package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

type ListFilter struct {
	// CustomerID limits results to one customer; empty means all.
	CustomerID string
	// Category limits results to one category; empty means all.
	Category Category
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row for the enclosing transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	List(ctx context.Context, f ListFilter) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
	// SumApprovedExcluding totals the amounts of approved loans, leaving out
	// the loan with the given public id so a loan under re-validation never
	// counts against itself.
	SumApprovedExcluding(ctx context.Context, loanID string) (decimal.Decimal, error)
}
