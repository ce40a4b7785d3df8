package uow

import (
	"context"

	"loanbook/internal/domain/fund"
	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/payment"
	"loanbook/internal/domain/policy"
)

// Repos bundles the repositories bound to one transaction.
type Repos struct {
	Loans    loan.Repository
	Policies policy.Repository
	Funds    fund.Repository
	Payments payment.Repository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in. The loan
	// update path relies on this so the funds check and the persist cannot
	// interleave with a concurrent approval.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
