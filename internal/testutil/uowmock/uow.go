package uowmock

import (
	"context"

	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

// UoW is a function-backed mock that satisfies uow.UnitOfWork. By default it
// is a passthrough: WithinTx runs fn against the Repos wired into the mock,
// and WithinLoanTx fetches the loan through Repos.Loans first, mirroring the
// real unit of work minus the transaction.
type UoW struct {
	Repos uow.Repos

	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error
}

func New(r uow.Repos) *UoW { return &UoW{Repos: r} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	l, err := m.Repos.Loans.GetByLoanIDForUpdate(ctx, loanID)
	if err != nil {
		return err
	}
	return fn(m.Repos, l)
}
