package loanmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "loanbook/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies loan.Repository. Fill in the
// function fields a test needs; unfilled getters return context.Canceled.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListFn                 func(ctx context.Context, f domain.ListFilter) ([]domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	SumApprovedExcludingFn func(ctx context.Context, loanID string) (decimal.Decimal, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) SumApprovedExcluding(ctx context.Context, loanID string) (decimal.Decimal, error) {
	if m.SumApprovedExcludingFn != nil {
		return m.SumApprovedExcludingFn(ctx, loanID)
	}
	return decimal.Zero, nil
}
