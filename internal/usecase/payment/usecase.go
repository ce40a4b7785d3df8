package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domainLoan "loanbook/internal/domain/loan"
	domain "loanbook/internal/domain/payment"
	"loanbook/internal/domain/user"
	"loanbook/pkg/id"
)

type Usecase struct {
	repo  domain.Repository
	loans domainLoan.Repository
}

func NewUsecase(repo domain.Repository, loans domainLoan.Repository) *Usecase {
	return &Usecase{repo: repo, loans: loans}
}

type CreatePaymentInput struct {
	LoanID string
	Amount decimal.Decimal
}

type PaymentDTO struct {
	PaymentID string          `json:"payment_id"`
	LoanID    string          `json:"loan_id"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paid_at"`
}

func toDTO(p *domain.Payment) *PaymentDTO {
	return &PaymentDTO{PaymentID: p.PaymentID, LoanID: p.LoanID, Amount: p.Amount, PaidAt: p.PaidAt}
}

// Create records a payment against a loan. The caller must hold a customer
// profile and the loan must belong to it; bank personnel get no exemption
// here, they can only pay their own loans like anyone else.
func (u *Usecase) Create(ctx context.Context, p user.Principal, in CreatePaymentInput) (*PaymentDTO, error) {
	if !p.Role.Can(user.ResourcePayments, user.CapCreate) {
		return nil, user.ErrPermission
	}
	if p.CustomerID == "" {
		return nil, user.ErrPermission
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount", domain.ErrInvalidInput)
	}

	l, err := u.loans.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	if l.CustomerID != p.CustomerID {
		return nil, user.ErrPermission
	}

	pay := &domain.Payment{
		PaymentID: id.NewID32(),
		LoanID:    l.LoanID,
		Amount:    in.Amount,
	}
	if err := u.repo.Create(ctx, pay); err != nil {
		return nil, err
	}
	return toDTO(pay), nil
}

// List returns the payments on a loan for its owner or for bank personnel.
func (u *Usecase) List(ctx context.Context, p user.Principal, loanID string) ([]PaymentDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	switch {
	case p.Role.Can(user.ResourcePayments, user.CapViewAll):
	case p.Role.Can(user.ResourcePayments, user.CapViewOwn) && l.CustomerID == p.CustomerID:
	default:
		return nil, user.ErrPermission
	}
	ps, err := u.repo.ListByLoanID(ctx, l.LoanID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *toDTO(&ps[i]))
	}
	return out, nil
}
