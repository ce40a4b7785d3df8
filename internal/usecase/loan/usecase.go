package loan

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "loanbook/internal/domain/loan"
	"loanbook/internal/domain/uow"
	"loanbook/internal/domain/user"
	"loanbook/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx}
}

// Create opens a pending loan for the calling customer. The policy rules run
// up front so a request that could never be approved is refused immediately;
// the funds ceiling is not consulted for pending loans.
func (u *Usecase) Create(ctx context.Context, p user.Principal, in CreateLoanInput) (*LoanDTO, error) {
	if !p.Role.Can(user.ResourceLoans, user.CapCreate) || p.CustomerID == "" {
		return nil, user.ErrPermission
	}
	cat := domain.Category(in.Category)
	if !cat.Valid() || in.Amount.LessThanOrEqual(decimal.Zero) || in.Term <= 0 {
		return nil, domain.ErrInvalidInput
	}

	l := &domain.Loan{
		LoanID:       id.NewID32(),
		CustomerID:   p.CustomerID,
		Category:     cat,
		Amount:       in.Amount,
		Term:         in.Term,
		InterestRate: in.InterestRate,
		Status:       domain.StatusPending,
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := Validate(ctx, r, l); err != nil {
			return err
		}
		return r.Loans.Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, p user.Principal, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	switch {
	case p.Role.Can(user.ResourceLoans, user.CapViewAll):
	case p.Role.Can(user.ResourceLoans, user.CapViewOwn) && l.CustomerID == p.CustomerID:
	default:
		return nil, user.ErrPermission
	}
	return toDTO(l), nil
}

// List returns the loans the caller may see: all of them for bank personnel,
// their own for customers, none for anyone else.
func (u *Usecase) List(ctx context.Context, p user.Principal, category string) ([]LoanDTO, error) {
	f := domain.ListFilter{Category: domain.Category(category)}
	switch {
	case p.Role.Can(user.ResourceLoans, user.CapViewAll):
	case p.Role.Can(user.ResourceLoans, user.CapViewOwn):
		f.CustomerID = p.CustomerID
	default:
		return []LoanDTO{}, nil
	}
	ls, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

// Update applies a partial update, validates the result inside one
// transaction, and persists it. A funds-ceiling failure is not surfaced:
// the loan is downgraded to rejected and saved, and the response carries the
// auto-reject annotation. Every other validation failure aborts the update
// and leaves the stored loan untouched.
func (u *Usecase) Update(ctx context.Context, p user.Principal, loanID string, in UpdateLoanInput) (*LoanDTO, error) {
	if !p.Role.Can(user.ResourceLoans, user.CapMutate) {
		return nil, user.ErrPermission
	}

	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		next := *l
		if in.Category != nil {
			c := domain.Category(*in.Category)
			if !c.Valid() {
				return fmt.Errorf("%w: category", domain.ErrInvalidInput)
			}
			next.Category = c
		}
		if in.Amount != nil {
			next.Amount = *in.Amount
		}
		if in.Term != nil {
			next.Term = *in.Term
		}
		if in.InterestRate != nil {
			next.InterestRate = *in.InterestRate
		}
		if in.Status != nil {
			s := domain.Status(*in.Status)
			switch s {
			case domain.StatusPending, domain.StatusApproved, domain.StatusRejected, domain.StatusPaid:
				next.Status = s
			default:
				return fmt.Errorf("%w: status", domain.ErrInvalidInput)
			}
		}

		switch verr := Validate(ctx, r, &next); {
		case verr == nil:
			next.AutoRejected = false
		case domain.IsKind(verr, domain.KindFundsExceeded):
			next.Status = domain.StatusRejected
			next.AutoRejected = true
		default:
			return verr
		}

		if err := r.Loans.Save(ctx, &next); err != nil {
			return err
		}
		dto = toDTO(&next)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}
