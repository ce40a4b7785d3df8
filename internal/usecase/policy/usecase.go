package policy

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	domainLoan "loanbook/internal/domain/loan"
	domain "loanbook/internal/domain/policy"
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

type CreatePolicyInput struct {
	Category     string
	MinAmount    decimal.Decimal
	MaxAmount    decimal.Decimal
	InterestRate decimal.Decimal
	Duration     int
}

type PolicyDTO struct {
	PolicyID     string          `json:"policy_id"`
	OwnerID      string          `json:"owner_id"`
	Category     string          `json:"category"`
	MinAmount    decimal.Decimal `json:"min_amount"`
	MaxAmount    decimal.Decimal `json:"max_amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Duration     int             `json:"duration"`
	Active       bool            `json:"active"`
}

func toDTO(p *domain.Policy) *PolicyDTO {
	return &PolicyDTO{
		PolicyID:     p.PolicyID,
		OwnerID:      p.OwnerID,
		Category:     string(p.Category),
		MinAmount:    p.MinAmount,
		MaxAmount:    p.MaxAmount,
		InterestRate: p.InterestRate,
		Duration:     p.Duration,
		Active:       p.Active,
	}
}

// Create activates a new policy for a category. Any previously active policy
// for that category is deactivated in the same transaction, so at most one
// policy is active per category at any time.
func (u *Usecase) Create(ctx context.Context, p user.Principal, in CreatePolicyInput) (*PolicyDTO, error) {
	if !p.Role.Can(user.ResourcePolicies, user.CapCreate) {
		return nil, user.ErrPermission
	}
	cat := domainLoan.Category(in.Category)
	if !cat.Valid() || in.Duration <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.MinAmount.LessThanOrEqual(decimal.Zero) || in.MaxAmount.LessThan(in.MinAmount) {
		return nil, fmt.Errorf("%w: amount range", domain.ErrInvalidInput)
	}

	pol := &domain.Policy{
		PolicyID:     id.NewID32(),
		OwnerID:      p.UserID,
		Category:     cat,
		MinAmount:    in.MinAmount,
		MaxAmount:    in.MaxAmount,
		InterestRate: in.InterestRate,
		Duration:     in.Duration,
		Active:       true,
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Policies.DeactivateByCategory(ctx, cat); err != nil {
			return err
		}
		return r.Policies.Create(ctx, pol)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(pol), nil
}

// List returns the policies the caller owns; bank personnel only see their
// own, everyone else sees nothing.
func (u *Usecase) List(ctx context.Context, p user.Principal) ([]PolicyDTO, error) {
	if !p.Role.Can(user.ResourcePolicies, user.CapViewOwn) {
		return []PolicyDTO{}, nil
	}
	ps, err := u.repo.ListByOwner(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]PolicyDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *toDTO(&ps[i]))
	}
	return out, nil
}
