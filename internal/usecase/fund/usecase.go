package fund

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "loanbook/internal/domain/fund"
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

type CreateFundInput struct {
	Amount decimal.Decimal
}

type DecideFundInput struct {
	Approve bool
}

type FundDTO struct {
	FundID     string          `json:"fund_id"`
	ProviderID string          `json:"provider_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
}

func toDTO(a *domain.Application) *FundDTO {
	return &FundDTO{FundID: a.FundID, ProviderID: a.ProviderID, Amount: a.Amount, Status: string(a.Status)}
}

// Create opens a pending fund application for the calling provider.
func (u *Usecase) Create(ctx context.Context, p user.Principal, in CreateFundInput) (*FundDTO, error) {
	if !p.Role.Can(user.ResourceFunds, user.CapCreate) || p.ProviderID == "" {
		return nil, user.ErrPermission
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount", domain.ErrInvalidInput)
	}
	a := &domain.Application{
		FundID:     id.NewID32(),
		ProviderID: p.ProviderID,
		Amount:     in.Amount,
		Status:     domain.StatusPending,
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

// Decide resolves a pending application. Only pending applications can be
// decided; the amount is immutable.
func (u *Usecase) Decide(ctx context.Context, p user.Principal, fundID string, in DecideFundInput) (*FundDTO, error) {
	if !p.Role.Can(user.ResourceFunds, user.CapMutate) {
		return nil, user.ErrPermission
	}
	var dto *FundDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Funds.GetByFundIDForUpdate(ctx, fundID)
		if err != nil {
			return err
		}
		if a.Status != domain.StatusPending {
			return domain.ErrAlreadyDecided
		}
		if in.Approve {
			a.Status = domain.StatusApproved
		} else {
			a.Status = domain.StatusRejected
		}
		if err := r.Funds.Save(ctx, a); err != nil {
			return err
		}
		dto = toDTO(a)
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

// List returns all applications for bank personnel, the provider's own for
// providers, and nothing for anyone else.
func (u *Usecase) List(ctx context.Context, p user.Principal) ([]FundDTO, error) {
	var (
		as  []domain.Application
		err error
	)
	switch {
	case p.Role.Can(user.ResourceFunds, user.CapViewAll):
		as, err = u.repo.ListAll(ctx)
	case p.Role.Can(user.ResourceFunds, user.CapViewOwn):
		as, err = u.repo.ListByProvider(ctx, p.ProviderID)
	default:
		return []FundDTO{}, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]FundDTO, 0, len(as))
	for i := range as {
		out = append(out, *toDTO(&as[i]))
	}
	return out, nil
}
