package mysql

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	fundDomain "loanbook/internal/domain/fund"
)

type FundRepository struct{ db *gorm.DB }

func NewFundRepository(db *gorm.DB) *FundRepository { return &FundRepository{db: db} }

func (r *FundRepository) Create(ctx context.Context, a *fundDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *FundRepository) Save(ctx context.Context, a *fundDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *FundRepository) GetByFundID(ctx context.Context, fundID string) (*fundDomain.Application, error) {
	var out fundDomain.Application
	res := r.db.WithContext(ctx).Where("fund_id = ?", fundID).First(&out)
	return &out, res.Error
}

func (r *FundRepository) GetByFundIDForUpdate(ctx context.Context, fundID string) (*fundDomain.Application, error) {
	var out fundDomain.Application
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("fund_id = ?", fundID).
		First(&out)
	return &out, res.Error
}

func (r *FundRepository) ListByProvider(ctx context.Context, providerID string) ([]fundDomain.Application, error) {
	var out []fundDomain.Application
	res := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *FundRepository) ListAll(ctx context.Context) ([]fundDomain.Application, error) {
	var out []fundDomain.Application
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

// SumApproved recomputes the approved funding ceiling on every call.
func (r *FundRepository) SumApproved(ctx context.Context) (decimal.Decimal, error) {
	row := r.db.WithContext(ctx).Model(&fundDomain.Application{}).
		Where("status = ?", fundDomain.StatusApproved).
		Select("COALESCE(SUM(amount), 0)").
		Row()
	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
