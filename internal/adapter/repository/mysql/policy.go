package mysql

import (
	"context"

	"gorm.io/gorm"

	loanDomain "loanbook/internal/domain/loan"
	policyDomain "loanbook/internal/domain/policy"
)

type PolicyRepository struct{ db *gorm.DB }

func NewPolicyRepository(db *gorm.DB) *PolicyRepository { return &PolicyRepository{db: db} }

func (r *PolicyRepository) Create(ctx context.Context, p *policyDomain.Policy) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// ActiveByCategory picks the newest active policy for the category. Creation
// time breaks ties when more than one row is still flagged active.
func (r *PolicyRepository) ActiveByCategory(ctx context.Context, c loanDomain.Category) (*policyDomain.Policy, error) {
	var out policyDomain.Policy
	res := r.db.WithContext(ctx).
		Where("active = ? AND category = ?", true, c).
		Order("created_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *PolicyRepository) DeactivateByCategory(ctx context.Context, c loanDomain.Category) error {
	return r.db.WithContext(ctx).Model(&policyDomain.Policy{}).
		Where("active = ? AND category = ?", true, c).
		Update("active", false).Error
}

func (r *PolicyRepository) ListByOwner(ctx context.Context, ownerID string) ([]policyDomain.Policy, error) {
	var out []policyDomain.Policy
	res := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
