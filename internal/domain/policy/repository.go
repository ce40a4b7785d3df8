package policy

import (
	"context"

	"loanbook/internal/domain/loan"
)

type Repository interface {
	Create(ctx context.Context, p *Policy) error
	// ActiveByCategory returns the most recently created active policy for
	// the category (most-recent-active-wins tie-break).
	ActiveByCategory(ctx context.Context, c loan.Category) (*Policy, error)
	// DeactivateByCategory clears the active flag on every active policy for
	// the category. Used when a new policy supersedes the old one.
	DeactivateByCategory(ctx context.Context, c loan.Category) error
	ListByOwner(ctx context.Context, ownerID string) ([]Policy, error)
}
