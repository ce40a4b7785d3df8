package loan

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "loanbook/internal/domain/loan"
	"loanbook/internal/domain/policy"
	"loanbook/internal/domain/uow"
)

// Validate applies the lending rules to a candidate loan against the current
// persisted state. First failure wins; later rules are not evaluated. It is a
// pure predicate: nothing is written.
//
// Rule order:
//  1. funds ceiling (approved loans may not exceed approved provider funds),
//     evaluated only when the candidate status is approved
//  2. an active policy must exist for the category (newest one wins)
//  3. amount within the policy range
//  4. interest rate equal to the policy rate
//  5. term equal to the policy duration
func Validate(ctx context.Context, r uow.Repos, l *domain.Loan) error {
	if l.Status == domain.StatusApproved {
		approvedFunds, err := r.Funds.SumApproved(ctx)
		if err != nil {
			return err
		}
		approvedLoans, err := r.Loans.SumApprovedExcluding(ctx, l.LoanID)
		if err != nil {
			return err
		}
		if approvedLoans.Add(l.Amount).GreaterThan(approvedFunds) {
			return &domain.ValidationError{
				Kind:    domain.KindFundsExceeded,
				Message: "Total approved loans cannot exceed total approved funds from providers.",
			}
		}
	}

	p, err := r.Policies.ActiveByCategory(ctx, l.Category)
	if err != nil {
		if errors.Is(err, policy.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.ValidationError{
				Kind: domain.KindNoActivePolicy,
				Message: fmt.Sprintf("No active loan policy found for %s. Please contact bank personnel.",
					l.Category.Label()),
			}
		}
		return err
	}

	if l.Amount.LessThan(p.MinAmount) || l.Amount.GreaterThan(p.MaxAmount) {
		return &domain.ValidationError{
			Kind: domain.KindAmountOutOfRange,
			Message: fmt.Sprintf("For %s, loan amount must be between %s and %s.",
				l.Category.Label(), p.MinAmount.StringFixed(2), p.MaxAmount.StringFixed(2)),
		}
	}
	if !l.InterestRate.Equal(p.InterestRate) {
		return &domain.ValidationError{
			Kind: domain.KindRateMismatch,
			Message: fmt.Sprintf("For %s, interest rate must be %s as per policy.",
				l.Category.Label(), p.InterestRate.StringFixed(2)),
		}
	}
	if l.Term != p.Duration {
		return &domain.ValidationError{
			Kind: domain.KindTermMismatch,
			Message: fmt.Sprintf("For %s, loan term must be %d months as per policy.",
				l.Category.Label(), p.Duration),
		}
	}
	return nil
}
