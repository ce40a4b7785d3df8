package loan

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domain "loanbook/internal/domain/loan"
	policyDomain "loanbook/internal/domain/policy"
	"loanbook/internal/domain/uow"
	"loanbook/internal/testutil/fundmock"
	"loanbook/internal/testutil/loanmock"
	"loanbook/internal/testutil/policymock"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// housePolicy matches the canonical fixture: house loans between 50000 and
// 500000 at 4.50 for 360 months.
func housePolicy() *policyDomain.Policy {
	return &policyDomain.Policy{
		PolicyID:     strings.Repeat("p", 32),
		Category:     domain.CategoryHouse,
		MinAmount:    dec("50000"),
		MaxAmount:    dec("500000"),
		InterestRate: dec("4.50"),
		Duration:     360,
		Active:       true,
	}
}

func houseLoan(status domain.Status) *domain.Loan {
	return &domain.Loan{
		LoanID:       strings.Repeat("a", 32),
		CustomerID:   strings.Repeat("c", 32),
		Category:     domain.CategoryHouse,
		Amount:       dec("50000"),
		Term:         360,
		InterestRate: dec("4.50"),
		Status:       status,
	}
}

func reposWith(t *testing.T, p *policyDomain.Policy, approvedFunds, approvedLoans decimal.Decimal) uow.Repos {
	t.Helper()
	return uow.Repos{
		Loans: &loanmock.Repo{
			SumApprovedExcludingFn: func(ctx context.Context, loanID string) (decimal.Decimal, error) {
				return approvedLoans, nil
			},
		},
		Policies: &policymock.Repo{
			ActiveByCategoryFn: func(ctx context.Context, c domain.Category) (*policyDomain.Policy, error) {
				if p == nil || p.Category != c {
					return nil, policyDomain.ErrNotFound
				}
				return p, nil
			},
		},
		Funds: &fundmock.Repo{
			SumApprovedFn: func(ctx context.Context) (decimal.Decimal, error) {
				return approvedFunds, nil
			},
		},
	}
}

func wantKind(t *testing.T, err error, k domain.Kind) *domain.ValidationError {
	t.Helper()
	if err == nil {
		t.Fatalf("want %s error, got nil", k)
	}
	if !domain.IsKind(err, k) {
		t.Fatalf("want kind %s, got %v", k, err)
	}
	ve := err.(*domain.ValidationError)
	return ve
}

func TestValidate_PendingLoanMatchingPolicy(t *testing.T) {
	r := reposWith(t, housePolicy(), dec("0"), dec("0"))
	// A pending loan must never consult the funds ledger.
	r.Funds = &fundmock.Repo{
		SumApprovedFn: func(ctx context.Context) (decimal.Decimal, error) {
			t.Fatal("funds ledger consulted for a pending loan")
			return decimal.Zero, nil
		},
	}
	if err := Validate(context.Background(), r, houseLoan(domain.StatusPending)); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	r := reposWith(t, housePolicy(), dec("100000"), dec("0"))
	l := houseLoan(domain.StatusApproved)
	for i := 0; i < 2; i++ {
		if err := Validate(context.Background(), r, l); err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
	}
}

func TestValidate_NoActivePolicy(t *testing.T) {
	r := reposWith(t, nil, dec("0"), dec("0"))
	ve := wantKind(t, Validate(context.Background(), r, houseLoan(domain.StatusPending)), domain.KindNoActivePolicy)
	if !strings.Contains(ve.Message, "House Loan") {
		t.Fatalf("message %q does not name the category", ve.Message)
	}
}

func TestValidate_AmountOutOfRange(t *testing.T) {
	r := reposWith(t, housePolicy(), dec("0"), dec("0"))
	l := houseLoan(domain.StatusPending)
	l.Amount = dec("40000")
	ve := wantKind(t, Validate(context.Background(), r, l), domain.KindAmountOutOfRange)
	if !strings.Contains(ve.Message, "between 50000.00 and 500000.00") {
		t.Fatalf("message %q does not state the bounds", ve.Message)
	}
}

func TestValidate_RateMismatch(t *testing.T) {
	r := reposWith(t, housePolicy(), dec("0"), dec("0"))
	l := houseLoan(domain.StatusPending)
	l.InterestRate = dec("4.49")
	wantKind(t, Validate(context.Background(), r, l), domain.KindRateMismatch)
}

func TestValidate_RateEqualityIgnoresTrailingZeros(t *testing.T) {
	// 4.5 and 4.50 are the same number; exact decimal comparison must agree.
	r := reposWith(t, housePolicy(), dec("0"), dec("0"))
	l := houseLoan(domain.StatusPending)
	l.InterestRate = dec("4.5")
	if err := Validate(context.Background(), r, l); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_TermMismatch(t *testing.T) {
	r := reposWith(t, housePolicy(), dec("0"), dec("0"))
	l := houseLoan(domain.StatusPending)
	l.Term = 240
	wantKind(t, Validate(context.Background(), r, l), domain.KindTermMismatch)
}

func TestValidate_FundsExceeded(t *testing.T) {
	r := reposWith(t, housePolicy(), dec("100000"), dec("0"))
	// The funds rule runs first; the policy must not even be consulted.
	r.Policies = &policymock.Repo{
		ActiveByCategoryFn: func(ctx context.Context, c domain.Category) (*policyDomain.Policy, error) {
			t.Fatal("policy consulted after funds rule failed")
			return nil, policyDomain.ErrNotFound
		},
	}
	l := houseLoan(domain.StatusApproved)
	l.Amount = dec("250000")
	ve := wantKind(t, Validate(context.Background(), r, l), domain.KindFundsExceeded)
	if ve.Message != "Total approved loans cannot exceed total approved funds from providers." {
		t.Fatalf("message = %q", ve.Message)
	}
}

func TestValidate_FundsExactCeilingAllowed(t *testing.T) {
	// 50000 existing + 50000 candidate against a 100000 ceiling is allowed;
	// one cent more is not.
	r := reposWith(t, housePolicy(), dec("100000"), dec("50000"))
	l := houseLoan(domain.StatusApproved)
	if err := Validate(context.Background(), r, l); err != nil {
		t.Fatalf("Validate at exact ceiling: %v", err)
	}
	l.Amount = dec("50000.01")
	wantKind(t, Validate(context.Background(), r, l), domain.KindFundsExceeded)
}

func TestValidate_ExposureExcludesCandidate(t *testing.T) {
	l := houseLoan(domain.StatusApproved)
	r := reposWith(t, housePolicy(), dec("100000"), dec("0"))
	called := false
	r.Loans = &loanmock.Repo{
		SumApprovedExcludingFn: func(ctx context.Context, loanID string) (decimal.Decimal, error) {
			called = true
			if loanID != l.LoanID {
				t.Fatalf("excluded id = %q, want %q", loanID, l.LoanID)
			}
			return decimal.Zero, nil
		},
	}
	if err := Validate(context.Background(), r, l); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !called {
		t.Fatal("approved-loan exposure never queried")
	}
}

func TestValidate_DecimalSummationIsExact(t *testing.T) {
	// 0.10+0.20 style drift must not sneak a loan past the ceiling.
	p := housePolicy()
	p.MinAmount = dec("0.10")
	r := reposWith(t, p, dec("0.30"), dec("0.10"))
	l := houseLoan(domain.StatusApproved)
	l.Amount = dec("0.20")
	if err := Validate(context.Background(), r, l); err != nil {
		t.Fatalf("0.10+0.20 vs 0.30: %v", err)
	}
	l.Amount = dec("0.21")
	wantKind(t, Validate(context.Background(), r, l), domain.KindFundsExceeded)
}
