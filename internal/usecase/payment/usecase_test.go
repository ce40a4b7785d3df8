package payment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	loanDomain "loanbook/internal/domain/loan"
	domain "loanbook/internal/domain/payment"
	"loanbook/internal/domain/user"
	"loanbook/internal/testutil/loanmock"
	"loanbook/internal/testutil/paymentmock"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

const (
	ownLoanID   = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	otherLoanID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	customerID  = "cccccccccccccccccccccccccccccccc"
)

func loans() *loanmock.Repo {
	return &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
			switch loanID {
			case ownLoanID:
				return &loanDomain.Loan{LoanID: ownLoanID, CustomerID: customerID}, nil
			case otherLoanID:
				return &loanDomain.Loan{LoanID: otherLoanID, CustomerID: strings.Repeat("d", 32)}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func customer() user.Principal {
	return user.Principal{UserID: strings.Repeat("1", 32), Role: user.RoleCustomer, CustomerID: customerID}
}

func TestCreate_OwnLoan(t *testing.T) {
	var created *domain.Payment
	repo := &paymentmock.Repo{
		CreateFn: func(ctx context.Context, p *domain.Payment) error { created = p; return nil },
	}
	uc := NewUsecase(repo, loans())

	dto, err := uc.Create(context.Background(), customer(), CreatePaymentInput{LoanID: ownLoanID, Amount: dec("250.00")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(dto.PaymentID) != 32 || dto.LoanID != ownLoanID {
		t.Fatalf("dto = %+v", dto)
	}
	if !created.Amount.Equal(dec("250.00")) {
		t.Fatalf("amount = %s", created.Amount)
	}
}

func TestCreate_SomeoneElsesLoan(t *testing.T) {
	uc := NewUsecase(&paymentmock.Repo{}, loans())
	_, err := uc.Create(context.Background(), customer(), CreatePaymentInput{LoanID: otherLoanID, Amount: dec("250.00")})
	if !errors.Is(err, user.ErrPermission) {
		t.Fatalf("err = %v, want permission denied", err)
	}
}

func TestCreate_ProviderForbidden(t *testing.T) {
	uc := NewUsecase(&paymentmock.Repo{}, loans())
	p := user.Principal{UserID: strings.Repeat("1", 32), Role: user.RoleProvider, ProviderID: strings.Repeat("f", 32)}
	_, err := uc.Create(context.Background(), p, CreatePaymentInput{LoanID: ownLoanID, Amount: dec("250.00")})
	if !errors.Is(err, user.ErrPermission) {
		t.Fatalf("err = %v, want permission denied", err)
	}
}

func TestCreate_BankWithoutCustomerProfileForbidden(t *testing.T) {
	uc := NewUsecase(&paymentmock.Repo{}, loans())
	p := user.Principal{UserID: strings.Repeat("2", 32), Role: user.RoleBank}
	_, err := uc.Create(context.Background(), p, CreatePaymentInput{LoanID: ownLoanID, Amount: dec("250.00")})
	if !errors.Is(err, user.ErrPermission) {
		t.Fatalf("err = %v, want permission denied", err)
	}
}

func TestCreate_BankWithCustomerProfilePaysOwnLoan(t *testing.T) {
	uc := NewUsecase(&paymentmock.Repo{}, loans())
	p := user.Principal{UserID: strings.Repeat("2", 32), Role: user.RoleBank, CustomerID: customerID}
	if _, err := uc.Create(context.Background(), p, CreatePaymentInput{LoanID: ownLoanID, Amount: dec("250.00")}); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestCreate_LoanNotFound(t *testing.T) {
	uc := NewUsecase(&paymentmock.Repo{}, loans())
	_, err := uc.Create(context.Background(), customer(), CreatePaymentInput{LoanID: strings.Repeat("9", 32), Amount: dec("250.00")})
	if !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestList_OwnerAndBank(t *testing.T) {
	repo := &paymentmock.Repo{
		ListByLoanIDFn: func(ctx context.Context, loanID string) ([]domain.Payment, error) {
			return []domain.Payment{{PaymentID: strings.Repeat("e", 32), LoanID: loanID, Amount: dec("100")}}, nil
		},
	}
	uc := NewUsecase(repo, loans())

	if _, err := uc.List(context.Background(), customer(), ownLoanID); err != nil {
		t.Fatalf("owner list: %v", err)
	}
	bank := user.Principal{UserID: strings.Repeat("2", 32), Role: user.RoleBank}
	if _, err := uc.List(context.Background(), bank, otherLoanID); err != nil {
		t.Fatalf("bank list: %v", err)
	}
	if _, err := uc.List(context.Background(), customer(), otherLoanID); !errors.Is(err, user.ErrPermission) {
		t.Fatal("customer must not list payments on someone else's loan")
	}
}
