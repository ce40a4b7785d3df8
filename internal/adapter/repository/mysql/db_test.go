package mysql

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	fundDomain "loanbook/internal/domain/fund"
	loanDomain "loanbook/internal/domain/loan"
	paymentDomain "loanbook/internal/domain/payment"
	policyDomain "loanbook/internal/domain/policy"
	userDomain "loanbook/internal/domain/user"
)

// openTestDB creates an in-memory sqlite DB with the full schema. The domain
// models avoid backend-specific column types, so they migrate as-is.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userDomain.User{}, &userDomain.Provider{}, &userDomain.Customer{},
		&policyDomain.Policy{}, &fundDomain.Application{},
		&loanDomain.Loan{}, &paymentDomain.Payment{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}
