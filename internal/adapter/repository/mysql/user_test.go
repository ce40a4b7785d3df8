package mysql

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	userDomain "loanbook/internal/domain/user"
	"loanbook/pkg/id"
)

func TestUserRepository_Lookups(t *testing.T) {
	db := openTestDB(t)
	r := NewUserRepository(db)

	u := &userDomain.User{UserID: id.NewID32(), Username: "alice", Role: userDomain.RoleProvider}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	p := &userDomain.Provider{ProviderID: id.NewID32(), UserID: u.UserID, TotalBudget: dec(t, "1000000")}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed provider: %v", err)
	}

	got, err := r.GetByUserID(context.Background(), u.UserID)
	if err != nil || got.Role != userDomain.RoleProvider {
		t.Fatalf("GetByUserID = %+v, %v", got, err)
	}

	prov, err := r.GetProviderByUserID(context.Background(), u.UserID)
	if err != nil || prov.ProviderID != p.ProviderID {
		t.Fatalf("GetProviderByUserID = %+v, %v", prov, err)
	}

	if _, err := r.GetCustomerByUserID(context.Background(), u.UserID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("customer lookup err = %v", err)
	}
	if _, err := r.GetByUserID(context.Background(), strings.Repeat("0", 32)); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing user err = %v", err)
	}
}
