package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	fundDomain "loanbook/internal/domain/fund"
	loanDomain "loanbook/internal/domain/loan"
	policyDomain "loanbook/internal/domain/policy"
	userDomain "loanbook/internal/domain/user"
)

func TestWriteUsecaseError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation verdict",
			err:      &loanDomain.ValidationError{Kind: loanDomain.KindRateMismatch, Message: "For House Loan, interest rate must be 4.50 as per policy."},
			wantCode: http.StatusBadRequest,
			wantBody: "interest rate must be 4.50",
		},
		{
			name:     "permission",
			err:      userDomain.ErrPermission,
			wantCode: http.StatusForbidden,
			wantBody: "do not have permission",
		},
		{
			name:     "not found",
			err:      loanDomain.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: "not found",
		},
		{
			name:     "invalid input",
			err:      policyDomain.ErrInvalidInput,
			wantCode: http.StatusBadRequest,
			wantBody: "invalid input",
		},
		{
			name:     "fund already decided",
			err:      fundDomain.ErrAlreadyDecided,
			wantCode: http.StatusConflict,
			wantBody: "already decided",
		},
		{
			name:     "unexpected error stays opaque",
			err:      errors.New("dial tcp 10.0.0.5:3306: connect: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: "internal server error",
		},
	}

	e := echo.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := writeUsecaseError(c, tc.err); err != nil {
				t.Fatalf("writeUsecaseError: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("code = %d, want %d (body=%s)", rec.Code, tc.wantCode, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Fatalf("body = %s, want substring %q", rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestWriteUsecaseError_NoInternalLeak(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	secret := "password=hunter2"
	if err := writeUsecaseError(c, errors.New(secret)); err != nil {
		t.Fatalf("writeUsecaseError: %v", err)
	}
	if strings.Contains(rec.Body.String(), "hunter2") {
		t.Fatalf("response leaked the underlying error: %s", rec.Body.String())
	}
}
