package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"loanbook/internal/adapter/middleware"
	fundDomain "loanbook/internal/domain/fund"
	loanDomain "loanbook/internal/domain/loan"
	paymentDomain "loanbook/internal/domain/payment"
	policyDomain "loanbook/internal/domain/policy"
	userDomain "loanbook/internal/domain/user"
)

// writeUsecaseError maps domain errors to transport responses. Engine
// verdicts surface as 400 with the rule message; everything else the caller
// could not have fixed stays generic.
func writeUsecaseError(c echo.Context, err error) error {
	var ve *loanDomain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Message})
	case errors.Is(err, userDomain.ErrPermission):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "You do not have permission to perform this action."})
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, fundDomain.ErrNotFound),
		errors.Is(err, policyDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, loanDomain.ErrInvalidInput),
		errors.Is(err, fundDomain.ErrInvalidInput),
		errors.Is(err, policyDomain.ErrInvalidInput),
		errors.Is(err, paymentDomain.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, fundDomain.ErrAlreadyDecided):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		// do not leak internals to the client
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// principalFrom pulls the authenticated caller set by the auth middleware.
func principalFrom(c echo.Context) (userDomain.Principal, bool) {
	p, ok := c.Get(middleware.PrincipalContextKey).(userDomain.Principal)
	return p, ok
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
