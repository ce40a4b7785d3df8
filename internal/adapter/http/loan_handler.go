package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loanbook/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	Category     string          `json:"category"      validate:"required,oneof=house car"`
	Amount       decimal.Decimal `json:"amount"        validate:"required,gt=0,dec2"`
	Term         int             `json:"term"          validate:"required,gt=0"`
	InterestRate decimal.Decimal `json:"interest_rate" validate:"required,gt=0,dec2"`
}

type updateLoanReq struct {
	Category     *string          `json:"category"      validate:"omitempty,oneof=house car"`
	Amount       *decimal.Decimal `json:"amount"        validate:"omitempty,gt=0,dec2"`
	Term         *int             `json:"term"          validate:"omitempty,gt=0"`
	InterestRate *decimal.Decimal `json:"interest_rate" validate:"omitempty,gt=0,dec2"`
	Status       *string          `json:"status"        validate:"omitempty,oneof=pending approved rejected paid"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	p, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), p, loan.CreateLoanInput{
		Category:     req.Category,
		Amount:       req.Amount,
		Term:         req.Term,
		InterestRate: req.InterestRate,
	})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	p, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	dto, err := h.uc.Get(c.Request().Context(), p, c.Param("loan_id"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	p, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	dtos, err := h.uc.List(c.Request().Context(), p, c.QueryParam("category"))
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

// UpdateLoan is the validate-and-resolve operation: a partial update whose
// outcome may be an auto-rejection instead of an error.
func (h *LoanHandler) UpdateLoan(c echo.Context) error {
	p, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var req updateLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), p, c.Param("loan_id"), loan.UpdateLoanInput{
		Category:     req.Category,
		Amount:       req.Amount,
		Term:         req.Term,
		InterestRate: req.InterestRate,
		Status:       req.Status,
	})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
