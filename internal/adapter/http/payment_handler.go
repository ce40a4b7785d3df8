package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loanbook/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createPaymentReq struct {
	LoanID string          `json:"loan_id" validate:"required,hex32"`
	Amount decimal.Decimal `json:"amount"  validate:"required,gt=0,dec2"`
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	p, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var req createPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), p, payment.CreatePaymentInput{
		LoanID: req.LoanID,
		Amount: req.Amount,
	})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	p, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	loanID := c.QueryParam("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id query param"})
	}
	dtos, err := h.uc.List(c.Request().Context(), p, loanID)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
