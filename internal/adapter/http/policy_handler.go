package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loanbook/internal/usecase/policy"
)

type PolicyHandler struct{ uc *policy.Usecase }

func NewPolicyHandler(uc *policy.Usecase) *PolicyHandler { return &PolicyHandler{uc: uc} }

type createPolicyReq struct {
	Category     string          `json:"category"      validate:"required,oneof=house car"`
	MinAmount    decimal.Decimal `json:"min_amount"    validate:"required,gt=0,dec2"`
	MaxAmount    decimal.Decimal `json:"max_amount"    validate:"required,gt=0,dec2"`
	InterestRate decimal.Decimal `json:"interest_rate" validate:"required,gt=0,dec2"`
	Duration     int             `json:"duration"      validate:"required,gt=0"`
}

func (h *PolicyHandler) CreatePolicy(c echo.Context) error {
	p, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var req createPolicyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), p, policy.CreatePolicyInput{
		Category:     req.Category,
		MinAmount:    req.MinAmount,
		MaxAmount:    req.MaxAmount,
		InterestRate: req.InterestRate,
		Duration:     req.Duration,
	})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PolicyHandler) ListPolicies(c echo.Context) error {
	p, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	dtos, err := h.uc.List(c.Request().Context(), p)
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
