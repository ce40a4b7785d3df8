package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loanbook/internal/usecase/fund"
)

type FundHandler struct{ uc *fund.Usecase }

func NewFundHandler(uc *fund.Usecase) *FundHandler { return &FundHandler{uc: uc} }

type createFundReq struct {
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0,dec2"`
}

type decideFundReq struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

func (h *FundHandler) CreateFund(c echo.Context) error {
	p, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var req createFundReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), p, fund.CreateFundInput{Amount: req.Amount})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *FundHandler) DecideFund(c echo.Context) error {
	p, ok := principalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	var req decideFundReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Decide(c.Request().Context(), p, c.Param("fund_id"), fund.DecideFundInput{
		Approve: req.Decision == "approve",
	})
	if err != nil {
		return writeUsecaseError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *FundHandler) ListFunds(c echo.Context) error {
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
