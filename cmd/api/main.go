package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loanbook/internal/adapter/http"
	"loanbook/internal/adapter/middleware"
	"loanbook/internal/adapter/repository/mysql"
	"loanbook/internal/config"
	"loanbook/internal/domain/fund"
	"loanbook/internal/domain/loan"
	"loanbook/internal/domain/payment"
	"loanbook/internal/domain/policy"
	"loanbook/internal/domain/user"
	"loanbook/internal/infrastructure/cache"
	"loanbook/internal/infrastructure/db"
	fundUC "loanbook/internal/usecase/fund"
	loanUC "loanbook/internal/usecase/loan"
	paymentUC "loanbook/internal/usecase/payment"
	policyUC "loanbook/internal/usecase/policy"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&user.User{}, &user.Provider{}, &user.Customer{},
		&policy.Policy{}, &fund.Application{}, &loan.Loan{}, &payment.Payment{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	loanRepo := mysql.NewLoanRepository(gdb)
	policyRepo := mysql.NewPolicyRepository(gdb)
	fundRepo := mysql.NewFundRepository(gdb)
	paymentRepo := mysql.NewPaymentRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC.NewUsecase(loanRepo, uow))
	policyH := httpadp.NewPolicyHandler(policyUC.NewUsecase(policyRepo, uow))
	fundH := httpadp.NewFundHandler(fundUC.NewUsecase(fundRepo, uow))
	paymentH := httpadp.NewPaymentHandler(paymentUC.NewUsecase(paymentRepo, loanRepo))

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api",
		middleware.JWTAuth([]byte(cfg.JWTSecret), userRepo),
		middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second),
	)

	api.POST("/funds", fundH.CreateFund)
	api.GET("/funds", fundH.ListFunds)
	api.POST("/funds/:fund_id/decision", fundH.DecideFund)

	api.POST("/loans", loanH.CreateLoan)
	api.GET("/loans", loanH.ListLoans)
	api.GET("/loans/:loan_id", loanH.GetLoan)
	api.PATCH("/loans/:loan_id", loanH.UpdateLoan)

	api.POST("/payments", paymentH.CreatePayment)
	api.GET("/payments", paymentH.ListPayments)

	api.POST("/policies", policyH.CreatePolicy)
	api.GET("/policies", policyH.ListPolicies)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
