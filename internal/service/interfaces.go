package service

import (
	"context"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// EventPublisher ретранслятор уведомлений. Доставка без гарантий, поэтому ошибок метод не возвращает.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event)
}

type PartyRepository interface {
	Create(ctx context.Context, args repoargs.CreateParty) (*domain.Party, error)
	FindByID(ctx context.Context, id int64) (*domain.Party, error)
	FindByEmail(ctx context.Context, email string) (*domain.Party, error)
	RetailersOfSupplier(ctx context.Context, supplierID int64) ([]domain.Party, error)
	RecentRetailersOfSupplier(ctx context.Context, supplierID int64, limit uint) ([]domain.Party, error)
	SearchRetailers(ctx context.Context, query string, limit uint) ([]domain.Party, error)
}

type DueRepository interface {
	Create(ctx context.Context, args repoargs.CreateDue) (*domain.DueEntry, error)
	FindByID(ctx context.Context, id int64) (*domain.DueEntry, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.DueEntry, error)
	ListForParty(ctx context.Context, partyID int64) ([]domain.DueEntry, error)
	MarkPaid(ctx context.Context, id int64) (*domain.DueEntry, error)
	LockPastDue(ctx context.Context, before time.Time, limit uint) ([]domain.DueEntry, error)
	MarkOverdue(ctx context.Context, ids []int64) ([]domain.DueEntry, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, args repoargs.CreatePayment) (*domain.Payment, error)
	ListByDue(ctx context.Context, dueID int64) ([]domain.Payment, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	ListForParty(ctx context.Context, partyID int64) ([]domain.Transaction, error)
	RecentBetween(ctx context.Context, supplierID, retailerID int64, limit uint) ([]domain.Transaction, error)
}

type AnalyticsRepository interface {
	DashboardTotals(ctx context.Context, supplierID int64, salesSince time.Time) (*repoargs.DashboardTotals, error)
	DailyTransactionAmounts(ctx context.Context, supplierID int64, from, to time.Time) ([]repoargs.DailyAmount, error)
	MonthlyPaymentTrends(
		ctx context.Context,
		supplierID int64,
		from, to time.Time,
	) ([]repoargs.MonthlyPaymentTrend, error)
	MonthlyRetailerGrowth(ctx context.Context, supplierID int64, from, to time.Time) ([]repoargs.MonthlyCount, error)
	RelationshipTotals(ctx context.Context, supplierID, retailerID int64) (*repoargs.RelationshipTotals, error)
}

type CreditRepository interface {
	SaveProfile(ctx context.Context, args repoargs.SaveRetailerProfile) (*domain.RetailerProfile, error)
	FindProfile(ctx context.Context, partyID int64) (*domain.RetailerProfile, error)
	SaveBankDetails(ctx context.Context, args repoargs.SaveBankDetails) error
	FindBankDetails(ctx context.Context, partyID int64) (*domain.BankDetails, error)
	ReplaceExistingLoans(ctx context.Context, partyID int64, loans []repoargs.CreateExistingLoan) error
	ListExistingLoans(ctx context.Context, partyID int64) ([]domain.ExistingLoan, error)
	CreateDocument(ctx context.Context, args repoargs.CreateDocument) (*domain.Document, error)
	ListDocuments(ctx context.Context, partyID int64) ([]domain.Document, error)
	CreateAssessment(ctx context.Context, args repoargs.CreateAssessment) (*domain.CreditAssessment, error)
	UpdateCreditLimit(ctx context.Context, partyID int64, limit decimal.Decimal) (*domain.RetailerProfile, error)
	ListRetailerCredit(ctx context.Context) ([]repoargs.RetailerCreditRow, error)
}
