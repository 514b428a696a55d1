package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/internal/service"
)

// PartyServicer интерфейс исключительно для моков.
type PartyServicer interface {
	Register(ctx context.Context, args service.RegisterPartyArgs) (*domain.Party, string, error)
	Login(ctx context.Context, args service.LoginArgs) (*domain.Party, string, error)
	Get(ctx context.Context, partyID int64) (*domain.Party, error)
	SessionTTL() time.Duration
}

type DueServicer interface {
	Create(ctx context.Context, actor domain.Actor, args service.CreateDueArgs) (*domain.DueEntry, error)
	RecordPayment(
		ctx context.Context,
		actor domain.Actor,
		dueID int64,
		args service.RecordPaymentArgs,
	) (*domain.Payment, error)
	Get(ctx context.Context, actor domain.Actor, dueID int64) (*domain.DueEntry, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.DueEntry, error)
	Payments(ctx context.Context, actor domain.Actor, dueID int64) ([]domain.Payment, error)
}

type AnalyticsServicer interface {
	DashboardStats(ctx context.Context, actor domain.Actor, now time.Time) (*service.DashboardStats, error)
	Analytics(ctx context.Context, actor domain.Actor, now time.Time) (*service.Analytics, error)
	RetailerSummary(ctx context.Context, actor domain.Actor, retailerID int64) (*service.RetailerSummary, error)
	Retailers(ctx context.Context, actor domain.Actor) ([]domain.Party, error)
	SearchRetailers(ctx context.Context, actor domain.Actor, query string) ([]domain.Party, error)
	RecentRetailers(ctx context.Context, actor domain.Actor) ([]domain.Party, error)
}

type TransactionServicer interface {
	Create(ctx context.Context, actor domain.Actor, args service.CreateTransactionArgs) (*domain.Transaction, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.Transaction, error)
}

type CreditServicer interface {
	SaveOnboarding(ctx context.Context, actor domain.Actor, args service.OnboardingArgs) (*service.RetailerData, error)
	Profile(ctx context.Context, actor domain.Actor) (*service.Profile, error)
	ListRetailers(ctx context.Context, actor domain.Actor) ([]repoargs.RetailerCreditRow, error)
	CreateAssessment(
		ctx context.Context,
		actor domain.Actor,
		retailerID int64,
		args service.AssessmentArgs,
	) (*domain.CreditAssessment, error)
	UpdateCreditLimit(
		ctx context.Context,
		actor domain.Actor,
		retailerID int64,
		limit decimal.Decimal,
	) (*domain.RetailerProfile, error)
}

// SessionStore отзыв сессий при выходе.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
