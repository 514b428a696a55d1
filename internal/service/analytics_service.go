package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/pkg/uow"
)

const (
	AnalyticsWindowDays = 180
	SalesWindowDays     = 30

	SearchRetailersLimit    uint = 10
	RecentRetailersLimit    uint = 5
	RecentTransactionsLimit uint = 5
)

// AnalyticsService агрегаты по книге поставщика. Каждый метод читает данные в одной read-only транзакции
// repeatable read, поэтому все числа одного ответа относятся к одному снимку базы.
type AnalyticsService struct {
	uow uow.UOW
}

func NewAnalyticsService(u uow.UOW) (*AnalyticsService, error) {
	// проверяем, что нужные репозитории зарегистрированы.
	for _, name := range []repoargs.RepositoryName{
		repoargs.AnalyticsRepoName,
		repoargs.PartyRepoName,
		repoargs.TransactionRepoName,
	} {
		if _, err := u.GetRepository(uow.RepositoryName(name)); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}
	return &AnalyticsService{uow: u}, nil
}

type DashboardStats struct {
	TotalOutstanding string `json:"totalOutstanding"`
	ActiveRetailers  int64  `json:"activeRetailers"`
	MonthlySales     string `json:"monthlySales"`
	OverdueAmount    string `json:"overdueAmount"`
}

// DashboardStats сводка поставщика: сумма pending долгов, число ритейлеров с долгами, продажи (транзакции) за
// последние 30 дней, сумма просроченных долгов.
func (s *AnalyticsService) DashboardStats(ctx context.Context, actor domain.Actor, now time.Time) (*DashboardStats, error) {
	if err := requireRole(actor, domain.RoleSupplier); err != nil {
		return nil, err
	}

	var totals *repoargs.DashboardTotals
	txErr := s.uow.DoReadOnly(ctx, func(c context.Context, tx uow.TX) error {
		repo, err := txRepo[AnalyticsRepository](tx, repoargs.AnalyticsRepoName)
		if err != nil {
			return err
		}
		totals, err = repo.DashboardTotals(c, actor.PartyID, now.AddDate(0, 0, -SalesWindowDays))
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("dashboard stats: %w", txErr)
	}

	return &DashboardStats{
		TotalOutstanding: money(totals.TotalOutstanding),
		ActiveRetailers:  totals.ActiveRetailers,
		MonthlySales:     money(totals.MonthlySales),
		OverdueAmount:    money(totals.OverdueAmount),
	}, nil
}

type DailyTransactions struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

type PaymentTrend struct {
	Month  string `json:"month"`
	OnTime int64  `json:"on_time"`
	Late   int64  `json:"late"`
}

type RetailerGrowth struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type Analytics struct {
	Transactions   []DailyTransactions `json:"transactions"`
	PaymentTrends  []PaymentTrend      `json:"paymentTrends"`
	RetailerGrowth []RetailerGrowth    `json:"retailerGrowth"`
}

// Analytics три независимые группировки за последние 180 дней: суммы транзакций по дням, оплаченные и
// просроченные долги по месяцам, число ритейлеров по месяцам.
func (s *AnalyticsService) Analytics(ctx context.Context, actor domain.Actor, now time.Time) (*Analytics, error) {
	if err := requireRole(actor, domain.RoleSupplier); err != nil {
		return nil, err
	}
	from := now.AddDate(0, 0, -AnalyticsWindowDays)

	var daily []repoargs.DailyAmount
	var trends []repoargs.MonthlyPaymentTrend
	var growth []repoargs.MonthlyCount
	txErr := s.uow.DoReadOnly(ctx, func(c context.Context, tx uow.TX) error {
		repo, err := txRepo[AnalyticsRepository](tx, repoargs.AnalyticsRepoName)
		if err != nil {
			return err
		}
		if daily, err = repo.DailyTransactionAmounts(c, actor.PartyID, from, now); err != nil {
			return err //nolint:wrapcheck
		}
		if trends, err = repo.MonthlyPaymentTrends(c, actor.PartyID, from, now); err != nil {
			return err //nolint:wrapcheck
		}
		growth, err = repo.MonthlyRetailerGrowth(c, actor.PartyID, from, now)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("analytics: %w", txErr)
	}

	res := &Analytics{
		Transactions:   make([]DailyTransactions, len(daily)),
		PaymentTrends:  make([]PaymentTrend, len(trends)),
		RetailerGrowth: make([]RetailerGrowth, len(growth)),
	}
	for i, d := range daily {
		res.Transactions[i] = DailyTransactions{Date: d.Date.Format(dateLayout), Amount: money(d.Amount)}
	}
	for i, t := range trends {
		res.PaymentTrends[i] = PaymentTrend{Month: t.Month, OnTime: t.OnTime, Late: t.Late}
	}
	for i, g := range growth {
		res.RetailerGrowth[i] = RetailerGrowth{Month: g.Month, Count: g.Count}
	}
	return res, nil
}

type RetailerSummary struct {
	ID                 int64                       `json:"id"`
	BusinessName       string                      `json:"business_name"`
	Phone              string                      `json:"phone"`
	Address            string                      `json:"address"`
	PaymentHistory     domain.RelationshipTierType `json:"payment_history"`
	PaidRatio          *string                     `json:"paid_ratio"`
	OutstandingAmount  string                      `json:"outstanding_amount"`
	TotalDues          int64                       `json:"total_dues"`
	PaidOnTime         int64                       `json:"paid_on_time"`
	RecentTransactions []TransactionPayload        `json:"recent_transactions"`
}

// RetailerSummary отношения поставщика с ритейлером: количество долгов, оплаченные, уровень платежной дисциплины,
// непогашенный остаток и 5 последних транзакций между ними.
func (s *AnalyticsService) RetailerSummary(
	ctx context.Context,
	actor domain.Actor,
	retailerID int64,
) (*RetailerSummary, error) {
	if err := requireRole(actor, domain.RoleSupplier); err != nil {
		return nil, err
	}

	var retailer *domain.Party
	var totals *repoargs.RelationshipTotals
	var recent []domain.Transaction
	txErr := s.uow.DoReadOnly(ctx, func(c context.Context, tx uow.TX) error {
		partyRepo, err := txRepo[PartyRepository](tx, repoargs.PartyRepoName)
		if err != nil {
			return err
		}
		analyticsRepo, err := txRepo[AnalyticsRepository](tx, repoargs.AnalyticsRepoName)
		if err != nil {
			return err
		}
		transactionRepo, err := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
		if err != nil {
			return err
		}

		if retailer, err = partyRepo.FindByID(c, retailerID); err != nil {
			return err //nolint:wrapcheck
		}
		if retailer.Role != domain.RoleRetailer {
			return fmt.Errorf("%w: party %d is not a retailer", domain.ErrRecordNotFound, retailerID)
		}
		if totals, err = analyticsRepo.RelationshipTotals(c, actor.PartyID, retailerID); err != nil {
			return err //nolint:wrapcheck
		}
		recent, err = transactionRepo.RecentBetween(c, actor.PartyID, retailerID, RecentTransactionsLimit)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("retailer summary: %w", txErr)
	}

	tier, ratio := domain.PaymentTier(totals.TotalDues, totals.PaidDues)
	var paidRatio *string
	if ratio != nil {
		r := ratio.StringFixed(2)
		paidRatio = &r
	}
	return &RetailerSummary{
		ID:                 retailer.ID,
		BusinessName:       retailer.BusinessName,
		Phone:              retailer.Phone,
		Address:            retailer.Address,
		PaymentHistory:     tier,
		PaidRatio:          paidRatio,
		OutstandingAmount:  money(totals.Outstanding),
		TotalDues:          totals.TotalDues,
		PaidOnTime:         totals.PaidDues,
		RecentTransactions: NewTransactionPayloads(recent),
	}, nil
}

// Retailers ритейлеры, у которых есть хотя бы один долг перед поставщиком.
func (s *AnalyticsService) Retailers(ctx context.Context, actor domain.Actor) ([]domain.Party, error) {
	if err := requireRole(actor, domain.RoleSupplier); err != nil {
		return nil, err
	}
	return s.readParties(ctx, "listing retailers", func(c context.Context, repo PartyRepository) ([]domain.Party, error) {
		return repo.RetailersOfSupplier(c, actor.PartyID) //nolint:wrapcheck
	})
}

// SearchRetailers до 10 ритейлеров, у которых название или телефон содержит query без учета регистра.
// Пустой запрос возвращает пустой список.
func (s *AnalyticsService) SearchRetailers(ctx context.Context, actor domain.Actor, query string) ([]domain.Party, error) {
	if err := requireRole(actor, domain.RoleSupplier); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Party{}, nil
	}
	return s.readParties(ctx, "searching retailers", func(c context.Context, repo PartyRepository) ([]domain.Party, error) {
		return repo.SearchRetailers(c, query, SearchRetailersLimit) //nolint:wrapcheck
	})
}

// RecentRetailers до 5 ритейлеров поставщика, упорядоченных по дате последнего созданного долга.
func (s *AnalyticsService) RecentRetailers(ctx context.Context, actor domain.Actor) ([]domain.Party, error) {
	if err := requireRole(actor, domain.RoleSupplier); err != nil {
		return nil, err
	}
	return s.readParties(ctx, "recent retailers", func(c context.Context, repo PartyRepository) ([]domain.Party, error) {
		return repo.RecentRetailersOfSupplier(c, actor.PartyID, RecentRetailersLimit) //nolint:wrapcheck
	})
}

func (s *AnalyticsService) readParties(
	ctx context.Context,
	op string,
	fn func(c context.Context, repo PartyRepository) ([]domain.Party, error),
) ([]domain.Party, error) {
	var parties []domain.Party
	txErr := s.uow.DoReadOnly(ctx, func(c context.Context, tx uow.TX) error {
		repo, err := txRepo[PartyRepository](tx, repoargs.PartyRepoName)
		if err != nil {
			return err
		}
		parties, err = fn(c, repo)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("%s: %w", op, txErr)
	}
	if parties == nil {
		parties = []domain.Party{}
	}
	return parties, nil
}
