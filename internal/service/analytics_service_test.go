package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/internal/service/mocks"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	uowmocks "github.com/fsdevblog/tradecredit/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockPartyRepo       *mocks.MockPartyRepository
	mockAnalyticsRepo   *mocks.MockAnalyticsRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	analyticsService    *AnalyticsService

	supplier domain.Actor
	now      time.Time
}

func TestAnalyticsServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockPartyRepo = mocks.NewMockPartyRepository(mockCtrl)
	s.mockAnalyticsRepo = mocks.NewMockAnalyticsRepository(mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(mockCtrl)

	s.supplier = domain.Actor{PartyID: 1, Role: domain.RoleSupplier}
	s.now = time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)

	for name, repo := range map[repoargs.RepositoryName]uow.Repository{
		repoargs.PartyRepoName:       s.mockPartyRepo,
		repoargs.AnalyticsRepoName:   s.mockAnalyticsRepo,
		repoargs.TransactionRepoName: s.mockTransactionRepo,
	} {
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}

	// Агрегаты читаются только в read-only транзакции.
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)
	s.mockUOW.EXPECT().
		DoReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	analyticsService, err := NewAnalyticsService(s.mockUOW)
	s.Require().NoError(err)
	s.analyticsService = analyticsService
}

func (s *AnalyticsServiceTestSuite) TestDashboardStats_NewSupplierIsZero() {
	s.mockAnalyticsRepo.EXPECT().
		DashboardTotals(gomock.Any(), s.supplier.PartyID, s.now.AddDate(0, 0, -SalesWindowDays)).
		Return(&repoargs.DashboardTotals{}, nil)

	stats, err := s.analyticsService.DashboardStats(s.T().Context(), s.supplier, s.now)
	s.Require().NoError(err)
	s.Equal(&DashboardStats{
		TotalOutstanding: "0.00",
		ActiveRetailers:  0,
		MonthlySales:     "0.00",
		OverdueAmount:    "0.00",
	}, stats)
}

func (s *AnalyticsServiceTestSuite) TestDashboardStats() {
	s.mockAnalyticsRepo.EXPECT().DashboardTotals(gomock.Any(), s.supplier.PartyID, gomock.Any()).
		Return(&repoargs.DashboardTotals{
			TotalOutstanding: decimal.RequireFromString("1500.5"),
			ActiveRetailers:  3,
			MonthlySales:     decimal.RequireFromString("820"),
			OverdueAmount:    decimal.RequireFromString("250.25"),
		}, nil)

	stats, err := s.analyticsService.DashboardStats(s.T().Context(), s.supplier, s.now)
	s.Require().NoError(err)
	s.Equal("1500.50", stats.TotalOutstanding)
	s.Equal(int64(3), stats.ActiveRetailers)
	s.Equal("820.00", stats.MonthlySales)
	s.Equal("250.25", stats.OverdueAmount)
}

func (s *AnalyticsServiceTestSuite) TestSupplierOnly() {
	retailer := domain.Actor{PartyID: 2, Role: domain.RoleRetailer}
	fintech := domain.Actor{PartyID: 3, Role: domain.RoleFintech}

	for _, actor := range []domain.Actor{retailer, fintech} {
		s.Run(string(actor.Role), func() {
			_, err := s.analyticsService.DashboardStats(s.T().Context(), actor, s.now)
			s.ErrorIs(err, domain.ErrForbidden)
			_, err = s.analyticsService.Analytics(s.T().Context(), actor, s.now)
			s.ErrorIs(err, domain.ErrForbidden)
			_, err = s.analyticsService.RetailerSummary(s.T().Context(), actor, 10)
			s.ErrorIs(err, domain.ErrForbidden)
			_, err = s.analyticsService.Retailers(s.T().Context(), actor)
			s.ErrorIs(err, domain.ErrForbidden)
			_, err = s.analyticsService.SearchRetailers(s.T().Context(), actor, "shop")
			s.ErrorIs(err, domain.ErrForbidden)
			_, err = s.analyticsService.RecentRetailers(s.T().Context(), actor)
			s.ErrorIs(err, domain.ErrForbidden)
		})
	}
}

func (s *AnalyticsServiceTestSuite) TestAnalytics() {
	from := s.now.AddDate(0, 0, -AnalyticsWindowDays)
	day1 := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)

	s.mockAnalyticsRepo.EXPECT().DailyTransactionAmounts(gomock.Any(), s.supplier.PartyID, from, s.now).
		Return([]repoargs.DailyAmount{
			{Date: day1, Amount: decimal.RequireFromString("100")},
			{Date: day2, Amount: decimal.RequireFromString("42.5")},
		}, nil)
	s.mockAnalyticsRepo.EXPECT().MonthlyPaymentTrends(gomock.Any(), s.supplier.PartyID, from, s.now).
		Return([]repoargs.MonthlyPaymentTrend{{Month: "2026-05", OnTime: 4, Late: 1}}, nil)
	s.mockAnalyticsRepo.EXPECT().MonthlyRetailerGrowth(gomock.Any(), s.supplier.PartyID, from, s.now).
		Return(nil, nil)

	res, err := s.analyticsService.Analytics(s.T().Context(), s.supplier, s.now)
	s.Require().NoError(err)
	s.Equal([]DailyTransactions{
		{Date: "2026-05-01", Amount: "100.00"},
		{Date: "2026-05-02", Amount: "42.50"},
	}, res.Transactions)
	s.Equal([]PaymentTrend{{Month: "2026-05", OnTime: 4, Late: 1}}, res.PaymentTrends)
	s.NotNil(res.RetailerGrowth)
	s.Empty(res.RetailerGrowth)
}

func (s *AnalyticsServiceTestSuite) TestRetailerSummary() {
	retailer := &domain.Party{
		ID:           10,
		Role:         domain.RoleRetailer,
		BusinessName: gofakeit.Company(),
		Phone:        gofakeit.Numerify("##########"),
		Address:      gofakeit.Street(),
	}
	s.mockPartyRepo.EXPECT().FindByID(gomock.Any(), retailer.ID).Return(retailer, nil).AnyTimes()
	s.mockPartyRepo.EXPECT().FindByID(gomock.Any(), int64(11)).
		Return(&domain.Party{ID: 11, Role: domain.RoleSupplier}, nil).AnyTimes()
	s.mockPartyRepo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound).AnyTimes()
	s.mockTransactionRepo.EXPECT().
		RecentBetween(gomock.Any(), s.supplier.PartyID, retailer.ID, RecentTransactionsLimit).
		Return([]domain.Transaction{{ID: 1, Amount: decimal.RequireFromString("10")}}, nil).AnyTimes()

	cases := []struct {
		name      string
		total     int64
		paid      int64
		wantTier  domain.RelationshipTierType
		wantRatio *string
	}{
		{name: "no dues", total: 0, paid: 0, wantTier: domain.TierNew},
		{name: "all paid", total: 10, paid: 10, wantTier: domain.TierExcellent, wantRatio: ptr("1.00")},
		{name: "exactly 0.9", total: 10, paid: 9, wantTier: domain.TierGood, wantRatio: ptr("0.90")},
		{name: "exactly 0.7", total: 10, paid: 7, wantTier: domain.TierFair, wantRatio: ptr("0.70")},
		{name: "none paid", total: 3, paid: 0, wantTier: domain.TierFair, wantRatio: ptr("0.00")},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockAnalyticsRepo.EXPECT().RelationshipTotals(gomock.Any(), s.supplier.PartyID, retailer.ID).
				Return(&repoargs.RelationshipTotals{
					TotalDues:   t.total,
					PaidDues:    t.paid,
					Outstanding: decimal.RequireFromString("300"),
				}, nil)

			summary, err := s.analyticsService.RetailerSummary(s.T().Context(), s.supplier, retailer.ID)
			s.Require().NoError(err)
			s.Equal(t.wantTier, summary.PaymentHistory)
			s.Equal(t.wantRatio, summary.PaidRatio)
			s.Equal(t.total, summary.TotalDues)
			s.Equal(t.paid, summary.PaidOnTime)
			s.Equal("300.00", summary.OutstandingAmount)
			s.Equal(retailer.BusinessName, summary.BusinessName)
			s.Len(summary.RecentTransactions, 1)
		})
	}

	s.Run("unknown retailer", func() {
		_, err := s.analyticsService.RetailerSummary(s.T().Context(), s.supplier, 404)
		s.ErrorIs(err, domain.ErrRecordNotFound)
	})
	s.Run("party is not a retailer", func() {
		_, err := s.analyticsService.RetailerSummary(s.T().Context(), s.supplier, 11)
		s.ErrorIs(err, domain.ErrRecordNotFound)
	})
}

func (s *AnalyticsServiceTestSuite) TestRetailerLists() {
	parties := []domain.Party{{ID: 10, Role: domain.RoleRetailer}, {ID: 12, Role: domain.RoleRetailer}}

	s.mockPartyRepo.EXPECT().RetailersOfSupplier(gomock.Any(), s.supplier.PartyID).Return(nil, nil)
	s.mockPartyRepo.EXPECT().RecentRetailersOfSupplier(gomock.Any(), s.supplier.PartyID, RecentRetailersLimit).
		Return(parties, nil)
	s.mockPartyRepo.EXPECT().SearchRetailers(gomock.Any(), "kirana", SearchRetailersLimit).Return(parties, nil)

	all, err := s.analyticsService.Retailers(s.T().Context(), s.supplier)
	s.Require().NoError(err)
	s.NotNil(all)
	s.Empty(all)

	recent, err := s.analyticsService.RecentRetailers(s.T().Context(), s.supplier)
	s.Require().NoError(err)
	s.Equal(parties, recent)

	found, err := s.analyticsService.SearchRetailers(s.T().Context(), s.supplier, "  kirana ")
	s.Require().NoError(err)
	s.Equal(parties, found)

	// пустой запрос в базу не уходит.
	found, err = s.analyticsService.SearchRetailers(s.T().Context(), s.supplier, "   ")
	s.Require().NoError(err)
	s.Empty(found)
}

func ptr[T any](v T) *T {
	return &v
}
