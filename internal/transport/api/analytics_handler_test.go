package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AnalyticsHandlerTestSuite struct {
	routerSuite
	supplier domain.Actor
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	s.routerSuite.SetupTest()
	s.supplier = domain.Actor{PartyID: testSupplierID, Role: domain.RoleSupplier}
}

func (s *AnalyticsHandlerTestSuite) TestStats() {
	s.mockAnalyticsService.EXPECT().DashboardStats(gomock.Any(), s.supplier, gomock.Any()).
		Return(&service.DashboardStats{
			TotalOutstanding: "0.00",
			ActiveRetailers:  0,
			MonthlySales:     "0.00",
			OverdueAmount:    "0.00",
		}, nil).Times(1)

	status, body := s.do(http.MethodGet, RouteGroup+DashboardStatsRoute, nil, s.supplierJWT)
	s.Require().Equal(http.StatusOK, status)
	s.JSONEq(`{"totalOutstanding":"0.00","activeRetailers":0,"monthlySales":"0.00","overdueAmount":"0.00"}`,
		string(body))
}

func (s *AnalyticsHandlerTestSuite) TestAnalytics() {
	s.mockAnalyticsService.EXPECT().Analytics(gomock.Any(), s.supplier, gomock.Any()).
		Return(&service.Analytics{
			Transactions:   []service.DailyTransactions{{Date: "2025-01-02", Amount: "120.50"}},
			PaymentTrends:  []service.PaymentTrend{{Month: "2025-01", OnTime: 3, Late: 1}},
			RetailerGrowth: []service.RetailerGrowth{},
		}, nil).Times(1)

	status, body := s.do(http.MethodGet, RouteGroup+DashboardAnalyticsRoute, nil, s.supplierJWT)
	s.Require().Equal(http.StatusOK, status)
	s.JSONEq(`{
		"transactions":[{"date":"2025-01-02","amount":"120.50"}],
		"paymentTrends":[{"month":"2025-01","on_time":3,"late":1}],
		"retailerGrowth":[]
	}`, string(body))
}

func (s *AnalyticsHandlerTestSuite) TestRetailerLists() {
	parties := []domain.Party{
		{ID: 2, Role: domain.RoleRetailer, BusinessName: gofakeit.Company(), Phone: "9876543210"},
		{ID: 4, Role: domain.RoleRetailer, BusinessName: gofakeit.Company(), Phone: "9123456780"},
	}
	s.mockAnalyticsService.EXPECT().Retailers(gomock.Any(), s.supplier).Return(parties, nil).Times(1)
	s.mockAnalyticsService.EXPECT().RecentRetailers(gomock.Any(), s.supplier).Return(parties[:1], nil).Times(1)
	s.mockAnalyticsService.EXPECT().SearchRetailers(gomock.Any(), s.supplier, "corner store").
		Return([]domain.Party{}, nil).Times(1)

	cases := []struct {
		name    string
		url     string
		wantLen int
	}{
		{name: "retailers", url: RetailersRoute, wantLen: 2},
		{name: "recent", url: RetailersRecentRoute, wantLen: 1},
		{name: "search", url: RetailersSearchRoute + "?q=corner+store", wantLen: 0},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodGet, RouteGroup+t.url, nil, s.supplierJWT)
			s.Require().Equal(http.StatusOK, status)
			var res []service.PartyPayload
			s.Require().NoError(json.Unmarshal(body, &res))
			s.Len(res, t.wantLen)
			s.NotNil(res)
		})
	}
}

func (s *AnalyticsHandlerTestSuite) TestRetailerSummary() {
	ratio := "0.90"
	s.mockAnalyticsService.EXPECT().RetailerSummary(gomock.Any(), s.supplier, int64(2)).
		Return(&service.RetailerSummary{
			ID:                 2,
			PaymentHistory:     domain.TierGood,
			PaidRatio:          &ratio,
			OutstandingAmount:  "150.00",
			TotalDues:          10,
			PaidOnTime:         9,
			RecentTransactions: []service.TransactionPayload{},
		}, nil).Times(1)
	s.mockAnalyticsService.EXPECT().RetailerSummary(gomock.Any(), s.supplier, int64(3)).
		Return(nil, fmt.Errorf("retailer summary: %w", domain.ErrRecordNotFound)).Times(1)

	status, body := s.do(http.MethodGet, RouteGroup+"/retailers/2", nil, s.supplierJWT)
	s.Require().Equal(http.StatusOK, status)
	var summary service.RetailerSummary
	s.Require().NoError(json.Unmarshal(body, &summary))
	s.Equal(domain.TierGood, summary.PaymentHistory)
	s.Equal("150.00", summary.OutstandingAmount)

	status, _ = s.do(http.MethodGet, RouteGroup+"/retailers/3", nil, s.supplierJWT)
	s.Equal(http.StatusNotFound, status)

	status, _ = s.do(http.MethodGet, RouteGroup+"/retailers/2", nil, s.retailerJWT)
	s.Equal(http.StatusForbidden, status)
}
