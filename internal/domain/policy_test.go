package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PolicyTestSuite struct {
	suite.Suite
	now time.Time
}

func TestPolicySuite(t *testing.T) {
	suite.Run(t, new(PolicyTestSuite))
}

func (s *PolicyTestSuite) SetupTest() {
	s.now = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)
}

func (s *PolicyTestSuite) TestIsOverdue() {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }

	cases := []struct {
		name   string
		status DueStatusType
		due    time.Time
		want   bool
	}{
		{name: "pending yesterday", status: DueStatusPending, due: day(14), want: true},
		{name: "pending today", status: DueStatusPending, due: day(15), want: false},
		{name: "pending tomorrow", status: DueStatusPending, due: day(16), want: false},
		{name: "paid long ago", status: DueStatusPaid, due: day(1), want: false},
		{name: "already overdue", status: DueStatusOverdue, due: day(1), want: false},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			due := &DueEntry{Status: t.status, DueDate: t.due}
			s.Equal(t.want, IsOverdue(due, s.now))
		})
	}
}

func (s *PolicyTestSuite) TestDeriveStatus_PaidIsTerminal() {
	due := &DueEntry{Status: DueStatusPaid, DueDate: s.now.AddDate(-1, 0, 0)}
	for i := range 5 {
		s.Equal(DueStatusPaid, DeriveStatus(due, s.now.AddDate(0, 0, i*30)))
	}

	pending := &DueEntry{Status: DueStatusPending, DueDate: s.now.AddDate(0, 0, -2)}
	s.Equal(DueStatusOverdue, DeriveStatus(pending, s.now))
}

func (s *PolicyTestSuite) TestOverdueCutoff_UsesUTC() {
	loc := time.FixedZone("UTC+5", 5*60*60)
	// 02:00 по UTC+5 это 21:00 предыдущего дня по UTC.
	local := time.Date(2025, 3, 16, 2, 0, 0, 0, loc)
	s.Equal(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), OverdueCutoff(local))
}

func (s *PolicyTestSuite) TestCanTransition() {
	s.True(CanTransition(DueStatusPending, DueStatusPaid))
	s.True(CanTransition(DueStatusPending, DueStatusOverdue))
	s.True(CanTransition(DueStatusOverdue, DueStatusPaid))

	s.False(CanTransition(DueStatusPaid, DueStatusOverdue))
	s.False(CanTransition(DueStatusPaid, DueStatusPending))
	s.False(CanTransition(DueStatusOverdue, DueStatusPending))
}

func (s *PolicyTestSuite) TestPaymentTier() {
	cases := []struct {
		name      string
		total     int64
		paid      int64
		wantTier  RelationshipTierType
		wantRatio string
	}{
		{name: "no dues", total: 0, paid: 0, wantTier: TierNew},
		{name: "all paid", total: 4, paid: 4, wantTier: TierExcellent, wantRatio: "1"},
		{name: "just above 0.9", total: 100, paid: 91, wantTier: TierExcellent, wantRatio: "0.91"},
		{name: "exactly 0.9", total: 10, paid: 9, wantTier: TierGood, wantRatio: "0.9"},
		{name: "exactly 0.7", total: 10, paid: 7, wantTier: TierFair, wantRatio: "0.7"},
		{name: "between", total: 5, paid: 4, wantTier: TierGood, wantRatio: "0.8"},
		{name: "none paid", total: 3, paid: 0, wantTier: TierFair, wantRatio: "0"},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			tier, ratio := PaymentTier(t.total, t.paid)
			s.Equal(t.wantTier, tier)
			if t.wantRatio == "" {
				s.Nil(ratio)
				return
			}
			s.Require().NotNil(ratio)
			s.True(decimal.RequireFromString(t.wantRatio).Equal(*ratio), "ratio %s", ratio)
		})
	}
}

func (s *PolicyTestSuite) TestValidateDueDates() {
	d1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 7)

	s.NoError(ValidateDueDates(d1, d2))
	s.NoError(ValidateDueDates(d1, d1))

	err := ValidateDueDates(d2, d1)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrValidation))

	var vErr *ValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Equal("dueDate", vErr.Field)

	s.ErrorIs(ValidateDueDates(time.Time{}, d1), ErrValidation)
}

func (s *PolicyTestSuite) TestValidateAmountMax() {
	s.NoError(ValidateAmountMax("amount", MaxAmount, MaxAmount))
	s.NoError(ValidateAmountMax("amount", decimal.RequireFromString("0.01"), MaxSmallAmount))

	err := ValidateAmountMax("amount", MaxAmount.Add(decimal.RequireFromString("0.01")), MaxAmount)
	s.Require().ErrorIs(err, ErrValidation)

	var vErr *ValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Equal("amount", vErr.Field)
	s.Contains(vErr.Reason, "9999999999.99")

	s.ErrorIs(ValidateAmountMax("monthly_rent", MaxAmount, MaxSmallAmount), ErrValidation)
	s.True(MaxSmallAmount.LessThan(MaxAmount) && MaxAmount.LessThan(MaxTurnover))
}

func (s *PolicyTestSuite) TestTopics() {
	s.Equal(Topic("user_42"), PartyTopic(42))
	s.Equal(Topic("type_supplier"), RoleTopic(RoleSupplier))

	topic, ok := DefaultTopic(EventDueCreated)
	s.True(ok)
	s.Equal(RoleTopic(RoleRetailer), topic)

	topic, ok = DefaultTopic(EventPaymentMade)
	s.True(ok)
	s.Equal(RoleTopic(RoleSupplier), topic)

	_, ok = DefaultTopic(EventCreditLimitUpdated)
	s.False(ok)

	parsed, err := ParseTopic("user_7")
	s.Require().NoError(err)
	s.Equal(PartyTopic(7), parsed)

	_, err = ParseTopic("type_admin")
	s.Error(err)
	_, err = ParseTopic("user_x")
	s.Error(err)
}
