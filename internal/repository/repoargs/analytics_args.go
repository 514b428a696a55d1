package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardTotals суммы по книге поставщика. Все суммы не NULL, при отсутствии строк равны нулю.
type DashboardTotals struct {
	TotalOutstanding decimal.Decimal
	ActiveRetailers  int64
	MonthlySales     decimal.Decimal
	OverdueAmount    decimal.Decimal
}

type DailyAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}

// MonthlyPaymentTrend количество оплаченных ("on_time") и просроченных ("late") долгов за календарный месяц.
type MonthlyPaymentTrend struct {
	Month  string
	OnTime int64
	Late   int64
}

type MonthlyCount struct {
	Month string
	Count int64
}

type RelationshipTotals struct {
	TotalDues   int64
	PaidDues    int64
	Outstanding decimal.Decimal
}
