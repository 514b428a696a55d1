package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	"github.com/jackc/pgx/v5"
)

// AnalyticsRepository агрегирующие запросы по книге поставщика. Все суммы приводятся к нулю через COALESCE,
// поэтому пустая выборка дает нули, а не NULL.
type AnalyticsRepository struct {
	db uow.DBTX
}

func NewAnalyticsRepository(db uow.DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) DashboardTotals(
	ctx context.Context,
	supplierID int64,
	salesSince time.Time,
) (*repoargs.DashboardTotals, error) {
	var t repoargs.DashboardTotals
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(d.amount) FILTER (WHERE d.status = 'pending'), 0),
		       COUNT(DISTINCT d.retailer_id),
		       COALESCE(SUM(d.amount) FILTER (WHERE d.status = 'overdue'), 0),
		       (SELECT COALESCE(SUM(t.amount), 0)
		        FROM transactions t
		        WHERE t.supplier_id = $1 AND t.created_at >= $2)
		FROM dues d
		WHERE d.supplier_id = $1`, supplierID, salesSince,
	).Scan(&t.TotalOutstanding, &t.ActiveRetailers, &t.OverdueAmount, &t.MonthlySales)
	if err != nil {
		return nil, convertErr(err, "dashboard totals of supplier %d", supplierID)
	}
	return &t, nil
}

// DailyTransactionAmounts суммы транзакций поставщика по дням (UTC) в окне [from, to], по возрастанию даты.
func (r *AnalyticsRepository) DailyTransactionAmounts(
	ctx context.Context,
	supplierID int64,
	from, to time.Time,
) ([]repoargs.DailyAmount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT (t.created_at AT TIME ZONE 'UTC')::date AS day, COALESCE(SUM(t.amount), 0)
		FROM transactions t
		WHERE t.supplier_id = $1 AND t.created_at BETWEEN $2 AND $3
		GROUP BY day
		ORDER BY day`, supplierID, from, to)
	if err != nil {
		return nil, convertErr(err, "daily transaction amounts of supplier %d", supplierID)
	}
	res, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repoargs.DailyAmount, error) {
		var d repoargs.DailyAmount
		scanErr := row.Scan(&d.Date, &d.Amount)
		return d, scanErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, convertErr(err, "scanning daily transaction amounts of supplier %d", supplierID)
	}
	return res, nil
}

// MonthlyPaymentTrends количество оплаченных и просроченных долгов, созданных в окне, по календарным месяцам.
func (r *AnalyticsRepository) MonthlyPaymentTrends(
	ctx context.Context,
	supplierID int64,
	from, to time.Time,
) ([]repoargs.MonthlyPaymentTrend, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(date_trunc('month', d.created_at AT TIME ZONE 'UTC'), 'YYYY-MM') AS month,
		       COUNT(*) FILTER (WHERE d.status = 'paid'),
		       COUNT(*) FILTER (WHERE d.status = 'overdue')
		FROM dues d
		WHERE d.supplier_id = $1 AND d.created_at BETWEEN $2 AND $3
		GROUP BY month
		ORDER BY month`, supplierID, from, to)
	if err != nil {
		return nil, convertErr(err, "monthly payment trends of supplier %d", supplierID)
	}
	res, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repoargs.MonthlyPaymentTrend, error) {
		var m repoargs.MonthlyPaymentTrend
		scanErr := row.Scan(&m.Month, &m.OnTime, &m.Late)
		return m, scanErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, convertErr(err, "scanning monthly payment trends of supplier %d", supplierID)
	}
	return res, nil
}

// MonthlyRetailerGrowth количество различных ритейлеров, которым поставщик выдал долги, по календарным месяцам.
func (r *AnalyticsRepository) MonthlyRetailerGrowth(
	ctx context.Context,
	supplierID int64,
	from, to time.Time,
) ([]repoargs.MonthlyCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(date_trunc('month', d.created_at AT TIME ZONE 'UTC'), 'YYYY-MM') AS month,
		       COUNT(DISTINCT d.retailer_id)
		FROM dues d
		WHERE d.supplier_id = $1 AND d.created_at BETWEEN $2 AND $3
		GROUP BY month
		ORDER BY month`, supplierID, from, to)
	if err != nil {
		return nil, convertErr(err, "monthly retailer growth of supplier %d", supplierID)
	}
	res, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (repoargs.MonthlyCount, error) {
		var m repoargs.MonthlyCount
		scanErr := row.Scan(&m.Month, &m.Count)
		return m, scanErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, convertErr(err, "scanning monthly retailer growth of supplier %d", supplierID)
	}
	return res, nil
}

// RelationshipTotals счетчики долгов между поставщиком и ритейлером и сумма непогашенных (pending, overdue).
func (r *AnalyticsRepository) RelationshipTotals(
	ctx context.Context,
	supplierID, retailerID int64,
) (*repoargs.RelationshipTotals, error) {
	var t repoargs.RelationshipTotals
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE d.status = 'paid'),
		       COALESCE(SUM(d.amount) FILTER (WHERE d.status IN ('pending', 'overdue')), 0)
		FROM dues d
		WHERE d.supplier_id = $1 AND d.retailer_id = $2`, supplierID, retailerID,
	).Scan(&t.TotalDues, &t.PaidDues, &t.Outstanding)
	if err != nil {
		return nil, convertErr(err, "relationship totals %d -> %d", supplierID, retailerID)
	}
	return &t, nil
}
