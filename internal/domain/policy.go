package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	excellentRatio = decimal.RequireFromString("0.9")
	goodRatio      = decimal.RequireFromString("0.7")
)

// Верхние границы сумм совпадают с точностью колонок NUMERIC(p, 2) в базе.
var (
	// MaxAmount долги, оплаты, кредитные лимиты и суммы кредитов: NUMERIC(12, 2).
	MaxAmount = decimal.RequireFromString("9999999999.99")
	// MaxSmallAmount транзакции, аренда и ежемесячный платеж по кредиту: NUMERIC(10, 2).
	MaxSmallAmount = decimal.RequireFromString("99999999.99")
	// MaxTurnover годовой оборот: NUMERIC(15, 2).
	MaxTurnover = decimal.RequireFromString("9999999999999.99")
)

// ValidateAmountMax возвращает *ValidationError по полю field, если amount больше limit.
func ValidateAmountMax(field string, amount, limit decimal.Decimal) error {
	if amount.GreaterThan(limit) {
		return NewValidationError(field, "must not exceed "+limit.StringFixed(2))
	}
	return nil
}

// OverdueCutoff возвращает начало текущих суток (UTC). Долг с due_date строго раньше этой границы просрочен,
// долг со сроком "сегодня" еще нет.
func OverdueCutoff(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsOverdue истинно, если долг все еще ожидает оплаты, а срок погашения прошел.
func IsOverdue(due *DueEntry, now time.Time) bool {
	return due.Status == DueStatusPending && due.DueDate.Before(OverdueCutoff(now))
}

// DeriveStatus возвращает фактический статус долга на момент now. Оплаченный долг никогда не становится
// просроченным.
func DeriveStatus(due *DueEntry, now time.Time) DueStatusType {
	if IsOverdue(due, now) {
		return DueStatusOverdue
	}
	return due.Status
}

// CanTransition описывает допустимые переходы статуса долга: pending -> paid, pending -> overdue,
// overdue -> paid. Из paid выхода нет.
func CanTransition(from, to DueStatusType) bool {
	switch from { //nolint:exhaustive
	case DueStatusPending:
		return to == DueStatusPaid || to == DueStatusOverdue
	case DueStatusOverdue:
		return to == DueStatusPaid
	}
	return false
}

// PaymentTier вычисляет качество отношений с ритейлером по доле оплаченных долгов.
// Если долгов нет, возвращает TierNew и nil вместо доли.
func PaymentTier(total, paid int64) (RelationshipTierType, *decimal.Decimal) {
	if total <= 0 {
		return TierNew, nil
	}
	ratio := decimal.NewFromInt(paid).Div(decimal.NewFromInt(total))
	switch {
	case ratio.GreaterThan(excellentRatio):
		return TierExcellent, &ratio
	case ratio.GreaterThan(goodRatio):
		return TierGood, &ratio
	default:
		return TierFair, &ratio
	}
}

// ValidateDueDates проверяет, что дата покупки не позже срока погашения.
func ValidateDueDates(purchaseDate, dueDate time.Time) error {
	if purchaseDate.IsZero() {
		return NewValidationError("purchaseDate", "is required")
	}
	if dueDate.IsZero() {
		return NewValidationError("dueDate", "is required")
	}
	if purchaseDate.After(dueDate) {
		return NewValidationError("dueDate", "must not be before purchase date")
	}
	return nil
}
