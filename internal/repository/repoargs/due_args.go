package repoargs

import (
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateDue struct {
	SupplierID   int64
	RetailerID   int64
	Amount       decimal.Decimal
	Description  string
	PurchaseDate time.Time
	DueDate      time.Time
}

type CreatePayment struct {
	DueID         int64
	Amount        decimal.Decimal
	PaymentMethod string
	Status        domain.PaymentStatusType
	ReferenceID   string
}

type CreateTransaction struct {
	SupplierID  int64
	RetailerID  int64
	Amount      decimal.Decimal
	Description string
	Status      domain.TransactionStatusType
	DueDate     *time.Time
}
