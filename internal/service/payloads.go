package service

import (
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/shopspring/decimal"
)

// Представления сущностей для JSON. Используются и в HTTP ответах, и в уведомлениях ретранслятора, чтобы клиент
// получал одинаковую форму данных. Денежные суммы передаются строкой с двумя знаками после запятой.

const dateLayout = time.DateOnly

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type PartyPayload struct {
	ID           int64           `json:"id"`
	Email        string          `json:"email"`
	FirstName    string          `json:"first_name"`
	UserType     domain.RoleType `json:"user_type"`
	BusinessName string          `json:"business_name"`
	Phone        string          `json:"phone"`
	GSTNumber    string          `json:"gst_number"`
	Address      string          `json:"address"`
	CreatedAt    time.Time       `json:"created_at"`
}

func NewPartyPayload(p *domain.Party) PartyPayload {
	return PartyPayload{
		ID:           p.ID,
		Email:        p.Email,
		FirstName:    p.FirstName,
		UserType:     p.Role,
		BusinessName: p.BusinessName,
		Phone:        p.Phone,
		GSTNumber:    p.GSTNumber,
		Address:      p.Address,
		CreatedAt:    p.CreatedAt,
	}
}

func NewPartyPayloads(parties []domain.Party) []PartyPayload {
	res := make([]PartyPayload, len(parties))
	for i := range parties {
		res[i] = NewPartyPayload(&parties[i])
	}
	return res
}

type DuePayload struct {
	ID            int64                `json:"id"`
	SupplierID    int64                `json:"supplier"`
	RetailerID    int64                `json:"retailer"`
	SupplierName  string               `json:"supplier_name"`
	RetailerName  string               `json:"retailer_name"`
	RetailerPhone string               `json:"retailer_phone"`
	Amount        string               `json:"amount"`
	Description   string               `json:"description"`
	PurchaseDate  string               `json:"purchase_date"`
	DueDate       string               `json:"due_date"`
	Status        domain.DueStatusType `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func NewDuePayload(d *domain.DueEntry) DuePayload {
	return DuePayload{
		ID:            d.ID,
		SupplierID:    d.SupplierID,
		RetailerID:    d.RetailerID,
		SupplierName:  d.SupplierName,
		RetailerName:  d.RetailerName,
		RetailerPhone: d.RetailerPhone,
		Amount:        money(d.Amount),
		Description:   d.Description,
		PurchaseDate:  d.PurchaseDate.Format(dateLayout),
		DueDate:       d.DueDate.Format(dateLayout),
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func NewDuePayloads(dues []domain.DueEntry) []DuePayload {
	res := make([]DuePayload, len(dues))
	for i := range dues {
		res[i] = NewDuePayload(&dues[i])
	}
	return res
}

type PaymentPayload struct {
	ID            int64                    `json:"id"`
	DueID         int64                    `json:"due"`
	Amount        string                   `json:"amount"`
	PaymentMethod string                   `json:"payment_method"`
	Status        domain.PaymentStatusType `json:"status"`
	ReferenceID   string                   `json:"reference_id"`
	PaymentDate   time.Time                `json:"payment_date"`
}

func NewPaymentPayload(p *domain.Payment) PaymentPayload {
	return PaymentPayload{
		ID:            p.ID,
		DueID:         p.DueID,
		Amount:        money(p.Amount),
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
		ReferenceID:   p.ReferenceID,
		PaymentDate:   p.PaidAt,
	}
}

func NewPaymentPayloads(payments []domain.Payment) []PaymentPayload {
	res := make([]PaymentPayload, len(payments))
	for i := range payments {
		res[i] = NewPaymentPayload(&payments[i])
	}
	return res
}

// PaymentMadePayload данные события payment_made.
type PaymentMadePayload struct {
	Due     DuePayload     `json:"due"`
	Payment PaymentPayload `json:"payment"`
}

type TransactionPayload struct {
	ID           int64                        `json:"id"`
	SupplierID   int64                        `json:"supplier"`
	RetailerID   int64                        `json:"retailer"`
	RetailerName string                       `json:"retailer_name"`
	Amount       string                       `json:"amount"`
	Description  string                       `json:"description"`
	Status       domain.TransactionStatusType `json:"status"`
	DueDate      *string                      `json:"due_date"`
	CreatedAt    time.Time                    `json:"created_at"`
	UpdatedAt    time.Time                    `json:"updated_at"`
}

func NewTransactionPayload(t *domain.Transaction) TransactionPayload {
	var dueDate *string
	if t.DueDate != nil {
		s := t.DueDate.Format(dateLayout)
		dueDate = &s
	}
	return TransactionPayload{
		ID:           t.ID,
		SupplierID:   t.SupplierID,
		RetailerID:   t.RetailerID,
		RetailerName: t.RetailerName,
		Amount:       money(t.Amount),
		Description:  t.Description,
		Status:       t.Status,
		DueDate:      dueDate,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func NewTransactionPayloads(txs []domain.Transaction) []TransactionPayload {
	res := make([]TransactionPayload, len(txs))
	for i := range txs {
		res[i] = NewTransactionPayload(&txs[i])
	}
	return res
}

// CreditLimitPayload данные события credit_limit_updated.
type CreditLimitPayload struct {
	RetailerID      int64  `json:"retailer"`
	CreditLimit     string `json:"credit_limit"`
	AvailableCredit string `json:"available_credit"`
}
