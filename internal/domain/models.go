package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

// Party участник сделки: поставщик, ритейлер или финтех. Роль не меняется после создания.
type Party struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string
	PasswordHash string
	FirstName    string
	Role         RoleType
	BusinessName string
	Phone        string
	GSTNumber    string
	Address      string
}

// Actor аутентифицированный участник, от имени которого выполняется операция.
type Actor struct {
	PartyID int64
	Role    RoleType
}

func (a Actor) Is(role RoleType) bool {
	return a.Role == role
}

// DueEntry кредит поставщика ритейлеру со сроком погашения.
type DueEntry struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	SupplierID   int64
	RetailerID   int64
	Amount       decimal.Decimal
	Description  string
	PurchaseDate time.Time
	DueDate      time.Time
	Status       DueStatusType

	// заполняются при чтении, в таблице dues их нет.
	SupplierName  string
	RetailerName  string
	RetailerPhone string
}

// HasParty проверяет, является ли участник стороной долга.
func (d *DueEntry) HasParty(partyID int64) bool {
	return d.SupplierID == partyID || d.RetailerID == partyID
}

type Payment struct {
	ID            int64
	DueID         int64
	Amount        decimal.Decimal
	PaymentMethod string
	Status        PaymentStatusType
	ReferenceID   string
	PaidAt        time.Time
}

type Transaction struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	SupplierID   int64
	RetailerID   int64
	Amount       decimal.Decimal
	Description  string
	Status       TransactionStatusType
	DueDate      *time.Time
	RetailerName string
}

type RetailerProfile struct {
	PartyID            int64
	PANNumber          string
	AnnualTurnover     decimal.Decimal
	YearsInBusiness    int32
	BusinessType       string
	ShopOwnership      string
	MonthlyRent        decimal.Decimal
	EmployeeCount      int32
	BankStatementScore *int32
	CreditScore        *int32
	CreditLimit        decimal.Decimal
	AvailableCredit    decimal.Decimal
	UpdatedAt          time.Time
}

type BankDetails struct {
	PartyID       int64
	AccountNumber string
	IFSCCode      string
	BankName      string
	BankBranch    string
}

type ExistingLoan struct {
	ID           int64
	PartyID      int64
	LoanAmount   decimal.Decimal
	LoanProvider string
	MonthlyEMI   decimal.Decimal
	CreatedAt    time.Time
}

type Document struct {
	ID           int64
	PartyID      int64
	DocumentType DocumentType
	FileURL      string
	UploadedAt   time.Time
}

type CreditAssessment struct {
	ID             int64
	PartyID        int64
	CreditScore    int32
	Status         AssessmentStatusType
	ApprovedLimit  decimal.Decimal
	Notes          string
	AssessmentDate time.Time
	UpdatedAt      time.Time
}
