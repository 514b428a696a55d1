package repoargs

import (
	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/shopspring/decimal"
)

type SaveRetailerProfile struct {
	PartyID         int64
	PANNumber       string
	AnnualTurnover  decimal.Decimal
	YearsInBusiness int32
	BusinessType    string
	ShopOwnership   string
	MonthlyRent     decimal.Decimal
	EmployeeCount   int32
}

type SaveBankDetails struct {
	PartyID       int64
	AccountNumber string
	IFSCCode      string
	BankName      string
	BankBranch    string
}

type CreateExistingLoan struct {
	PartyID      int64
	LoanAmount   decimal.Decimal
	LoanProvider string
	MonthlyEMI   decimal.Decimal
}

type CreateDocument struct {
	PartyID      int64
	DocumentType domain.DocumentType
	FileURL      string
}

type CreateAssessment struct {
	PartyID       int64
	CreditScore   int32
	Status        domain.AssessmentStatusType
	ApprovedLimit decimal.Decimal
	Notes         string
}

// RetailerCreditRow строка списка ритейлеров для финтеха: участник, его профиль и последняя оценка.
type RetailerCreditRow struct {
	Party      domain.Party
	Profile    *domain.RetailerProfile
	Assessment *domain.CreditAssessment
}
