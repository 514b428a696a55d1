package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProfileHandler struct {
	creditService CreditServicer
}

func NewProfileHandler(creditService CreditServicer) *ProfileHandler {
	return &ProfileHandler{creditService: creditService}
}

type RetailerProfileResponse struct {
	PANNumber          string `json:"pan_number"`
	AnnualTurnover     string `json:"annual_turnover"`
	YearsInBusiness    int32  `json:"years_in_business"`
	BusinessType       string `json:"business_type"`
	ShopOwnership      string `json:"shop_ownership"`
	MonthlyRent        string `json:"monthly_rent"`
	EmployeeCount      int32  `json:"employee_count"`
	BankStatementScore *int32 `json:"bank_statement_score"`
	CreditScore        *int32 `json:"credit_score"`
	CreditLimit        string `json:"credit_limit"`
	AvailableCredit    string `json:"available_credit"`
}

type BankDetailsResponse struct {
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	BankName      string `json:"bank_name"`
	BankBranch    string `json:"bank_branch"`
}

type ExistingLoanResponse struct {
	ID           int64  `json:"id"`
	LoanAmount   string `json:"loan_amount"`
	LoanProvider string `json:"loan_provider"`
	MonthlyEMI   string `json:"monthly_emi"`
}

type DocumentResponse struct {
	ID           int64               `json:"id"`
	DocumentType domain.DocumentType `json:"document_type"`
	FileURL      string              `json:"file_url"`
	UploadedAt   time.Time           `json:"uploaded_at"`
}

type RetailerDataResponse struct {
	Profile       *RetailerProfileResponse `json:"profile"`
	BankDetails   *BankDetailsResponse     `json:"bank_details"`
	ExistingLoans []ExistingLoanResponse   `json:"existing_loans"`
	Documents     []DocumentResponse       `json:"documents"`
}

func newRetailerProfileResponse(p *domain.RetailerProfile) *RetailerProfileResponse {
	if p == nil {
		return nil
	}
	return &RetailerProfileResponse{
		PANNumber:          p.PANNumber,
		AnnualTurnover:     p.AnnualTurnover.StringFixed(2),
		YearsInBusiness:    p.YearsInBusiness,
		BusinessType:       p.BusinessType,
		ShopOwnership:      p.ShopOwnership,
		MonthlyRent:        p.MonthlyRent.StringFixed(2),
		EmployeeCount:      p.EmployeeCount,
		BankStatementScore: p.BankStatementScore,
		CreditScore:        p.CreditScore,
		CreditLimit:        p.CreditLimit.StringFixed(2),
		AvailableCredit:    p.AvailableCredit.StringFixed(2),
	}
}

func newRetailerDataResponse(d *service.RetailerData) *RetailerDataResponse {
	if d == nil {
		return nil
	}
	res := &RetailerDataResponse{
		Profile:       newRetailerProfileResponse(d.Profile),
		ExistingLoans: make([]ExistingLoanResponse, len(d.Loans)),
		Documents:     make([]DocumentResponse, len(d.Documents)),
	}
	if d.Bank != nil {
		res.BankDetails = &BankDetailsResponse{
			AccountNumber: d.Bank.AccountNumber,
			IFSCCode:      d.Bank.IFSCCode,
			BankName:      d.Bank.BankName,
			BankBranch:    d.Bank.BankBranch,
		}
	}
	for i, l := range d.Loans {
		res.ExistingLoans[i] = ExistingLoanResponse{
			ID:           l.ID,
			LoanAmount:   l.LoanAmount.StringFixed(2),
			LoanProvider: l.LoanProvider,
			MonthlyEMI:   l.MonthlyEMI.StringFixed(2),
		}
	}
	for i, doc := range d.Documents {
		res.Documents[i] = DocumentResponse{
			ID:           doc.ID,
			DocumentType: doc.DocumentType,
			FileURL:      doc.FileURL,
			UploadedAt:   doc.UploadedAt,
		}
	}
	return res
}

// Show GET RouteGroup + ProfileRoute. Участник и, для ритейлера, его анкета.
func (h *ProfileHandler) Show(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, err := h.creditService.Profile(ctx, actor)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":     service.NewPartyPayload(profile.Party),
		"retailer": newRetailerDataResponse(profile.Retailer),
	})
}

type BankDetailsParams struct {
	AccountNumber string `binding:"required,max_bytes=20"  json:"account_number"`
	IFSCCode      string `binding:"required,len=11"        json:"ifsc_code"`
	BankName      string `binding:"required,max_bytes=100" json:"bank_name"`
	BankBranch    string `binding:"max_bytes=100"          json:"bank_branch"`
}

type ExistingLoanParams struct {
	LoanAmount   decimal.Decimal `binding:"decimal_gt0,decimal_max=9999999999.99" json:"loan_amount"`
	LoanProvider string          `binding:"required,max_bytes=100" json:"loan_provider"`
	MonthlyEMI   decimal.Decimal `binding:"decimal_gte0,decimal_max=99999999.99" json:"monthly_emi"`
}

type DocumentParams struct {
	DocumentType domain.DocumentType `binding:"required"                   json:"document_type"`
	FileURL      string              `binding:"required,url,max_bytes=500" json:"file_url"`
}

type OnboardingParams struct {
	PANNumber       string               `binding:"omitempty,len=10"      json:"pan_number"`
	AnnualTurnover  decimal.Decimal      `binding:"decimal_gte0,decimal_max=9999999999999.99" json:"annual_turnover"`
	YearsInBusiness int32                `binding:"gte=0"                 json:"years_in_business"`
	BusinessType    string               `binding:"max_bytes=50"          json:"business_type"`
	ShopOwnership   string               `binding:"max_bytes=50"          json:"shop_ownership"`
	MonthlyRent     decimal.Decimal      `binding:"decimal_gte0,decimal_max=99999999.99" json:"monthly_rent"`
	EmployeeCount   int32                `binding:"gte=0"                 json:"employee_count"`
	BankDetails     *BankDetailsParams   `binding:"omitempty"             json:"bank_details"`
	ExistingLoans   []ExistingLoanParams `binding:"omitempty,dive"        json:"existing_loans"`
	Documents       []DocumentParams     `binding:"omitempty,dive"        json:"documents"`
}

func (p OnboardingParams) args() service.OnboardingArgs {
	args := service.OnboardingArgs{
		PANNumber:       p.PANNumber,
		AnnualTurnover:  p.AnnualTurnover,
		YearsInBusiness: p.YearsInBusiness,
		BusinessType:    p.BusinessType,
		ShopOwnership:   p.ShopOwnership,
		MonthlyRent:     p.MonthlyRent,
		EmployeeCount:   p.EmployeeCount,
		Loans:           make([]service.ExistingLoanArgs, len(p.ExistingLoans)),
		Documents:       make([]service.DocumentArgs, len(p.Documents)),
	}
	if p.BankDetails != nil {
		args.Bank = &service.BankDetailsArgs{
			AccountNumber: p.BankDetails.AccountNumber,
			IFSCCode:      p.BankDetails.IFSCCode,
			BankName:      p.BankDetails.BankName,
			BankBranch:    p.BankDetails.BankBranch,
		}
	}
	for i, l := range p.ExistingLoans {
		args.Loans[i] = service.ExistingLoanArgs{
			LoanAmount:   l.LoanAmount,
			LoanProvider: l.LoanProvider,
			MonthlyEMI:   l.MonthlyEMI,
		}
	}
	for i, d := range p.Documents {
		args.Documents[i] = service.DocumentArgs{DocumentType: d.DocumentType, FileURL: d.FileURL}
	}
	return args
}

// SaveRetailer PUT RouteGroup + RetailerProfileRoute. Анкета ритейлера для финтеха.
func (h *ProfileHandler) SaveRetailer(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var params OnboardingParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	data, err := h.creditService.SaveOnboarding(ctx, actor, params.args())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRetailerDataResponse(data))
}
