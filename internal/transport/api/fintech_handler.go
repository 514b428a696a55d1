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

// FintechHandler оценка ритейлеров финтехом. Все маршруты доступны только роли fintech.
type FintechHandler struct {
	creditService CreditServicer
}

func NewFintechHandler(creditService CreditServicer) *FintechHandler {
	return &FintechHandler{creditService: creditService}
}

type AssessmentResponse struct {
	ID             int64                       `json:"id"`
	Retailer       int64                       `json:"retailer"`
	CreditScore    int32                       `json:"credit_score"`
	Status         domain.AssessmentStatusType `json:"status"`
	ApprovedLimit  string                      `json:"approved_limit"`
	Notes          string                      `json:"notes"`
	AssessmentDate time.Time                   `json:"assessment_date"`
}

func newAssessmentResponse(a *domain.CreditAssessment) *AssessmentResponse {
	if a == nil {
		return nil
	}
	return &AssessmentResponse{
		ID:             a.ID,
		Retailer:       a.PartyID,
		CreditScore:    a.CreditScore,
		Status:         a.Status,
		ApprovedLimit:  a.ApprovedLimit.StringFixed(2),
		Notes:          a.Notes,
		AssessmentDate: a.AssessmentDate,
	}
}

type RetailerCreditResponse struct {
	Retailer         service.PartyPayload     `json:"retailer"`
	Profile          *RetailerProfileResponse `json:"profile"`
	LatestAssessment *AssessmentResponse      `json:"latest_assessment"`
}

// Retailers GET RouteGroup + FintechRetailersRoute. Ритейлеры с анкетой и последней оценкой.
func (h *FintechHandler) Retailers(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rows, err := h.creditService.ListRetailers(ctx, actor)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	res := make([]RetailerCreditResponse, len(rows))
	for i := range rows {
		res[i] = RetailerCreditResponse{
			Retailer:         service.NewPartyPayload(&rows[i].Party),
			Profile:          newRetailerProfileResponse(rows[i].Profile),
			LatestAssessment: newAssessmentResponse(rows[i].Assessment),
		}
	}
	c.JSON(http.StatusOK, res)
}

type AssessmentParams struct {
	CreditScore   int32                       `binding:"gte=0,lte=900"                            json:"credit_score"`
	Status        domain.AssessmentStatusType `binding:"omitempty,oneof=pending approved rejected" json:"status"`
	ApprovedLimit decimal.Decimal             `binding:"decimal_gte0,decimal_max=9999999999.99" json:"approved_limit"`
	Notes         string                      `binding:"max_bytes=2000"                           json:"notes"`
}

// CreateAssessment POST RouteGroup + FintechAssessmentsRoute.
func (h *FintechHandler) CreateAssessment(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	retailerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var params AssessmentParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	assessment, err := h.creditService.CreateAssessment(ctx, actor, retailerID, service.AssessmentArgs{
		CreditScore:   params.CreditScore,
		Status:        params.Status,
		ApprovedLimit: params.ApprovedLimit,
		Notes:         params.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newAssessmentResponse(assessment))
}

type CreditLimitParams struct {
	CreditLimit decimal.Decimal `binding:"decimal_gte0,decimal_max=9999999999.99" json:"credit_limit"`
}

// UpdateCreditLimit PUT RouteGroup + FintechCreditLimitRoute. Ритейлер получает событие credit_limit_updated.
func (h *FintechHandler) UpdateCreditLimit(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	retailerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var params CreditLimitParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, err := h.creditService.UpdateCreditLimit(ctx, actor, retailerID, params.CreditLimit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.CreditLimitPayload{
		RetailerID:      retailerID,
		CreditLimit:     profile.CreditLimit.StringFixed(2),
		AvailableCredit: profile.AvailableCredit.StringFixed(2),
	})
}
