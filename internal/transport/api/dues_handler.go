package api

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/tradecredit/internal/report"
	"github.com/fsdevblog/tradecredit/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DuesHandler struct {
	dueService DueServicer
}

func NewDuesHandler(dueService DueServicer) *DuesHandler {
	return &DuesHandler{dueService: dueService}
}

// Index GET RouteGroup + DuesRoute. Долги, где участник поставщик или ритейлер.
func (h *DuesHandler) Index(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dues, err := h.dueService.List(ctx, actor)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.NewDuePayloads(dues))
}

type CreateDueParams struct {
	RetailerID   int64           `binding:"required,gt=0"                  json:"retailer"`
	Amount       decimal.Decimal `binding:"decimal_gt0,decimal_max=9999999999.99" json:"amount"`
	Description  string          `binding:"required,max_bytes=1000"        json:"description"`
	PurchaseDate string          `binding:"required,datetime=2006-01-02"   json:"purchase_date"`
	DueDate      string          `binding:"required,datetime=2006-01-02"   json:"due_date"`
}

// Create POST RouteGroup + DuesCreateRoute. Поставщик выдает ритейлеру товар в долг.
func (h *DuesHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var params CreateDueParams
	if !bindJSON(c, &params) {
		return
	}
	// формат дат уже проверен валидатором.
	purchaseDate, _ := time.Parse(time.DateOnly, params.PurchaseDate)
	dueDate, _ := time.Parse(time.DateOnly, params.DueDate)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	due, err := h.dueService.Create(ctx, actor, service.CreateDueArgs{
		RetailerID:   params.RetailerID,
		Amount:       params.Amount,
		Description:  params.Description,
		PurchaseDate: purchaseDate,
		DueDate:      dueDate,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service.NewDuePayload(due))
}

// Show GET RouteGroup + DueRoute.
func (h *DuesHandler) Show(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	dueID, ok := idParam(c, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	due, err := h.dueService.Get(ctx, actor, dueID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.NewDuePayload(due))
}

type PayDueParams struct {
	// Amount не обязателен, по умолчанию оплачивается вся сумма долга.
	Amount        *decimal.Decimal `binding:"omitempty,decimal_gt0,decimal_max=9999999999.99" json:"amount"`
	PaymentMethod string           `binding:"required,max_bytes=50"      json:"payment_method"`
	ReferenceID   string           `binding:"max_bytes=100"              json:"reference_id"`
}

// Pay POST RouteGroup + DuePayRoute. Ритейлер оплачивает свой долг целиком.
func (h *DuesHandler) Pay(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	dueID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var params PayDueParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, err := h.dueService.RecordPayment(ctx, actor, dueID, service.RecordPaymentArgs{
		Amount:        params.Amount,
		PaymentMethod: params.PaymentMethod,
		ReferenceID:   params.ReferenceID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service.NewPaymentPayload(payment))
}

// Payments GET RouteGroup + DuePaymentsRoute.
func (h *DuesHandler) Payments(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	dueID, ok := idParam(c, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payments, err := h.dueService.Payments(ctx, actor, dueID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.NewPaymentPayloads(payments))
}

// Export GET RouteGroup + DuesExportRoute. Долги поставщика в xlsx.
func (h *DuesHandler) Export(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dues, err := h.dueService.List(ctx, actor)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err = report.WriteDues(&buf, dues); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="dues.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
