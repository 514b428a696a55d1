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

type TransactionsHandler struct {
	transactionService TransactionServicer
}

func NewTransactionsHandler(transactionService TransactionServicer) *TransactionsHandler {
	return &TransactionsHandler{transactionService: transactionService}
}

func (h *TransactionsHandler) Index(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	txs, err := h.transactionService.List(ctx, actor)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.NewTransactionPayloads(txs))
}

type CreateTransactionParams struct {
	RetailerID  int64                        `binding:"required,gt=0"                           json:"retailer"`
	Amount      decimal.Decimal              `binding:"decimal_gt0,decimal_max=99999999.99" json:"amount"`
	Description string                       `binding:"max_bytes=1000"                          json:"description"`
	Status      domain.TransactionStatusType `binding:"omitempty,oneof=pending completed failed" json:"status"`
	DueDate     string                       `binding:"omitempty,datetime=2006-01-02"           json:"due_date"`
}

// Create POST RouteGroup + TransactionsRoute. Запись в журнал транзакций поставщика.
func (h *TransactionsHandler) Create(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	var params CreateTransactionParams
	if !bindJSON(c, &params) {
		return
	}
	var dueDate *time.Time
	if params.DueDate != "" {
		d, _ := time.Parse(time.DateOnly, params.DueDate)
		dueDate = &d
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tx, err := h.transactionService.Create(ctx, actor, service.CreateTransactionArgs{
		RetailerID:  params.RetailerID,
		Amount:      params.Amount,
		Description: params.Description,
		Status:      params.Status,
		DueDate:     dueDate,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service.NewTransactionPayload(tx))
}
