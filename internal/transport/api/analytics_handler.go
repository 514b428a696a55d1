package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/service"
	"github.com/gin-gonic/gin"
)

// AnalyticsHandler дашборд поставщика и его ритейлеры. Все маршруты доступны только роли supplier.
type AnalyticsHandler struct {
	analyticsService AnalyticsServicer
}

func NewAnalyticsHandler(analyticsService AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Stats GET RouteGroup + DashboardStatsRoute.
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	stats, err := h.analyticsService.DashboardStats(ctx, actor, time.Now())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Analytics GET RouteGroup + DashboardAnalyticsRoute. Группировки за последние 180 дней.
func (h *AnalyticsHandler) Analytics(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	analytics, err := h.analyticsService.Analytics(ctx, actor, time.Now())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *AnalyticsHandler) Retailers(c *gin.Context) {
	h.respondParties(c, h.analyticsService.Retailers)
}

type SearchRetailersParams struct {
	Query string `binding:"max_bytes=255" form:"q"`
}

// SearchRetailers GET RouteGroup + RetailersSearchRoute?q=. Поиск по названию и телефону.
func (h *AnalyticsHandler) SearchRetailers(c *gin.Context) {
	var params SearchRetailersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return
	}
	h.respondParties(c, func(ctx context.Context, actor domain.Actor) ([]domain.Party, error) {
		return h.analyticsService.SearchRetailers(ctx, actor, params.Query)
	})
}

func (h *AnalyticsHandler) RecentRetailers(c *gin.Context) {
	h.respondParties(c, h.analyticsService.RecentRetailers)
}

// RetailerSummary GET RouteGroup + RetailerRoute. Сводка отношений поставщика с ритейлером.
func (h *AnalyticsHandler) RetailerSummary(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	retailerID, ok := idParam(c, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	summary, err := h.analyticsService.RetailerSummary(ctx, actor, retailerID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *AnalyticsHandler) respondParties(
	c *gin.Context,
	fn func(ctx context.Context, actor domain.Actor) ([]domain.Party, error),
) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	parties, err := fn(ctx, actor)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.NewPartyPayloads(parties))
}
