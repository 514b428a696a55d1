package api

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/notify"
	"github.com/fsdevblog/tradecredit/internal/transport/api/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup = "/api"

	RegisterRoute = "/auth/register"
	LoginRoute    = "/auth/login"
	LogoutRoute   = "/auth/logout"

	DashboardStatsRoute     = "/dashboard/stats"
	DashboardAnalyticsRoute = "/dashboard/analytics"

	RetailersRoute       = "/retailers"
	RetailersSearchRoute = "/retailers/search"
	RetailersRecentRoute = "/retailers/recent"
	RetailerRoute        = "/retailers/:id"

	DuesRoute        = "/dues"
	DuesCreateRoute  = "/dues/create"
	DuesExportRoute  = "/dues/export"
	DueRoute         = "/dues/:id"
	DuePayRoute      = "/dues/:id/pay"
	DuePaymentsRoute = "/dues/:id/payments"

	TransactionsRoute = "/transactions"

	ProfileRoute         = "/profile"
	RetailerProfileRoute = "/profile/retailer"

	FintechRetailersRoute   = "/fintech/retailers"
	FintechAssessmentsRoute = "/fintech/retailers/:id/assessments"
	FintechCreditLimitRoute = "/fintech/retailers/:id/credit-limit"

	RelayRoute   = "/ws/:user_id/:user_type"
	MetricsRoute = "/metrics"
	HealthRoute  = "/healthz"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	PartyService       PartyServicer
	DueService         DueServicer
	AnalyticsService   AnalyticsServicer
	TransactionService TransactionServicer
	CreditService      CreditServicer
	Sessions           SessionStore
	Hub                *notify.Hub
	// Publisher получает входящие сообщения соединений. Обычно это тот же издатель, что и у сервисов.
	Publisher    notify.Publisher
	JWTSecretKey []byte
	CookieSecure bool
	CORSOrigins  []string
	// HealthCheck необязательная проверка зависимостей для HealthRoute.
	HealthCheck func(ctx context.Context) error
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Metrics())
	r.Use(corsMiddleware(args.CORSOrigins))
	r.Use(middlewares.Errors())

	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))
	r.GET(HealthRoute, healthHandler(args.HealthCheck))

	if args.Hub != nil {
		relayHandler := NewRelayHandler(args.Hub, args.Publisher, args.CORSOrigins, args.Logger)
		r.GET(RelayRoute, relayHandler.Connect)
	}

	authHandler := NewAuthHandler(args.PartyService, args.Sessions, args.CookieSecure)
	analyticsHandler := NewAnalyticsHandler(args.AnalyticsService)
	duesHandler := NewDuesHandler(args.DueService)
	transactionsHandler := NewTransactionsHandler(args.TransactionService)
	profileHandler := NewProfileHandler(args.CreditService)
	fintechHandler := NewFintechHandler(args.CreditService)

	supplierOnly := middlewares.RoleRequired(domain.RoleSupplier)
	retailerOnly := middlewares.RoleRequired(domain.RoleRetailer)
	fintechOnly := middlewares.RoleRequired(domain.RoleFintech)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, authHandler.Register)
	api.POST(LoginRoute, authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey, args.Sessions))
	// ниже все роуты группы требуют действующей сессии.
	api.POST(LogoutRoute, authHandler.Logout)

	api.GET(DashboardStatsRoute, supplierOnly, analyticsHandler.Stats)
	api.GET(DashboardAnalyticsRoute, supplierOnly, analyticsHandler.Analytics)

	api.GET(RetailersRoute, supplierOnly, analyticsHandler.Retailers)
	api.GET(RetailersSearchRoute, supplierOnly, analyticsHandler.SearchRetailers)
	api.GET(RetailersRecentRoute, supplierOnly, analyticsHandler.RecentRetailers)
	api.GET(RetailerRoute, supplierOnly, analyticsHandler.RetailerSummary)

	api.GET(DuesRoute, duesHandler.Index)
	api.POST(DuesCreateRoute, supplierOnly, duesHandler.Create)
	api.GET(DuesExportRoute, supplierOnly, duesHandler.Export)
	api.GET(DueRoute, duesHandler.Show)
	api.POST(DuePayRoute, retailerOnly, duesHandler.Pay)
	api.GET(DuePaymentsRoute, duesHandler.Payments)

	api.GET(TransactionsRoute, transactionsHandler.Index)
	api.POST(TransactionsRoute, supplierOnly, transactionsHandler.Create)

	api.GET(ProfileRoute, profileHandler.Show)
	api.PUT(RetailerProfileRoute, retailerOnly, profileHandler.SaveRetailer)

	api.GET(FintechRetailersRoute, fintechOnly, fintechHandler.Retailers)
	api.POST(FintechAssessmentsRoute, fintechOnly, fintechHandler.CreateAssessment)
	api.PUT(FintechCreditLimitRoute, fintechOnly, fintechHandler.UpdateCreditLimit)

	return r, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		// cookie сессии отправляется только на явно разрешенные источники.
		corsConfig.AllowCredentials = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "OPTIONS")
	corsConfig.AddAllowHeaders("Authorization")
	corsConfig.AddExposeHeaders("Authorization", "Content-Disposition")
	return cors.New(corsConfig)
}

func healthHandler(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
			defer cancel()
			if err := check(ctx); err != nil {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
