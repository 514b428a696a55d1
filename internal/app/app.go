package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bsm/redislock"
	"github.com/fsdevblog/tradecredit/internal/config"
	"github.com/fsdevblog/tradecredit/internal/notify"
	"github.com/fsdevblog/tradecredit/internal/repository/pgrepo"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/internal/service"
	"github.com/fsdevblog/tradecredit/internal/service/psswd"
	"github.com/fsdevblog/tradecredit/internal/session"
	"github.com/fsdevblog/tradecredit/internal/transport/api"
	"github.com/fsdevblog/tradecredit/internal/transport/sweeper"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run запускает http сервер, ретранслятор и периодический перевод просроченных долгов. Возвращает управление
// после отмены ctx или при ошибке сервера.
func (a *App) Run(ctx context.Context) error {
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("app run: %w", err)
	}

	a.Logger.Infof("Starting app with config: %s", a.Config)
	conn, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %w", connErr)
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %w", uowErr)
	}

	rdb, redisErr := a.connectRedis(ctx)
	if redisErr != nil {
		return fmt.Errorf("app run: %w", redisErr)
	}

	hub := notify.NewHub(a.Logger)
	defer hub.Close()

	errChan := make(chan error, 2) //nolint:mnd

	// без redis события доставляются только подписчикам этого экземпляра.
	var publisher notify.Publisher = hub
	var sessions api.SessionStore = session.Noop{}
	var locker sweeper.Locker = sweeper.LocalLocker{}
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				a.Logger.WithError(err).Warn("closing redis client")
			}
		}()

		bridge := notify.NewRedisBridge(hub, rdb, a.Logger)
		publisher = bridge
		sessions = session.NewRedisStore(rdb)
		locker = sweeper.NewRedisLocker(redislock.New(rdb))

		go func() {
			if err := bridge.Run(ctx); err != nil {
				errChan <- fmt.Errorf("redis bridge: %w", err)
			}
		}()
	}

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret:  []byte(a.Config.JWTSecret),
		SessionTTL: a.Config.SessionTTL,
		Hasher:     psswd.New(bcrypt.DefaultCost),
		Publisher:  publisher,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %w", sErr)
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		PartyService:       services.PartyService,
		DueService:         services.DueService,
		AnalyticsService:   services.AnalyticsService,
		TransactionService: services.TransactionService,
		CreditService:      services.CreditService,
		Sessions:           sessions,
		Hub:                hub,
		Publisher:          publisher,
		JWTSecretKey:       []byte(a.Config.JWTSecret),
		CookieSecure:       a.Config.CookieSecure,
		CORSOrigins:        a.Config.CORSOrigins,
		HealthCheck:        conn.Ping,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %w", routerErr)
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	processor := sweeper.New(services.DueService, locker, a.Logger).
		SetInterval(a.Config.SweepInterval)
	go processor.Run(ctx)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case runErr = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.WithError(err).Warn("http server shutdown")
	}
	return runErr
}

// Sweep выполняет один проход перевода просроченных долгов. Миграции не применяются.
func (a *App) Sweep(ctx context.Context) (int, error) {
	conn, connErr := pgrepo.Connect(ctx, "", a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return 0, fmt.Errorf("sweep: %w", connErr)
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return 0, fmt.Errorf("sweep: %w", uowErr)
	}

	rdb, redisErr := a.connectRedis(ctx)
	if redisErr != nil {
		return 0, fmt.Errorf("sweep: %w", redisErr)
	}

	// уведомления уходят подписчикам серверов только через redis.
	hub := notify.NewHub(a.Logger)
	defer hub.Close()
	var publisher notify.Publisher = hub
	var locker sweeper.Locker = sweeper.LocalLocker{}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
		publisher = notify.NewRedisBridge(hub, rdb, a.Logger)
		locker = sweeper.NewRedisLocker(redislock.New(rdb))
	}

	dueService, err := service.NewDueService(unitOfWork, publisher)
	if err != nil {
		return 0, fmt.Errorf("sweep: %w", err)
	}
	return sweeper.New(dueService, locker, a.Logger).RunOnce(ctx) //nolint:wrapcheck
}

// Migrate применяет миграции из Config.MigrationsDir.
func (a *App) Migrate() error {
	if a.Config.MigrationsDir == "" {
		return errors.New("migrations dir is not set")
	}
	if err := pgrepo.Migrate(a.Config.MigrationsDir, a.Config.DatabaseDSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// connectRedis возвращает nil без ошибки, если адрес redis не задан.
func (a *App) connectRedis(ctx context.Context) (*redis.Client, error) {
	addr := a.Config.RedisAddress
	if addr == "" {
		a.Logger.Info("redis address is not set, relay and sweep lock are local to this instance")
		return nil, nil //nolint:nilnil
	}

	opts := &redis.Options{Addr: addr}
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis %s: %w", opts.Addr, err)
	}
	return rdb, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.PartyRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPartyRepository(dbtx)
		},
		repoargs.DueRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewDueRepository(dbtx)
		},
		repoargs.PaymentRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPaymentRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		repoargs.AnalyticsRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAnalyticsRepository(dbtx)
		},
		repoargs.CreditRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCreditRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %w", regErr)
		}
	}

	return unitOfWork, nil
}
