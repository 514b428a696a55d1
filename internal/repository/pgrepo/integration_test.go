package pgrepo

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

// IntegrationTestSuite работает с реальной базой. Запускается только если задана переменная TEST_DATABASE_URI.
type IntegrationTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	u    *uow.UnitOfWork
}

func TestIntegrationSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URI") == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_URI")
	migrationsDir := os.Getenv("TEST_MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "../../db/migrations"
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)

	pool, err := Connect(s.T().Context(), migrationsDir, dsn, l)
	s.Require().NoError(err)
	s.pool = pool

	s.u = uow.NewUnitOfWork(pool)
	s.Require().NoError(s.u.Register(uow.RepositoryName(repoargs.DueRepoName), func(db uow.DBTX) uow.Repository {
		return NewDueRepository(db)
	}))
	s.Require().NoError(s.u.Register(uow.RepositoryName(repoargs.PaymentRepoName), func(db uow.DBTX) uow.Repository {
		return NewPaymentRepository(db)
	}))
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *IntegrationTestSuite) createParty(role domain.RoleType) *domain.Party {
	p, err := NewPartyRepository(s.pool).Create(s.T().Context(), repoargs.CreateParty{
		Email:        gofakeit.Email(),
		PasswordHash: "hash",
		FirstName:    gofakeit.FirstName(),
		Role:         role,
		BusinessName: gofakeit.Company(),
		Phone:        gofakeit.Numerify("##########"),
	})
	s.Require().NoError(err)
	return p
}

func (s *IntegrationTestSuite) createDue(supplierID, retailerID int64, dueDate time.Time) *domain.DueEntry {
	d, err := NewDueRepository(s.pool).Create(s.T().Context(), repoargs.CreateDue{
		SupplierID:   supplierID,
		RetailerID:   retailerID,
		Amount:       decimal.RequireFromString("500.00"),
		Description:  "goods",
		PurchaseDate: dueDate.AddDate(0, 0, -7),
		DueDate:      dueDate,
	})
	s.Require().NoError(err)
	return d
}

// pay повторяет алгоритм оплаты: блокировка строки, проверка статуса, вставка оплаты, смена статуса.
func (s *IntegrationTestSuite) pay(ctx context.Context, dueID int64) error {
	return s.u.Do(ctx, func(c context.Context, tx uow.TX) error { //nolint:wrapcheck
		dues, err := uow.GetAs[*DueRepository](tx, uow.RepositoryName(repoargs.DueRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		payments, err := uow.GetAs[*PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		due, err := dues.FindByIDForUpdate(c, dueID)
		if err != nil {
			return err
		}
		if due.Status == domain.DueStatusPaid {
			return domain.ErrDueAlreadyPaid
		}
		if _, err = payments.Create(c, repoargs.CreatePayment{
			DueID:         dueID,
			Amount:        due.Amount,
			PaymentMethod: "upi",
			Status:        domain.PaymentStatusCompleted,
			ReferenceID:   gofakeit.UUID(),
		}); err != nil {
			return err
		}
		_, err = dues.MarkPaid(c, dueID)
		return err
	})
}

func (s *IntegrationTestSuite) TestConcurrentPayments() {
	supplier := s.createParty(domain.RoleSupplier)
	retailer := s.createParty(domain.RoleRetailer)
	due := s.createDue(supplier.ID, retailer.ID, time.Now().AddDate(0, 0, 7))

	const attempts = 5
	errs := make([]error, attempts)
	wg := new(sync.WaitGroup)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.pay(s.T().Context(), due.ID)
		}()
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.True(errors.Is(err, domain.ErrConflict), "unexpected error: %v", err)
	}
	s.Equal(1, succeeded)

	payments, err := NewPaymentRepository(s.pool).ListByDue(s.T().Context(), due.ID)
	s.Require().NoError(err)
	s.Len(payments, 1)
	s.True(decimal.RequireFromString("500").Equal(payments[0].Amount))
}

func (s *IntegrationTestSuite) TestMarkOverdue_SkipsPaid() {
	ctx := s.T().Context()
	supplier := s.createParty(domain.RoleSupplier)
	retailer := s.createParty(domain.RoleRetailer)
	past := time.Now().UTC().AddDate(0, 0, -3)
	pending := s.createDue(supplier.ID, retailer.ID, past)
	paid := s.createDue(supplier.ID, retailer.ID, past)
	s.Require().NoError(s.pay(ctx, paid.ID))

	repo := NewDueRepository(s.pool)
	tx, err := s.pool.Begin(ctx)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback(ctx) }()
	txRepo := NewDueRepository(tx)
	locked, err := txRepo.LockPastDue(ctx, domain.OverdueCutoff(time.Now()), 1000)
	s.Require().NoError(err)
	ids := make([]int64, 0, len(locked))
	for _, d := range locked {
		s.NotEqual(paid.ID, d.ID)
		ids = append(ids, d.ID)
	}
	s.Contains(ids, pending.ID)
	// paid в ids не попадает из-за условия status = 'pending' и в MarkOverdue.
	marked, err := txRepo.MarkOverdue(ctx, append(ids, paid.ID))
	s.Require().NoError(err)
	for _, d := range marked {
		s.Equal(domain.DueStatusOverdue, d.Status)
	}
	s.Require().NoError(tx.Commit(ctx))

	got, err := repo.FindByID(ctx, pending.ID)
	s.Require().NoError(err)
	s.Equal(domain.DueStatusOverdue, got.Status)

	got, err = repo.FindByID(ctx, paid.ID)
	s.Require().NoError(err)
	s.Equal(domain.DueStatusPaid, got.Status)

	// overdue -> paid разрешено.
	s.Require().NoError(s.pay(ctx, pending.ID))
	got, err = repo.FindByID(ctx, pending.ID)
	s.Require().NoError(err)
	s.Equal(domain.DueStatusPaid, got.Status)
}

func (s *IntegrationTestSuite) TestDashboardTotals_EmptyIsZero() {
	supplier := s.createParty(domain.RoleSupplier)
	totals, err := NewAnalyticsRepository(s.pool).DashboardTotals(s.T().Context(), supplier.ID,
		time.Now().AddDate(0, 0, -30))
	s.Require().NoError(err)
	s.True(totals.TotalOutstanding.IsZero())
	s.True(totals.OverdueAmount.IsZero())
	s.True(totals.MonthlySales.IsZero())
	s.Zero(totals.ActiveRetailers)
}

func (s *IntegrationTestSuite) TestSearchRetailers_EscapesPattern() {
	ctx := s.T().Context()
	retailer := s.createParty(domain.RoleRetailer)

	found, err := NewPartyRepository(s.pool).SearchRetailers(ctx, retailer.Phone, 10)
	s.Require().NoError(err)
	s.Require().NotEmpty(found)
	s.Equal(retailer.ID, found[0].ID)

	found, err = NewPartyRepository(s.pool).SearchRetailers(ctx, "%_%"+gofakeit.LetterN(12), 10)
	s.Require().NoError(err)
	s.Empty(found)
}
