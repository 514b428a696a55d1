package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	"github.com/shopspring/decimal"
)

// TransactionService журнал денежных операций поставщика с ритейлерами. С долгами не связан, используется для
// расчета продаж на дашборде.
type TransactionService struct {
	uow             uow.UOW
	transactionRepo TransactionRepository
}

func NewTransactionService(u uow.UOW) (*TransactionService, error) {
	transactionRepo, err := uow.GetRepositoryAs[TransactionRepository](u,
		uow.RepositoryName(repoargs.TransactionRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &TransactionService{uow: u, transactionRepo: transactionRepo}, nil
}

type CreateTransactionArgs struct {
	RetailerID  int64
	Amount      decimal.Decimal
	Description string
	Status      domain.TransactionStatusType
	DueDate     *time.Time
}

func (a CreateTransactionArgs) validate() error {
	if a.RetailerID <= 0 {
		return domain.NewValidationError("retailer", "is required")
	}
	if !a.Amount.IsPositive() {
		return domain.NewValidationError("amount", "must be greater than zero")
	}
	if err := domain.ValidateAmountMax("amount", a.Amount, domain.MaxSmallAmount); err != nil {
		return err
	}
	if a.Status != "" && !a.Status.Valid() {
		return domain.NewValidationError("status", "invalid status")
	}
	return nil
}

// Create записывает транзакцию поставщика. Статус по умолчанию pending.
func (s *TransactionService) Create(
	ctx context.Context,
	actor domain.Actor,
	args CreateTransactionArgs,
) (*domain.Transaction, error) {
	if err := requireRole(actor, domain.RoleSupplier); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}
	status := args.Status
	if status == "" {
		status = domain.TransactionStatusPending
	}

	var transaction *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		partyRepo, err := txRepo[PartyRepository](tx, repoargs.PartyRepoName)
		if err != nil {
			return err
		}
		transactionRepo, err := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
		if err != nil {
			return err
		}

		retailer, findErr := partyRepo.FindByID(c, args.RetailerID)
		if err = requireRetailer(retailer, findErr, "retailer"); err != nil {
			return err
		}

		transaction, err = transactionRepo.Create(c, repoargs.CreateTransaction{
			SupplierID:  actor.PartyID,
			RetailerID:  args.RetailerID,
			Amount:      args.Amount,
			Description: strings.TrimSpace(args.Description),
			Status:      status,
			DueDate:     args.DueDate,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating transaction: %w", txErr)
	}
	return transaction, nil
}

// List транзакции, в которых участник поставщик или ритейлер, от новых к старым.
func (s *TransactionService) List(ctx context.Context, actor domain.Actor) ([]domain.Transaction, error) {
	txs, err := s.transactionRepo.ListForParty(ctx, actor.PartyID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	return txs, nil
}
