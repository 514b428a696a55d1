package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const transactionSelect = `
	SELECT t.id, t.created_at, t.updated_at, t.supplier_id, t.retailer_id, t.amount, t.description, t.status,
	       t.due_date, r.business_name
	FROM %s t
	JOIN parties r ON r.id = t.retailer_id`

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var status string
	err := row.Scan(
		&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.SupplierID, &t.RetailerID, &t.Amount, &t.Description, &status,
		&t.DueDate, &t.RetailerName,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	t.Status = domain.TransactionStatusType(status)
	return &t, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) { //nolint:wrapcheck
		t, err := scanTransaction(row)
		if err != nil {
			return domain.Transaction{}, err
		}
		return *t, nil
	})
}

func transactionQuery(from string) string {
	return fmt.Sprintf(transactionSelect, from)
}

func (r *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO transactions (supplier_id, retailer_id, amount, description, status, due_date)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)`+transactionQuery("inserted"),
		args.SupplierID, args.RetailerID, args.Amount, args.Description, string(args.Status), args.DueDate,
	)
	t, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating transaction for retailer %d", args.RetailerID)
	}
	return t, nil
}

// ListForParty транзакции, где участник поставщик или ритейлер, новые первыми.
func (r *TransactionRepository) ListForParty(ctx context.Context, partyID int64) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		transactionQuery("transactions")+
			` WHERE t.supplier_id = $1 OR t.retailer_id = $1 ORDER BY t.created_at DESC, t.id DESC`,
		partyID,
	)
	if err != nil {
		return nil, convertErr(err, "listing transactions of party %d", partyID)
	}
	txs, err := collectTransactions(rows)
	if err != nil {
		return nil, convertErr(err, "scanning transactions of party %d", partyID)
	}
	return txs, nil
}

// RecentBetween последние limit транзакций между поставщиком и ритейлером.
func (r *TransactionRepository) RecentBetween(
	ctx context.Context,
	supplierID, retailerID int64,
	limit uint,
) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		transactionQuery("transactions")+
			` WHERE t.supplier_id = $1 AND t.retailer_id = $2 ORDER BY t.created_at DESC, t.id DESC LIMIT $3`,
		supplierID, retailerID, int64(limit),
	)
	if err != nil {
		return nil, convertErr(err, "recent transactions %d -> %d", supplierID, retailerID)
	}
	txs, err := collectTransactions(rows)
	if err != nil {
		return nil, convertErr(err, "scanning recent transactions %d -> %d", supplierID, retailerID)
	}
	return txs, nil
}
