package pgrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	"github.com/jackc/pgx/v5"
)

// dueSelect выбирает долг вместе с именами сторон. Ожидает алиас d для dues.
const dueSelect = `
	SELECT d.id, d.created_at, d.updated_at, d.supplier_id, d.retailer_id, d.amount, d.description,
	       d.purchase_date, d.due_date, d.status,
	       s.business_name, r.business_name, r.phone
	FROM %s d
	JOIN parties s ON s.id = d.supplier_id
	JOIN parties r ON r.id = d.retailer_id`

type DueRepository struct {
	db uow.DBTX
}

func NewDueRepository(db uow.DBTX) *DueRepository {
	return &DueRepository{db: db}
}

func scanDue(row pgx.Row) (*domain.DueEntry, error) {
	var d domain.DueEntry
	var status string
	err := row.Scan(
		&d.ID, &d.CreatedAt, &d.UpdatedAt, &d.SupplierID, &d.RetailerID, &d.Amount, &d.Description,
		&d.PurchaseDate, &d.DueDate, &status,
		&d.SupplierName, &d.RetailerName, &d.RetailerPhone,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	d.Status = domain.DueStatusType(status)
	return &d, nil
}

func collectDues(rows pgx.Rows) ([]domain.DueEntry, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DueEntry, error) { //nolint:wrapcheck
		d, err := scanDue(row)
		if err != nil {
			return domain.DueEntry{}, err
		}
		return *d, nil
	})
}

func dueQuery(from string) string {
	return fmt.Sprintf(dueSelect, from)
}

// Create создает долг в статусе pending.
func (r *DueRepository) Create(ctx context.Context, args repoargs.CreateDue) (*domain.DueEntry, error) {
	row := r.db.QueryRow(ctx, `
		WITH inserted AS (
			INSERT INTO dues (supplier_id, retailer_id, amount, description, purchase_date, due_date, status)
			VALUES ($1, $2, $3, $4, $5, $6, 'pending')
			RETURNING *
		)`+dueQuery("inserted"),
		args.SupplierID, args.RetailerID, args.Amount, args.Description, args.PurchaseDate, args.DueDate,
	)
	due, err := scanDue(row)
	if err != nil {
		return nil, convertErr(err, "creating due for retailer %d by supplier %d", args.RetailerID, args.SupplierID)
	}
	return due, nil
}

func (r *DueRepository) FindByID(ctx context.Context, id int64) (*domain.DueEntry, error) {
	due, err := scanDue(r.db.QueryRow(ctx, dueQuery("dues")+` WHERE d.id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding due with id %d", id)
	}
	return due, nil
}

// FindByIDForUpdate находит долг и блокирует его строку до конца транзакции. Конкурирующие оплаты одного и того же
// долга выполняются строго по очереди.
func (r *DueRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.DueEntry, error) {
	due, err := scanDue(r.db.QueryRow(ctx, dueQuery("dues")+` WHERE d.id = $1 FOR UPDATE OF d`, id))
	if err != nil {
		return nil, convertErr(err, "locking due with id %d", id)
	}
	return due, nil
}

// ListForParty возвращает долги, где участник поставщик или ритейлер, новые первыми.
func (r *DueRepository) ListForParty(ctx context.Context, partyID int64) ([]domain.DueEntry, error) {
	rows, err := r.db.Query(ctx,
		dueQuery("dues")+` WHERE d.supplier_id = $1 OR d.retailer_id = $1 ORDER BY d.created_at DESC, d.id DESC`,
		partyID,
	)
	if err != nil {
		return nil, convertErr(err, "listing dues of party %d", partyID)
	}
	dues, err := collectDues(rows)
	if err != nil {
		return nil, convertErr(err, "scanning dues of party %d", partyID)
	}
	return dues, nil
}

// MarkPaid переводит долг в статус paid. Обновляются только долги в статусах pending и overdue, для уже оплаченного
// долга вернется ErrRecordNotFound.
func (r *DueRepository) MarkPaid(ctx context.Context, id int64) (*domain.DueEntry, error) {
	row := r.db.QueryRow(ctx, `
		WITH updated AS (
			UPDATE dues SET status = 'paid', updated_at = now()
			WHERE id = $1 AND status IN ('pending', 'overdue')
			RETURNING *
		)`+dueQuery("updated"), id)
	due, err := scanDue(row)
	if err != nil {
		return nil, convertErr(err, "marking due %d as paid", id)
	}
	return due, nil
}

// LockPastDue блокирует до конца транзакции не более limit долгов в статусе pending со сроком раньше before.
// Строки, заблокированные параллельной оплатой, пропускаются и попадут в следующий проход.
func (r *DueRepository) LockPastDue(ctx context.Context, before time.Time, limit uint) ([]domain.DueEntry, error) {
	rows, err := r.db.Query(ctx, dueQuery("dues")+`
		WHERE d.status = 'pending' AND d.due_date < $1
		ORDER BY d.due_date, d.id
		LIMIT $2
		FOR UPDATE OF d SKIP LOCKED`, before, int64(limit))
	if err != nil {
		return nil, convertErr(err, "locking dues before %s", before.Format(time.DateOnly))
	}
	dues, err := collectDues(rows)
	if err != nil {
		return nil, convertErr(err, "scanning dues before %s", before.Format(time.DateOnly))
	}
	return dues, nil
}

// MarkOverdue переводит в overdue долги из ids, которые все еще в статусе pending.
func (r *DueRepository) MarkOverdue(ctx context.Context, ids []int64) ([]domain.DueEntry, error) {
	rows, err := r.db.Query(ctx, `
		WITH updated AS (
			UPDATE dues SET status = 'overdue', updated_at = now()
			WHERE id = ANY($1) AND status = 'pending'
			RETURNING *
		)`+dueQuery("updated")+` ORDER BY d.due_date, d.id`, ids)
	if err != nil {
		return nil, convertErr(err, "marking %d dues as overdue", len(ids))
	}
	dues, err := collectDues(rows)
	if err != nil {
		return nil, convertErr(err, "scanning overdue dues")
	}
	return dues, nil
}
