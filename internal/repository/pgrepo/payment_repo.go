package pgrepo

import (
	"context"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, due_id, amount, payment_method, status, reference_id, paid_at`

type PaymentRepository struct {
	db uow.DBTX
}

func NewPaymentRepository(db uow.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	var status string
	if err := row.Scan(&p.ID, &p.DueID, &p.Amount, &p.PaymentMethod, &status, &p.ReferenceID, &p.PaidAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	p.Status = domain.PaymentStatusType(status)
	return &p, nil
}

// Create сохраняет оплату долга. Вторая оплата того же долга нарушает уникальный индекс и вернет ErrDuplicateKey.
func (r *PaymentRepository) Create(ctx context.Context, args repoargs.CreatePayment) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO payments (due_id, amount, payment_method, status, reference_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+paymentColumns,
		args.DueID, args.Amount, args.PaymentMethod, string(args.Status), args.ReferenceID,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "creating payment for due %d", args.DueID)
	}
	return payment, nil
}

func (r *PaymentRepository) ListByDue(ctx context.Context, dueID int64) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+paymentColumns+` FROM payments WHERE due_id = $1 ORDER BY paid_at`, dueID)
	if err != nil {
		return nil, convertErr(err, "listing payments of due %d", dueID)
	}
	payments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payment, error) {
		p, scanErr := scanPayment(row)
		if scanErr != nil {
			return domain.Payment{}, scanErr
		}
		return *p, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning payments of due %d", dueID)
	}
	return payments, nil
}
