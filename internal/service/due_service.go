package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/metrics"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultSweepBatch максимальное количество долгов, переводимых в overdue за один проход.
const DefaultSweepBatch uint = 500

type DueService struct {
	uow         uow.UOW
	dueRepo     DueRepository
	paymentRepo PaymentRepository
	publisher   EventPublisher
}

func NewDueService(u uow.UOW, publisher EventPublisher) (*DueService, error) {
	dueRepo, err := uow.GetRepositoryAs[DueRepository](u, uow.RepositoryName(repoargs.DueRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	paymentRepo, err := uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &DueService{
		uow:         u,
		dueRepo:     dueRepo,
		paymentRepo: paymentRepo,
		publisher:   publisher,
	}, nil
}

type CreateDueArgs struct {
	RetailerID   int64
	Amount       decimal.Decimal
	Description  string
	PurchaseDate time.Time
	DueDate      time.Time
}

func (a CreateDueArgs) validate() error {
	if a.RetailerID <= 0 {
		return domain.NewValidationError("retailer", "is required")
	}
	if !a.Amount.IsPositive() {
		return domain.NewValidationError("amount", "must be greater than zero")
	}
	if err := domain.ValidateAmountMax("amount", a.Amount, domain.MaxAmount); err != nil {
		return err
	}
	if strings.TrimSpace(a.Description) == "" {
		return domain.NewValidationError("description", "is required")
	}
	return domain.ValidateDueDates(a.PurchaseDate, a.DueDate)
}

// Create создает долг поставщика перед ритейлером в статусе pending. Ритейлер должен существовать и иметь роль
// retailer. После фиксации транзакции группе ритейлеров отправляется событие due_created.
func (s *DueService) Create(ctx context.Context, actor domain.Actor, args CreateDueArgs) (*domain.DueEntry, error) {
	if err := requireRole(actor, domain.RoleSupplier); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	var due *domain.DueEntry
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		partyRepo, err := txRepo[PartyRepository](tx, repoargs.PartyRepoName)
		if err != nil {
			return err
		}
		dueRepo, err := txRepo[DueRepository](tx, repoargs.DueRepoName)
		if err != nil {
			return err
		}

		retailer, findErr := partyRepo.FindByID(c, args.RetailerID)
		if err = requireRetailer(retailer, findErr, "retailer"); err != nil {
			return err
		}

		due, err = dueRepo.Create(c, repoargs.CreateDue{
			SupplierID:   actor.PartyID,
			RetailerID:   args.RetailerID,
			Amount:       args.Amount,
			Description:  strings.TrimSpace(args.Description),
			PurchaseDate: args.PurchaseDate,
			DueDate:      args.DueDate,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating due: %w", txErr)
	}

	metrics.DuesCreated.Inc()
	s.publisher.Publish(ctx, domain.Event{
		Type:  domain.EventDueCreated,
		Topic: domain.RoleTopic(domain.RoleRetailer),
		Data:  NewDuePayload(due),
	})
	return due, nil
}

type RecordPaymentArgs struct {
	// Amount nil означает оплату полной суммы долга.
	Amount        *decimal.Decimal
	PaymentMethod string
	ReferenceID   string
}

// RecordPayment закрывает долг оплатой. Строка долга блокируется до конца транзакции, поэтому из параллельных
// оплат одного долга успешна только одна, остальные получают domain.ErrDueAlreadyPaid. Оплата и смена статуса
// фиксируются вместе. События payment_made и due_updated отправляются только после фиксации.
func (s *DueService) RecordPayment(
	ctx context.Context,
	actor domain.Actor,
	dueID int64,
	args RecordPaymentArgs,
) (*domain.Payment, error) {
	if err := requireRole(actor, domain.RoleRetailer); err != nil {
		return nil, err
	}
	method := strings.TrimSpace(args.PaymentMethod)
	if method == "" {
		return nil, domain.NewValidationError("payment_method", "is required")
	}
	if args.Amount != nil {
		if err := domain.ValidateAmountMax("amount", *args.Amount, domain.MaxAmount); err != nil {
			return nil, err
		}
	}
	referenceID := strings.TrimSpace(args.ReferenceID)
	if referenceID == "" {
		referenceID = uuid.NewString()
	}

	var payment *domain.Payment
	var due *domain.DueEntry
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		dueRepo, err := txRepo[DueRepository](tx, repoargs.DueRepoName)
		if err != nil {
			return err
		}
		paymentRepo, err := txRepo[PaymentRepository](tx, repoargs.PaymentRepoName)
		if err != nil {
			return err
		}

		locked, err := dueRepo.FindByIDForUpdate(c, dueID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if locked.RetailerID != actor.PartyID {
			return domain.NewForbiddenError("due belongs to another retailer")
		}
		if !domain.CanTransition(locked.Status, domain.DueStatusPaid) {
			return domain.ErrDueAlreadyPaid
		}

		amount := locked.Amount
		if args.Amount != nil {
			if !args.Amount.Equal(locked.Amount) {
				return domain.NewValidationError("amount", "must equal the due amount "+money(locked.Amount))
			}
			amount = *args.Amount
		}

		payment, err = paymentRepo.Create(c, repoargs.CreatePayment{
			DueID:         locked.ID,
			Amount:        amount,
			PaymentMethod: method,
			Status:        domain.PaymentStatusCompleted,
			ReferenceID:   referenceID,
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateKey) {
				return domain.ErrDueAlreadyPaid
			}
			return err //nolint:wrapcheck
		}

		due, err = dueRepo.MarkPaid(c, locked.ID)
		if err != nil {
			if isNotFound(err) {
				return domain.ErrDueAlreadyPaid
			}
			return err //nolint:wrapcheck
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrDueAlreadyPaid) {
			metrics.PaymentConflicts.Inc()
		}
		return nil, fmt.Errorf("recording payment for due %d: %w", dueID, txErr)
	}

	metrics.PaymentsRecorded.Inc()
	s.publisher.Publish(ctx, domain.Event{
		Type:  domain.EventPaymentMade,
		Topic: domain.RoleTopic(domain.RoleSupplier),
		Data:  PaymentMadePayload{Due: NewDuePayload(due), Payment: NewPaymentPayload(payment)},
	})
	s.publisher.Publish(ctx, domain.Event{
		Type:  domain.EventDueUpdated,
		Topic: domain.PartyTopic(due.SupplierID),
		Data:  NewDuePayload(due),
	})
	return payment, nil
}

// Get возвращает долг, если участник его поставщик или ритейлер.
func (s *DueService) Get(ctx context.Context, actor domain.Actor, dueID int64) (*domain.DueEntry, error) {
	due, err := s.dueRepo.FindByID(ctx, dueID)
	if err != nil {
		return nil, fmt.Errorf("getting due %d: %w", dueID, err)
	}
	if !due.HasParty(actor.PartyID) {
		return nil, domain.NewForbiddenError("not a party to this due")
	}
	return due, nil
}

// List долги, в которых участник является поставщиком или ритейлером, от новых к старым.
func (s *DueService) List(ctx context.Context, actor domain.Actor) ([]domain.DueEntry, error) {
	dues, err := s.dueRepo.ListForParty(ctx, actor.PartyID)
	if err != nil {
		return nil, fmt.Errorf("listing dues: %w", err)
	}
	return dues, nil
}

// Payments оплаты по долгу. Доступ как у Get.
func (s *DueService) Payments(ctx context.Context, actor domain.Actor, dueID int64) ([]domain.Payment, error) {
	if _, err := s.Get(ctx, actor, dueID); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByDue(ctx, dueID)
	if err != nil {
		return nil, fmt.Errorf("listing payments of due %d: %w", dueID, err)
	}
	return payments, nil
}

// SweepOverdue переводит в overdue ожидающие оплаты долги со сроком раньше текущих суток (UTC) и сохраняет
// переход. База отбирает и блокирует кандидатов, решение о переходе для каждого принимает domain.DeriveStatus.
// Строки, заблокированные параллельной оплатой, пропускаются до следующего прохода. Обеим сторонам каждого
// долга отправляется due_updated.
func (s *DueService) SweepOverdue(ctx context.Context, now time.Time, limit uint) ([]domain.DueEntry, error) {
	if limit == 0 {
		limit = DefaultSweepBatch
	}
	var swept []domain.DueEntry
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		dueRepo, err := txRepo[DueRepository](tx, repoargs.DueRepoName)
		if err != nil {
			return err
		}
		candidates, err := dueRepo.LockPastDue(c, domain.OverdueCutoff(now), limit)
		if err != nil {
			return err //nolint:wrapcheck
		}

		ids := make([]int64, 0, len(candidates))
		for i := range candidates {
			due := &candidates[i]
			if domain.DeriveStatus(due, now) == domain.DueStatusOverdue &&
				domain.CanTransition(due.Status, domain.DueStatusOverdue) {
				ids = append(ids, due.ID)
			}
		}
		if len(ids) == 0 {
			return nil
		}
		swept, err = dueRepo.MarkOverdue(c, ids)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("sweeping overdue dues: %w", txErr)
	}

	metrics.OverdueTransitions.Add(float64(len(swept)))
	for i := range swept {
		payload := NewDuePayload(&swept[i])
		for _, topic := range []domain.Topic{
			domain.PartyTopic(swept[i].SupplierID),
			domain.PartyTopic(swept[i].RetailerID),
		} {
			s.publisher.Publish(ctx, domain.Event{Type: domain.EventDueUpdated, Topic: topic, Data: payload})
		}
	}
	return swept, nil
}
