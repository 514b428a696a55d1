package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/tradecredit/pkg/uow"
)

type AppServices struct {
	PartyService       *PartyService
	DueService         *DueService
	AnalyticsService   *AnalyticsService
	TransactionService *TransactionService
	CreditService      *CreditService
}

type FactoryArgs struct {
	JWTSecret  []byte
	SessionTTL time.Duration
	Hasher     PasswordHasher
	Publisher  EventPublisher
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	partyService, partyServiceErr := NewPartyService(unitOfWork, args.Hasher, args.JWTSecret, args.SessionTTL)
	if partyServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", partyServiceErr.Error())
	}

	dueService, dueServiceErr := NewDueService(unitOfWork, args.Publisher)
	if dueServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", dueServiceErr.Error())
	}

	analyticsService, analyticsServiceErr := NewAnalyticsService(unitOfWork)
	if analyticsServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", analyticsServiceErr.Error())
	}

	transactionService, transactionServiceErr := NewTransactionService(unitOfWork)
	if transactionServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", transactionServiceErr.Error())
	}

	creditService, creditServiceErr := NewCreditService(unitOfWork, args.Publisher)
	if creditServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", creditServiceErr.Error())
	}

	return &AppServices{
		PartyService:       partyService,
		DueService:         dueService,
		AnalyticsService:   analyticsService,
		TransactionService: transactionService,
		CreditService:      creditService,
	}, nil
}
