package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	"github.com/shopspring/decimal"
)

// CreditService анкеты ритейлеров и решения финтеха. Данные только хранятся, скоринг не выполняется.
type CreditService struct {
	uow        uow.UOW
	partyRepo  PartyRepository
	creditRepo CreditRepository
	publisher  EventPublisher
}

func NewCreditService(u uow.UOW, publisher EventPublisher) (*CreditService, error) {
	partyRepo, err := uow.GetRepositoryAs[PartyRepository](u, uow.RepositoryName(repoargs.PartyRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	creditRepo, err := uow.GetRepositoryAs[CreditRepository](u, uow.RepositoryName(repoargs.CreditRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CreditService{
		uow:        u,
		partyRepo:  partyRepo,
		creditRepo: creditRepo,
		publisher:  publisher,
	}, nil
}

type BankDetailsArgs struct {
	AccountNumber string
	IFSCCode      string
	BankName      string
	BankBranch    string
}

type ExistingLoanArgs struct {
	LoanAmount   decimal.Decimal
	LoanProvider string
	MonthlyEMI   decimal.Decimal
}

type DocumentArgs struct {
	DocumentType domain.DocumentType
	FileURL      string
}

// OnboardingArgs анкета ритейлера. Bank nil оставляет сохраненные реквизиты без изменений, Loans полностью
// заменяет список текущих кредитов, Documents добавляются к уже загруженным.
type OnboardingArgs struct {
	PANNumber       string
	AnnualTurnover  decimal.Decimal
	YearsInBusiness int32
	BusinessType    string
	ShopOwnership   string
	MonthlyRent     decimal.Decimal
	EmployeeCount   int32
	Bank            *BankDetailsArgs
	Loans           []ExistingLoanArgs
	Documents       []DocumentArgs
}

func (a OnboardingArgs) validate() error {
	if a.AnnualTurnover.IsNegative() {
		return domain.NewValidationError("annual_turnover", "must not be negative")
	}
	if a.MonthlyRent.IsNegative() {
		return domain.NewValidationError("monthly_rent", "must not be negative")
	}
	if err := domain.ValidateAmountMax("annual_turnover", a.AnnualTurnover, domain.MaxTurnover); err != nil {
		return err
	}
	if err := domain.ValidateAmountMax("monthly_rent", a.MonthlyRent, domain.MaxSmallAmount); err != nil {
		return err
	}
	if a.YearsInBusiness < 0 {
		return domain.NewValidationError("years_in_business", "must not be negative")
	}
	if a.EmployeeCount < 0 {
		return domain.NewValidationError("employee_count", "must not be negative")
	}
	for i, l := range a.Loans {
		if !l.LoanAmount.IsPositive() {
			return domain.NewValidationError(fmt.Sprintf("existing_loans[%d].loan_amount", i), "must be greater than zero")
		}
		if l.MonthlyEMI.IsNegative() {
			return domain.NewValidationError(fmt.Sprintf("existing_loans[%d].monthly_emi", i), "must not be negative")
		}
		field := fmt.Sprintf("existing_loans[%d].loan_amount", i)
		if err := domain.ValidateAmountMax(field, l.LoanAmount, domain.MaxAmount); err != nil {
			return err
		}
		field = fmt.Sprintf("existing_loans[%d].monthly_emi", i)
		if err := domain.ValidateAmountMax(field, l.MonthlyEMI, domain.MaxSmallAmount); err != nil {
			return err
		}
	}
	for i, d := range a.Documents {
		if !d.DocumentType.Valid() {
			return domain.NewValidationError(fmt.Sprintf("documents[%d].document_type", i), "invalid document type")
		}
		if strings.TrimSpace(d.FileURL) == "" {
			return domain.NewValidationError(fmt.Sprintf("documents[%d].file_url", i), "is required")
		}
	}
	return nil
}

// RetailerData анкета ритейлера целиком.
type RetailerData struct {
	Profile   *domain.RetailerProfile
	Bank      *domain.BankDetails
	Loans     []domain.ExistingLoan
	Documents []domain.Document
}

type Profile struct {
	Party    *domain.Party
	Retailer *RetailerData
}

// SaveOnboarding сохраняет анкету ритейлера в одной транзакции.
func (s *CreditService) SaveOnboarding(ctx context.Context, actor domain.Actor, args OnboardingArgs) (*RetailerData, error) {
	if err := requireRole(actor, domain.RoleRetailer); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}

	var data *RetailerData
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, err := txRepo[CreditRepository](tx, repoargs.CreditRepoName)
		if err != nil {
			return err
		}

		if _, err = repo.SaveProfile(c, repoargs.SaveRetailerProfile{
			PartyID:         actor.PartyID,
			PANNumber:       strings.ToUpper(strings.TrimSpace(args.PANNumber)),
			AnnualTurnover:  args.AnnualTurnover,
			YearsInBusiness: args.YearsInBusiness,
			BusinessType:    args.BusinessType,
			ShopOwnership:   args.ShopOwnership,
			MonthlyRent:     args.MonthlyRent,
			EmployeeCount:   args.EmployeeCount,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		if args.Bank != nil {
			if err = repo.SaveBankDetails(c, repoargs.SaveBankDetails{
				PartyID:       actor.PartyID,
				AccountNumber: args.Bank.AccountNumber,
				IFSCCode:      strings.ToUpper(args.Bank.IFSCCode),
				BankName:      args.Bank.BankName,
				BankBranch:    args.Bank.BankBranch,
			}); err != nil {
				return err //nolint:wrapcheck
			}
		}

		loans := make([]repoargs.CreateExistingLoan, len(args.Loans))
		for i, l := range args.Loans {
			loans[i] = repoargs.CreateExistingLoan{
				PartyID:      actor.PartyID,
				LoanAmount:   l.LoanAmount,
				LoanProvider: l.LoanProvider,
				MonthlyEMI:   l.MonthlyEMI,
			}
		}
		if err = repo.ReplaceExistingLoans(c, actor.PartyID, loans); err != nil {
			return err //nolint:wrapcheck
		}

		for _, d := range args.Documents {
			if _, err = repo.CreateDocument(c, repoargs.CreateDocument{
				PartyID:      actor.PartyID,
				DocumentType: d.DocumentType,
				FileURL:      strings.TrimSpace(d.FileURL),
			}); err != nil {
				return err //nolint:wrapcheck
			}
		}

		data, err = loadRetailerData(c, repo, actor.PartyID)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("saving onboarding: %w", txErr)
	}
	return data, nil
}

// Profile данные участника. Для ритейлера дополнительно возвращается анкета, если она заполнена.
func (s *CreditService) Profile(ctx context.Context, actor domain.Actor) (*Profile, error) {
	var profile Profile
	txErr := s.uow.DoReadOnly(ctx, func(c context.Context, tx uow.TX) error {
		partyRepo, err := txRepo[PartyRepository](tx, repoargs.PartyRepoName)
		if err != nil {
			return err
		}
		creditRepo, err := txRepo[CreditRepository](tx, repoargs.CreditRepoName)
		if err != nil {
			return err
		}

		if profile.Party, err = partyRepo.FindByID(c, actor.PartyID); err != nil {
			return err //nolint:wrapcheck
		}
		if profile.Party.Role != domain.RoleRetailer {
			return nil
		}
		profile.Retailer, err = loadRetailerData(c, creditRepo, actor.PartyID)
		if isNotFound(err) {
			profile.Retailer, err = nil, nil
		}
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("loading profile: %w", txErr)
	}
	return &profile, nil
}

func loadRetailerData(ctx context.Context, repo CreditRepository, partyID int64) (*RetailerData, error) {
	var data RetailerData
	var err error
	if data.Profile, err = repo.FindProfile(ctx, partyID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if data.Bank, err = repo.FindBankDetails(ctx, partyID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if data.Loans, err = repo.ListExistingLoans(ctx, partyID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if data.Documents, err = repo.ListDocuments(ctx, partyID); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &data, nil
}

// ListRetailers все ритейлеры с анкетой и последней оценкой. Только для финтеха.
func (s *CreditService) ListRetailers(ctx context.Context, actor domain.Actor) ([]repoargs.RetailerCreditRow, error) {
	if err := requireRole(actor, domain.RoleFintech); err != nil {
		return nil, err
	}
	rows, err := s.creditRepo.ListRetailerCredit(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing retailer credit: %w", err)
	}
	return rows, nil
}

type AssessmentArgs struct {
	CreditScore   int32
	Status        domain.AssessmentStatusType
	ApprovedLimit decimal.Decimal
	Notes         string
}

func (a AssessmentArgs) validate() error {
	if a.CreditScore < 0 {
		return domain.NewValidationError("credit_score", "must not be negative")
	}
	if a.Status != "" && !a.Status.Valid() {
		return domain.NewValidationError("status", "invalid status")
	}
	if a.ApprovedLimit.IsNegative() {
		return domain.NewValidationError("approved_limit", "must not be negative")
	}
	return domain.ValidateAmountMax("approved_limit", a.ApprovedLimit, domain.MaxAmount)
}

// CreateAssessment сохраняет решение финтеха по ритейлеру.
func (s *CreditService) CreateAssessment(
	ctx context.Context,
	actor domain.Actor,
	retailerID int64,
	args AssessmentArgs,
) (*domain.CreditAssessment, error) {
	if err := requireRole(actor, domain.RoleFintech); err != nil {
		return nil, err
	}
	if err := args.validate(); err != nil {
		return nil, err
	}
	status := args.Status
	if status == "" {
		status = domain.AssessmentStatusPending
	}

	var assessment *domain.CreditAssessment
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := findRetailer(c, tx, retailerID); err != nil {
			return err
		}
		repo, err := txRepo[CreditRepository](tx, repoargs.CreditRepoName)
		if err != nil {
			return err
		}
		assessment, err = repo.CreateAssessment(c, repoargs.CreateAssessment{
			PartyID:       retailerID,
			CreditScore:   args.CreditScore,
			Status:        status,
			ApprovedLimit: args.ApprovedLimit,
			Notes:         args.Notes,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating assessment: %w", txErr)
	}
	return assessment, nil
}

// UpdateCreditLimit устанавливает кредитный лимит ритейлера и уведомляет его событием credit_limit_updated.
func (s *CreditService) UpdateCreditLimit(
	ctx context.Context,
	actor domain.Actor,
	retailerID int64,
	limit decimal.Decimal,
) (*domain.RetailerProfile, error) {
	if err := requireRole(actor, domain.RoleFintech); err != nil {
		return nil, err
	}
	if limit.IsNegative() {
		return nil, domain.NewValidationError("credit_limit", "must not be negative")
	}
	if err := domain.ValidateAmountMax("credit_limit", limit, domain.MaxAmount); err != nil {
		return nil, err
	}

	var profile *domain.RetailerProfile
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := findRetailer(c, tx, retailerID); err != nil {
			return err
		}
		repo, err := txRepo[CreditRepository](tx, repoargs.CreditRepoName)
		if err != nil {
			return err
		}
		profile, err = repo.UpdateCreditLimit(c, retailerID, limit)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating credit limit: %w", txErr)
	}

	s.publisher.Publish(ctx, domain.Event{
		Type:  domain.EventCreditLimitUpdated,
		Topic: domain.PartyTopic(retailerID),
		Data: CreditLimitPayload{
			RetailerID:      retailerID,
			CreditLimit:     money(profile.CreditLimit),
			AvailableCredit: money(profile.AvailableCredit),
		},
	})
	return profile, nil
}

// findRetailer возвращает domain.ErrRecordNotFound, если участника нет или он не ритейлер.
func findRetailer(ctx context.Context, tx uow.TX, retailerID int64) error {
	partyRepo, err := txRepo[PartyRepository](tx, repoargs.PartyRepoName)
	if err != nil {
		return err
	}
	party, err := partyRepo.FindByID(ctx, retailerID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if party.Role != domain.RoleRetailer {
		return fmt.Errorf("%w: party %d is not a retailer", domain.ErrRecordNotFound, retailerID)
	}
	return nil
}
