package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/internal/service/mocks"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	uowmocks "github.com/fsdevblog/tradecredit/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CreditServiceTestSuite struct {
	suite.Suite
	mockUOW             *uowmocks.MockUOW
	mockTX              *uowmocks.MockTX
	mockPartyRepo       *mocks.MockPartyRepository
	mockCreditRepo      *mocks.MockCreditRepository
	mockTransactionRepo *mocks.MockTransactionRepository
	mockPublisher       *mocks.MockEventPublisher
	creditService       *CreditService
	transactionService  *TransactionService

	retailer domain.Actor
	fintech  domain.Actor
	supplier domain.Actor
}

func TestCreditServiceSuite(t *testing.T) {
	suite.Run(t, new(CreditServiceTestSuite))
}

func (s *CreditServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockPartyRepo = mocks.NewMockPartyRepository(mockCtrl)
	s.mockCreditRepo = mocks.NewMockCreditRepository(mockCtrl)
	s.mockTransactionRepo = mocks.NewMockTransactionRepository(mockCtrl)
	s.mockPublisher = mocks.NewMockEventPublisher(mockCtrl)

	s.retailer = domain.Actor{PartyID: 2, Role: domain.RoleRetailer}
	s.fintech = domain.Actor{PartyID: 5, Role: domain.RoleFintech}
	s.supplier = domain.Actor{PartyID: 1, Role: domain.RoleSupplier}

	for name, repo := range map[repoargs.RepositoryName]uow.Repository{
		repoargs.PartyRepoName:       s.mockPartyRepo,
		repoargs.CreditRepoName:      s.mockCreditRepo,
		repoargs.TransactionRepoName: s.mockTransactionRepo,
	} {
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}
	runFn := func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
		return fn(ctx, s.mockTX)
	}
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(runFn).AnyTimes()
	s.mockUOW.EXPECT().DoReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(runFn).AnyTimes()

	s.mockPartyRepo.EXPECT().FindByID(gomock.Any(), s.retailer.PartyID).
		Return(&domain.Party{ID: s.retailer.PartyID, Role: domain.RoleRetailer}, nil).AnyTimes()
	s.mockPartyRepo.EXPECT().FindByID(gomock.Any(), s.supplier.PartyID).
		Return(&domain.Party{ID: s.supplier.PartyID, Role: domain.RoleSupplier}, nil).AnyTimes()
	s.mockPartyRepo.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, domain.ErrRecordNotFound).AnyTimes()

	var err error
	s.creditService, err = NewCreditService(s.mockUOW, s.mockPublisher)
	s.Require().NoError(err)
	s.transactionService, err = NewTransactionService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *CreditServiceTestSuite) TestSaveOnboarding() {
	args := OnboardingArgs{
		PANNumber:       " abcde1234f ",
		AnnualTurnover:  decimal.RequireFromString("1200000"),
		YearsInBusiness: 4,
		BusinessType:    "kirana",
		ShopOwnership:   "rented",
		MonthlyRent:     decimal.RequireFromString("15000"),
		EmployeeCount:   3,
		Bank:            &BankDetailsArgs{AccountNumber: "0001", IFSCCode: "sbin0001", BankName: "SBI"},
		Loans:           []ExistingLoanArgs{{LoanAmount: decimal.RequireFromString("50000"), LoanProvider: "NBFC"}},
		Documents:       []DocumentArgs{{DocumentType: domain.DocumentGSTCertificate, FileURL: "https://files/gst.pdf"}},
	}

	s.mockCreditRepo.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a repoargs.SaveRetailerProfile) (*domain.RetailerProfile, error) {
			s.Equal("ABCDE1234F", a.PANNumber)
			s.Equal(s.retailer.PartyID, a.PartyID)
			return &domain.RetailerProfile{PartyID: a.PartyID, PANNumber: a.PANNumber}, nil
		})
	s.mockCreditRepo.EXPECT().SaveBankDetails(gomock.Any(), repoargs.SaveBankDetails{
		PartyID: s.retailer.PartyID, AccountNumber: "0001", IFSCCode: "SBIN0001", BankName: "SBI",
	}).Return(nil)
	s.mockCreditRepo.EXPECT().ReplaceExistingLoans(gomock.Any(), s.retailer.PartyID, gomock.Len(1)).Return(nil)
	s.mockCreditRepo.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Return(&domain.Document{ID: 1}, nil)
	s.mockCreditRepo.EXPECT().FindProfile(gomock.Any(), s.retailer.PartyID).
		Return(&domain.RetailerProfile{PartyID: s.retailer.PartyID}, nil)
	s.mockCreditRepo.EXPECT().FindBankDetails(gomock.Any(), s.retailer.PartyID).Return(&domain.BankDetails{}, nil)
	s.mockCreditRepo.EXPECT().ListExistingLoans(gomock.Any(), s.retailer.PartyID).
		Return([]domain.ExistingLoan{{ID: 1}}, nil)
	s.mockCreditRepo.EXPECT().ListDocuments(gomock.Any(), s.retailer.PartyID).
		Return([]domain.Document{{ID: 1}}, nil)

	data, err := s.creditService.SaveOnboarding(s.T().Context(), s.retailer, args)
	s.Require().NoError(err)
	s.Len(data.Loans, 1)
	s.Len(data.Documents, 1)

	s.Run("supplier cannot onboard", func() {
		_, err := s.creditService.SaveOnboarding(s.T().Context(), s.supplier, args)
		s.ErrorIs(err, domain.ErrForbidden)
	})
	s.Run("invalid document type", func() {
		bad := args
		bad.Documents = []DocumentArgs{{DocumentType: "selfie", FileURL: "x"}}
		_, err := s.creditService.SaveOnboarding(s.T().Context(), s.retailer, bad)
		s.ErrorIs(err, domain.ErrValidation)
	})
}

func (s *CreditServiceTestSuite) TestProfile() {
	s.Run("supplier has no retailer data", func() {
		p, err := s.creditService.Profile(s.T().Context(), s.supplier)
		s.Require().NoError(err)
		s.Equal(s.supplier.PartyID, p.Party.ID)
		s.Nil(p.Retailer)
	})
	s.Run("retailer before onboarding", func() {
		s.mockCreditRepo.EXPECT().FindProfile(gomock.Any(), s.retailer.PartyID).Return(nil, domain.ErrRecordNotFound)
		p, err := s.creditService.Profile(s.T().Context(), s.retailer)
		s.Require().NoError(err)
		s.Nil(p.Retailer)
	})
}

func (s *CreditServiceTestSuite) TestUpdateCreditLimit() {
	var published []domain.Event
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e domain.Event) { published = append(published, e) }).AnyTimes()
	s.mockCreditRepo.EXPECT().UpdateCreditLimit(gomock.Any(), s.retailer.PartyID, gomock.Any()).
		Return(&domain.RetailerProfile{
			PartyID:         s.retailer.PartyID,
			CreditLimit:     decimal.RequireFromString("100000"),
			AvailableCredit: decimal.RequireFromString("99500"),
		}, nil)

	limit := decimal.RequireFromString("100000")
	profile, err := s.creditService.UpdateCreditLimit(s.T().Context(), s.fintech, s.retailer.PartyID, limit)
	s.Require().NoError(err)
	s.True(limit.Equal(profile.CreditLimit))
	s.Require().Len(published, 1)
	s.Equal(domain.EventCreditLimitUpdated, published[0].Type)
	s.Equal(domain.PartyTopic(s.retailer.PartyID), published[0].Topic)
	s.Equal(CreditLimitPayload{RetailerID: 2, CreditLimit: "100000.00", AvailableCredit: "99500.00"},
		published[0].Data)

	cases := []struct {
		name       string
		actor      domain.Actor
		retailerID int64
		limit      decimal.Decimal
		wantErr    error
	}{
		{name: "not fintech", actor: s.supplier, retailerID: s.retailer.PartyID, limit: limit,
			wantErr: domain.ErrForbidden},
		{name: "negative", actor: s.fintech, retailerID: s.retailer.PartyID, limit: limit.Neg(),
			wantErr: domain.ErrValidation},
		{name: "unknown retailer", actor: s.fintech, retailerID: 404, limit: limit, wantErr: domain.ErrRecordNotFound},
		{name: "party is a supplier", actor: s.fintech, retailerID: s.supplier.PartyID, limit: limit,
			wantErr: domain.ErrRecordNotFound},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			published = nil
			_, err := s.creditService.UpdateCreditLimit(s.T().Context(), t.actor, t.retailerID, t.limit)
			s.ErrorIs(err, t.wantErr)
			s.Empty(published)
		})
	}
}

func (s *CreditServiceTestSuite) TestCreateAssessment() {
	s.mockCreditRepo.EXPECT().CreateAssessment(gomock.Any(), repoargs.CreateAssessment{
		PartyID:     s.retailer.PartyID,
		CreditScore: 720,
		Status:      domain.AssessmentStatusPending,
	}).Return(&domain.CreditAssessment{ID: 1, CreditScore: 720, Status: domain.AssessmentStatusPending}, nil)

	a, err := s.creditService.CreateAssessment(s.T().Context(), s.fintech, s.retailer.PartyID,
		AssessmentArgs{CreditScore: 720})
	s.Require().NoError(err)
	s.Equal(domain.AssessmentStatusPending, a.Status)

	_, err = s.creditService.CreateAssessment(s.T().Context(), s.fintech, s.retailer.PartyID,
		AssessmentArgs{CreditScore: 700, Status: "maybe"})
	s.ErrorIs(err, domain.ErrValidation)

	_, err = s.creditService.ListRetailers(s.T().Context(), s.retailer)
	s.ErrorIs(err, domain.ErrForbidden)
}

func (s *CreditServiceTestSuite) TestTransactions() {
	s.mockTransactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a repoargs.CreateTransaction) (*domain.Transaction, error) {
			return &domain.Transaction{
				ID:         1,
				SupplierID: a.SupplierID,
				RetailerID: a.RetailerID,
				Amount:     a.Amount,
				Status:     a.Status,
			}, nil
		})
	s.mockTransactionRepo.EXPECT().ListForParty(gomock.Any(), s.retailer.PartyID).
		Return([]domain.Transaction{{ID: 1}}, nil)

	tx, err := s.transactionService.Create(s.T().Context(), s.supplier, CreateTransactionArgs{
		RetailerID: s.retailer.PartyID,
		Amount:     decimal.RequireFromString("820"),
	})
	s.Require().NoError(err)
	s.Equal(domain.TransactionStatusPending, tx.Status)
	s.Equal(s.supplier.PartyID, tx.SupplierID)

	list, err := s.transactionService.List(s.T().Context(), s.retailer)
	s.Require().NoError(err)
	s.Len(list, 1)

	cases := []struct {
		name    string
		actor   domain.Actor
		args    CreateTransactionArgs
		wantErr error
	}{
		{name: "retailer cannot create", actor: s.retailer,
			args: CreateTransactionArgs{RetailerID: 2, Amount: decimal.NewFromInt(1)}, wantErr: domain.ErrForbidden},
		{name: "negative amount", actor: s.supplier,
			args: CreateTransactionArgs{RetailerID: 2, Amount: decimal.NewFromInt(-1)}, wantErr: domain.ErrValidation},
		{name: "unknown retailer", actor: s.supplier,
			args: CreateTransactionArgs{RetailerID: 404, Amount: decimal.NewFromInt(1)}, wantErr: domain.ErrValidation},
		{name: "bad status", actor: s.supplier,
			args:    CreateTransactionArgs{RetailerID: 2, Amount: decimal.NewFromInt(1), Status: "lost"},
			wantErr: domain.ErrValidation},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.transactionService.Create(s.T().Context(), t.actor, t.args)
			s.ErrorIs(err, t.wantErr)
		})
	}
}
