package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/internal/service/mocks"
	"github.com/fsdevblog/tradecredit/internal/service/tokens"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	uowmocks "github.com/fsdevblog/tradecredit/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type PartyServiceTestSuite struct {
	suite.Suite
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockPartyRepo *mocks.MockPartyRepository
	mockPsswd     *mocks.MockPasswordHasher
	jwtSecret     []byte
	partyService  *PartyService
}

func TestPartyServiceSuite(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}

func (s *PartyServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockPartyRepo = mocks.NewMockPartyRepository(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)

	s.jwtSecret = []byte("secret")

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PartyRepoName)).
		Return(s.mockPartyRepo, nil).AnyTimes()

	partyService, servErr := NewPartyService(s.mockUOW, s.mockPsswd, s.jwtSecret, time.Hour)
	s.Require().NoError(servErr)
	s.partyService = partyService
}

func (s *PartyServiceTestSuite) TestLogin() {
	savedEmail := gofakeit.Email()
	argsOk := LoginArgs{Email: savedEmail, Password: "<PASSWORD>"}
	argsWrongEmail := LoginArgs{Email: "wrong@example.com", Password: "<PASSWORD>"}
	argsWrongPass := LoginArgs{Email: savedEmail, Password: "wrong pass"}

	validHashPassword := "hash ok"

	savedParty := domain.Party{
		ID:           1,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Email:        savedEmail,
		PasswordHash: validHashPassword,
		Role:         domain.RoleSupplier,
		BusinessName: gofakeit.Company(),
	}

	// Мок для сравнения пароля.
	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHashPassword).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHashPassword).Return(false)

	// Мок репозитория.
	s.mockPartyRepo.EXPECT().FindByEmail(gomock.Any(), savedEmail).Return(&savedParty, nil).Times(2)
	s.mockPartyRepo.EXPECT().FindByEmail(gomock.Any(), argsWrongEmail.Email).Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginArgs
		wantErr error
	}{
		{name: "ok", args: argsOk},
		{name: "unknown email", args: argsWrongEmail, wantErr: domain.ErrInvalidCredentials},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrInvalidCredentials},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			party, tokenStr, err := s.partyService.Login(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Require().NotNil(party)
				s.NotEmpty(tokenStr)

				claims, tokenErr := tokens.ValidateSessionJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(savedParty.ID, claims.PartyID)
				s.Equal(domain.RoleSupplier, claims.Role)
			} else {
				s.ErrorIs(err, domain.ErrUnauthenticated)
				s.Empty(tokenStr)
			}
		})
	}
}

func (s *PartyServiceTestSuite) TestRegister() {
	argsOk := RegisterPartyArgs{
		Role:         domain.RoleRetailer,
		Email:        gofakeit.Email(),
		Password:     "password",
		FirstName:    gofakeit.FirstName(),
		BusinessName: gofakeit.Company(),
		Phone:        gofakeit.Numerify("##########"),
	}
	argsDuplicate := argsOk
	argsDuplicate.Email = gofakeit.Email()

	validHashedPassword := "hashedPassword"

	createdParty := domain.Party{
		ID:           7,
		Email:        argsOk.Email,
		PasswordHash: validHashedPassword,
		FirstName:    argsOk.FirstName,
		Role:         argsOk.Role,
		BusinessName: argsOk.BusinessName,
		Phone:        argsOk.Phone,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	// Мок транзакции uow.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PartyRepoName)).Return(s.mockPartyRepo, nil).MinTimes(1)

	// Мок хеширования пароля.
	s.mockPsswd.EXPECT().HashPassword(argsOk.Password).Return(validHashedPassword, nil).Times(2)

	// Мок репозитория.
	s.mockPartyRepo.EXPECT().
		Create(gomock.Any(), gomock.Eq(repoargs.CreateParty{
			Email:        argsOk.Email,
			PasswordHash: validHashedPassword,
			FirstName:    argsOk.FirstName,
			Role:         argsOk.Role,
			BusinessName: argsOk.BusinessName,
			Phone:        argsOk.Phone,
		})).
		Return(&createdParty, nil)
	s.mockPartyRepo.EXPECT().
		Create(gomock.Any(), gomock.Eq(repoargs.CreateParty{
			Email:        argsDuplicate.Email,
			PasswordHash: validHashedPassword,
			FirstName:    argsDuplicate.FirstName,
			Role:         argsDuplicate.Role,
			BusinessName: argsDuplicate.BusinessName,
			Phone:        argsDuplicate.Phone,
		})).
		Return(nil, domain.ErrDuplicateKey)

	// Мок uow.
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	invalidRole := argsOk
	invalidRole.Role = "admin"
	shortPassword := argsOk
	shortPassword.Password = "123"
	noBusiness := argsOk
	noBusiness.BusinessName = "  "

	cases := []struct {
		name      string
		args      RegisterPartyArgs
		wantErr   error
		wantParty *domain.Party
	}{
		{name: "ok", args: argsOk, wantParty: &createdParty},
		{name: "duplicate email", args: argsDuplicate, wantErr: domain.ErrDuplicateKey},
		{name: "invalid role", args: invalidRole, wantErr: domain.ErrValidation},
		{name: "short password", args: shortPassword, wantErr: domain.ErrValidation},
		{name: "blank business name", args: noBusiness, wantErr: domain.ErrValidation},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			party, tokenStr, err := s.partyService.Register(s.T().Context(), t.args)

			s.Require().ErrorIs(err, t.wantErr)
			s.Equal(t.wantParty, party)

			if t.wantErr == nil {
				s.Require().NotEmpty(tokenStr)
				claims, tokenErr := tokens.ValidateSessionJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(party.ID, claims.PartyID)
				s.Equal(party.Role, claims.Role)
			} else {
				s.Empty(tokenStr)
			}
		})
	}
}

func (s *PartyServiceTestSuite) TestSessionTTLDefault() {
	svc, err := NewPartyService(s.mockUOW, s.mockPsswd, s.jwtSecret, 0)
	s.Require().NoError(err)
	s.Equal(DefaultSessionTTL, svc.SessionTTL())
}
