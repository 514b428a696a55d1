package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/internal/service/tokens"
	"github.com/fsdevblog/tradecredit/pkg/uow"
)

const (
	DefaultSessionTTL = 24 * time.Hour
	minPasswordLength = 6
)

type PartyService struct {
	uow        uow.UOW
	partyRepo  PartyRepository
	hasher     PasswordHasher
	jwtSecret  []byte
	sessionTTL time.Duration
}

func NewPartyService(
	u uow.UOW,
	hasher PasswordHasher,
	jwtSecret []byte,
	sessionTTL time.Duration,
) (*PartyService, error) {
	partyRepo, err := uow.GetRepositoryAs[PartyRepository](u, uow.RepositoryName(repoargs.PartyRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &PartyService{
		uow:        u,
		partyRepo:  partyRepo,
		hasher:     hasher,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}, nil
}

type RegisterPartyArgs struct {
	Role         domain.RoleType
	Email        string
	Password     string
	FirstName    string
	BusinessName string
	Phone        string
	GSTNumber    string
	Address      string
}

func (a RegisterPartyArgs) validate() error {
	if !a.Role.Valid() {
		return domain.NewValidationError("user_type", "invalid user type")
	}
	if _, err := mail.ParseAddress(a.Email); err != nil {
		return domain.NewValidationError("email", "invalid email")
	}
	if len(a.Password) < minPasswordLength {
		return domain.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if strings.TrimSpace(a.BusinessName) == "" {
		return domain.NewValidationError("businessName", "is required")
	}
	return nil
}

// Register создает участника и выпускает сессионный токен. Создание записи и выпуск токена выполняются в одной
// транзакции: при любой ошибке запись участника не сохраняется. Возвращает 3 значения: созданный участник, токен
// и ошибку. Повторная регистрация того же email вернет domain.ErrDuplicateKey.
func (s *PartyService) Register(ctx context.Context, args RegisterPartyArgs) (*domain.Party, string, error) {
	if err := args.validate(); err != nil {
		return nil, "", err
	}

	passwordHash, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering party: %s", hashErr.Error())
	}

	var party *domain.Party
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var partyErr, tokenErr error
		partyRepo, repoErr := uow.GetAs[PartyRepository](tx, uow.RepositoryName(repoargs.PartyRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		party, partyErr = partyRepo.Create(c, repoargs.CreateParty{
			Email:        strings.TrimSpace(args.Email),
			PasswordHash: passwordHash,
			FirstName:    args.FirstName,
			Role:         args.Role,
			BusinessName: strings.TrimSpace(args.BusinessName),
			Phone:        strings.TrimSpace(args.Phone),
			GSTNumber:    args.GSTNumber,
			Address:      args.Address,
		})
		if partyErr != nil {
			return partyErr //nolint:wrapcheck
		}

		token, tokenErr = tokens.GenerateSessionJWT(party.ID, party.Role, s.sessionTTL, s.jwtSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering party: %w", txErr)
	}
	return party, token, nil
}

type LoginArgs struct {
	Email    string
	Password string
}

// Login аутентифицирует участника по email и паролю. Для неизвестного email и неверного пароля возвращается одна
// и та же ошибка domain.ErrInvalidCredentials.
func (s *PartyService) Login(ctx context.Context, args LoginArgs) (*domain.Party, string, error) {
	party, err := s.partyRepo.FindByEmail(ctx, strings.TrimSpace(args.Email))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: %w", err)
	}

	if !s.hasher.ComparePassword(args.Password, party.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, tokenErr := tokens.GenerateSessionJWT(party.ID, party.Role, s.sessionTTL, s.jwtSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login: %w", tokenErr)
	}
	return party, token, nil
}

// Get возвращает участника по id.
func (s *PartyService) Get(ctx context.Context, partyID int64) (*domain.Party, error) {
	party, err := s.partyRepo.FindByID(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("getting party: %w", err)
	}
	return party, nil
}

// SessionTTL время жизни выпускаемых токенов.
func (s *PartyService) SessionTTL() time.Duration {
	return s.sessionTTL
}
