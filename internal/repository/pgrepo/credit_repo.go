package pgrepo

import (
	"context"
	"errors"
	"time"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	profileColumns = `party_id, pan_number, annual_turnover, years_in_business, business_type, shop_ownership,
		monthly_rent, employee_count, bank_statement_score, credit_score, credit_limit, available_credit, updated_at`
	assessmentColumns = `id, party_id, credit_score, status, approved_limit, notes, assessment_date, updated_at`
)

// CreditRepository хранилище анкетных и кредитных данных ритейлеров. Бизнес-логики здесь нет.
type CreditRepository struct {
	db uow.DBTX
}

func NewCreditRepository(db uow.DBTX) *CreditRepository {
	return &CreditRepository{db: db}
}

func scanProfile(row pgx.Row) (*domain.RetailerProfile, error) {
	var p domain.RetailerProfile
	err := row.Scan(
		&p.PartyID, &p.PANNumber, &p.AnnualTurnover, &p.YearsInBusiness, &p.BusinessType, &p.ShopOwnership,
		&p.MonthlyRent, &p.EmployeeCount, &p.BankStatementScore, &p.CreditScore, &p.CreditLimit,
		&p.AvailableCredit, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}

func scanAssessment(row pgx.Row) (*domain.CreditAssessment, error) {
	var a domain.CreditAssessment
	var status string
	err := row.Scan(
		&a.ID, &a.PartyID, &a.CreditScore, &status, &a.ApprovedLimit, &a.Notes, &a.AssessmentDate, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	a.Status = domain.AssessmentStatusType(status)
	return &a, nil
}

// SaveProfile создает или обновляет анкету ритейлера. Кредитный лимит при этом не меняется.
func (r *CreditRepository) SaveProfile(
	ctx context.Context,
	args repoargs.SaveRetailerProfile,
) (*domain.RetailerProfile, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO retailer_profiles (party_id, pan_number, annual_turnover, years_in_business, business_type,
		                               shop_ownership, monthly_rent, employee_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (party_id) DO UPDATE SET
			pan_number        = EXCLUDED.pan_number,
			annual_turnover   = EXCLUDED.annual_turnover,
			years_in_business = EXCLUDED.years_in_business,
			business_type     = EXCLUDED.business_type,
			shop_ownership    = EXCLUDED.shop_ownership,
			monthly_rent      = EXCLUDED.monthly_rent,
			employee_count    = EXCLUDED.employee_count,
			updated_at        = now()
		RETURNING `+profileColumns,
		args.PartyID, args.PANNumber, args.AnnualTurnover, args.YearsInBusiness, args.BusinessType,
		args.ShopOwnership, args.MonthlyRent, args.EmployeeCount,
	)
	p, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "saving profile of party %d", args.PartyID)
	}
	return p, nil
}

func (r *CreditRepository) FindProfile(ctx context.Context, partyID int64) (*domain.RetailerProfile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM retailer_profiles WHERE party_id = $1`, partyID))
	if err != nil {
		return nil, convertErr(err, "finding profile of party %d", partyID)
	}
	return p, nil
}

func (r *CreditRepository) SaveBankDetails(ctx context.Context, args repoargs.SaveBankDetails) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bank_details (party_id, account_number, ifsc_code, bank_name, bank_branch)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (party_id) DO UPDATE SET
			account_number = EXCLUDED.account_number,
			ifsc_code      = EXCLUDED.ifsc_code,
			bank_name      = EXCLUDED.bank_name,
			bank_branch    = EXCLUDED.bank_branch`,
		args.PartyID, args.AccountNumber, args.IFSCCode, args.BankName, args.BankBranch,
	)
	if err != nil {
		return convertErr(err, "saving bank details of party %d", args.PartyID)
	}
	return nil
}

// FindBankDetails возвращает nil без ошибки, если реквизиты еще не заполнены.
func (r *CreditRepository) FindBankDetails(ctx context.Context, partyID int64) (*domain.BankDetails, error) {
	var b domain.BankDetails
	err := r.db.QueryRow(ctx, `
		SELECT party_id, account_number, ifsc_code, bank_name, bank_branch
		FROM bank_details WHERE party_id = $1`, partyID,
	).Scan(&b.PartyID, &b.AccountNumber, &b.IFSCCode, &b.BankName, &b.BankBranch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil //nolint:nilnil
		}
		return nil, convertErr(err, "finding bank details of party %d", partyID)
	}
	return &b, nil
}

// ReplaceExistingLoans заменяет список текущих кредитов ритейлера. Вызывается внутри транзакции.
func (r *CreditRepository) ReplaceExistingLoans(
	ctx context.Context,
	partyID int64,
	loans []repoargs.CreateExistingLoan,
) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM existing_loans WHERE party_id = $1`, partyID); err != nil {
		return convertErr(err, "deleting loans of party %d", partyID)
	}
	if len(loans) == 0 {
		return nil
	}

	batch := new(pgx.Batch)
	for _, loan := range loans {
		batch.Queue(`
			INSERT INTO existing_loans (party_id, loan_amount, loan_provider, monthly_emi)
			VALUES ($1, $2, $3, $4)`, partyID, loan.LoanAmount, loan.LoanProvider, loan.MonthlyEMI)
	}
	br := r.db.SendBatch(ctx, batch)
	defer func() {
		_ = br.Close()
	}()
	for range loans {
		if _, err := br.Exec(); err != nil {
			return convertErr(err, "inserting loans of party %d", partyID)
		}
	}
	return nil
}

func (r *CreditRepository) ListExistingLoans(ctx context.Context, partyID int64) ([]domain.ExistingLoan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, party_id, loan_amount, loan_provider, monthly_emi, created_at
		FROM existing_loans WHERE party_id = $1 ORDER BY id`, partyID)
	if err != nil {
		return nil, convertErr(err, "listing loans of party %d", partyID)
	}
	loans, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExistingLoan, error) {
		var l domain.ExistingLoan
		scanErr := row.Scan(&l.ID, &l.PartyID, &l.LoanAmount, &l.LoanProvider, &l.MonthlyEMI, &l.CreatedAt)
		return l, scanErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, convertErr(err, "scanning loans of party %d", partyID)
	}
	return loans, nil
}

func (r *CreditRepository) CreateDocument(ctx context.Context, args repoargs.CreateDocument) (*domain.Document, error) {
	var d domain.Document
	var docType string
	err := r.db.QueryRow(ctx, `
		INSERT INTO documents (party_id, document_type, file_url)
		VALUES ($1, $2, $3)
		RETURNING id, party_id, document_type, file_url, uploaded_at`,
		args.PartyID, string(args.DocumentType), args.FileURL,
	).Scan(&d.ID, &d.PartyID, &docType, &d.FileURL, &d.UploadedAt)
	if err != nil {
		return nil, convertErr(err, "creating document for party %d", args.PartyID)
	}
	d.DocumentType = domain.DocumentType(docType)
	return &d, nil
}

func (r *CreditRepository) ListDocuments(ctx context.Context, partyID int64) ([]domain.Document, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, party_id, document_type, file_url, uploaded_at
		FROM documents WHERE party_id = $1 ORDER BY uploaded_at, id`, partyID)
	if err != nil {
		return nil, convertErr(err, "listing documents of party %d", partyID)
	}
	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Document, error) {
		var d domain.Document
		var docType string
		scanErr := row.Scan(&d.ID, &d.PartyID, &docType, &d.FileURL, &d.UploadedAt)
		d.DocumentType = domain.DocumentType(docType)
		return d, scanErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, convertErr(err, "scanning documents of party %d", partyID)
	}
	return docs, nil
}

func (r *CreditRepository) CreateAssessment(
	ctx context.Context,
	args repoargs.CreateAssessment,
) (*domain.CreditAssessment, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO credit_assessments (party_id, credit_score, status, approved_limit, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+assessmentColumns,
		args.PartyID, args.CreditScore, string(args.Status), args.ApprovedLimit, args.Notes,
	)
	a, err := scanAssessment(row)
	if err != nil {
		return nil, convertErr(err, "creating assessment for party %d", args.PartyID)
	}
	return a, nil
}

// UpdateCreditLimit устанавливает кредитный лимит ритейлера. Доступный кредит пересчитывается как лимит минус
// непогашенные долги ритейлера, но не меньше нуля.
func (r *CreditRepository) UpdateCreditLimit(
	ctx context.Context,
	partyID int64,
	limit decimal.Decimal,
) (*domain.RetailerProfile, error) {
	row := r.db.QueryRow(ctx, `
		WITH outstanding AS (
			SELECT COALESCE(SUM(amount), 0) AS total
			FROM dues WHERE retailer_id = $1 AND status IN ('pending', 'overdue')
		)
		INSERT INTO retailer_profiles (party_id, credit_limit, available_credit)
		SELECT $1, $2::numeric, GREATEST($2::numeric - outstanding.total, 0) FROM outstanding
		ON CONFLICT (party_id) DO UPDATE SET
			credit_limit     = EXCLUDED.credit_limit,
			available_credit = EXCLUDED.available_credit,
			updated_at       = now()
		RETURNING `+profileColumns, partyID, limit)
	p, err := scanProfile(row)
	if err != nil {
		return nil, convertErr(err, "updating credit limit of party %d", partyID)
	}
	return p, nil
}

// ListRetailerCredit все ритейлеры с анкетой (если есть) и последней оценкой (если есть).
func (r *CreditRepository) ListRetailerCredit(ctx context.Context) ([]repoargs.RetailerCreditRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+partyColumns+`,
		       rp.party_id, rp.pan_number, rp.annual_turnover, rp.years_in_business, rp.business_type,
		       rp.shop_ownership, rp.monthly_rent, rp.employee_count, rp.bank_statement_score, rp.credit_score,
		       rp.credit_limit, rp.available_credit, rp.updated_at,
		       ca.id, ca.credit_score, ca.status, ca.approved_limit, ca.notes, ca.assessment_date, ca.updated_at
		FROM parties p
		LEFT JOIN retailer_profiles rp ON rp.party_id = p.id
		LEFT JOIN LATERAL (
			SELECT * FROM credit_assessments a
			WHERE a.party_id = p.id
			ORDER BY a.assessment_date DESC, a.id DESC
			LIMIT 1
		) ca ON TRUE
		WHERE p.role = 'retailer'
		ORDER BY p.business_name, p.id`)
	if err != nil {
		return nil, convertErr(err, "listing retailer credit")
	}
	res, err := pgx.CollectRows(rows, scanRetailerCreditRow)
	if err != nil {
		return nil, convertErr(err, "scanning retailer credit")
	}
	return res, nil
}

// retailerCreditNulls промежуточные nullable поля LEFT JOIN.
type retailerCreditNulls struct {
	profilePartyID    *int64
	pan               *string
	turnover          decimal.NullDecimal
	years             *int32
	businessType      *string
	shopOwnership     *string
	rent              decimal.NullDecimal
	employees         *int32
	bankScore         *int32
	creditScore       *int32
	creditLimit       decimal.NullDecimal
	availableCredit   decimal.NullDecimal
	profileUpdated    *time.Time
	assessmentID      *int64
	assessmentScore   *int32
	assessmentStatus  *string
	approvedLimit     decimal.NullDecimal
	notes             *string
	assessmentDate    *time.Time
	assessmentUpdated *time.Time
}

func scanRetailerCreditRow(row pgx.CollectableRow) (repoargs.RetailerCreditRow, error) {
	var res repoargs.RetailerCreditRow
	var role string
	var n retailerCreditNulls
	p := &res.Party
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.Email, &p.PasswordHash, &p.FirstName, &role,
		&p.BusinessName, &p.Phone, &p.GSTNumber, &p.Address,
		&n.profilePartyID, &n.pan, &n.turnover, &n.years, &n.businessType, &n.shopOwnership, &n.rent,
		&n.employees, &n.bankScore, &n.creditScore, &n.creditLimit, &n.availableCredit, &n.profileUpdated,
		&n.assessmentID, &n.assessmentScore, &n.assessmentStatus, &n.approvedLimit, &n.notes,
		&n.assessmentDate, &n.assessmentUpdated,
	)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	p.Role = domain.RoleType(role)

	if n.profilePartyID != nil {
		res.Profile = &domain.RetailerProfile{
			PartyID:            *n.profilePartyID,
			PANNumber:          deref(n.pan),
			AnnualTurnover:     n.turnover.Decimal,
			YearsInBusiness:    deref(n.years),
			BusinessType:       deref(n.businessType),
			ShopOwnership:      deref(n.shopOwnership),
			MonthlyRent:        n.rent.Decimal,
			EmployeeCount:      deref(n.employees),
			BankStatementScore: n.bankScore,
			CreditScore:        n.creditScore,
			CreditLimit:        n.creditLimit.Decimal,
			AvailableCredit:    n.availableCredit.Decimal,
			UpdatedAt:          deref(n.profileUpdated),
		}
	}
	if n.assessmentID != nil {
		res.Assessment = &domain.CreditAssessment{
			ID:             *n.assessmentID,
			PartyID:        p.ID,
			CreditScore:    deref(n.assessmentScore),
			Status:         domain.AssessmentStatusType(deref(n.assessmentStatus)),
			ApprovedLimit:  n.approvedLimit.Decimal,
			Notes:          deref(n.notes),
			AssessmentDate: deref(n.assessmentDate),
			UpdatedAt:      deref(n.assessmentUpdated),
		}
	}
	return res, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
