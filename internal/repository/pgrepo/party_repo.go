package pgrepo

import (
	"context"
	"strings"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const partyColumns = `p.id, p.created_at, p.updated_at, p.email, p.password_hash, p.first_name, p.role,
	p.business_name, p.phone, p.gst_number, p.address`

type PartyRepository struct {
	db uow.DBTX
}

func NewPartyRepository(db uow.DBTX) *PartyRepository {
	return &PartyRepository{db: db}
}

func scanParty(row pgx.Row) (*domain.Party, error) {
	var p domain.Party
	var role string
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.Email, &p.PasswordHash, &p.FirstName, &role,
		&p.BusinessName, &p.Phone, &p.GSTNumber, &p.Address,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	p.Role = domain.RoleType(role)
	return &p, nil
}

func collectParties(rows pgx.Rows) ([]domain.Party, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Party, error) { //nolint:wrapcheck
		p, err := scanParty(row)
		if err != nil {
			return domain.Party{}, err
		}
		return *p, nil
	})
}

func (r *PartyRepository) Create(ctx context.Context, args repoargs.CreateParty) (*domain.Party, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO parties AS p (email, password_hash, first_name, role, business_name, phone, gst_number, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+partyColumns,
		args.Email, args.PasswordHash, args.FirstName, string(args.Role),
		args.BusinessName, args.Phone, args.GSTNumber, args.Address,
	)
	party, err := scanParty(row)
	if err != nil {
		return nil, convertErr(err, "creating party with email `%s`", args.Email)
	}
	return party, nil
}

func (r *PartyRepository) FindByID(ctx context.Context, id int64) (*domain.Party, error) {
	row := r.db.QueryRow(ctx, `SELECT `+partyColumns+` FROM parties p WHERE p.id = $1`, id)
	party, err := scanParty(row)
	if err != nil {
		return nil, convertErr(err, "finding party with id %d", id)
	}
	return party, nil
}

func (r *PartyRepository) FindByEmail(ctx context.Context, email string) (*domain.Party, error) {
	row := r.db.QueryRow(ctx, `SELECT `+partyColumns+` FROM parties p WHERE lower(p.email) = lower($1)`, email)
	party, err := scanParty(row)
	if err != nil {
		return nil, convertErr(err, "finding party with email `%s`", email)
	}
	return party, nil
}

// RetailersOfSupplier возвращает ритейлеров, у которых есть хотя бы один долг перед поставщиком.
func (r *PartyRepository) RetailersOfSupplier(ctx context.Context, supplierID int64) ([]domain.Party, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+partyColumns+`
		FROM parties p
		WHERE p.role = 'retailer'
		  AND EXISTS (SELECT 1 FROM dues d WHERE d.retailer_id = p.id AND d.supplier_id = $1)
		ORDER BY p.business_name, p.id`, supplierID)
	if err != nil {
		return nil, convertErr(err, "getting retailers of supplier %d", supplierID)
	}
	parties, err := collectParties(rows)
	if err != nil {
		return nil, convertErr(err, "scanning retailers of supplier %d", supplierID)
	}
	return parties, nil
}

// RecentRetailersOfSupplier ритейлеры поставщика, упорядоченные по дате последнего созданного им долга.
func (r *PartyRepository) RecentRetailersOfSupplier(
	ctx context.Context,
	supplierID int64,
	limit uint,
) ([]domain.Party, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+partyColumns+`
		FROM parties p
		JOIN (SELECT retailer_id, MAX(created_at) AS last_due_at
		      FROM dues
		      WHERE supplier_id = $1
		      GROUP BY retailer_id) d ON d.retailer_id = p.id
		WHERE p.role = 'retailer'
		ORDER BY d.last_due_at DESC, p.id DESC
		LIMIT $2`, supplierID, int64(limit))
	if err != nil {
		return nil, convertErr(err, "getting recent retailers of supplier %d", supplierID)
	}
	parties, err := collectParties(rows)
	if err != nil {
		return nil, convertErr(err, "scanning recent retailers of supplier %d", supplierID)
	}
	return parties, nil
}

// SearchRetailers ищет ритейлеров по подстроке в названии бизнеса или телефоне без учета регистра.
func (r *PartyRepository) SearchRetailers(ctx context.Context, query string, limit uint) ([]domain.Party, error) {
	pattern := "%" + escapeLike(query) + "%"
	rows, err := r.db.Query(ctx, `
		SELECT `+partyColumns+`
		FROM parties p
		WHERE p.role = 'retailer'
		  AND (p.business_name ILIKE $1 ESCAPE '\' OR p.phone ILIKE $1 ESCAPE '\')
		ORDER BY p.business_name, p.id
		LIMIT $2`, pattern, int64(limit))
	if err != nil {
		return nil, convertErr(err, "searching retailers by `%s`", query)
	}
	parties, err := collectParties(rows)
	if err != nil {
		return nil, convertErr(err, "scanning retailers found by `%s`", query)
	}
	return parties, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует спецсимволы шаблона LIKE, чтобы строка поиска трактовалась буквально.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
