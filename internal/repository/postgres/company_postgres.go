package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"logidocs/internal/model"
	"logidocs/internal/repository"
)

const (
	companyColumns  = `id, name, address, tax_number, contact, created_at, updated_at`
	companyColumnsG = `g.id, g.name, g.address, g.tax_number, g.contact, g.created_at, g.updated_at`
)

var companySortColumns = map[string]string{
	"name":      "name",
	"createdAt": "created_at",
}

// CompanyPostgres is a PostgreSQL implementation of repository.CompanyRepository.
type CompanyPostgres struct {
	db *sql.DB
}

// NewCompanyPostgres creates a new CompanyPostgres repository.
func NewCompanyPostgres(db *sql.DB) *CompanyPostgres {
	return &CompanyPostgres{db: db}
}

var _ repository.CompanyRepository = (*CompanyPostgres)(nil)

// companyScanTargets returns scan destinations for companyColumns and a
// function that assembles the company once Scan has run.
func companyScanTargets() (func() *model.GlobalCompany, []any) {
	var c model.GlobalCompany
	var address, tax, contact sql.NullString
	build := func() *model.GlobalCompany {
		c.Address = nullString(address)
		c.TaxNumber = nullString(tax)
		c.Contact = nullString(contact)
		return &c
	}
	return build, []any{&c.ID, &c.Name, &address, &tax, &contact, &c.CreatedAt, &c.UpdatedAt}
}

func scanCompany(row rowScanner) (*model.GlobalCompany, error) {
	build, dest := companyScanTargets()
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return build(), nil
}

// Create inserts a company row.
func (r *CompanyPostgres) Create(ctx context.Context, c *model.GlobalCompany) (*model.GlobalCompany, error) {
	const q = `
		INSERT INTO global_companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + companyColumns
	out, err := scanCompany(r.db.QueryRowContext(ctx, q,
		c.ID, c.Name, c.Address, c.TaxNumber, c.Contact, c.CreatedAt, c.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// FindByID fetches a company by ID.
func (r *CompanyPostgres) FindByID(ctx context.Context, id string) (*model.GlobalCompany, error) {
	const q = `SELECT ` + companyColumns + ` FROM global_companies WHERE id = $1`
	return scanCompany(r.db.QueryRowContext(ctx, q, id))
}

// List returns companies matching f using LIMIT/OFFSET pagination and a total count.
func (r *CompanyPostgres) List(ctx context.Context, f repository.CompanyFilter) (*repository.PageResult[model.GlobalCompany], error) {
	where := ""
	var args []any
	if f.Search != "" {
		args = append(args, containsPattern(f.Search))
		where = ` WHERE name ILIKE $1 OR address ILIKE $1 OR tax_number ILIKE $1 OR contact ILIKE $1`
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM global_companies`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	col, ok := companySortColumns[f.SortBy]
	if !ok {
		col = "name"
	}
	q := fmt.Sprintf(`SELECT %s FROM global_companies%s ORDER BY %s %s, id ASC LIMIT $%d OFFSET $%d`,
		companyColumns, where, col, orderKeyword(f.SortOrder), len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, q, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.GlobalCompany, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.GlobalCompany]{Items: items, Total: total}, nil
}

// ListAll returns every company ordered by name.
func (r *CompanyPostgres) ListAll(ctx context.Context) ([]model.GlobalCompany, error) {
	const q = `SELECT ` + companyColumns + ` FROM global_companies ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.GlobalCompany, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// Update overwrites the provided fields and bumps updated_at.
func (r *CompanyPostgres) Update(ctx context.Context, id string, u repository.CompanyUpdate) (*model.GlobalCompany, error) {
	const q = `
		UPDATE global_companies
		SET name = COALESCE($2, name),
		    address = COALESCE($3, address),
		    tax_number = COALESCE($4, tax_number),
		    contact = COALESCE($5, contact),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + companyColumns
	out, err := scanCompany(r.db.QueryRowContext(ctx, q, id, u.Name, u.Address, u.TaxNumber, u.Contact))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// CountParticipants returns the number of participants referencing the company.
func (r *CompanyPostgres) CountParticipants(ctx context.Context, id string) (int, error) {
	const q = `SELECT COUNT(*) FROM participants WHERE global_company_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Delete removes a company row by ID.
func (r *CompanyPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM global_companies WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func orderKeyword(o repository.SortOrder) string {
	if o == repository.SortAsc {
		return "ASC"
	}
	return "DESC"
}
