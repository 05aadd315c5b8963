package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"logidocs/internal/model"
	"logidocs/internal/repository"
)

const operationColumns = `id, operation_number, name, type, created_at, updated_at`

var operationSortColumns = map[string]string{
	"createdAt":       "created_at",
	"name":            "name",
	"operationNumber": "operation_number",
	"type":            "type",
}

// OperationPostgres is a PostgreSQL implementation of repository.OperationRepository.
type OperationPostgres struct {
	db *sql.DB
}

// NewOperationPostgres creates a new OperationPostgres repository.
func NewOperationPostgres(db *sql.DB) *OperationPostgres {
	return &OperationPostgres{db: db}
}

var _ repository.OperationRepository = (*OperationPostgres)(nil)

func scanOperation(row rowScanner) (*model.Operation, error) {
	var op model.Operation
	if err := row.Scan(&op.ID, &op.OperationNumber, &op.Name, &op.Type, &op.CreatedAt, &op.UpdatedAt); err != nil {
		return nil, err
	}
	return &op, nil
}

// Create inserts an operation row.
func (r *OperationPostgres) Create(ctx context.Context, op *model.Operation) (*model.Operation, error) {
	const q = `
		INSERT INTO operations (` + operationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + operationColumns
	out, err := scanOperation(r.db.QueryRowContext(ctx, q,
		op.ID, op.OperationNumber, op.Name, string(op.Type), op.CreatedAt, op.UpdatedAt,
	))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// FindByID fetches the operation row only.
func (r *OperationPostgres) FindByID(ctx context.Context, id string) (*model.Operation, error) {
	const q = `SELECT ` + operationColumns + ` FROM operations WHERE id = $1`
	return scanOperation(r.db.QueryRowContext(ctx, q, id))
}

// FindDetail loads the operation, its participants with companies and every
// document, grouped per participant.
func (r *OperationPostgres) FindDetail(ctx context.Context, id string) (*model.OperationDetail, error) {
	op, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &model.OperationDetail{Operation: *op, Participants: make([]model.ParticipantDetail, 0)}

	const pq = `
		SELECT p.id, p.operation_id, p.global_company_id, p.role, p.created_at,
		       ` + companyColumnsG + `
		FROM participants p
		JOIN global_companies g ON g.id = p.global_company_id
		WHERE p.operation_id = $1
		ORDER BY p.role ASC, g.name ASC
	`
	rows, err := r.db.QueryContext(ctx, pq, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[string]int)
	for rows.Next() {
		var d model.ParticipantDetail
		company, companyDest := companyScanTargets()
		dest := append([]any{&d.ID, &d.OperationID, &d.GlobalCompanyID, &d.Role, &d.CreatedAt}, companyDest...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		d.GlobalCompany = company()
		d.Operation = &detail.Operation
		d.Documents = make([]model.DocumentView, 0)
		index[d.ID] = len(detail.Participants)
		detail.Participants = append(detail.Participants, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(detail.Participants) == 0 {
		return detail, nil
	}

	const dq = `
		SELECT ` + documentColumnsD + `
		FROM documents d
		JOIN participants p ON p.id = d.participant_id
		WHERE p.operation_id = $1
		ORDER BY d.uploaded_at DESC, d.id DESC
	`
	docRows, err := r.db.QueryContext(ctx, dq, id)
	if err != nil {
		return nil, err
	}
	defer docRows.Close()

	for docRows.Next() {
		var doc model.Document
		if err := scanDocument(docRows, &doc); err != nil {
			return nil, err
		}
		i, ok := index[doc.ParticipantID]
		if !ok {
			continue
		}
		p := &detail.Participants[i]
		p.Documents = append(p.Documents, model.DocumentView{Document: doc})
		p.DocumentCount++
	}
	if err := docRows.Err(); err != nil {
		return nil, err
	}
	return detail, nil
}

// List returns operations matching f using LIMIT/OFFSET pagination and a total count.
func (r *OperationPostgres) List(ctx context.Context, f repository.OperationFilter) (*repository.PageResult[model.Operation], error) {
	var (
		conds []string
		args  []any
	)
	if f.Search != "" {
		args = append(args, containsPattern(f.Search))
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR operation_number ILIKE $%d)", len(args), len(args)))
	}
	if f.Type != "" {
		args = append(args, string(f.Type))
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM operations`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	col, ok := operationSortColumns[f.SortBy]
	if !ok {
		col = "created_at"
	}
	q := fmt.Sprintf(`SELECT %s FROM operations%s ORDER BY %s %s, id ASC LIMIT $%d OFFSET $%d`,
		operationColumns, where, col, orderKeyword(f.SortOrder), len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, q, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Operation, 0)
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *op)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Operation]{Items: items, Total: total}, nil
}

// Update overwrites the provided fields and bumps updated_at.
func (r *OperationPostgres) Update(ctx context.Context, id string, u repository.OperationUpdate) (*model.Operation, error) {
	const q = `
		UPDATE operations
		SET name = COALESCE($2, name),
		    type = COALESCE($3, type),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + operationColumns
	var typ *string
	if u.Type != nil {
		s := string(*u.Type)
		typ = &s
	}
	out, err := scanOperation(r.db.QueryRowContext(ctx, q, id, u.Name, typ))
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// LastNumberWithPrefix returns the greatest operation number starting with prefix.
func (r *OperationPostgres) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	const q = `
		SELECT operation_number
		FROM operations
		WHERE operation_number LIKE $1 || '%'
		ORDER BY operation_number DESC
		LIMIT 1
	`
	var n string
	err := r.db.QueryRowContext(ctx, q, prefix).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return n, nil
}

// Delete removes the operation's documents, participants and the operation row.
func (r *OperationPostgres) Delete(ctx context.Context, id string) error {
	return execTx(ctx, r.db, id,
		`DELETE FROM documents WHERE participant_id IN (SELECT id FROM participants WHERE operation_id = $1)`,
		`DELETE FROM participants WHERE operation_id = $1`,
		`DELETE FROM operations WHERE id = $1`,
	)
}
