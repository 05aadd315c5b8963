package postgres

import (
	"context"
	"database/sql"

	"logidocs/internal/model"
	"logidocs/internal/repository"
)

// ParticipantPostgres is a PostgreSQL implementation of repository.ParticipantRepository.
type ParticipantPostgres struct {
	db *sql.DB
}

// NewParticipantPostgres creates a new ParticipantPostgres repository.
func NewParticipantPostgres(db *sql.DB) *ParticipantPostgres {
	return &ParticipantPostgres{db: db}
}

var _ repository.ParticipantRepository = (*ParticipantPostgres)(nil)

// Create inserts a participant row.
func (r *ParticipantPostgres) Create(ctx context.Context, p *model.Participant) (*model.Participant, error) {
	const q = `
		INSERT INTO participants (id, operation_id, global_company_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, operation_id, global_company_id, role, created_at
	`
	var out model.Participant
	err := r.db.QueryRowContext(ctx, q, p.ID, p.OperationID, p.GlobalCompanyID, string(p.Role), p.CreatedAt).
		Scan(&out.ID, &out.OperationID, &out.GlobalCompanyID, &out.Role, &out.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

// Exists reports whether the participant row exists.
func (r *ParticipantPostgres) Exists(ctx context.Context, id string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM participants WHERE id = $1)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// FindDetail loads the participant with its operation, company and documents.
func (r *ParticipantPostgres) FindDetail(ctx context.Context, id string) (*model.ParticipantDetail, error) {
	const q = `
		SELECT p.id, p.operation_id, p.global_company_id, p.role, p.created_at,
		       o.id, o.operation_number, o.name, o.type, o.created_at, o.updated_at,
		       ` + companyColumnsG + `
		FROM participants p
		JOIN operations o ON o.id = p.operation_id
		JOIN global_companies g ON g.id = p.global_company_id
		WHERE p.id = $1
	`
	var (
		d  model.ParticipantDetail
		op model.Operation
	)
	dest := []any{
		&d.ID, &d.OperationID, &d.GlobalCompanyID, &d.Role, &d.CreatedAt,
		&op.ID, &op.OperationNumber, &op.Name, &op.Type, &op.CreatedAt, &op.UpdatedAt,
	}
	company, companyDest := companyScanTargets()
	if err := r.db.QueryRowContext(ctx, q, id).Scan(append(dest, companyDest...)...); err != nil {
		return nil, err
	}
	d.Operation = &op
	d.GlobalCompany = company()

	docs, err := NewDocumentPostgres(r.db).ListByParticipant(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Documents = toViews(docs)
	d.DocumentCount = len(docs)
	return &d, nil
}

// ListByOperation returns the operation's participants ordered by company name.
func (r *ParticipantPostgres) ListByOperation(ctx context.Context, operationID string) ([]model.ParticipantDetail, error) {
	const q = `
		SELECT p.id, p.operation_id, p.global_company_id, p.role, p.created_at,
		       ` + companyColumnsG + `,
		       (SELECT COUNT(*) FROM documents d WHERE d.participant_id = p.id)
		FROM participants p
		JOIN global_companies g ON g.id = p.global_company_id
		WHERE p.operation_id = $1
		ORDER BY g.name ASC, p.role ASC
	`
	rows, err := r.db.QueryContext(ctx, q, operationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ParticipantDetail, 0)
	for rows.Next() {
		var d model.ParticipantDetail
		company, companyDest := companyScanTargets()
		dest := append([]any{&d.ID, &d.OperationID, &d.GlobalCompanyID, &d.Role, &d.CreatedAt}, companyDest...)
		dest = append(dest, &d.DocumentCount)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		d.GlobalCompany = company()
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes the participant's documents and then the participant itself.
// The schema cascades as well; the explicit delete keeps the contract when it does not.
func (r *ParticipantPostgres) Delete(ctx context.Context, id string) error {
	return execTx(ctx, r.db, id,
		`DELETE FROM documents WHERE participant_id = $1`,
		`DELETE FROM participants WHERE id = $1`,
	)
}

func toViews(docs []model.Document) []model.DocumentView {
	out := make([]model.DocumentView, 0, len(docs))
	for _, d := range docs {
		out = append(out, model.DocumentView{Document: d})
	}
	return out
}
