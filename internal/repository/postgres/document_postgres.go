package postgres

import (
	"context"
	"database/sql"

	"logidocs/internal/model"
	"logidocs/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const (
	documentColumns  = `id, original_file_name, stored_file_name, file_path, file_type, file_size, uploaded_at, participant_id`
	documentColumnsD = `d.id, d.original_file_name, d.stored_file_name, d.file_path, d.file_type, d.file_size, d.uploaded_at, d.participant_id`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner, d *model.Document) error {
	return row.Scan(
		&d.ID,
		&d.OriginalFileName,
		&d.StoredFileName,
		&d.FilePath,
		&d.FileType,
		&d.FileSize,
		&d.UploadedAt,
		&d.ParticipantID,
	)
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.OriginalFileName,
		doc.StoredFileName,
		doc.FilePath,
		doc.FileType,
		doc.FileSize,
		doc.UploadedAt,
		doc.ParticipantID,
	)
	var out model.Document
	if err := scanDocument(row, &out); err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1
	`
	var d model.Document
	if err := scanDocument(r.db.QueryRowContext(ctx, q, id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByParticipant returns the participant's documents, newest first.
func (r *DocumentPostgres) ListByParticipant(ctx context.Context, participantID string) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE participant_id = $1
		ORDER BY uploaded_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		if err := scanDocument(rows, &d); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document row by ID.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
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
