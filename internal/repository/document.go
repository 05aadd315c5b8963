package repository

import (
	"context"

	"logidocs/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here, persistence only.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	// A missing participant yields ErrReferenced.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListByParticipant returns a participant's documents, newest upload first.
	ListByParticipant(ctx context.Context, participantID string) ([]model.Document, error)

	// Delete removes only the document row. It returns sql.ErrNoRows when nothing was deleted.
	Delete(ctx context.Context, id string) error
}
