package repository

import (
	"context"

	"logidocs/internal/model"
)

// ParticipantRepository defines data access for operation participants.
type ParticipantRepository interface {
	// Create inserts a participant. A repeated (operation, company, role) triple
	// yields ErrDuplicate; a missing operation or company yields ErrReferenced.
	Create(ctx context.Context, p *model.Participant) (*model.Participant, error)

	// Exists reports whether a participant row exists.
	Exists(ctx context.Context, id string) (bool, error)

	// FindDetail loads a participant with its operation, company and documents
	// (newest first).
	FindDetail(ctx context.Context, id string) (*model.ParticipantDetail, error)

	// ListByOperation returns an operation's participants with their companies and
	// document counts, ordered by company name.
	ListByOperation(ctx context.Context, operationID string) ([]model.ParticipantDetail, error)

	// Delete removes the participant and all of its document rows in one
	// transaction. It returns sql.ErrNoRows when the participant did not exist.
	Delete(ctx context.Context, id string) error
}
