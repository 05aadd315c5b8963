package repository

import (
	"context"

	"logidocs/internal/model"
)

// OperationFilter narrows and orders an operation listing.
type OperationFilter struct {
	Search string
	Type   model.OperationType
	// SortBy is one of createdAt, name, operationNumber, type.
	SortBy    string
	SortOrder SortOrder
	PageQuery
}

// OperationUpdate carries the mutable operation fields; nil means unchanged.
type OperationUpdate struct {
	Name *string
	Type *model.OperationType
}

// OperationRepository defines data access for operations.
type OperationRepository interface {
	// Create inserts an operation. A duplicate operation number yields ErrDuplicate.
	Create(ctx context.Context, op *model.Operation) (*model.Operation, error)

	// FindByID returns an operation without its participants.
	FindByID(ctx context.Context, id string) (*model.Operation, error)

	// FindDetail loads an operation with every participant, company and document.
	// Participants are ordered by role then company name; documents newest first.
	FindDetail(ctx context.Context, id string) (*model.OperationDetail, error)

	// List returns a filtered page of operations and the total match count.
	List(ctx context.Context, f OperationFilter) (*PageResult[model.Operation], error)

	// Update applies u and returns the updated row.
	Update(ctx context.Context, id string, u OperationUpdate) (*model.Operation, error)

	// LastNumberWithPrefix returns the greatest operation number starting with
	// prefix, or "" when there is none.
	LastNumberWithPrefix(ctx context.Context, prefix string) (string, error)

	// Delete removes the operation, its participants and their documents in one
	// transaction. It returns sql.ErrNoRows when the operation did not exist.
	Delete(ctx context.Context, id string) error
}
