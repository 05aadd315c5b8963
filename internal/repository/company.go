package repository

import (
	"context"

	"logidocs/internal/model"
)

// CompanyFilter narrows and orders a global company listing.
type CompanyFilter struct {
	Search string
	// SortBy is one of name, createdAt.
	SortBy    string
	SortOrder SortOrder
	PageQuery
}

// CompanyUpdate carries the mutable company fields; nil means unchanged.
type CompanyUpdate struct {
	Name      *string
	Address   *string
	TaxNumber *string
	Contact   *string
}

// CompanyRepository defines data access for global companies.
type CompanyRepository interface {
	// Create inserts a company. A duplicate name yields ErrDuplicate.
	Create(ctx context.Context, c *model.GlobalCompany) (*model.GlobalCompany, error)

	// FindByID returns a company by its ID.
	FindByID(ctx context.Context, id string) (*model.GlobalCompany, error)

	// List returns a filtered page of companies and the total match count.
	List(ctx context.Context, f CompanyFilter) (*PageResult[model.GlobalCompany], error)

	// ListAll returns every company ordered by name.
	ListAll(ctx context.Context) ([]model.GlobalCompany, error)

	// Update applies u and returns the updated row.
	Update(ctx context.Context, id string, u CompanyUpdate) (*model.GlobalCompany, error)

	// CountParticipants returns how many participants reference the company.
	CountParticipants(ctx context.Context, id string) (int, error)

	// Delete removes a company. It returns sql.ErrNoRows when nothing was deleted
	// and ErrReferenced while participants still point at it.
	Delete(ctx context.Context, id string) error
}
