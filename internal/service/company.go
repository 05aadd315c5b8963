package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"logidocs/internal/model"
	"logidocs/internal/repository"
)

// CompanyInput holds the fields of a global company. On update nil means unchanged.
type CompanyInput struct {
	Name      *string
	Address   *string
	TaxNumber *string
	Contact   *string
}

// CompanyListQuery carries the list filters as received from the caller.
type CompanyListQuery struct {
	Search    string
	SortBy    string
	SortOrder string
	PageParams
}

// CompanyListResult is one page of global companies.
type CompanyListResult struct {
	Companies   []model.GlobalCompany `json:"companies"`
	CurrentPage int                   `json:"currentPage"`
	TotalPages  int                   `json:"totalPages"`
	TotalItems  int                   `json:"totalItems"`
}

// CompanyService defines the use cases for global companies.
type CompanyService interface {
	Create(ctx context.Context, in CompanyInput) (*model.GlobalCompany, error)
	List(ctx context.Context, q CompanyListQuery) (*CompanyListResult, error)
	ListAll(ctx context.Context) ([]model.GlobalCompany, error)
	Get(ctx context.Context, id string) (*model.GlobalCompany, error)
	// Update changes company fields. Existing document folders keep the old name.
	Update(ctx context.Context, id string, in CompanyInput) (*model.GlobalCompany, error)
	// Delete refuses while any participant still references the company.
	Delete(ctx context.Context, id string) (*DeletionResult, error)
}

type companyService struct {
	repo repository.CompanyRepository
	now  func() time.Time
}

// NewCompanyService constructs a new CompanyService.
func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{repo: repo, now: time.Now}
}

// trimmed returns nil for nil and a pointer to the trimmed value otherwise.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func (s *companyService) Create(ctx context.Context, in CompanyInput) (*model.GlobalCompany, error) {
	name := trimmed(in.Name)
	if name == nil || *name == "" {
		return nil, validationf("name is required")
	}
	now := s.now().UTC()
	c, err := s.repo.Create(ctx, &model.GlobalCompany{
		ID:        uuid.New().String(),
		Name:      *name,
		Address:   trimmed(in.Address),
		TaxNumber: trimmed(in.TaxNumber),
		Contact:   trimmed(in.Contact),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("company %q", *name))
	}
	return c, nil
}

func (s *companyService) List(ctx context.Context, q CompanyListQuery) (*CompanyListResult, error) {
	page, pq, err := q.resolve()
	if err != nil {
		return nil, err
	}
	sortBy, err := parseSortBy(q.SortBy, "name", "name", "createdAt")
	if err != nil {
		return nil, err
	}
	order, err := parseSortOrder(q.SortOrder, repository.SortAsc)
	if err != nil {
		return nil, err
	}
	res, err := s.repo.List(ctx, repository.CompanyFilter{
		Search:    strings.TrimSpace(q.Search),
		SortBy:    sortBy,
		SortOrder: order,
		PageQuery: pq,
	})
	if err != nil {
		return nil, err
	}
	return &CompanyListResult{
		Companies:   res.Items,
		CurrentPage: page,
		TotalPages:  totalPages(res.Total, pq.Limit),
		TotalItems:  res.Total,
	}, nil
}

func (s *companyService) ListAll(ctx context.Context) ([]model.GlobalCompany, error) {
	return s.repo.ListAll(ctx)
}

func (s *companyService) Get(ctx context.Context, id string) (*model.GlobalCompany, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "company")
	}
	return c, nil
}

func (s *companyService) Update(ctx context.Context, id string, in CompanyInput) (*model.GlobalCompany, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u := repository.CompanyUpdate{
		Name:      trimmed(in.Name),
		Address:   trimmed(in.Address),
		TaxNumber: trimmed(in.TaxNumber),
		Contact:   trimmed(in.Contact),
	}
	if u.Name == nil && u.Address == nil && u.TaxNumber == nil && u.Contact == nil {
		return nil, validationf("at least one field must be provided")
	}
	if u.Name != nil && *u.Name == "" {
		return nil, validationf("name must not be empty")
	}
	c, err := s.repo.Update(ctx, id, u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) && u.Name != nil {
			return nil, fmt.Errorf("%w: company %q already exists", ErrConflict, *u.Name)
		}
		return nil, mapRepoError(err, "company")
	}
	return c, nil
}

func (s *companyService) Delete(ctx context.Context, id string) (*DeletionResult, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "company")
	}
	n, err := s.repo.CountParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, fmt.Errorf("%w: company '%s' is used by %d participant(s) and cannot be deleted", ErrConflict, c.Name, n)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return nil, fmt.Errorf("%w: company '%s' is still used by participants", ErrConflict, c.Name)
		}
		return nil, mapRepoError(err, "company")
	}
	return &DeletionResult{Message: fmt.Sprintf("Global company '%s' was deleted.", c.Name)}, nil
}
