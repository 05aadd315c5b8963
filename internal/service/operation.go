package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"logidocs/internal/model"
	"logidocs/internal/repository"
)

// CreateOperationInput holds the fields of a new operation.
type CreateOperationInput struct {
	OperationNumber string
	Name            string
	Type            string
}

// UpdateOperationInput holds the mutable fields; nil means unchanged.
// The operation number cannot be changed.
type UpdateOperationInput struct {
	Name *string
	Type *string
}

// OperationListQuery carries the list filters as received from the caller.
type OperationListQuery struct {
	Search    string
	Type      string
	SortBy    string
	SortOrder string
	PageParams
}

// OperationListResult is one page of operations.
type OperationListResult struct {
	Operations  []model.Operation `json:"operations"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	TotalItems  int               `json:"totalItems"`
}

// OperationService defines the use cases for operations. Deletion lives in
// CascadeService because it owns files.
type OperationService interface {
	Create(ctx context.Context, in CreateOperationInput) (*model.Operation, error)
	List(ctx context.Context, q OperationListQuery) (*OperationListResult, error)
	// Get returns the operation with participants, companies and documents.
	Get(ctx context.Context, id string) (*model.OperationDetail, error)
	Update(ctx context.Context, id string, in UpdateOperationInput) (*model.Operation, error)
	// NextNumber suggests the next free OP-<year>-<NNNN> number.
	NextNumber(ctx context.Context) (string, error)
}

type operationService struct {
	repo repository.OperationRepository
	now  func() time.Time
}

// NewOperationService constructs a new OperationService.
func NewOperationService(repo repository.OperationRepository) OperationService {
	return &operationService{repo: repo, now: time.Now}
}

func parseOperationType(s string) (model.OperationType, error) {
	t := model.OperationType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", validationf("type must be %q or %q", model.OperationImport, model.OperationExport)
	}
	return t, nil
}

func (s *operationService) Create(ctx context.Context, in CreateOperationInput) (*model.Operation, error) {
	number := strings.TrimSpace(in.OperationNumber)
	name := strings.TrimSpace(in.Name)
	if number == "" || name == "" {
		return nil, validationf("operationNumber and name are required")
	}
	typ, err := parseOperationType(in.Type)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	op, err := s.repo.Create(ctx, &model.Operation{
		ID:              uuid.New().String(),
		OperationNumber: number,
		Name:            name,
		Type:            typ,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("operation number %s", number))
	}
	return op, nil
}

func (s *operationService) List(ctx context.Context, q OperationListQuery) (*OperationListResult, error) {
	page, pq, err := q.resolve()
	if err != nil {
		return nil, err
	}
	sortBy, err := parseSortBy(q.SortBy, "createdAt", "createdAt", "name", "operationNumber", "type")
	if err != nil {
		return nil, err
	}
	order, err := parseSortOrder(q.SortOrder, repository.SortDesc)
	if err != nil {
		return nil, err
	}
	f := repository.OperationFilter{
		Search:    strings.TrimSpace(q.Search),
		SortBy:    sortBy,
		SortOrder: order,
		PageQuery: pq,
	}
	// unknown type filters are ignored rather than rejected
	if t := model.OperationType(strings.ToLower(strings.TrimSpace(q.Type))); t.Valid() {
		f.Type = t
	}

	res, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &OperationListResult{
		Operations:  res.Items,
		CurrentPage: page,
		TotalPages:  totalPages(res.Total, pq.Limit),
		TotalItems:  res.Total,
	}, nil
}

func (s *operationService) Get(ctx context.Context, id string) (*model.OperationDetail, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	d, err := s.repo.FindDetail(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "operation")
	}
	return d, nil
}

func (s *operationService) Update(ctx context.Context, id string, in UpdateOperationInput) (*model.Operation, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if in.Name == nil && in.Type == nil {
		return nil, validationf("at least one of name or type must be provided")
	}
	var u repository.OperationUpdate
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, validationf("name must not be empty")
		}
		u.Name = &name
	}
	if in.Type != nil {
		t, err := parseOperationType(*in.Type)
		if err != nil {
			return nil, err
		}
		u.Type = &t
	}
	op, err := s.repo.Update(ctx, id, u)
	if err != nil {
		return nil, mapRepoError(err, "operation")
	}
	return op, nil
}

func (s *operationService) NextNumber(ctx context.Context) (string, error) {
	prefix := fmt.Sprintf("OP-%d-", s.now().Year())
	last, err := s.repo.LastNumberWithPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	next := 1
	if last != "" {
		if n, err := strconv.Atoi(strings.TrimPrefix(last, prefix)); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", prefix, next), nil
}
