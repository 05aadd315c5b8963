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

// CreateParticipantInput binds a global company to an operation with a role.
type CreateParticipantInput struct {
	GlobalCompanyID string
	Role            string
}

// ParticipantService defines the use cases for operation participants.
// Deletion lives in CascadeService because it owns files.
type ParticipantService interface {
	Create(ctx context.Context, operationID string, in CreateParticipantInput) (*model.ParticipantDetail, error)
	// List returns the operation's participants with company and document count.
	List(ctx context.Context, operationID string) ([]model.ParticipantDetail, error)
}

type participantService struct {
	operations   repository.OperationRepository
	companies    repository.CompanyRepository
	participants repository.ParticipantRepository
	now          func() time.Time
}

// NewParticipantService constructs a new ParticipantService.
func NewParticipantService(
	operations repository.OperationRepository,
	companies repository.CompanyRepository,
	participants repository.ParticipantRepository,
) ParticipantService {
	return &participantService{
		operations:   operations,
		companies:    companies,
		participants: participants,
		now:          time.Now,
	}
}

func (s *participantService) Create(ctx context.Context, operationID string, in CreateParticipantInput) (*model.ParticipantDetail, error) {
	if operationID == "" {
		return nil, ErrIDRequired
	}
	companyID := strings.TrimSpace(in.GlobalCompanyID)
	if companyID == "" || strings.TrimSpace(in.Role) == "" {
		return nil, validationf("globalCompanyId and role are required")
	}
	role, ok := model.ParseRole(in.Role)
	if !ok {
		return nil, validationf("role must be one of %s, %s, %s", model.RoleSupplier, model.RoleBuyer, model.RoleCustomer)
	}

	if _, err := s.operations.FindByID(ctx, operationID); err != nil {
		return nil, mapRepoError(err, "operation")
	}
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, mapRepoError(err, "company")
	}

	p, err := s.participants.Create(ctx, &model.Participant{
		ID:              uuid.New().String(),
		OperationID:     operationID,
		GlobalCompanyID: companyID,
		Role:            role,
		CreatedAt:       s.now().UTC(),
	})
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return nil, fmt.Errorf("%w: company '%s' already takes part in this operation as %s", ErrConflict, company.Name, role)
	case errors.Is(err, repository.ErrReferenced):
		return nil, notFound("operation or company")
	case err != nil:
		return nil, err
	}
	return &model.ParticipantDetail{Participant: *p, GlobalCompany: company}, nil
}

func (s *participantService) List(ctx context.Context, operationID string) ([]model.ParticipantDetail, error) {
	if operationID == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.operations.FindByID(ctx, operationID); err != nil {
		return nil, mapRepoError(err, "operation")
	}
	return s.participants.ListByOperation(ctx, operationID)
}
