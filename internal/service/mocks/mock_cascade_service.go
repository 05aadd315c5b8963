package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"logidocs/internal/service"
)

type MockCascadeService struct {
	mock.Mock
}

func (m *MockCascadeService) DeleteParticipant(ctx context.Context, operationID, participantID string) (*service.DeletionResult, error) {
	args := m.Called(ctx, operationID, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DeletionResult), args.Error(1)
}

func (m *MockCascadeService) DeleteOperation(ctx context.Context, operationID string) (*service.DeletionResult, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DeletionResult), args.Error(1)
}
