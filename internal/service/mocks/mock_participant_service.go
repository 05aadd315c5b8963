package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"logidocs/internal/model"
	"logidocs/internal/service"
)

type MockParticipantService struct {
	mock.Mock
}

func (m *MockParticipantService) Create(ctx context.Context, operationID string, in service.CreateParticipantInput) (*model.ParticipantDetail, error) {
	args := m.Called(ctx, operationID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ParticipantDetail), args.Error(1)
}

func (m *MockParticipantService) List(ctx context.Context, operationID string) ([]model.ParticipantDetail, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ParticipantDetail), args.Error(1)
}
