package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"logidocs/internal/model"
	"logidocs/internal/service"
)

type MockOperationService struct {
	mock.Mock
}

func (m *MockOperationService) Create(ctx context.Context, in service.CreateOperationInput) (*model.Operation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Operation), args.Error(1)
}

func (m *MockOperationService) List(ctx context.Context, q service.OperationListQuery) (*service.OperationListResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OperationListResult), args.Error(1)
}

func (m *MockOperationService) Get(ctx context.Context, id string) (*model.OperationDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OperationDetail), args.Error(1)
}

func (m *MockOperationService) Update(ctx context.Context, id string, in service.UpdateOperationInput) (*model.Operation, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Operation), args.Error(1)
}

func (m *MockOperationService) NextNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
