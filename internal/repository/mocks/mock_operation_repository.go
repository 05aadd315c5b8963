package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"logidocs/internal/model"
	"logidocs/internal/repository"
)

type MockOperationRepository struct {
	mock.Mock
}

func (m *MockOperationRepository) Create(ctx context.Context, op *model.Operation) (*model.Operation, error) {
	args := m.Called(ctx, op)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Operation), args.Error(1)
}

func (m *MockOperationRepository) FindByID(ctx context.Context, id string) (*model.Operation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Operation), args.Error(1)
}

func (m *MockOperationRepository) FindDetail(ctx context.Context, id string) (*model.OperationDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OperationDetail), args.Error(1)
}

func (m *MockOperationRepository) List(ctx context.Context, f repository.OperationFilter) (*repository.PageResult[model.Operation], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Operation]), args.Error(1)
}

func (m *MockOperationRepository) Update(ctx context.Context, id string, u repository.OperationUpdate) (*model.Operation, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Operation), args.Error(1)
}

func (m *MockOperationRepository) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

func (m *MockOperationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
