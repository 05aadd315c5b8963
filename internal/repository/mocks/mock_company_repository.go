package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"logidocs/internal/model"
	"logidocs/internal/repository"
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, c *model.GlobalCompany) (*model.GlobalCompany, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GlobalCompany), args.Error(1)
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id string) (*model.GlobalCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GlobalCompany), args.Error(1)
}

func (m *MockCompanyRepository) List(ctx context.Context, f repository.CompanyFilter) (*repository.PageResult[model.GlobalCompany], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.GlobalCompany]), args.Error(1)
}

func (m *MockCompanyRepository) ListAll(ctx context.Context) ([]model.GlobalCompany, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GlobalCompany), args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, id string, u repository.CompanyUpdate) (*model.GlobalCompany, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GlobalCompany), args.Error(1)
}

func (m *MockCompanyRepository) CountParticipants(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
