package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"logidocs/internal/model"
	"logidocs/internal/service"
)

type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) Create(ctx context.Context, in service.CompanyInput) (*model.GlobalCompany, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GlobalCompany), args.Error(1)
}

func (m *MockCompanyService) List(ctx context.Context, q service.CompanyListQuery) (*service.CompanyListResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CompanyListResult), args.Error(1)
}

func (m *MockCompanyService) ListAll(ctx context.Context) ([]model.GlobalCompany, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GlobalCompany), args.Error(1)
}

func (m *MockCompanyService) Get(ctx context.Context, id string) (*model.GlobalCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GlobalCompany), args.Error(1)
}

func (m *MockCompanyService) Update(ctx context.Context, id string, in service.CompanyInput) (*model.GlobalCompany, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GlobalCompany), args.Error(1)
}

func (m *MockCompanyService) Delete(ctx context.Context, id string) (*service.DeletionResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DeletionResult), args.Error(1)
}
