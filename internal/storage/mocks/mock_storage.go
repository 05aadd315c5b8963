package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) EnsureDir(ctx context.Context, dir string) error {
	args := m.Called(ctx, dir)
	return args.Error(0)
}

func (m *MockStore) Write(ctx context.Context, p string, r io.Reader, limit int64) (int64, error) {
	args := m.Called(ctx, p, r, limit)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader, int64) int64); ok {
		return f(ctx, p, r, limit), args.Error(1)
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) Remove(ctx context.Context, p string) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockStore) RemoveDirIfEmpty(ctx context.Context, dir string) ([]string, error) {
	args := m.Called(ctx, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
