package storage

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock of Store for exercising persistence failures
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
