package weather

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// MockFeed is a testify mock of Feed
type MockFeed struct {
	mock.Mock
}

func (m *MockFeed) Current(ctx context.Context, at time.Time) (*domain.Weather, error) {
	args := m.Called(ctx, at)
	var w *domain.Weather
	if v := args.Get(0); v != nil {
		w = v.(*domain.Weather)
	}
	return w, args.Error(1)
}
