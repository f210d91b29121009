package apiary

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Apiary_Go/internal/domain"
)

// MockService is a testify mock of Service for handler tests
type MockService struct {
	mock.Mock
}

func (m *MockService) State(ctx context.Context) (*State, error) {
	args := m.Called(ctx)
	st, _ := args.Get(0).(*State)
	return st, args.Error(1)
}

func (m *MockService) Reload(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockService) TillPlot(ctx context.Context, plotID int) (domain.Plot, error) {
	args := m.Called(ctx, plotID)
	return args.Get(0).(domain.Plot), args.Error(1)
}

func (m *MockService) PlantSeed(ctx context.Context, plotID int, cropID string) (domain.Plot, error) {
	args := m.Called(ctx, plotID, cropID)
	return args.Get(0).(domain.Plot), args.Error(1)
}

func (m *MockService) WaterPlot(ctx context.Context, plotID int) (domain.Plot, error) {
	args := m.Called(ctx, plotID)
	return args.Get(0).(domain.Plot), args.Error(1)
}

func (m *MockService) HarvestPlot(ctx context.Context, plotID int) (*HarvestResult, error) {
	args := m.Called(ctx, plotID)
	res, _ := args.Get(0).(*HarvestResult)
	return res, args.Error(1)
}

func (m *MockService) ClearPlot(ctx context.Context, plotID int) (domain.Plot, error) {
	args := m.Called(ctx, plotID)
	return args.Get(0).(domain.Plot), args.Error(1)
}

func (m *MockService) BuildHive(ctx context.Context) (domain.Hive, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Hive), args.Error(1)
}

func (m *MockService) BottleHoney(ctx context.Context, hiveID string) (domain.BottleHoneyResult, error) {
	args := m.Called(ctx, hiveID)
	return args.Get(0).(domain.BottleHoneyResult), args.Error(1)
}

func (m *MockService) BottleNectar(ctx context.Context) (domain.BottleNectarResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.BottleNectarResult), args.Error(1)
}

func (m *MockService) CheckForBeeHatching(ctx context.Context, score int) (domain.HatchResult, error) {
	args := m.Called(ctx, score)
	return args.Get(0).(domain.HatchResult), args.Error(1)
}

func (m *MockService) Classify(ctx context.Context, hiveID, label string) (domain.Classification, error) {
	args := m.Called(ctx, hiveID, label)
	return args.Get(0).(domain.Classification), args.Error(1)
}

func (m *MockService) CheckAndGenerateOrders(ctx context.Context) (domain.OrderGenerationResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.OrderGenerationResult), args.Error(1)
}

func (m *MockService) ActiveOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *MockService) FulfillOrder(ctx context.Context, orderID string) (domain.FulfillResult, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(domain.FulfillResult), args.Error(1)
}

func (m *MockService) HoneyOrders(ctx context.Context) (domain.HoneyOrderBoard, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.HoneyOrderBoard), args.Error(1)
}

func (m *MockService) FulfillHoneyOrder(ctx context.Context, orderID string) (domain.HoneyFulfillResult, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(domain.HoneyFulfillResult), args.Error(1)
}

func (m *MockService) CurrentWeather(ctx context.Context) *domain.Weather {
	args := m.Called(ctx)
	w, _ := args.Get(0).(*domain.Weather)
	return w
}

func (m *MockService) ComputePollinatorQuality(ctx context.Context, w *domain.Weather, season domain.Season) (domain.PollinatorQuality, error) {
	args := m.Called(ctx, w, season)
	return args.Get(0).(domain.PollinatorQuality), args.Error(1)
}

func (m *MockService) Crops() []domain.CropDefinition {
	args := m.Called()
	defs, _ := args.Get(0).([]domain.CropDefinition)
	return defs
}

func (m *MockService) TickPlots(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockService) TickHiveNectar(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockService) RunPollinationCycle(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockService) RefillWater(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
