package service

import (
	"context"

	"moneygame/events"
	"moneygame/models"

	"github.com/stretchr/testify/mock"
)

// MockSimulationRunRepository is a mock implementation of SimulationRunRepository
type MockSimulationRunRepository struct {
	mock.Mock
}

func (m *MockSimulationRunRepository) Create(ctx context.Context, run *models.SimulationRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockSimulationRunRepository) GetByID(ctx context.Context, id int64) (*models.SimulationRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SimulationRun), args.Error(1)
}

func (m *MockSimulationRunRepository) GetRecent(ctx context.Context, strategy models.Strategy, limit int) ([]*models.SimulationRun, error) {
	args := m.Called(ctx, strategy, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SimulationRun), args.Error(1)
}

func (m *MockSimulationRunRepository) GetStrategySummaries(ctx context.Context) ([]*models.StrategySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StrategySummary), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
	simulationRunRepo SimulationRunRepository
	eventBus          EventPublisher
}

// SetRepositories configures the repositories and event bus handed out by the unit of work
func (m *MockUnitOfWork) SetRepositories(simulationRunRepo SimulationRunRepository, eventBus EventPublisher) {
	m.simulationRunRepo = simulationRunRepo
	m.eventBus = eventBus
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) SimulationRunRepository() SimulationRunRepository {
	return m.simulationRunRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.eventBus
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
