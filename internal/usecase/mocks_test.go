package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/interview-me/api/internal/entity"
	"github.com/interview-me/api/internal/infra/integration/n8n"
	"github.com/interview-me/api/internal/infra/queue"
)

// MockClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) List(ctx context.Context, filter entity.ClientFilter) ([]*entity.Client, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Client), args.Error(1)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) Create(ctx context.Context, c *entity.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, id string, fields entity.ClientUpdate) (*entity.Client, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockForwarder
type MockForwarder struct {
	mock.Mock
}

func (m *MockForwarder) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockForwarder) Forward(ctx context.Context, event n8n.AiApplyEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishClientEvent(ctx context.Context, payload queue.ClientEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(to, name string) error {
	args := m.Called(to, name)
	return args.Error(0)
}
