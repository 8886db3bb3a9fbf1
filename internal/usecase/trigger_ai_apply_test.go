package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/interview-me/api/internal/entity"
	"github.com/interview-me/api/internal/infra/integration/n8n"
	"github.com/interview-me/api/internal/usecase"
)

func storedClient() *entity.Client {
	return &entity.Client{
		ID:          "c1",
		WorkerID:    "w1",
		Name:        "Jane Doe",
		Email:       "jane@x.com",
		Phone:       "+1 555 000",
		LinkedinURL: "https://linkedin.com/in/janedoe",
	}
}

func TestTriggerAiApplyNotConfigured(t *testing.T) {
	mockRepo := new(MockClientRepository)
	mockForwarder := new(MockForwarder)
	mockForwarder.On("Configured").Return(false)

	uc := usecase.NewTriggerAiApplyUseCase(mockRepo, mockForwarder)

	_, err := uc.Execute(context.Background(), usecase.TriggerAiApplyInput{ClientID: "c1", WorkerID: "w1"})

	techErr, ok := err.(*usecase.TechnicalError)
	assert.True(t, ok)
	assert.Equal(t, usecase.CodeNotConfigured, techErr.Code)

	// config failure stops everything: no lookup, no network attempt
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	mockForwarder.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
}

func TestTriggerAiApplyClientNotFound(t *testing.T) {
	mockRepo := new(MockClientRepository)
	mockRepo.On("FindByID", mock.Anything, "ghost").Return(nil, entity.ErrClientNotFound)
	mockForwarder := new(MockForwarder)
	mockForwarder.On("Configured").Return(true)

	uc := usecase.NewTriggerAiApplyUseCase(mockRepo, mockForwarder)

	_, err := uc.Execute(context.Background(), usecase.TriggerAiApplyInput{ClientID: "ghost", WorkerID: "w1"})

	domainErr, ok := err.(*usecase.DomainError)
	assert.True(t, ok)
	assert.Equal(t, usecase.CodeNotFound, domainErr.Code)
	mockForwarder.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
}

func TestTriggerAiApplyForwardsPayload(t *testing.T) {
	mockRepo := new(MockClientRepository)
	mockRepo.On("FindByID", mock.Anything, "c1").Return(storedClient(), nil)

	var captured n8n.AiApplyEvent
	mockForwarder := new(MockForwarder)
	mockForwarder.On("Configured").Return(true)
	mockForwarder.On("Forward", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(n8n.AiApplyEvent)
	}).Return(nil)

	uc := usecase.NewTriggerAiApplyUseCase(mockRepo, mockForwarder)

	output, err := uc.Execute(context.Background(), usecase.TriggerAiApplyInput{
		ClientID: "c1",
		WorkerID: "w1",
	})

	assert.NoError(t, err)
	assert.True(t, output.Forwarded)

	assert.Equal(t, n8n.EventAiApplyRequested, captured.Event)
	assert.Equal(t, "c1", captured.Client.ID)
	assert.Equal(t, "Jane Doe", captured.Client.Name)
	assert.Equal(t, "w1", captured.Context.WorkerID)
	assert.NotEmpty(t, captured.Context.RequestedAt)

	// absent optionals: empty sequence, null, null
	assert.NotNil(t, captured.Context.JobPreferenceIDs)
	assert.Empty(t, captured.Context.JobPreferenceIDs)
	assert.Nil(t, captured.Context.ResumeID)
	assert.Nil(t, captured.Context.Note)
}

func TestTriggerAiApplyCarriesContextExtras(t *testing.T) {
	mockRepo := new(MockClientRepository)
	mockRepo.On("FindByID", mock.Anything, "c1").Return(storedClient(), nil)

	var captured n8n.AiApplyEvent
	mockForwarder := new(MockForwarder)
	mockForwarder.On("Configured").Return(true)
	mockForwarder.On("Forward", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(n8n.AiApplyEvent)
	}).Return(nil)

	uc := usecase.NewTriggerAiApplyUseCase(mockRepo, mockForwarder)

	_, err := uc.Execute(context.Background(), usecase.TriggerAiApplyInput{
		ClientID:         "c1",
		WorkerID:         "w1",
		JobPreferenceIDs: []string{"jp1", "jp2"},
		ResumeID:         "r1",
		Note:             "prioritize remote roles",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"jp1", "jp2"}, captured.Context.JobPreferenceIDs)
	assert.Equal(t, "r1", *captured.Context.ResumeID)
	assert.Equal(t, "prioritize remote roles", *captured.Context.Note)
}

func TestTriggerAiApplyRemoteRejected(t *testing.T) {
	mockRepo := new(MockClientRepository)
	mockRepo.On("FindByID", mock.Anything, "c1").Return(storedClient(), nil)

	mockForwarder := new(MockForwarder)
	mockForwarder.On("Configured").Return(true)
	mockForwarder.On("Forward", mock.Anything, mock.Anything).Return(&n8n.RemoteError{
		StatusCode: 422,
		Body:       "workflow disabled",
	})

	uc := usecase.NewTriggerAiApplyUseCase(mockRepo, mockForwarder)

	_, err := uc.Execute(context.Background(), usecase.TriggerAiApplyInput{ClientID: "c1", WorkerID: "w1"})

	techErr, ok := err.(*usecase.TechnicalError)
	assert.True(t, ok)
	assert.Equal(t, usecase.CodeRemoteRejected, techErr.Code)
	assert.Contains(t, techErr.Message, "workflow disabled")
}

func TestTriggerAiApplyTransportFailure(t *testing.T) {
	mockRepo := new(MockClientRepository)
	mockRepo.On("FindByID", mock.Anything, "c1").Return(storedClient(), nil)

	mockForwarder := new(MockForwarder)
	mockForwarder.On("Configured").Return(true)
	mockForwarder.On("Forward", mock.Anything, mock.Anything).Return(errors.New("dial tcp: connection refused"))

	uc := usecase.NewTriggerAiApplyUseCase(mockRepo, mockForwarder)

	_, err := uc.Execute(context.Background(), usecase.TriggerAiApplyInput{ClientID: "c1", WorkerID: "w1"})

	techErr, ok := err.(*usecase.TechnicalError)
	assert.True(t, ok)
	assert.Equal(t, usecase.CodeWebhookError, techErr.Code)
}

func TestTriggerAiApplyMissingWorkerID(t *testing.T) {
	mockRepo := new(MockClientRepository)
	mockForwarder := new(MockForwarder)

	uc := usecase.NewTriggerAiApplyUseCase(mockRepo, mockForwarder)

	_, err := uc.Execute(context.Background(), usecase.TriggerAiApplyInput{ClientID: "c1"})

	domainErr, ok := err.(*usecase.DomainError)
	assert.True(t, ok)
	assert.Equal(t, usecase.CodeValidation, domainErr.Code)
}
