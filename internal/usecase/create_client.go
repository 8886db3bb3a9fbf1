package usecase

import (
	"context"
	"log"

	"github.com/interview-me/api/internal/entity"
	"github.com/interview-me/api/internal/infra/queue"
)

type CreateClientInput struct {
	WorkerID    string `json:"workerId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LinkedinURL string `json:"linkedinUrl"`
	Status      string `json:"status"`
}

type CreateClientUseCase struct {
	Repo     entity.ClientRepositoryInterface
	Producer QueueProducerInterface
}

func NewCreateClientUseCase(repo entity.ClientRepositoryInterface, producer QueueProducerInterface) *CreateClientUseCase {
	return &CreateClientUseCase{
		Repo:     repo,
		Producer: producer,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*entity.Client, error) {
	validationErrors := ValidateCreateClientInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: JoinValidationErrors(validationErrors),
		}
	}

	client := entity.NewClient(
		input.WorkerID,
		input.Name,
		input.Email,
		input.Phone,
		input.LinkedinURL,
		input.Status,
	)

	if err := uc.Repo.Create(ctx, client); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to persist client: " + err.Error(),
		}
	}

	// Side effects never block nor fail the request.
	if uc.Producer != nil {
		go func() {
			payload := queue.ClientEventPayload{
				Event:    queue.EventClientCreated,
				ClientID: client.ID,
				WorkerID: client.WorkerID,
				Name:     client.Name,
				Email:    client.Email,
			}
			if err := uc.Producer.PublishClientEvent(context.Background(), payload); err != nil {
				log.Printf("queue: failed to publish client_created for %s: %v", client.ID, err)
			}
		}()
	}

	return client, nil
}
