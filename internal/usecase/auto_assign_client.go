package usecase

import (
	"context"
	"log"

	"github.com/interview-me/api/internal/entity"
	"github.com/interview-me/api/internal/infra/queue"
)

// DefaultWorkerID owns every auto-assigned signup until a real assignment
// policy exists.
const DefaultWorkerID = "worker1"

type AutoAssignClientInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LinkedinURL string `json:"linkedinUrl"`

	// Accepted for future use; not persisted on the client record yet, but
	// carried through on the published event.
	Company  string `json:"company"`
	Position string `json:"position"`
}

type AutoAssignClientUseCase struct {
	Repo         entity.ClientRepositoryInterface
	Producer     QueueProducerInterface
	EmailService EmailService
	WorkerID     string
}

func NewAutoAssignClientUseCase(
	repo entity.ClientRepositoryInterface,
	producer QueueProducerInterface,
	emailService EmailService,
	workerID string,
) *AutoAssignClientUseCase {
	if workerID == "" {
		workerID = DefaultWorkerID
	}
	return &AutoAssignClientUseCase{
		Repo:         repo,
		Producer:     producer,
		EmailService: emailService,
		WorkerID:     workerID,
	}
}

func (uc *AutoAssignClientUseCase) Execute(ctx context.Context, input AutoAssignClientInput) (*entity.Client, error) {
	validationErrors := ValidateAutoAssignClientInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: JoinValidationErrors(validationErrors),
		}
	}

	// Signups come in with minimal fields; phone and linkedin stay empty
	// strings rather than absent.
	client := entity.NewClient(
		uc.WorkerID,
		input.Name,
		input.Email,
		input.Phone,
		input.LinkedinURL,
		entity.StatusActive,
	)

	if err := uc.Repo.Create(ctx, client); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to auto-assign client: " + err.Error(),
		}
	}

	go func() {
		if uc.EmailService != nil {
			if err := uc.EmailService.SendWelcome(client.Email, client.Name); err != nil {
				log.Printf("mail: welcome to %s failed: %v", client.Email, err)
			}
		}

		if uc.Producer != nil {
			payload := queue.ClientEventPayload{
				Event:    queue.EventClientAutoAssigned,
				ClientID: client.ID,
				WorkerID: client.WorkerID,
				Name:     client.Name,
				Email:    client.Email,
				Company:  input.Company,
				Position: input.Position,
			}
			if err := uc.Producer.PublishClientEvent(context.Background(), payload); err != nil {
				log.Printf("queue: failed to publish client_auto_assigned for %s: %v", client.ID, err)
			}
		}
	}()

	return client, nil
}
