package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/interview-me/api/internal/entity"
	"github.com/interview-me/api/internal/infra/integration/n8n"
)

type TriggerAiApplyInput struct {
	ClientID         string   `json:"-"`
	WorkerID         string   `json:"workerId"`
	JobPreferenceIDs []string `json:"jobPreferenceIds"`
	ResumeID         string   `json:"resumeId"`
	Note             string   `json:"note"`
}

type TriggerAiApplyOutput struct {
	Forwarded bool `json:"forwarded"`
}

type TriggerAiApplyUseCase struct {
	Repo      entity.ClientRepositoryInterface
	Forwarder AiApplyForwarderInterface
}

func NewTriggerAiApplyUseCase(repo entity.ClientRepositoryInterface, forwarder AiApplyForwarderInterface) *TriggerAiApplyUseCase {
	return &TriggerAiApplyUseCase{
		Repo:      repo,
		Forwarder: forwarder,
	}
}

// Execute forwards an AI Apply request to the automation engine. The caller
// gets an acknowledgement once the webhook accepts the event; the apply
// itself runs remotely.
func (uc *TriggerAiApplyUseCase) Execute(ctx context.Context, input TriggerAiApplyInput) (*TriggerAiApplyOutput, error) {
	var validationErrors []ValidationError
	if strings.TrimSpace(input.ClientID) == "" {
		validationErrors = append(validationErrors, ValidationError{"id", "is required"})
	}
	if strings.TrimSpace(input.WorkerID) == "" {
		validationErrors = append(validationErrors, ValidationError{"workerId", "is required"})
	}
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: JoinValidationErrors(validationErrors),
		}
	}

	// Config check comes before the lookup: a misconfigured deployment must
	// never reach the network.
	if !uc.Forwarder.Configured() {
		return nil, &TechnicalError{
			Code:    CodeNotConfigured,
			Message: "N8N_AI_APPLY_WEBHOOK_URL not configured",
		}
	}

	client, err := uc.Repo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			return nil, &DomainError{
				Code:    CodeNotFound,
				Message: "Client not found",
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load client: " + err.Error(),
		}
	}

	event := n8n.AiApplyEvent{
		Event: n8n.EventAiApplyRequested,
		Client: n8n.EventClient{
			ID:          client.ID,
			Name:        client.Name,
			Email:       client.Email,
			Phone:       client.Phone,
			LinkedinURL: client.LinkedinURL,
		},
		Context: n8n.EventContext{
			WorkerID:         input.WorkerID,
			JobPreferenceIDs: input.JobPreferenceIDs,
			ResumeID:         nullable(input.ResumeID),
			Note:             nullable(input.Note),
			RequestedAt:      time.Now().UTC().Format(time.RFC3339),
		},
	}
	if event.Context.JobPreferenceIDs == nil {
		event.Context.JobPreferenceIDs = []string{}
	}

	if err := uc.Forwarder.Forward(ctx, event); err != nil {
		var remoteErr *n8n.RemoteError
		if errors.As(err, &remoteErr) {
			return nil, &TechnicalError{
				Code:    CodeRemoteRejected,
				Message: "n8n error: " + remoteErr.Body,
			}
		}
		return nil, &TechnicalError{
			Code:    CodeWebhookError,
			Message: "failed to trigger AI Apply: " + err.Error(),
		}
	}

	return &TriggerAiApplyOutput{Forwarded: true}, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
