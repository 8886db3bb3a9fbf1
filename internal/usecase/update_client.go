package usecase

import (
	"context"
	"errors"

	"github.com/interview-me/api/internal/entity"
)

type UpdateClientUseCase struct {
	Repo entity.ClientRepositoryInterface
}

func NewUpdateClientUseCase(repo entity.ClientRepositoryInterface) *UpdateClientUseCase {
	return &UpdateClientUseCase{Repo: repo}
}

// Execute merges only the provided fields into the stored client and bumps
// UpdatedAt. Counters, payment status, IsNew and AssignedAt are untouchable
// through this path.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, id string, fields entity.ClientUpdate) (*entity.Client, error) {
	validationErrors := ValidateClientUpdate(fields)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: JoinValidationErrors(validationErrors),
		}
	}

	client, err := uc.Repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			return nil, &DomainError{
				Code:    CodeNotFound,
				Message: "Client not found",
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to update client: " + err.Error(),
		}
	}

	return client, nil
}
