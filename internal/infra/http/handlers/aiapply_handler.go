package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/interview-me/api/internal/infra/http/middleware"
	"github.com/interview-me/api/internal/usecase"
)

type AiApplyHandler struct {
	TriggerUC *usecase.TriggerAiApplyUseCase
}

func NewAiApplyHandler(triggerUC *usecase.TriggerAiApplyUseCase) *AiApplyHandler {
	return &AiApplyHandler{TriggerUC: triggerUC}
}

// Trigger (POST /clients/{id}/ai-apply) answers 202 once the automation
// engine has accepted the event; the apply itself runs remotely.
func (h *AiApplyHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	var input usecase.TriggerAiApplyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	input.ClientID = chi.URLParam(r, "id")

	output, err := h.TriggerUC.Execute(r.Context(), input)
	if err != nil {
		var techErr *usecase.TechnicalError
		if errors.As(err, &techErr) &&
			(techErr.Code == usecase.CodeRemoteRejected || techErr.Code == usecase.CodeWebhookError) {
			middleware.RecordIntegrationError("n8n")
		}
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordAiApplyForwarded()
	writeData(w, http.StatusAccepted, output, "AI Apply request forwarded to automation engine")
}
