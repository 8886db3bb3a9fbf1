package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/interview-me/api/internal/entity"
	"github.com/interview-me/api/internal/infra/http/middleware"
	"github.com/interview-me/api/internal/usecase"
)

type ClientHandler struct {
	Repo         entity.ClientRepositoryInterface
	CreateUC     *usecase.CreateClientUseCase
	AutoAssignUC *usecase.AutoAssignClientUseCase
	UpdateUC     *usecase.UpdateClientUseCase
	rateLimiter  *RateLimiter
}

func NewClientHandler(
	repo entity.ClientRepositoryInterface,
	createUC *usecase.CreateClientUseCase,
	autoAssignUC *usecase.AutoAssignClientUseCase,
	updateUC *usecase.UpdateClientUseCase,
) *ClientHandler {
	return &ClientHandler{
		Repo:         repo,
		CreateUC:     createUC,
		AutoAssignUC: autoAssignUC,
		UpdateUC:     updateUC,
		rateLimiter:  NewRateLimiter(10, time.Minute), // 10 req/min per IP on signup intake
	}
}

// List (GET /clients?workerId=&status=)
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := entity.ClientFilter{
		WorkerID: r.URL.Query().Get("workerId"),
		Status:   r.URL.Query().Get("status"),
	}

	clients, err := h.Repo.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list clients")
		return
	}
	if clients == nil {
		clients = []*entity.Client{}
	}

	writeData(w, http.StatusOK, clients, fmt.Sprintf("Found %d clients", len(clients)))
}

// GetByID (GET /clients/{id})
func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	client, err := h.Repo.FindByID(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "Client not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load client")
		return
	}

	writeData(w, http.StatusOK, client, "")
}

// Create (POST /clients)
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	client, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordClientCreated("manual")
	writeData(w, http.StatusCreated, client, "Client created successfully")
}

// AutoAssign (POST /clients/auto-assign) — unauthenticated signup intake,
// rate limited.
func (h *ClientHandler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.AutoAssignClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	client, err := h.AutoAssignUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordClientCreated("auto_assign")
	writeData(w, http.StatusCreated, client,
		fmt.Sprintf("Client %s automatically assigned to worker %s", client.Name, client.WorkerID))
}

// Update (PUT /clients/{id})
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	var fields entity.ClientUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	client, err := h.UpdateUC.Execute(r.Context(), clientID, fields)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeData(w, http.StatusOK, client, "Client updated successfully")
}

// Delete (DELETE /clients/{id}) — immediate removal, no soft delete.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	if err := h.Repo.Delete(r.Context(), clientID); err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "Client not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Client deleted successfully"})
}
