package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/interview-me/api/internal/usecase"
)

// ApiResponse is the envelope every endpoint answers with.
type ApiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, data interface{}, message string) {
	writeJSON(w, status, ApiResponse{Success: true, Data: data, Message: message})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ApiResponse{Success: false, Error: msg})
}

// writeUseCaseError maps the error taxonomy to HTTP statuses. Nothing leaks
// past the handler boundary unenveloped.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, statusForCode(domainErr.Code), domainErr.Message)
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		writeError(w, statusForCode(techErr.Code), techErr.Message)
		return
	}

	writeError(w, http.StatusInternalServerError, err.Error())
}

func statusForCode(code string) int {
	switch code {
	case usecase.CodeValidation, usecase.CodeMissingParameter:
		return http.StatusBadRequest
	case usecase.CodeNotFound:
		return http.StatusNotFound
	case usecase.CodeRemoteRejected:
		return http.StatusBadGateway
	default:
		// NOT_CONFIGURED, WEBHOOK_ERROR, DATABASE_ERROR and anything unknown.
		return http.StatusInternalServerError
	}
}
