package usecase

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"github.com/interview-me/api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// JoinValidationErrors flattens every violated field into one message, so a
// caller sees the full list instead of just the first failure.
func JoinValidationErrors(errs []ValidationError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func ValidateCreateClientInput(input CreateClientInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.WorkerID) == "" {
		errors = append(errors, ValidationError{"workerId", "is required"})
	}

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.LinkedinURL != "" && !isValidURL(input.LinkedinURL) {
		errors = append(errors, ValidationError{"linkedinUrl", "must be a valid URL"})
	}

	if input.Status != "" && !entity.IsValidStatus(input.Status) {
		errors = append(errors, ValidationError{"status", "must be active, inactive or placed"})
	}

	return errors
}

func ValidateAutoAssignClientInput(input AutoAssignClientInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if !isValidEmail(input.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.LinkedinURL != "" && !isValidURL(input.LinkedinURL) {
		errors = append(errors, ValidationError{"linkedinUrl", "must be a valid URL"})
	}

	return errors
}

func ValidateClientUpdate(fields entity.ClientUpdate) []ValidationError {
	var errors []ValidationError

	if fields.Name != nil && strings.TrimSpace(*fields.Name) == "" {
		errors = append(errors, ValidationError{"name", "must not be empty"})
	}

	if fields.Email != nil && !isValidEmail(*fields.Email) {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if fields.LinkedinURL != nil && *fields.LinkedinURL != "" && !isValidURL(*fields.LinkedinURL) {
		errors = append(errors, ValidationError{"linkedinUrl", "must be a valid URL"})
	}

	if fields.Status != nil && !entity.IsValidStatus(*fields.Status) {
		errors = append(errors, ValidationError{"status", "must be active, inactive or placed"})
	}

	return errors
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
