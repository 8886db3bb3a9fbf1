package usecase

// Error codes translated to HTTP statuses at the handler boundary.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeNotFound         = "NOT_FOUND"
	CodeNotConfigured    = "NOT_CONFIGURED"
	CodeRemoteRejected   = "REMOTE_REJECTED"
	CodeWebhookError     = "WEBHOOK_ERROR"
	CodeDatabaseError    = "DATABASE_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
