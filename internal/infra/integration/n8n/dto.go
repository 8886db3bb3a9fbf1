package n8n

const EventAiApplyRequested = "ai_apply_requested"

// AiApplyEvent is the payload the automation engine receives on its webhook.
type AiApplyEvent struct {
	Event   string       `json:"event"`
	Client  EventClient  `json:"client"`
	Context EventContext `json:"context"`
}

type EventClient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LinkedinURL string `json:"linkedinUrl"`
}

type EventContext struct {
	WorkerID         string   `json:"workerId"`
	JobPreferenceIDs []string `json:"jobPreferenceIds"`
	ResumeID         *string  `json:"resumeId"`
	Note             *string  `json:"note"`
	RequestedAt      string   `json:"requestedAt"`
}
