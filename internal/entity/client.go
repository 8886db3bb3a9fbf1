package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: do not import usecase or infra packages here.
)

// NewClientWindow is how long after assignment a client still counts as "new"
// for the status=new list filter.
const NewClientWindow = 72 * time.Hour

// Lifecycle statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPlaced   = "placed"
)

// Payment statuses, independent from the lifecycle status.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentOverdue = "overdue"
)

var ErrClientNotFound = errors.New("client not found")

// Entidade: Client — a job seeker owned by exactly one worker (the agent).
type Client struct {
	ID       string `json:"id"`
	WorkerID string `json:"workerId"`

	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	LinkedinURL string `json:"linkedinUrl,omitempty"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	TotalInterviews int     `json:"totalInterviews"`
	TotalPaid       float64 `json:"totalPaid"`

	// IsNew is set at creation and never recomputed. The status=new filter
	// ignores it and works off AssignedAt; the dashboard counts the flag.
	// Known divergence, do not unify without a recompute rule.
	IsNew bool `json:"isNew"`

	AssignedAt time.Time `json:"assignedAt"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Factory
func NewClient(workerID, name, email, phone, linkedinURL, status string) *Client {
	if status == "" {
		status = StatusActive
	}

	now := time.Now()

	return &Client{
		ID:          uuid.New().String(),
		WorkerID:    workerID,
		Name:        name,
		Email:       email,
		Phone:       phone,
		LinkedinURL: linkedinURL,

		Status:        status,
		PaymentStatus: PaymentPending,

		IsNew:      true,
		AssignedAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// RecentlyAssigned reports whether the client falls inside the 72h window,
// regardless of the stored IsNew flag.
func (c *Client) RecentlyAssigned(now time.Time) bool {
	return c.AssignedAt.After(now.Add(-NewClientWindow))
}

func IsValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusPlaced
}

// ClientFilter narrows List results. Status accepts "", "all", "new" or a
// lifecycle value; "new" selects on AssignedAt, not on the Status field.
type ClientFilter struct {
	WorkerID string
	Status   string
}

// ClientUpdate carries a partial update; nil fields are left untouched.
// Payment status, counters, IsNew and AssignedAt are not updatable here.
type ClientUpdate struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	LinkedinURL *string `json:"linkedinUrl"`
	Status      *string `json:"status"`
}

type ClientRepositoryInterface interface {
	List(ctx context.Context, filter ClientFilter) ([]*Client, error)
	FindByID(ctx context.Context, id string) (*Client, error)
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, id string, fields ClientUpdate) (*Client, error)
	Delete(ctx context.Context, id string) error
}
