package memory

import (
	"context"
	"sync"
	"time"

	"github.com/interview-me/api/internal/entity"
)

// ClientRepository is the in-memory stand-in for the database. It keeps
// insertion order and is safe under concurrent handlers; last write wins on
// racing updates, same as the real store would behave without locking.
type ClientRepository struct {
	mu      sync.RWMutex
	clients []*entity.Client
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

// NewSeededClientRepository preloads the demo roster so the dashboard and
// list filters work without a database. Two of the five sit inside the 72h
// window.
func NewSeededClientRepository() *ClientRepository {
	now := time.Now()
	seed := []*entity.Client{
		{
			ID: "1", WorkerID: "worker1",
			Name: "Sarah Johnson", Email: "sarah.johnson@email.com",
			Phone: "+1 (555) 123-4567", LinkedinURL: "https://linkedin.com/in/sarahjohnson",
			Status: entity.StatusActive, PaymentStatus: entity.PaymentPending,
			TotalInterviews: 2, TotalPaid: 20,
			AssignedAt: now.AddDate(0, -2, 0), CreatedAt: now.AddDate(0, -2, 0), UpdatedAt: now.AddDate(0, -2, 0),
		},
		{
			ID: "2", WorkerID: "worker1",
			Name: "Michael Chen", Email: "michael.chen@email.com",
			Phone: "+1 (555) 234-5678", LinkedinURL: "https://linkedin.com/in/michaelchen",
			Status: entity.StatusActive, PaymentStatus: entity.PaymentPaid,
			TotalInterviews: 1, TotalPaid: 10,
			AssignedAt: now.AddDate(0, -2, -5), CreatedAt: now.AddDate(0, -2, -5), UpdatedAt: now.AddDate(0, -2, -5),
		},
		{
			ID: "3", WorkerID: "worker1",
			Name: "Emily Rodriguez", Email: "emily.rodriguez@email.com",
			Phone: "+1 (555) 345-6789", LinkedinURL: "https://linkedin.com/in/emilyrodriguez",
			Status: entity.StatusPlaced, PaymentStatus: entity.PaymentPaid,
			TotalInterviews: 3, TotalPaid: 30,
			AssignedAt: now.AddDate(0, -3, 0), CreatedAt: now.AddDate(0, -3, 0), UpdatedAt: now.AddDate(0, -2, -15),
		},
		{
			ID: "4", WorkerID: "worker1",
			Name: "Alex Thompson", Email: "alex.thompson@email.com",
			Phone: "+1 (555) 456-7890", LinkedinURL: "https://linkedin.com/in/alexthompson",
			Status: entity.StatusActive, PaymentStatus: entity.PaymentPending,
			IsNew:      true,
			AssignedAt: now.Add(-24 * time.Hour), CreatedAt: now.Add(-24 * time.Hour), UpdatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID: "5", WorkerID: "worker1",
			Name: "Jessica Kim", Email: "jessica.kim@email.com",
			Phone: "+1 (555) 567-8901", LinkedinURL: "https://linkedin.com/in/jessicakim",
			Status: entity.StatusActive, PaymentStatus: entity.PaymentPending,
			IsNew:      true,
			AssignedAt: now.Add(-12 * time.Hour), CreatedAt: now.Add(-12 * time.Hour), UpdatedAt: now.Add(-12 * time.Hour),
		},
	}

	return &ClientRepository{clients: seed}
}

func (r *ClientRepository) List(ctx context.Context, filter entity.ClientFilter) ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	out := make([]*entity.Client, 0, len(r.clients))

	for _, c := range r.clients {
		if filter.WorkerID != "" && c.WorkerID != filter.WorkerID {
			continue
		}
		if filter.Status != "" && filter.Status != "all" {
			if filter.Status == "new" {
				// Recency window on AssignedAt, not the stored IsNew flag.
				if !c.RecentlyAssigned(now) {
					continue
				}
			} else if c.Status != filter.Status {
				continue
			}
		}
		out = append(out, clone(c))
	}

	return out, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.clients {
		if c.ID == id {
			return clone(c), nil
		}
	}
	return nil, entity.ErrClientNotFound
}

func (r *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients = append(r.clients, clone(c))
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, id string, fields entity.ClientUpdate) (*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.clients {
		if c.ID != id {
			continue
		}
		if fields.Name != nil {
			c.Name = *fields.Name
		}
		if fields.Email != nil {
			c.Email = *fields.Email
		}
		if fields.Phone != nil {
			c.Phone = *fields.Phone
		}
		if fields.LinkedinURL != nil {
			c.LinkedinURL = *fields.LinkedinURL
		}
		if fields.Status != nil {
			c.Status = *fields.Status
		}
		c.UpdatedAt = time.Now()
		return clone(c), nil
	}
	return nil, entity.ErrClientNotFound
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return entity.ErrClientNotFound
}

// clone keeps callers from mutating stored records behind the lock.
func clone(c *entity.Client) *entity.Client {
	cp := *c
	return &cp
}
