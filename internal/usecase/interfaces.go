package usecase

import (
	"context"

	"github.com/interview-me/api/internal/entity"
	"github.com/interview-me/api/internal/infra/integration/n8n"
	"github.com/interview-me/api/internal/infra/queue"
)

// AiApplyForwarderInterface is the outbound webhook boundary. Configured
// must be checked before any network attempt.
type AiApplyForwarderInterface interface {
	Configured() bool
	Forward(ctx context.Context, event n8n.AiApplyEvent) error
}

type QueueProducerInterface interface {
	PublishClientEvent(ctx context.Context, payload queue.ClientEventPayload) error
}

type EmailService interface {
	SendWelcome(to, name string) error
}

// InterviewStatsProvider is the seam for interview aggregation. The static
// implementation stands in until an interview store exists.
type InterviewStatsProvider interface {
	InterviewStats(ctx context.Context, workerID string) (entity.InterviewStats, error)
}

// StaticInterviewStats returns fixed numbers for every worker.
type StaticInterviewStats struct {
	Scheduled int
	Accepted  int
	Declined  int
}

func (s StaticInterviewStats) InterviewStats(ctx context.Context, workerID string) (entity.InterviewStats, error) {
	return entity.InterviewStats{
		Scheduled: s.Scheduled,
		Accepted:  s.Accepted,
		Declined:  s.Declined,
	}, nil
}
