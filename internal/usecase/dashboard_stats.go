package usecase

import (
	"context"
	"math"
	"strings"

	"github.com/interview-me/api/internal/entity"
)

type DashboardStats struct {
	TotalClients  int `json:"totalClients"`
	ActiveClients int `json:"activeClients"`

	// NewClients counts the stored IsNew flag, which drifts from the
	// 72h list filter once the window passes without a recompute.
	NewClients int `json:"newClients"`

	// "ThisMonth" names are aspirational: both are all-time numbers until
	// month scoping lands.
	InterviewsThisMonth int `json:"interviewsThisMonth"`
	PlacementsThisMonth int `json:"placementsThisMonth"`

	SuccessRate     float64 `json:"successRate"`
	PendingPayments int     `json:"pendingPayments"`
	TotalRevenue    float64 `json:"totalRevenue"`

	InterviewsScheduled int `json:"interviewsScheduled"`
	InterviewsAccepted  int `json:"interviewsAccepted"`
	InterviewsDeclined  int `json:"interviewsDeclined"`
}

type DashboardStatsUseCase struct {
	Repo       entity.ClientRepositoryInterface
	Interviews InterviewStatsProvider
}

func NewDashboardStatsUseCase(repo entity.ClientRepositoryInterface, interviews InterviewStatsProvider) *DashboardStatsUseCase {
	return &DashboardStatsUseCase{
		Repo:       repo,
		Interviews: interviews,
	}
}

func (uc *DashboardStatsUseCase) Execute(ctx context.Context, workerID string) (*DashboardStats, error) {
	if strings.TrimSpace(workerID) == "" {
		return nil, &DomainError{
			Code:    CodeMissingParameter,
			Message: "Worker ID is required",
		}
	}

	clients, err := uc.Repo.List(ctx, entity.ClientFilter{WorkerID: workerID})
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load clients: " + err.Error(),
		}
	}

	stats := &DashboardStats{}
	for _, c := range clients {
		stats.TotalClients++
		if c.Status == entity.StatusActive {
			stats.ActiveClients++
		}
		if c.IsNew {
			stats.NewClients++
		}
		if c.Status == entity.StatusPlaced {
			stats.PlacementsThisMonth++
		}
		if c.PaymentStatus == entity.PaymentPending {
			stats.PendingPayments++
		}
		stats.InterviewsThisMonth += c.TotalInterviews
		stats.TotalRevenue += c.TotalPaid
	}

	interviews, err := uc.Interviews.InterviewStats(ctx, workerID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load interview stats: " + err.Error(),
		}
	}

	stats.InterviewsScheduled = interviews.Scheduled
	stats.InterviewsAccepted = interviews.Accepted
	stats.InterviewsDeclined = interviews.Declined

	if interviews.Scheduled > 0 {
		rate := float64(interviews.Accepted) / float64(interviews.Scheduled) * 100
		stats.SuccessRate = roundToTenth(rate)
	}

	return stats, nil
}

// roundToTenth rounds half away from zero at the tenths digit.
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
