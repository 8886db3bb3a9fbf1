package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/interview-me/api/internal/entity"
	"github.com/interview-me/api/internal/infra/database"
	"github.com/interview-me/api/internal/infra/http/handlers"
	"github.com/interview-me/api/internal/infra/http/middleware"
	"github.com/interview-me/api/internal/infra/integration/n8n"
	"github.com/interview-me/api/internal/infra/mail"
	"github.com/interview-me/api/internal/infra/memory"
	"github.com/interview-me/api/internal/infra/queue"
	"github.com/interview-me/api/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Client store: Postgres when DATABASE_URL is set, otherwise the
	// seeded in-memory stand-in.
	var db *sql.DB
	var clientRepo entity.ClientRepositoryInterface

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		clientRepo = database.NewClientRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory client store")
		clientRepo = memory.NewSeededClientRepository()
	}

	// 2. Optional queue for client lifecycle events
	var rabbitConn *amqp.Connection
	var producer usecase.QueueProducerInterface

	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err := queue.NewRabbitMQ(url)
		if err != nil {
			log.Printf("rabbitmq unavailable, client events disabled: %v", err)
		} else {
			rabbitConn = rabbitMQ.Conn
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
			defer rabbitMQ.Conn.Close()
			defer rabbitMQ.Ch.Close()
		}
	}

	// 3. Optional welcome mail for signups
	var mailSender usecase.EmailService
	if host := os.Getenv("MAIL_HOST"); host != "" {
		port, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if port == 0 {
			port = 587
		}
		mailSender = mail.NewEmailSender(
			host, port,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("MAIL_FROM"),
		)
	}

	// 4. Outbound AI Apply webhook
	forwarder := n8n.NewClientFromEnv()
	if !forwarder.Configured() {
		log.Println("N8N_AI_APPLY_WEBHOOK_URL not set, ai-apply will answer 500 until configured")
	}

	// 5. UseCases
	createClientUC := usecase.NewCreateClientUseCase(clientRepo, producer)
	autoAssignUC := usecase.NewAutoAssignClientUseCase(
		clientRepo, producer, mailSender, os.Getenv("DEFAULT_WORKER_ID"),
	)
	updateClientUC := usecase.NewUpdateClientUseCase(clientRepo)
	statsUC := usecase.NewDashboardStatsUseCase(
		clientRepo,
		// Placeholder numbers until an interview store exists.
		usecase.StaticInterviewStats{Scheduled: 8, Accepted: 5, Declined: 2},
	)
	triggerAiApplyUC := usecase.NewTriggerAiApplyUseCase(clientRepo, forwarder)

	// 6. Handlers
	clientHandler := handlers.NewClientHandler(clientRepo, createClientUC, autoAssignUC, updateClientUC)
	statsHandler := handlers.NewStatsHandler(statsUC)
	aiApplyHandler := handlers.NewAiApplyHandler(triggerAiApplyUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, forwarder)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	// The auth middleware mounts here once the auth service lands; until
	// then every /clients route is open.
	r.Route("/clients", func(r chi.Router) {
		r.Get("/", clientHandler.List)
		r.Post("/", clientHandler.Create)
		r.Post("/auto-assign", clientHandler.AutoAssign)
		r.Get("/stats/dashboard", statsHandler.Dashboard)
		r.Get("/{id}", clientHandler.GetByID)
		r.Put("/{id}", clientHandler.Update)
		r.Delete("/{id}", clientHandler.Delete)
		r.Post("/{id}/ai-apply", aiApplyHandler.Trigger)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Interview Me API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
