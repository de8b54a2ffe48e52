package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-crm/internal/infra/database"
	"github.com/xavierca1/ligue-crm/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-crm/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-crm/internal/infra/mail"
	"github.com/xavierca1/ligue-crm/internal/infra/queue"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal(err)
	}

	// RabbitMQ é opcional: sem broker o CRM funciona, só não emite eventos
	var (
		producer *queue.RabbitMQProducer
		rabbitMQ *queue.RabbitMQ
		amqpConn *amqp.Connection
	)
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err = queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"),
			os.Getenv("RABBITMQ_PASS"),
			host,
			os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		amqpConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		// Worker: consome os eventos e avisa o agente por email
		mailPort, _ := strconv.Atoi(os.Getenv("MAIL_PORT"))
		if mailPort == 0 {
			mailPort = 587
		}
		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), mailPort, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		)
		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("RABBITMQ_HOST não definido, eventos de lead desativados")
	}

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	agentRepo := database.NewSalesAgentRepository(db)
	commentRepo := database.NewCommentRepository(db)
	tagRepo := database.NewTagRepository(db)

	// 2. UseCases
	var queueProducer usecase.QueueProducerInterface
	if producer != nil {
		queueProducer = producer
	}
	leadUC := usecase.NewLeadUseCase(leadRepo, agentRepo, commentRepo, tagRepo, queueProducer)
	agentUC := usecase.NewAgentUseCase(agentRepo, leadRepo)
	commentUC := usecase.NewCommentUseCase(commentRepo, leadRepo, agentRepo)
	tagUC := usecase.NewTagUseCase(tagRepo)
	reportUC := usecase.NewReportUseCase(leadRepo)

	// 3. Handlers
	leadHandler := handlers.NewLeadHandler(leadUC)
	agentHandler := handlers.NewAgentHandler(agentUC)
	commentHandler := handlers.NewCommentHandler(commentUC)
	tagHandler := handlers.NewTagHandler(tagUC)
	reportHandler := handlers.NewReportHandler(reportUC)
	healthHandler := handlers.NewHealthHandler(db, amqpConn)

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
	}))

	r.Post("/leads", leadHandler.Create)
	r.Get("/leads", leadHandler.List)
	r.Get("/leads/{id}", leadHandler.Get)
	r.Put("/leads/{id}", leadHandler.Update)
	r.Delete("/leads/{id}", leadHandler.Delete)

	r.Post("/leads/{id}/comments", commentHandler.Create)
	r.Get("/leads/{id}/comments", commentHandler.ListByLead)
	r.Delete("/comments/{id}", commentHandler.Delete)

	r.Post("/agents", agentHandler.Create)
	r.Get("/agents", agentHandler.List)
	r.Delete("/agents/{id}", agentHandler.Delete)

	r.Post("/tags", tagHandler.Create)
	r.Get("/tags", tagHandler.List)

	r.Get("/report/last-week", reportHandler.LastWeek)
	r.Get("/report/pipeline", reportHandler.Pipeline)
	r.Get("/report/closed-by-agent", reportHandler.ClosedByAgent)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("🔥 Server Ligue CRM rodando na porta :%s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

// allowedOrigins lê os origins liberados no CORS (dois por padrão)
func allowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:5173", "https://app.liguecrm.com"}
	}
	return strings.Split(raw, ",")
}
