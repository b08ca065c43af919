// Preventive Health API
//
// REST API for daily health aggregates, rule-based risk scoring and
// LLM wellness summaries.
//
//	@title			Preventive Health API
//	@version		1.0
//	@description	Record daily health aggregates, run risk assessments, and generate wellness insights.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			aggregates
//	@tag.description	Daily health aggregate endpoints
//
//	@tag.name			risk
//	@tag.description	Risk assessment endpoints
//
//	@tag.name			insights
//	@tag.description	Health insight endpoints
//
//	@tag.name			wellness
//	@tag.description	LLM wellness summary endpoints
//
//	@tag.name			model
//	@tag.description	Model drift ops endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/api"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/api/handler"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/config"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/langfuse"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/llm"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/repository"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/risk"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/seed"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/service"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize OpenTelemetry tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "preventive-health-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	err = db.AutoMigrate(
		&domain.User{},
		&domain.DailyAggregate{},
		&domain.RiskScore{},
		&domain.HealthInsight{},
		&domain.DriftRecord{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	aggregateRepo := repository.NewDailyAggregateRepository(db)
	scoreRepo := repository.NewRiskScoreRepository(db)
	insightRepo := repository.NewHealthInsightRepository(db)
	driftRepo := repository.NewDriftRecordRepository(db)

	// One drift monitor shared by the assessment path and the ops endpoints
	monitor := risk.NewMonitor()

	// Initialize Langfuse client for feedback scores
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Load the wellness system prompt (Langfuse-managed with local fallback)
	systemPrompt := llm.DefaultSystemPrompt
	if cfg.WellnessPromptName != "" {
		loaded, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.WellnessPromptName,
			PromptLabel: cfg.WellnessPromptLabel,
			SavePath:    ".prompts/" + cfg.WellnessPromptName + ".txt",
		})
		if err != nil {
			log.Printf("Falling back to built-in wellness prompt: %v", err)
		} else {
			systemPrompt = loaded
		}
	}

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIWellnessModel, systemPrompt)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, wellness summary endpoint will be unavailable")
	}

	// Initialize services
	userService := service.NewUserService(userRepo)
	aggregateService := service.NewAggregateService(aggregateRepo, userRepo)
	riskInsightsService := service.NewRiskInsightsService(aggregateRepo, userRepo, scoreRepo, insightRepo, driftRepo, monitor)
	driftService := service.NewDriftService(driftRepo, monitor)

	// Keep the interface nil when the client is nil
	var summaryLLM llm.SummaryLLM
	if openaiClient != nil {
		summaryLLM = openaiClient
	}
	wellnessService := service.NewWellnessSummaryService(aggregateService, summaryLLM, userRepo, scoreRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	aggregateHandler := handler.NewAggregateHandler(aggregateService)
	riskHandler := handler.NewRiskHandler(riskInsightsService)
	wellnessHandler := handler.NewWellnessHandler(wellnessService, langfuseClient)
	driftHandler := handler.NewDriftHandler(driftService)

	// Setup router
	router := api.NewRouter(userHandler, aggregateHandler, riskHandler, wellnessHandler, driftHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
