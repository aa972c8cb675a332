package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"studydeck/internal/auth"
	"studydeck/internal/config"
	"studydeck/internal/http"
	"studydeck/internal/ingest"
	"studydeck/internal/llm"
	"studydeck/internal/service"
	"studydeck/internal/storage"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API turns uploaded study material (PDF, Markdown, plain text) into
// flashcards and quizzes, and tracks spaced-repetition review progress.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: StudyDeck API
//   description: |
//     Study assistant API. Upload documents, generate flashcards and quizzes
//     from their content, and review flashcards on an SM-2 schedule.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	userRepo := storage.NewUserRepo(db)
	docRepo := storage.NewDocumentRepo(db)
	chunkRepo := storage.NewChunkRepo(db)
	flashcardRepo := storage.NewFlashcardRepo(db)
	quizRepo := storage.NewQuizRepo(db)
	reviewRepo := storage.NewReviewRepo(db)

	// Create LLM client (external service layer)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)

	// Create ingestion pipeline and study service
	pipeline := ingest.NewPipeline(docRepo, chunkRepo, cfg.ChunkSize, cfg.ChunkOverlap)
	studyService := service.NewStudyService(docRepo, chunkRepo, flashcardRepo, quizRepo, reviewRepo, llmClient, cfg.TopK)
	slog.Info("Study service initialized", "chunk_size", cfg.ChunkSize, "chunk_overlap", cfg.ChunkOverlap, "top_k", cfg.TopK)

	// Token issuer for auth
	tokenIssuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// Create router with dependencies
	deps := &http.Deps{
		DB:            db,
		UserRepo:      userRepo,
		DocRepo:       docRepo,
		ChunkRepo:     chunkRepo,
		FlashcardRepo: flashcardRepo,
		QuizRepo:      quizRepo,
		ReviewRepo:    reviewRepo,
		Pipeline:      pipeline,
		StudyService:  studyService,
		TokenIssuer:   tokenIssuer,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
