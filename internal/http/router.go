package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"studydeck/internal/auth"
	"studydeck/internal/handlers"
	"studydeck/internal/ingest"
	"studydeck/internal/service"
	"studydeck/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DB            *sql.DB
	UserRepo      storage.UserStore
	DocRepo       storage.DocumentStore
	ChunkRepo     storage.ChunkStore
	FlashcardRepo storage.FlashcardStore
	QuizRepo      storage.QuizStore
	ReviewRepo    storage.ReviewStore
	Pipeline      *ingest.Pipeline
	StudyService  service.StudyService
	TokenIssuer   *auth.TokenIssuer
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Add CORS and request-scoped logger middleware
	r.Use(RequestID)
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	healthHandler := handlers.NewHealthHandler(deps.DB)
	authHandler := handlers.NewAuthHandler(deps.UserRepo, deps.TokenIssuer)
	documentHandler := handlers.NewDocumentHandler(deps.Pipeline, deps.DocRepo, deps.ChunkRepo)
	flashcardHandler := handlers.NewFlashcardHandler(deps.StudyService, deps.FlashcardRepo, deps.ReviewRepo)
	quizHandler := handlers.NewQuizHandler(deps.StudyService, deps.QuizRepo)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Everything below requires a valid access token.
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(deps.TokenIssuer))

			r.Post("/documents", documentHandler.Upload)
			r.Get("/documents", documentHandler.List)
			r.Get("/documents/{id}", documentHandler.Get)
			r.Delete("/documents/{id}", documentHandler.Delete)
			r.Get("/documents/{id}/flashcards", flashcardHandler.ListByDocument)
			r.Get("/documents/{id}/quizzes", quizHandler.ListByDocument)

			r.Post("/flashcards/generate", flashcardHandler.Generate)
			r.Get("/flashcards/due", flashcardHandler.ListDue)
			r.Post("/flashcards/{id}/review", flashcardHandler.Review)
			r.Get("/flashcards/{id}/reviews", flashcardHandler.History)

			r.Post("/quizzes/generate", quizHandler.Generate)
			r.Get("/quizzes/{id}", quizHandler.Get)
		})
	})

	return r
}
