package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_completion_client.go -package=mocks studydeck/internal/service CompletionClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_study_service.go -package=mocks -mock_names=StudyService=MockStudyService studydeck/internal/service StudyService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"studydeck/internal/chunker"
	"studydeck/internal/contextutil"
	"studydeck/internal/storage"
	"studydeck/internal/study"
)

// CompletionClient is an interface for interacting with an LLM API.
// This interface is defined from the service layer's perspective (consumer-first).
type CompletionClient interface {
	// Complete sends a system and user message pair and returns the reply.
	Complete(ctx context.Context, system, user string) (string, error)
}

// StudyService provides flashcard and quiz generation plus review tracking.
type StudyService interface {
	// GenerateFlashcards generates and stores flashcards for a document.
	GenerateFlashcards(ctx context.Context, req GenerateFlashcardsRequest) ([]*storage.FlashcardRecord, error)
	// GenerateQuiz generates and stores a multiple-choice quiz for a document.
	GenerateQuiz(ctx context.Context, req GenerateQuizRequest) (*storage.QuizRecord, error)
	// ReviewFlashcard applies one SM-2 review and persists the new schedule.
	ReviewFlashcard(ctx context.Context, req ReviewFlashcardRequest) (ReviewFlashcardResponse, error)
}

const (
	defaultCardCount     = 10
	maxCardCount         = 30
	defaultQuestionCount = 5
	maxQuestionCount     = 20
)

const flashcardSystemPrompt = "You are a study assistant that creates flashcards from course material. " +
	"Respond with a JSON array only, no prose. Each element must have the keys " +
	"\"question\" and \"answer\". Base every card strictly on the provided material."

const quizSystemPrompt = "You are a study assistant that creates multiple-choice quizzes from course material. " +
	"Respond with a JSON array only, no prose. Each element must have the keys " +
	"\"question\", \"options\" (exactly 4 strings), \"answer_index\" (0-3) and \"explanation\". " +
	"Base every question strictly on the provided material."

// studyService implements the StudyService interface.
type studyService struct {
	docRepo       storage.DocumentStore
	chunkRepo     storage.ChunkStore
	flashcardRepo storage.FlashcardStore
	quizRepo      storage.QuizStore
	reviewRepo    storage.ReviewStore
	llmClient     CompletionClient
	topK          int
	now           func() time.Time
}

// NewStudyService creates a new StudyService.
func NewStudyService(
	docRepo storage.DocumentStore,
	chunkRepo storage.ChunkStore,
	flashcardRepo storage.FlashcardStore,
	quizRepo storage.QuizStore,
	reviewRepo storage.ReviewStore,
	llmClient CompletionClient,
	topK int,
) StudyService {
	if topK <= 0 {
		topK = chunker.DefaultTopK
	}
	return &studyService{
		docRepo:       docRepo,
		chunkRepo:     chunkRepo,
		flashcardRepo: flashcardRepo,
		quizRepo:      quizRepo,
		reviewRepo:    reviewRepo,
		llmClient:     llmClient,
		topK:          topK,
		now:           time.Now,
	}
}

// GenerateFlashcards generates and stores flashcards for a document.
func (s *studyService) GenerateFlashcards(ctx context.Context, req GenerateFlashcardsRequest) ([]*storage.FlashcardRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	count := req.Count
	if count <= 0 {
		count = defaultCardCount
	}
	if count > maxCardCount {
		count = maxCardCount
	}

	studyContext, doc, err := s.buildContext(ctx, req.UserID, req.DocumentID, req.Topic)
	if err != nil {
		return nil, err
	}

	userPrompt := fmt.Sprintf("Create %d flashcards from the following material.", count)
	if req.Topic != "" {
		userPrompt = fmt.Sprintf("Create %d flashcards about %q from the following material.", count, req.Topic)
	}
	userPrompt += "\n\n--- Material ---\n" + studyContext + "\n--- End material ---"

	reply, err := s.llmClient.Complete(ctx, flashcardSystemPrompt, userPrompt)
	if err != nil {
		logger.ErrorContext(ctx, "flashcard generation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	var generated []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := decodeModelJSON(reply, &generated); err != nil {
		logger.ErrorContext(ctx, "failed to parse generated flashcards", "error", err)
		return nil, fmt.Errorf("%w: malformed flashcard response: %v", ErrExternalService, err)
	}

	now := s.now().UTC()
	initial := study.NewCardState()
	cards := make([]*storage.FlashcardRecord, 0, len(generated))
	for _, g := range generated {
		if g.Question == "" || g.Answer == "" {
			continue
		}
		card := &storage.FlashcardRecord{
			ID:           uuid.New().String(),
			DocumentID:   doc.ID,
			UserID:       req.UserID,
			Question:     g.Question,
			Answer:       g.Answer,
			Repetitions:  initial.Repetitions,
			IntervalDays: initial.IntervalDays,
			Easiness:     initial.Easiness,
			DueAt:        now,
		}
		if err := s.flashcardRepo.Insert(ctx, card); err != nil {
			return nil, fmt.Errorf("failed to store flashcard: %w", err)
		}
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: model returned no usable flashcards", ErrExternalService)
	}

	logger.InfoContext(ctx, "flashcards generated",
		"document_id", doc.ID, "requested", count, "stored", len(cards))
	return cards, nil
}

// GenerateQuiz generates and stores a multiple-choice quiz for a document.
func (s *studyService) GenerateQuiz(ctx context.Context, req GenerateQuizRequest) (*storage.QuizRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	count := req.Count
	if count <= 0 {
		count = defaultQuestionCount
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}

	studyContext, doc, err := s.buildContext(ctx, req.UserID, req.DocumentID, req.Topic)
	if err != nil {
		return nil, err
	}

	userPrompt := fmt.Sprintf("Create a %d-question quiz from the following material.", count)
	if req.Topic != "" {
		userPrompt = fmt.Sprintf("Create a %d-question quiz about %q from the following material.", count, req.Topic)
	}
	userPrompt += "\n\n--- Material ---\n" + studyContext + "\n--- End material ---"

	reply, err := s.llmClient.Complete(ctx, quizSystemPrompt, userPrompt)
	if err != nil {
		logger.ErrorContext(ctx, "quiz generation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	var generated []struct {
		Question    string   `json:"question"`
		Options     []string `json:"options"`
		AnswerIndex int      `json:"answer_index"`
		Explanation string   `json:"explanation"`
	}
	if err := decodeModelJSON(reply, &generated); err != nil {
		logger.ErrorContext(ctx, "failed to parse generated quiz", "error", err)
		return nil, fmt.Errorf("%w: malformed quiz response: %v", ErrExternalService, err)
	}

	quiz := &storage.QuizRecord{
		ID:         uuid.New().String(),
		DocumentID: doc.ID,
		UserID:     req.UserID,
		Topic:      req.Topic,
	}
	for _, g := range generated {
		if g.Question == "" || len(g.Options) < 2 {
			continue
		}
		if g.AnswerIndex < 0 || g.AnswerIndex >= len(g.Options) {
			continue
		}
		quiz.Questions = append(quiz.Questions, storage.QuizQuestionRecord{
			ID:            uuid.New().String(),
			QuizID:        quiz.ID,
			QuestionIndex: len(quiz.Questions),
			Prompt:        g.Question,
			Options:       g.Options,
			AnswerIndex:   g.AnswerIndex,
			Explanation:   g.Explanation,
		})
	}

	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("%w: model returned no usable questions", ErrExternalService)
	}

	if err := s.quizRepo.Insert(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to store quiz: %w", err)
	}

	logger.InfoContext(ctx, "quiz generated",
		"document_id", doc.ID, "quiz_id", quiz.ID, "questions", len(quiz.Questions))
	return quiz, nil
}

// ReviewFlashcard applies one SM-2 review and persists the new schedule.
func (s *studyService) ReviewFlashcard(ctx context.Context, req ReviewFlashcardRequest) (ReviewFlashcardResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Quality < 0 || req.Quality > study.MaxQuality {
		return ReviewFlashcardResponse{}, &ValidationError{
			Field:   "quality",
			Message: fmt.Sprintf("must be between 0 and %d", study.MaxQuality),
		}
	}

	card, err := s.flashcardRepo.GetByID(ctx, req.FlashcardID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ReviewFlashcardResponse{}, ErrNotFound
		}
		return ReviewFlashcardResponse{}, WrapError(err, "failed to load flashcard")
	}
	if card.UserID != req.UserID {
		// Hide other users' cards rather than revealing their existence.
		return ReviewFlashcardResponse{}, ErrNotFound
	}

	state := study.Review(study.CardState{
		Repetitions:  card.Repetitions,
		IntervalDays: card.IntervalDays,
		Easiness:     card.Easiness,
	}, req.Quality)

	card.Repetitions = state.Repetitions
	card.IntervalDays = state.IntervalDays
	card.Easiness = state.Easiness
	card.DueAt = study.NextDue(state, s.now().UTC())

	if err := s.flashcardRepo.UpdateReviewState(ctx, card); err != nil {
		return ReviewFlashcardResponse{}, WrapError(err, "failed to update flashcard")
	}

	// History is secondary to the schedule update; log and continue on failure.
	review := &storage.ReviewRecord{
		ID:           uuid.New().String(),
		FlashcardID:  card.ID,
		UserID:       req.UserID,
		Quality:      req.Quality,
		IntervalDays: card.IntervalDays,
		Easiness:     card.Easiness,
		ReviewedAt:   s.now().UTC(),
	}
	if err := s.reviewRepo.Insert(ctx, review); err != nil {
		logger.WarnContext(ctx, "failed to record review history", "flashcard_id", card.ID, "error", err)
	}

	logger.InfoContext(ctx, "flashcard reviewed",
		"flashcard_id", card.ID, "quality", req.Quality,
		"interval_days", card.IntervalDays, "due_at", card.DueAt)
	return ReviewFlashcardResponse{Card: card}, nil
}

// buildContext loads a document's chunks and returns the top ranked chunk
// contents joined for prompting, verifying document ownership first.
func (s *studyService) buildContext(ctx context.Context, userID, documentID, topic string) (string, *storage.DocumentRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if documentID == "" {
		return "", nil, &ValidationError{Field: "document_id", Message: "cannot be empty"}
	}

	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil, ErrNotFound
		}
		return "", nil, WrapError(err, "failed to load document")
	}
	if doc.UserID != userID {
		return "", nil, ErrNotFound
	}

	records, err := s.chunkRepo.ListByDocument(ctx, doc.ID)
	if err != nil {
		return "", nil, WrapError(err, "failed to load chunks")
	}
	if len(records) == 0 {
		return "", nil, fmt.Errorf("%w: document has no indexed content", ErrInvalidInput)
	}

	chunks := make([]chunker.Chunk, len(records))
	for i, rec := range records {
		chunks[i] = chunker.Chunk{
			Content:    rec.Content,
			ChunkIndex: rec.ChunkIndex,
			PageNumber: rec.PageNumber,
		}
	}

	// With no topic every chunk is fair game; take the head of the document.
	selected := chunks
	if topic != "" {
		ranked := chunker.Rank(chunks, topic, s.topK)
		selected = make([]chunker.Chunk, len(ranked))
		for i, rc := range ranked {
			selected[i] = rc.Chunk
		}
	} else if len(selected) > s.topK {
		selected = selected[:s.topK]
	}

	contents := make([]string, len(selected))
	for i, c := range selected {
		contents[i] = c.Content
	}

	logger.DebugContext(ctx, "study context built",
		"document_id", doc.ID, "total_chunks", len(chunks), "selected", len(selected), "topic", topic)
	return strings.Join(contents, "\n\n"), doc, nil
}

// decodeModelJSON parses a JSON value from an LLM reply, tolerating
// markdown code fences around the payload.
func decodeModelJSON(reply string, v any) error {
	trimmed := strings.TrimSpace(reply)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}
	return json.Unmarshal([]byte(trimmed), v)
}
