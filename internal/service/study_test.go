package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"studydeck/internal/service"
	"studydeck/internal/service/mocks"
	"studydeck/internal/storage"
	storagemocks "studydeck/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type studyMocks struct {
	docs       *storagemocks.MockDocumentStore
	chunks     *storagemocks.MockChunkStore
	flashcards *storagemocks.MockFlashcardStore
	quizzes    *storagemocks.MockQuizStore
	reviews    *storagemocks.MockReviewStore
	llm        *mocks.MockCompletionClient
}

func newStudyService(t *testing.T) (service.StudyService, studyMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := studyMocks{
		docs:       storagemocks.NewMockDocumentStore(ctrl),
		chunks:     storagemocks.NewMockChunkStore(ctrl),
		flashcards: storagemocks.NewMockFlashcardStore(ctrl),
		quizzes:    storagemocks.NewMockQuizStore(ctrl),
		reviews:    storagemocks.NewMockReviewStore(ctrl),
		llm:        mocks.NewMockCompletionClient(ctrl),
	}
	svc := service.NewStudyService(m.docs, m.chunks, m.flashcards, m.quizzes, m.reviews, m.llm, 3)
	return svc, m
}

func testDocument() *storage.DocumentRecord {
	return &storage.DocumentRecord{
		ID:       "doc-1",
		UserID:   "user-1",
		Filename: "biology.md",
		Title:    "biology",
	}
}

func testChunks() []*storage.ChunkRecord {
	return []*storage.ChunkRecord{
		{ID: "c-0", DocumentID: "doc-1", ChunkIndex: 0, Content: "Photosynthesis converts light into chemical energy."},
		{ID: "c-1", DocumentID: "doc-1", ChunkIndex: 1, Content: "Mitochondria produce ATP through respiration."},
	}
}

func TestStudyService_GenerateFlashcards(t *testing.T) {
	svc, m := newStudyService(t)

	m.docs.EXPECT().GetByID(gomock.Any(), "doc-1").Return(testDocument(), nil)
	m.chunks.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(testChunks(), nil)
	m.llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`[{"question": "What does photosynthesis produce?", "answer": "Chemical energy"},
			{"question": "What do mitochondria produce?", "answer": "ATP"}]`, nil)
	m.flashcards.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	cards, err := svc.GenerateFlashcards(context.Background(), service.GenerateFlashcardsRequest{
		UserID:     "user-1",
		DocumentID: "doc-1",
		Count:      2,
	})
	if err != nil {
		t.Fatalf("GenerateFlashcards() error = %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("GenerateFlashcards() returned %d cards, want 2", len(cards))
	}

	card := cards[0]
	if card.ID == "" {
		t.Error("card ID should be assigned")
	}
	if card.DocumentID != "doc-1" || card.UserID != "user-1" {
		t.Errorf("card ownership = (%s, %s), want (doc-1, user-1)", card.DocumentID, card.UserID)
	}
	if card.Repetitions != 0 || card.IntervalDays != 0 {
		t.Errorf("new card should start unscheduled, got reps=%d interval=%d", card.Repetitions, card.IntervalDays)
	}
	if card.Easiness != 2.5 {
		t.Errorf("new card easiness = %v, want 2.5", card.Easiness)
	}
	if card.DueAt.IsZero() {
		t.Error("new card should be due immediately, got zero DueAt")
	}
}

func TestStudyService_GenerateFlashcards_CodeFencedReply(t *testing.T) {
	svc, m := newStudyService(t)

	m.docs.EXPECT().GetByID(gomock.Any(), "doc-1").Return(testDocument(), nil)
	m.chunks.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(testChunks(), nil)
	m.llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("```json\n[{\"question\": \"Q\", \"answer\": \"A\"}]\n```", nil)
	m.flashcards.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	cards, err := svc.GenerateFlashcards(context.Background(), service.GenerateFlashcardsRequest{
		UserID:     "user-1",
		DocumentID: "doc-1",
	})
	if err != nil {
		t.Fatalf("GenerateFlashcards() error = %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("GenerateFlashcards() returned %d cards, want 1", len(cards))
	}
}

func TestStudyService_GenerateFlashcards_Errors(t *testing.T) {
	tests := []struct {
		name      string
		req       service.GenerateFlashcardsRequest
		mockSetup func(m studyMocks)
		wantErr   error
	}{
		{
			name: "empty document ID",
			req:  service.GenerateFlashcardsRequest{UserID: "user-1"},
			mockSetup: func(m studyMocks) {
				// No calls expected
			},
		},
		{
			name: "document not found",
			req:  service.GenerateFlashcardsRequest{UserID: "user-1", DocumentID: "missing"},
			mockSetup: func(m studyMocks) {
				m.docs.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)
			},
			wantErr: service.ErrNotFound,
		},
		{
			name: "document owned by another user",
			req:  service.GenerateFlashcardsRequest{UserID: "user-2", DocumentID: "doc-1"},
			mockSetup: func(m studyMocks) {
				m.docs.EXPECT().GetByID(gomock.Any(), "doc-1").Return(testDocument(), nil)
			},
			wantErr: service.ErrNotFound,
		},
		{
			name: "document has no chunks",
			req:  service.GenerateFlashcardsRequest{UserID: "user-1", DocumentID: "doc-1"},
			mockSetup: func(m studyMocks) {
				m.docs.EXPECT().GetByID(gomock.Any(), "doc-1").Return(testDocument(), nil)
				m.chunks.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(nil, nil)
			},
			wantErr: service.ErrInvalidInput,
		},
		{
			name: "LLM failure",
			req:  service.GenerateFlashcardsRequest{UserID: "user-1", DocumentID: "doc-1"},
			mockSetup: func(m studyMocks) {
				m.docs.EXPECT().GetByID(gomock.Any(), "doc-1").Return(testDocument(), nil)
				m.chunks.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(testChunks(), nil)
				m.llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("connection refused"))
			},
			wantErr: service.ErrExternalService,
		},
		{
			name: "malformed model reply",
			req:  service.GenerateFlashcardsRequest{UserID: "user-1", DocumentID: "doc-1"},
			mockSetup: func(m studyMocks) {
				m.docs.EXPECT().GetByID(gomock.Any(), "doc-1").Return(testDocument(), nil)
				m.chunks.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(testChunks(), nil)
				m.llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("Sorry, I cannot do that.", nil)
			},
			wantErr: service.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newStudyService(t)
			tt.mockSetup(m)

			_, err := svc.GenerateFlashcards(context.Background(), tt.req)
			if err == nil {
				t.Fatal("GenerateFlashcards() expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("GenerateFlashcards() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStudyService_GenerateFlashcards_TopicRanking(t *testing.T) {
	svc, m := newStudyService(t)

	var gotPrompt string
	m.docs.EXPECT().GetByID(gomock.Any(), "doc-1").Return(testDocument(), nil)
	m.chunks.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(testChunks(), nil)
	m.llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, system, user string) (string, error) {
			gotPrompt = user
			return `[{"question": "Q", "answer": "A"}]`, nil
		})
	m.flashcards.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.GenerateFlashcards(context.Background(), service.GenerateFlashcardsRequest{
		UserID:     "user-1",
		DocumentID: "doc-1",
		Topic:      "photosynthesis",
	})
	if err != nil {
		t.Fatalf("GenerateFlashcards() error = %v", err)
	}

	// Only the matching chunk should make it into the prompt material.
	if !strings.Contains(gotPrompt, "Photosynthesis converts light") {
		t.Errorf("prompt should contain the photosynthesis chunk, got: %s", gotPrompt)
	}
	if strings.Contains(gotPrompt, "Mitochondria") {
		t.Errorf("prompt should not contain the unrelated chunk, got: %s", gotPrompt)
	}
}

func TestStudyService_GenerateQuiz(t *testing.T) {
	svc, m := newStudyService(t)

	m.docs.EXPECT().GetByID(gomock.Any(), "doc-1").Return(testDocument(), nil)
	m.chunks.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(testChunks(), nil)
	m.llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`[
			{"question": "What produces ATP?", "options": ["Mitochondria", "Ribosomes", "Nucleus", "Golgi"], "answer_index": 0, "explanation": "Respiration happens in mitochondria."},
			{"question": "bad index", "options": ["a", "b"], "answer_index": 5},
			{"question": "", "options": ["a", "b"], "answer_index": 0}
		]`, nil)

	var stored *storage.QuizRecord
	m.quizzes.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, quiz *storage.QuizRecord) error {
			stored = quiz
			return nil
		})

	quiz, err := svc.GenerateQuiz(context.Background(), service.GenerateQuizRequest{
		UserID:     "user-1",
		DocumentID: "doc-1",
		Topic:      "energy",
	})
	if err != nil {
		t.Fatalf("GenerateQuiz() error = %v", err)
	}

	// Malformed questions are dropped, not stored.
	if len(quiz.Questions) != 1 {
		t.Fatalf("GenerateQuiz() stored %d questions, want 1", len(quiz.Questions))
	}
	q := quiz.Questions[0]
	if q.QuestionIndex != 0 {
		t.Errorf("question index = %d, want 0", q.QuestionIndex)
	}
	if q.AnswerIndex != 0 || len(q.Options) != 4 {
		t.Errorf("question options/answer = %v/%d, want 4 options answer 0", q.Options, q.AnswerIndex)
	}
	if stored != quiz {
		t.Error("returned quiz should be the stored record")
	}
	if quiz.Topic != "energy" {
		t.Errorf("quiz topic = %q, want energy", quiz.Topic)
	}
}

func TestStudyService_GenerateQuiz_AllQuestionsInvalid(t *testing.T) {
	svc, m := newStudyService(t)

	m.docs.EXPECT().GetByID(gomock.Any(), "doc-1").Return(testDocument(), nil)
	m.chunks.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(testChunks(), nil)
	m.llm.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`[{"question": "Q", "options": ["only one"], "answer_index": 0}]`, nil)

	_, err := svc.GenerateQuiz(context.Background(), service.GenerateQuizRequest{
		UserID:     "user-1",
		DocumentID: "doc-1",
	})
	if !errors.Is(err, service.ErrExternalService) {
		t.Errorf("GenerateQuiz() error = %v, want ErrExternalService", err)
	}
}

func TestStudyService_ReviewFlashcard(t *testing.T) {
	svc, m := newStudyService(t)

	card := &storage.FlashcardRecord{
		ID:           "card-1",
		DocumentID:   "doc-1",
		UserID:       "user-1",
		Question:     "Q",
		Answer:       "A",
		Repetitions:  1,
		IntervalDays: 1,
		Easiness:     2.5,
	}
	m.flashcards.EXPECT().GetByID(gomock.Any(), "card-1").Return(card, nil)
	m.flashcards.EXPECT().UpdateReviewState(gomock.Any(), card).Return(nil)

	var recorded *storage.ReviewRecord
	m.reviews.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, review *storage.ReviewRecord) error {
			recorded = review
			return nil
		})

	resp, err := svc.ReviewFlashcard(context.Background(), service.ReviewFlashcardRequest{
		UserID:      "user-1",
		FlashcardID: "card-1",
		Quality:     4,
	})
	if err != nil {
		t.Fatalf("ReviewFlashcard() error = %v", err)
	}

	got := resp.Card
	if got.Repetitions != 2 {
		t.Errorf("repetitions = %d, want 2", got.Repetitions)
	}
	if got.IntervalDays != 6 {
		t.Errorf("interval = %d, want 6", got.IntervalDays)
	}
	if got.DueAt.IsZero() {
		t.Error("DueAt should be set after review")
	}
	wantDue := time.Now().UTC().AddDate(0, 0, 6)
	if diff := got.DueAt.Sub(wantDue); diff < -time.Minute || diff > time.Minute {
		t.Errorf("DueAt = %v, want about %v", got.DueAt, wantDue)
	}

	if recorded == nil {
		t.Fatal("review history record was not inserted")
	}
	if recorded.FlashcardID != "card-1" || recorded.UserID != "user-1" {
		t.Errorf("review record ownership = (%s, %s), want (card-1, user-1)", recorded.FlashcardID, recorded.UserID)
	}
	if recorded.Quality != 4 || recorded.IntervalDays != 6 {
		t.Errorf("review record quality/interval = %d/%d, want 4/6", recorded.Quality, recorded.IntervalDays)
	}
}

func TestStudyService_ReviewFlashcard_Errors(t *testing.T) {
	tests := []struct {
		name         string
		req          service.ReviewFlashcardRequest
		mockSetup    func(m studyMocks)
		wantErr      error
		checkErrType func(error) bool
	}{
		{
			name: "quality out of range",
			req:  service.ReviewFlashcardRequest{UserID: "user-1", FlashcardID: "card-1", Quality: 6},
			mockSetup: func(m studyMocks) {
				// No calls expected
			},
			checkErrType: func(err error) bool {
				var validationErr *service.ValidationError
				return errors.As(err, &validationErr) && validationErr.Field == "quality"
			},
		},
		{
			name: "card not found",
			req:  service.ReviewFlashcardRequest{UserID: "user-1", FlashcardID: "missing", Quality: 3},
			mockSetup: func(m studyMocks) {
				m.flashcards.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, storage.ErrNotFound)
			},
			wantErr: service.ErrNotFound,
		},
		{
			name: "card owned by another user",
			req:  service.ReviewFlashcardRequest{UserID: "user-2", FlashcardID: "card-1", Quality: 3},
			mockSetup: func(m studyMocks) {
				m.flashcards.EXPECT().GetByID(gomock.Any(), "card-1").
					Return(&storage.FlashcardRecord{ID: "card-1", UserID: "user-1"}, nil)
			},
			wantErr: service.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newStudyService(t)
			tt.mockSetup(m)

			_, err := svc.ReviewFlashcard(context.Background(), tt.req)
			if err == nil {
				t.Fatal("ReviewFlashcard() expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ReviewFlashcard() error = %v, want %v", err, tt.wantErr)
			}
			if tt.checkErrType != nil && !tt.checkErrType(err) {
				t.Errorf("ReviewFlashcard() error type mismatch: %v", err)
			}
		})
	}
}

