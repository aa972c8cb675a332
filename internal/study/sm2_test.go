package study

import (
	"math"
	"testing"
	"time"
)

func TestReview_Progression(t *testing.T) {
	s := NewCardState()

	s = Review(s, 5)
	if s.Repetitions != 1 || s.IntervalDays != 1 {
		t.Errorf("first review: reps=%d interval=%d, want 1/1", s.Repetitions, s.IntervalDays)
	}

	s = Review(s, 5)
	if s.Repetitions != 2 || s.IntervalDays != 6 {
		t.Errorf("second review: reps=%d interval=%d, want 2/6", s.Repetitions, s.IntervalDays)
	}

	s = Review(s, 5)
	if s.Repetitions != 3 {
		t.Errorf("third review: reps=%d, want 3", s.Repetitions)
	}
	if s.IntervalDays <= 6 {
		t.Errorf("third review: interval=%d, want > 6", s.IntervalDays)
	}
}

func TestReview_FailureResetsStreak(t *testing.T) {
	s := NewCardState()
	s = Review(s, 5)
	s = Review(s, 5)

	s = Review(s, 1)
	if s.Repetitions != 0 {
		t.Errorf("failed review: reps=%d, want 0", s.Repetitions)
	}
	if s.IntervalDays != 1 {
		t.Errorf("failed review: interval=%d, want 1", s.IntervalDays)
	}
}

func TestReview_EasinessFloor(t *testing.T) {
	s := NewCardState()
	for i := 0; i < 20; i++ {
		s = Review(s, 0)
	}
	if s.Easiness < MinEasiness {
		t.Errorf("easiness=%f dropped below floor %f", s.Easiness, MinEasiness)
	}
	if math.Abs(s.Easiness-MinEasiness) > 1e-9 {
		t.Errorf("easiness=%f, want pinned at floor %f after repeated failures", s.Easiness, MinEasiness)
	}
}

func TestReview_QualityClamped(t *testing.T) {
	tests := []struct {
		name    string
		quality int
	}{
		{name: "below range", quality: -3},
		{name: "above range", quality: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Review(NewCardState(), tt.quality)
			if s.IntervalDays < 1 {
				t.Errorf("interval=%d, want at least 1", s.IntervalDays)
			}
			if s.Easiness < MinEasiness {
				t.Errorf("easiness=%f below floor", s.Easiness)
			}
		})
	}
}

func TestReview_PerfectGradeRaisesEasiness(t *testing.T) {
	s := Review(NewCardState(), 5)
	if s.Easiness <= InitialEasiness {
		t.Errorf("easiness=%f, want above %f after perfect grade", s.Easiness, InitialEasiness)
	}
}

func TestNextDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := CardState{IntervalDays: 6, Easiness: InitialEasiness}

	due := NextDue(s, now)
	want := time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)
	if !due.Equal(want) {
		t.Errorf("NextDue() = %v, want %v", due, want)
	}
}
