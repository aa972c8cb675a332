package study

import (
	"math"
	"time"
)

const (
	// InitialEasiness is the SM-2 starting easiness factor for a new card.
	InitialEasiness = 2.5
	// MinEasiness is the floor below which easiness never drops.
	MinEasiness = 1.3
	// MaxQuality is the highest review quality grade.
	MaxQuality = 5
)

// CardState holds the SM-2 scheduling state for a flashcard.
type CardState struct {
	Repetitions  int     // Consecutive successful reviews
	IntervalDays int     // Days until the next review
	Easiness     float64 // Easiness factor (>= MinEasiness)
}

// NewCardState returns the scheduling state for a card that has never been
// reviewed.
func NewCardState() CardState {
	return CardState{Easiness: InitialEasiness}
}

// Review applies one SM-2 review with the given quality grade (0-5) and
// returns the updated state. A grade below 3 resets the repetition streak
// and schedules the card for the next day.
func Review(s CardState, quality int) CardState {
	if quality < 0 {
		quality = 0
	}
	if quality > MaxQuality {
		quality = MaxQuality
	}
	if s.Easiness < MinEasiness {
		s.Easiness = InitialEasiness
	}

	q := float64(quality)
	s.Easiness += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if s.Easiness < MinEasiness {
		s.Easiness = MinEasiness
	}

	if quality < 3 {
		s.Repetitions = 0
		s.IntervalDays = 1
		return s
	}

	s.Repetitions++
	switch s.Repetitions {
	case 1:
		s.IntervalDays = 1
	case 2:
		s.IntervalDays = 6
	default:
		s.IntervalDays = int(math.Round(float64(s.IntervalDays) * s.Easiness))
	}
	return s
}

// NextDue returns the next review time for a state, measured from now.
func NextDue(s CardState, now time.Time) time.Time {
	return now.AddDate(0, 0, s.IntervalDays)
}
