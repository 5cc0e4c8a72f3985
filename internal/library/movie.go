package library

import (
	"fmt"
	"strings"
)

// Rating and year bounds accepted for stored records and filter input.
const (
	MinRating = 0.0
	MaxRating = 10.0
	MinYear   = 1800
	MaxYear   = 2100
)

// Movie is a single entry in the collection. Title is the unique key.
type Movie struct {
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Rating    float64 `json:"rating"`
	PosterURL string  `json:"poster_url"`
}

// Key returns the canonical lookup key for a title.
func Key(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// ValidateRating ensures a rating falls within the accepted range.
func ValidateRating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("%w: rating %.1f must be between %.1f and %.1f", ErrValidation, rating, MinRating, MaxRating)
	}
	return nil
}

// ValidateYear ensures a year falls within the accepted range.
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: year %d must be between %d and %d", ErrValidation, year, MinYear, MaxYear)
	}
	return nil
}

// Validate checks a complete record before it enters the library.
func (m Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	return ValidateRating(m.Rating)
}
