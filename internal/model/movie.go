package model

import (
	"time"

	"github.com/google/uuid"
)

// Movie is a film that can be scheduled into showtimes.  Titles are unique
// across active and inactive movies.
type Movie struct {
	ID          string    // movies.id (UUID)
	Title       string    // movies.title (unique)
	Genre       string    // movies.genre
	Director    string    // movies.director
	ReleaseDate time.Time // movies.release_date
	IsActive    bool      // movies.is_active
	CreatedAt   time.Time // movies.created_at
	UpdatedAt   time.Time // movies.updated_at
}

// NewMovie stamps identity and audit timestamps on a fresh movie.
func NewMovie(title, genre, director string, releaseDate time.Time) *Movie {
	now := time.Now().UTC()
	return &Movie{
		ID:          uuid.NewString(),
		Title:       title,
		Genre:       genre,
		Director:    director,
		ReleaseDate: releaseDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MoviePatch carries the optional fields of a movie update.
type MoviePatch struct {
	Title       *string
	Genre       *string
	Director    *string
	ReleaseDate *time.Time
}

// Apply returns a new movie with patched fields set, unaffected fields
// copied and UpdatedAt refreshed.
func (m *Movie) Apply(p MoviePatch) *Movie {
	out := *m
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Genre != nil {
		out.Genre = *p.Genre
	}
	if p.Director != nil {
		out.Director = *p.Director
	}
	if p.ReleaseDate != nil {
		out.ReleaseDate = *p.ReleaseDate
	}
	out.UpdatedAt = time.Now().UTC()
	return &out
}
