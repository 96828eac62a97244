package service

import (
	"context"
	"errors"
	"time"

	"github.com/cinebook/cinema-booking/internal/model"
	"github.com/cinebook/cinema-booking/internal/repository"
)

// MovieService implements movie CRUD with title uniqueness.
type MovieService struct {
	movies MovieStore
}

// NewMovieService constructs a MovieService.
func NewMovieService(movies MovieStore) *MovieService {
	return &MovieService{movies: movies}
}

// CreateMovieInput is the validated payload for creating a movie.
type CreateMovieInput struct {
	Title       string
	Genre       string
	Director    string
	ReleaseDate time.Time
}

// Create adds a movie, rejecting duplicate titles.
func (s *MovieService) Create(ctx context.Context, in CreateMovieInput) (*model.Movie, error) {
	if _, err := s.movies.FindByTitle(ctx, in.Title); err == nil {
		return nil, ErrDuplicateTitle
	} else if !errors.Is(err, repository.ErrMovieNotFound) {
		return nil, err
	}
	m := model.NewMovie(in.Title, in.Genre, in.Director, in.ReleaseDate)
	if err := s.movies.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	return m, nil
}

// Get returns a movie by id.
func (s *MovieService) Get(ctx context.Context, id string) (*model.Movie, error) {
	return s.movies.FindByID(ctx, id)
}

// Update applies a partial update.  A title change re-runs the uniqueness
// check against other movies.
func (s *MovieService) Update(ctx context.Context, id string, patch model.MoviePatch) (*model.Movie, error) {
	cur, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil && *patch.Title != cur.Title {
		other, err := s.movies.FindByTitle(ctx, *patch.Title)
		if err == nil && other.ID != id {
			return nil, ErrDuplicateTitle
		}
		if err != nil && !errors.Is(err, repository.ErrMovieNotFound) {
			return nil, err
		}
	}
	updated := cur.Apply(patch)
	if err := s.movies.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateTitle
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a movie after verifying it exists.
func (s *MovieService) Delete(ctx context.Context, id string) error {
	if _, err := s.movies.FindByID(ctx, id); err != nil {
		return err
	}
	return s.movies.Delete(ctx, id)
}

// MoviePage is one page of movies plus the total count.
type MoviePage struct {
	Items []model.Movie
	Total int
	Page  int
	Limit int
}

// List returns movies, active-only by default, paginated in memory the same
// way showtimes are.
func (s *MovieService) List(ctx context.Context, activeOnly bool, page, limit int) (*MoviePage, error) {
	var (
		items []model.Movie
		err   error
	)
	if activeOnly {
		items, err = s.movies.FindActive(ctx)
	} else {
		items, err = s.movies.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	total := len(items)
	start := (page - 1) * limit
	if start < 0 || start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return &MoviePage{Items: items[start:end], Total: total, Page: page, Limit: limit}, nil
}
