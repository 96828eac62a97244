package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinebook/cinema-booking/internal/model"
	"github.com/cinebook/cinema-booking/internal/repository"
)

func movieInput(title string) CreateMovieInput {
	return CreateMovieInput{
		Title:       title,
		Genre:       "Drama",
		Director:    "Somebody",
		ReleaseDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMovieCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewMovieService(newMockMovieStore())

	m, err := svc.Create(ctx, movieInput("Heat"))
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.True(t, m.IsActive)

	_, err = svc.Create(ctx, movieInput("Heat"))
	assert.ErrorIs(t, err, ErrDuplicateTitle)
}

func TestMovieUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewMovieService(newMockMovieStore())

	heat, err := svc.Create(ctx, movieInput("Heat"))
	require.NoError(t, err)
	ronin, err := svc.Create(ctx, movieInput("Ronin"))
	require.NoError(t, err)

	t.Run("retitling onto an existing title conflicts", func(t *testing.T) {
		title := "Heat"
		_, err := svc.Update(ctx, ronin.ID, model.MoviePatch{Title: &title})
		assert.ErrorIs(t, err, ErrDuplicateTitle)
	})

	t.Run("keeping the same title is fine", func(t *testing.T) {
		title := "Heat"
		genre := "Crime"
		updated, err := svc.Update(ctx, heat.ID, model.MoviePatch{Title: &title, Genre: &genre})
		require.NoError(t, err)
		assert.Equal(t, "Crime", updated.Genre)
	})

	t.Run("unknown movie", func(t *testing.T) {
		_, err := svc.Update(ctx, "nope", model.MoviePatch{})
		assert.ErrorIs(t, err, repository.ErrMovieNotFound)
	})
}

func TestMovieDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewMovieService(newMockMovieStore())

	m, err := svc.Create(ctx, movieInput("Heat"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, m.ID))
	assert.ErrorIs(t, svc.Delete(ctx, m.ID), repository.ErrMovieNotFound)
}

func TestMovieList(t *testing.T) {
	ctx := context.Background()
	store := newMockMovieStore()
	svc := NewMovieService(store)

	a, err := svc.Create(ctx, movieInput("Alien"))
	require.NoError(t, err)
	b, err := svc.Create(ctx, movieInput("Blade Runner"))
	require.NoError(t, err)

	retired := store.movies[b.ID]
	retired.IsActive = false
	store.movies[b.ID] = retired

	page, err := svc.List(ctx, true, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, a.ID, page.Items[0].ID)

	page, err = svc.List(ctx, false, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}
