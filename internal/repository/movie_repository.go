package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/cinebook/cinema-booking/internal/model"
)

const mysqlDupEntry = 1062

// isDuplicate reports whether err is a MySQL unique-constraint violation.
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDupEntry
}

// MovieRepo manages persistence for movies.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

const movieCols = `id, title, genre, director, release_date, is_active, created_at, updated_at`

func scanMovie(row interface{ Scan(...any) error }, m *model.Movie) error {
	return row.Scan(&m.ID, &m.Title, &m.Genre, &m.Director, &m.ReleaseDate, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
}

// Create inserts a new movie.  A duplicate title yields ErrDuplicate.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	const q = `INSERT INTO movies (` + movieCols + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, m.ID, m.Title, m.Genre, m.Director, m.ReleaseDate, m.IsActive, m.CreatedAt, m.UpdatedAt)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

// FindByID retrieves a movie by ID.  Returns ErrMovieNotFound when absent.
func (r *MovieRepo) FindByID(ctx context.Context, id string) (*model.Movie, error) {
	const q = `SELECT ` + movieCols + ` FROM movies WHERE id = ?`
	var m model.Movie
	if err := scanMovie(r.db.QueryRowContext(ctx, q, id), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByTitle retrieves a movie by its exact title.  Returns
// ErrMovieNotFound when absent.
func (r *MovieRepo) FindByTitle(ctx context.Context, title string) (*model.Movie, error) {
	const q = `SELECT ` + movieCols + ` FROM movies WHERE title = ?`
	var m model.Movie
	if err := scanMovie(r.db.QueryRowContext(ctx, q, title), &m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindAll returns every movie ordered by title.
func (r *MovieRepo) FindAll(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT ` + movieCols + ` FROM movies ORDER BY title ASC`
	return r.list(ctx, q)
}

// FindActive returns movies with is_active set, ordered by title.
func (r *MovieRepo) FindActive(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT ` + movieCols + ` FROM movies WHERE is_active = TRUE ORDER BY title ASC`
	return r.list(ctx, q)
}

func (r *MovieRepo) list(ctx context.Context, q string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Movie
	for rows.Next() {
		var m model.Movie
		if err := scanMovie(rows, &m); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

// Update overwrites a movie's mutable columns.  Returns ErrMovieNotFound
// when the row does not exist and ErrDuplicate when the new title is taken.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie) error {
	const q = `UPDATE movies SET title = ?, genre = ?, director = ?, release_date = ?, is_active = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.Title, m.Genre, m.Director, m.ReleaseDate, m.IsActive, m.UpdatedAt, m.ID)
	if isDuplicate(err) {
		return ErrDuplicate
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also zero for value-identical updates; confirm the
		// row exists before reporting not-found.
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM movies WHERE id = ?`, m.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrMovieNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a movie row.  Returns ErrMovieNotFound when absent.
func (r *MovieRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
