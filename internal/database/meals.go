package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dziennik-posilkow/internal/models"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type CreateMealParams struct {
	ID          uuid.UUID
	SessionID   string
	Title       string
	Description string
	Diet        bool
}

func (q *Queries) CreateMeal(ctx context.Context, arg CreateMealParams) (*models.Meal, error) {
	query := `
		INSERT INTO meals (id, session_id, title, description, created_at, diet)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, session_id, title, description, created_at, diet
	`
	now := time.Now()

	row := q.db.QueryRow(ctx, query,
		arg.ID,
		arg.SessionID,
		arg.Title,
		arg.Description,
		now,
		arg.Diet,
	)

	var meal models.Meal
	err := row.Scan(
		&meal.ID,
		&meal.SessionID,
		&meal.Title,
		&meal.Description,
		&meal.CreatedAt,
		&meal.Diet,
	)
	if err != nil {
		return nil, err
	}

	return &meal, nil
}

func (q *Queries) ListMealsBySession(ctx context.Context, sessionID string) ([]models.Meal, error) {
	query := `
		SELECT id, session_id, title, description, created_at, diet
		FROM meals
		WHERE session_id = $1
	`
	rows, err := q.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []models.Meal
	for rows.Next() {
		var meal models.Meal
		err := rows.Scan(
			&meal.ID,
			&meal.SessionID,
			&meal.Title,
			&meal.Description,
			&meal.CreatedAt,
			&meal.Diet,
		)
		if err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if meals == nil {
		return []models.Meal{}, nil
	}

	return meals, nil
}

func (q *Queries) GetMealForSession(ctx context.Context, id uuid.UUID, sessionID string) (*models.Meal, error) {
	query := `
		SELECT id, session_id, title, description, created_at, diet
		FROM meals
		WHERE id = $1 AND session_id = $2
	`
	var meal models.Meal
	err := q.db.QueryRow(ctx, query, id, sessionID).Scan(
		&meal.ID,
		&meal.SessionID,
		&meal.Title,
		&meal.Description,
		&meal.CreatedAt,
		&meal.Diet,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &meal, nil
}

func (q *Queries) MealExistsForSession(ctx context.Context, id uuid.UUID, sessionID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM meals WHERE id = $1 AND session_id = $2)`
	err := q.db.QueryRow(ctx, query, id, sessionID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

type UpdateMealParams struct {
	ID          uuid.UUID
	SessionID   string
	Title       string
	Description string
	Diet        bool
}

// UpdateMeal replaces title, description and diet on the meal matching both
// id and session_id. id, session_id and created_at never change.
func (q *Queries) UpdateMeal(ctx context.Context, arg UpdateMealParams) (bool, error) {
	query := `
		UPDATE meals
		SET title = $1, description = $2, diet = $3
		WHERE id = $4 AND session_id = $5
	`
	res, err := q.db.Exec(ctx, query, arg.Title, arg.Description, arg.Diet, arg.ID, arg.SessionID)
	if err != nil {
		return false, err
	}

	return res.RowsAffected() > 0, nil
}

func (q *Queries) DeleteMeal(ctx context.Context, id uuid.UUID, sessionID string) (bool, error) {
	query := `DELETE FROM meals WHERE id = $1 AND session_id = $2`
	res, err := q.db.Exec(ctx, query, id, sessionID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// GetMealSummary counts one session's meals in a single statement, so the
// three counters always come from the same snapshot.
func (q *Queries) GetMealSummary(ctx context.Context, sessionID string) (*models.MealSummary, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE diet) AS diet,
			COUNT(*) FILTER (WHERE NOT diet) AS non_diet
		FROM meals
		WHERE session_id = $1
	`
	var summary models.MealSummary
	err := q.db.QueryRow(ctx, query, sessionID).Scan(
		&summary.Total,
		&summary.Diet,
		&summary.NonDiet,
	)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
