package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bamacgabhann/county-competitions/models"
)

var (
	ErrClubNotFound    = errors.New("club not found")
	ErrVenueNotFound   = errors.New("venue not found")
	ErrRefereeNotFound = errors.New("referee not found")
)

type ClubRepository interface {
	Create(ctx context.Context, exec SQLExecutor, club *models.Club) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Club, error)
	List(ctx context.Context, exec SQLExecutor) ([]*models.Club, error)
	UpdateCrestKey(ctx context.Context, exec SQLExecutor, id int, crestKey *string) error
}

type postgresClubRepository struct {
	db *sql.DB
}

func NewPostgresClubRepository(db *sql.DB) ClubRepository {
	return &postgresClubRepository{db: db}
}

func (r *postgresClubRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresClubRepository) Create(ctx context.Context, exec SQLExecutor, club *models.Club) error {
	executor := r.getExecutor(exec)
	query := `INSERT INTO clubs (name, ainm) VALUES ($1, $2) RETURNING id`
	return executor.QueryRowContext(ctx, query, club.Name, club.Ainm).Scan(&club.ID)
}

func (r *postgresClubRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Club, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, name, ainm, crest_key FROM clubs WHERE id = $1`

	var c models.Club
	err := executor.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Ainm, &c.CrestKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresClubRepository) List(ctx context.Context, exec SQLExecutor) ([]*models.Club, error) {
	executor := r.getExecutor(exec)
	rows, err := executor.QueryContext(ctx, `SELECT id, name, ainm, crest_key FROM clubs ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := make([]*models.Club, 0)
	for rows.Next() {
		var c models.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Ainm, &c.CrestKey); err != nil {
			return nil, err
		}
		clubs = append(clubs, &c)
	}
	return clubs, rows.Err()
}

func (r *postgresClubRepository) UpdateCrestKey(ctx context.Context, exec SQLExecutor, id int, crestKey *string) error {
	executor := r.getExecutor(exec)
	result, err := executor.ExecContext(ctx, `UPDATE clubs SET crest_key = $1 WHERE id = $2`, crestKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrClubNotFound)
}
