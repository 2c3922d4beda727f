package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bamacgabhann/county-competitions/models"
)

type RefereeRepository interface {
	Create(ctx context.Context, exec SQLExecutor, referee *models.Referee) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Referee, error)
	List(ctx context.Context, exec SQLExecutor) ([]*models.Referee, error)
}

type postgresRefereeRepository struct {
	db *sql.DB
}

func NewPostgresRefereeRepository(db *sql.DB) RefereeRepository {
	return &postgresRefereeRepository{db: db}
}

func (r *postgresRefereeRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresRefereeRepository) Create(ctx context.Context, exec SQLExecutor, referee *models.Referee) error {
	executor := r.getExecutor(exec)
	query := `INSERT INTO referees (name, club_id) VALUES ($1, $2) RETURNING id`
	return executor.QueryRowContext(ctx, query, referee.Name, referee.ClubID).Scan(&referee.ID)
}

func (r *postgresRefereeRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Referee, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, name, club_id FROM referees WHERE id = $1`

	var ref models.Referee
	err := executor.QueryRowContext(ctx, query, id).Scan(&ref.ID, &ref.Name, &ref.ClubID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRefereeNotFound
		}
		return nil, err
	}
	return &ref, nil
}

func (r *postgresRefereeRepository) List(ctx context.Context, exec SQLExecutor) ([]*models.Referee, error) {
	executor := r.getExecutor(exec)
	rows, err := executor.QueryContext(ctx, `SELECT id, name, club_id FROM referees ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	referees := make([]*models.Referee, 0)
	for rows.Next() {
		var ref models.Referee
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.ClubID); err != nil {
			return nil, err
		}
		referees = append(referees, &ref)
	}
	return referees, rows.Err()
}
