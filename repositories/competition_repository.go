package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bamacgabhann/county-competitions/models"
)

var (
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrDivisionNotFound    = errors.New("division not found")
)

type CompetitionRepository interface {
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Competition, error)
	List(ctx context.Context, exec SQLExecutor) ([]*models.Competition, error)
	GetDivision(ctx context.Context, exec SQLExecutor, id int) (*models.Division, error)
	ListDivisions(ctx context.Context, exec SQLExecutor, competitionID int) ([]*models.Division, error)
}

type postgresCompetitionRepository struct {
	db *sql.DB
}

func NewPostgresCompetitionRepository(db *sql.DB) CompetitionRepository {
	return &postgresCompetitionRepository{db: db}
}

func (r *postgresCompetitionRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresCompetitionRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Competition, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, name, grade FROM competitions WHERE id = $1`

	var c models.Competition
	err := executor.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Grade)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompetitionNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresCompetitionRepository) List(ctx context.Context, exec SQLExecutor) ([]*models.Competition, error) {
	executor := r.getExecutor(exec)
	rows, err := executor.QueryContext(ctx, `SELECT id, name, grade FROM competitions ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	competitions := make([]*models.Competition, 0)
	for rows.Next() {
		var c models.Competition
		if err := rows.Scan(&c.ID, &c.Name, &c.Grade); err != nil {
			return nil, err
		}
		competitions = append(competitions, &c)
	}
	return competitions, rows.Err()
}

func (r *postgresCompetitionRepository) GetDivision(ctx context.Context, exec SQLExecutor, id int) (*models.Division, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, name, competition_id FROM divisions WHERE id = $1`

	var d models.Division
	err := executor.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.CompetitionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDivisionNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *postgresCompetitionRepository) ListDivisions(ctx context.Context, exec SQLExecutor, competitionID int) ([]*models.Division, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, name, competition_id FROM divisions WHERE competition_id = $1 ORDER BY id ASC`

	rows, err := executor.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	divisions := make([]*models.Division, 0)
	for rows.Next() {
		var d models.Division
		if err := rows.Scan(&d.ID, &d.Name, &d.CompetitionID); err != nil {
			return nil, err
		}
		divisions = append(divisions, &d)
	}
	return divisions, rows.Err()
}
