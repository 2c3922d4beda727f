package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bamacgabhann/county-competitions/models"
)

var ErrGroupNotFound = errors.New("group not found")

type GroupRepository interface {
	Create(ctx context.Context, exec SQLExecutor, group *models.Group) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Group, error)
	ListByDivision(ctx context.Context, exec SQLExecutor, divisionID int) ([]*models.Group, error)
}

type postgresGroupRepository struct {
	db *sql.DB
}

func NewPostgresGroupRepository(db *sql.DB) GroupRepository {
	return &postgresGroupRepository{db: db}
}

func (r *postgresGroupRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresGroupRepository) Create(ctx context.Context, exec SQLExecutor, group *models.Group) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO groups (name, competition_id, division_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	return executor.QueryRowContext(ctx, query, group.Name, group.CompetitionID, group.DivisionID).Scan(&group.ID)
}

func (r *postgresGroupRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Group, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, name, competition_id, division_id FROM groups WHERE id = $1`

	var g models.Group
	err := executor.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.CompetitionID, &g.DivisionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *postgresGroupRepository) ListByDivision(ctx context.Context, exec SQLExecutor, divisionID int) ([]*models.Group, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, name, competition_id, division_id FROM groups WHERE division_id = $1 ORDER BY id ASC`

	rows, err := executor.QueryContext(ctx, query, divisionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*models.Group, 0)
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.CompetitionID, &g.DivisionID); err != nil {
			return nil, err
		}
		groups = append(groups, &g)
	}
	return groups, rows.Err()
}
