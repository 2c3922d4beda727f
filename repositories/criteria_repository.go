package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bamacgabhann/county-competitions/models"
)

var ErrCriteriaNotFound = errors.New("criteria not found")

type CriteriaRepository interface {
	Create(ctx context.Context, exec SQLExecutor, criteria *models.Criteria) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Criteria, error)
	ListByDivision(ctx context.Context, exec SQLExecutor, divisionID int) ([]*models.Criteria, error)
}

type postgresCriteriaRepository struct {
	db *sql.DB
}

func NewPostgresCriteriaRepository(db *sql.DB) CriteriaRepository {
	return &postgresCriteriaRepository{db: db}
}

func (r *postgresCriteriaRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresCriteriaRepository) Create(ctx context.Context, exec SQLExecutor, criteria *models.Criteria) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO criteria (division_id, kind, group_id, position, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	return executor.QueryRowContext(ctx, query,
		criteria.DivisionID, criteria.Kind, criteria.GroupID, criteria.Position, criteria.Description,
	).Scan(&criteria.ID)
}

func (r *postgresCriteriaRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Criteria, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, division_id, kind, group_id, position, description FROM criteria WHERE id = $1`

	var c models.Criteria
	err := executor.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.DivisionID, &c.Kind, &c.GroupID, &c.Position, &c.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCriteriaNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresCriteriaRepository) ListByDivision(ctx context.Context, exec SQLExecutor, divisionID int) ([]*models.Criteria, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, division_id, kind, group_id, position, description FROM criteria WHERE division_id = $1 ORDER BY id ASC`

	rows, err := executor.QueryContext(ctx, query, divisionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	criteria := make([]*models.Criteria, 0)
	for rows.Next() {
		var c models.Criteria
		if err := rows.Scan(&c.ID, &c.DivisionID, &c.Kind, &c.GroupID, &c.Position, &c.Description); err != nil {
			return nil, err
		}
		criteria = append(criteria, &c)
	}
	return criteria, rows.Err()
}
