package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bamacgabhann/county-competitions/models"
)

type VenueRepository interface {
	Create(ctx context.Context, exec SQLExecutor, venue *models.Venue) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Venue, error)
	List(ctx context.Context, exec SQLExecutor) ([]*models.Venue, error)
}

type postgresVenueRepository struct {
	db *sql.DB
}

func NewPostgresVenueRepository(db *sql.DB) VenueRepository {
	return &postgresVenueRepository{db: db}
}

func (r *postgresVenueRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresVenueRepository) Create(ctx context.Context, exec SQLExecutor, venue *models.Venue) error {
	executor := r.getExecutor(exec)
	query := `INSERT INTO venues (name, club_id, address) VALUES ($1, $2, $3) RETURNING id`
	return executor.QueryRowContext(ctx, query, venue.Name, venue.ClubID, venue.Address).Scan(&venue.ID)
}

func (r *postgresVenueRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Venue, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, name, club_id, address FROM venues WHERE id = $1`

	var v models.Venue
	err := executor.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Name, &v.ClubID, &v.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *postgresVenueRepository) List(ctx context.Context, exec SQLExecutor) ([]*models.Venue, error) {
	executor := r.getExecutor(exec)
	rows, err := executor.QueryContext(ctx, `SELECT id, name, club_id, address FROM venues ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]*models.Venue, 0)
	for rows.Next() {
		var v models.Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.ClubID, &v.Address); err != nil {
			return nil, err
		}
		venues = append(venues, &v)
	}
	return venues, rows.Err()
}
