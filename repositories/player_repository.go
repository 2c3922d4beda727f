package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bamacgabhann/county-competitions/models"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	Create(ctx context.Context, exec SQLExecutor, player *models.Player) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Player, error)
	CreateParticipation(ctx context.Context, exec SQLExecutor, participation *models.PlayerParticipation) error
	ListParticipationByMatch(ctx context.Context, exec SQLExecutor, matchID int) ([]*models.PlayerParticipation, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresPlayerRepository) Create(ctx context.Context, exec SQLExecutor, player *models.Player) error {
	executor := r.getExecutor(exec)
	query := `INSERT INTO players (name, ainm, club_id) VALUES ($1, $2, $3) RETURNING id`
	return executor.QueryRowContext(ctx, query, player.Name, player.Ainm, player.ClubID).Scan(&player.ID)
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Player, error) {
	executor := r.getExecutor(exec)
	query := `SELECT id, name, ainm, club_id FROM players WHERE id = $1`

	var p models.Player
	err := executor.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Ainm, &p.ClubID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresPlayerRepository) CreateParticipation(ctx context.Context, exec SQLExecutor, participation *models.PlayerParticipation) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO player_participation (match_id, player_id, team_id, started)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	return executor.QueryRowContext(ctx, query,
		participation.MatchID, participation.PlayerID, participation.TeamID, participation.Started,
	).Scan(&participation.ID)
}

func (r *postgresPlayerRepository) ListParticipationByMatch(ctx context.Context, exec SQLExecutor, matchID int) ([]*models.PlayerParticipation, error) {
	executor := r.getExecutor(exec)
	query := `
		SELECT pp.id, pp.match_id, pp.player_id, pp.team_id, pp.started,
		       p.id, p.name, p.ainm, p.club_id
		FROM player_participation pp
		JOIN players p ON p.id = pp.player_id
		WHERE pp.match_id = $1
		ORDER BY pp.team_id ASC, pp.started DESC, p.name ASC`

	rows, err := executor.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participations := make([]*models.PlayerParticipation, 0)
	for rows.Next() {
		var pp models.PlayerParticipation
		var p models.Player
		err := rows.Scan(
			&pp.ID, &pp.MatchID, &pp.PlayerID, &pp.TeamID, &pp.Started,
			&p.ID, &p.Name, &p.Ainm, &p.ClubID,
		)
		if err != nil {
			return nil, err
		}
		pp.Player = &p
		participations = append(participations, &pp)
	}
	return participations, rows.Err()
}
