package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bamacgabhann/county-competitions/models"
)

var ErrTeamNotFound = errors.New("team not found")

type TeamRepository interface {
	Create(ctx context.Context, exec SQLExecutor, team *models.Team) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Team, error)
	ListByGroup(ctx context.Context, exec SQLExecutor, groupID int) ([]*models.Team, error)
	ListByDivision(ctx context.Context, exec SQLExecutor, divisionID int) ([]*models.Team, error)
	// UpdateStanding persists the counters, adjusted totals, rank and
	// fielded_all flag after a cascade.
	UpdateStanding(ctx context.Context, exec SQLExecutor, team *models.Team) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const teamColumns = `
	id, name, short_name, competition_id, division_id, group_id,
	played, won, drawn, lost, goals_for, points_for, goals_against, points_against,
	goals_for_x_wo, points_for_x_wo, goals_against_x_wo, points_against_x_wo,
	scoring_difference_x_wo, league_rank, fielded_all`

func (r *postgresTeamRepository) scanTeam(rowScanner interface{ Scan(...interface{}) error }) (*models.Team, error) {
	var t models.Team
	err := rowScanner.Scan(
		&t.ID, &t.Name, &t.ShortName, &t.CompetitionID, &t.DivisionID, &t.GroupID,
		&t.Played, &t.Won, &t.Drawn, &t.Lost, &t.GoalsFor, &t.PointsFor, &t.GoalsAgainst, &t.PointsAgainst,
		&t.GoalsForXWO, &t.PointsForXWO, &t.GoalsAgainstXWO, &t.PointsAgainstXWO,
		&t.ScoringDifferenceXWO, &t.LeagueRank, &t.FieldedAll,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresTeamRepository) Create(ctx context.Context, exec SQLExecutor, team *models.Team) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO teams (name, short_name, competition_id, division_id, group_id, fielded_all)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id`
	return executor.QueryRowContext(ctx, query,
		team.Name, team.ShortName, team.CompetitionID, team.DivisionID, team.GroupID,
	).Scan(&team.ID)
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Team, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`
	return r.scanTeam(executor.QueryRowContext(ctx, query, id))
}

func (r *postgresTeamRepository) ListByGroup(ctx context.Context, exec SQLExecutor, groupID int) ([]*models.Team, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + teamColumns + ` FROM teams WHERE group_id = $1 ORDER BY id ASC`
	return r.queryTeams(ctx, executor, query, groupID)
}

func (r *postgresTeamRepository) ListByDivision(ctx context.Context, exec SQLExecutor, divisionID int) ([]*models.Team, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + teamColumns + ` FROM teams WHERE division_id = $1 ORDER BY id ASC`
	return r.queryTeams(ctx, executor, query, divisionID)
}

func (r *postgresTeamRepository) queryTeams(ctx context.Context, executor SQLExecutor, query string, args ...interface{}) ([]*models.Team, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		t, errScan := r.scanTeam(rows)
		if errScan != nil {
			return nil, errScan
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *postgresTeamRepository) UpdateStanding(ctx context.Context, exec SQLExecutor, team *models.Team) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE teams SET
			played = $1, won = $2, drawn = $3, lost = $4,
			goals_for = $5, points_for = $6, goals_against = $7, points_against = $8,
			goals_for_x_wo = $9, points_for_x_wo = $10,
			goals_against_x_wo = $11, points_against_x_wo = $12,
			scoring_difference_x_wo = $13, league_rank = $14, fielded_all = $15
		WHERE id = $16`
	result, err := executor.ExecContext(ctx, query,
		team.Played, team.Won, team.Drawn, team.Lost,
		team.GoalsFor, team.PointsFor, team.GoalsAgainst, team.PointsAgainst,
		team.GoalsForXWO, team.PointsForXWO,
		team.GoalsAgainstXWO, team.PointsAgainstXWO,
		team.ScoringDifferenceXWO, team.LeagueRank, team.FieldedAll,
		team.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}
