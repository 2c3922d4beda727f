package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/bamacgabhann/county-competitions/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error)
	ListByGroup(ctx context.Context, exec SQLExecutor, groupID int) ([]*models.Match, error)
	ListByDivision(ctx context.Context, exec SQLExecutor, divisionID int, stage *models.Stage) ([]*models.Match, error)
	ListByDate(ctx context.Context, exec SQLExecutor, date time.Time) ([]*models.Match, error)
	// UpdateResult persists the score fields, walkover flag and winner.
	UpdateResult(ctx context.Context, exec SQLExecutor, match *models.Match) error
	// UpdateTeamSlots fills resolved knockout home/away slots.
	UpdateTeamSlots(ctx context.Context, exec SQLExecutor, id int, homeTeamID, awayTeamID *int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const matchColumns = `
	id, home_team_id, away_team_id, venue_id, referee_id,
	competition_id, division_id, group_id, stage, round, match_no, date,
	home_goals, home_points, away_goals, away_points,
	walkover, winner_id, home_team_criteria_id, away_team_criteria_id`

func (r *postgresMatchRepository) scanMatch(rowScanner interface{ Scan(...interface{}) error }) (*models.Match, error) {
	var m models.Match
	err := rowScanner.Scan(
		&m.ID, &m.HomeTeamID, &m.AwayTeamID, &m.VenueID, &m.RefereeID,
		&m.CompetitionID, &m.DivisionID, &m.GroupID, &m.Stage, &m.Round, &m.MatchNo, &m.Date,
		&m.HomeGoals, &m.HomePoints, &m.AwayGoals, &m.AwayPoints,
		&m.Walkover, &m.WinnerID, &m.HomeTeamCriteriaID, &m.AwayTeamCriteriaID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO matches
			(home_team_id, away_team_id, venue_id, referee_id,
			 competition_id, division_id, group_id, stage, round, match_no, date,
			 home_team_criteria_id, away_team_criteria_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	return executor.QueryRowContext(ctx, query,
		match.HomeTeamID, match.AwayTeamID, match.VenueID, match.RefereeID,
		match.CompetitionID, match.DivisionID, match.GroupID, match.Stage, match.Round, match.MatchNo, match.Date,
		match.HomeTeamCriteriaID, match.AwayTeamCriteriaID,
	).Scan(&match.ID)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	return r.scanMatch(executor.QueryRowContext(ctx, query, id))
}

func (r *postgresMatchRepository) ListByGroup(ctx context.Context, exec SQLExecutor, groupID int) ([]*models.Match, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + matchColumns + ` FROM matches WHERE group_id = $1 ORDER BY match_no ASC`
	return r.queryMatches(ctx, executor, query, groupID)
}

func (r *postgresMatchRepository) ListByDivision(ctx context.Context, exec SQLExecutor, divisionID int, stage *models.Stage) ([]*models.Match, error) {
	executor := r.getExecutor(exec)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + matchColumns + ` FROM matches WHERE division_id = $1`)
	args := []interface{}{divisionID}
	if stage != nil {
		queryBuilder.WriteString(` AND stage = $2`)
		args = append(args, *stage)
	}
	queryBuilder.WriteString(` ORDER BY match_no ASC`)

	return r.queryMatches(ctx, executor, queryBuilder.String(), args...)
}

func (r *postgresMatchRepository) ListByDate(ctx context.Context, exec SQLExecutor, date time.Time) ([]*models.Match, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + matchColumns + ` FROM matches WHERE date::date = $1::date ORDER BY date ASC, match_no ASC`
	return r.queryMatches(ctx, executor, query, date)
}

func (r *postgresMatchRepository) queryMatches(ctx context.Context, executor SQLExecutor, query string, args ...interface{}) ([]*models.Match, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		m, errScan := r.scanMatch(rows)
		if errScan != nil {
			return nil, errScan
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) UpdateResult(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE matches SET
			home_goals = $1, home_points = $2, away_goals = $3, away_points = $4,
			walkover = $5, winner_id = $6
		WHERE id = $7`
	result, err := executor.ExecContext(ctx, query,
		match.HomeGoals, match.HomePoints, match.AwayGoals, match.AwayPoints,
		match.Walkover, match.WinnerID, match.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateTeamSlots(ctx context.Context, exec SQLExecutor, id int, homeTeamID, awayTeamID *int) error {
	executor := r.getExecutor(exec)
	query := `UPDATE matches SET home_team_id = $1, away_team_id = $2 WHERE id = $3`
	result, err := executor.ExecContext(ctx, query, homeTeamID, awayTeamID, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}
