package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bamacgabhann/county-competitions/models"
	"github.com/bamacgabhann/county-competitions/repositories"
)

// GroupTable is one group's league table, teams in rank order.
type GroupTable struct {
	Group *models.Group  `json:"group"`
	Teams []*models.Team `json:"teams"`
}

// DivisionTable is every table in a division plus its knockout
// fixtures, the payload behind a division standings page.
type DivisionTable struct {
	Division *models.Division `json:"division"`
	Groups   []*GroupTable    `json:"groups"`
	Knockout []*models.Match  `json:"knockout_matches"`
}

// CompetitionSummary pairs a competition with its divisions for the
// top-level navigation view.
type CompetitionSummary struct {
	Competition *models.Competition `json:"competition"`
	Divisions   []*models.Division  `json:"divisions"`
}

type StandingsService interface {
	Competitions(ctx context.Context) ([]*CompetitionSummary, error)
	DivisionTable(ctx context.Context, divisionID int) (*DivisionTable, error)
	GroupTable(ctx context.Context, groupID int) (*GroupTable, error)
	// ResultsByDate returns every match played or scheduled on the
	// given calendar date.
	ResultsByDate(ctx context.Context, date time.Time) ([]*models.Match, error)
	// Fixtures returns the division's unplayed matches.
	Fixtures(ctx context.Context, divisionID int) ([]*models.Match, error)
}

type standingsService struct {
	db              *sql.DB
	competitionRepo repositories.CompetitionRepository
	groupRepo       repositories.GroupRepository
	teamRepo        repositories.TeamRepository
	matchRepo       repositories.MatchRepository
}

func NewStandingsService(
	db *sql.DB,
	competitionRepo repositories.CompetitionRepository,
	groupRepo repositories.GroupRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
) StandingsService {
	return &standingsService{
		db:              db,
		competitionRepo: competitionRepo,
		groupRepo:       groupRepo,
		teamRepo:        teamRepo,
		matchRepo:       matchRepo,
	}
}

func (s *standingsService) Competitions(ctx context.Context) ([]*CompetitionSummary, error) {
	competitions, err := s.competitionRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	summaries := make([]*CompetitionSummary, 0, len(competitions))
	for _, c := range competitions {
		divisions, err := s.competitionRepo.ListDivisions(ctx, nil, c.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list divisions of competition %d: %w", c.ID, err)
		}
		summaries = append(summaries, &CompetitionSummary{Competition: c, Divisions: divisions})
	}
	return summaries, nil
}

func (s *standingsService) DivisionTable(ctx context.Context, divisionID int) (*DivisionTable, error) {
	division, err := s.competitionRepo.GetDivision(ctx, nil, divisionID)
	if err != nil {
		if errors.Is(err, repositories.ErrDivisionNotFound) {
			return nil, fmt.Errorf("%w: division %d", ErrDivisionNotFound, divisionID)
		}
		return nil, err
	}

	table := &DivisionTable{Division: division}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		groups, err := s.groupRepo.ListByDivision(gCtx, nil, divisionID)
		if err != nil {
			return fmt.Errorf("failed to list groups of division %d: %w", divisionID, err)
		}
		tables := make([]*GroupTable, 0, len(groups))
		for _, group := range groups {
			teams, err := s.teamRepo.ListByGroup(gCtx, nil, group.ID)
			if err != nil {
				return fmt.Errorf("failed to list teams of group %d: %w", group.ID, err)
			}
			sortByRank(teams)
			tables = append(tables, &GroupTable{Group: group, Teams: teams})
		}
		table.Groups = tables
		return nil
	})

	g.Go(func() error {
		stage := models.StageKnockout
		knockout, err := s.matchRepo.ListByDivision(gCtx, nil, divisionID, &stage)
		if err != nil {
			return fmt.Errorf("failed to list knockout matches of division %d: %w", divisionID, err)
		}
		table.Knockout = knockout
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *standingsService) GroupTable(ctx context.Context, groupID int) (*GroupTable, error) {
	group, err := s.groupRepo.GetByID(ctx, nil, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, fmt.Errorf("%w: group %d", ErrGroupNotFound, groupID)
		}
		return nil, err
	}

	teams, err := s.teamRepo.ListByGroup(ctx, nil, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams of group %d: %w", groupID, err)
	}
	sortByRank(teams)

	return &GroupTable{Group: group, Teams: teams}, nil
}

func (s *standingsService) ResultsByDate(ctx context.Context, date time.Time) ([]*models.Match, error) {
	return s.matchRepo.ListByDate(ctx, nil, date)
}

func (s *standingsService) Fixtures(ctx context.Context, divisionID int) ([]*models.Match, error) {
	if _, err := s.competitionRepo.GetDivision(ctx, nil, divisionID); err != nil {
		if errors.Is(err, repositories.ErrDivisionNotFound) {
			return nil, fmt.Errorf("%w: division %d", ErrDivisionNotFound, divisionID)
		}
		return nil, err
	}

	matches, err := s.matchRepo.ListByDivision(ctx, nil, divisionID, nil)
	if err != nil {
		return nil, err
	}

	fixtures := make([]*models.Match, 0, len(matches))
	for _, m := range matches {
		if !m.Played() {
			fixtures = append(fixtures, m)
		}
	}
	return fixtures, nil
}
