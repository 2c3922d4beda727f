package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bamacgabhann/county-competitions/models"
	"github.com/bamacgabhann/county-competitions/repositories"
	"github.com/bamacgabhann/county-competitions/standings"
)

// RecordResultInput carries one recorded result. For a walkover the
// score fields stay nil and WinnerID names the awarded side; otherwise
// the four score fields describe the final scoreline (partial scores
// are stored but not aggregated until complete).
type RecordResultInput struct {
	MatchID    int  `json:"match_id"`
	HomeGoals  *int `json:"home_goals,omitempty"`
	HomePoints *int `json:"home_points,omitempty"`
	AwayGoals  *int `json:"away_goals,omitempty"`
	AwayPoints *int `json:"away_points,omitempty"`
	Walkover   bool `json:"walkover"`
	WinnerID   *int `json:"winner_id,omitempty"`
}

// StandingsNotifier receives a notification after a cascade commits.
// Satisfied by *live.Hub.
type StandingsNotifier interface {
	BroadcastStandingsUpdated(divisionID int, payload interface{})
}

type ResultService interface {
	// RecordResult writes one result and runs the full cascade in a
	// single transaction: aggregate, recompute adjusted totals,
	// rerank, resolve knockout slots.
	RecordResult(ctx context.Context, input RecordResultInput) error
	// RecordResults applies a batch of results, one cascade each. Bad
	// rows are logged and skipped; the count of applied rows is
	// returned.
	RecordResults(ctx context.Context, inputs []RecordResultInput) (int, error)
	// RecomputeDivision resets every counter in the division and
	// replays all recorded group results. Safe at any time; the
	// recovery path after manual corrections or a team withdrawal.
	RecomputeDivision(ctx context.Context, divisionID int) error
}

type resultService struct {
	db           *sql.DB
	matchRepo    repositories.MatchRepository
	teamRepo     repositories.TeamRepository
	groupRepo    repositories.GroupRepository
	criteriaRepo repositories.CriteriaRepository
	notifier     StandingsNotifier
	logger       *slog.Logger
}

func NewResultService(
	db *sql.DB,
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
	groupRepo repositories.GroupRepository,
	criteriaRepo repositories.CriteriaRepository,
	notifier StandingsNotifier,
	logger *slog.Logger,
) ResultService {
	return &resultService{
		db:           db,
		matchRepo:    matchRepo,
		teamRepo:     teamRepo,
		groupRepo:    groupRepo,
		criteriaRepo: criteriaRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *resultService) RecordResult(ctx context.Context, input RecordResultInput) error {
	var divisionID int
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		var cascadeErr error
		divisionID, cascadeErr = s.applyResultCascade(ctx, tx, input)
		return cascadeErr
	})
	if err != nil {
		return err
	}

	s.notifyStandingsUpdated(divisionID)
	return nil
}

func (s *resultService) RecordResults(ctx context.Context, inputs []RecordResultInput) (int, error) {
	applied := 0
	for _, input := range inputs {
		if err := s.RecordResult(ctx, input); err != nil {
			s.logger.Warn("skipping result row",
				slog.Int("match_id", input.MatchID),
				slog.Any("error", err))
			continue
		}
		applied++
	}
	return applied, nil
}

// applyResultCascade records the result, aggregates both teams,
// recomputes the group's adjusted totals, reranks, then re-resolves
// the division's knockout slots. All steps run on the same executor so
// the caller's transaction covers the whole cascade.
func (s *resultService) applyResultCascade(ctx context.Context, exec repositories.SQLExecutor, input RecordResultInput) (int, error) {
	match, err := s.matchRepo.GetByID(ctx, exec, input.MatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return 0, fmt.Errorf("%w: match %d", ErrMatchNotFound, input.MatchID)
		}
		return 0, fmt.Errorf("failed to load match %d: %w", input.MatchID, err)
	}

	if input.Walkover {
		if input.WinnerID == nil {
			return 0, ErrWalkoverWinnerRequired
		}
		match.Walkover = true
		match.WinnerID = input.WinnerID
	} else {
		match.Walkover = false
		match.WinnerID = nil
		match.HomeGoals = input.HomeGoals
		match.HomePoints = input.HomePoints
		match.AwayGoals = input.AwayGoals
		match.AwayPoints = input.AwayPoints
	}

	isGroupMatch := match.Stage == models.StageGroup && match.GroupID != nil &&
		match.HomeTeamID != nil && match.AwayTeamID != nil

	if isGroupMatch {
		if err := s.aggregateMatch(ctx, exec, match); err != nil {
			return 0, err
		}
	} else if !match.Walkover && match.HasFullScore() {
		// Knockout results carry a winner but never touch counters.
		home := standings.MatchScore(match.CompetitionID, *match.HomeGoals, *match.HomePoints)
		away := standings.MatchScore(match.CompetitionID, *match.AwayGoals, *match.AwayPoints)
		switch {
		case home > away:
			match.WinnerID = match.HomeTeamID
		case away > home:
			match.WinnerID = match.AwayTeamID
		}
	}

	if err := s.matchRepo.UpdateResult(ctx, exec, match); err != nil {
		return 0, fmt.Errorf("failed to store result for match %d: %w", match.ID, err)
	}

	if isGroupMatch {
		if err := s.recomputeGroup(ctx, exec, match.CompetitionID, *match.GroupID); err != nil {
			return 0, err
		}
	}

	if err := s.resolveKnockout(ctx, exec, match.DivisionID); err != nil {
		return 0, err
	}

	return match.DivisionID, nil
}

// aggregateMatch folds the result into both teams' counters. The
// aggregation step is the one non-idempotent part of the cascade:
// a match must pass through here once only, so corrections go through
// RecomputeDivision rather than a second RecordResult.
func (s *resultService) aggregateMatch(ctx context.Context, exec repositories.SQLExecutor, match *models.Match) error {
	home, err := s.teamRepo.GetByID(ctx, exec, *match.HomeTeamID)
	if err != nil {
		return fmt.Errorf("failed to load home team %d: %w", *match.HomeTeamID, err)
	}
	away, err := s.teamRepo.GetByID(ctx, exec, *match.AwayTeamID)
	if err != nil {
		return fmt.Errorf("failed to load away team %d: %w", *match.AwayTeamID, err)
	}

	if err := standings.ApplyResult(match, home, away); err != nil {
		if errors.Is(err, standings.ErrIncompleteScore) {
			// Partial scoreline: store what was recorded and wait for
			// the rest before the match counts.
			s.logger.Warn("match result incomplete, aggregation skipped",
				slog.Int("match_id", match.ID))
			return nil
		}
		if errors.Is(err, standings.ErrWalkoverWinnerInvalid) {
			return fmt.Errorf("%w: %v", ErrValidationFailed, err)
		}
		return err
	}

	for _, team := range []*models.Team{home, away} {
		if err := s.teamRepo.UpdateStanding(ctx, exec, team); err != nil {
			return fmt.Errorf("failed to store counters for team %d: %w", team.ID, err)
		}
	}
	return nil
}

// recomputeGroup rebuilds the group's exclusion-adjusted totals and
// league ranks from stored state. Idempotent by construction.
func (s *resultService) recomputeGroup(ctx context.Context, exec repositories.SQLExecutor, competitionID, groupID int) error {
	teams, err := s.teamRepo.ListByGroup(ctx, exec, groupID)
	if err != nil {
		return fmt.Errorf("failed to list teams of group %d: %w", groupID, err)
	}
	matches, err := s.matchRepo.ListByGroup(ctx, exec, groupID)
	if err != nil {
		return fmt.Errorf("failed to list matches of group %d: %w", groupID, err)
	}

	standings.RecomputeExclusionAdjusted(competitionID, teams, matches)
	standings.Rerank(teams, matches)

	for _, team := range teams {
		if err := s.teamRepo.UpdateStanding(ctx, exec, team); err != nil {
			return fmt.Errorf("failed to store standing for team %d: %w", team.ID, err)
		}
	}
	return nil
}

// resolveKnockout re-evaluates the selection criteria of every
// knockout fixture in the division. Unresolvable criteria are logged
// and their slots left alone; they get another chance on the next
// cascade.
func (s *resultService) resolveKnockout(ctx context.Context, exec repositories.SQLExecutor, divisionID int) error {
	stage := models.StageKnockout
	matches, err := s.matchRepo.ListByDivision(ctx, exec, divisionID, &stage)
	if err != nil {
		return fmt.Errorf("failed to list knockout matches of division %d: %w", divisionID, err)
	}

	pending := matches[:0]
	for _, m := range matches {
		if m.HomeTeamCriteriaID != nil || m.AwayTeamCriteriaID != nil {
			pending = append(pending, m)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	snapshot, err := s.divisionStandings(ctx, exec, divisionID)
	if err != nil {
		return err
	}

	criteriaRows, err := s.criteriaRepo.ListByDivision(ctx, exec, divisionID)
	if err != nil {
		return fmt.Errorf("failed to list criteria of division %d: %w", divisionID, err)
	}
	criteriaByID := make(map[int]*models.Criteria, len(criteriaRows))
	for _, c := range criteriaRows {
		criteriaByID[c.ID] = c
	}

	for _, m := range pending {
		homeID := m.HomeTeamID
		awayID := m.AwayTeamID
		changed := false

		if m.HomeTeamCriteriaID != nil {
			if teamID, ok := s.evaluateSlot(criteriaByID, *m.HomeTeamCriteriaID, m.ID, snapshot); ok {
				if homeID == nil || *homeID != teamID {
					homeID = &teamID
					changed = true
				}
			}
		}
		if m.AwayTeamCriteriaID != nil {
			if teamID, ok := s.evaluateSlot(criteriaByID, *m.AwayTeamCriteriaID, m.ID, snapshot); ok {
				if awayID == nil || *awayID != teamID {
					awayID = &teamID
					changed = true
				}
			}
		}

		if changed {
			if err := s.matchRepo.UpdateTeamSlots(ctx, exec, m.ID, homeID, awayID); err != nil {
				return fmt.Errorf("failed to update slots of match %d: %w", m.ID, err)
			}
		}
	}
	return nil
}

func (s *resultService) evaluateSlot(criteriaByID map[int]*models.Criteria, criteriaID, matchID int, snapshot *standings.DivisionStandings) (int, bool) {
	criteria, ok := criteriaByID[criteriaID]
	if !ok {
		s.logger.Warn("knockout slot references unknown criteria",
			slog.Int("match_id", matchID),
			slog.Int("criteria_id", criteriaID))
		return 0, false
	}
	teamID, err := standings.EvaluateCriteria(criteria, snapshot)
	if err != nil {
		s.logger.Warn("criteria evaluation failed, slot left unassigned",
			slog.Int("match_id", matchID),
			slog.Int("criteria_id", criteriaID),
			slog.Any("error", err))
		return 0, false
	}
	return teamID, true
}

func (s *resultService) divisionStandings(ctx context.Context, exec repositories.SQLExecutor, divisionID int) (*standings.DivisionStandings, error) {
	groups, err := s.groupRepo.ListByDivision(ctx, exec, divisionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups of division %d: %w", divisionID, err)
	}

	snapshot := &standings.DivisionStandings{Groups: make(map[int][]*models.Team, len(groups))}
	for _, g := range groups {
		teams, err := s.teamRepo.ListByGroup(ctx, exec, g.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list teams of group %d: %w", g.ID, err)
		}
		sortByRank(teams)
		snapshot.Groups[g.ID] = teams
	}
	return snapshot, nil
}

func (s *resultService) RecomputeDivision(ctx context.Context, divisionID int) error {
	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		groups, err := s.groupRepo.ListByDivision(ctx, tx, divisionID)
		if err != nil {
			return fmt.Errorf("failed to list groups of division %d: %w", divisionID, err)
		}
		if len(groups) == 0 {
			return fmt.Errorf("%w: division %d", ErrDivisionNotFound, divisionID)
		}

		for _, group := range groups {
			if err := s.replayGroup(ctx, tx, group); err != nil {
				return err
			}
		}
		return s.resolveKnockout(ctx, tx, divisionID)
	})
	if err != nil {
		return err
	}

	s.notifyStandingsUpdated(divisionID)
	return nil
}

// replayGroup resets every team in the group and reapplies its
// recorded matches in fixture order, then recomputes adjusted totals
// and ranks.
func (s *resultService) replayGroup(ctx context.Context, exec repositories.SQLExecutor, group *models.Group) error {
	teams, err := s.teamRepo.ListByGroup(ctx, exec, group.ID)
	if err != nil {
		return fmt.Errorf("failed to list teams of group %d: %w", group.ID, err)
	}
	matches, err := s.matchRepo.ListByGroup(ctx, exec, group.ID)
	if err != nil {
		return fmt.Errorf("failed to list matches of group %d: %w", group.ID, err)
	}

	byID := make(map[int]*models.Team, len(teams))
	for _, t := range teams {
		t.ResetCounters()
		byID[t.ID] = t
	}

	for _, m := range matches {
		if m.Stage != models.StageGroup || !m.Played() {
			continue
		}
		if m.HomeTeamID == nil || m.AwayTeamID == nil {
			continue
		}
		home, away := byID[*m.HomeTeamID], byID[*m.AwayTeamID]
		if home == nil || away == nil {
			s.logger.Warn("group match references team outside the group",
				slog.Int("match_id", m.ID),
				slog.Int("group_id", group.ID))
			continue
		}
		if err := standings.ApplyResult(m, home, away); err != nil {
			s.logger.Warn("skipping match during replay",
				slog.Int("match_id", m.ID),
				slog.Any("error", err))
			continue
		}
		// The replay may change a stored winner after a correction.
		if err := s.matchRepo.UpdateResult(ctx, exec, m); err != nil {
			return fmt.Errorf("failed to store replayed result for match %d: %w", m.ID, err)
		}
	}

	standings.RecomputeExclusionAdjusted(group.CompetitionID, teams, matches)
	standings.Rerank(teams, matches)

	for _, team := range teams {
		if err := s.teamRepo.UpdateStanding(ctx, exec, team); err != nil {
			return fmt.Errorf("failed to store standing for team %d: %w", team.ID, err)
		}
	}
	return nil
}

func (s *resultService) notifyStandingsUpdated(divisionID int) {
	if s.notifier == nil {
		return
	}
	s.notifier.BroadcastStandingsUpdated(divisionID, nil)
}
