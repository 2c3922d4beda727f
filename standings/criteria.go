package standings

import (
	"errors"
	"fmt"

	"github.com/bamacgabhann/county-competitions/models"
)

// ErrCriteriaUnresolved marks a selection rule that cannot currently
// be satisfied. The resolver logs it and leaves the slot empty; the
// rule is retried on the next cascade.
var ErrCriteriaUnresolved = errors.New("criteria cannot be resolved against current standings")

// DivisionStandings is a snapshot of a division's group tables, each
// group's teams in ascending rank order.
type DivisionStandings struct {
	Groups map[int][]*models.Team
}

// EvaluateCriteria interprets one selection rule against the snapshot
// and returns the id of the team occupying the described position.
func EvaluateCriteria(c *models.Criteria, s *DivisionStandings) (int, error) {
	switch c.Kind {
	case models.CriteriaGroupWinner:
		return teamAtGroupPosition(c, s, 1)
	case models.CriteriaGroupRunnerUp:
		return teamAtGroupPosition(c, s, 2)
	case models.CriteriaGroupPosition:
		if c.Position == nil {
			return 0, fmt.Errorf("%w: criteria %d has no position", ErrCriteriaUnresolved, c.ID)
		}
		return teamAtGroupPosition(c, s, *c.Position)
	case models.CriteriaBestThirdPlace:
		return bestAtPosition(c, s, 3)
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrCriteriaUnresolved, c.Kind)
	}
}

func teamAtGroupPosition(c *models.Criteria, s *DivisionStandings, position int) (int, error) {
	if c.GroupID == nil {
		return 0, fmt.Errorf("%w: criteria %d has no group", ErrCriteriaUnresolved, c.ID)
	}
	teams, ok := s.Groups[*c.GroupID]
	if !ok {
		return 0, fmt.Errorf("%w: group %d not in standings", ErrCriteriaUnresolved, *c.GroupID)
	}
	if position < 1 || position > len(teams) {
		return 0, fmt.Errorf("%w: position %d out of range for group %d", ErrCriteriaUnresolved, position, *c.GroupID)
	}
	team := teams[position-1]
	if team.LeagueRank == nil {
		return 0, fmt.Errorf("%w: group %d has not been ranked", ErrCriteriaUnresolved, *c.GroupID)
	}
	return team.ID, nil
}

// bestAtPosition picks the strongest team holding the given rank
// across all groups of the division, compared on league points then
// exclusion-adjusted scoring difference.
func bestAtPosition(c *models.Criteria, s *DivisionStandings, position int) (int, error) {
	var best *models.Team
	for _, teams := range s.Groups {
		if position < 1 || position > len(teams) {
			continue
		}
		candidate := teams[position-1]
		if candidate.LeagueRank == nil {
			continue
		}
		if best == nil || betterRecord(candidate, best) {
			best = candidate
		}
	}
	if best == nil {
		return 0, fmt.Errorf("%w: no group fills position %d for criteria %d", ErrCriteriaUnresolved, position, c.ID)
	}
	return best.ID, nil
}

func betterRecord(a, b *models.Team) bool {
	if a.LeaguePoints() != b.LeaguePoints() {
		return a.LeaguePoints() > b.LeaguePoints()
	}
	if a.ScoringDifferenceXWO != b.ScoringDifferenceXWO {
		return a.ScoringDifferenceXWO > b.ScoringDifferenceXWO
	}
	return a.ID < b.ID
}
