package standings

import (
	"errors"
	"fmt"

	"github.com/bamacgabhann/county-competitions/models"
)

var (
	// ErrIncompleteScore marks a non-walkover match still missing one
	// of its four score fields. Aggregation is skipped; the caller
	// logs and carries on.
	ErrIncompleteScore = errors.New("match is missing score fields")

	ErrWalkoverWinnerInvalid = errors.New("walkover winner is not a participant of the match")
)

// ApplyResult folds one played group-stage match into both teams'
// counters and decides the match winner under the competition formula.
//
// Not idempotent: callers must invoke it exactly once per match. The
// full-recompute path resets counters first and replays every match.
func ApplyResult(m *models.Match, home, away *models.Team) error {
	if m.Walkover {
		return applyWalkover(m, home, away)
	}
	if !m.HasFullScore() {
		return ErrIncompleteScore
	}

	home.Played++
	away.Played++

	home.GoalsFor += *m.HomeGoals
	home.PointsFor += *m.HomePoints
	home.GoalsAgainst += *m.AwayGoals
	home.PointsAgainst += *m.AwayPoints
	away.GoalsFor += *m.AwayGoals
	away.PointsFor += *m.AwayPoints
	away.GoalsAgainst += *m.HomeGoals
	away.PointsAgainst += *m.HomePoints

	homeScore := MatchScore(m.CompetitionID, *m.HomeGoals, *m.HomePoints)
	awayScore := MatchScore(m.CompetitionID, *m.AwayGoals, *m.AwayPoints)

	switch {
	case homeScore > awayScore:
		home.Won++
		away.Lost++
		winnerID := home.ID
		m.WinnerID = &winnerID
	case homeScore < awayScore:
		away.Won++
		home.Lost++
		winnerID := away.ID
		m.WinnerID = &winnerID
	default:
		home.Drawn++
		away.Drawn++
		m.WinnerID = nil
	}

	return nil
}

// applyWalkover awards the match without play. The defaulting side is
// charged a loss and loses its fielded_all standing; score counters on
// both sides are untouched.
func applyWalkover(m *models.Match, home, away *models.Team) error {
	if m.WinnerID == nil {
		return fmt.Errorf("%w: walkover without winner for match %d", ErrWalkoverWinnerInvalid, m.ID)
	}
	if *m.WinnerID != home.ID && *m.WinnerID != away.ID {
		return fmt.Errorf("%w: team %d in match %d", ErrWalkoverWinnerInvalid, *m.WinnerID, m.ID)
	}

	home.Played++
	away.Played++

	if *m.WinnerID == home.ID {
		home.Won++
		away.Lost++
		away.FieldedAll = false
	} else {
		away.Won++
		home.Lost++
		home.FieldedAll = false
	}

	return nil
}
