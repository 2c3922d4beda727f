package standings

import (
	"testing"

	"github.com/bamacgabhann/county-competitions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedTeam(id, rank, points, diff int) *models.Team {
	t := &models.Team{ID: id, FieldedAll: true, Won: points / 2, Drawn: points % 2}
	t.Played = t.Won + t.Drawn
	t.ScoringDifferenceXWO = diff
	t.LeagueRank = &rank
	return t
}

func divisionSnapshot() *DivisionStandings {
	return &DivisionStandings{
		Groups: map[int][]*models.Team{
			1: {
				rankedTeam(11, 1, 6, 12),
				rankedTeam(12, 2, 4, 3),
				rankedTeam(13, 3, 2, -4),
			},
			2: {
				rankedTeam(21, 1, 6, 20),
				rankedTeam(22, 2, 2, -1),
				rankedTeam(23, 3, 2, 5),
			},
		},
	}
}

func TestEvaluateGroupWinnerAndRunnerUp(t *testing.T) {
	s := divisionSnapshot()
	groupID := 1

	winner := &models.Criteria{ID: 1, Kind: models.CriteriaGroupWinner, GroupID: &groupID}
	id, err := EvaluateCriteria(winner, s)
	require.NoError(t, err)
	assert.Equal(t, 11, id)

	runnerUp := &models.Criteria{ID: 2, Kind: models.CriteriaGroupRunnerUp, GroupID: &groupID}
	id, err = EvaluateCriteria(runnerUp, s)
	require.NoError(t, err)
	assert.Equal(t, 12, id)
}

func TestEvaluateGroupPosition(t *testing.T) {
	s := divisionSnapshot()
	groupID := 2
	position := 3

	c := &models.Criteria{ID: 3, Kind: models.CriteriaGroupPosition, GroupID: &groupID, Position: &position}
	id, err := EvaluateCriteria(c, s)
	require.NoError(t, err)
	assert.Equal(t, 23, id)

	outOfRange := 4
	c.Position = &outOfRange
	_, err = EvaluateCriteria(c, s)
	assert.ErrorIs(t, err, ErrCriteriaUnresolved)
}

func TestEvaluateBestThirdPlace(t *testing.T) {
	s := divisionSnapshot()

	c := &models.Criteria{ID: 4, Kind: models.CriteriaBestThirdPlace, DivisionID: 1}
	id, err := EvaluateCriteria(c, s)
	require.NoError(t, err)

	// Both third-placed teams hold 2 points; team 23 has the better
	// adjusted difference.
	assert.Equal(t, 23, id)
}

func TestEvaluateCriteriaFailures(t *testing.T) {
	s := divisionSnapshot()

	missingGroup := 9
	c := &models.Criteria{ID: 5, Kind: models.CriteriaGroupWinner, GroupID: &missingGroup}
	_, err := EvaluateCriteria(c, s)
	assert.ErrorIs(t, err, ErrCriteriaUnresolved)

	_, err = EvaluateCriteria(&models.Criteria{ID: 6, Kind: models.CriteriaGroupWinner}, s)
	assert.ErrorIs(t, err, ErrCriteriaUnresolved)

	_, err = EvaluateCriteria(&models.Criteria{ID: 7, Kind: models.CriteriaGroupPosition, GroupID: &missingGroup}, s)
	assert.ErrorIs(t, err, ErrCriteriaUnresolved)

	_, err = EvaluateCriteria(&models.Criteria{ID: 8, Kind: "league_winner"}, s)
	assert.ErrorIs(t, err, ErrCriteriaUnresolved)
}
