package standings

import (
	"testing"

	"github.com/bamacgabhann/county-competitions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture: A beat B, A beat C away, then C conceded a walkover to B.
// C's defaulting removes its results from A's and B's adjusted totals.
func exclusionFixture(t *testing.T, competitionID int) ([]*models.Team, []*models.Match) {
	t.Helper()

	a := newTeam(1, 1)
	b := newTeam(2, 1)
	c := newTeam(3, 1)

	m1 := scored(groupMatch(1, competitionID, a.ID, b.ID), 2, 10, 1, 5)
	m2 := scored(groupMatch(2, competitionID, c.ID, a.ID), 0, 5, 3, 9)
	m3 := groupMatch(3, competitionID, b.ID, c.ID)
	m3.Walkover = true
	m3.WinnerID = intPtr(b.ID)

	require.NoError(t, ApplyResult(m1, a, b))
	require.NoError(t, ApplyResult(m2, c, a))
	require.NoError(t, ApplyResult(m3, b, c))
	require.False(t, c.FieldedAll)

	return []*models.Team{a, b, c}, []*models.Match{m1, m2, m3}
}

func TestRecomputeExcludesDefaulterResults(t *testing.T) {
	teams, matches := exclusionFixture(t, 1)
	a, b, c := teams[0], teams[1], teams[2]

	RecomputeExclusionAdjusted(1, teams, matches)

	// A's win over C does not count: C defaulted elsewhere.
	assert.Equal(t, 2, a.GoalsForXWO)
	assert.Equal(t, 10, a.PointsForXWO)
	assert.Equal(t, 1, a.GoalsAgainstXWO)
	assert.Equal(t, 5, a.PointsAgainstXWO)
	assert.Equal(t, 8, a.ScoringDifferenceXWO) // (2*3+10) - (1*3+5)

	// B's only scored match was against A, who fielded all.
	assert.Equal(t, -8, b.ScoringDifferenceXWO)

	// C keeps its own view of the A match; A fielded all.
	assert.Equal(t, 0, c.GoalsForXWO)
	assert.Equal(t, 5, c.PointsForXWO)
	assert.Equal(t, -13, c.ScoringDifferenceXWO) // (0*3+5) - (3*3+9)

	// Raw counters are unaffected by the adjusted recompute.
	assert.Equal(t, 5, a.GoalsFor)
	assert.Equal(t, 19, a.PointsFor)
}

func TestScoringDifferenceConcessionOnlyGrades(t *testing.T) {
	// Above competition 2 the difference is judged purely on
	// concession: the negative of the adjusted score against.
	teams, matches := exclusionFixture(t, 5)
	a, b := teams[0], teams[1]

	RecomputeExclusionAdjusted(5, teams, matches)

	assert.Equal(t, -(1 + 5), a.ScoringDifferenceXWO)
	assert.Equal(t, -(2 + 10), b.ScoringDifferenceXWO)
}

func TestRecomputeAndRerankIdempotent(t *testing.T) {
	teams, matches := exclusionFixture(t, 1)

	RecomputeExclusionAdjusted(1, teams, matches)
	Rerank(teams, matches)

	first := make([]models.Team, len(teams))
	for i, team := range teams {
		first[i] = *team
	}

	RecomputeExclusionAdjusted(1, teams, matches)
	Rerank(teams, matches)

	for i, team := range teams {
		assert.Equal(t, first[i], *team, "team %d changed on second recompute", team.ID)
	}
}
