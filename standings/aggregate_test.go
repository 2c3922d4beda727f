package standings

import (
	"testing"

	"github.com/bamacgabhann/county-competitions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newTeam(id, groupID int) *models.Team {
	return &models.Team{ID: id, GroupID: groupID, FieldedAll: true}
}

func groupMatch(id, competitionID, homeID, awayID int) *models.Match {
	groupID := 1
	return &models.Match{
		ID:            id,
		CompetitionID: competitionID,
		DivisionID:    1,
		GroupID:       &groupID,
		Stage:         models.StageGroup,
		HomeTeamID:    &homeID,
		AwayTeamID:    &awayID,
	}
}

func scored(m *models.Match, hg, hp, ag, ap int) *models.Match {
	m.HomeGoals = intPtr(hg)
	m.HomePoints = intPtr(hp)
	m.AwayGoals = intPtr(ag)
	m.AwayPoints = intPtr(ap)
	return m
}

func TestApplyResultWeightedFormula(t *testing.T) {
	// Competition 1: a goal is worth three points. Home 2-10 (16)
	// loses to away 1-15 (18) despite scoring more goals.
	home := newTeam(10, 1)
	away := newTeam(11, 1)
	m := scored(groupMatch(1, 1, home.ID, away.ID), 2, 10, 1, 15)

	require.NoError(t, ApplyResult(m, home, away))

	assert.Equal(t, 1, home.Played)
	assert.Equal(t, 1, away.Played)
	assert.Equal(t, 1, home.Lost)
	assert.Equal(t, 1, away.Won)
	require.NotNil(t, m.WinnerID)
	assert.Equal(t, away.ID, *m.WinnerID)

	assert.Equal(t, 2, home.GoalsFor)
	assert.Equal(t, 10, home.PointsFor)
	assert.Equal(t, 1, home.GoalsAgainst)
	assert.Equal(t, 15, home.PointsAgainst)
	assert.Equal(t, 1, away.GoalsFor)
	assert.Equal(t, 15, away.PointsFor)
}

func TestApplyResultPlainFormulaDraw(t *testing.T) {
	// Competition 5: goals and points score equally. 3-10 (13) against
	// 2-11 (13) is a draw.
	home := newTeam(10, 1)
	away := newTeam(11, 1)
	m := scored(groupMatch(1, 5, home.ID, away.ID), 3, 10, 2, 11)

	require.NoError(t, ApplyResult(m, home, away))

	assert.Equal(t, 1, home.Drawn)
	assert.Equal(t, 1, away.Drawn)
	assert.Zero(t, home.Won)
	assert.Zero(t, away.Won)
	assert.Nil(t, m.WinnerID)
}

func TestApplyResultWalkover(t *testing.T) {
	home := newTeam(10, 1)
	away := newTeam(11, 1)
	m := groupMatch(1, 1, home.ID, away.ID)
	m.Walkover = true
	m.WinnerID = intPtr(away.ID)

	require.NoError(t, ApplyResult(m, home, away))

	assert.Equal(t, 1, away.Won)
	assert.Equal(t, 1, home.Lost)
	assert.False(t, home.FieldedAll, "the defaulting side no longer has a full record")
	assert.True(t, away.FieldedAll, "the awarded side keeps its record")

	// Score counters stay untouched on both sides.
	assert.Zero(t, home.GoalsFor+home.PointsFor+home.GoalsAgainst+home.PointsAgainst)
	assert.Zero(t, away.GoalsFor+away.PointsFor+away.GoalsAgainst+away.PointsAgainst)
}

func TestApplyResultWalkoverWinnerValidation(t *testing.T) {
	home := newTeam(10, 1)
	away := newTeam(11, 1)

	m := groupMatch(1, 1, home.ID, away.ID)
	m.Walkover = true
	require.ErrorIs(t, ApplyResult(m, home, away), ErrWalkoverWinnerInvalid)

	m.WinnerID = intPtr(99)
	require.ErrorIs(t, ApplyResult(m, home, away), ErrWalkoverWinnerInvalid)

	assert.Zero(t, home.Played)
	assert.Zero(t, away.Played)
}

func TestApplyResultIncompleteScoreSkipped(t *testing.T) {
	home := newTeam(10, 1)
	away := newTeam(11, 1)
	m := groupMatch(1, 1, home.ID, away.ID)
	m.HomeGoals = intPtr(2)
	m.HomePoints = intPtr(8)
	m.AwayGoals = intPtr(1)
	// away points never recorded

	require.ErrorIs(t, ApplyResult(m, home, away), ErrIncompleteScore)

	assert.Zero(t, home.Played)
	assert.Zero(t, away.Played)
	assert.Nil(t, m.WinnerID)
}

func TestPlayedEqualsWonDrawnLost(t *testing.T) {
	a := newTeam(1, 1)
	b := newTeam(2, 1)
	c := newTeam(3, 1)

	require.NoError(t, ApplyResult(scored(groupMatch(1, 1, a.ID, b.ID), 2, 4, 2, 4), a, b))
	require.NoError(t, ApplyResult(scored(groupMatch(2, 1, b.ID, c.ID), 1, 2, 0, 9), b, c))

	wo := groupMatch(3, 1, c.ID, a.ID)
	wo.Walkover = true
	wo.WinnerID = intPtr(a.ID)
	require.NoError(t, ApplyResult(wo, c, a))

	for _, team := range []*models.Team{a, b, c} {
		assert.Equal(t, team.Played, team.Won+team.Drawn+team.Lost, "team %d", team.ID)
	}
	assert.Equal(t, a.Won+b.Won+c.Won, a.Lost+b.Lost+c.Lost)
}
