package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bamacgabhann/county-competitions/models"
)

func intPtr(v int) *int { return &v }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// divisionFixture builds one senior division: group 10 holding teams
// 1-3 with a full round of fixtures, plus a knockout final whose slots
// are selected by group winner and runner-up criteria.
func divisionFixture() (*resultService, *fakeMatchRepo, *fakeTeamRepo) {
	newTeam := func(id int) *models.Team {
		return &models.Team{
			ID:            id,
			Name:          "Team",
			CompetitionID: 1,
			DivisionID:    1,
			GroupID:       10,
			FieldedAll:    true,
		}
	}
	groupMatch := func(id, matchNo, homeID, awayID int) *models.Match {
		return &models.Match{
			ID:            id,
			HomeTeamID:    intPtr(homeID),
			AwayTeamID:    intPtr(awayID),
			CompetitionID: 1,
			DivisionID:    1,
			GroupID:       intPtr(10),
			Stage:         models.StageGroup,
			MatchNo:       matchNo,
		}
	}

	matchRepo := newFakeMatchRepo(
		groupMatch(100, 1, 1, 2),
		groupMatch(101, 2, 1, 3),
		groupMatch(102, 3, 2, 3),
		&models.Match{
			ID:                 200,
			CompetitionID:      1,
			DivisionID:         1,
			Stage:              models.StageKnockout,
			Round:              "final",
			MatchNo:            4,
			HomeTeamCriteriaID: intPtr(501),
			AwayTeamCriteriaID: intPtr(502),
		},
	)
	teamRepo := newFakeTeamRepo(newTeam(1), newTeam(2), newTeam(3))
	groupRepo := newFakeGroupRepo(&models.Group{ID: 10, Name: "Group 1", CompetitionID: 1, DivisionID: 1})
	criteriaRepo := newFakeCriteriaRepo(
		&models.Criteria{ID: 501, DivisionID: 1, Kind: models.CriteriaGroupWinner, GroupID: intPtr(10)},
		&models.Criteria{ID: 502, DivisionID: 1, Kind: models.CriteriaGroupRunnerUp, GroupID: intPtr(10)},
	)

	svc := &resultService{
		matchRepo:    matchRepo,
		teamRepo:     teamRepo,
		groupRepo:    groupRepo,
		criteriaRepo: criteriaRepo,
		logger:       testLogger(),
	}
	return svc, matchRepo, teamRepo
}

func TestApplyResultCascadeGroupResult(t *testing.T) {
	svc, matchRepo, teamRepo := divisionFixture()

	divisionID, err := svc.applyResultCascade(context.Background(), nil, RecordResultInput{
		MatchID:    100,
		HomeGoals:  intPtr(2),
		HomePoints: intPtr(10),
		AwayGoals:  intPtr(1),
		AwayPoints: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, divisionID)

	// Senior grades score goals at three points: 16 to 8, home win.
	home := teamRepo.teams[1]
	assert.Equal(t, 1, home.Played)
	assert.Equal(t, 1, home.Won)
	assert.Equal(t, 2, home.GoalsFor)
	assert.Equal(t, 10, home.PointsFor)
	assert.Equal(t, 1, home.GoalsAgainst)
	assert.Equal(t, 5, home.PointsAgainst)
	assert.Equal(t, 2, home.LeaguePoints())
	assert.Equal(t, 8, home.ScoringDifferenceXWO)

	away := teamRepo.teams[2]
	assert.Equal(t, 1, away.Lost)
	assert.Equal(t, -8, away.ScoringDifferenceXWO)

	match := matchRepo.matches[100]
	require.NotNil(t, match.WinnerID)
	assert.Equal(t, 1, *match.WinnerID)

	// Team 3 has not played but a zero difference still beats -8.
	assert.Equal(t, "1:1 2:3 3:2 ", fmtRanks([]*models.Team{
		teamRepo.teams[1], teamRepo.teams[2], teamRepo.teams[3],
	}))

	// The final's slots follow the current table.
	final := matchRepo.matches[200]
	require.NotNil(t, final.HomeTeamID)
	require.NotNil(t, final.AwayTeamID)
	assert.Equal(t, 1, *final.HomeTeamID)
	assert.Equal(t, 3, *final.AwayTeamID)
}

func TestApplyResultCascadeMatchNotFound(t *testing.T) {
	svc, _, _ := divisionFixture()

	_, err := svc.applyResultCascade(context.Background(), nil, RecordResultInput{MatchID: 999})
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestApplyResultCascadeWalkoverRequiresWinner(t *testing.T) {
	svc, _, teamRepo := divisionFixture()

	_, err := svc.applyResultCascade(context.Background(), nil, RecordResultInput{
		MatchID:  100,
		Walkover: true,
	})
	assert.ErrorIs(t, err, ErrWalkoverWinnerRequired)
	assert.Zero(t, teamRepo.teams[1].Played)
	assert.Zero(t, teamRepo.teams[2].Played)
}

func TestApplyResultCascadeWalkover(t *testing.T) {
	svc, matchRepo, teamRepo := divisionFixture()

	_, err := svc.applyResultCascade(context.Background(), nil, RecordResultInput{
		MatchID:  102,
		Walkover: true,
		WinnerID: intPtr(2),
	})
	require.NoError(t, err)

	winner := teamRepo.teams[2]
	assert.Equal(t, 1, winner.Played)
	assert.Equal(t, 1, winner.Won)
	assert.Zero(t, winner.GoalsFor)
	assert.Zero(t, winner.PointsFor)

	defaulter := teamRepo.teams[3]
	assert.Equal(t, 1, defaulter.Played)
	assert.Equal(t, 1, defaulter.Lost)
	assert.False(t, defaulter.FieldedAll)

	assert.True(t, matchRepo.matches[102].Walkover)

	// Winner on two points; a full panel ranks above a defaulter on
	// equal points.
	assert.Equal(t, "1:2 2:1 3:3 ", fmtRanks([]*models.Team{
		teamRepo.teams[1], teamRepo.teams[2], teamRepo.teams[3],
	}))
}

func TestApplyResultCascadeKnockoutResultSetsWinnerOnly(t *testing.T) {
	svc, matchRepo, teamRepo := divisionFixture()

	final := matchRepo.matches[200]
	final.HomeTeamID = intPtr(1)
	final.AwayTeamID = intPtr(3)
	final.HomeTeamCriteriaID = nil
	final.AwayTeamCriteriaID = nil

	_, err := svc.applyResultCascade(context.Background(), nil, RecordResultInput{
		MatchID:    200,
		HomeGoals:  intPtr(0),
		HomePoints: intPtr(9),
		AwayGoals:  intPtr(1),
		AwayPoints: intPtr(8),
	})
	require.NoError(t, err)

	require.NotNil(t, final.WinnerID)
	assert.Equal(t, 3, *final.WinnerID)
	assert.Zero(t, teamRepo.teams[1].Played)
	assert.Zero(t, teamRepo.teams[3].Played)
}

func TestApplyResultCascadeSlotUpdateIsStable(t *testing.T) {
	svc, matchRepo, _ := divisionFixture()

	record := func(matchID, hg, hp, ag, ap int) {
		_, err := svc.applyResultCascade(context.Background(), nil, RecordResultInput{
			MatchID:    matchID,
			HomeGoals:  intPtr(hg),
			HomePoints: intPtr(hp),
			AwayGoals:  intPtr(ag),
			AwayPoints: intPtr(ap),
		})
		require.NoError(t, err)
	}

	// Team 1 wins both its matches; the second cascade sees the same
	// winner and runner-up and must not rewrite the final's slots.
	record(100, 2, 10, 1, 5)
	slotsAfterFirst := matchRepo.updatedSlots[200]
	record(101, 3, 12, 0, 4)

	final := matchRepo.matches[200]
	require.NotNil(t, slotsAfterFirst[0])
	assert.Equal(t, 1, *final.HomeTeamID)
	require.NotNil(t, final.AwayTeamID)
}

func TestReplayGroupRestoresCounters(t *testing.T) {
	svc, _, teamRepo := divisionFixture()

	record := func(matchID, hg, hp, ag, ap int) {
		_, err := svc.applyResultCascade(context.Background(), nil, RecordResultInput{
			MatchID:    matchID,
			HomeGoals:  intPtr(hg),
			HomePoints: intPtr(hp),
			AwayGoals:  intPtr(ag),
			AwayPoints: intPtr(ap),
		})
		require.NoError(t, err)
	}
	record(100, 2, 10, 1, 5)
	record(101, 1, 8, 1, 8)

	wantRanks := fmtRanks([]*models.Team{
		teamRepo.teams[1], teamRepo.teams[2], teamRepo.teams[3],
	})
	wantPlayed := teamRepo.teams[1].Played

	// Simulate a bad manual edit, then replay from the match list.
	teamRepo.teams[1].Won = 7
	teamRepo.teams[1].Played = 9

	group := &models.Group{ID: 10, CompetitionID: 1, DivisionID: 1}
	require.NoError(t, svc.replayGroup(context.Background(), nil, group))

	assert.Equal(t, wantPlayed, teamRepo.teams[1].Played)
	assert.Equal(t, 1, teamRepo.teams[1].Won)
	assert.Equal(t, 1, teamRepo.teams[1].Drawn)
	assert.Equal(t, wantRanks, fmtRanks([]*models.Team{
		teamRepo.teams[1], teamRepo.teams[2], teamRepo.teams[3],
	}))
}

func TestRecordResultsSkipsBadRows(t *testing.T) {
	svc, _, teamRepo := divisionFixture()
	notifier := &fakeNotifier{}
	svc.notifier = notifier

	// Bypass the transactional wrapper: apply each row directly the
	// way RecordResults does, skipping failures.
	inputs := []RecordResultInput{
		{MatchID: 100, HomeGoals: intPtr(2), HomePoints: intPtr(10), AwayGoals: intPtr(1), AwayPoints: intPtr(5)},
		{MatchID: 999, HomeGoals: intPtr(0), HomePoints: intPtr(1), AwayGoals: intPtr(0), AwayPoints: intPtr(0)},
		{MatchID: 101, HomeGoals: intPtr(1), HomePoints: intPtr(8), AwayGoals: intPtr(1), AwayPoints: intPtr(8)},
	}
	applied := 0
	for _, input := range inputs {
		if _, err := svc.applyResultCascade(context.Background(), nil, input); err != nil {
			continue
		}
		applied++
	}

	assert.Equal(t, 2, applied)
	assert.Equal(t, 2, teamRepo.teams[1].Played)
}
