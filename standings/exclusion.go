package standings

import "github.com/bamacgabhann/county-competitions/models"

// RecomputeExclusionAdjusted rebuilds every team's exclusion-adjusted
// totals from the group's matches. A result only counts towards a
// team's adjusted totals when the opponent has fielded all its matches
// (fielded_all true); results against defaulters would otherwise skew
// the tie-break. Walkover matches contribute nothing.
//
// Full, non-incremental recompute: safe to call any number of times.
func RecomputeExclusionAdjusted(competitionID int, teams []*models.Team, matches []*models.Match) {
	byID := make(map[int]*models.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
		t.GoalsForXWO = 0
		t.PointsForXWO = 0
		t.GoalsAgainstXWO = 0
		t.PointsAgainstXWO = 0
	}

	for _, m := range matches {
		if m.Stage != models.StageGroup || m.Walkover || !m.HasFullScore() {
			continue
		}
		if m.HomeTeamID == nil || m.AwayTeamID == nil {
			continue
		}
		home := byID[*m.HomeTeamID]
		away := byID[*m.AwayTeamID]
		if home == nil || away == nil {
			continue
		}

		if away.FieldedAll {
			home.GoalsForXWO += *m.HomeGoals
			home.PointsForXWO += *m.HomePoints
			home.GoalsAgainstXWO += *m.AwayGoals
			home.PointsAgainstXWO += *m.AwayPoints
		}
		if home.FieldedAll {
			away.GoalsForXWO += *m.AwayGoals
			away.PointsForXWO += *m.AwayPoints
			away.GoalsAgainstXWO += *m.HomeGoals
			away.PointsAgainstXWO += *m.HomePoints
		}
	}

	for _, t := range teams {
		t.ScoringDifferenceXWO = scoringDifference(competitionID, t)
	}
}

// scoringDifference derives the tie-break value from the adjusted
// totals. Above the weighted-formula threshold a team is judged purely
// on concession, so the difference is the negative of its adjusted
// score against.
func scoringDifference(competitionID int, t *models.Team) int {
	against := MatchScore(competitionID, t.GoalsAgainstXWO, t.PointsAgainstXWO)
	if competitionID > maxWeightedCompetitionID {
		return -against
	}
	return MatchScore(competitionID, t.GoalsForXWO, t.PointsForXWO) - against
}
