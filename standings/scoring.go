// Package standings is the in-memory core of the results system: it
// folds recorded match results into team counters, rebuilds the
// exclusion-adjusted tie-break totals, orders each group into league
// ranks, and interprets the knockout slot selection criteria.
//
// The package never touches the database. Callers batch-load the teams
// and matches of a group (or division) and pass them in; persistence of
// the mutated counters is the caller's concern.
package standings

// Competitions numbered above maxWeightedCompetitionID score a goal
// and a point equally. Lower-numbered competitions weight a goal as
// three points. The threshold reflects the county's competition
// numbering and is deliberately not derived from the grade names.
const maxWeightedCompetitionID = 2

// MatchScore converts a goals/points scoreline into a single
// comparable score under the competition's formula.
func MatchScore(competitionID, goals, points int) int {
	if competitionID > maxWeightedCompetitionID {
		return goals + points
	}
	return goals*3 + points
}
