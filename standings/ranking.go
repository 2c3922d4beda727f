package standings

import (
	"sort"

	"github.com/bamacgabhann/county-competitions/models"
)

// Rerank orders a group's teams into league ranks 1..N and writes
// LeagueRank on every team. The returned slice is the teams in rank
// order; the input slice is not reordered.
//
// Sort key: league points, then fielded_all (a full record ranks above
// a defaulter's), then exclusion-adjusted scoring difference. When
// exactly two teams share a points total and one beat the other in the
// group, the head-to-head winner takes the better rank regardless of
// the scoring difference. Ties among three or more teams stay in
// primary-key order.
func Rerank(teams []*models.Team, matches []*models.Match) []*models.Team {
	ranked := make([]*models.Team, len(teams))
	copy(ranked, teams)

	// Fixed starting order so equal keys rank deterministically.
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].ID < ranked[j].ID })

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.LeaguePoints() != b.LeaguePoints() {
			return a.LeaguePoints() > b.LeaguePoints()
		}
		if a.FieldedAll != b.FieldedAll {
			return a.FieldedAll
		}
		return a.ScoringDifferenceXWO > b.ScoringDifferenceXWO
	})

	applyHeadToHead(ranked, matches)

	for i, t := range ranked {
		rank := i + 1
		t.LeagueRank = &rank
	}
	return ranked
}

// applyHeadToHead swaps the two teams of an exact two-way points tie
// when their direct meeting produced a winner. Larger tie clusters are
// left in primary order.
func applyHeadToHead(ranked []*models.Team, matches []*models.Match) {
	byPoints := make(map[int][]int)
	for i, t := range ranked {
		pts := t.LeaguePoints()
		byPoints[pts] = append(byPoints[pts], i)
	}

	for _, positions := range byPoints {
		if len(positions) != 2 {
			continue
		}
		upper, lower := positions[0], positions[1]
		winner := headToHeadWinner(ranked[upper], ranked[lower], matches)
		if winner != nil && winner.ID == ranked[lower].ID {
			ranked[upper], ranked[lower] = ranked[lower], ranked[upper]
		}
	}
}

// headToHeadWinner returns whichever of a and b won their group-stage
// meeting, or nil if they have not met decisively. A walkover between
// the pair counts: it carries a winner.
func headToHeadWinner(a, b *models.Team, matches []*models.Match) *models.Team {
	for _, m := range matches {
		if m.Stage != models.StageGroup || m.WinnerID == nil {
			continue
		}
		if m.HomeTeamID == nil || m.AwayTeamID == nil {
			continue
		}
		between := (*m.HomeTeamID == a.ID && *m.AwayTeamID == b.ID) ||
			(*m.HomeTeamID == b.ID && *m.AwayTeamID == a.ID)
		if !between {
			continue
		}
		switch *m.WinnerID {
		case a.ID:
			return a
		case b.ID:
			return b
		}
	}
	return nil
}
