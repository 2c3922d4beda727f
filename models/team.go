package models

// Team belongs to exactly one group of a division. The counter fields
// are maintained by the standings engine only; nothing else writes them.
type Team struct {
	ID            int     `json:"id" db:"id"`
	Name          string  `json:"name" db:"name"`
	ShortName     *string `json:"short_name,omitempty" db:"short_name"`
	CompetitionID int     `json:"competition_id" db:"competition_id"`
	DivisionID    int     `json:"division_id" db:"division_id"`
	GroupID       int     `json:"group_id" db:"group_id"`

	Played        int `json:"played" db:"played"`
	Won           int `json:"won" db:"won"`
	Drawn         int `json:"drawn" db:"drawn"`
	Lost          int `json:"lost" db:"lost"`
	GoalsFor      int `json:"goals_for" db:"goals_for"`
	PointsFor     int `json:"points_for" db:"points_for"`
	GoalsAgainst  int `json:"goals_against" db:"goals_against"`
	PointsAgainst int `json:"points_against" db:"points_against"`

	// Exclusion-adjusted counterparts, recomputed in full after every
	// result. Used only for tie-breaking, never for league points.
	GoalsForXWO          int `json:"goals_for_x_wo" db:"goals_for_x_wo"`
	PointsForXWO         int `json:"points_for_x_wo" db:"points_for_x_wo"`
	GoalsAgainstXWO      int `json:"goals_against_x_wo" db:"goals_against_x_wo"`
	PointsAgainstXWO     int `json:"points_against_x_wo" db:"points_against_x_wo"`
	ScoringDifferenceXWO int `json:"scoring_difference_x_wo" db:"scoring_difference_x_wo"`

	LeagueRank *int `json:"league_rank,omitempty" db:"league_rank"`
	// FieldedAll flips to false once the team concedes a walkover; its
	// results are then excluded from opponents' adjusted totals.
	FieldedAll bool `json:"fielded_all" db:"fielded_all"`

	Clubs []Club `json:"clubs,omitempty" db:"-"`
}

// LeaguePoints is the standard competition tally: two for a win, one
// for a draw.
func (t *Team) LeaguePoints() int {
	return 2*t.Won + t.Drawn
}

// DisplayName returns the short-name override when one is configured.
func (t *Team) DisplayName() string {
	if t.ShortName != nil && *t.ShortName != "" {
		return *t.ShortName
	}
	return t.Name
}

// ResetCounters zeroes every aggregate field ahead of a full replay of
// the team's matches.
func (t *Team) ResetCounters() {
	t.Played = 0
	t.Won = 0
	t.Drawn = 0
	t.Lost = 0
	t.GoalsFor = 0
	t.PointsFor = 0
	t.GoalsAgainst = 0
	t.PointsAgainst = 0
	t.GoalsForXWO = 0
	t.PointsForXWO = 0
	t.GoalsAgainstXWO = 0
	t.PointsAgainstXWO = 0
	t.ScoringDifferenceXWO = 0
	t.LeagueRank = nil
	t.FieldedAll = true
}
