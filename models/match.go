package models

import "time"

type Stage string

const (
	StageGroup    Stage = "group"
	StageKnockout Stage = "knockout"
)

// Match covers both group fixtures and knockout fixtures. Team slots
// are nullable: knockout slots stay empty until the criteria resolver
// fills them, and scores stay empty until a result is recorded.
type Match struct {
	ID            int        `json:"id" db:"id"`
	HomeTeamID    *int       `json:"home_team_id,omitempty" db:"home_team_id"`
	AwayTeamID    *int       `json:"away_team_id,omitempty" db:"away_team_id"`
	VenueID       *int       `json:"venue_id,omitempty" db:"venue_id"`
	RefereeID     *int       `json:"referee_id,omitempty" db:"referee_id"`
	CompetitionID int        `json:"competition_id" db:"competition_id"`
	DivisionID    int        `json:"division_id" db:"division_id"`
	GroupID       *int       `json:"group_id,omitempty" db:"group_id"`
	Stage         Stage      `json:"stage" db:"stage"`
	Round         string     `json:"round" db:"round"`
	MatchNo       int        `json:"match_no" db:"match_no"`
	Date          *time.Time `json:"date,omitempty" db:"date"`

	HomeGoals  *int `json:"home_goals,omitempty" db:"home_goals"`
	HomePoints *int `json:"home_points,omitempty" db:"home_points"`
	AwayGoals  *int `json:"away_goals,omitempty" db:"away_goals"`
	AwayPoints *int `json:"away_points,omitempty" db:"away_points"`

	Walkover bool `json:"walkover" db:"walkover"`
	WinnerID *int `json:"winner_id,omitempty" db:"winner_id"`

	// Knockout slot selection rules; nil for group-stage matches and
	// for knockout slots whose team is fixed in advance.
	HomeTeamCriteriaID *int `json:"home_team_criteria_id,omitempty" db:"home_team_criteria_id"`
	AwayTeamCriteriaID *int `json:"away_team_criteria_id,omitempty" db:"away_team_criteria_id"`

	HomeTeam *Team    `json:"home_team,omitempty" db:"-"`
	AwayTeam *Team    `json:"away_team,omitempty" db:"-"`
	Venue    *Venue   `json:"venue,omitempty" db:"-"`
	Referee  *Referee `json:"referee,omitempty" db:"-"`
}

// HasFullScore reports whether all four score fields are recorded.
func (m *Match) HasFullScore() bool {
	return m.HomeGoals != nil && m.HomePoints != nil && m.AwayGoals != nil && m.AwayPoints != nil
}

// Played reports whether the match produced a result that counts
// towards standings: either a full scoreline or an awarded walkover.
func (m *Match) Played() bool {
	return m.Walkover || m.HasFullScore()
}
