package models

type Player struct {
	ID     int    `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Ainm   string `json:"ainm" db:"ainm"`
	ClubID int    `json:"club_id" db:"club_id"`
}

// PlayerParticipation records one player lining out for a team in a
// match, either in the starting fifteen or as a substitute.
type PlayerParticipation struct {
	ID       int  `json:"id" db:"id"`
	MatchID  int  `json:"match_id" db:"match_id"`
	PlayerID int  `json:"player_id" db:"player_id"`
	TeamID   int  `json:"team_id" db:"team_id"`
	Started  bool `json:"started" db:"started"`

	Player *Player `json:"player,omitempty" db:"-"`
}
