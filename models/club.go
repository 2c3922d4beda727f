package models

type Club struct {
	ID   int     `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Ainm *string `json:"ainm,omitempty" db:"ainm"` // name as Gaeilge

	CrestKey *string `json:"-" db:"crest_key"`
	CrestURL *string `json:"crest_url,omitempty" db:"-"`
}

type Venue struct {
	ID      int     `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	ClubID  int     `json:"club_id" db:"club_id"`
	Address *string `json:"address,omitempty" db:"address"`
}

type Referee struct {
	ID     int    `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	ClubID int    `json:"club_id" db:"club_id"`
}
