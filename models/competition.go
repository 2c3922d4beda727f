package models

// Competition is the top of the membership graph: a grade-level
// competition (Senior, Junior, Under 16, ...) split into divisions.
// The competition id also selects the scoring formula, see the
// standings package.
type Competition struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Grade string `json:"grade" db:"grade"`
}

type Division struct {
	ID            int    `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	CompetitionID int    `json:"competition_id" db:"competition_id"`
}

// Group owns a set of teams and their round-robin fixtures. After any
// cascade the league ranks of its teams are exactly 1..N.
type Group struct {
	ID            int    `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	CompetitionID int    `json:"competition_id" db:"competition_id"`
	DivisionID    int    `json:"division_id" db:"division_id"`

	Teams []*Team `json:"teams,omitempty" db:"-"`
}
