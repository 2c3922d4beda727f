package models

// CriteriaKind is the closed set of knockout slot selection rules.
type CriteriaKind string

const (
	CriteriaGroupWinner    CriteriaKind = "group_winner"
	CriteriaGroupRunnerUp  CriteriaKind = "group_runner_up"
	CriteriaGroupPosition  CriteriaKind = "group_position"
	CriteriaBestThirdPlace CriteriaKind = "best_third_place"
)

// Criteria selects which team occupies a knockout slot based on group
// standings. Rows are read-only at runtime; the resolver re-evaluates
// them after every cascade so slot assignments follow rank changes.
type Criteria struct {
	ID          int          `json:"id" db:"id"`
	DivisionID  int          `json:"division_id" db:"division_id"`
	Kind        CriteriaKind `json:"kind" db:"kind"`
	GroupID     *int         `json:"group_id,omitempty" db:"group_id"`
	Position    *int         `json:"position,omitempty" db:"position"`
	Description string       `json:"description" db:"description"`
}
