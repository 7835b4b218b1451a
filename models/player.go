package models

// Player is a roster member of a team. Staff are never offered for selection.
type Player struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	ShirtNumber *int    `json:"shirt_number,omitempty" db:"shirt_number"`
	Position    *string `json:"position,omitempty" db:"position"`
	TeamID      int     `json:"team_id" db:"team_id"`
	IsStaff     bool    `json:"is_staff" db:"is_staff"`

	TeamName string `json:"team_name,omitempty" db:"-"`
}
