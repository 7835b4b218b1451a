package models

// Group labels of the tournament. Every team belongs to exactly one group.
const (
	GroupA = "A"
	GroupB = "B"
	GroupC = "C"
	GroupD = "D"
)

// Groups lists the group labels in display order.
var Groups = []string{GroupA, GroupB, GroupC, GroupD}

// Team is a participating community team.
type Team struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Group string `json:"group" db:"group"`
}
