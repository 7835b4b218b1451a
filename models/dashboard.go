package models

// Overview feeds the header stat cards of the admin page.
type Overview struct {
	TeamsTotal   int `json:"teams_total"`
	PlayersTotal int `json:"players_total"`
	GroupsTotal  int `json:"groups_total"`
	CurrentRound int `json:"current_round"`
}
