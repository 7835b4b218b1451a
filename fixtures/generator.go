// Package fixtures builds match schedules: round-robin group fixtures and
// single-elimination knockout brackets.
package fixtures

import "errors"

var ErrNotEnoughTeams = errors.New("at least two teams are required")

// Fixture is one scheduled pairing of a round-robin.
type Fixture struct {
	Round      int `json:"round"`
	Order      int `json:"order"`
	HomeTeamID int `json:"home_team_id"`
	AwayTeamID int `json:"away_team_id"`
}
