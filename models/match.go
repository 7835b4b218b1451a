package models

import "time"

// MatchDraft is the match being composed by the operator.
// Team ids keep the raw selection value; an empty string means "not selected".
type MatchDraft struct {
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	HomeGoals  int    `json:"home_goals"`
	AwayGoals  int    `json:"away_goals"`
	Round      int    `json:"round"`
}

// Match is a persisted fixture result.
type Match struct {
	ID         int       `json:"id" db:"id"`
	HomeTeamID int       `json:"home_team_id" db:"home_team_id"`
	AwayTeamID int       `json:"away_team_id" db:"away_team_id"`
	HomeGoals  int       `json:"home_goals" db:"home_goals"`
	AwayGoals  int       `json:"away_goals" db:"away_goals"`
	Round      int       `json:"round" db:"round"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
