package models

// StandingRow is one line of a group table.
type StandingRow struct {
	TeamID         int    `json:"team_id"`
	TeamName       string `json:"team_name"`
	Group          string `json:"group"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// GroupStandings is the ordered table of a single group.
type GroupStandings struct {
	Group string        `json:"group"`
	Rows  []StandingRow `json:"rows"`
}

// LeaderboardEntry counts goals or assists credited to one player.
type LeaderboardEntry struct {
	PlayerID   int    `json:"player_id" db:"player_id"`
	PlayerName string `json:"player_name" db:"player_name"`
	TeamName   string `json:"team_name" db:"team_name"`
	Count      int    `json:"count" db:"count"`
}
