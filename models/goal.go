package models

// GoalDraft is one row of the goal list as entered in the form.
type GoalDraft struct {
	PlayerID string `json:"player_id"`
	AssistID string `json:"assist_id"`
	Minute   string `json:"minute"`
}

// Goal is a persisted scoring event of a match.
type Goal struct {
	ID             int  `json:"id" db:"id"`
	MatchID        int  `json:"match_id" db:"match_id"`
	PlayerID       int  `json:"player_id" db:"player_id"`
	AssistPlayerID *int `json:"assist_player_id,omitempty" db:"assist_player_id"`
	Minute         *int `json:"minute,omitempty" db:"minute"`
}
