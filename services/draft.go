package services

import (
	"fmt"

	"github.com/oac-maputo/supertaca/models"
)

// Match draft fields accepted by SetMatchField.
const (
	FieldHomeTeamID = "home_team_id"
	FieldAwayTeamID = "away_team_id"
	FieldHomeGoals  = "home_goals"
	FieldAwayGoals  = "away_goals"
	FieldRound      = "round"
)

// Goal row fields accepted by UpdateGoal.
const (
	FieldPlayerID = "player_id"
	FieldAssistID = "assist_id"
	FieldMinute   = "minute"
)

// SubmitStatus is the submission state of a draft.
type SubmitStatus string

const (
	StatusIdle       SubmitStatus = "idle"
	StatusSubmitting SubmitStatus = "submitting"
)

// Banner messages shown after a submission attempt.
const (
	MessageSelectBothTeams  = "Select both teams!"
	MessageMatchRegistered  = "Match registered successfully!"
	MessageRegistrationFail = "Failed to register match!"
)

// Draft is the transient state of the registration form: one match and its goal rows.
// The goal list always holds at least one row.
type Draft struct {
	Match models.MatchDraft
	Goals []models.GoalDraft

	defaultRound int
}

// NewDraft returns an empty draft whose round defaults to defaultRound.
func NewDraft(defaultRound int) *Draft {
	d := &Draft{defaultRound: defaultRound}
	d.Reset()
	return d
}

// Reset discards everything entered so far.
func (d *Draft) Reset() {
	d.Match = models.MatchDraft{Round: d.defaultRound}
	d.Goals = []models.GoalDraft{{}}
}

// AddGoalRow appends a blank goal row.
func (d *Draft) AddGoalRow() {
	d.Goals = append(d.Goals, models.GoalDraft{})
}

// UpdateGoal sets one field of the goal row at index, leaving other rows untouched.
func (d *Draft) UpdateGoal(index int, field, value string) error {
	if index < 0 || index >= len(d.Goals) {
		return fmt.Errorf("%w: %d (rows: %d)", ErrGoalRowOutOfRange, index, len(d.Goals))
	}
	row := d.Goals[index]
	switch field {
	case FieldPlayerID:
		row.PlayerID = value
	case FieldAssistID:
		row.AssistID = value
	case FieldMinute:
		row.Minute = value
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDraftField, field)
	}
	d.Goals[index] = row
	return nil
}

// SetMatchField replaces one field of the draft match.
// Numeric fields take unparsable input as zero.
func (d *Draft) SetMatchField(field, value string) error {
	switch field {
	case FieldHomeTeamID:
		d.Match.HomeTeamID = value
	case FieldAwayTeamID:
		d.Match.AwayTeamID = value
	case FieldHomeGoals:
		d.Match.HomeGoals = coerceCount(value)
	case FieldAwayGoals:
		d.Match.AwayGoals = coerceCount(value)
	case FieldRound:
		d.Match.Round = coerceCount(value)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDraftField, field)
	}
	return nil
}

// EligiblePlayers filters players to the non-staff members of the selected home or away team.
func (d *Draft) EligiblePlayers(players []*models.Player) []*models.Player {
	return EligiblePlayers(d.Match, players)
}

// EligiblePlayers filters players to the non-staff members of the draft's home or away team.
func EligiblePlayers(match models.MatchDraft, players []*models.Player) []*models.Player {
	out := make([]*models.Player, 0)
	homeID, homeOK := selectedID(match.HomeTeamID)
	awayID, awayOK := selectedID(match.AwayTeamID)
	if !homeOK && !awayOK {
		return out
	}
	for _, p := range players {
		if p == nil || p.IsStaff {
			continue
		}
		if (homeOK && p.TeamID == homeID) || (awayOK && p.TeamID == awayID) {
			out = append(out, p)
		}
	}
	return out
}

func (d *Draft) clone() *Draft {
	goals := make([]models.GoalDraft, len(d.Goals))
	copy(goals, d.Goals)
	return &Draft{Match: d.Match, Goals: goals, defaultRound: d.defaultRound}
}
