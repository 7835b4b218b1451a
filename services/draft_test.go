package services

import (
	"errors"
	"testing"

	"github.com/oac-maputo/supertaca/models"
)

func TestNewDraftStartsWithOneBlankRow(t *testing.T) {
	d := NewDraft(2)
	if len(d.Goals) != 1 || d.Goals[0] != (models.GoalDraft{}) {
		t.Fatalf("expected a single blank row, got %+v", d.Goals)
	}
	if d.Match != (models.MatchDraft{Round: 2}) {
		t.Fatalf("expected empty match in round 2, got %+v", d.Match)
	}
}

func TestUpdateGoalTouchesOnlyOneField(t *testing.T) {
	d := NewDraft(1)
	d.AddGoalRow()
	d.AddGoalRow()

	if err := d.UpdateGoal(1, FieldPlayerID, "9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.UpdateGoal(1, FieldMinute, "44"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.Goals[0] != (models.GoalDraft{}) || d.Goals[2] != (models.GoalDraft{}) {
		t.Fatalf("other rows changed: %+v", d.Goals)
	}
	if d.Goals[1] != (models.GoalDraft{PlayerID: "9", Minute: "44"}) {
		t.Fatalf("unexpected row %+v", d.Goals[1])
	}
}

func TestUpdateGoalRejectsBadInput(t *testing.T) {
	d := NewDraft(1)
	if err := d.UpdateGoal(3, FieldPlayerID, "1"); !errors.Is(err, ErrGoalRowOutOfRange) {
		t.Fatalf("expected ErrGoalRowOutOfRange, got %v", err)
	}
	if err := d.UpdateGoal(-1, FieldPlayerID, "1"); !errors.Is(err, ErrGoalRowOutOfRange) {
		t.Fatalf("expected ErrGoalRowOutOfRange, got %v", err)
	}
	if err := d.UpdateGoal(0, "team", "1"); !errors.Is(err, ErrInvalidDraftField) {
		t.Fatalf("expected ErrInvalidDraftField, got %v", err)
	}
}

func TestSetMatchFieldCoercesNumbers(t *testing.T) {
	d := NewDraft(1)
	steps := []struct{ field, value string }{
		{FieldHomeTeamID, "4"},
		{FieldAwayTeamID, "8"},
		{FieldHomeGoals, "3"},
		{FieldAwayGoals, "abc"},
		{FieldRound, "-2"},
	}
	for _, s := range steps {
		if err := d.SetMatchField(s.field, s.value); err != nil {
			t.Fatalf("SetMatchField(%s): %v", s.field, err)
		}
	}
	want := models.MatchDraft{HomeTeamID: "4", AwayTeamID: "8", HomeGoals: 3, AwayGoals: 0, Round: 0}
	if d.Match != want {
		t.Fatalf("got %+v, want %+v", d.Match, want)
	}
	if err := d.SetMatchField("winner", "4"); !errors.Is(err, ErrInvalidDraftField) {
		t.Fatalf("expected ErrInvalidDraftField, got %v", err)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	d := NewDraft(3)
	_ = d.SetMatchField(FieldHomeTeamID, "1")
	_ = d.SetMatchField(FieldRound, "5")
	d.AddGoalRow()
	_ = d.UpdateGoal(0, FieldPlayerID, "2")

	d.Reset()

	if d.Match != (models.MatchDraft{Round: 3}) || len(d.Goals) != 1 || d.Goals[0] != (models.GoalDraft{}) {
		t.Fatalf("draft not reset: %+v %+v", d.Match, d.Goals)
	}
}

func TestEligiblePlayersFiltersByTeamsAndStaff(t *testing.T) {
	players := []*models.Player{
		{ID: 1, TeamID: 10},
		{ID: 2, TeamID: 20},
		{ID: 3, TeamID: 30},
		{ID: 4, TeamID: 10, IsStaff: true},
		nil,
	}

	got := EligiblePlayers(models.MatchDraft{HomeTeamID: "10", AwayTeamID: "20"}, players)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected players %+v", got)
	}

	got = EligiblePlayers(models.MatchDraft{AwayTeamID: "30"}, players)
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("expected only away team players, got %+v", got)
	}

	if got = EligiblePlayers(models.MatchDraft{}, players); len(got) != 0 {
		t.Fatalf("expected no players without a selection, got %+v", got)
	}
}
