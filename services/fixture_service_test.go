package services

import (
	"context"
	"errors"
	"testing"

	"github.com/oac-maputo/supertaca/models"
)

func fourGroups() []*models.Team {
	var teams []*models.Team
	id := 1
	for _, g := range models.Groups {
		for i := 0; i < 4; i++ {
			teams = append(teams, &models.Team{ID: id, Name: g + string(rune('a'+i)), Group: g})
			id++
		}
	}
	return teams
}

func TestGroupFixturesSchedulesEveryGroup(t *testing.T) {
	svc := NewFixtureService(&stubTeamRepo{teams: fourGroups()}, &stubMatchRepo{})

	list, err := svc.GroupFixtures(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Groups) != 4 || list.Groups[0].Group != models.GroupA {
		t.Fatalf("groups = %+v", list.Groups)
	}
	for _, g := range list.Groups {
		if len(g.Fixtures) != 6 {
			t.Fatalf("group %s has %d fixtures, want 6", g.Group, len(g.Fixtures))
		}
	}
	if list.Message != PlaceholderMessage {
		t.Fatalf("message = %q", list.Message)
	}
}

func TestGroupFixturesMarksPlayedInEitherOrientation(t *testing.T) {
	teams := []*models.Team{
		{ID: 1, Name: "Alpha", Group: models.GroupA},
		{ID: 2, Name: "Beta", Group: models.GroupA},
	}
	// Recorded with the venues reversed relative to the schedule.
	matches := []*models.Match{{ID: 9, HomeTeamID: 2, AwayTeamID: 1, HomeGoals: 3, AwayGoals: 1}}
	svc := NewFixtureService(&stubTeamRepo{teams: teams}, &stubMatchRepo{matches: matches})

	list, err := svc.GroupFixtures(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	f := list.Groups[0].Fixtures[0]
	if !f.Played {
		t.Fatalf("fixture %+v not marked played", f)
	}
	if f.HomeTeamID == 1 && (*f.HomeGoals != 1 || *f.AwayGoals != 3) {
		t.Fatalf("score not oriented to fixture: %d-%d", *f.HomeGoals, *f.AwayGoals)
	}
	if f.HomeTeamID == 2 && (*f.HomeGoals != 3 || *f.AwayGoals != 1) {
		t.Fatalf("score not oriented to fixture: %d-%d", *f.HomeGoals, *f.AwayGoals)
	}
	if list.Message != "" {
		t.Fatalf("message = %q, want none once a match is recorded", list.Message)
	}
}

func TestGroupFixturesSingleTeamGroup(t *testing.T) {
	teams := []*models.Team{{ID: 1, Name: "Solo", Group: models.GroupD}}
	svc := NewFixtureService(&stubTeamRepo{teams: teams}, &stubMatchRepo{})

	list, err := svc.GroupFixtures(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Groups) != 1 || list.Groups[0].Fixtures == nil || len(list.Groups[0].Fixtures) != 0 {
		t.Fatalf("groups = %+v", list.Groups)
	}
}

func TestKnockoutProjectionCrossesPairedGroups(t *testing.T) {
	teams := fourGroups()
	// Team 2 (Group A) beats team 1, so it tops group A.
	matches := []*models.Match{{ID: 1, HomeTeamID: 2, AwayTeamID: 1, HomeGoals: 1, AwayGoals: 0}}
	svc := NewFixtureService(&stubTeamRepo{teams: teams}, &stubMatchRepo{matches: matches})

	proj, err := svc.KnockoutProjection(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(proj.Matches) != 7 {
		t.Fatalf("matches = %d, want 7", len(proj.Matches))
	}
	first := proj.Matches[0]
	if first.Home.Entrant.Label != "1A" || first.Home.Entrant.TeamID != 2 || first.Away.Entrant.Label != "2B" {
		t.Fatalf("first quarter-final = %+v vs %+v", first.Home.Entrant, first.Away.Entrant)
	}
	third := proj.Matches[2]
	if third.Home.Entrant.Label != "1B" || third.Away.Entrant.Label != "2A" {
		t.Fatalf("third quarter-final = %+v vs %+v", third.Home.Entrant, third.Away.Entrant)
	}
	if proj.Message != "" {
		t.Fatalf("message = %q", proj.Message)
	}
}

func TestKnockoutProjectionUnavailable(t *testing.T) {
	teams := []*models.Team{
		{ID: 1, Name: "Alpha", Group: models.GroupA},
		{ID: 2, Name: "Beta", Group: models.GroupA},
		{ID: 3, Name: "Gamma", Group: models.GroupB},
	}
	svc := NewFixtureService(&stubTeamRepo{teams: teams}, &stubMatchRepo{})

	proj, err := svc.KnockoutProjection(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(proj.Matches) != 0 || proj.Message != knockoutUnavailableMessage {
		t.Fatalf("projection = %+v", proj)
	}
}

func TestFixturesPropagateRepositoryErrors(t *testing.T) {
	svc := NewFixtureService(&stubTeamRepo{teams: fourGroups()}, &stubMatchRepo{listErr: errBackend})

	if _, err := svc.GroupFixtures(context.Background()); !errors.Is(err, ErrStatsUnavailable) {
		t.Fatalf("err = %v, want ErrStatsUnavailable", err)
	}
	if _, err := svc.KnockoutProjection(context.Background()); !errors.Is(err, ErrStatsUnavailable) {
		t.Fatalf("err = %v, want ErrStatsUnavailable", err)
	}
}
