package services

import (
	"context"
	"errors"
	"testing"

	"github.com/oac-maputo/supertaca/models"
)

func TestComputeStandingsPointsAndOrder(t *testing.T) {
	teams := []*models.Team{
		{ID: 1, Name: "Alto Maé", Group: "A"},
		{ID: 2, Name: "Benfica", Group: "A"},
		{ID: 3, Name: "Chamanculo", Group: "A"},
		{ID: 4, Name: "Polana", Group: "B"},
	}
	matches := []*models.Match{
		{HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 2, AwayGoals: 0},
		{HomeTeamID: 3, AwayTeamID: 1, HomeGoals: 1, AwayGoals: 1},
		{HomeTeamID: 2, AwayTeamID: 3, HomeGoals: 3, AwayGoals: 0},
		{HomeTeamID: 1, AwayTeamID: 99, HomeGoals: 9, AwayGoals: 0},
	}

	groups := ComputeStandings(teams, matches)
	if len(groups) != 2 || groups[0].Group != "A" || groups[1].Group != "B" {
		t.Fatalf("unexpected groups %+v", groups)
	}

	a := groups[0].Rows
	// Alto Maé: W1 D1 = 4 pts; Benfica: W1 L1 = 3 pts, GD +1; Chamanculo: D1 L1 = 1 pt.
	if a[0].TeamName != "Alto Maé" || a[0].Points != 4 || a[0].Played != 2 || a[0].Wins != 1 || a[0].Draws != 1 {
		t.Fatalf("unexpected leader %+v", a[0])
	}
	if a[1].TeamName != "Benfica" || a[1].Points != 3 || a[1].GoalDifference != 1 || a[1].Losses != 1 {
		t.Fatalf("unexpected second %+v", a[1])
	}
	if a[2].TeamName != "Chamanculo" || a[2].Points != 1 || a[2].GoalsFor != 1 || a[2].GoalsAgainst != 4 {
		t.Fatalf("unexpected third %+v", a[2])
	}

	b := groups[1].Rows
	if len(b) != 1 || b[0].Played != 0 {
		t.Fatalf("unknown-team match must be ignored, got %+v", b)
	}
}

func TestComputeStandingsTieBreakers(t *testing.T) {
	teams := []*models.Team{
		{ID: 1, Name: "Zimpeto", Group: "C"},
		{ID: 2, Name: "Maxaquene", Group: "C"},
		{ID: 3, Name: "Hulene", Group: "C"},
		{ID: 4, Name: "Aeroporto", Group: "C"},
	}
	matches := []*models.Match{
		{HomeTeamID: 1, AwayTeamID: 3, HomeGoals: 3, AwayGoals: 1},
		{HomeTeamID: 2, AwayTeamID: 4, HomeGoals: 2, AwayGoals: 0},
	}

	rows := ComputeStandings(teams, matches)[0].Rows
	// Same points and goal difference: more goals scored first.
	if rows[0].TeamName != "Zimpeto" || rows[1].TeamName != "Maxaquene" {
		t.Fatalf("unexpected order %+v", rows)
	}
	// Both losers: Hulene -2 scored 1, Aeroporto -2 scored 0.
	if rows[2].TeamName != "Hulene" || rows[3].TeamName != "Aeroporto" {
		t.Fatalf("unexpected bottom order %+v", rows)
	}
}

func TestStandingsPlaceholderWithoutMatches(t *testing.T) {
	svc := NewStatsService(&stubTeamRepo{teams: []*models.Team{{ID: 1, Name: "A", Group: "A"}}}, &stubMatchRepo{}, &stubGoalRepo{})

	st, err := svc.Standings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Message != PlaceholderMessage || st.MatchesPlayed != 0 {
		t.Fatalf("expected placeholder, got %+v", st)
	}
}

func TestStandingsWrapsRepositoryErrors(t *testing.T) {
	svc := NewStatsService(&stubTeamRepo{}, &stubMatchRepo{listErr: errBackend}, &stubGoalRepo{})
	if _, err := svc.Standings(context.Background()); !errors.Is(err, ErrStatsUnavailable) {
		t.Fatalf("expected ErrStatsUnavailable, got %v", err)
	}
}

func TestLeaderboards(t *testing.T) {
	goals := &stubGoalRepo{
		scorers: []*models.LeaderboardEntry{{PlayerID: 1, PlayerName: "Dino", Count: 4}},
	}
	played := &stubMatchRepo{matches: []*models.Match{{ID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 4}}}
	svc := NewStatsService(&stubTeamRepo{}, played, goals)

	scorers, err := svc.TopScorers(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scorers.Entries) != 1 || scorers.Message != "" {
		t.Fatalf("unexpected scorers %+v", scorers)
	}

	assists, err := svc.TopAssists(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assists.Entries == nil || len(assists.Entries) != 0 || assists.Message != "" {
		t.Fatalf("expected empty board without placeholder, got %+v", assists)
	}

	if _, err := svc.TopScorers(context.Background(), 0); !errors.Is(err, ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestLeaderboardPlaceholderFollowsMatches(t *testing.T) {
	tests := []struct {
		name        string
		matches     []*models.Match
		wantMessage string
	}{
		{"no matches", nil, PlaceholderMessage},
		{"goalless draw", []*models.Match{{ID: 1, HomeTeamID: 1, AwayTeamID: 2}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewStatsService(&stubTeamRepo{}, &stubMatchRepo{matches: tt.matches}, &stubGoalRepo{})

			for _, fetch := range []func(context.Context, int) (*Leaderboard, error){svc.TopScorers, svc.TopAssists} {
				board, err := fetch(context.Background(), 10)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(board.Entries) != 0 || board.Message != tt.wantMessage {
					t.Fatalf("board = %+v, want message %q", board, tt.wantMessage)
				}
			}
		})
	}
}

func TestLeaderboardCountFailure(t *testing.T) {
	svc := NewStatsService(&stubTeamRepo{}, &stubMatchRepo{listErr: errBackend}, &stubGoalRepo{})
	if _, err := svc.TopScorers(context.Background(), 10); !errors.Is(err, ErrStatsUnavailable) {
		t.Fatalf("expected ErrStatsUnavailable, got %v", err)
	}
}

func TestMatchesNeverNil(t *testing.T) {
	svc := NewStatsService(&stubTeamRepo{}, &stubMatchRepo{}, &stubGoalRepo{})

	got, err := svc.Matches(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("matches = %#v, want empty non-nil slice", got)
	}

	svc = NewStatsService(&stubTeamRepo{}, &stubMatchRepo{listErr: errBackend}, &stubGoalRepo{})
	if _, err := svc.Matches(context.Background()); !errors.Is(err, ErrStatsUnavailable) {
		t.Fatalf("err = %v, want ErrStatsUnavailable", err)
	}
}
