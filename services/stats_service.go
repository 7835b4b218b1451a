package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/oac-maputo/supertaca/models"
	"github.com/oac-maputo/supertaca/repositories"
)

// PlaceholderMessage is shown by every stats view until a match is recorded.
const PlaceholderMessage = "stats available after first matches"

const (
	pointsWin  = 3
	pointsDraw = 1

	DefaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

type Leaderboard struct {
	Entries []*models.LeaderboardEntry `json:"entries"`
	Message string                     `json:"message,omitempty"`
}

type Standings struct {
	Groups        []models.GroupStandings `json:"groups"`
	MatchesPlayed int                     `json:"matches_played"`
	Message       string                  `json:"message,omitempty"`
}

type StatsService interface {
	TopScorers(ctx context.Context, limit int) (*Leaderboard, error)
	TopAssists(ctx context.Context, limit int) (*Leaderboard, error)
	Standings(ctx context.Context) (*Standings, error)
	// Matches lists recorded matches by round.
	Matches(ctx context.Context) ([]*models.Match, error)
}

type statsService struct {
	teamRepo  repositories.TeamRepository
	matchRepo repositories.MatchRepository
	goalRepo  repositories.GoalRepository
}

func NewStatsService(
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	goalRepo repositories.GoalRepository,
) StatsService {
	return &statsService{
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		goalRepo:  goalRepo,
	}
}

func (s *statsService) TopScorers(ctx context.Context, limit int) (*Leaderboard, error) {
	return s.leaderboard(ctx, limit, "scorers", s.goalRepo.TopScorers)
}

func (s *statsService) TopAssists(ctx context.Context, limit int) (*Leaderboard, error) {
	return s.leaderboard(ctx, limit, "assists", s.goalRepo.TopAssists)
}

func (s *statsService) leaderboard(
	ctx context.Context,
	limit int,
	kind string,
	fetch func(context.Context, int) ([]*models.LeaderboardEntry, error),
) (*Leaderboard, error) {
	if limit < 1 || limit > maxLeaderboardLimit {
		return nil, ErrInvalidLimit
	}
	entries, err := fetch(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: top %s: %w", ErrStatsUnavailable, kind, err)
	}
	if entries == nil {
		entries = []*models.LeaderboardEntry{}
	}
	// The placeholder follows recorded matches, not entries: a goalless round
	// still leaves the boards empty.
	played, err := s.matchRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count matches: %w", ErrStatsUnavailable, err)
	}
	board := &Leaderboard{Entries: entries}
	if played == 0 {
		board.Message = PlaceholderMessage
	}
	return board, nil
}

func (s *statsService) Standings(ctx context.Context) (*Standings, error) {
	teams, err := s.teamRepo.ListOrderedByName(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: teams: %w", ErrStatsUnavailable, err)
	}
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: matches: %w", ErrStatsUnavailable, err)
	}

	out := &Standings{
		Groups:        ComputeStandings(teams, matches),
		MatchesPlayed: len(matches),
	}
	if len(matches) == 0 {
		out.Message = PlaceholderMessage
	}
	return out, nil
}

func (s *statsService) Matches(ctx context.Context) ([]*models.Match, error) {
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: matches: %w", ErrStatsUnavailable, err)
	}
	if matches == nil {
		matches = []*models.Match{}
	}
	return matches, nil
}

// ComputeStandings builds one table per group. Rows are ordered by points, goal
// difference, goals for, then team name. Matches between teams of different groups
// still count for both teams; matches naming an unknown team are ignored.
func ComputeStandings(teams []*models.Team, matches []*models.Match) []models.GroupStandings {
	rows := make(map[int]*models.StandingRow, len(teams))
	for _, t := range teams {
		if t == nil {
			continue
		}
		rows[t.ID] = &models.StandingRow{TeamID: t.ID, TeamName: t.Name, Group: t.Group}
	}

	for _, m := range matches {
		if m == nil {
			continue
		}
		home, okHome := rows[m.HomeTeamID]
		away, okAway := rows[m.AwayTeamID]
		if !okHome || !okAway {
			continue
		}
		record(home, m.HomeGoals, m.AwayGoals)
		record(away, m.AwayGoals, m.HomeGoals)
	}

	byGroup := make(map[string][]models.StandingRow)
	for _, r := range rows {
		r.GoalDifference = r.GoalsFor - r.GoalsAgainst
		byGroup[r.Group] = append(byGroup[r.Group], *r)
	}

	groups := make([]models.GroupStandings, 0, len(byGroup))
	for _, label := range groupOrder(byGroup) {
		table := byGroup[label]
		sort.SliceStable(table, func(i, j int) bool {
			a, b := table[i], table[j]
			if a.Points != b.Points {
				return a.Points > b.Points
			}
			if a.GoalDifference != b.GoalDifference {
				return a.GoalDifference > b.GoalDifference
			}
			if a.GoalsFor != b.GoalsFor {
				return a.GoalsFor > b.GoalsFor
			}
			return strings.ToLower(a.TeamName) < strings.ToLower(b.TeamName)
		})
		groups = append(groups, models.GroupStandings{Group: label, Rows: table})
	}
	return groups
}

func record(row *models.StandingRow, scored, conceded int) {
	row.Played++
	row.GoalsFor += scored
	row.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		row.Wins++
		row.Points += pointsWin
	case scored == conceded:
		row.Draws++
		row.Points += pointsDraw
	default:
		row.Losses++
	}
}

// groupOrder lists the known groups first, then any other label alphabetically.
func groupOrder[T any](byGroup map[string]T) []string {
	order := make([]string, 0, len(byGroup))
	known := make(map[string]bool, len(models.Groups))
	for _, g := range models.Groups {
		known[g] = true
		if _, ok := byGroup[g]; ok {
			order = append(order, g)
		}
	}
	var extra []string
	for g := range byGroup {
		if !known[g] {
			extra = append(extra, g)
		}
	}
	sort.Strings(extra)
	return append(order, extra...)
}
