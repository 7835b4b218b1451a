package services

import (
	"context"
	"fmt"

	"github.com/oac-maputo/supertaca/fixtures"
	"github.com/oac-maputo/supertaca/models"
	"github.com/oac-maputo/supertaca/repositories"
)

const knockoutUnavailableMessage = "knockout needs an even number of groups with at least two teams each"

// ScheduledFixture is a group fixture and, once played, its recorded result.
type ScheduledFixture struct {
	fixtures.Fixture
	Played    bool `json:"played"`
	HomeGoals *int `json:"home_goals,omitempty"`
	AwayGoals *int `json:"away_goals,omitempty"`
}

type GroupFixtures struct {
	Group    string             `json:"group"`
	Fixtures []ScheduledFixture `json:"fixtures"`
}

type FixtureList struct {
	Groups  []GroupFixtures `json:"groups"`
	Message string          `json:"message,omitempty"`
}

type KnockoutProjection struct {
	Matches []fixtures.KnockoutMatch `json:"matches"`
	Message string                   `json:"message,omitempty"`
}

type FixtureService interface {
	GroupFixtures(ctx context.Context) (*FixtureList, error)
	KnockoutProjection(ctx context.Context) (*KnockoutProjection, error)
}

type fixtureService struct {
	teamRepo  repositories.TeamRepository
	matchRepo repositories.MatchRepository
}

func NewFixtureService(teamRepo repositories.TeamRepository, matchRepo repositories.MatchRepository) FixtureService {
	return &fixtureService{teamRepo: teamRepo, matchRepo: matchRepo}
}

func (s *fixtureService) load(ctx context.Context) ([]*models.Team, []*models.Match, error) {
	teams, err := s.teamRepo.ListOrderedByName(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: teams: %w", ErrStatsUnavailable, err)
	}
	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: matches: %w", ErrStatsUnavailable, err)
	}
	return teams, matches, nil
}

func (s *fixtureService) GroupFixtures(ctx context.Context) (*FixtureList, error) {
	teams, matches, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[string][]int)
	for _, t := range teams {
		if t == nil {
			continue
		}
		byGroup[t.Group] = append(byGroup[t.Group], t.ID)
	}

	// Latest result per unordered pair of teams.
	results := make(map[[2]int]*models.Match, len(matches))
	for _, m := range matches {
		if m == nil {
			continue
		}
		results[pairKey(m.HomeTeamID, m.AwayTeamID)] = m
	}

	out := &FixtureList{Groups: make([]GroupFixtures, 0, len(byGroup))}
	for _, label := range groupOrder(byGroup) {
		schedule, err := fixtures.RoundRobin{}.Generate(byGroup[label])
		if err != nil {
			// A group with a single team has nothing to schedule.
			out.Groups = append(out.Groups, GroupFixtures{Group: label, Fixtures: []ScheduledFixture{}})
			continue
		}
		group := GroupFixtures{Group: label, Fixtures: make([]ScheduledFixture, 0, len(schedule))}
		for _, f := range schedule {
			sf := ScheduledFixture{Fixture: f}
			if m, ok := results[pairKey(f.HomeTeamID, f.AwayTeamID)]; ok {
				home, away := m.HomeGoals, m.AwayGoals
				if m.HomeTeamID != f.HomeTeamID {
					home, away = away, home
				}
				sf.Played = true
				sf.HomeGoals = &home
				sf.AwayGoals = &away
			}
			group.Fixtures = append(group.Fixtures, sf)
		}
		out.Groups = append(out.Groups, group)
	}

	if len(matches) == 0 {
		out.Message = PlaceholderMessage
	}
	return out, nil
}

func (s *fixtureService) KnockoutProjection(ctx context.Context) (*KnockoutProjection, error) {
	teams, matches, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	tables := ComputeStandings(teams, matches)
	out := &KnockoutProjection{Matches: []fixtures.KnockoutMatch{}}
	if len(tables) < 2 || len(tables)%2 != 0 {
		out.Message = knockoutUnavailableMessage
		return out, nil
	}
	for _, g := range tables {
		if len(g.Rows) < 2 {
			out.Message = knockoutUnavailableMessage
			return out, nil
		}
	}

	// Paired groups (A,B) feed opposite halves: A1-B2 and B1-A2 land in
	// different halves so the two winners can only meet in the final.
	pairs := len(tables) / 2
	top := make([]fixtures.Entrant, 0, pairs*2)
	bottom := make([]fixtures.Entrant, 0, pairs*2)
	for i := 0; i < len(tables); i += 2 {
		a, b := tables[i], tables[i+1]
		top = append(top, entrant(a, 0), entrant(b, 1))
		bottom = append(bottom, entrant(b, 0), entrant(a, 1))
	}

	bracket, err := fixtures.Knockout(append(top, bottom...))
	if err != nil {
		return nil, err
	}
	out.Matches = bracket
	if len(matches) == 0 {
		out.Message = PlaceholderMessage
	}
	return out, nil
}

func entrant(g models.GroupStandings, pos int) fixtures.Entrant {
	return fixtures.Entrant{
		TeamID: g.Rows[pos].TeamID,
		Label:  fmt.Sprintf("%d%s", pos+1, g.Group),
	}
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
