package services

import (
	"context"
	"fmt"

	"github.com/oac-maputo/supertaca/models"
	"github.com/oac-maputo/supertaca/repositories"
)

type DashboardService interface {
	GetOverview(ctx context.Context) (models.Overview, error)
}

type dashboardService struct {
	teamRepo     repositories.TeamRepository
	playerRepo   repositories.PlayerRepository
	currentRound int
}

func NewDashboardService(
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	currentRound int,
) DashboardService {
	return &dashboardService{
		teamRepo:     teamRepo,
		playerRepo:   playerRepo,
		currentRound: currentRound,
	}
}

func (s *dashboardService) GetOverview(ctx context.Context) (models.Overview, error) {
	teamsTotal, err := s.teamRepo.Count(ctx)
	if err != nil {
		return models.Overview{}, fmt.Errorf("%w: count teams: %w", ErrStatsUnavailable, err)
	}
	playersTotal, err := s.playerRepo.CountNonStaff(ctx)
	if err != nil {
		return models.Overview{}, fmt.Errorf("%w: count players: %w", ErrStatsUnavailable, err)
	}

	return models.Overview{
		TeamsTotal:   teamsTotal,
		PlayersTotal: playersTotal,
		GroupsTotal:  len(models.Groups),
		CurrentRound: s.currentRound,
	}, nil
}
