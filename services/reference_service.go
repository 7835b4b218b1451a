package services

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/oac-maputo/supertaca/models"
	"github.com/oac-maputo/supertaca/repositories"
)

// ReferenceData is the team and player catalogue the registration form works with.
type ReferenceData struct {
	Teams   []*models.Team   `json:"teams"`
	Players []*models.Player `json:"players"`
	Loaded  bool             `json:"loaded"`
}

type ReferenceService interface {
	// Load fetches teams and non-staff players concurrently. It never fails:
	// a fetch that errors leaves its collection empty and is only logged.
	Load(ctx context.Context) *ReferenceData
}

type referenceService struct {
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
	logger     *slog.Logger
}

func NewReferenceService(
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	logger *slog.Logger,
) ReferenceService {
	return &referenceService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

func (s *referenceService) Load(ctx context.Context) *ReferenceData {
	data := &ReferenceData{
		Teams:   []*models.Team{},
		Players: []*models.Player{},
	}

	// A plain Group: one failed fetch must not cancel the other.
	var g errgroup.Group

	g.Go(func() error {
		teams, err := s.teamRepo.ListOrderedByName(ctx)
		if err != nil {
			s.logger.Error("failed to load teams", slog.Any("error", err))
			return nil
		}
		if teams != nil {
			data.Teams = teams
		}
		return nil
	})

	g.Go(func() error {
		players, err := s.playerRepo.ListNonStaff(ctx)
		if err != nil {
			s.logger.Error("failed to load players", slog.Any("error", err))
			return nil
		}
		if players != nil {
			data.Players = players
		}
		return nil
	})

	_ = g.Wait()
	data.Loaded = true
	return data
}
