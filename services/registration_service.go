package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oac-maputo/supertaca/models"
	"github.com/oac-maputo/supertaca/repositories"
)

// Room and message type used for live result notifications.
const (
	ResultsRoom          = "results"
	EventMatchRegistered = "MATCH_REGISTERED"
)

// Broadcaster pushes a message to every listener of a room.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

// LiveMessage is the envelope sent to live listeners.
type LiveMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	RoomID  string      `json:"room_id,omitempty"`
}

// SubmitResult describes what a submission wrote.
type SubmitResult struct {
	Match *models.Match  `json:"match"`
	Goals []*models.Goal `json:"goals"`
	// GoalsFailed counts rows with a scorer that could not be written.
	GoalsFailed int `json:"goals_failed"`
	// GoalsSkipped counts rows dropped for having no scorer.
	GoalsSkipped int `json:"goals_skipped"`
}

type RegistrationService interface {
	Submit(ctx context.Context, match models.MatchDraft, goals []models.GoalDraft) (*SubmitResult, error)
}

type registrationService struct {
	matchRepo   repositories.MatchRepository
	goalRepo    repositories.GoalRepository
	broadcaster Broadcaster
	logger      *slog.Logger
}

// NewRegistrationService builds the submit handler. broadcaster may be nil.
func NewRegistrationService(
	matchRepo repositories.MatchRepository,
	goalRepo repositories.GoalRepository,
	broadcaster Broadcaster,
	logger *slog.Logger,
) RegistrationService {
	return &registrationService{
		matchRepo:   matchRepo,
		goalRepo:    goalRepo,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Submit writes the match, then one goal per row with a scorer, strictly in sequence.
// A failed match write aborts before any goal is written. A failed goal write is
// logged and the remaining rows are still written; nothing is rolled back.
func (s *registrationService) Submit(ctx context.Context, draft models.MatchDraft, goals []models.GoalDraft) (*SubmitResult, error) {
	match, err := matchFromDraft(draft)
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		s.logger.Error("failed to create match",
			slog.Int("home_team_id", match.HomeTeamID),
			slog.Int("away_team_id", match.AwayTeamID),
			slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrMatchPersistence, err)
	}

	result := &SubmitResult{Match: match, Goals: make([]*models.Goal, 0, len(goals))}

	for i, row := range goals {
		if row.PlayerID == "" {
			result.GoalsSkipped++
			continue
		}

		playerID, ok := selectedID(row.PlayerID)
		if !ok {
			s.logger.Error("skipping goal with non-numeric scorer",
				slog.Int("match_id", match.ID),
				slog.Int("row", i),
				slog.String("player_id", row.PlayerID))
			result.GoalsFailed++
			continue
		}

		goal := &models.Goal{
			MatchID:        match.ID,
			PlayerID:       playerID,
			AssistPlayerID: optionalID(row.AssistID),
			Minute:         leadingInt(row.Minute),
		}
		if err := s.goalRepo.Create(ctx, goal); err != nil {
			s.logger.Error("failed to create goal",
				slog.Int("match_id", match.ID),
				slog.Int("row", i),
				slog.Int("player_id", playerID),
				slog.Any("error", err))
			result.GoalsFailed++
			continue
		}
		result.Goals = append(result.Goals, goal)
	}

	s.logger.Info("match registered",
		slog.Int("match_id", match.ID),
		slog.Int("round", match.Round),
		slog.Int("goals_saved", len(result.Goals)),
		slog.Int("goals_failed", result.GoalsFailed))

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToRoom(ResultsRoom, LiveMessage{
			Type:    EventMatchRegistered,
			Payload: result,
			RoomID:  ResultsRoom,
		})
	}

	return result, nil
}

func matchFromDraft(draft models.MatchDraft) (*models.Match, error) {
	if draft.HomeTeamID == "" || draft.AwayTeamID == "" {
		return nil, ErrTeamsRequired
	}
	homeID, ok := selectedID(draft.HomeTeamID)
	if !ok {
		return nil, fmt.Errorf("%w: home %q", ErrInvalidTeamID, draft.HomeTeamID)
	}
	awayID, ok := selectedID(draft.AwayTeamID)
	if !ok {
		return nil, fmt.Errorf("%w: away %q", ErrInvalidTeamID, draft.AwayTeamID)
	}
	if homeID == awayID {
		return nil, ErrSameTeam
	}
	return &models.Match{
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomeGoals:  max(draft.HomeGoals, 0),
		AwayGoals:  max(draft.AwayGoals, 0),
		Round:      draft.Round,
	}, nil
}
