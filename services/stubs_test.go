package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/oac-maputo/supertaca/models"
	"github.com/oac-maputo/supertaca/storage"
)

var errBackend = errors.New("backend unavailable")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubTeamRepo struct {
	teams []*models.Team
	err   error
	// onList, when set, runs before the list is returned.
	onList func()
}

func (s *stubTeamRepo) ListOrderedByName(ctx context.Context) ([]*models.Team, error) {
	if s.onList != nil {
		s.onList()
	}
	return s.teams, s.err
}

func (s *stubTeamRepo) Count(ctx context.Context) (int, error) { return len(s.teams), s.err }

type stubPlayerRepo struct {
	players []*models.Player
	err     error
	onList  func()
}

func (s *stubPlayerRepo) ListNonStaff(ctx context.Context) ([]*models.Player, error) {
	if s.onList != nil {
		s.onList()
	}
	return s.players, s.err
}

func (s *stubPlayerRepo) CountNonStaff(ctx context.Context) (int, error) {
	return len(s.players), s.err
}

type stubMatchRepo struct {
	mu      sync.Mutex
	created []*models.Match
	matches []*models.Match
	nextID  int
	err     error
	listErr error
	// block, when set, holds Create until it is closed.
	block chan struct{}
}

func (s *stubMatchRepo) Create(ctx context.Context, m *models.Match) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, m)
	if s.err != nil {
		return s.err
	}
	s.nextID++
	m.ID = s.nextID
	return nil
}

func (s *stubMatchRepo) List(ctx context.Context) ([]*models.Match, error) {
	return s.matches, s.listErr
}

func (s *stubMatchRepo) Count(ctx context.Context) (int, error) { return len(s.matches), s.listErr }

type stubGoalRepo struct {
	created []*models.Goal
	// failFor makes Create fail for these scorer ids.
	failFor map[int]bool
	scorers []*models.LeaderboardEntry
	assists []*models.LeaderboardEntry
	err     error
}

func (s *stubGoalRepo) Create(ctx context.Context, g *models.Goal) error {
	s.created = append(s.created, g)
	if s.failFor[g.PlayerID] {
		return errBackend
	}
	g.ID = len(s.created)
	return nil
}

func (s *stubGoalRepo) TopScorers(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	return s.scorers, s.err
}

func (s *stubGoalRepo) TopAssists(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	return s.assists, s.err
}

type stubBroadcaster struct {
	rooms    []string
	messages []interface{}
}

func (s *stubBroadcaster) BroadcastToRoom(roomID string, message interface{}) {
	s.rooms = append(s.rooms, roomID)
	s.messages = append(s.messages, message)
}

type stubUploader struct {
	keys   []string
	bodies []string
	err    error
}

func (s *stubUploader) Upload(ctx context.Context, key, contentType string, r io.Reader) (*storage.UploadResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	b, _ := io.ReadAll(r)
	s.keys = append(s.keys, key)
	s.bodies = append(s.bodies, string(b))
	return &storage.UploadResult{Key: key, Location: s.GetPublicURL(key)}, nil
}

func (s *stubUploader) GetPublicURL(key string) string { return "https://cdn.example.com/" + key }
