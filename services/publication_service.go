package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/oac-maputo/supertaca/storage"
)

const (
	latestSnapshotKey   = "standings/latest.json"
	archiveSnapshotKeyF = "standings/archive/%s.json"
)

// Snapshot is the public document with every stats view at a point in time.
type Snapshot struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Round       int          `json:"round"`
	Standings   *Standings   `json:"standings"`
	TopScorers  *Leaderboard `json:"top_scorers"`
	TopAssists  *Leaderboard `json:"top_assists"`
}

type PublishResult struct {
	LatestURL  string `json:"latest_url"`
	ArchiveURL string `json:"archive_url"`
}

type PublicationService interface {
	Publish(ctx context.Context) (*PublishResult, error)
}

type publicationService struct {
	stats        StatsService
	uploader     storage.FileUploader
	currentRound int
	logger       *slog.Logger
	now          func() time.Time
}

// NewPublicationService builds the publisher. A nil uploader disables publishing.
func NewPublicationService(stats StatsService, uploader storage.FileUploader, currentRound int, logger *slog.Logger) PublicationService {
	return &publicationService{
		stats:        stats,
		uploader:     uploader,
		currentRound: currentRound,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *publicationService) Publish(ctx context.Context) (*PublishResult, error) {
	if s.uploader == nil {
		return nil, ErrPublishingDisabled
	}

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(snapshot, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("%w: encode snapshot: %w", ErrPublishFailed, err)
	}

	archiveKey := fmt.Sprintf(archiveSnapshotKeyF, snapshot.GeneratedAt.UTC().Format("20060102T150405Z"))
	archived, err := s.uploader.Upload(ctx, archiveKey, storage.ContentTypeJSON, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}
	latest, err := s.uploader.Upload(ctx, latestSnapshotKey, storage.ContentTypeJSON, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}

	s.logger.Info("standings published",
		slog.String("latest", latest.Location),
		slog.String("archive", archived.Location))

	return &PublishResult{LatestURL: latest.Location, ArchiveURL: archived.Location}, nil
}

func (s *publicationService) snapshot(ctx context.Context) (*Snapshot, error) {
	standings, err := s.stats.Standings(ctx)
	if err != nil {
		return nil, err
	}
	scorers, err := s.stats.TopScorers(ctx, DefaultLeaderboardLimit)
	if err != nil {
		return nil, err
	}
	assists, err := s.stats.TopAssists(ctx, DefaultLeaderboardLimit)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		GeneratedAt: s.now(),
		Round:       s.currentRound,
		Standings:   standings,
		TopScorers:  scorers,
		TopAssists:  assists,
	}, nil
}
