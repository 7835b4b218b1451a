package services

import "errors"

// Validation errors. Nothing is written when one of these is returned.
var (
	ErrTeamsRequired        = errors.New("both home and away teams must be selected")
	ErrInvalidTeamID        = errors.New("team selection is not a valid id")
	ErrSameTeam             = errors.New("home and away teams must be different")
	ErrInvalidDraftField    = errors.New("unknown draft field")
	ErrGoalRowOutOfRange    = errors.New("goal row index out of range")
	ErrInvalidLimit         = errors.New("limit must be between 1 and 100")
	ErrDraftNotFound        = errors.New("draft not found")
	ErrSubmissionInProgress = errors.New("draft submission already in progress")
)

// Persistence errors.
var (
	// ErrMatchPersistence aborts the whole submission; no goal is written after it.
	ErrMatchPersistence = errors.New("failed to persist match")
	ErrStatsUnavailable = errors.New("failed to load statistics")
	ErrPublishFailed    = errors.New("failed to publish standings")
)

// ErrPublishingDisabled is returned when no bucket is configured.
var ErrPublishingDisabled = errors.New("standings publishing is not configured")

// IsValidationError reports whether err is one of the draft validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTeamsRequired) ||
		errors.Is(err, ErrInvalidTeamID) ||
		errors.Is(err, ErrSameTeam)
}
