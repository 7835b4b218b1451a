package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oac-maputo/supertaca/models"
)

// DraftView is a read-only copy of a draft as returned to clients.
type DraftView struct {
	ID      string             `json:"id"`
	Match   models.MatchDraft  `json:"match"`
	Goals   []models.GoalDraft `json:"goals"`
	Status  SubmitStatus       `json:"status"`
	Message string             `json:"message,omitempty"`
}

// Submitter performs the two-phase write of a match and its goals.
type Submitter interface {
	Submit(ctx context.Context, match models.MatchDraft, goals []models.GoalDraft) (*SubmitResult, error)
}

type draftEntry struct {
	draft     *Draft
	status    SubmitStatus
	message   string
	touchedAt time.Time
}

// DraftStore keeps one draft per operator session. Handlers run concurrently,
// so every access goes through mu.
type DraftStore struct {
	mu           sync.Mutex
	drafts       map[string]*draftEntry
	defaultRound int
	now          func() time.Time
}

func NewDraftStore(defaultRound int) *DraftStore {
	return &DraftStore{
		drafts:       make(map[string]*draftEntry),
		defaultRound: defaultRound,
		now:          time.Now,
	}
}

// Create starts an empty draft and returns it.
func (s *DraftStore) Create() DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	e := &draftEntry{draft: NewDraft(s.defaultRound), status: StatusIdle, touchedAt: s.now()}
	s.drafts[id] = e
	return e.view(id)
}

func (s *DraftStore) Get(id string) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.drafts[id]
	if !ok {
		return DraftView{}, ErrDraftNotFound
	}
	return e.view(id), nil
}

func (s *DraftStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	delete(s.drafts, id)
	return nil
}

func (s *DraftStore) SetMatchField(id, field, value string) (DraftView, error) {
	return s.mutate(id, func(d *Draft) error { return d.SetMatchField(field, value) })
}

func (s *DraftStore) AddGoalRow(id string) (DraftView, error) {
	return s.mutate(id, func(d *Draft) error {
		d.AddGoalRow()
		return nil
	})
}

func (s *DraftStore) UpdateGoal(id string, index int, field, value string) (DraftView, error) {
	return s.mutate(id, func(d *Draft) error { return d.UpdateGoal(index, field, value) })
}

// EligiblePlayers filters players against the teams currently selected in the draft.
func (s *DraftStore) EligiblePlayers(id string, players []*models.Player) ([]*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return e.draft.EligiblePlayers(players), nil
}

// Submit writes the draft through submitter. The draft is marked submitting for the
// duration of the write, and reset when the write succeeds. The banner message is set
// in every outcome. The write is not cancelled when ctx is.
func (s *DraftStore) Submit(ctx context.Context, id string, submitter Submitter) (DraftView, *SubmitResult, error) {
	s.mu.Lock()
	e, ok := s.drafts[id]
	if !ok {
		s.mu.Unlock()
		return DraftView{}, nil, ErrDraftNotFound
	}
	if e.status == StatusSubmitting {
		s.mu.Unlock()
		return DraftView{}, nil, ErrSubmissionInProgress
	}
	e.status = StatusSubmitting
	e.message = ""
	snapshot := e.draft.clone()
	s.mu.Unlock()

	result, err := submitter.Submit(context.WithoutCancel(ctx), snapshot.Match, snapshot.Goals)

	s.mu.Lock()
	defer s.mu.Unlock()

	e.status = StatusIdle
	e.touchedAt = s.now()
	switch {
	case err == nil:
		e.draft.Reset()
		e.message = MessageMatchRegistered
	case errors.Is(err, ErrTeamsRequired):
		e.message = MessageSelectBothTeams
	case IsValidationError(err):
		e.message = err.Error()
	default:
		e.message = MessageRegistrationFail
	}

	// The draft may have been deleted while the write was running; the entry
	// still holds the outcome for this caller.
	return e.view(id), result, err
}

// Sweep drops idle drafts untouched for longer than maxIdle and returns how many were removed.
func (s *DraftStore) Sweep(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for id, e := range s.drafts {
		if e.status == StatusIdle && e.touchedAt.Before(cutoff) {
			delete(s.drafts, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live drafts.
func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

func (s *DraftStore) mutate(id string, fn func(*Draft) error) (DraftView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.drafts[id]
	if !ok {
		return DraftView{}, ErrDraftNotFound
	}
	if e.status == StatusSubmitting {
		return DraftView{}, ErrSubmissionInProgress
	}
	if err := fn(e.draft); err != nil {
		return DraftView{}, fmt.Errorf("draft %s: %w", id, err)
	}
	e.touchedAt = s.now()
	return e.view(id), nil
}

func (e *draftEntry) view(id string) DraftView {
	goals := make([]models.GoalDraft, len(e.draft.Goals))
	copy(goals, e.draft.Goals)
	return DraftView{
		ID:      id,
		Match:   e.draft.Match,
		Goals:   goals,
		Status:  e.status,
		Message: e.message,
	}
}
