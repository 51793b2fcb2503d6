package viewstate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/bracketlab/bracket-stats/internal/models"
)

// ErrInvalidUpdate wraps every rejected view-state update
var ErrInvalidUpdate = errors.New("invalid view state update")

// EventPublisher receives view events. The worker pool satisfies it.
type EventPublisher interface {
	Publish(event models.ViewEvent) bool
}

// MatchupCounter reports how many matchups a region has
type MatchupCounter func(region models.Region) int

// Service creates and updates view states
type Service struct {
	store     Store
	events    EventPublisher
	count     MatchupCounter
	validator *validator.Validate
	now       func() time.Time
	locks     idLocks
}

func NewService(store Store, events EventPublisher, count MatchupCounter) *Service {
	return &Service{
		store:     store,
		events:    events,
		count:     count,
		validator: validator.New(),
		now:       time.Now,
	}
}

// Create stores a fresh default view state under a new id
func (s *Service) Create(ctx context.Context) (models.ViewState, error) {
	state := models.DefaultViewState(uuid.New().String(), s.now().UTC())
	if err := s.store.Save(ctx, state); err != nil {
		return models.ViewState{}, err
	}
	return state, nil
}

func (s *Service) Get(ctx context.Context, id string) (models.ViewState, error) {
	return s.store.Get(ctx, id)
}

// Update applies a partial update and publishes one event per changed
// selection. Changing region drops the matchup selection, like switching
// tabs in the bracket view.
func (s *Service) Update(ctx context.Context, id string, upd models.ViewStateUpdate) (models.ViewState, error) {
	if err := s.validator.Struct(upd); err != nil {
		return models.ViewState{}, fmt.Errorf("%w: %v", ErrInvalidUpdate, err)
	}

	// Read-modify-write is serialised per id within this process
	unlock := s.locks.lock(id)
	defer unlock()

	state, err := s.store.Get(ctx, id)
	if err != nil {
		return models.ViewState{}, err
	}

	var kinds []models.ViewEventKind
	if upd.Region != nil && *upd.Region != state.Region {
		state.Region = *upd.Region
		state.SelectedMatchup = nil
		kinds = append(kinds, models.EventRegionSelected)
	}
	if upd.ClearMatchup && state.SelectedMatchup != nil {
		state.SelectedMatchup = nil
		kinds = append(kinds, models.EventMatchupSelected)
	}
	if upd.SelectedMatchup != nil {
		idx := *upd.SelectedMatchup
		if s.count != nil && idx >= s.count(state.Region) {
			return models.ViewState{}, fmt.Errorf("%w: region %s has no matchup %d", ErrInvalidUpdate, state.Region, idx)
		}
		if state.SelectedMatchup == nil || *state.SelectedMatchup != idx {
			state.SelectedMatchup = &idx
			kinds = append(kinds, models.EventMatchupSelected)
		}
	}
	if upd.View != nil && *upd.View != state.View {
		state.View = *upd.View
		kinds = append(kinds, models.EventViewChanged)
	}

	if err := s.validator.Struct(state); err != nil {
		return models.ViewState{}, fmt.Errorf("%w: %v", ErrInvalidUpdate, err)
	}
	if len(kinds) == 0 {
		return state, nil
	}

	state.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, state); err != nil {
		return models.ViewState{}, err
	}

	if s.events != nil {
		for _, kind := range kinds {
			s.events.Publish(newEvent(state, kind))
		}
	}
	return state, nil
}

// idLocks hands out one mutex per view id, dropped once nobody holds it
type idLocks struct {
	mu    sync.Mutex
	locks map[string]*idLock
}

type idLock struct {
	sync.Mutex
	refs int
}

func (l *idLocks) lock(id string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*idLock)
	}
	m, ok := l.locks[id]
	if !ok {
		m = &idLock{}
		l.locks[id] = m
	}
	m.refs++
	l.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		l.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func newEvent(state models.ViewState, kind models.ViewEventKind) models.ViewEvent {
	idx := -1
	if state.SelectedMatchup != nil {
		idx = *state.SelectedMatchup
	}
	return models.ViewEvent{
		ID:           uuid.New().String(),
		ViewID:       state.ID,
		Kind:         kind,
		Region:       state.Region,
		MatchupIndex: idx,
		View:         state.View,
		Timestamp:    state.UpdatedAt,
	}
}
