package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/guttosm/coffee-builder/internal/metrics"
	"github.com/guttosm/coffee-builder/internal/service/cache"
	"github.com/rs/zerolog/log"
)

// ErrSessionNotFound is returned for unknown, expired or evicted sessions.
var ErrSessionNotFound = errors.New("session not found")

// Session is one user's configurator, addressed by ID.
type Session struct {
	ID             string
	CatalogVersion int
	CreatedAt      time.Time

	mu           sync.Mutex
	configurator *PriceConfigurator
}

// SessionView is a consistent read of a session taken under its lock.
type SessionView struct {
	ID        string
	CreatedAt time.Time
	model.Quote
}

func (s *Session) view() *SessionView {
	return &SessionView{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Quote:     quoteOf(s.configurator, s.CatalogVersion),
	}
}

func quoteOf(p *PriceConfigurator, version int) model.Quote {
	breakdown := p.Breakdown()
	return model.Quote{
		CatalogVersion: version,
		State:          p.State(),
		Snapshot:       p.Snapshot(),
		Breakdown:      breakdown,
		Total:          breakdown.Total,
	}
}

// SessionService manages in-memory configurator sessions.
type SessionService interface {
	Create(ctx context.Context) (*SessionView, error)
	Get(ctx context.Context, id string) (*SessionView, error)
	SelectSingle(ctx context.Context, id string, category model.Category, optionID string) (*SessionView, error)
	ToggleMulti(ctx context.Context, id string, category model.Category, addonID string) (*SessionView, error)
	Reset(ctx context.Context, id string) (*SessionView, error)
	Delete(ctx context.Context, id string) error
	Count() int
}

// SessionServiceImpl keeps sessions in a TTL/LRU cache. A session pins the
// catalog version it was created with.
type SessionServiceImpl struct {
	catalogs CatalogService
	store    cache.Cache[*Session]
	opts     []ConfiguratorOption
	now      func() time.Time
}

// NewSessionService creates a session service backed by store.
func NewSessionService(catalogs CatalogService, store cache.Cache[*Session], opts ...ConfiguratorOption) *SessionServiceImpl {
	return &SessionServiceImpl{
		catalogs: catalogs,
		store:    store,
		opts:     opts,
		now:      time.Now,
	}
}

// Create starts a session on the active catalog with baseline selections.
func (s *SessionServiceImpl) Create(ctx context.Context) (*SessionView, error) {
	catalogs, version, err := s.catalogs.GetActive(ctx)
	if err != nil {
		metrics.RecordSessionOperation("create", "error")
		return nil, err
	}

	session := &Session{
		ID:             uuid.NewString(),
		CatalogVersion: version,
		CreatedAt:      s.now().UTC(),
		configurator:   NewPriceConfigurator(*catalogs, s.opts...),
	}
	s.store.Set(session.ID, session)

	metrics.RecordSessionOperation("create", "success")
	metrics.SetActiveSessions(s.store.Len())
	log.Debug().
		Str("session_id", session.ID).
		Int("catalog_version", version).
		Msg("Session created")

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.view(), nil
}

func (s *SessionServiceImpl) lookup(id string) (*Session, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// withSession runs fn under the session lock and returns the resulting view.
func (s *SessionServiceImpl) withSession(op, id string, fn func(*PriceConfigurator) error) (*SessionView, error) {
	session, err := s.lookup(id)
	if err != nil {
		metrics.RecordSessionOperation(op, "not_found")
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := fn(session.configurator); err != nil {
		metrics.RecordSessionOperation(op, "rejected")
		return nil, err
	}
	metrics.RecordSessionOperation(op, "success")
	return session.view(), nil
}

// Get returns the current view of a session.
func (s *SessionServiceImpl) Get(_ context.Context, id string) (*SessionView, error) {
	return s.withSession("get", id, func(*PriceConfigurator) error { return nil })
}

// SelectSingle replaces the selection of a single-choice category.
func (s *SessionServiceImpl) SelectSingle(_ context.Context, id string, category model.Category, optionID string) (*SessionView, error) {
	return s.withSession("select", id, func(p *PriceConfigurator) error {
		return p.SelectSingle(category, optionID)
	})
}

// ToggleMulti flips membership of an add-on in a multi-choice category.
func (s *SessionServiceImpl) ToggleMulti(_ context.Context, id string, category model.Category, addonID string) (*SessionView, error) {
	return s.withSession("toggle", id, func(p *PriceConfigurator) error {
		return p.ToggleMulti(category, addonID)
	})
}

// Reset returns a session to baseline selections.
func (s *SessionServiceImpl) Reset(_ context.Context, id string) (*SessionView, error) {
	return s.withSession("reset", id, func(p *PriceConfigurator) error {
		p.Reset()
		return nil
	})
}

// Delete discards a session.
func (s *SessionServiceImpl) Delete(_ context.Context, id string) error {
	if _, err := s.lookup(id); err != nil {
		metrics.RecordSessionOperation("delete", "not_found")
		return err
	}
	s.store.Invalidate(id)

	metrics.RecordSessionOperation("delete", "success")
	metrics.SetActiveSessions(s.store.Len())
	return nil
}

// Count returns the number of stored sessions.
func (s *SessionServiceImpl) Count() int {
	return s.store.Len()
}
