// Package session keeps one screen flow per browser.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/clock"
	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/flow"
	"github.com/blackpdx/ggokka-ot/internal/services/forms"
)

// CookieName is the cookie carrying the session id
const CookieName = "app_session"

// Analysis is the body photo analysis state of a session
type Analysis struct {
	JobID   string
	Running bool
	Profile *model.BodyProfile
	Error   string
}

// Session is one browser's flow state. Lock it before touching any field.
type Session struct {
	ID string

	mu       sync.Mutex
	Flow     *flow.Controller
	Signup   *forms.SignupForm
	Profile  *forms.ProfileForm
	Outfits  []model.Outfit
	Analysis Analysis

	cancelAnalysis context.CancelFunc
	lastSeen       time.Time // guarded by the store lock
}

// Lock locks the session
func (s *Session) Lock() { s.mu.Lock() }

// Unlock unlocks the session
func (s *Session) Unlock() { s.mu.Unlock() }

// Reset restarts the flow at splash and discards forms and analysis.
// The caller holds the lock.
func (s *Session) Reset(styles []string) {
	s.Flow.Start()
	s.ClearForms(styles)
}

// ClearForms discards form input, outfits and analysis without moving the
// flow. The caller holds the lock.
func (s *Session) ClearForms(styles []string) {
	s.Signup = forms.NewSignupForm()
	s.Profile = forms.NewProfileForm(styles)
	s.Outfits = nil
	s.CancelAnalysis()
	s.Analysis = Analysis{}
}

// SetAnalysisCancel records how to stop the running analysis.
// The caller holds the lock.
func (s *Session) SetAnalysisCancel(cancel context.CancelFunc) {
	s.cancelAnalysis = cancel
}

// CancelAnalysis stops a running analysis. The caller holds the lock.
func (s *Session) CancelAnalysis() {
	if s.cancelAnalysis != nil {
		s.cancelAnalysis()
		s.cancelAnalysis = nil
	}
}

// Config holds settings for new sessions
type Config struct {
	Flow flow.Config
	// Styles offered by the profile form
	Styles []string
	// IdleTimeout is how long an untouched session is kept; zero keeps it forever
	IdleTimeout time.Duration
}

// Store holds every live session
type Store struct {
	cfg    Config
	clock  clock.Clock
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty Store
func NewStore(cfg Config, clk clock.Clock, logger *slog.Logger) *Store {
	return &Store{
		cfg:      cfg,
		clock:    clk,
		logger:   logger.With(slog.String("component", "sessions")),
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session on the splash screen
func (st *Store) Create() *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Flow:     flow.NewController(st.cfg.Flow, st.logger),
		lastSeen: st.clock.Now(),
	}
	s.Reset(st.cfg.Styles)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	st.logger.Debug("session created", slog.String("session", s.ID))
	return s
}

// Get returns a session by id and marks it as seen
func (st *Store) Get(id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if ok {
		s.lastSeen = st.clock.Now()
	}
	return s, ok
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Prune drops sessions idle for longer than the idle timeout and returns
// their ids.
func (st *Store) Prune() []string {
	if st.cfg.IdleTimeout <= 0 {
		return nil
	}
	cutoff := st.clock.Now().Add(-st.cfg.IdleTimeout)

	st.mu.Lock()
	var expired []*Session
	for id, s := range st.sessions {
		if s.lastSeen.Before(cutoff) {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()

	ids := make([]string, 0, len(expired))
	for _, s := range expired {
		s.Lock()
		s.CancelAnalysis()
		s.Unlock()
		ids = append(ids, s.ID)
	}
	if len(ids) > 0 {
		st.logger.Info("sessions pruned", slog.Int("count", len(ids)))
	}
	return ids
}
