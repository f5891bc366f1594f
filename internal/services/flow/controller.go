package flow

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/blackpdx/ggokka-ot/internal/model"
)

// BackPolicy selects where back leads from the onboarding screens
type BackPolicy string

const (
	// BackLinear steps back one onboarding screen at a time
	BackLinear BackPolicy = "linear"
	// BackToAuth returns from profile and body photo setup straight to login
	BackToAuth BackPolicy = "to-auth"
)

// Config holds settings for the flow controller
type Config struct {
	BackPolicy BackPolicy

	// Unavailable screens cannot be entered. Transitions towards them fail
	// with model.ErrScreenUnavailable.
	Unavailable []model.Screen

	// FallbackHome sends unrecognised events on a main screen to home
	// instead of ignoring them, as long as a user is signed in.
	FallbackHome bool
}

// DefaultConfig returns the default flow configuration
func DefaultConfig() Config {
	return Config{
		BackPolicy: BackLinear,
	}
}

// Controller owns the current screen and the session state.
// It is not safe for concurrent use; callers serialise access.
type Controller struct {
	cfg         Config
	back        map[model.Screen]model.Screen
	unavailable map[model.Screen]bool
	logger      *slog.Logger

	screen  model.Screen
	session model.Session
}

// NewController creates a controller positioned on the splash screen
func NewController(cfg Config, logger *slog.Logger) *Controller {
	if cfg.BackPolicy == "" {
		cfg.BackPolicy = BackLinear
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	unavailable := make(map[model.Screen]bool, len(cfg.Unavailable))
	for _, s := range cfg.Unavailable {
		unavailable[s] = true
	}
	c := &Controller{
		cfg:         cfg,
		back:        predecessors(cfg.BackPolicy),
		unavailable: unavailable,
		logger:      logger,
	}
	c.Start()
	return c
}

// Start resets the controller to the splash screen with an empty session.
func (c *Controller) Start() model.Screen {
	c.screen = model.ScreenSplash
	c.session = model.Session{}
	return c.screen
}

// Screen returns the current screen
func (c *Controller) Screen() model.Screen {
	return c.screen
}

// Session returns a copy of the session state
func (c *Controller) Session() model.Session {
	return c.session
}

// Available reports whether s can be entered.
func (c *Controller) Available(s model.Screen) bool {
	return !c.unavailable[s]
}

// Transition applies event to the current screen. Events that are not in the
// dispatch table for the current screen leave the state untouched.
func (c *Controller) Transition(event model.Event, payload model.Payload) (model.Screen, error) {
	t, ok := transitions[transitionKey{from: c.screen, event: event}]
	if !ok {
		if c.cfg.FallbackHome && c.session.SignedIn() && c.screen.IsMain() {
			c.logger.Debug("unrecognised event, falling back to home",
				slog.String("screen", string(c.screen)),
				slog.String("event", string(event)))
			c.screen = model.ScreenHome
			return c.screen, nil
		}
		return c.screen, fmt.Errorf("%w: %s on %s", model.ErrInvalidTransition, event, c.screen)
	}

	if c.unavailable[t.target] {
		return c.screen, fmt.Errorf("%w: %s", model.ErrScreenUnavailable, t.target)
	}

	c.apply(t.effect, payload)
	c.logger.Debug("screen transition",
		slog.String("from", string(c.screen)),
		slog.String("event", string(event)),
		slog.String("to", string(t.target)))
	c.screen = t.target
	return c.screen, nil
}

// Back moves to the predecessor of the current screen.
func (c *Controller) Back() (model.Screen, error) {
	prev, ok := c.back[c.screen]
	if !ok {
		return c.screen, fmt.Errorf("%w: %s", model.ErrNoPredecessor, c.screen)
	}
	c.screen = prev
	return c.screen, nil
}

// CanBack reports whether the current screen has a predecessor.
func (c *Controller) CanBack() bool {
	_, ok := c.back[c.screen]
	return ok
}

// Events returns the events accepted on the current screen, sorted by name.
// Events leading to unavailable screens are left out.
func (c *Controller) Events() []model.Event {
	var events []model.Event
	for key, t := range transitions {
		if key.from != c.screen || c.unavailable[t.target] {
			continue
		}
		events = append(events, key.event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	return events
}

func (c *Controller) apply(e effect, payload model.Payload) {
	switch e {
	case effectSetName:
		if name := strings.TrimSpace(payload.Name); name != "" {
			c.session.UserName = name
		}
		if email := strings.TrimSpace(payload.Email); email != "" {
			c.session.Email = email
		}
	case effectClearSession:
		c.session = model.Session{}
	case effectIncLoved:
		c.session.LovedCount++
	case effectIncBlocked:
		c.session.BlockedCount++
	}
}
