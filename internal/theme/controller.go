package theme

import (
	"fmt"
	"log/slog"
)

// AmbientSignal reports the host's color-scheme preference, if it has one.
type AmbientSignal func() (Mode, bool)

// NoAmbient is an AmbientSignal for hosts without a preference signal.
func NoAmbient() (Mode, bool) { return Dark, false }

// Controller owns the theme flag. Toggle is the only mutation entry point.
//
// A Controller is not safe for concurrent use; the web layer builds one per
// request and the terminal browser owns one for its session.
type Controller struct {
	store      Store
	mode       Mode
	memoryOnly bool
	logger     *slog.Logger
}

// NewController resolves the initial mode: persisted preference first, then
// the ambient signal, then Dark. A failing store degrades to memory-only.
func NewController(store Store, ambient AmbientSignal, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if ambient == nil {
		ambient = NoAmbient
	}
	c := &Controller{store: store, mode: Dark, logger: logger}
	if store == nil {
		c.memoryOnly = true
	}

	if m, ok := c.load(); ok {
		c.mode = m
		return c
	}
	if m, ok := ambient(); ok {
		c.mode = m
	}
	return c
}

func (c *Controller) load() (Mode, bool) {
	if c.memoryOnly {
		return Dark, false
	}
	v, ok, err := c.store.Get(PreferenceKey)
	if err != nil {
		c.logger.Warn("theme preference unavailable, using session-only theme", "err", err)
		c.memoryOnly = true
		return Dark, false
	}
	if !ok {
		return Dark, false
	}
	m, err := ParseMode(v)
	if err != nil {
		c.logger.Warn("ignoring persisted theme", "value", v, "err", err)
		return Dark, false
	}
	return m, true
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// Dark reports whether the dark theme is active.
func (c *Controller) Dark() bool { return c.mode == Dark }

// Persistent reports whether changes still reach the store.
func (c *Controller) Persistent() bool { return !c.memoryOnly }

// Palette derives the palette for the current mode.
func (c *Controller) Palette() Palette { return PaletteFor(c.mode) }

// Toggle flips the mode and persists it before returning. A persistence
// failure switches the controller to memory-only for the rest of the
// session; the returned error is informational and the flip still holds.
func (c *Controller) Toggle() (Mode, error) {
	c.mode = c.mode.Toggle()
	if c.memoryOnly {
		return c.mode, nil
	}
	if err := c.store.Set(PreferenceKey, c.mode.String()); err != nil {
		c.memoryOnly = true
		c.logger.Warn("persisting theme failed, continuing in memory", "theme", c.mode, "err", err)
		return c.mode, fmt.Errorf("persisting theme: %w", err)
	}
	return c.mode, nil
}
