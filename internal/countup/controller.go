// Package countup implements the counter state machine and its render model.
// It is free of any UI toolkit; the host loop drives it with fixed-timestep
// Update calls and key events, and reads back a positioned render model.
package countup

import "time"

// Shared defaults used by both the binary and the config loader.
const (
	// DefaultSecondsPerYear is how long the count-up animation spends per
	// year of elapsed time. The whole animation takes at least this long.
	DefaultSecondsPerYear = 1.0

	// DefaultTickRate is the fixed-timestep rate in ticks per second.
	DefaultTickRate = 60

	// DefaultTheme selects the palette when none is configured.
	DefaultTheme = "default"
)

// idleRecheckEvery rate-limits day-rollover checks while idle. Checking every
// tick would also be correct, just wasteful.
const idleRecheckEvery = time.Second

// Mode selects which breakdown of the day count is displayed.
type Mode int

const (
	// ModeSplit decomposes the count into years, months, and days.
	ModeSplit Mode = iota
	// ModeDiff shows the same span as days, weeks, months, and years.
	ModeDiff
)

// Key is a logical input recognized by the controller. The host keymap
// translates terminal key events into these.
type Key int

const (
	// KeyQuit requests a clean exit.
	KeyQuit Key = iota
	// KeyToggle restarts the animation and flips the display mode.
	KeyToggle
)

// Config carries the tunables the controller is constructed with.
// Zero values fall back to the package defaults.
type Config struct {
	SecondsPerYear float64
	Layout         Layout
	Now            func() time.Time
}

// Controller animates a day counter from zero up to the true elapsed-day
// count, then idles and reconciles against the clock for day rollovers.
// It must only be mutated through Update and OnKey.
type Controller struct {
	totalDays     int
	displayedDays int

	// budget drains by the tick duration each Update; every whole-day step
	// pays stepCost back in. Negative budget means a step is owed.
	budget   float64
	stepCost float64

	startLabel string
	startDate  time.Time
	mode       Mode
	exit       bool

	secondsPerYear float64
	layout         Layout
	now            func() time.Time
	nextRecheck    time.Time
}

// New creates a controller for totalDays elapsed days since start.
// label is the preformatted start date shown in the heading.
func New(totalDays int, label string, start time.Time, cfg Config) *Controller {
	if cfg.SecondsPerYear <= 0 {
		cfg.SecondsPerYear = DefaultSecondsPerYear
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Layout == (Layout{}) {
		cfg.Layout = DefaultLayout()
	}

	c := &Controller{
		totalDays:      totalDays,
		startLabel:     label,
		startDate:      start,
		mode:           ModeSplit,
		secondsPerYear: cfg.SecondsPerYear,
		layout:         cfg.Layout,
		now:            cfg.Now,
	}
	c.stepCost = stepCost(totalDays, c.secondsPerYear)
	return c
}

// stepCost returns the animation seconds each day step costs: the full run
// lasts one secondsPerYear unit per started year, at minimum one unit.
func stepCost(totalDays int, secondsPerYear float64) float64 {
	if totalDays <= 0 {
		return 0
	}
	years := (totalDays + 364) / 365
	if years < 1 {
		years = 1
	}
	return float64(years) * secondsPerYear / float64(totalDays)
}

// Update advances the controller by one fixed timestep. While animating it
// converts accrued budget into whole-day steps; once caught up it reconciles
// the true day count so long-running sessions absorb day rollovers.
func (c *Controller) Update(tick time.Duration) {
	if c.displayedDays < c.totalDays {
		for c.budget < 0 && c.displayedDays < c.totalDays {
			c.displayedDays++
			c.budget += c.stepCost
		}
		c.budget -= tick.Seconds()
		return
	}

	now := c.now()
	if now.Before(c.nextRecheck) {
		return
	}
	c.nextRecheck = now.Add(idleRecheckEvery)

	if days := DaysBetween(c.startDate, now); days != c.totalDays {
		// The user already watched the full count; a rollover snaps
		// instantly instead of re-animating.
		c.totalDays = days
		c.displayedDays = days
		c.stepCost = stepCost(days, c.secondsPerYear)
	}
}

// OnKey applies the pressed keys. Quit takes precedence over toggle.
func (c *Controller) OnKey(keys ...Key) {
	for _, k := range keys {
		if k == KeyQuit {
			c.exit = true
			return
		}
	}
	for _, k := range keys {
		if k == KeyToggle {
			c.displayedDays = 0
			c.budget = 0
			if c.mode == ModeSplit {
				c.mode = ModeDiff
			} else {
				c.mode = ModeSplit
			}
			return
		}
	}
}

// ShouldExit reports whether the quit key has been pressed.
func (c *Controller) ShouldExit() bool { return c.exit }

// Animating reports whether the displayed count is still catching up.
func (c *Controller) Animating() bool { return c.displayedDays < c.totalDays }

// Mode returns the active display mode.
func (c *Controller) Mode() Mode { return c.mode }

// DisplayedDays returns the day count currently shown.
func (c *Controller) DisplayedDays() int { return c.displayedDays }

// TotalDays returns the target day count as of the last reconciliation.
func (c *Controller) TotalDays() int { return c.totalDays }

// DaysBetween returns the whole days elapsed from start to now.
func DaysBetween(start, now time.Time) int {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}
