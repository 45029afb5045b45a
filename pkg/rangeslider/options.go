package rangeslider

// TieBreak selects how a crossed pair (lower > upper) is resolved.
type TieBreak int

const (
	// PullUpper moves the upper handle onto the lower one, as the legacy slider
	// did. It is the default.
	PullUpper TieBreak = iota
	// PullLower moves the lower handle onto the upper one.
	PullLower
)

// Option configures a Controller.
type Option func(*Controller)

// WithDisplays sets the surfaces that echo the lower and upper bound as text.
// Nil entries are skipped.
func WithDisplays(lower, upper Display) Option {
	return func(c *Controller) {
		c.displayLower = lower
		c.displayUpper = upper
	}
}

// WithSinks sets the value-carrying fields mirroring the bounds. Nil entries
// are skipped.
func WithSinks(lower, upper Sink) Option {
	return func(c *Controller) {
		c.sinkLower = lower
		c.sinkUpper = upper
	}
}

// WithObserver registers the change callbacks.
func WithObserver(obs Observer) Option {
	return func(c *Controller) {
		c.observer = obs
	}
}

// WithTieBreak overrides the crossed-pair resolution.
func WithTieBreak(tb TieBreak) Option {
	return func(c *Controller) {
		if tb == PullUpper || tb == PullLower {
			c.tieBreak = tb
		}
	}
}

// WithLegacyZeroFloor snaps an under-range lower value to the literal 0 instead
// of the domain minimum, as the legacy slider did. The final domain clamp still
// lifts the result back to min when min is above zero, so in practice the
// option only changes the outcome for domains with a negative minimum.
func WithLegacyZeroFloor() Option {
	return func(c *Controller) {
		c.legacyZeroFloor = true
	}
}

// WithPrecision rounds raw values to the given number of decimals before
// clamping. Negative values disable rounding.
func WithPrecision(decimals int) Option {
	return func(c *Controller) {
		c.precision = decimals
	}
}

// WithFormatter overrides the text formatting used for displays and sinks.
func WithFormatter(fn func(float64) string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.format = fn
		}
	}
}
