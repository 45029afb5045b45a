package rangeslider

import (
	"errors"
	"math"
	"strconv"
)

// ErrInvalidDomain is returned when the configured [min, max] domain is empty
// or not finite.
var ErrInvalidDomain = errors.New("rangeslider: invalid domain")

// Bounds is the normalised (lower, upper) pair.
type Bounds struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Controller owns one bounds pair. It is not safe for concurrent use; every
// call is expected to run inside a single event dispatch.
type Controller struct {
	min, max float64
	bounds   Bounds

	displayLower, displayUpper Display
	sinkLower, sinkUpper       Sink
	observer                   Observer

	tieBreak        TieBreak
	legacyZeroFloor bool
	precision       int
	format          func(float64) string
}

// New constructs a Controller for the [min, max] domain. Start values are
// clamped into the domain and reordered so lower <= upper; they are echoed to
// the displays but not to the sinks or observers.
func New(min, max, startLower, startUpper float64, opts ...Option) (*Controller, error) {
	if !finite(min) || !finite(max) || min > max {
		return nil, ErrInvalidDomain
	}

	c := &Controller{
		min:       min,
		max:       max,
		tieBreak:  PullUpper,
		precision: -1,
		format:    Format,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	lower, upper := c.clampInto(startLower), c.clampInto(startUpper)
	if lower > upper {
		lower, upper = upper, lower
	}
	c.bounds = Bounds{Lower: lower, Upper: upper}
	c.publishDisplays()
	return c, nil
}

// Update normalises a raw pair and publishes the result. The steps run in a
// fixed order: floor snap, ceiling snap, cross clamp (upper := lower) and the
// symmetric clamp (lower := upper). Publishing happens on every call, even
// when the bounds did not change.
func (c *Controller) Update(rawLower, rawUpper float64) Bounds {
	lower, upper := c.round(rawLower), c.round(rawUpper)
	if math.IsNaN(lower) {
		lower = c.floor()
	}
	if math.IsNaN(upper) {
		upper = c.max
	}

	if lower < c.min {
		lower = c.floor()
	}
	if upper > c.max {
		upper = c.max
	}
	if c.tieBreak == PullUpper && upper < lower {
		upper = lower
	}
	if lower > upper {
		lower = upper
	}

	// The raw pair may sit entirely outside the domain (both above max or
	// both below min); pull it back so the invariant holds.
	lower, upper = c.clampInto(lower), c.clampInto(upper)

	c.bounds = Bounds{Lower: lower, Upper: upper}
	c.publishDisplays()
	c.publishSinks()
	c.observer.notify(c.bounds)
	return c.bounds
}

// Bounds returns the current pair.
func (c *Controller) Bounds() Bounds {
	return c.bounds
}

// Domain returns the configured minimum and maximum.
func (c *Controller) Domain() (float64, float64) {
	return c.min, c.max
}

func (c *Controller) floor() float64 {
	if c.legacyZeroFloor {
		return 0
	}
	return c.min
}

func (c *Controller) clampInto(v float64) float64 {
	switch {
	case math.IsNaN(v), v < c.min:
		return c.min
	case v > c.max:
		return c.max
	default:
		return v
	}
}

func (c *Controller) round(v float64) float64 {
	if c.precision < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow(10, float64(c.precision))
	return math.Round(v*scale) / scale
}

func (c *Controller) publishDisplays() {
	if c.displayLower != nil {
		c.displayLower.SetText(c.format(c.bounds.Lower))
	}
	if c.displayUpper != nil {
		c.displayUpper.SetText(c.format(c.bounds.Upper))
	}
}

func (c *Controller) publishSinks() {
	if c.sinkLower != nil {
		c.sinkLower.SetValue(c.format(c.bounds.Lower))
	}
	if c.sinkUpper != nil {
		c.sinkUpper.SetValue(c.format(c.bounds.Upper))
	}
}

// Format renders a bound using the shortest decimal representation, without
// exponent notation.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
