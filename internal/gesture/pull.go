// Package gesture implements the pull-to-refresh state machine. It is purely
// a gesture-to-action translator: the refresh itself is a caller-supplied
// callback, and haptic feedback goes through the host bridge.
package gesture

import (
	"fmt"

	"habitlink/internal/constants"
	"habitlink/internal/hostenv"
)

type State int

const (
	Idle State = iota
	Tracking
	Releasing
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Tracking:
		return "tracking"
	case Releasing:
		return "releasing"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Controller tracks one drag over a scrollable region. Events must arrive in
// order; the controller is not safe for concurrent use and is meant to live
// on the UI loop.
type Controller struct {
	state    State
	distance float64

	damping   float64
	max       float64
	threshold float64

	onRefresh func()
	haptics   hostenv.Haptics
}

func NewController(onRefresh func(), haptics hostenv.Haptics) *Controller {
	if haptics == nil {
		haptics = hostenv.NoopHaptics{}
	}
	return &Controller{
		damping:   constants.PullDamping,
		max:       constants.PullMaxDistance,
		threshold: constants.PullReleasePoint,
		onRefresh: onRefresh,
		haptics:   haptics,
	}
}

// SetTuning overrides the default constants. The cap must exceed the release
// threshold, otherwise the released visual state would be unreachable.
func (c *Controller) SetTuning(damping, max, threshold float64) error {
	if damping <= 0 || damping >= 1 {
		return fmt.Errorf("damping must be in (0, 1), got %v", damping)
	}
	if max <= threshold {
		return fmt.Errorf("cap %v must exceed release threshold %v", max, threshold)
	}
	c.damping = damping
	c.max = max
	c.threshold = threshold
	return nil
}

// Begin starts tracking, but only when the scrollable region sits at offset
// zero so mid-scroll gestures are not hijacked.
func (c *Controller) Begin(scrollOffset int) {
	if c.state != Idle || scrollOffset != 0 {
		return
	}
	c.state = Tracking
	c.distance = 0
}

// Move updates the damped pull distance for a drag delta measured from the
// gesture origin. Non-positive deltas are ignored: upward movement never
// enters a pulling state and never shrinks an established pull.
func (c *Controller) Move(delta float64) {
	if c.state != Tracking || delta <= 0 {
		return
	}
	d := delta * c.damping
	if d > c.max {
		d = c.max
	}
	c.distance = d
}

// End releases the gesture. When the pull distance exceeded the threshold it
// dispatches exactly one refresh and fires a light haptic. The offset resets
// to zero regardless of outcome.
func (c *Controller) End() bool {
	if c.state != Tracking {
		c.reset()
		return false
	}
	c.state = Releasing
	fired := c.distance > c.threshold
	c.reset()
	if fired {
		c.haptics.Impact(hostenv.Light)
		if c.onRefresh != nil {
			c.onRefresh()
		}
	}
	return fired
}

// Cancel handles an environment-terminated gesture. No refresh, no leaked
// offset across gestures.
func (c *Controller) Cancel() {
	c.state = Cancelled
	c.reset()
}

func (c *Controller) reset() {
	c.state = Idle
	c.distance = 0
}

// Distance is the current damped pull distance, exposed for rendering the
// release-cue affordance.
func (c *Controller) Distance() float64 { return c.distance }

// ReleaseReady reports whether releasing now would dispatch a refresh.
func (c *Controller) ReleaseReady() bool { return c.distance > c.threshold }

func (c *Controller) State() State { return c.state }
