package layout

const (
	// DefaultEpsilon is the largest Y difference of fragments on one line.
	DefaultEpsilon = 1.0

	// DefaultNudge raises runs drawn in a non-normal style.
	DefaultNudge = 3.5
)

// Option configures Reflow.
type Option func(*options)

type options struct {
	epsilon float64
	nudge   float64
}

func defaultOptions() options {
	return options{
		epsilon: DefaultEpsilon,
		nudge:   DefaultNudge,
	}
}

// WithEpsilon sets the line clustering tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		o.epsilon = eps
	}
}

// WithNudge sets how far styled runs are raised above the line.
func WithNudge(dy float64) Option {
	return func(o *options) {
		o.nudge = dy
	}
}
