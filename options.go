package termdisplay

type Option func(d *Display)

// WithTerm makes the display draw through the given sink instead of the
// process's stdout.
func WithTerm(t Term) Option {
	return func(d *Display) {
		d.term = t
	}
}
