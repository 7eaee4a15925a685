package termdisplay

// ColorSource is a lazily evaluated sequence of pixel colors, consumed in
// row-major order by FillContiguous. A source may be backed by anything
// from a slice to a procedural generator; it is pulled one element at a
// time and never needs to be fully realized.
type ColorSource interface {
	// Next returns the next color, or ok == false once the sequence is
	// exhausted.
	Next() (c Color, ok bool)
}

// Skipper is an optional ColorSource extension for sources that can
// discard elements more cheaply than producing them. Clipped fills skip
// whole runs of elements; without Skip each one is produced and dropped,
// which is slower but contract-identical.
type Skipper interface {
	Skip(n int)
}

// ColorFunc adapts a function to a ColorSource.
type ColorFunc func() (Color, bool)

func (f ColorFunc) Next() (Color, bool) {
	return f()
}

type sliceSource struct {
	colors []Color
}

// ColorSlice returns a ColorSource yielding the given colors in order.
func ColorSlice(colors []Color) ColorSource {
	return &sliceSource{colors: colors}
}

func (s *sliceSource) Next() (Color, bool) {
	if len(s.colors) == 0 {
		return 0, false
	}
	c := s.colors[0]
	s.colors = s.colors[1:]
	return c, true
}

func (s *sliceSource) Skip(n int) {
	if n > len(s.colors) {
		n = len(s.colors)
	}
	s.colors = s.colors[n:]
}

// skipColors advances src by n elements, using the fast path when the
// source supports it.
func skipColors(src ColorSource, n int) {
	if n <= 0 {
		return
	}
	if s, ok := src.(Skipper); ok {
		s.Skip(n)
		return
	}
	for i := 0; i < n; i++ {
		if _, ok := src.Next(); !ok {
			return
		}
	}
}
