package termdisplay

type logger struct {
	fn func(string, ...interface{})
}

var tlog logger

// SetLogger installs a printf-style sink for diagnostics (resize
// transitions, clipping decisions). Logging is off until one is set.
func SetLogger(l func(string, ...interface{})) {
	tlog.fn = l
}

func (l *logger) Printf(s string, args ...interface{}) {
	if l.fn == nil {
		return
	}
	l.fn(s, args...)
}
