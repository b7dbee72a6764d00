package logging

import "time"

// TimingContext holds the start of a manually ended measurement
type TimingContext struct {
	name      string
	startTime time.Time
}

// Time runs fn and logs how long it took at debug level.
//
//	logging.Time("sign out", func() {
//	    err = auth.SignOut(ctx)
//	})
func Time(name string, fn func()) {
	Get().Time(name, fn)
}

// Time runs fn and logs its duration with this logger.
func (l *Logger) Time(name string, fn func()) {
	if !l.IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	l.logDuration(name, time.Since(start))
}

// Start begins a measurement finished by End.
func Start(name string) TimingContext {
	return TimingContext{name: name, startTime: time.Now()}
}

// End logs the duration since the matching Start.
func End(ctx TimingContext, args ...any) {
	if !IsEnabled() {
		return
	}
	Get().logDuration(ctx.name, time.Since(ctx.startTime), args...)
}

func (l *Logger) logDuration(name string, d time.Duration, args ...any) {
	l.Debug(name, append([]any{"duration", d.String(), "ms", d.Milliseconds()}, args...)...)
}
