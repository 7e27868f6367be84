// Package observe defines hooks for watching generators being sampled.
//
// Observation is opt-in: wrap a generator with gen.Observed and every call to
// its Produce is reported to an Observer. Generators that are not wrapped
// never touch an observer.
package observe

import "time"

// Sample describes one observed Produce call.
type Sample struct {
	// Name is the label given to gen.Observed.
	Name string
	// Budget is the attempt budget the call received.
	Budget int
	// OK is true when the call produced a value.
	OK bool
	// Duration is the wall time spent inside Produce.
	Duration time.Duration
}

// Observer receives sample events. Implementations must be safe for
// concurrent use: one observed generator is typically sampled from many
// goroutines at once.
type Observer interface {
	OnSample(s Sample)
}

// NoopObserver implements Observer and discards every event.
type NoopObserver struct{}

// OnSample implements Observer.
func (NoopObserver) OnSample(Sample) {}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Sample)

// OnSample calls f(s).
func (f ObserverFunc) OnSample(s Sample) {
	f(s)
}

// MultiObserver fans out events to multiple observers.
type MultiObserver struct {
	Observers []Observer
}

// OnSample implements Observer, skipping nil entries.
func (m MultiObserver) OnSample(s Sample) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnSample(s)
		}
	}
}
