// Package signals is the change-notification substrate for listparty.
// Cells carry a value plus a monotonically increasing version; watchers
// track cells by version sum, so a watcher fires at most once per
// version movement of its dependency set.
package signals

import "sync"

// Subscriber is notified whenever a tracked dependency changes.
type Subscriber interface {
	notify()
}

// Dependency is anything a watcher can track.
type Dependency interface {
	value() any
	version() uint64
	addSubs(...Subscriber)
	removeSub(Subscriber)
}

// Signal is a writeable cell for comparable values. Setting an equal
// value is a no-op and does not notify subscribers.
type Signal[T comparable] struct {
	mu   sync.Mutex
	val  T
	ver  uint64
	subs []Subscriber
}

func New[T comparable](val T) *Signal[T] {
	return &Signal[T]{val: val, ver: 1}
}

func (s *Signal[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.val
}

func (s *Signal[T]) Set(val T) {
	s.mu.Lock()
	if s.val == val {
		s.mu.Unlock()
		return
	}
	s.val = val
	s.ver++
	subs := append([]Subscriber(nil), s.subs...)
	s.mu.Unlock()

	// Notify outside the lock so a subscriber may read the cell.
	for _, sub := range subs {
		sub.notify()
	}
}

func (s *Signal[T]) value() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.val
}

func (s *Signal[T]) version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ver
}

func (s *Signal[T]) addSubs(subs ...Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, subs...)
}

func (s *Signal[T]) removeSub(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.subs {
		if existing == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Box is a writeable cell for values that are not comparable (slices,
// maps). An optional equality func suppresses no-op sets; without one
// every Set counts as a change, i.e. identity-granularity detection.
type Box[T any] struct {
	mu   sync.Mutex
	val  T
	ver  uint64
	eq   func(a, b T) bool
	subs []Subscriber
}

func NewBox[T any](val T, eq func(a, b T) bool) *Box[T] {
	return &Box[T]{val: val, ver: 1, eq: eq}
}

func (b *Box[T]) Value() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.val
}

func (b *Box[T]) Set(val T) {
	b.mu.Lock()
	if b.eq != nil && b.eq(b.val, val) {
		b.mu.Unlock()
		return
	}
	b.val = val
	b.ver++
	subs := append([]Subscriber(nil), b.subs...)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.notify()
	}
}

func (b *Box[T]) value() any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.val
}

func (b *Box[T]) version() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ver
}

func (b *Box[T]) addSubs(subs ...Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subs...)
}

func (b *Box[T]) removeSub(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.subs {
		if existing == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// watcher fires its fn when the version sum of its dependencies moves.
// Versions only increase, so the sum is a cheap strictly-increasing
// fingerprint of the dependency set.
type watcher struct {
	fn   func(...any)
	sum  uint64
	deps []Dependency
}

func (w *watcher) notify() {
	args, sum := depSum(w.deps...)
	if w.sum == sum {
		return
	}
	w.sum = sum
	w.fn(args...)
}

func depSum(deps ...Dependency) (args []any, sum uint64) {
	args = make([]any, len(deps))
	for i, dep := range deps {
		args[i] = dep.value()
		sum += dep.version()
	}
	return args, sum
}

func newWatcher(fn func(...any), deps ...Dependency) (stop func()) {
	w := &watcher{
		fn:   fn,
		deps: deps,
	}
	_, w.sum = depSum(deps...)
	for _, dep := range deps {
		dep.addSubs(w)
	}
	return func() {
		for _, dep := range w.deps {
			dep.removeSub(w)
		}
	}
}
