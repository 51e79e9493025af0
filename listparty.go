// Package listparty derives a list from a source list plus a mutable
// transform-data record through an ordered pipeline of stages, and
// re-runs the pipeline whenever either input changes. Late results
// from superseded asynchronous runs never clobber newer ones: commits
// are guarded by strictly increasing run tickets.
package listparty

import (
	"context"
	"slices"
	"sync"

	"github.com/listparty/listparty/signals"
)

// Config wires up a ListTransform.
type Config[T any] struct {
	// List is the initial source list.
	List []T
	// Data is the initial transform-data record. Leave nil for "never
	// set": the pipeline then passes the source list through untouched.
	Data Data
	// Stages run in declared order on every run. The slice can be
	// swapped later via Stages; the runner reads it fresh per run.
	Stages []Stage[T]
	// ThrowOnError arms a panic on the next snapshot read while
	// unconsumed error state is present, instead of exposing the error
	// through Err. Meant for callers with an enclosing recover
	// boundary.
	ThrowOnError bool

	// OnLoading fires with true when a run starts and with false when
	// a run settles and is applied. Superseded runs get no terminal
	// notification.
	OnLoading func(bool)
	// OnError fires for every failing run, superseded or not.
	OnError func(error)
	// OnListUpdate fires once per applied successful run.
	OnListUpdate func([]T)
}

// ListTransform is a reactive pipeline over a source list. All
// mutations go through its methods; the derived list, record, loading
// flag and error are read through Snapshot or the single-field
// accessors.
type ListTransform[T any] struct {
	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	state   containerState[T]
	initial Data // ResetData restores this, never an intermediate value
	prev    Data // record of the previously applied run
	stages  []Stage[T]
	tickets ticketer
	armed   error

	source  *signals.Box[[]T]
	dataBox *signals.Box[Data]
	stop    func()

	throwOnError bool
	onLoading    func(bool)
	onError      func(error)
	onListUpdate func([]T)
}

// Snapshot is a read-only view of the container state.
type Snapshot[T any] struct {
	Transformed []T
	Data        Data
	Loading     bool
	Err         error
}

// New builds the transform and performs the initial run.
func New[T any](cfg Config[T]) *ListTransform[T] {
	ctx, cancel := context.WithCancel(context.Background())
	tf := &ListTransform[T]{
		ctx:          ctx,
		cancel:       cancel,
		initial:      cloneData(cfg.Data),
		stages:       slices.Clone(cfg.Stages),
		throwOnError: cfg.ThrowOnError,
		onLoading:    cfg.OnLoading,
		onError:      cfg.OnError,
		onListUpdate: cfg.OnListUpdate,
	}
	tf.state.data = cloneData(cfg.Data)

	// The source box has no equality func: every Set is an identity
	// change. The record box dedupes by fingerprint, so setting an
	// equal-valued record does not trigger a run.
	tf.source = signals.NewBox(slices.Clone(cfg.List), nil)
	tf.dataBox = signals.NewBox(cloneData(cfg.Data), func(a, b Data) bool {
		return Fingerprint(a) == Fingerprint(b)
	})

	tf.stop = signals.Watch2(tf.source, tf.dataBox, func([]T, Data) {
		tf.startRun()
	})

	tf.startRun()
	return tf
}

// SetList replaces the source list and schedules a run.
func (tf *ListTransform[T]) SetList(list []T) {
	tf.source.Set(slices.Clone(list))
}

// SetData replaces the record wholesale and schedules a run.
func (tf *ListTransform[T]) SetData(data Data) {
	tf.dispatchData(action[T]{kind: actSetData, data: cloneData(data)})
}

// UpdateData shallow-merges partial into the record and schedules a
// run. Keys absent from partial are preserved.
func (tf *ListTransform[T]) UpdateData(partial Data) {
	tf.dispatchData(action[T]{kind: actUpdateData, data: cloneData(partial)})
}

// ResetData restores the record captured at configuration time and
// schedules a run.
func (tf *ListTransform[T]) ResetData() {
	tf.mu.Lock()
	a := action[T]{kind: actResetData, data: cloneData(tf.initial)}
	tf.mu.Unlock()
	tf.dispatchData(a)
}

// dispatchData applies a record transition and pushes the resulting
// snapshot into the record box. The run itself is never performed
// inline here; it hangs off the box notification, one code path no
// matter who changed the record.
func (tf *ListTransform[T]) dispatchData(a action[T]) {
	tf.mu.Lock()
	tf.state = tf.state.apply(a)
	next := cloneData(tf.state.data)
	tf.mu.Unlock()
	tf.dataBox.Set(next)
}

// Stages swaps the pipeline without scheduling a run; the next run
// picks the new stages up.
func (tf *ListTransform[T]) Stages(stages []Stage[T]) {
	tf.mu.Lock()
	tf.stages = slices.Clone(stages)
	tf.mu.Unlock()
}

// Snapshot returns the current view. With ThrowOnError set it panics
// while unconsumed error state is present; the panic re-arms until a
// new run clears the error.
func (tf *ListTransform[T]) Snapshot() Snapshot[T] {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if tf.armed != nil {
		panic(tf.armed)
	}
	return Snapshot[T]{
		Transformed: tf.state.list,
		Data:        cloneData(tf.state.data),
		Loading:     tf.state.loading,
		Err:         tf.state.err,
	}
}

// Transformed returns the derived list of the most recently applied
// successful run, or nil after an error.
func (tf *ListTransform[T]) Transformed() []T {
	return tf.Snapshot().Transformed
}

// Data returns the current record, nil if never set.
func (tf *ListTransform[T]) Data() Data {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return cloneData(tf.state.data)
}

// Loading reports whether a current run is in flight.
func (tf *ListTransform[T]) Loading() bool {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.state.loading
}

// Err returns the error of the most recently applied run, nil once a
// newer run has started.
func (tf *ListTransform[T]) Err() error {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	return tf.state.err
}

// Close detaches the change watcher and cancels the context handed to
// stages. In-flight stages are not interrupted beyond that; their
// effects are already suppressed by ticketing.
func (tf *ListTransform[T]) Close() {
	tf.stop()
	tf.cancel()
}
