package listparty

import (
	"slices"
	"sync/atomic"
)

// ticketer hands out strictly increasing run tickets. A run may touch
// shared state only while its ticket is still the latest issued one,
// which makes commit order last-writer-wins by issue order rather than
// by completion time.
type ticketer struct {
	cur atomic.Uint64
}

func (t *ticketer) begin() uint64 {
	return t.cur.Add(1)
}

func (t *ticketer) current(id uint64) bool {
	return t.cur.Load() == id
}

// startRun begins a new run on the caller's goroutine: issue a ticket,
// flip loading on, snapshot the inputs. With no record ever set the
// source list passes through untouched and no stage runs; otherwise
// stage execution moves to its own goroutine so the mutation that
// triggered it returns immediately.
func (tf *ListTransform[T]) startRun() {
	tf.mu.Lock()
	id := tf.tickets.begin()
	tf.state = tf.state.apply(action[T]{kind: actSetLoading, loading: true})
	tf.armed = nil
	stages := slices.Clone(tf.stages)
	src := tf.source.Value()
	data := tf.state.data
	prev := tf.prev
	onLoading := tf.onLoading
	tf.mu.Unlock()

	if onLoading != nil {
		onLoading(true)
	}

	if data == nil {
		tf.commitList(id, slices.Clone(src), nil)
		return
	}

	go tf.execute(id, stages, src, data, prev)
}

func (tf *ListTransform[T]) execute(id uint64, stages []Stage[T], src []T, data, prev Data) {
	working := slices.Clone(src)
	for _, stage := range stages {
		if !tf.tickets.current(id) {
			// Superseded; a newer run owns the outcome now.
			return
		}
		out, err := stage.apply(Args[T]{
			Ctx:  tf.ctx,
			List: working,
			Data: data,
			Prev: prev,
		})
		if err != nil {
			tf.commitError(id, err)
			return
		}
		working = out
	}
	tf.commitList(id, working, data)
}

func (tf *ListTransform[T]) commitList(id uint64, list []T, data Data) {
	tf.mu.Lock()
	if !tf.tickets.current(id) {
		tf.mu.Unlock()
		return
	}
	tf.state = tf.state.apply(action[T]{kind: actSetList, list: list})
	tf.prev = data
	onLoading := tf.onLoading
	onListUpdate := tf.onListUpdate
	tf.mu.Unlock()

	if onLoading != nil {
		onLoading(false)
	}
	if onListUpdate != nil {
		onListUpdate(list)
	}
}

// commitError reports every failure, but only a still-current run may
// surface it: visible error state and the list-clearing that goes with
// it belong to the latest run alone.
func (tf *ListTransform[T]) commitError(id uint64, err error) {
	tf.mu.Lock()
	var onLoading func(bool)
	if tf.tickets.current(id) {
		tf.state = tf.state.apply(action[T]{kind: actSetError, err: err})
		if tf.throwOnError {
			tf.armed = err
		}
		// An applied error settles the run, so loading-off fires just
		// like on the success path. Superseded failures stay silent
		// here and only report below.
		onLoading = tf.onLoading
	}
	onError := tf.onError
	tf.mu.Unlock()

	if onLoading != nil {
		onLoading(false)
	}
	if onError != nil {
		onError(err)
	}
}
