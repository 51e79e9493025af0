package listparty

// The container state is driven by a fixed transition table. Only the
// runner and the mutation API dispatch actions, always under the
// system lock, so the reducer itself stays a plain value function.

type actionKind uint8

const (
	actSetList actionKind = iota
	actSetData
	actUpdateData
	actResetData
	actSetLoading
	actSetError
)

type action[T any] struct {
	kind    actionKind
	list    []T
	data    Data
	loading bool
	err     error
}

type containerState[T any] struct {
	list    []T
	data    Data
	loading bool
	err     error
}

// apply returns the successor state. Transitions:
//   - setList replaces the derived list and clears loading.
//   - setData replaces the record wholesale, updateData shallow-merges,
//     resetData restores the record carried in the action (the record
//     captured at configuration time).
//   - setLoading(true) clears any stale error; setLoading(false) leaves
//     the error alone so SetError's result survives its own
//     loading-off.
//   - setError records the error, drops the derived list, and clears
//     loading.
func (s containerState[T]) apply(a action[T]) containerState[T] {
	switch a.kind {
	case actSetList:
		s.list = a.list
		s.loading = false
	case actSetData:
		s.data = a.data
	case actUpdateData:
		s.data = Merge(s.data, a.data)
	case actResetData:
		s.data = a.data
	case actSetLoading:
		s.loading = a.loading
		if a.loading {
			s.err = nil
		}
	case actSetError:
		s.err = a.err
		s.list = nil
		s.loading = false
	}
	return s
}
