package listparty

import "context"

// Args is what every stage receives: the working list as left by the
// preceding stage, the current record, and the record from the
// previously applied run (for diff-based shortcuts).
type Args[T any] struct {
	Ctx  context.Context
	List []T
	Data Data
	Prev Data
}

// Stage is one step of the pipeline. It comes in two variants: a map
// stage returns a replacement list, a filter stage returns a predicate
// and the runner keeps the items it accepts. A stage may block; that
// is the asynchronous case, and a superseded run's results are simply
// discarded rather than interrupted.
type Stage[T any] struct {
	mapFn    func(Args[T]) ([]T, error)
	filterFn func(Args[T]) (func(T) bool, error)
}

// Map builds a stage that derives a replacement list.
func Map[T any](fn func(Args[T]) ([]T, error)) Stage[T] {
	return Stage[T]{mapFn: fn}
}

// Filter builds a stage that derives a predicate; items for which the
// predicate returns true survive.
func Filter[T any](fn func(Args[T]) (func(T) bool, error)) Stage[T] {
	return Stage[T]{filterFn: fn}
}

func (s Stage[T]) apply(args Args[T]) ([]T, error) {
	if s.filterFn != nil {
		keep, err := s.filterFn(args)
		if err != nil {
			return nil, err
		}
		out := make([]T, 0, len(args.List))
		for _, item := range args.List {
			if keep(item) {
				out = append(out, item)
			}
		}
		return out, nil
	}
	if s.mapFn == nil {
		return args.List, nil
	}
	return s.mapFn(args)
}
