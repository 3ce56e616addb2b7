package lazysignals

// Result is the stored state of a cell: optionally a value, optionally an
// error. Both absent means the cell was never written.
type Result[T comparable] struct {
	ok   bool
	data T
	err  error
}

func Ok[T comparable](data T) Result[T] {
	return Result[T]{ok: true, data: data}
}

func Err[T comparable](err error) Result[T] {
	return Result[T]{err: err}
}

// None is an explicit empty result, used to clear a cell.
func None[T comparable]() Result[T] {
	return Result[T]{}
}

func noNext[T comparable]() Result[T] {
	return Result[T]{err: ErrNoNextValue}
}

// Value returns the held data and whether it is present. Errored results
// report no data.
func (r Result[T]) Value() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.data, r.ok
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) isNone() bool {
	return !r.ok && r.err == nil
}

func (r Result[T]) equals(o Result[T]) bool {
	if r.ok != o.ok || r.data != o.data {
		return false
	}
	if (r.err == nil) != (o.err == nil) {
		return false
	}
	if r.err != nil && r.err.Error() != o.err.Error() {
		return false
	}
	return true
}
