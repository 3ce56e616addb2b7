package lazysignals

// Tuple is the argument bundle handed to memo and effect functions: one
// optional field per declared source position. Position-to-source
// correspondence is the caller's responsibility; only arity and field types
// are checked, at access time.
type Tuple struct {
	fields []tupleField
}

type tupleField struct {
	value any
	ok    bool
}

func (t *Tuple) appendNone() {
	t.fields = append(t.fields, tupleField{})
}

func (t *Tuple) appendValue(v any) {
	t.fields = append(t.fields, tupleField{value: v, ok: true})
}

func (t *Tuple) Len() int {
	return len(t.fields)
}

// GetField returns the value at position i. ok is false when the position
// is out of range, the source had no value, or the requested type does not
// match the stored one.
func GetField[T any](t *Tuple, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(t.fields) {
		return zero, false
	}
	f := t.fields[i]
	if !f.ok {
		return zero, false
	}
	v, ok := f.value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// Field returns the value at position i as a pointer, nil when absent.
func Field[T any](t *Tuple, i int) *T {
	v, ok := GetField[T](t, i)
	if !ok {
		return nil
	}
	return &v
}
