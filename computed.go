package lazysignals

// PropagatorFn recomputes a memo's value from the argument bundle built
// out of its sources. It must be a pure function of the bundle: recomputing
// with unchanged inputs has to yield an unchanged result. A returned error
// is stored in the cell and propagates downstream as data.
type PropagatorFn[R comparable] func(args *Tuple) (R, error)

// Computed creates a memo cell bound to the given sources. The source list
// is static; positions in the argument bundle correspond to it. The memo
// is lazy: it recomputes only when a source merge reaches it through the
// subscriber graph.
func Computed[R comparable](rs *ReactiveSystem, fn PropagatorFn[R], sources ...Entity) Entity {
	e := rs.spawn()
	rs.enqueue(createComputedCommand[R]{computed: e, fn: fn, sources: sources})
	return e
}
