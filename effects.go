package lazysignals

// EffectFn is a short-lived side effect. It runs inline during the
// dispatch pass with exclusive access to external state; any error is
// routed to the system's OnErrorFunc. May enqueue further commands, which
// apply on the next tick.
//
// The function runs while the engine lock is held: read its inputs from
// the argument bundle and write through Send/Trigger, never call Read,
// ReadResult, Value, or GetError from inside it, they block on the lock.
type EffectFn func(args *Tuple) error

// TaskFn is a long-running effect. It runs on its own goroutine and
// returns a batch of mutations the engine applies on a later tick. At most
// one instance per effect is in flight; a re-trigger while running is
// dropped, not queued.
type TaskFn func(args *Tuple) CommandBatch

// Effect creates a short-lived effect. sources are read and passed as the
// argument bundle; triggers schedule the effect without contributing
// arguments. The effect runs when at least one source or trigger changed,
// or when it was explicitly triggered.
func Effect(rs *ReactiveSystem, fn EffectFn, sources []Entity, triggers []Entity) Entity {
	e := rs.spawn()
	rs.enqueue(createEffectCommand{effect: e, short: fn, sources: sources, triggers: triggers})
	return e
}

// Task creates a long-running effect. Scheduling rules match Effect.
func Task(rs *ReactiveSystem, fn TaskFn, sources []Entity, triggers []Entity) Entity {
	e := rs.spawn()
	rs.enqueue(createEffectCommand{effect: e, long: fn, sources: sources, triggers: triggers})
	return e
}
