package lazysignals

import "log/slog"

// immutableState stores a cell without its type: the untyped cell plus the
// type key used to find the matching capability in the registry.
type immutableState struct {
	cell any
	key  typeKey
}

// ComputedImmutable is a memo: a propagator bound to a cell, with an
// explicit static source list. run builds nothing itself; it is a closure
// created at construction that applies the typed result to the typed cell
// and reports whether the stored value changed.
type ComputedImmutable struct {
	run     func(args *Tuple) bool
	sources []Entity
}

// LazyEffect is a side-effect endpoint. Exactly one of short and long is
// set: short runs inline during the dispatch pass, long spawns off-thread
// work that returns a batch of commands applied on a later tick.
type LazyEffect struct {
	short    EffectFn
	long     TaskFn
	sources  []Entity
	triggers []Entity
}

// World owns the reactive graph: id allocation, cell storage, memo and
// effect components, and the marker sets the engine's phases consume. It is
// exclusively owned by the engine during a tick.
type World struct {
	states    map[Entity]*immutableState
	computeds map[Entity]*ComputedImmutable
	effects   map[Entity]*LazyEffect

	// marker sets, insertion-ordered because processing order is observable
	sendSignal *entitySet
	rebuild    *entitySet

	registry *TypeRegistry
	logger   *slog.Logger
}

func newWorld(logger *slog.Logger) *World {
	return &World{
		states:     map[Entity]*immutableState{},
		computeds:  map[Entity]*ComputedImmutable{},
		effects:    map[Entity]*LazyEffect{},
		sendSignal: newEntitySet(),
		rebuild:    newEntitySet(),
		registry:   newTypeRegistry(),
		logger:     logger,
	}
}

// observableFor resolves the cell on an entity through the type registry.
// Missing entities and type-key misses degrade to a logged no-op.
func (w *World) observableFor(e Entity) (observable, bool) {
	state, ok := w.states[e]
	if !ok {
		w.logger.Warn("no cell for entity", "entity", e)
		return nil, false
	}
	c, ok := w.registry.lookup(state.key)
	if !ok {
		w.logger.Warn("no capability registered for type key", "entity", e, "key", uint64(state.key))
		return nil, false
	}
	obs, ok := c.wrap(state.cell)
	if !ok {
		w.logger.Warn("cell does not match registered type", "entity", e, "type", c.name)
		return nil, false
	}
	return obs, true
}

// despawn drops an entity's components. Cells referencing it as a source
// keep the dangling id; operations on it degrade to logged no-ops.
func (w *World) despawn(e Entity) {
	delete(w.states, e)
	delete(w.computeds, e)
	delete(w.effects, e)
	w.sendSignal.remove(e)
	w.rebuild.remove(e)
}
