package lazysignals

// Command is a queued mutation applied to the world between phases.
// External code and long-running tasks only ever enqueue commands; they
// never touch the graph directly.
type Command interface {
	apply(w *World)
}

// CommandBatch is what a long-running task hands back to the engine: a list
// of follow-up mutations applied during a later tick's collecting phase.
type CommandBatch []Command

type createStateCommand[T comparable] struct {
	state Entity
	data  Result[T]
}

func (c createStateCommand[T]) apply(w *World) {
	key := registerType[T](w.registry)
	w.states[c.state] = &immutableState{
		cell: newCell(c.data),
		key:  key,
	}
}

type createComputedCommand[R comparable] struct {
	computed Entity
	fn       func(args *Tuple) (R, error)
	sources  []Entity
}

func (c createComputedCommand[R]) apply(w *World) {
	key := registerType[R](w.registry)
	cell := newCell(None[R]())
	w.states[c.computed] = &immutableState{cell: cell, key: key}
	fn := c.fn
	w.computeds[c.computed] = &ComputedImmutable{
		run: func(args *Tuple) bool {
			r, err := fn(args)
			if err != nil {
				return cell.update(Err[R](err))
			}
			return cell.update(Ok(r))
		},
		sources: c.sources,
	}
	w.rebuild.add(c.computed)
}

type createEffectCommand struct {
	effect   Entity
	short    EffectFn
	long     TaskFn
	sources  []Entity
	triggers []Entity
}

func (c createEffectCommand) apply(w *World) {
	w.effects[c.effect] = &LazyEffect{
		short:    c.short,
		long:     c.long,
		sources:  c.sources,
		triggers: c.triggers,
	}
	w.rebuild.add(c.effect)
}

type sendSignalCommand[T comparable] struct {
	signal  Entity
	data    Result[T]
	trigger bool
}

func (c sendSignalCommand[T]) apply(w *World) {
	state, ok := w.states[c.signal]
	if !ok {
		// assume the caller removed it and no longer cares
		w.logger.Warn("send to missing signal", "entity", c.signal)
		return
	}
	cell, ok := state.cell.(*Cell[T])
	if !ok {
		w.logger.Warn("send with mismatched type", "entity", c.signal,
			"error", ReadError{Entity: c.signal})
		return
	}
	cell.mergeNext(c.data, c.trigger)
	w.sendSignal.add(c.signal)
}

type triggerSignalCommand struct {
	signal Entity
}

func (c triggerSignalCommand) apply(w *World) {
	obs, ok := w.observableFor(c.signal)
	if !ok {
		return
	}
	obs.trigger()
	w.sendSignal.add(c.signal)
}

type despawnCommand struct {
	entity Entity
}

func (c despawnCommand) apply(w *World) {
	w.despawn(c.entity)
}

// SendCommand queues a value for a signal, for use in task batches.
func SendCommand[T comparable](signal Entity, data T) Command {
	return sendSignalCommand[T]{signal: signal, data: Ok(data)}
}

// SendAndTriggerCommand is SendCommand plus a forced notification.
func SendAndTriggerCommand[T comparable](signal Entity, data T) Command {
	return sendSignalCommand[T]{signal: signal, data: Ok(data), trigger: true}
}

// TriggerCommand queues a forced notification with no value.
func TriggerCommand(signal Entity) Command {
	return triggerSignalCommand{signal: signal}
}
