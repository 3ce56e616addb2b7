package lazysignals

// Unit is the payload for cells that only ever notify, never carry data.
type Unit struct{}

// State creates a signal cell holding an initial value. The cell exists
// after the next tick's collecting phase; the returned id is valid
// immediately and may be wired into memos and effects right away.
func State[T comparable](rs *ReactiveSystem, initial T) Entity {
	e := rs.spawn()
	rs.enqueue(createStateCommand[T]{state: e, data: Ok(initial)})
	return e
}

// TriggerState creates a unit cell used purely as a trigger.
func TriggerState(rs *ReactiveSystem) Entity {
	return State(rs, Unit{})
}

// Send queues a pending write. Subscribers are notified on the next tick
// only if the committed value actually changes.
func Send[T comparable](rs *ReactiveSystem, signal Entity, data T) {
	rs.enqueue(sendSignalCommand[T]{signal: signal, data: Ok(data)})
}

// SendAndTrigger queues a pending write and notifies subscribers on the
// next tick even if the value is identical to the current one.
func SendAndTrigger[T comparable](rs *ReactiveSystem, signal Entity, data T) {
	rs.enqueue(sendSignalCommand[T]{signal: signal, data: Ok(data), trigger: true})
}

// SendError queues an error as the cell's next value. Real errors always
// merge and propagate downstream as data.
func SendError[T comparable](rs *ReactiveSystem, signal Entity, err error) {
	rs.enqueue(sendSignalCommand[T]{signal: signal, data: Err[T](err)})
}

// SendNone queues an explicit empty value, clearing the cell.
func SendNone[T comparable](rs *ReactiveSystem, signal Entity) {
	rs.enqueue(sendSignalCommand[T]{signal: signal, data: None[T]()})
}

// Trigger notifies a cell's subscribers on the next tick without sending a
// value.
func Trigger(rs *ReactiveSystem, signal Entity) {
	rs.enqueue(triggerSignalCommand{signal: signal})
}

// Read returns the committed value without subscribing. ok is false when
// the entity is missing, the type does not match, or the cell holds no
// data.
func Read[T comparable](rs *ReactiveSystem, e Entity) (T, bool) {
	r, ok := ReadResult[T](rs, e)
	if !ok {
		var zero T
		return zero, false
	}
	return r.Value()
}

// ReadResult returns the committed result without subscribing. ok is false
// only when the entity is missing or its cell holds a different type.
func ReadResult[T comparable](rs *ReactiveSystem, e Entity) (Result[T], bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	state, ok := rs.world.states[e]
	if !ok {
		rs.logger.Warn("read of missing signal", "entity", e, "error", ErrNoSignal)
		return Result[T]{}, false
	}
	cell, ok := state.cell.(*Cell[T])
	if !ok {
		rs.logger.Warn("read with mismatched type", "entity", e,
			"error", ReadError{Entity: e})
		return Result[T]{}, false
	}
	return cell.read(), true
}

// Value reads like Read but also subscribes the caller, so it is notified
// from the next propagation wave onward.
func Value[T comparable](rs *ReactiveSystem, e Entity, caller Entity) (T, bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	state, ok := rs.world.states[e]
	if !ok {
		rs.logger.Warn("value read of missing signal", "entity", e, "error", ErrNoSignal)
		var zero T
		return zero, false
	}
	cell, ok := state.cell.(*Cell[T])
	if !ok {
		rs.logger.Warn("value read with mismatched type", "entity", e,
			"error", ReadError{Entity: e})
		var zero T
		return zero, false
	}
	return cell.value(caller).Value()
}

// GetError returns the committed error of a cell, nil if it holds a value
// or nothing at all.
func GetError(rs *ReactiveSystem, e Entity) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	obs, ok := rs.world.observableFor(e)
	if !ok {
		return ErrNoSignal
	}
	return obs.currentError()
}
