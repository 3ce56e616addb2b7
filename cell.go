package lazysignals

import "errors"

// Entity identifies a cell, memo, or effect in the world. The zero value is
// never allocated.
type Entity uint64

// Cell is the fundamental reactive storage unit: a committed result, a
// pending next result, a trigger flag, and a two-stage subscriber set.
//
// External writes never touch result directly. They land in next via
// mergeNext and become visible only when the propagation engine calls merge
// during its merging phase.
type Cell[T comparable] struct {
	result    Result[T]
	next      Result[T]
	triggered bool

	subscribers     *entitySet
	nextSubscribers *entitySet
}

func newCell[T comparable](initial Result[T]) *Cell[T] {
	return &Cell[T]{
		result:          initial,
		next:            noNext[T](),
		subscribers:     newEntitySet(),
		nextSubscribers: newEntitySet(),
	}
}

// mergeNext records a pending write. It never applies it and always
// succeeds; the last write before a merge wins.
func (c *Cell[T]) mergeNext(next Result[T], trigger bool) {
	c.next = next
	c.triggered = trigger
}

// merge applies the pending write, if any. It returns the cell's committed
// subscriber list when the value changed or the cell was triggered, along
// with the changed and triggered flags. The subscriber set is drained on
// notification and replenished when subscribers read the cell again.
//
// Whatever happens, the pending slot is reset to the sentinel and the
// trigger flag is cleared before returning.
func (c *Cell[T]) merge() (subs []Entity, changed, triggered bool) {
	triggered = c.triggered
	commit := false

	switch {
	case c.next.err != nil && errors.Is(c.next.err, ErrNoNextValue):
		// nothing was sent; never overwrite the value with "nothing happened"

	case c.next.err != nil:
		// a real upstream error always merges and propagates as data
		commit = true
		changed = !c.result.equals(c.next)

	case c.next.ok:
		if c.result.err == nil && c.result.ok && c.result.data == c.next.data {
			// same value: silent no-op unless triggered
			commit = triggered
		} else {
			commit = true
			changed = true
		}

	default:
		// an explicit None clears the cell
		commit = true
		changed = !c.result.isNone()
	}

	if commit {
		c.result = c.next
	}
	if commit || triggered {
		subs = c.subscribers.members()
		c.subscribers.clear()
	}
	c.next = noNext[T]()
	c.triggered = false
	return subs, changed, triggered
}

// update applies a result immediately, bypassing the pending slot. Memos
// use it because their values are not externally observable mid-tick.
// Returns whether the stored result changed.
func (c *Cell[T]) update(next Result[T]) bool {
	changed := !c.result.equals(next)
	c.result = next
	return changed
}

// read returns the committed result without subscribing.
func (c *Cell[T]) read() Result[T] {
	return c.result
}

// value subscribes the caller, then reads. The subscription lands in the
// pending set and only becomes visible to the engine after the next
// mergeSubscribers.
func (c *Cell[T]) value(caller Entity) Result[T] {
	c.subscribe(caller)
	return c.result
}

func (c *Cell[T]) subscribe(e Entity) {
	c.nextSubscribers.add(e)
}

// mergeSubscribers promotes pending subscribers into the committed set.
// This is the only place the committed set grows, so it never mutates while
// a propagation wave is iterating it.
func (c *Cell[T]) mergeSubscribers() {
	for _, e := range c.nextSubscribers.members() {
		c.subscribers.add(e)
	}
	c.nextSubscribers.clear()
}

// trigger marks the cell so its subscribers are notified on the next merge
// even though no value was sent.
func (c *Cell[T]) trigger() {
	c.triggered = true
}
