package lazysignals

// observable is the capability the propagation engine holds instead of a
// concrete Cell[T]. Each value type registers one implementation; the
// engine finds it through the type key stored alongside the cell, so
// graph-walking code never needs static type information.
type observable interface {
	// copyData appends the cell's current value to the args bundle (absent
	// when the cell never wrote or holds an error) and subscribes the
	// caller for future notifications.
	copyData(caller Entity, args *Tuple)

	// listSubscribers returns the committed subscriber list without
	// draining it.
	listSubscribers() []Entity

	merge() (subs []Entity, changed, triggered bool)
	mergeSubscribers()
	subscribe(e Entity)
	trigger()

	// currentError exposes the committed error, if any.
	currentError() error
}

func (c *Cell[T]) copyData(caller Entity, args *Tuple) {
	if v, ok := c.result.Value(); ok {
		args.appendValue(v)
	} else {
		args.appendNone()
	}
	c.subscribe(caller)
}

func (c *Cell[T]) listSubscribers() []Entity {
	return c.subscribers.members()
}

func (c *Cell[T]) currentError() error {
	if c.result.err != nil {
		return c.result.err
	}
	return nil
}
