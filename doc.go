// Package lazysignals is a lazy, push-pull reactive dependency graph:
// signals, computed memos, and effects in the shape of the TC39 signals
// proposal, driven by an explicit five-phase propagation engine.
//
// Writes are lazy. Sending a value queues a pending write; nothing is
// visible until the next Tick merges it, walks the subscriber graph in
// breadth-first waves, recomputes the memos the waves reached, and
// dispatches the effects whose inputs actually changed. Triggering a cell
// forces notification without a value change. Long-running effects run off
// the engine as tasks and hand back a command batch that merges on a later
// tick.
//
//	rs := lazysignals.NewReactiveSystem()
//	count := lazysignals.State(rs, 1)
//	double := lazysignals.Computed1(rs, count, func(c *int) (int, error) {
//		return *c * 2, nil
//	})
//	lazysignals.Effect1(rs, double, func(d *int) error {
//		log.Printf("double is %d", *d)
//		return nil
//	})
//	lazysignals.Send(rs, count, 2)
//	rs.Tick() // double is 4
package lazysignals
