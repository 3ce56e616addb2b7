package lazysignals

import (
	"log/slog"
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
)

// OnErrorFunc receives errors raised by effect functions. The default
// implementation logs them.
type OnErrorFunc func(from Entity, err error)

// ReactiveSystem owns the world and runs the five-phase propagation pass.
// The engine itself is single-threaded: one Tick runs to completion under
// the lock. Other goroutines may enqueue commands or read committed values
// at any time; long-running tasks report back over the results channel.
type ReactiveSystem struct {
	mu    sync.Mutex
	world *World

	cmdMu    sync.Mutex
	commands []Command

	nextEntity atomic.Uint64

	inflight    mapset.Set[Entity]
	taskResults chan taskResult

	onError OnErrorFunc
	logger  *slog.Logger
}

type taskResult struct {
	entity Entity
	batch  CommandBatch
}

type Option func(*ReactiveSystem)

func WithLogger(logger *slog.Logger) Option {
	return func(rs *ReactiveSystem) { rs.logger = logger }
}

func WithOnError(fn OnErrorFunc) Option {
	return func(rs *ReactiveSystem) { rs.onError = fn }
}

// WithTaskBuffer sets the capacity of the task result channel. Tasks block
// on delivery when it is full, which only delays when their batches apply.
func WithTaskBuffer(n int) Option {
	return func(rs *ReactiveSystem) { rs.taskResults = make(chan taskResult, n) }
}

func NewReactiveSystem(opts ...Option) *ReactiveSystem {
	rs := &ReactiveSystem{
		inflight:    mapset.NewSet[Entity](),
		taskResults: make(chan taskResult, 64),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(rs)
	}
	if rs.onError == nil {
		logger := rs.logger
		rs.onError = func(from Entity, err error) {
			logger.Error("effect error", "entity", from, "error", err)
		}
	}
	rs.world = newWorld(rs.logger)
	return rs
}

func (rs *ReactiveSystem) spawn() Entity {
	return Entity(rs.nextEntity.Add(1))
}

func (rs *ReactiveSystem) enqueue(cmds ...Command) {
	rs.cmdMu.Lock()
	defer rs.cmdMu.Unlock()
	rs.commands = append(rs.commands, cmds...)
}

// Remove queues removal of the given entities. Cells that still list them
// as sources keep the dangling ids; operations on them degrade to logged
// no-ops rather than crashing.
func (rs *ReactiveSystem) Remove(entities ...Entity) {
	for _, e := range entities {
		rs.enqueue(despawnCommand{entity: e})
	}
}

// tickState is the propagation state for a single tick. It is rebuilt
// fresh each pass; only the in-flight task set outlives a tick.
type tickState struct {
	triggered mapset.Set[Entity]
	running   *entitySet
	next      *entitySet
	processed mapset.Set[Entity]
	changed   mapset.Set[Entity]
	deferred  *entitySet
	marked    *entitySet // memos marked for recomputation, in wave order
}

func newTickState() *tickState {
	return &tickState{
		triggered: mapset.NewSet[Entity](),
		running:   newEntitySet(),
		next:      newEntitySet(),
		processed: mapset.NewSet[Entity](),
		changed:   mapset.NewSet[Entity](),
		deferred:  newEntitySet(),
		marked:    newEntitySet(),
	}
}

func (st *tickState) addSubsToRunning(subs []Entity, triggered bool) {
	for _, sub := range subs {
		st.next.add(sub)
		// a triggered source marks its whole wave as triggered too
		if triggered {
			st.triggered.Add(sub)
		}
	}
}

// mergeRunning moves the next wave into the running set. Returns false when
// there is no next wave and propagation is done.
func (st *tickState) mergeRunning() bool {
	if st.next.len() == 0 {
		return false
	}
	for _, e := range st.next.members() {
		st.running.add(e)
	}
	st.next.clear()
	return true
}

// Tick runs one full propagation pass: collect finished tasks and pending
// commands, rebuild fresh subscriptions, merge and propagate signal writes,
// recompute marked memos, then dispatch deferred effects.
func (rs *ReactiveSystem) Tick() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.checkTasks()
	rs.flushCommands()
	rs.initSubscribers()

	st := newTickState()
	rs.sendSignals(st)
	rs.computeMemos(st)
	rs.applyDeferredEffects(st)
}

// checkTasks drains finished long-running effects and queues their
// mutation batches for this tick's collecting phase. Each batch is applied
// exactly once.
func (rs *ReactiveSystem) checkTasks() {
	for {
		select {
		case res := <-rs.taskResults:
			rs.inflight.Remove(res.entity)
			rs.enqueue(res.batch...)
		default:
			return
		}
	}
}

func (rs *ReactiveSystem) flushCommands() {
	rs.cmdMu.Lock()
	pending := rs.commands
	rs.commands = nil
	rs.cmdMu.Unlock()

	if len(pending) > 0 {
		rs.logger.Debug("flushing commands", "count", len(pending))
	}
	for _, cmd := range pending {
		cmd.apply(rs.world)
	}
}

// initSubscribers subscribes newly created memos and effects to their
// sources and triggers, promoting the subscriptions immediately so the
// send phase of the same tick sees them.
func (rs *ReactiveSystem) initSubscribers() {
	w := rs.world
	for _, e := range w.rebuild.members() {
		if cm, ok := w.computeds[e]; ok {
			for _, source := range cm.sources {
				rs.subscribeTo(e, source)
			}
		}
		if eff, ok := w.effects[e]; ok {
			for _, source := range eff.sources {
				rs.subscribeTo(e, source)
			}
			for _, trigger := range eff.triggers {
				rs.subscribeTo(e, trigger)
			}
		}
	}
	w.rebuild.clear()
}

func (rs *ReactiveSystem) subscribeTo(e, source Entity) {
	obs, ok := rs.world.observableFor(source)
	if !ok {
		return
	}
	obs.subscribe(e)
	obs.mergeSubscribers()
}

// sendSignals merges every pending write and walks the subscriber graph in
// breadth-first waves, marking memos for recomputation and effects for
// deferred dispatch. The processed set makes revisits within a tick
// idempotent, which keeps diamonds and cycles from looping.
func (rs *ReactiveSystem) sendSignals(st *tickState) {
	w := rs.world

	// phase one: merge pending writes and seed the first wave
	pending := w.sendSignal.members()
	w.sendSignal.clear()
	if len(pending) > 0 {
		w.logger.Debug("merging sent signals", "count", len(pending))
	}
	for _, e := range pending {
		obs, ok := w.observableFor(e)
		if !ok {
			continue
		}
		subs, changed, triggered := obs.merge()
		if changed {
			st.changed.Add(e)
		}
		st.addSubsToRunning(subs, triggered)
	}

	// phase two: fire notifications up the subscriber graph, wave by wave
	for st.mergeRunning() {
		for _, runner := range st.running.members() {
			if st.processed.Contains(runner) {
				continue
			}
			st.processed.Add(runner)

			if _, ok := w.effects[runner]; ok {
				st.deferred.add(runner)
			}
			if _, ok := w.computeds[runner]; ok {
				st.marked.add(runner)
				if obs, ok := w.observableFor(runner); ok {
					st.addSubsToRunning(obs.listSubscribers(), st.triggered.Contains(runner))
				}
			}
		}
		st.running.clear()
	}
}

// computeMemos recomputes each marked memo after its marked sources have
// resolved: a memo with a still-dirty source is pushed back behind that
// source. This is dependency-order resolution by depth-first re-push, not
// a topological sort; the recomputed set bounds each memo to one
// recomputation per tick.
func (rs *ReactiveSystem) computeMemos(st *tickState) {
	w := rs.world
	recomputed := mapset.NewSet[Entity]()
	onStack := mapset.NewSet[Entity]()

	// onStack tracks only sources re-pushed during traversal; a marked
	// source that is already behind us on the stack means a cycle, and
	// pushing it again would loop forever.
	stack := st.marked.members()
	if len(stack) > 0 {
		w.logger.Debug("recomputing memos", "count", len(stack))
	}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		if recomputed.Contains(e) {
			stack = stack[:len(stack)-1]
			continue
		}
		cm, ok := w.computeds[e]
		if !ok {
			w.logger.Warn("marked memo disappeared", "entity", e)
			stack = stack[:len(stack)-1]
			continue
		}

		dirty := false
		for _, source := range cm.sources {
			if source == e || !st.marked.has(source) || recomputed.Contains(source) {
				continue
			}
			if onStack.Contains(source) {
				// already queued above us: a cycle, let the guard break it
				continue
			}
			onStack.Add(source)
			stack = append(stack, source)
			dirty = true
		}
		if dirty {
			continue
		}

		stack = stack[:len(stack)-1]
		recomputed.Add(e)
		if rs.recompute(e, cm) {
			st.changed.Add(e)
		}
	}
}

// recompute assembles the memo's argument bundle from its sources,
// re-subscribing to each, and applies the propagator's result directly to
// the cell. Returns whether the stored value changed. A propagator error
// is stored like any value and flows downstream as data.
func (rs *ReactiveSystem) recompute(e Entity, cm *ComputedImmutable) bool {
	args := &Tuple{}
	for _, source := range cm.sources {
		obs, ok := rs.world.observableFor(source)
		if !ok {
			args.appendNone()
			continue
		}
		obs.copyData(e, args)
		obs.mergeSubscribers()
	}
	return cm.run(args)
}

// applyDeferredEffects runs each deferred effect whose sources or triggers
// actually changed, or which was explicitly triggered. Short effects run
// inline; long effects spawn a task unless one is already in flight, in
// which case the trigger is dropped for this tick. Deferred-but-not-run
// effects still refresh their subscriptions so they hear about the next
// change.
func (rs *ReactiveSystem) applyDeferredEffects(st *tickState) {
	w := rs.world
	for _, e := range st.deferred.members() {
		eff, ok := w.effects[e]
		if !ok {
			continue
		}

		run := st.triggered.Contains(e)
		if !run {
			for _, dep := range eff.sources {
				if st.changed.Contains(dep) {
					run = true
					break
				}
			}
		}
		if !run {
			for _, dep := range eff.triggers {
				if st.changed.Contains(dep) {
					run = true
					break
				}
			}
		}

		for _, dep := range eff.sources {
			rs.subscribeTo(e, dep)
		}
		for _, dep := range eff.triggers {
			rs.subscribeTo(e, dep)
		}
		if !run {
			continue
		}
		if eff.long != nil && rs.inflight.Contains(e) {
			w.logger.Debug("task already in flight, dropping trigger", "entity", e)
			continue
		}

		args := &Tuple{}
		for _, source := range eff.sources {
			obs, ok := w.observableFor(source)
			if !ok {
				args.appendNone()
				continue
			}
			obs.copyData(e, args)
			obs.mergeSubscribers()
		}

		if eff.short != nil {
			if err := eff.short(args); err != nil {
				rs.onError(e, err)
			}
			continue
		}

		rs.inflight.Add(e)
		go func(e Entity, fn TaskFn, args *Tuple) {
			rs.taskResults <- taskResult{entity: e, batch: fn(args)}
		}(e, eff.long, args)
	}
}
