package lazysignals_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ls "github.com/knutsoned/lazysignals"
)

func TestTaskBatchAppliesOnLaterTick(t *testing.T) {
	rs := ls.NewReactiveSystem()

	src := ls.State(rs, 0)
	res := ls.State(rs, 0)
	ls.Task(rs, func(args *ls.Tuple) ls.CommandBatch {
		v, _ := ls.GetField[int](args, 0)
		return ls.CommandBatch{ls.SendCommand(res, v*10)}
	}, []ls.Entity{src}, nil)

	ls.Send(rs, src, 4)
	rs.Tick()

	require.Eventually(t, func() bool {
		rs.Tick()
		v, ok := ls.Read[int](rs, res)
		return ok && v == 40
	}, time.Second, 5*time.Millisecond)
}

func TestTaskAtMostOneInFlight(t *testing.T) {
	rs := ls.NewReactiveSystem()

	src := ls.State(rs, 0)
	res := ls.State(rs, 0)
	gate := make(chan struct{})
	var runs atomic.Int32
	ls.Task(rs, func(args *ls.Tuple) ls.CommandBatch {
		runs.Add(1)
		<-gate
		return ls.CommandBatch{ls.SendCommand(res, 10)}
	}, []ls.Entity{src}, nil)

	ls.Send(rs, src, 1)
	rs.Tick()

	// the first run is still blocked; this trigger is dropped
	ls.Send(rs, src, 2)
	rs.Tick()

	close(gate)
	require.Eventually(t, func() bool {
		rs.Tick()
		v, ok := ls.Read[int](rs, res)
		return ok && v == 10
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	// a fresh send after completion starts a new run
	ls.Send(rs, src, 3)
	require.Eventually(t, func() bool {
		rs.Tick()
		return runs.Load() == 2
	}, time.Second, 5*time.Millisecond)
}

func TestTaskBatchCanTrigger(t *testing.T) {
	rs := ls.NewReactiveSystem()

	src := ls.State(rs, 0)
	done := ls.TriggerState(rs)
	var doneRuns atomic.Int32
	ls.Effect(rs, func(args *ls.Tuple) error {
		doneRuns.Add(1)
		return nil
	}, nil, []ls.Entity{done})
	ls.Task(rs, func(args *ls.Tuple) ls.CommandBatch {
		return ls.CommandBatch{ls.TriggerCommand(done)}
	}, []ls.Entity{src}, nil)

	ls.Send(rs, src, 1)
	rs.Tick()

	require.Eventually(t, func() bool {
		rs.Tick()
		return doneRuns.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// no further triggers arrive on their own
	rs.Tick()
	rs.Tick()
	assert.Equal(t, int32(1), doneRuns.Load())
}
