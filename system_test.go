package lazysignals_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ls "github.com/knutsoned/lazysignals"
)

func TestEffectRunsOnceOnSend(t *testing.T) {
	rs := ls.NewReactiveSystem()

	s := ls.State(rs, false)
	runs := 0
	var seen bool
	ls.Effect1(rs, s, func(v *bool) error {
		runs++
		if v != nil {
			seen = *v
		}
		return nil
	})

	ls.Send(rs, s, true)
	rs.Tick()

	assert.Equal(t, 1, runs)
	assert.True(t, seen)

	// no further sends, no further runs
	rs.Tick()
	assert.Equal(t, 1, runs)
}

func TestMemoChainPropagatesThroughEffect(t *testing.T) {
	rs := ls.NewReactiveSystem()

	s := ls.State(rs, 0)
	m := ls.Computed1(rs, s, func(v *int) (int, error) {
		if v == nil {
			return 0, nil
		}
		return *v + 1, nil
	})
	runs := 0
	got := 0
	ls.Effect1(rs, m, func(v *int) error {
		runs++
		if v != nil {
			got = *v
		}
		return nil
	})

	ls.Send(rs, s, 5)
	rs.Tick()

	v, ok := ls.Read[int](rs, m)
	require.True(t, ok)
	assert.Equal(t, 6, v)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 6, got)
}

func TestUnchangedSendIsSilent(t *testing.T) {
	rs := ls.NewReactiveSystem()

	s := ls.State(rs, "x")
	runs := 0
	ls.Effect1(rs, s, func(v *string) error {
		runs++
		return nil
	})

	ls.Send(rs, s, "x")
	rs.Tick()

	assert.Zero(t, runs)
	v, ok := ls.Read[string](rs, s)
	require.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestTriggerFiresOncePerTick(t *testing.T) {
	rs := ls.NewReactiveSystem()

	tr := ls.TriggerState(rs)
	runs := 0
	ls.Effect(rs, func(args *ls.Tuple) error {
		runs++
		return nil
	}, nil, []ls.Entity{tr})

	ls.Trigger(rs, tr)
	rs.Tick()
	assert.Equal(t, 1, runs)

	ls.Trigger(rs, tr)
	rs.Tick()
	assert.Equal(t, 2, runs)

	// no trigger, no run
	rs.Tick()
	assert.Equal(t, 2, runs)
}

func TestTriggerNotifiesEvenWhenValueIsIdentical(t *testing.T) {
	rs := ls.NewReactiveSystem()

	s := ls.State(rs, 7)
	runs := 0
	ls.Effect1(rs, s, func(v *int) error {
		runs++
		return nil
	})

	ls.SendAndTrigger(rs, s, 7)
	rs.Tick()

	assert.Equal(t, 1, runs)
}

func TestPropagatorErrorFlowsDownstreamAsData(t *testing.T) {
	rs := ls.NewReactiveSystem()

	boom := errors.New("boom")
	s := ls.State(rs, 1)
	m := ls.Computed1(rs, s, func(v *int) (int, error) {
		return 0, boom
	})
	var sawArg *int = new(int)
	runs := 0
	ls.Effect1(rs, m, func(v *int) error {
		runs++
		sawArg = v
		return nil
	})

	ls.Send(rs, s, 2)
	rs.Tick()

	assert.Equal(t, 1, runs)
	assert.Nil(t, sawArg, "errored source reads as absent")
	assert.ErrorIs(t, ls.GetError(rs, m), boom)

	_, ok := ls.Read[int](rs, m)
	assert.False(t, ok)
}

func TestEffectErrorGoesToHandler(t *testing.T) {
	var from ls.Entity
	var caught error
	rs := ls.NewReactiveSystem(ls.WithOnError(func(e ls.Entity, err error) {
		from = e
		caught = err
	}))

	s := ls.State(rs, 0)
	oops := errors.New("oops")
	e := ls.Effect1(rs, s, func(v *int) error {
		return oops
	})

	ls.Send(rs, s, 1)
	rs.Tick()

	assert.Equal(t, e, from)
	assert.ErrorIs(t, caught, oops)
}

func TestExplicitNoneClearsValue(t *testing.T) {
	rs := ls.NewReactiveSystem()

	s := ls.State(rs, 3)
	runs := 0
	var sawArg *int = new(int)
	ls.Effect1(rs, s, func(v *int) error {
		runs++
		sawArg = v
		return nil
	})

	ls.SendNone[int](rs, s)
	rs.Tick()

	assert.Equal(t, 1, runs)
	assert.Nil(t, sawArg)
	_, ok := ls.Read[int](rs, s)
	assert.False(t, ok)
}

func TestSendToUnknownEntityIsNoOp(t *testing.T) {
	rs := ls.NewReactiveSystem()

	s := ls.State(rs, 1)
	ls.Send(rs, ls.Entity(9999), 42)
	rs.Tick()

	v, ok := ls.Read[int](rs, s)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestSendTypeMismatchIsNoOp(t *testing.T) {
	rs := ls.NewReactiveSystem()

	s := ls.State(rs, 1)
	rs.Tick()

	ls.Send(rs, s, "not an int")
	rs.Tick()

	v, ok := ls.Read[int](rs, s)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestRemoveDespawnsCell(t *testing.T) {
	rs := ls.NewReactiveSystem()

	s := ls.State(rs, 1)
	rs.Tick()

	rs.Remove(s)
	rs.Tick()

	_, ok := ls.Read[int](rs, s)
	assert.False(t, ok)

	// sends to a despawned cell degrade to a no-op
	ls.Send(rs, s, 2)
	rs.Tick()
}

func TestEffectSendFeedsNextTick(t *testing.T) {
	rs := ls.NewReactiveSystem()

	a := ls.State(rs, 0)
	b := ls.State(rs, 0)
	aRuns, bRuns := 0, 0
	ls.Effect1(rs, a, func(v *int) error {
		aRuns++
		if v != nil {
			ls.Send(rs, b, *v*10)
		}
		return nil
	})
	bGot := 0
	ls.Effect1(rs, b, func(v *int) error {
		bRuns++
		if v != nil {
			bGot = *v
		}
		return nil
	})

	ls.Send(rs, a, 2)
	rs.Tick()
	assert.Equal(t, 1, aRuns)
	assert.Zero(t, bRuns, "downstream send waits for the next tick")

	rs.Tick()
	assert.Equal(t, 1, bRuns)
	assert.Equal(t, 20, bGot)
}

func TestReadBeforeFirstTickMisses(t *testing.T) {
	rs := ls.NewReactiveSystem()

	s := ls.State(rs, 1)
	_, ok := ls.Read[int](rs, s)
	assert.False(t, ok, "creation is queued until the next tick")

	rs.Tick()
	v, ok := ls.Read[int](rs, s)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}
