package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/scanconsole/internal/store"
)

type addAction struct{ n int }

func (addAction) Name() string { return "ADD" }

type resetAction struct{}

func (resetAction) Name() string { return "RESET" }

func counterReducer(state int, action store.Action) int {
	switch a := action.(type) {
	case addAction:
		return state + a.n
	case resetAction:
		return 0
	default:
		return state
	}
}

func TestStore_DispatchAppliesReducer(t *testing.T) {
	t.Parallel()

	s := store.New(10, counterReducer, nil)

	s.Dispatch(addAction{n: 5})
	assert.Equal(t, 15, s.GetState())

	s.Dispatch(resetAction{})
	assert.Equal(t, 0, s.GetState())
}

func TestStore_SnapshotIsStable(t *testing.T) {
	t.Parallel()

	type state struct{ items []string }
	reduce := func(s state, _ store.Action) state {
		next := make([]string, len(s.items), len(s.items)+1)
		copy(next, s.items)
		return state{items: append(next, "x")}
	}

	s := store.New(state{}, reduce, nil)
	before := s.GetState()
	s.Dispatch(resetAction{})

	assert.Empty(t, before.items, "snapshot taken before dispatch must not change")
	assert.Len(t, s.GetState().items, 1)
}

func TestStore_ListenersNotifiedInOrder(t *testing.T) {
	t.Parallel()

	s := store.New(0, counterReducer, nil)

	var got []string
	s.Subscribe(func(a store.Action) { got = append(got, "first:"+a.Name()) })
	s.Subscribe(func(a store.Action) { got = append(got, "second:"+a.Name()) })

	s.Dispatch(addAction{n: 1})

	assert.Equal(t, []string{"first:ADD", "second:ADD"}, got)
}

func TestStore_ListenerSeesNewState(t *testing.T) {
	t.Parallel()

	s := store.New(0, counterReducer, nil)

	var seen int
	s.Subscribe(func(store.Action) { seen = s.GetState() })
	s.Dispatch(addAction{n: 7})

	assert.Equal(t, 7, seen)
}

func TestStore_Unsubscribe(t *testing.T) {
	t.Parallel()

	s := store.New(0, counterReducer, nil)

	calls := 0
	unsubscribe := s.Subscribe(func(store.Action) { calls++ })

	s.Dispatch(addAction{n: 1})
	unsubscribe()
	s.Dispatch(addAction{n: 1})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, s.GetState())
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	t.Parallel()

	s := store.New(0, counterReducer, nil)

	const goroutines = 50
	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(addAction{n: 2})
			_ = s.GetState()
		}()
	}
	wg.Wait()

	require.Equal(t, goroutines*2, s.GetState())
}

func TestRef_Update(t *testing.T) {
	t.Parallel()

	r := store.NewRef("a")
	got := r.Update(func(s string) string { return s + "b" })

	assert.Equal(t, "ab", got)
	assert.Equal(t, "ab", r.Get())
}
