package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCell_GetSet(t *testing.T) {
	c := NewCell(1)
	assert.Equal(t, 1, c.Get())

	c.Set(5)
	assert.Equal(t, 5, c.Get())

	got := c.Update(func(v int) int { return v * 2 })
	assert.Equal(t, 10, got)
	assert.Equal(t, 10, c.Get())
}

func TestCell_SubscribeKeepsLatestValue(t *testing.T) {
	c := NewCell("a")
	ch, cancel := c.Subscribe()
	defer cancel()

	c.Set("b")
	c.Set("c")
	c.Set("d")

	select {
	case v := <-ch:
		assert.Equal(t, "d", v)
	default:
		t.Fatal("expected a pending value")
	}

	select {
	case v := <-ch:
		t.Fatalf("unexpected extra value %q", v)
	default:
	}
}

func TestCell_SubscribeDoesNotReplayCurrent(t *testing.T) {
	c := NewCell(7)
	ch, cancel := c.Subscribe()
	defer cancel()

	select {
	case v := <-ch:
		t.Fatalf("unexpected value %d", v)
	default:
	}
}

func TestCell_CancelClosesAndIsIdempotent(t *testing.T) {
	c := NewCell(0)
	ch, cancel := c.Subscribe()

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)

	// Setting after cancel must not panic on the closed channel.
	c.Set(1)
	assert.Equal(t, 1, c.Get())
}

func TestCell_MultipleSubscribers(t *testing.T) {
	c := NewCell(false)
	ch1, cancel1 := c.Subscribe()
	defer cancel1()
	ch2, cancel2 := c.Subscribe()
	defer cancel2()

	c.Set(true)

	assert.True(t, <-ch1)
	assert.True(t, <-ch2)
}

func TestCell_WatchStopsOnContextCancel(t *testing.T) {
	c := NewCell(0)
	ctx, cancel := context.WithCancel(context.Background())

	got := make(chan int, 10)
	done := c.Watch(ctx, func(v int) { got <- v })

	c.Set(1)
	select {
	case v := <-got:
		assert.Equal(t, 1, v)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not observe the change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not exit")
	}

	// The subscription is released with the goroutine.
	c.mu.Lock()
	n := len(c.subs)
	c.mu.Unlock()
	assert.Equal(t, 0, n)
}

func TestCell_EqualValueSkipsNotify(t *testing.T) {
	c := NewComparableCell(false)
	ch, cancel := c.Subscribe()
	defer cancel()

	c.Set(false)
	c.Update(func(v bool) bool { return v })
	select {
	case v := <-ch:
		t.Fatalf("unexpected notification %v", v)
	default:
	}

	c.Set(true)
	assert.True(t, <-ch)
}

func TestCell_EqualFunc(t *testing.T) {
	sameLen := func(a, b []string) bool { return len(a) == len(b) }
	c := NewCellFunc([]string{"a"}, sameLen)
	ch, cancel := c.Subscribe()
	defer cancel()

	c.Set([]string{"b"})
	select {
	case v := <-ch:
		t.Fatalf("unexpected notification %v", v)
	default:
	}
	assert.Equal(t, []string{"a"}, c.Get())

	c.Set([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, <-ch)
}

func TestCell_PlainCellNotifiesOnSameValue(t *testing.T) {
	c := NewCell(1)
	ch, cancel := c.Subscribe()
	defer cancel()

	c.Set(1)
	assert.Equal(t, 1, <-ch)
}

func TestCell_ConcurrentWriters(t *testing.T) {
	c := NewCell(0)
	ch, cancel := c.Subscribe()
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()

	require.Equal(t, 50, c.Get())
	assert.Equal(t, 50, <-ch)
}
