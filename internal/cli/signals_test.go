package cli

import (
	"context"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptHandler_RunsCallbacksInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewInterruptHandler(cancel, nil)

	var mu sync.Mutex
	var order []int
	for i := 1; i <= 3; i++ {
		h.OnInterrupt(func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, i)
		})
	}

	h.watch()
	defer h.Stop()
	h.signals <- syscall.SIGINT

	select {
	case <-h.Fired():
	case <-time.After(time.Second):
		t.Fatal("callbacks did not run")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestInterruptHandler_NilCancel(t *testing.T) {
	h := NewInterruptHandler(nil, nil)

	called := make(chan struct{})
	h.OnInterrupt(func() { close(called) })

	h.watch()
	defer h.Stop()
	h.signals <- syscall.SIGTERM

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("callback did not run")
	}
}

func TestInterruptHandler_StopWithoutSignal(t *testing.T) {
	h := NewInterruptHandler(nil, nil)
	h.OnInterrupt(func() { t.Error("callback ran without a signal") })

	h.watch()
	h.Stop()
	h.Stop()

	select {
	case <-h.done:
	default:
		t.Fatal("watcher still running after Stop")
	}
	select {
	case <-h.Fired():
		t.Fatal("fired without a signal")
	default:
	}
}

func TestInterruptHandler_StartSubscribes(t *testing.T) {
	h := NewInterruptHandler(nil, nil)
	h.Start()
	require.NotPanics(t, h.Stop)
}
