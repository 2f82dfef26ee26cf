package cli

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
)

// InterruptHandler runs cancellation callbacks when the process receives
// SIGINT or SIGTERM while a guided start is in flight.
type InterruptHandler struct {
	signals   chan os.Signal
	fired     chan struct{}
	stopCh    chan struct{}
	done      chan struct{}
	stopOnce  sync.Once
	cancel    context.CancelFunc
	callbacks []func()
	mu        sync.Mutex
	logger    *log.Logger
}

// NewInterruptHandler creates a handler. cancel may be nil when only
// callbacks are needed.
func NewInterruptHandler(cancel context.CancelFunc, logger *log.Logger) *InterruptHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &InterruptHandler{
		signals: make(chan os.Signal, 1),
		fired:   make(chan struct{}),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
		cancel:  cancel,
		logger:  logger,
	}
}

// OnInterrupt registers fn; callbacks run in registration order.
func (h *InterruptHandler) OnInterrupt(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.callbacks = append(h.callbacks, fn)
}

// Start subscribes to process signals and begins watching.
func (h *InterruptHandler) Start() {
	signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)
	h.watch()
}

// watch waits for a signal on h.signals until Stop is called. Tests feed
// the channel directly instead of subscribing.
func (h *InterruptHandler) watch() {
	ready := make(chan struct{})
	go func() {
		defer close(h.done)
		close(ready)

		select {
		case sig := <-h.signals:
			h.logger.Debug("interrupted", "signal", sig)
			if h.cancel != nil {
				h.cancel()
			}

			h.mu.Lock()
			fns := append([]func(){}, h.callbacks...)
			h.mu.Unlock()
			for _, fn := range fns {
				fn()
			}
			close(h.fired)
		case <-h.stopCh:
		}
	}()
	<-ready
}

// Fired is closed once the callbacks for a received signal have run.
func (h *InterruptHandler) Fired() <-chan struct{} {
	return h.fired
}

// Stop unsubscribes and waits briefly for the watcher to exit. Safe to
// call more than once.
func (h *InterruptHandler) Stop() {
	signal.Stop(h.signals)
	h.stopOnce.Do(func() { close(h.stopCh) })
	select {
	case <-h.done:
	case <-time.After(100 * time.Millisecond):
	}
}
