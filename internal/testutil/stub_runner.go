package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/RevCBH/onionportal/internal/container"
)

// StubRunner is a scripted container.Runner. Responses are keyed by the
// space-joined argument list; every call is recorded in order.
type StubRunner struct {
	mu       sync.Mutex
	stubs    map[string][]container.CommandResult
	defaults map[string]container.CommandResult
	calls    []string
	onRun    func(args string)
}

func NewStubRunner() *StubRunner {
	return &StubRunner{
		stubs:    make(map[string][]container.CommandResult),
		defaults: make(map[string]container.CommandResult),
	}
}

// Stub queues a single response for args.
func (s *StubRunner) Stub(args string, res container.CommandResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stubs[args] = append(s.stubs[args], res)
}

// StubDefault sets the response for args once queued responses run out.
func (s *StubRunner) StubDefault(args string, res container.CommandResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults[args] = res
}

// StubOK is shorthand for a default zero-exit response with stdout.
func (s *StubRunner) StubOK(args string, stdout string) {
	s.StubDefault(args, container.CommandResult{Stdout: stdout})
}

// StubExit is shorthand for a default response with the given exit code.
func (s *StubRunner) StubExit(args string, code int) {
	s.StubDefault(args, container.CommandResult{ExitCode: code})
}

// OnRun registers fn to be called with each invocation before it is answered.
func (s *StubRunner) OnRun(fn func(args string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRun = fn
}

func (s *StubRunner) Run(ctx context.Context, capture bool, args ...string) container.CommandResult {
	key := strings.Join(args, " ")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.onRun != nil {
		s.onRun(key)
	}
	s.calls = append(s.calls, key)
	queue := s.stubs[key]
	if len(queue) == 0 {
		if res, ok := s.defaults[key]; ok {
			return res
		}
		return container.CommandResult{ExitCode: -1, Err: fmt.Errorf("unexpected runtime call: %s", key)}
	}
	res := queue[0]
	s.stubs[key] = queue[1:]
	return res
}

// Calls returns every recorded invocation in order.
func (s *StubRunner) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// CallsFor counts invocations matching args exactly.
func (s *StubRunner) CallsFor(args ...string) int {
	key := strings.Join(args, " ")
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Count(s.calls, key)
}

// CallsWithPrefix returns recorded invocations starting with prefix.
func (s *StubRunner) CallsWithPrefix(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Filter(s.calls, func(call string, _ int) bool {
		return strings.HasPrefix(call, prefix)
	})
}

var _ container.Runner = (*StubRunner)(nil)
