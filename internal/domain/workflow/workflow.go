// Package workflow runs user-initiated mutations: one submission at a time
// per workflow, and a fresh snapshot after every success.
package workflow

import (
	"context"
	"sync"

	"golang.org/x/exp/slog"

	"banker/internal/domain/failure"
)

// Outcome is the result of a successful mutation. RefreshErr is set when
// the mutation went through but the follow-up snapshot could not be loaded.
type Outcome[T any] struct {
	Message    string
	Snapshot   T
	RefreshErr error
}

// Guard tracks which workflows have a call outstanding.
type Guard struct {
	mu      sync.Mutex
	running map[string]bool
}

func NewGuard() *Guard {
	return &Guard{running: make(map[string]bool)}
}

// Begin marks name as running. It fails with failure.ErrInFlight when the
// previous submission has not finished yet.
func (g *Guard) Begin(name string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running[name] {
		return nil, failure.ErrInFlight
	}
	g.running[name] = true

	return func() {
		g.mu.Lock()
		delete(g.running, name)
		g.mu.Unlock()
	}, nil
}

// Running reports whether name is in flight.
func (g *Guard) Running(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running[name]
}

// Step describes one workflow run.
type Step[T any] struct {
	Name string
	// Success is used when the backend answers without a message.
	Success string
	Failure string
	Call    func(ctx context.Context) (string, error)
	Refresh func(ctx context.Context) (T, error)
}

// Run executes step under g. Local state is never touched on failure.
func Run[T any](ctx context.Context, g *Guard, log *slog.Logger, step Step[T]) (*Outcome[T], error) {
	release, err := g.Begin(step.Name)
	if err != nil {
		return nil, failure.Wrap(err, step.Failure)
	}
	defer release()

	msg, err := step.Call(ctx)
	if err != nil {
		log.Warn("workflow failed", slog.String("workflow", step.Name), slog.String("error", err.Error()))
		return nil, failure.Wrap(err, step.Failure)
	}
	if msg == "" {
		msg = step.Success
	}

	out := &Outcome[T]{Message: msg}
	if step.Refresh != nil {
		out.Snapshot, out.RefreshErr = step.Refresh(ctx)
		if out.RefreshErr != nil {
			log.Warn("refresh after workflow", slog.String("workflow", step.Name), slog.String("error", out.RefreshErr.Error()))
		}
	}

	log.Debug("workflow done", slog.String("workflow", step.Name))

	return out, nil
}
