package usecase

import (
	"context"
	"errors"
	"sync"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/ports"
)

// ErrBusy rejects a dispatch while another operation is outstanding.
var ErrBusy = errors.New("an operation is already in flight")

// Result is the atomic outcome of one dispatched operation: the final
// grid snapshot plus stats and error, delivered together.
type Result struct {
	Grid  domain.Grid
	Stats ports.Stats
	Err   error
}

// Op is a long-running mutation of a grid snapshot.
type Op func(ctx context.Context, g domain.Grid) (ports.Stats, error)

// Runner serializes mutating operations against a logical grid. The
// caller's grid is snapshotted at dispatch, the operation runs on its
// own goroutine against the snapshot, and the whole result arrives on
// the returned channel in one send. At most one operation is in flight
// at a time; concurrent dispatches get ErrBusy instead of queueing, so
// an interactive caller can simply disable requests until the channel
// fires.
type Runner struct {
	mu   sync.Mutex
	busy bool
}

func NewRunner() *Runner { return &Runner{} }

// Busy reports whether an operation is outstanding.
func (r *Runner) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

// Dispatch starts op against a clone of g and returns a channel that
// will deliver exactly one Result.
func (r *Runner) Dispatch(ctx context.Context, g domain.Grid, op Op) (<-chan Result, error) {
	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		return nil, ErrBusy
	}
	r.busy = true
	r.mu.Unlock()

	snap := g.Clone()
	ch := make(chan Result, 1)
	go func() {
		st, err := op(ctx, snap)
		r.mu.Lock()
		r.busy = false
		r.mu.Unlock()
		ch <- Result{Grid: snap, Stats: st, Err: err}
	}()
	return ch, nil
}
