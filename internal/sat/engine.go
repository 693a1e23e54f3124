package sat

import "context"

// Assignment is one satisfying assignment, queried by dense variable
// index (the same space Index produces).
type Assignment interface {
	True(index int) bool
}

// Engine is the external satisfiability capability: it accepts a CNF
// formula and reports unsatisfiable, or satisfiable with one model.
// Any conforming engine can back the solver; nothing above this
// interface knows which one is wired in.
type Engine interface {
	Solve(ctx context.Context, f Formula) (Assignment, bool, error)
}
