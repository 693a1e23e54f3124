package sat

import (
	"context"
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// GiniEngine backs the Engine capability with the gini CDCL solver.
type GiniEngine struct{}

func NewGiniEngine() *GiniEngine { return &GiniEngine{} }

func (e *GiniEngine) Solve(ctx context.Context, f Formula) (Assignment, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	g := gini.New()
	for _, cl := range f.Clauses {
		for _, lit := range cl {
			if lit > 0 {
				g.Add(z.Var(lit).Pos())
			} else {
				g.Add(z.Var(-lit).Neg())
			}
		}
		g.Add(z.LitNull)
	}
	switch g.Solve() {
	case 1:
		return giniModel{g: g}, true, nil
	case -1:
		return nil, false, nil
	}
	return nil, false, errors.New("sat: engine undetermined")
}

type giniModel struct{ g *gini.Gini }

func (m giniModel) True(index int) bool {
	return m.g.Value(z.Var(index + 1).Pos())
}
