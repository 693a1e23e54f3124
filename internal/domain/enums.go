package domain

import "strings"

// Strategy selects which solving approach a request uses.
type Strategy int

const (
	StrategyBacktracking Strategy = iota
	StrategySAT
)

func (s Strategy) String() string {
	if s == StrategySAT {
		return "sat"
	}
	return "backtracking"
}

// ParseStrategy maps user-facing names to a Strategy, defaulting to
// backtracking.
func ParseStrategy(s string) Strategy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sat", "cnf":
		return StrategySAT
	default:
		return StrategyBacktracking
	}
}
