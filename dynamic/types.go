// Package dynamic defines the parameter and callback types of the
// dynamic-programming solvers.
package dynamic

// Algorithm identifiers accepted by Exec.
const (
	AlgoFib      = "dp-fib"
	AlgoKnapsack = "dp-knapsack"
	AlgoLCS      = "dp-lcs"

	// AlgoAdaptiveSearch is reported by Supported but has no solver yet.
	AlgoAdaptiveSearch = "adaptive-search"
)

// Param is one key/value argument to a solver run. Values are textual;
// each solver parses what it understands and falls back to its default for
// anything missing.
type Param struct {
	Key   string
	Value string
}

// MetricFunc observes solver progress: step is the iteration (item index
// for knapsack), value the current objective. Returning false stops the
// solver early with whatever it has computed so far; early stop is not an
// error.
type MetricFunc func(step, value int, user any) bool

// Solver is a handle bound to a single algorithm identifier at creation.
// Exec on a Solver rejects any other identifier; the handle itself carries
// no solver state between calls.
type Solver struct {
	algorithm string
}

// New creates a Solver bound to algorithmID. The identifier is not
// validated here — Exec reports unsupported identifiers.
func New(algorithmID string) *Solver {
	return &Solver{algorithm: algorithmID}
}

// Algorithm reports the identifier the Solver was created for.
func (s *Solver) Algorithm() string { return s.algorithm }

// Supported reports whether algorithmID names a known solver. Safe to call
// with an empty identifier (reports false).
func Supported(algorithmID string) bool {
	switch algorithmID {
	case AlgoFib, AlgoKnapsack, AlgoLCS, AlgoAdaptiveSearch:
		return true
	default:
		return false
	}
}
