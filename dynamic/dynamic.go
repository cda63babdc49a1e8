// Package dynamic implements small dynamic-programming solvers —
// Fibonacci, 0/1 knapsack, longest common subsequence — behind both a
// direct API and an identifier-dispatched Exec surface.
package dynamic

import (
	"strconv"
	"strings"

	fossilalgo "github.com/fossillogic/fossil-algo"
)

// Fib returns the n-th Fibonacci number iteratively, or -1 for negative n.
func Fib(n int) int {
	if n < 0 {
		return -1
	}
	if n <= 1 {
		return n
	}
	a, b := 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}

	return b
}

// Knapsack solves 0/1 knapsack over the given item values and weights,
// returning the best total value within capacity. The metric hook, if
// non-nil, observes (item index, best value so far) after each item and may
// stop the solver early by returning false.
//
// Returns int(fossilalgo.InvalidInput) when the item slices are empty,
// differ in length, or capacity is negative.
func Knapsack(values, weights []int, capacity int, metric MetricFunc, user any) int {
	if len(values) == 0 || len(values) != len(weights) || capacity < 0 {
		return int(fossilalgo.InvalidInput)
	}

	dp := make([]int, capacity+1)
	for i, v := range values {
		for w := capacity; w >= weights[i]; w-- {
			if candidate := dp[w-weights[i]] + v; candidate > dp[w] {
				dp[w] = candidate
			}
		}
		if metric != nil && !metric(i, dp[capacity], user) {
			break
		}
	}

	return dp[capacity]
}

// LCS returns the length of the longest common subsequence of a and b.
func LCS(a, b string) int {
	m, n := len(a), len(b)
	// two rolling rows instead of the full (m+1)×(n+1) table
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// Exec runs the solver the handle was bound to. algorithmID must match the
// identifier passed to New; a mismatch or an unknown identifier reports
// int(fossilalgo.UnsupportedAlgorithm), and a nil handle or empty
// identifier int(fossilalgo.InvalidInput).
//
// Parameters by identifier (anything missing takes the default):
//
//	dp-fib       n=10
//	dp-knapsack  capacity=50, values/weights as comma-separated integers
//	dp-lcs       a="abc", b="ac"
//
// Non-negative returns carry the solver's answer.
func (s *Solver) Exec(algorithmID string, params []Param, metric MetricFunc, user any) int {
	if s == nil || algorithmID == "" {
		return int(fossilalgo.InvalidInput)
	}
	if s.algorithm != algorithmID {
		return int(fossilalgo.UnsupportedAlgorithm)
	}

	switch algorithmID {
	case AlgoFib:
		n := 10
		for _, p := range params {
			if p.Key == "n" {
				n = atoiOr(p.Value, n)
			}
		}

		return Fib(n)

	case AlgoKnapsack:
		capacity := 50
		var values, weights []int
		for _, p := range params {
			switch p.Key {
			case "capacity":
				capacity = atoiOr(p.Value, capacity)
			case "values":
				values = atoiList(p.Value)
			case "weights":
				weights = atoiList(p.Value)
			}
		}

		return Knapsack(values, weights, capacity, metric, user)

	case AlgoLCS:
		a, b := "abc", "ac"
		for _, p := range params {
			switch p.Key {
			case "a":
				a = p.Value
			case "b":
				b = p.Value
			}
		}

		return LCS(a, b)

	default:
		return int(fossilalgo.UnsupportedAlgorithm)
	}
}

// atoiOr parses s as an integer, falling back to def on any parse failure.
func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}

	return n
}

// atoiList parses a comma-separated integer list, skipping unparsable
// entries.
func atoiList(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			out = append(out, n)
		}
	}

	return out
}
