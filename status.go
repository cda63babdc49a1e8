package fossilalgo

// Status is the integer result code shared by every exec surface in the
// library. Zero and positive values are success (positive values carry an
// algorithm-specific payload such as an index or a count); negative values
// form a small, uniform error taxonomy.
//
// None of these codes is fatal: every failure is a returned signal the
// caller can recover from by choosing different arguments.
type Status int

const (
	// OK reports structural success. Algorithms with a positive payload
	// (e.g. text.Find) return the payload directly instead.
	OK Status = 0

	// Failed reports that the algorithm ran but did not meet its
	// objective, e.g. an unreachable target node.
	Failed Status = -1

	// InvalidInput reports malformed arguments: a nil handle, an empty
	// identifier, an out-of-range node index, an empty graph. Detected
	// before any engine work begins; no partial state is produced.
	InvalidInput Status = -2

	// UnsupportedAlgorithm reports an unknown or unimplemented algorithm
	// identifier.
	UnsupportedAlgorithm Status = -3

	// UnsupportedConfig reports a recognized algorithm incompatible with
	// the properties of its input, e.g. Dijkstra on an unweighted graph.
	UnsupportedConfig Status = -4
)

// String returns a short human-readable name for the status code.
func (s Status) String() string {
	switch {
	case s >= 0:
		return "ok"
	case s == Failed:
		return "failed"
	case s == InvalidInput:
		return "invalid input"
	case s == UnsupportedAlgorithm:
		return "unsupported algorithm"
	case s == UnsupportedConfig:
		return "unsupported configuration"
	default:
		return "unknown status"
	}
}
