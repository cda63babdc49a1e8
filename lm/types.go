// Package lm defines the model, buffer, and callback types of the
// language-model stub interfaces.
package lm

// Algorithm identifiers accepted by Exec.
const (
	AlgoLM      = "grok-lm"
	AlgoReason  = "grok-reason"
	AlgoReflect = "grok-reflect"
	AlgoMemory  = "grok-memory"
)

// Role identifiers accepted by Exec.
const (
	RoleIngest  = "ingest"
	RoleLearn   = "learn"
	RoleInfer   = "infer"
	RoleReflect = "reflect"
	RoleAudit   = "audit"
)

// MetricFunc observes model introspection signals (loss, confidence,
// entropy) by metric identifier. Returning false requests the operation
// wind down early; the stub roles emit at most one metric per call.
type MetricFunc func(metricID string, value float64, step int, user any) bool

// Model is a handle created per algorithm identifier. Ingested data
// persists on the handle across Exec calls; everything else is per-call.
type Model struct {
	algorithm string
	memory    []byte
	steps     int
}

// NewModel creates a model bound to algorithmID, or nil for an empty
// identifier. The identifier is not otherwise validated here — Exec
// reports unsupported identifiers.
func NewModel(algorithmID string) *Model {
	if algorithmID == "" {
		return nil
	}

	return &Model{algorithm: algorithmID}
}

// Algorithm reports the identifier the model was created for.
func (m *Model) Algorithm() string { return m.algorithm }

// MemorySize reports how many bytes the model has ingested so far.
func (m *Model) MemorySize() int { return len(m.memory) }

// Buffer is the opaque input/output payload of an Exec call: text, tokens,
// or embeddings — the stub makes no assumption about encoding.
type Buffer struct {
	data []byte
}

// NewBuffer creates a buffer holding its own copy of data.
func NewBuffer(data []byte) *Buffer {
	b := &Buffer{}
	if len(data) > 0 {
		b.data = append([]byte(nil), data...)
	}

	return b
}

// Bytes returns the buffer's current contents.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}

	return b.data
}

// Len reports the buffer's current size in bytes.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}

	return len(b.data)
}

// Supported reports whether algorithmID names a known LM algorithm. Safe
// to call with an empty identifier (reports false).
func Supported(algorithmID string) bool {
	switch algorithmID {
	case AlgoLM, AlgoReason, AlgoReflect, AlgoMemory:
		return true
	default:
		return false
	}
}

// RoleSupported reports whether roleID is a valid role for algorithmID.
// Every supported algorithm accepts the same role set in this stub.
func RoleSupported(algorithmID, roleID string) bool {
	if !Supported(algorithmID) {
		return false
	}
	switch roleID {
	case RoleIngest, RoleLearn, RoleInfer, RoleReflect, RoleAudit:
		return true
	default:
		return false
	}
}
