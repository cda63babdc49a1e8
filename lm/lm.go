// Package lm provides stub language-model interfaces: opaque model and
// buffer handles behind an algorithm- and role-dispatched Exec surface.
// The handles and dispatch contract are real; the model behavior is a
// minimal placeholder (memory append and echo) until a backing engine
// exists.
package lm

import (
	fossilalgo "github.com/fossillogic/fossil-algo"
)

// Exec runs one LM operation on model, dispatched by algorithm and role
// identifier.
//
// Roles:
//
//	ingest   append input to the model memory; returns bytes ingested
//	learn    consolidate; emits a "loss" metric, returns 0
//	infer    write the model memory into output; returns bytes produced
//	reflect  self-analysis; emits a "confidence" metric, returns 0
//	audit    introspection; emits an "entropy" metric, returns 0
//
// Codes: >= 0 success (payload per role above);
// int(fossilalgo.InvalidInput) for a nil model or a role invoked without
// its required buffer; int(fossilalgo.UnsupportedAlgorithm) for unknown
// identifiers or a model bound to a different identifier;
// int(fossilalgo.UnsupportedConfig) for an unknown role.
func Exec(model *Model, algorithmID, roleID string, input, output *Buffer, metric MetricFunc, user any) int {
	if model == nil || algorithmID == "" {
		return int(fossilalgo.InvalidInput)
	}
	if !Supported(algorithmID) {
		return int(fossilalgo.UnsupportedAlgorithm)
	}
	if model.algorithm != algorithmID {
		return int(fossilalgo.UnsupportedAlgorithm)
	}
	if !RoleSupported(algorithmID, roleID) {
		return int(fossilalgo.UnsupportedConfig)
	}

	model.steps++
	switch roleID {
	case RoleIngest:
		if input == nil {
			return int(fossilalgo.InvalidInput)
		}
		model.memory = append(model.memory, input.data...)

		return input.Len()

	case RoleInfer:
		if output == nil {
			return int(fossilalgo.InvalidInput)
		}
		output.data = append(output.data[:0], model.memory...)

		return len(model.memory)

	case RoleLearn:
		emit(metric, "loss", 1.0/float64(model.steps), model.steps, user)

		return 0

	case RoleReflect:
		emit(metric, "confidence", confidence(model), model.steps, user)

		return 0

	default: // RoleAudit
		emit(metric, "entropy", float64(len(model.memory)), model.steps, user)

		return 0
	}
}

// emit forwards one metric observation when a callback is installed.
// The stub roles produce a single observation, so the early-stop signal
// has nothing left to cancel and is ignored.
func emit(metric MetricFunc, id string, value float64, step int, user any) {
	if metric != nil {
		metric(id, value, step, user)
	}
}

// confidence is a toy signal that grows with ingested memory.
func confidence(m *Model) float64 {
	return float64(len(m.memory)) / float64(len(m.memory)+1)
}
