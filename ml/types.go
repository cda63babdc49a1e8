// Package ml defines the model, dataset, and callback types of the
// machine-learning stubs.
package ml

// Algorithm identifiers accepted by Exec.
const (
	AlgoLinearRegression = "linear-regression"
	AlgoKMeans           = "kmeans"
)

// Phase selects what Exec does with a model and dataset.
type Phase int

const (
	// PhaseTrain fits the model to the dataset.
	PhaseTrain Phase = iota

	// PhasePredict writes model outputs into the dataset labels.
	PhasePredict

	// PhaseEvaluate is accepted but currently a no-op for algorithms that
	// do not implement it.
	PhaseEvaluate
)

// MetricFunc observes training progress: value is the current loss, step
// the epoch or iteration. Returning false stops training early; early stop
// is not an error.
type MetricFunc func(value float64, step int, user any) bool

// Dataset is a dense row-major sample matrix with optional labels.
// X holds Samples×Features values; Y, when present, holds one label per
// sample (and receives predictions in PhasePredict).
type Dataset struct {
	Samples  int
	Features int
	X        []float64
	Y        []float64
}

// valid reports whether the dataset's dimensions agree with its storage.
func (d *Dataset) valid() bool {
	return d != nil && d.Samples > 0 && d.Features > 0 && len(d.X) == d.Samples*d.Features
}

// Model is a handle created per algorithm identifier. Trained parameters
// persist on the handle across Exec calls; the zero state means untrained.
type Model struct {
	algorithm string

	// linear model
	Weights []float64
	Bias    float64

	// k-means
	K         int
	Centroids []float64
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

// Supported reports whether algorithmID names an implemented algorithm.
// Safe to call with an empty identifier (reports false).
func Supported(algorithmID string) bool {
	switch algorithmID {
	case AlgoLinearRegression, AlgoKMeans:
		return true
	default:
		return false
	}
}

// RequiresLabels reports whether algorithmID needs labeled data to train.
// Like algorithms.RequiresWeights, it answers for recognized identifiers
// beyond the implemented set (logistic-regression, svm). Safe to call with
// an empty identifier (reports false).
func RequiresLabels(algorithmID string) bool {
	switch algorithmID {
	case AlgoLinearRegression, "logistic-regression", "svm":
		return true
	default:
		return false
	}
}
