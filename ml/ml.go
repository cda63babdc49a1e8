// Package ml implements small machine-learning stubs — linear regression
// trained by stochastic gradient descent and k-means clustering — behind an
// identifier- and phase-dispatched Exec surface.
package ml

import (
	fossilalgo "github.com/fossillogic/fossil-algo"
)

// Training constants. Fixed rather than configurable: these are stubs
// meant for exercising the dispatch surface, not tunable learners.
const (
	linearLearningRate = 0.01
	linearEpochs       = 100
	kmeansClusters     = 2
	kmeansIterations   = 50
)

// Exec runs algorithmID on model and dataset for the given phase.
//
// Codes: 0 success; int(fossilalgo.Failed) when predicting with an
// untrained model; int(fossilalgo.InvalidInput) for nil handles, a dataset
// whose storage disagrees with its dimensions, or missing labels;
// int(fossilalgo.UnsupportedAlgorithm) for unknown identifiers or a
// model bound to a different identifier; int(fossilalgo.UnsupportedConfig)
// for a phase the algorithm does not implement (k-means only trains).
func Exec(model *Model, dataset *Dataset, algorithmID string, phase Phase, metric MetricFunc, user any) int {
	if model == nil || dataset == nil || algorithmID == "" {
		return int(fossilalgo.InvalidInput)
	}
	if model.algorithm != algorithmID {
		return int(fossilalgo.UnsupportedAlgorithm)
	}
	if !dataset.valid() {
		return int(fossilalgo.InvalidInput)
	}

	switch algorithmID {
	case AlgoLinearRegression:
		switch phase {
		case PhaseTrain:
			return linearTrain(model, dataset, metric, user)
		case PhasePredict:
			return linearPredict(model, dataset)
		default:
			return 0 // evaluate: accepted, nothing to do yet
		}

	case AlgoKMeans:
		if phase != PhaseTrain {
			return int(fossilalgo.UnsupportedConfig)
		}

		return kmeansTrain(model, dataset, metric, user)

	default:
		return int(fossilalgo.UnsupportedAlgorithm)
	}
}

// linearTrain fits weights and bias by per-sample gradient descent.
// Requires labels; the metric hook sees the mean squared error per epoch
// and may stop early.
func linearTrain(m *Model, d *Dataset, metric MetricFunc, user any) int {
	if len(d.Y) < d.Samples {
		return int(fossilalgo.InvalidInput)
	}

	f := d.Features
	if m.Weights == nil {
		m.Weights = make([]float64, f)
		m.Bias = 0
	}

	for epoch := 0; epoch < linearEpochs; epoch++ {
		loss := 0.0
		for i := 0; i < d.Samples; i++ {
			row := d.X[i*f : (i+1)*f]
			pred := m.Bias
			for j, x := range row {
				pred += m.Weights[j] * x
			}

			err := pred - d.Y[i]
			loss += err * err
			for j, x := range row {
				m.Weights[j] -= linearLearningRate * err * x
			}
			m.Bias -= linearLearningRate * err
		}

		if metric != nil && !metric(loss/float64(d.Samples), epoch, user) {
			break
		}
	}

	return 0
}

// linearPredict writes one prediction per sample into d.Y, allocating it
// when absent. Fails if the model was never trained.
func linearPredict(m *Model, d *Dataset) int {
	if m.Weights == nil {
		return int(fossilalgo.Failed)
	}
	if len(d.Y) < d.Samples {
		d.Y = make([]float64, d.Samples)
	}

	f := d.Features
	for i := 0; i < d.Samples; i++ {
		pred := m.Bias
		for j, x := range d.X[i*f : (i+1)*f] {
			pred += m.Weights[j] * x
		}
		d.Y[i] = pred
	}

	return 0
}

// kmeansTrain runs Lloyd iterations with centroids seeded from the first k
// samples. The metric hook sees the mean squared assignment distance per
// iteration and may stop early.
func kmeansTrain(m *Model, d *Dataset, metric MetricFunc, user any) int {
	f := d.Features
	if m.Centroids == nil {
		m.K = kmeansClusters
		if d.Samples < m.K {
			return int(fossilalgo.InvalidInput)
		}
		m.Centroids = make([]float64, m.K*f)
		copy(m.Centroids, d.X[:m.K*f])
	}

	assign := make([]int, d.Samples)
	for iter := 0; iter < kmeansIterations; iter++ {
		// assignment step
		loss := 0.0
		for i := 0; i < d.Samples; i++ {
			row := d.X[i*f : (i+1)*f]
			best, bestD := 0, dist2(row, m.Centroids[:f])
			for c := 1; c < m.K; c++ {
				if d2 := dist2(row, m.Centroids[c*f:(c+1)*f]); d2 < bestD {
					best, bestD = c, d2
				}
			}
			assign[i] = best
			loss += bestD
		}

		// update step
		for i := range m.Centroids {
			m.Centroids[i] = 0
		}
		count := make([]int, m.K)
		for i := 0; i < d.Samples; i++ {
			c := assign[i]
			count[c]++
			for j, x := range d.X[i*f : (i+1)*f] {
				m.Centroids[c*f+j] += x
			}
		}
		for c := 0; c < m.K; c++ {
			n := count[c]
			if n == 0 {
				n = 1 // empty cluster keeps a zero centroid
			}
			for j := 0; j < f; j++ {
				m.Centroids[c*f+j] /= float64(n)
			}
		}

		if metric != nil && !metric(loss/float64(d.Samples), iter, user) {
			break
		}
	}

	return 0
}

// dist2 is squared euclidean distance between equal-length vectors.
func dist2(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return s
}
