package services

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// ModelScorer is the opaque trained-model collaborator: a batch of feature
// vectors in, one relevance score per vector out, order preserved.
type ModelScorer interface {
	Score(features [][]float64) ([]float64, error)
}

// logisticModel scores with weights exported at training time from the
// relevance classifier (ml/model.json).
type logisticModel struct {
	Bias    float64   `json:"bias"`
	Weights []float64 `json:"weights"`
}

func LoadLogisticModel(path string) (ModelScorer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var model logisticModel
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if len(model.Weights) == 0 {
		return nil, fmt.Errorf("model has no weights")
	}
	return &model, nil
}

func (m *logisticModel) Score(features [][]float64) ([]float64, error) {
	scores := make([]float64, len(features))
	for i, vector := range features {
		if len(vector) != len(m.Weights) {
			return nil, fmt.Errorf("feature vector has %d components, model expects %d", len(vector), len(m.Weights))
		}
		z := m.Bias
		for j, x := range vector {
			z += m.Weights[j] * x
		}
		scores[i] = 1 / (1 + math.Exp(-z))
	}
	return scores, nil
}
