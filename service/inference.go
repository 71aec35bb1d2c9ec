package service

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInference reports a failed or out-of-contract classifier call.
var ErrInference = errors.New("inference failed")

// Classifier is the capability the screening pipeline needs from the model:
// one preprocessed tensor in, one score in [0,1] out. The concrete gateway
// is *InferenceService; tests substitute a stub.
type Classifier interface {
	Classify(ctx context.Context, input []float32) (float32, error)
}

// Predictor is the slice of the ONNX wrapper the gateway consumes.
type Predictor interface {
	Predict(input []float32) (float32, error)
}

// InferenceService is the gateway in front of the loaded model. It bounds
// each call with a timeout so a wedged inference cannot pin a request
// forever, and rejects scores outside [0,1].
type InferenceService struct {
	model   Predictor
	timeout time.Duration
}

func NewInferenceService(m Predictor, timeout time.Duration) *InferenceService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &InferenceService{model: m, timeout: timeout}
}

// Classify runs one inference. Failures are not retried; they surface
// immediately wrapped in ErrInference.
func (s *InferenceService) Classify(ctx context.Context, input []float32) (float32, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		score float32
		err   error
	}
	// Buffered so a late result does not leak the goroutine; Predict itself
	// cannot be cancelled once it has entered the runtime.
	ch := make(chan result, 1)
	go func() {
		score, err := s.model.Predict(input)
		ch <- result{score, err}
	}()

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%w: %v", ErrInference, ctx.Err())
	case r := <-ch:
		if r.err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInference, r.err)
		}
		if r.score < 0 || r.score > 1 {
			return 0, fmt.Errorf("%w: score %f outside [0,1]", ErrInference, r.score)
		}
		return r.score, nil
	}
}
