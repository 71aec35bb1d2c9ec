package model

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Classifier input geometry. The screening model was trained on 224x224 RGB
// crops; changing the model artifact means changing these in lock-step.
const (
	InputHeight   = 224
	InputWidth    = 224
	InputChannels = 3

	// InputSize is the flattened element count of one batched input
	// (1 * 224 * 224 * 3).
	InputSize = InputHeight * InputWidth * InputChannels
)

// ONNXModel wraps an ONNX Runtime session for the screening classifier.
// The session and its bound tensors are created once at startup; Predict
// serializes concurrent callers because a session with pre-bound tensors is
// not safe for concurrent Run calls.
type ONNXModel struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

// NewONNXModel loads the classifier from the given .onnx file.
//
// The model contract is fixed:
//   - Input: "input" with shape [1, 224, 224, 3] (NHWC, values in [0,1])
//   - Output: "output" with shape [1, 1], a single sigmoid score
//
// Returns the loaded model, or an error if the runtime environment or the
// session cannot be created.
func NewONNXModel(path string) (*ONNXModel, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX runtime: %w", err)
	}

	inputShape := ort.NewShape(1, InputHeight, InputWidth, InputChannels)
	outputShape := ort.NewShape(1, 1)

	inputTensor, err := ort.NewTensor(inputShape, make([]float32, InputSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		path,
		[]string{"input"},
		[]string{"output"},
		[]ort.ArbitraryTensor{inputTensor},
		[]ort.ArbitraryTensor{outputTensor},
		nil,
	)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create session (check input/output node names): %w", err)
	}

	return &ONNXModel{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Predict runs one inference and returns the raw sigmoid score in [0,1],
// interpreted as P(non-autistic).
//
// Parameters:
//   - input: preprocessed image data as a float32 slice of length InputSize,
//     NHWC order, values normalized to [0,1]
//
// Returns the score, or an error on a size mismatch or a runtime failure.
func (m *ONNXModel) Predict(input []float32) (float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data := m.inputTensor.GetData()
	if len(input) != len(data) {
		return 0, fmt.Errorf("input size mismatch: expected %d (1*%d*%d*%d), got %d",
			len(data), InputHeight, InputWidth, InputChannels, len(input))
	}
	copy(data, input)

	if err := m.session.Run(); err != nil {
		return 0, fmt.Errorf("failed to run inference: %w", err)
	}

	out := m.outputTensor.GetData()
	if len(out) != 1 {
		return 0, fmt.Errorf("unexpected output size: expected 1 value, got %d", len(out))
	}

	return out[0], nil
}

// Close releases the session and tensors and tears down the runtime
// environment.
func (m *ONNXModel) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.inputTensor != nil {
		m.inputTensor.Destroy()
	}
	if m.outputTensor != nil {
		m.outputTensor.Destroy()
	}
	if m.session != nil {
		m.session.Destroy()
	}

	return ort.DestroyEnvironment()
}
