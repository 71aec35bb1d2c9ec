package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"autivision/model"
	"autivision/storage"
)

// Threshold splits the score into the two output buckets: a score above it
// is class 0 ("autistic"), anything at or below is class 1 ("non-autistic").
// Fixed policy constant tied to the trained model, not tuned per request.
const Threshold float32 = 0.3

// Upload is one client file: raw bytes plus the client-supplied name.
type Upload struct {
	Name string
	Data []byte
}

// BatchResult partitions a batch's filenames into the two buckets, each
// preserving upload order. Built fresh per request, never retained.
type BatchResult struct {
	AnalysisID        string
	AnalysisTimestamp time.Time
	Class0Images      []string
	Class1Images      []string
}

// SingleResult is the outcome of a transient single-image classification.
// Percent values are the raw model fractions formatted to two decimals, so
// the pair always sums to 1.00 up to rounding.
type SingleResult struct {
	PercentAutistic    string
	PercentNonAutistic string
	Display            string
}

// Screening orchestrates the classification pipelines. The working
// directory is a single shared resource, so whole batches are serialized
// through mu; single-image calls never touch the directory and run freely.
type Screening struct {
	mu         sync.Mutex
	store      *storage.Workdir
	classifier Classifier
}

func NewScreening(store *storage.Workdir, classifier Classifier) *Screening {
	return &Screening{store: store, classifier: classifier}
}

// Label names the bucket a score falls into.
func Label(score float32) string {
	if score > Threshold {
		return "autistic"
	}
	return "non-autistic"
}

// RunBatch evicts the previous batch from the working directory, then for
// each upload in input order: persists it, preprocesses, classifies and
// buckets the stored filename. An upload that cannot be decoded, classified
// or safely named is logged and skipped; the rest of the batch continues.
// Only directory-level failures (clear, write) abort the whole batch,
// because a dirty or unwritable directory breaks isolation for every image
// after it.
func (s *Screening) RunBatch(ctx context.Context, uploads []Upload) (*BatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		return nil, err
	}

	result := &BatchResult{
		AnalysisID:        uuid.New().String(),
		AnalysisTimestamp: time.Now(),
		Class0Images:      []string{},
		Class1Images:      []string{},
	}

	for _, upload := range uploads {
		name, err := storage.Sanitize(upload.Name)
		if err != nil {
			log.Printf("batch %s: skipping %q: %v", result.AnalysisID, upload.Name, err)
			continue
		}

		if _, err := s.store.Save(name, upload.Data); err != nil {
			return nil, err
		}

		input, err := model.PreprocessBytes(upload.Data)
		if err != nil {
			log.Printf("batch %s: skipping %s: %v", result.AnalysisID, name, err)
			continue
		}

		score, err := s.classifier.Classify(ctx, input)
		if err != nil {
			log.Printf("batch %s: skipping %s: %v", result.AnalysisID, name, err)
			continue
		}

		if score > Threshold {
			result.Class0Images = append(result.Class0Images, name)
		} else {
			result.Class1Images = append(result.Class1Images, name)
		}
	}

	return result, nil
}

// Score decodes, preprocesses and classifies one in-memory image, returning
// the raw model score.
func (s *Screening) Score(ctx context.Context, data []byte) (float32, error) {
	input, err := model.PreprocessBytes(data)
	if err != nil {
		return 0, err
	}
	return s.classifier.Classify(ctx, input)
}

// ClassifyOne classifies a single upload straight from memory, with no
// directory persistence. The caller owns upload validation (missing file,
// empty filename); here an undecodable image is the only user-level failure.
func (s *Screening) ClassifyOne(ctx context.Context, data []byte) (*SingleResult, error) {
	score, err := s.Score(ctx, data)
	if err != nil {
		return nil, err
	}

	pAutistic := 1 - float64(score)
	pNonAutistic := float64(score)

	pas := fmt.Sprintf("%.2f", pAutistic)
	pns := fmt.Sprintf("%.2f", pNonAutistic)

	return &SingleResult{
		PercentAutistic:    pas,
		PercentNonAutistic: pns,
		Display:            fmt.Sprintf("Autistic: %s%% <br> Non Autistic: %s%%", pas, pns),
	}, nil
}

// IsUserError reports whether err is something the client caused (a bad
// image) rather than a system fault.
func IsUserError(err error) bool {
	return errors.Is(err, model.ErrDecode)
}

// ListStored returns the working directory's current contents.
func (s *Screening) ListStored() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.List()
}
