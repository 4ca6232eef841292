package domain

import (
	"fmt"
	"math"
)

// DefaultThreshold is the point average at which an axis counts as high.
const DefaultThreshold = 3.2

// SubmissionInput carries the per-axis sums and question counts computed by the client.
type SubmissionInput struct {
	AnxietyScore   float64
	AvoidanceScore float64
	AnxietyCount   float64
	AvoidanceCount float64
}

// Classification is the pure result of scoring one submission.
type Classification struct {
	AnxietyPoint   float64
	AvoidancePoint float64
	ResultType     ResultType
}

// Classifier maps averaged axis points onto a ResultType.
type Classifier struct {
	threshold float64
}

// NewClassifier returns a Classifier using threshold as the high/low cutoff on both axes.
func NewClassifier(threshold float64) (Classifier, error) {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return Classifier{}, fmt.Errorf("threshold must be finite, got %v", threshold)
	}
	return Classifier{threshold: threshold}, nil
}

// Threshold returns the configured cutoff.
func (c Classifier) Threshold() float64 {
	return c.threshold
}

// Validate checks that every value is a finite number and both counts are positive.
func (in SubmissionInput) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"anxietyScore", in.AnxietyScore},
		{"avoidanceScore", in.AvoidanceScore},
		{"anxietyCount", in.AnxietyCount},
		{"avoidanceCount", in.AvoidanceCount},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ValidationError{Field: f.name, Reason: "must be a finite number"}
		}
	}
	if in.AnxietyCount <= 0 {
		return &ValidationError{Field: "anxietyCount", Reason: "must be greater than zero"}
	}
	if in.AvoidanceCount <= 0 {
		return &ValidationError{Field: "avoidanceCount", Reason: "must be greater than zero"}
	}
	return nil
}

// Classify averages the submission and places it in one of the four quadrants.
// Scores are not clamped to the Likert range.
func (c Classifier) Classify(in SubmissionInput) (Classification, error) {
	if err := in.Validate(); err != nil {
		return Classification{}, err
	}

	anxietyPoint := in.AnxietyScore / in.AnxietyCount
	avoidancePoint := in.AvoidanceScore / in.AvoidanceCount

	return Classification{
		AnxietyPoint:   anxietyPoint,
		AvoidancePoint: avoidancePoint,
		ResultType:     c.Label(anxietyPoint, avoidancePoint),
	}, nil
}

// Label classifies already-averaged points. A point equal to the threshold is high.
func (c Classifier) Label(anxietyPoint, avoidancePoint float64) ResultType {
	highAnxiety := anxietyPoint >= c.threshold
	highAvoidance := avoidancePoint >= c.threshold

	switch {
	case highAnxiety && !highAvoidance:
		return Anxious
	case !highAnxiety && highAvoidance:
		return Avoidant
	case highAnxiety && highAvoidance:
		return Fearful
	default:
		return Secure
	}
}
