package domain

import "time"

// Response is a persisted quiz result. It is written once and never updated.
type Response struct {
	ID             string
	AnxietyScore   float64
	AvoidanceScore float64
	ResultType     ResultType
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewResponse builds the pre-write record from a classification. Stored
// averages must be non-negative; the classifier itself does not clamp, so
// negative points are rejected here before anything is written.
func NewResponse(c Classification, now time.Time) (*Response, error) {
	if c.AnxietyPoint < 0 {
		return nil, &ValidationError{Field: "anxietyScore", Reason: "average must not be negative"}
	}
	if c.AvoidancePoint < 0 {
		return nil, &ValidationError{Field: "avoidanceScore", Reason: "average must not be negative"}
	}
	return &Response{
		AnxietyScore:   c.AnxietyPoint,
		AvoidanceScore: c.AvoidancePoint,
		ResultType:     c.ResultType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
