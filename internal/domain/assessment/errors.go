package assessment

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrDomain matches every *DomainError through errors.Is.
var ErrDomain = errors.New("invalid domain value")

// ErrNoAssessment is returned when a feature needs a patient profile and none
// has been submitted yet.
var ErrNoAssessment = errors.New("no assessment submitted")

// DomainError reports an input outside the closed vocabularies or the
// accepted numeric ranges.
type DomainError struct {
	Field  string      `json:"field"`
	Value  interface{} `json:"value,omitempty"`
	Reason string      `json:"reason"`
}

func (e *DomainError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Reason, e.Value)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func invalid(field string, value interface{}, reason string) *DomainError {
	return &DomainError{Field: field, Value: value, Reason: reason}
}

// StatusFor maps errors produced by the assessment package to HTTP status
// codes. Unknown errors map to 500.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrDomain):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoAssessment):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
