package store

import (
	"slices"

	"petshop/catalog/internal/domain"
	"petshop/catalog/internal/validation"
)

// State is an immutable snapshot of one list view.
type State[T any] struct {
	Items      []T
	Loading    bool
	Error      string
	Success    string
	Query      domain.ListQuery
	TotalPages int
	Metadata   domain.Metadata
}

// cloner is implemented by items that hold pointers, so a snapshot never
// shares memory with the controller.
type cloner[T any] interface {
	Clone() T
}

func (s State[T]) clone() State[T] {
	out := s
	out.Items = slices.Clone(s.Items)
	for i, item := range out.Items {
		if c, ok := any(item).(cloner[T]); ok {
			out.Items[i] = c.Clone()
		}
	}
	if s.Query.Status != nil {
		status := *s.Query.Status
		out.Query.Status = &status
	}
	return out
}

// Outcome discriminates mutation results.
type Outcome int

const (
	OutcomeOK        Outcome = iota
	OutcomeInvalid           // rejected locally, nothing sent
	OutcomeCancelled         // confirmation declined, nothing sent
	OutcomeBusiness          // server answered success=false
	OutcomeNetwork           // transport failure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeBusiness:
		return "business"
	case OutcomeNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// MutationResult is returned by every mutating operation; mutations never
// return Go errors.
type MutationResult[T any] struct {
	Outcome     Outcome
	Data        T
	Message     string // server text on success
	Error       string // failure text for the user
	FieldErrors validation.FieldErrors
}

func (r MutationResult[T]) OK() bool {
	return r.Outcome == OutcomeOK
}
