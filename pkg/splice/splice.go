// Package splice validates and applies text replacements against a single
// buffer snapshot.
package splice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/texcalc/pkg/region"
)

// Splice replaces the bytes addressed by Span with Text.
// An empty span inserts Text.
type Splice struct {
	Span region.Span
	Text string
}

// ValidationError describes a splice that does not fit the buffer.
type ValidationError struct {
	Splice  Splice
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid splice %v: %s", e.Splice.Span, e.Message)
}

// ConflictError describes two overlapping splices.
type ConflictError struct {
	First  Splice
	Second Splice
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping splices: %v and %v", e.First.Span, e.Second.Span)
}

// Validate checks that every splice lies within a buffer of length n.
func Validate(splices []Splice, n int) error {
	for _, s := range splices {
		switch {
		case s.Span.Begin < 0:
			return &ValidationError{Splice: s, Message: "begin offset is negative"}
		case s.Span.End < s.Span.Begin:
			return &ValidationError{Splice: s, Message: "end offset is before begin offset"}
		case s.Span.End > n:
			return &ValidationError{
				Splice:  s,
				Message: fmt.Sprintf("end offset %d exceeds buffer length %d", s.Span.End, n),
			}
		}
	}
	return nil
}

// Sort orders splices by begin then end offset. Equal spans keep their
// input order.
func Sort(splices []Splice) {
	sort.SliceStable(splices, func(i, j int) bool {
		if splices[i].Span.Begin != splices[j].Span.Begin {
			return splices[i].Span.Begin < splices[j].Span.Begin
		}
		return splices[i].Span.End < splices[j].Span.End
	})
}

// Dedupe drops splices identical to their predecessor in a sorted slice.
// Several carets in one math span produce the same splice.
func Dedupe(splices []Splice) []Splice {
	if len(splices) == 0 {
		return splices
	}

	out := splices[:1]
	for _, s := range splices[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}

// DetectConflicts returns the first overlap in a sorted slice, or nil.
// Insertions at the same offset do not conflict.
func DetectConflicts(splices []Splice) error {
	for i := 1; i < len(splices); i++ {
		if splices[i].Span.Begin < splices[i-1].Span.End {
			return &ConflictError{First: splices[i-1], Second: splices[i]}
		}
	}
	return nil
}

// FilterConflicts splits a sorted slice into splices that can be applied
// together and those that overlap an earlier accepted splice.
func FilterConflicts(splices []Splice) ([]Splice, []Splice) {
	if len(splices) == 0 {
		return nil, nil
	}

	accepted := make([]Splice, 0, len(splices))
	var skipped []Splice

	accepted = append(accepted, splices[0])
	lastEnd := splices[0].Span.End

	for _, s := range splices[1:] {
		if s.Span.Begin < lastEnd {
			skipped = append(skipped, s)
			continue
		}
		accepted = append(accepted, s)
		lastEnd = s.Span.End
	}

	return accepted, skipped
}

// Prepare validates, sorts, dedupes and conflict-checks a copy of splices.
func Prepare(splices []Splice, n int) ([]Splice, error) {
	if len(splices) == 0 {
		return splices, nil
	}

	if err := Validate(splices, n); err != nil {
		return nil, err
	}

	result := make([]Splice, len(splices))
	copy(result, splices)
	Sort(result)
	result = Dedupe(result)

	if err := DetectConflicts(result); err != nil {
		return nil, err
	}

	return result, nil
}

// Apply applies prepared splices to content and returns the result.
func Apply(content string, splices []Splice) string {
	if len(splices) == 0 {
		return content
	}

	delta := 0
	for _, s := range splices {
		delta += len(s.Text) - s.Span.Len()
	}

	var out strings.Builder
	out.Grow(len(content) + delta)

	cursor := 0
	for _, s := range splices {
		out.WriteString(content[cursor:s.Span.Begin])
		out.WriteString(s.Text)
		cursor = s.Span.End
	}
	out.WriteString(content[cursor:])

	return out.String()
}
