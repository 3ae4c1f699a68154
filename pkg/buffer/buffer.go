// Package buffer provides an in-memory editing host for the calc pipeline.
package buffer

import (
	"slices"

	"github.com/yaklabco/texcalc/pkg/calc"
	"github.com/yaklabco/texcalc/pkg/region"
	"github.com/yaklabco/texcalc/pkg/splice"
)

// Compile-time interface check.
var _ calc.Host = (*Buffer)(nil)

// Buffer is a mutable text with a fixed set of selections.
// It is not safe for concurrent use.
type Buffer struct {
	text       string
	selections []region.Span
}

// New returns a buffer holding text with the given selections.
func New(text string, selections ...region.Span) *Buffer {
	return &Buffer{text: text, selections: slices.Clone(selections)}
}

// WithCarets returns a buffer with an empty selection at each offset.
func WithCarets(text string, offsets ...int) *Buffer {
	b := &Buffer{text: text}
	for _, offset := range offsets {
		b.selections = append(b.selections, region.Point(offset))
	}
	return b
}

// Text returns the current buffer contents.
func (b *Buffer) Text() string {
	return b.text
}

// Snapshot implements calc.Host.
func (b *Buffer) Snapshot() string {
	return b.text
}

// Substr implements calc.Host.
func (b *Buffer) Substr(span region.Span) string {
	return span.Text(b.text)
}

// Selections implements calc.Host.
func (b *Buffer) Selections() []region.Span {
	return slices.Clone(b.selections)
}

// Replace implements calc.Host.
func (b *Buffer) Replace(span region.Span, text string) error {
	edit, err := splice.Prepare([]splice.Splice{{Span: span, Text: text}}, len(b.text))
	if err != nil {
		return err
	}
	b.text = splice.Apply(b.text, edit)
	return nil
}
