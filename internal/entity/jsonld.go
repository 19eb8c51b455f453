// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entity

import (
	"fmt"

	"github.com/piprate/json-gold/ld"

	"github.com/edsu/idloc/pkg/types"
)

// FramingError reports that a fetched graph could not be reshaped with
// the fixed frame.
type FramingError struct {
	URI string
	Err error
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("framing %s: %v", e.URI, e.Err)
}

func (e *FramingError) Unwrap() error { return e.Err }

// Framer reshapes a JSON-LD graph into a tree per a frame document. It
// is injected into the Fetcher so fetch logic is testable against
// fixture graphs without a real framing engine. The doc may be a JSON
// object or a top-level array; both are valid JSON-LD.
type Framer interface {
	Frame(doc any, frame map[string]any) (types.Entity, error)
}

// JSONLDFramer frames documents with the json-gold processor.
type JSONLDFramer struct {
	proc *ld.JsonLdProcessor
	opts *ld.JsonLdOptions
}

// NewJSONLDFramer returns a ready-to-use framer.
func NewJSONLDFramer() *JSONLDFramer {
	return &JSONLDFramer{
		proc: ld.NewJsonLdProcessor(),
		opts: ld.NewJsonLdOptions(""),
	}
}

// Frame applies the frame document to doc.
func (f *JSONLDFramer) Frame(doc any, frame map[string]any) (types.Entity, error) {
	framed, err := f.proc.Frame(doc, frame, f.opts)
	if err != nil {
		return nil, err
	}
	return types.Entity(framed), nil
}
