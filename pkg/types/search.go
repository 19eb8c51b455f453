// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the idloc library
// and CLI.
package types

// SearchResult is one row returned by an id.loc.gov search. The remote
// service does not guarantee URIs are unique across pages; no duplicate
// suppression is performed.
type SearchResult struct {
	// Title is the entity label as returned by the search feed.
	Title string `json:"title" yaml:"title"`

	// URI is the entity identifier the row points at.
	URI string `json:"uri" yaml:"uri"`
}

// ConceptScheme is a named vocabulary grouping entities in the
// authority dataset. Identity is Name.
type ConceptScheme struct {
	Name string `json:"name" yaml:"name"`
	URI  string `json:"uri" yaml:"uri"`
}

// Entity is a framed JSON-LD document. Its shape is whatever the
// framing engine emits for the fixed frame; it is not a fixed schema.
type Entity map[string]any
