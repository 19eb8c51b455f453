// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scheme maintains the mapping of concept scheme names to their
// id.loc.gov identifier URIs. The default mapping is a bundled
// snapshot; Refresh rebuilds it from the live search page.
package scheme

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownSchemeError reports concept scheme names that are not in the
// registry. Lookups are case-sensitive exact matches.
type UnknownSchemeError struct {
	Names []string
}

func (e *UnknownSchemeError) Error() string {
	return fmt.Sprintf("concept scheme name(s) don't exist: %s", strings.Join(e.Names, ", "))
}

// Registry is an immutable name → URI table. The zero value is empty;
// use Default for the bundled table. A Registry is never mutated after
// construction, so it is safe to share between goroutines.
type Registry struct {
	table map[string]string
}

// Default returns the registry built from the bundled scheme table.
func Default() Registry {
	return Registry{table: builtinTable}
}

// New returns a registry over a copy of the given table.
func New(table map[string]string) Registry {
	cp := make(map[string]string, len(table))
	for name, uri := range table {
		cp[name] = uri
	}
	return Registry{table: cp}
}

// Len returns the number of schemes in the registry.
func (r Registry) Len() int { return len(r.table) }

// Schemes returns a copy of the name → URI table.
func (r Registry) Schemes() map[string]string {
	cp := make(map[string]string, len(r.table))
	for name, uri := range r.table {
		cp[name] = uri
	}
	return cp
}

// Names returns the scheme names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r.table))
	for name := range r.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the URI for a single scheme name.
func (r Registry) Lookup(name string) (string, bool) {
	uri, ok := r.table[name]
	return uri, ok
}

// Resolve maps scheme names to their URIs, preserving input order. If
// any name is unknown it returns an *UnknownSchemeError listing every
// missing name and resolves nothing.
func (r Registry) Resolve(names []string) ([]string, error) {
	var uris []string
	var missing []string
	for _, name := range names {
		uri, ok := r.table[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		uris = append(uris, uri)
	}
	if len(missing) > 0 {
		return nil, &UnknownSchemeError{Names: missing}
	}
	return uris, nil
}
