// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package entity fetches single Linked Data records from id.loc.gov
// and reshapes them with a fixed JSON-LD frame into predictable trees.
package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/edsu/idloc/internal/httputil"
	"github.com/edsu/idloc/pkg/types"
)

// hostSuffix is the namespace entity URIs must live under. Declared as
// a var so tests can substitute an httptest server's host.
var hostSuffix = "id.loc.gov"

// Fetcher retrieves entities by URI. Output is deterministic for
// identical remote content: the frame is fixed and the framing engine
// introduces no randomness.
type Fetcher struct {
	client *http.Client
	framer Framer
	cfg    types.FetchConfig
}

// NewFetcher returns a fetcher using the given framer. A nil framer
// defaults to the json-gold processor.
func NewFetcher(framer Framer, cfg types.FetchConfig) *Fetcher {
	if framer == nil {
		framer = NewJSONLDFramer()
	}
	return &Fetcher{
		client: httputil.NewClient(cfg.HTTPConfig),
		framer: framer,
		cfg:    cfg,
	}
}

// Get retrieves the entity's JSON-LD representation and applies the
// fixed frame rooted at uri. The URI must be an absolute identifier
// under the id.loc.gov namespace; existence is not checked ahead of
// the call. A remote 404 is httputil.ErrNotFound, other non-success
// statuses are *httputil.StatusError, and frame failures are
// *FramingError.
func (f *Fetcher) Get(ctx context.Context, uri string) (types.Entity, error) {
	if err := validateURI(uri); err != nil {
		return nil, err
	}

	resp, err := httputil.Get(ctx, f.client, uri, f.cfg.UserAgent, "application/ld+json")
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", uri, err)
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(resp); err != nil {
		return nil, err
	}

	// The service serves authority records as a top-level array, so
	// decode into any rather than assuming an object.
	var doc any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing JSON-LD for %s: %w", uri, err)
	}

	framed, err := f.framer.Frame(doc, frameFor(uri))
	if err != nil {
		return nil, &FramingError{URI: uri, Err: err}
	}
	return framed, nil
}

// validateURI checks that uri is an absolute http(s) identifier under
// the id.loc.gov namespace.
func validateURI(uri string) error {
	u, err := url.Parse(uri)
	if err != nil {
		return fmt.Errorf("invalid entity URI %q: %w", uri, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("entity URI %q must be absolute http(s)", uri)
	}
	if u.Host != hostSuffix && !strings.HasSuffix(u.Host, "."+hostSuffix) {
		return fmt.Errorf("entity URI %q is outside the %s namespace", uri, hostSuffix)
	}
	return nil
}
