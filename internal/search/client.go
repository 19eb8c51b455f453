// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the id.loc.gov search endpoint and walks the
// paginated Atom results lazily, one page per round trip.
package search

import (
	"context"
	"net/http"
	"net/url"

	"github.com/edsu/idloc/internal/httputil"
	"github.com/edsu/idloc/internal/scheme"
	"github.com/edsu/idloc/pkg/types"
)

// Query holds the search parameters. A Limit of 0 means unbounded:
// page through every result the service has.
type Query struct {
	Text           string
	ConceptSchemes []string
	Limit          int
}

// Client issues searches against the id.loc.gov search endpoint.
type Client struct {
	client   *http.Client
	registry scheme.Registry
	cfg      types.SearchConfig
}

// NewClient returns a search client that validates concept scheme
// names against the given registry.
func NewClient(registry scheme.Registry, cfg types.SearchConfig) *Client {
	return &Client{
		client:   httputil.NewClient(cfg.HTTPConfig),
		registry: registry,
		cfg:      cfg,
	}
}

// Search validates the query's concept scheme names and returns a
// cursor over the results. Scheme validation happens before any HTTP
// call: unknown names fail with *scheme.UnknownSchemeError and nothing
// is fetched. The first page is requested on the first call to Next.
func (c *Client) Search(ctx context.Context, query Query) (*Cursor, error) {
	uris, err := c.registry.Resolve(query.ConceptSchemes)
	if err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit < 0 {
		limit = 0
	}

	return &Cursor{
		ctx:     ctx,
		client:  c.client,
		cfg:     c.cfg,
		nextURL: firstPageURL(c.cfg.Endpoint, query.Text, uris),
		first:   true,
		limit:   limit,
	}, nil
}

// Lucky returns the first result for text, or nil when the search
// matches nothing. An empty result is not an error.
func (c *Client) Lucky(ctx context.Context, text string, conceptSchemes []string) (*types.SearchResult, error) {
	cur, err := c.Search(ctx, Query{Text: text, ConceptSchemes: conceptSchemes, Limit: 1})
	if err != nil {
		return nil, err
	}
	if !cur.Next() {
		return nil, cur.Err()
	}
	result := cur.Result()
	return &result, nil
}

// firstPageURL builds the first-page request. The feed format is Atom;
// the JSON format the service offers is an unusable conversion of it.
// Each concept scheme filter rides along as an extra q=cs:<uri> term.
func firstPageURL(endpoint, text string, schemeURIs []string) string {
	q := []string{text}
	for _, uri := range schemeURIs {
		q = append(q, "cs:"+uri)
	}
	params := url.Values{
		"q":      q,
		"format": {"atom"},
	}
	return endpoint + "?" + params.Encode()
}
