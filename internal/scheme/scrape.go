// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scheme

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/edsu/idloc/internal/httputil"
	"github.com/edsu/idloc/pkg/types"
)

// idBase resolves the option value attributes, which carry the scheme
// identifier path relative to the service root.
const idBase = "http://id.loc.gov"

// ScrapeError reports that the search page could not be fetched or no
// longer has the expected scheme selector.
type ScrapeError struct {
	Err error
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("scraping concept schemes: %v", e.Err)
}

func (e *ScrapeError) Unwrap() error { return e.Err }

// Refresh fetches the live search page and builds a new registry from
// the scheme selector's options: option text is the name, the value
// attribute is the identifier path under the service root. The
// returned registry replaces nothing in place; the caller decides what
// to do with it. Failure to fetch or locate the selector is a
// *ScrapeError.
func Refresh(ctx context.Context, client *http.Client, cfg types.SearchConfig) (Registry, error) {
	resp, err := httputil.Get(ctx, client, cfg.Endpoint, cfg.UserAgent, "text/html")
	if err != nil {
		return Registry{}, &ScrapeError{Err: err}
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(resp); err != nil {
		return Registry{}, &ScrapeError{Err: err}
	}

	table, err := parseSchemePage(resp.Body)
	if err != nil {
		return Registry{}, &ScrapeError{Err: err}
	}
	return Registry{table: table}, nil
}

// parseSchemePage extracts the name → URI table from the first select
// element on the page. Options with an empty name are ignored, and the
// first occurrence wins when the page repeats a name.
func parseSchemePage(r io.Reader) (map[string]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing search page: %w", err)
	}

	sel := findElement(doc, "select")
	if sel == nil {
		return nil, fmt.Errorf("search page has no scheme selector")
	}

	table := make(map[string]string)
	for _, opt := range elements(sel, "option") {
		name := strings.TrimSpace(text(opt))
		value := attr(opt, "value")
		if name == "" || value == "" {
			continue
		}
		if _, seen := table[name]; seen {
			continue
		}
		if !strings.HasPrefix(value, "/") {
			value = "/" + value
		}
		table[name] = idBase + value
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("scheme selector has no options")
	}
	return table, nil
}

// findElement returns the first element with the given tag in document
// order, or nil.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// elements collects every descendant element with the given tag in
// document order.
func elements(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return found
}

// text concatenates the text nodes under n.
func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
