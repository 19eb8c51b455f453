// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/edsu/idloc/internal/httputil"
	"github.com/edsu/idloc/pkg/types"
)

// Cursor is a single-pass sequence of search results. It fetches one
// page at a time: the next round trip happens only when the buffered
// page is exhausted and the caller asks for more, so stopping early
// costs nothing beyond the pages already fetched.
//
//	cur, err := client.Search(ctx, query)
//	...
//	for cur.Next() {
//		r := cur.Result()
//	}
//	if err := cur.Err(); err != nil { ... }
//
// A cursor is not restartable; issue a fresh Search instead.
type Cursor struct {
	ctx     context.Context
	client  *http.Client
	cfg     types.SearchConfig
	nextURL string
	first   bool
	page    []types.SearchResult
	idx     int
	cur     types.SearchResult
	yielded int
	limit   int
	skipped int
	err     error
	done    bool
}

// Next advances to the next result. It returns false when the limit is
// reached, the results are exhausted, or a page fetch fails; check Err
// to tell the last case apart. Results already returned remain valid
// after a later page fails.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}
	if c.limit > 0 && c.yielded >= c.limit {
		c.done = true
		return false
	}

	for c.idx >= len(c.page) {
		if c.nextURL == "" {
			c.done = true
			return false
		}
		if err := c.fetchPage(); err != nil {
			c.err = err
			c.done = true
			return false
		}
	}

	c.cur = c.page[c.idx]
	c.idx++
	c.yielded++
	return true
}

// Result returns the result produced by the last successful Next.
func (c *Cursor) Result() types.SearchResult { return c.cur }

// Err returns the error that terminated the cursor, if any.
func (c *Cursor) Err() error { return c.err }

// Count returns how many results have been yielded so far.
func (c *Cursor) Count() int { return c.yielded }

// Skipped returns how many malformed result rows were passed over. The
// remote feed's row shape is not contractually stable, so rows missing
// a title or link are tolerated rather than fatal.
func (c *Cursor) Skipped() int { return c.skipped }

// fetchPage retrieves the page at nextURL, buffers its rows, and
// records the following page's URL if the feed advertises one. The
// politeness delay applies between pages, never before the first.
func (c *Cursor) fetchPage() error {
	if !c.first {
		if err := httputil.Wait(c.ctx, c.cfg.PageDelay); err != nil {
			return err
		}
	}
	c.first = false

	resp, err := httputil.Get(c.ctx, c.client, c.nextURL, c.cfg.UserAgent, "application/atom+xml")
	if err != nil {
		return fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(resp); err != nil {
		return err
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return fmt.Errorf("parsing search feed: %w", err)
	}

	c.page = c.page[:0]
	c.idx = 0
	for _, entry := range feed.Entries {
		r, ok := entry.result()
		if !ok {
			c.skipped++
			continue
		}
		c.page = append(c.page, r)
	}

	c.nextURL = feed.next()
	return nil
}

// Atom feed XML structures for the id.loc.gov search endpoint.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
	Links   []atomLink  `xml:"link"`
}

type atomEntry struct {
	Title string     `xml:"title"`
	Links []atomLink `xml:"link"`
}

type atomLink struct {
	Rel  string `xml:"rel,attr"`
	Href string `xml:"href,attr"`
}

// result converts an entry to a SearchResult. Entries without a title
// or a link href have an unrecognized shape and are skipped.
func (e atomEntry) result() (types.SearchResult, bool) {
	title := strings.TrimSpace(e.Title)
	if title == "" || len(e.Links) == 0 || e.Links[0].Href == "" {
		return types.SearchResult{}, false
	}
	return types.SearchResult{Title: title, URI: e.Links[0].Href}, true
}

// next returns the feed-level rel="next" link, or "" on the last page.
func (f atomFeed) next() string {
	for _, l := range f.Links {
		if l.Rel == "next" {
			return l.Href
		}
	}
	return ""
}
