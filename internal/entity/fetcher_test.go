// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"github.com/edsu/idloc/internal/httputil"
	"github.com/edsu/idloc/pkg/types"
)

// fakeFramer records its inputs and returns a canned document, so
// fetch logic is tested without a real framing engine.
type fakeFramer struct {
	gotDoc   any
	gotFrame map[string]any
	out      types.Entity
	err      error
}

func (f *fakeFramer) Frame(doc any, frame map[string]any) (types.Entity, error) {
	f.gotDoc = doc
	f.gotFrame = frame
	if f.err != nil {
		return nil, f.err
	}
	if f.out != nil {
		return f.out, nil
	}
	if m, ok := doc.(map[string]any); ok {
		return types.Entity(m), nil
	}
	return types.Entity{"doc": doc}, nil
}

const sampleEntityJSON = `{
  "@graph": [
    {
      "@id": "http://id.loc.gov/authorities/subjects/sh2002000569",
      "@type": "skos:Concept",
      "skos:prefLabel": {"@language": "en", "@value": "Semantic Web"}
    }
  ]
}`

// withTestHost points the namespace check at the test server for the
// duration of the test.
func withTestHost(t *testing.T, tsURL string) {
	t.Helper()
	u, err := url.Parse(tsURL)
	if err != nil {
		t.Fatal(err)
	}
	old := hostSuffix
	hostSuffix = u.Host
	t.Cleanup(func() { hostSuffix = old })
}

func TestGetAppliesFrame(t *testing.T) {
	var gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/ld+json")
		fmt.Fprint(w, sampleEntityJSON)
	}))
	defer ts.Close()
	withTestHost(t, ts.URL)

	uri := ts.URL + "/authorities/subjects/sh2002000569"
	framer := &fakeFramer{out: types.Entity{"@id": uri}}
	f := NewFetcher(framer, types.FetchConfig{})

	got, err := f.Get(context.Background(), uri)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if gotAccept != "application/ld+json" {
		t.Errorf("Accept header = %q, want application/ld+json", gotAccept)
	}
	if got["@id"] != uri {
		t.Errorf("Get() = %v, want framer output", got)
	}
	if framer.gotFrame["@id"] != uri {
		t.Errorf("frame @id = %v, want requested URI", framer.gotFrame["@id"])
	}
	if framer.gotFrame["@embed"] != "@always" {
		t.Errorf("frame @embed = %v, want @always", framer.gotFrame["@embed"])
	}
	doc, ok := framer.gotDoc.(map[string]any)
	if !ok {
		t.Fatalf("framer received %T, want the decoded remote document", framer.gotDoc)
	}
	if _, ok := doc["@graph"]; !ok {
		t.Error("framer should receive the decoded remote document")
	}
}

func TestGetAcceptsArrayPayload(t *testing.T) {
	// Authority records come back as a top-level JSON array; that is
	// valid JSON-LD, not a malformed payload.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/ld+json")
		fmt.Fprint(w, `[
  {
    "@id": "http://id.loc.gov/authorities/subjects/sh2002000569",
    "@type": ["http://www.w3.org/2004/02/skos/core#Concept"],
    "http://www.w3.org/2004/02/skos/core#prefLabel": [{"@language": "en", "@value": "Semantic Web"}]
  }
]`)
	}))
	defer ts.Close()
	withTestHost(t, ts.URL)

	uri := ts.URL + "/authorities/subjects/sh2002000569"
	framer := &fakeFramer{out: types.Entity{"@id": uri}}
	f := NewFetcher(framer, types.FetchConfig{})

	got, err := f.Get(context.Background(), uri)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got["@id"] != uri {
		t.Errorf("Get() = %v, want framer output", got)
	}

	arr, ok := framer.gotDoc.([]any)
	if !ok {
		t.Fatalf("framer received %T, want the array payload as decoded", framer.gotDoc)
	}
	if len(arr) != 1 {
		t.Errorf("framer received %d nodes, want 1", len(arr))
	}
}

func TestGetIsDeterministic(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, sampleEntityJSON)
	}))
	defer ts.Close()
	withTestHost(t, ts.URL)

	uri := ts.URL + "/authorities/subjects/sh2002000569"
	f := NewFetcher(&fakeFramer{}, types.FetchConfig{})

	first, err := f.Get(context.Background(), uri)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	second, err := f.Get(context.Background(), uri)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two calls against unchanged remote content should produce identical output")
	}
}

func TestGetNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()
	withTestHost(t, ts.URL)

	f := NewFetcher(&fakeFramer{}, types.FetchConfig{})
	_, err := f.Get(context.Background(), ts.URL+"/authorities/subjects/nope")
	if !errors.Is(err, httputil.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestGetServiceError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()
	withTestHost(t, ts.URL)

	f := NewFetcher(&fakeFramer{}, types.FetchConfig{})
	_, err := f.Get(context.Background(), ts.URL+"/authorities/subjects/sh1")

	var statusErr *httputil.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Get() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", statusErr.StatusCode)
	}
}

func TestGetMalformedPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "this is not JSON-LD")
	}))
	defer ts.Close()
	withTestHost(t, ts.URL)

	f := NewFetcher(&fakeFramer{}, types.FetchConfig{})
	if _, err := f.Get(context.Background(), ts.URL+"/authorities/subjects/sh1"); err == nil {
		t.Error("Get() should fail on an undecodable payload")
	}
}

func TestGetFramingError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, sampleEntityJSON)
	}))
	defer ts.Close()
	withTestHost(t, ts.URL)

	framer := &fakeFramer{err: errors.New("shape mismatch")}
	f := NewFetcher(framer, types.FetchConfig{})
	_, err := f.Get(context.Background(), ts.URL+"/authorities/subjects/sh1")

	var framingErr *FramingError
	if !errors.As(err, &framingErr) {
		t.Fatalf("Get() error = %v, want *FramingError", err)
	}
}

func TestValidateURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		wantErr bool
	}{
		{"valid http", "http://id.loc.gov/authorities/subjects/sh2002000569", false},
		{"valid https", "https://id.loc.gov/authorities/names/n79021164", false},
		{"relative", "/authorities/subjects/sh2002000569", true},
		{"wrong namespace", "http://example.com/authorities/subjects/sh1", true},
		{"wrong scheme", "ftp://id.loc.gov/authorities/subjects/sh1", true},
		{"lookalike host", "http://notid.loc.gov.evil.com/x", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURI(tt.uri)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateURI(%q) error = %v, wantErr %v", tt.uri, err, tt.wantErr)
			}
		})
	}
}
