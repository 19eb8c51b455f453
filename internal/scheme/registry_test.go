// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scheme

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	r := Default()

	if r.Len() < 100 {
		t.Fatalf("Default().Len() = %d, want at least 100 bundled schemes", r.Len())
	}

	tests := []struct {
		name string
		want string
	}{
		{"subject-headings", "http://id.loc.gov/authorities/subjects"},
		{"name-authority", "http://id.loc.gov/authorities/names"},
		{"marc-languages", "http://id.loc.gov/vocabulary/languages"},
	}
	for _, tt := range tests {
		got, ok := r.Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%q) missing", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	r := Default()
	if _, ok := r.Lookup("Subject-Headings"); ok {
		t.Error("Lookup should be a case-sensitive exact match")
	}
}

func TestResolve(t *testing.T) {
	r := New(map[string]string{
		"subject-headings": "http://id.loc.gov/authorities/subjects",
		"name-authority":   "http://id.loc.gov/authorities/names",
	})

	t.Run("preserves input order", func(t *testing.T) {
		uris, err := r.Resolve([]string{"name-authority", "subject-headings"})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if len(uris) != 2 || uris[0] != "http://id.loc.gov/authorities/names" || uris[1] != "http://id.loc.gov/authorities/subjects" {
			t.Errorf("Resolve() = %v", uris)
		}
	})

	t.Run("empty input resolves to nothing", func(t *testing.T) {
		uris, err := r.Resolve(nil)
		if err != nil {
			t.Fatalf("Resolve(nil) error = %v", err)
		}
		if len(uris) != 0 {
			t.Errorf("Resolve(nil) = %v, want empty", uris)
		}
	})

	t.Run("unknown name fails with every missing name", func(t *testing.T) {
		_, err := r.Resolve([]string{"subject-headings", "nope", "also-nope"})
		var unknown *UnknownSchemeError
		if !errors.As(err, &unknown) {
			t.Fatalf("Resolve() error = %v, want *UnknownSchemeError", err)
		}
		if len(unknown.Names) != 2 {
			t.Errorf("UnknownSchemeError.Names = %v, want both missing names", unknown.Names)
		}
		if !strings.Contains(err.Error(), "nope") || !strings.Contains(err.Error(), "also-nope") {
			t.Errorf("error message %q should list all missing names", err.Error())
		}
	})
}

func TestRegistryCopies(t *testing.T) {
	src := map[string]string{"a": "http://id.loc.gov/a"}
	r := New(src)

	src["a"] = "mutated"
	if uri, _ := r.Lookup("a"); uri != "http://id.loc.gov/a" {
		t.Error("New should copy the source table")
	}

	r.Schemes()["a"] = "mutated"
	if uri, _ := r.Lookup("a"); uri != "http://id.loc.gov/a" {
		t.Error("Schemes should return a copy")
	}
}
