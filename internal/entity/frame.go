// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package entity

// frameContext maps the prefixes used by id.loc.gov records so the
// framed output carries compact terms instead of full predicate URIs.
var frameContext = map[string]any{
	"mads":        "http://www.loc.gov/mads/rdf/v1#",
	"skos":        "http://www.w3.org/2004/02/skos/core#",
	"skosxl":      "http://www.w3.org/2008/05/skos-xl#",
	"recordinfo":  "http://id.loc.gov/ontologies/RecordInfo#",
	"identifiers": "http://id.loc.gov/vocabulary/identifiers/",
	"bflc":        "http://id.loc.gov/ontologies/bflc/",
	"iso6392":     "http://id.loc.gov/vocabulary/iso639-2/",
	"changeset":   "http://purl.org/vocab/changeset/schema#",
	"bibframe":    "http://id.loc.gov/ontologies/bibframe/",
}

// frameFor returns the fixed frame document rooted at uri. The
// @embed directive pulls linked SKOS concepts in as nested objects in
// addition to linked MADS authorities.
func frameFor(uri string) map[string]any {
	return map[string]any{
		"@context": frameContext,
		"@id":      uri,
		"@embed":   "@always",
	}
}
