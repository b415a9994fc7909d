package catalog

import (
	"errors"
	"strings"
)

var ErrUnknownField = errors.New("unknown filter field")

// FilterFields are the structured fields the browse UI can narrow on. Each
// holds at most one selected value (single-select).
var FilterFields = []string{"type", "domain", "region", "classification", "tags"}

// searchableFields is the fixed list of scalar fields free-text search runs
// over; tag entries are searched separately as a sequence. Of the link fields
// only databricks, tableau, genie and request-access are searched; qlik and
// data-contract links render and filter but stay out of search.
var searchableFields = []string{
	"id", "name", "description", "purpose", "type", "domain", "region",
	"owner", "certified", "classification", "gxp", "interval_of_change",
	"last_updated_date", "first_publish_date", "next_reassessment_date",
	"security_considerations", "business_function", "databricks_url",
	"tableau_url", "ai_bi_genie_url", "request_access_url",
}

// ViewState is the active narrowing of the catalog: structured filters plus a
// free-text search term.
type ViewState struct {
	Filters    map[string]string `json:"filters"`
	SearchTerm string            `json:"search_term"`
}

func IsFilterField(name string) bool {
	for _, f := range FilterFields {
		if f == name {
			return true
		}
	}
	return false
}

// Matches reports whether a product survives the view's narrowing. All
// non-empty filters must hold (tags by exact case-insensitive membership,
// scalars by case-folded equality, absent fields comparing as empty), and a
// non-empty search term must appear as a case-folded substring of at least
// one searchable field or tag.
func Matches(p Product, view ViewState) bool {
	for field, value := range view.Filters {
		if value == "" {
			continue
		}
		want := strings.ToLower(value)
		if field == "tags" {
			if !hasTag(p.Tags, want) {
				return false
			}
			continue
		}
		if strings.ToLower(p.Field(field)) != want {
			return false
		}
	}

	if view.SearchTerm == "" {
		return true
	}
	term := strings.ToLower(view.SearchTerm)
	for _, field := range searchableFields {
		if v := p.Field(field); v != "" && strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Apply returns the order-preserving subsequence of products matching the
// view. It never mutates its inputs.
func Apply(products []Product, view ViewState) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if Matches(p, view) {
			out = append(out, p)
		}
	}
	return out
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.ToLower(tag) == want {
			return true
		}
	}
	return false
}
