package authoring

import (
	"errors"
	"sync"
)

var ErrUnknownColumn = errors.New("unknown column")

// ColumnSpec describes one column of the authoring grid. Options list the
// fixed choices for categorical fields; they are a UI affordance, not a
// server-side constraint — the catalog treats these fields as open strings.
type ColumnSpec struct {
	Field    string   `json:"field"`
	Header   string   `json:"header"`
	Editable bool     `json:"editable"`
	Options  []string `json:"options,omitempty"`
}

// Columns is the fixed superset of grid columns, in display order.
var Columns = []ColumnSpec{
	{Field: "id", Header: "ID"},
	{Field: "name", Header: "Product Name", Editable: true},
	{Field: "description", Header: "Description", Editable: true},
	{Field: "purpose", Header: "Purpose", Editable: true},
	{Field: "type", Header: "Type", Editable: true, Options: []string{
		"Analytics Data Product", "AI/ML Model", "Dashboard", "API", "Dataset", "Report",
	}},
	{Field: "domain", Header: "Domain", Editable: true, Options: []string{
		"Commercial", "Clinical", "Supply Chain", "Safety", "Finance", "HR", "IT", "R&D",
	}},
	{Field: "region", Header: "Region", Editable: true, Options: []string{
		"Global", "North America", "EMEA", "APAC", "Japan",
	}},
	{Field: "owner", Header: "Owner", Editable: true},
	{Field: "certified", Header: "Certified", Editable: true, Options: []string{
		"Yes", "No", "In Progress", "Digital X to populate",
	}},
	{Field: "classification", Header: "Classification", Editable: true, Options: []string{
		"Internal", "Confidential", "Restricted", "Public",
	}},
	{Field: "gxp", Header: "GXP Status", Editable: true, Options: []string{
		"GXP", "Non-GXP",
	}},
	{Field: "interval_of_change", Header: "Update Frequency", Editable: true, Options: []string{
		"Real-time", "Daily", "Weekly", "Monthly", "Quarterly", "Annually", "Other",
	}},
	{Field: "last_updated_date", Header: "Last Updated", Editable: true},
	{Field: "first_publish_date", Header: "First Published", Editable: true},
	{Field: "next_reassessment_date", Header: "Next Reassessment", Editable: true},
	{Field: "security_considerations", Header: "Security", Editable: true},
	{Field: "business_function", Header: "Business Function", Editable: true},
	{Field: "sub_domain", Header: "Sub Domain", Editable: true, Options: []string{
		"Commercial", "Clinical Research", "Supply Chain", "Drug Safety", "Finance", "HR", "IT", "R&D",
	}},
	{Field: "databricks_url", Header: "Databricks URL", Editable: true},
	{Field: "tableau_url", Header: "Tableau URL", Editable: true},
	{Field: "qlik_url", Header: "Qlik URL", Editable: true},
	{Field: "data_contract_url", Header: "Data Contract URL", Editable: true},
	{Field: "ai_bi_genie_url", Header: "AI/BI Genie URL", Editable: true},
	{Field: "request_access_url", Header: "Request Access URL", Editable: true},
	{Field: "tags", Header: "Tags", Editable: true},
}

// floorFields always survive a cleared selection; a grid with zero columns is
// never allowed.
var floorFields = []string{"id", "name"}

const defaultColumnCount = 8

func knownColumn(field string) bool {
	for _, col := range Columns {
		if col.Field == field {
			return true
		}
	}
	return false
}

// ColumnSet is the client-local column visibility selection over the fixed
// registry. It is safe for concurrent use.
type ColumnSet struct {
	mu       sync.Mutex
	selected map[string]bool
}

// NewColumnSet starts with the first eight registry columns visible, as the
// grid does on first open.
func NewColumnSet() *ColumnSet {
	s := &ColumnSet{selected: map[string]bool{}}
	for _, col := range Columns[:defaultColumnCount] {
		s.selected[col.Field] = true
	}
	return s
}

// Toggle flips one column's visibility. Deselecting the last visible column
// collapses the selection to the id/name floor instead of emptying the grid.
func (s *ColumnSet) Toggle(field string) error {
	if !knownColumn(field) {
		return ErrUnknownColumn
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected[field] {
		delete(s.selected, field)
	} else {
		s.selected[field] = true
	}
	s.enforceFloor()
	return nil
}

// Replace swaps in a whole new selection. Unknown fields are rejected as a
// unit; an empty selection collapses to the floor.
func (s *ColumnSet) Replace(fields []string) error {
	for _, field := range fields {
		if !knownColumn(field) {
			return ErrUnknownColumn
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = map[string]bool{}
	for _, field := range fields {
		s.selected[field] = true
	}
	s.enforceFloor()
	return nil
}

func (s *ColumnSet) SelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = map[string]bool{}
	for _, col := range Columns {
		s.selected[col.Field] = true
	}
}

// ClearAll resets to the floor rather than producing an empty grid.
func (s *ColumnSet) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = map[string]bool{}
	s.enforceFloor()
}

// Selected returns the visible fields in registry order.
func (s *ColumnSet) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.selected))
	for _, col := range Columns {
		if s.selected[col.Field] {
			out = append(out, col.Field)
		}
	}
	return out
}

func (s *ColumnSet) enforceFloor() {
	if len(s.selected) == 0 {
		for _, field := range floorFields {
			s.selected[field] = true
		}
	}
}
