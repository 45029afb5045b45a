package formset

import (
	"sort"
	"strconv"
	"strings"
)

// Management form field suffixes, following the Django formset naming the
// server side expects.
const (
	TotalFormsSuffix   = "TOTAL_FORMS"
	InitialFormsSuffix = "INITIAL_FORMS"
	MinNumFormsSuffix  = "MIN_NUM_FORMS"
	MaxNumFormsSuffix  = "MAX_NUM_FORMS"
)

// defaultMaxNumForms mirrors the server-side default cap reported when the
// manager itself is unbounded.
const defaultMaxNumForms = 1000

// HiddenField is a hidden input emitted alongside the rows.
type HiddenField struct {
	Name  string
	Value string
}

// ManagementForm returns the hidden fields describing the current row count,
// sorted by name.
func (m *Manager) ManagementForm() []HiddenField {
	if m == nil {
		return nil
	}
	maxForms := m.maxRows
	if maxForms <= 0 {
		maxForms = defaultMaxNumForms
	}
	fields := []HiddenField{
		{Name: m.prefix + "-" + TotalFormsSuffix, Value: strconv.Itoa(m.Len())},
		{Name: m.prefix + "-" + InitialFormsSuffix, Value: strconv.Itoa(m.initialForms)},
		{Name: m.prefix + "-" + MinNumFormsSuffix, Value: strconv.Itoa(m.minRows)},
		{Name: m.prefix + "-" + MaxNumFormsSuffix, Value: strconv.Itoa(maxForms)},
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})
	return fields
}

// IsManagementInput reports whether el is one of the management form inputs
// of prefix. Such inputs may share a container with the rows but are never
// rows themselves.
func IsManagementInput(prefix string, el *Element) bool {
	if el == nil || el.Tag != "input" {
		return false
	}
	name, _ := el.Attr("name")
	rest, ok := strings.CutPrefix(name, prefix+"-")
	if !ok {
		return false
	}
	switch rest {
	case TotalFormsSuffix, InitialFormsSuffix, MinNumFormsSuffix, MaxNumFormsSuffix:
		return true
	}
	return false
}
