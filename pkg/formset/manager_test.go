package formset

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fixtureRow(index string, title string) *Element {
	row := NewElement("div", "class", "formset-row")
	row.Append(
		NewElement("label", "for", "id_form-"+index+"-title").Append(TextNode("Title")),
		NewElement("input", "type", "text", "name", "form-"+index+"-title", "id", "id_form-"+index+"-title", "value", title),
		NewElement("input", "type", "checkbox", "name", "form-"+index+"-DELETE", "id", "id_form-"+index+"-DELETE", "checked", ""),
		NewElement("select", "name", "form-"+index+"-kind", "id", "id_form-"+index+"-kind").Append(
			NewElement("option", "value", "inside").Append(TextNode("Inside")),
			NewElement("option", "value", "outside", "selected", "").Append(TextNode("Outside")),
		),
		NewElement("textarea", "name", "form-"+index+"-notes", "id", "id_form-"+index+"-notes").Append(TextNode("bring boots")),
		NewElement("input", "type", "submit", "name", "form-"+index+"-save", "value", "Save"),
		NewElement("input", "type", "hidden", "name", "form-"+index+"-id", "value", "7"),
	)
	return row
}

func fixtureContainer(rows int) *Element {
	container := NewElement("div", "id", "formset-container")
	for i := 0; i < rows; i++ {
		container.Append(fixtureRow(string(rune('0'+i)), "Walk"))
	}
	container.Append(NewElement("button", "type", "button", "id", "add-form"))
	return container
}

func isAddButton(el *Element) bool {
	id, _ := el.Attr("id")
	return id == "add-form"
}

func rowNames(rows []Row) [][]string {
	var out [][]string
	for _, row := range rows {
		var names []string
		row.Element.Walk(func(el *Element) bool {
			if name, ok := el.Attr("name"); ok {
				names = append(names, name)
			}
			return true
		})
		out = append(out, names)
	}
	return out
}

func TestNew_Errors(t *testing.T) {
	if _, err := New("", fixtureContainer(1)); !errors.Is(err, ErrEmptyPrefix) {
		t.Fatalf("expected ErrEmptyPrefix, got %v", err)
	}
	if _, err := New("form", nil); !errors.Is(err, ErrNilContainer) {
		t.Fatalf("expected ErrNilContainer, got %v", err)
	}
	if _, err := New("form", fixtureContainer(0), WithEndMarker(isAddButton)); !errors.Is(err, ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
	if _, err := New("form", fixtureContainer(1), WithEndMarker(isAddButton), WithMinRows(2)); !errors.Is(err, ErrNoRows) {
		t.Fatalf("expected ErrNoRows for min rows, got %v", err)
	}
}

func TestAddRow_ClonesRenumbersAndResets(t *testing.T) {
	container := fixtureContainer(2)
	mgr, err := New("form", container, WithEndMarker(isAddButton))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	row, ok := mgr.AddRow()
	if !ok {
		t.Fatalf("expected row to be added")
	}
	if row.Index != 2 {
		t.Fatalf("expected new row index 2, got %d", row.Index)
	}
	if mgr.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", mgr.Len())
	}

	// the clone sits right before the add button
	children := container.Children
	if children[len(children)-2] != row.Element || !isAddButton(children[len(children)-1]) {
		t.Fatalf("expected clone before end marker")
	}

	for _, r := range mgr.Rows() {
		want := "form-" + string(rune('0'+r.Index)) + "-"
		r.Element.Walk(func(el *Element) bool {
			for _, key := range []string{"id", "for"} {
				if value, ok := el.Attr(key); ok && !strings.HasPrefix(value, "id_"+want) {
					t.Fatalf("row %d %s=%q does not carry %q", r.Index, key, value, want)
				}
			}
			if name, ok := el.Attr("name"); ok && !strings.HasPrefix(name, want) {
				t.Fatalf("row %d name=%q does not carry %q", r.Index, name, want)
			}
			return true
		})
	}

	title := row.Element.Find(func(el *Element) bool { n, _ := el.Attr("name"); return n == "form-2-title" })
	if value, _ := title.Attr("value"); value != "" {
		t.Fatalf("expected cleared title, got %q", value)
	}
	hidden := row.Element.Find(func(el *Element) bool { n, _ := el.Attr("name"); return n == "form-2-id" })
	if value, _ := hidden.Attr("value"); value != "" {
		t.Fatalf("expected cleared hidden id, got %q", value)
	}
	deleteBox := row.Element.Find(func(el *Element) bool { n, _ := el.Attr("name"); return n == "form-2-DELETE" })
	if deleteBox.HasAttr("checked") {
		t.Fatalf("expected checkbox unchecked")
	}
	notes := row.Element.Find(func(el *Element) bool { return el.Tag == "textarea" })
	if notes.TextContent() != "" {
		t.Fatalf("expected empty textarea, got %q", notes.TextContent())
	}

	var selected []bool
	row.Element.Walk(func(el *Element) bool {
		if el.Tag == "option" {
			selected = append(selected, el.HasAttr("selected"))
		}
		return true
	})
	if diff := cmp.Diff([]bool{true, false}, selected); diff != "" {
		t.Fatalf("select reset mismatch (-want +got):\n%s", diff)
	}

	submit := row.Element.Find(func(el *Element) bool { return el.InputType() == "submit" })
	wantSubmit := []Attr{{"type", "submit"}, {"name", "form-2-save"}, {"value", "Save"}}
	if diff := cmp.Diff(wantSubmit, submit.Attrs); diff != "" {
		t.Fatalf("submit attrs mismatch (-want +got):\n%s", diff)
	}

	// the template row keeps its values
	original := mgr.Rows()[1].Element.Find(func(el *Element) bool { n, _ := el.Attr("name"); return n == "form-1-title" })
	if value, _ := original.Attr("value"); value != "Walk" {
		t.Fatalf("expected template row untouched, got %q", value)
	}
}

func TestAddRow_WithoutMarkerAppendsAfterLastRow(t *testing.T) {
	container := NewElement("div").Append(fixtureRow("0", "a"), TextNode("\n"))
	mgr, err := New("form", container)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	row, ok := mgr.AddRow()
	if !ok {
		t.Fatalf("expected row to be added")
	}
	if container.Children[1] != row.Element {
		t.Fatalf("expected clone right after the last row")
	}
}

func TestAddRow_RespectsMaxRows(t *testing.T) {
	mgr, err := New("form", fixtureContainer(2), WithEndMarker(isAddButton), WithMaxRows(2))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, ok := mgr.AddRow(); ok {
		t.Fatalf("expected add to be refused at max rows")
	}
	if mgr.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", mgr.Len())
	}
}

func TestRenumber_Idempotent(t *testing.T) {
	mgr, err := New("form", fixtureContainer(3), WithEndMarker(isAddButton))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	before := rowNames(mgr.Rows())
	mgr.Renumber()
	mgr.Renumber()
	if diff := cmp.Diff(before, rowNames(mgr.Rows())); diff != "" {
		t.Fatalf("renumber changed a numbered sequence (-want +got):\n%s", diff)
	}
}

func TestRenumber_FixesGapsAndPlaceholders(t *testing.T) {
	container := NewElement("div").Append(
		NewElement("p").Append(NewElement("input", "name", "form-4-title", "id", "id_form-4-title")),
		NewElement("p").Append(NewElement("input", "name", "form-__prefix__-title", "id", "id_subform-9-title")),
	)
	mgr, err := New("form", container)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	mgr.Renumber()

	got := rowNames(mgr.Rows())
	want := [][]string{{"form-0-title"}, {"form-1-title"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	id, _ := mgr.Rows()[1].Element.Children[0].Attr("id")
	if id != "id_subform-9-title" {
		t.Fatalf("expected foreign prefix untouched, got %q", id)
	}
}

func TestRenumber_PrefixWithDollarSign(t *testing.T) {
	container := NewElement("div").Append(
		NewElement("p").Append(NewElement("input", "name", "a$1-0-title", "id", "id_a$1-0-title")),
	)
	mgr, err := New("a$1", container)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, ok := mgr.AddRow(); !ok {
		t.Fatalf("expected row added")
	}

	want := [][]string{{"a$1-0-title"}, {"a$1-1-title"}}
	if diff := cmp.Diff(want, rowNames(mgr.Rows())); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	id, _ := mgr.Rows()[1].Element.Children[0].Attr("id")
	if id != "id_a$1-1-title" {
		t.Fatalf("unexpected id %q", id)
	}
}

func TestRemoveRow(t *testing.T) {
	single, err := New("form", fixtureContainer(1), WithEndMarker(isAddButton))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if single.RemoveRow(0) {
		t.Fatalf("expected removal of the last row to be refused")
	}
	if single.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", single.Len())
	}

	mgr, err := New("form", fixtureContainer(3), WithEndMarker(isAddButton))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if mgr.RemoveRow(5) || mgr.RemoveRow(-1) {
		t.Fatalf("expected out-of-range removal to be refused")
	}
	if !mgr.RemoveRow(1) {
		t.Fatalf("expected removal to succeed")
	}
	if mgr.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", mgr.Len())
	}
	mgr.Renumber()
	for _, names := range rowNames(mgr.Rows()) {
		for _, name := range names {
			if !strings.HasPrefix(name, "form-0-") && !strings.HasPrefix(name, "form-1-") {
				t.Fatalf("unexpected index in %q", name)
			}
		}
	}
	if got := rowNames(mgr.Rows())[1][0]; got != "form-1-title" {
		t.Fatalf("expected contiguous indices, got %q", got)
	}
}

func TestManagementForm(t *testing.T) {
	mgr, err := New("form", fixtureContainer(2), WithEndMarker(isAddButton), WithInitialForms(2))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	mgr.AddRow()

	want := []HiddenField{
		{Name: "form-INITIAL_FORMS", Value: "2"},
		{Name: "form-MAX_NUM_FORMS", Value: "1000"},
		{Name: "form-MIN_NUM_FORMS", Value: "1"},
		{Name: "form-TOTAL_FORMS", Value: "3"},
	}
	if diff := cmp.Diff(want, mgr.ManagementForm()); diff != "" {
		t.Fatalf("management form mismatch (-want +got):\n%s", diff)
	}
}

func TestReset_SkipsMissingAttributes(t *testing.T) {
	row := NewElement("div").Append(
		NewElement("input"),
		NewElement("select"),
		NewElement("input", "type", "RADIO"),
		NewElement("span").Append(NewElement("input", "type", "image", "src", "x.png")),
	)
	Reset(row)

	value, ok := row.Children[0].Attr("value")
	if !ok || value != "" {
		t.Fatalf("expected bare input to gain empty value, got %q (%v)", value, ok)
	}
	if row.Children[2].HasAttr("checked") {
		t.Fatalf("expected radio unchecked")
	}
	if row.Children[3].Children[0].HasAttr("value") {
		t.Fatalf("expected image input untouched")
	}
}
