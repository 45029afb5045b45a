package formset

import (
	"strconv"
	"strings"
)

// Field returns the element named "<prefix>-<index>-<field>" inside the row
// at index, or nil when either is missing.
func (m *Manager) Field(index int, field string) *Element {
	rows := m.Rows()
	if index < 0 || index >= len(rows) {
		return nil
	}
	want := FieldName(m.prefix, index, field)
	return rows[index].Element.Find(func(el *Element) bool {
		name, _ := el.Attr("name")
		return name == want
	})
}

// SetValue writes value into a form field the way a user would: text-like
// inputs and hidden inputs get the value attribute, checkboxes and radios are
// checked for truthy values, selects pick the matching option and textareas
// replace their content. Buttons are left alone.
func SetValue(el *Element, value string) {
	if el == nil {
		return
	}
	switch el.Tag {
	case "input":
		switch el.InputType() {
		case "checkbox", "radio":
			if truthy(value) {
				el.SetAttr("checked", "")
			} else {
				el.RemoveAttr("checked")
			}
		case "button", "submit", "image", "reset":
		default:
			el.SetAttr("value", value)
		}
	case "select":
		el.Walk(func(node *Element) bool {
			if node.Tag != "option" {
				return true
			}
			if optionValue(node) == value {
				node.SetAttr("selected", "")
			} else {
				node.RemoveAttr("selected")
			}
			return false
		})
	case "textarea":
		el.Children = []*Element{TextNode(value)}
	}
}

// Collect serialises every named field below el into name/value pairs,
// following browser submission rules: unchecked boxes and buttons are
// skipped, selects report their selected (or first) option.
func Collect(el *Element) map[string]string {
	out := make(map[string]string)
	el.Walk(func(node *Element) bool {
		name, ok := node.Attr("name")
		if !ok || name == "" {
			return !node.IsText()
		}
		switch node.Tag {
		case "input":
			switch node.InputType() {
			case "checkbox", "radio":
				if node.HasAttr("checked") {
					value, ok := node.Attr("value")
					if !ok {
						value = "on"
					}
					out[name] = value
				}
			case "button", "submit", "image", "reset", "file":
			default:
				value, _ := node.Attr("value")
				out[name] = value
			}
		case "select":
			out[name] = selectedValue(node)
		case "textarea":
			out[name] = node.TextContent()
		}
		return node.Tag != "select" && node.Tag != "textarea"
	})
	return out
}

func selectedValue(el *Element) string {
	var first, selected *Element
	el.Walk(func(node *Element) bool {
		if node.Tag != "option" {
			return true
		}
		if first == nil {
			first = node
		}
		if selected == nil && node.HasAttr("selected") {
			selected = node
		}
		return false
	})
	switch {
	case selected != nil:
		return optionValue(selected)
	case first != nil:
		return optionValue(first)
	default:
		return ""
	}
}

func optionValue(option *Element) string {
	if value, ok := option.Attr("value"); ok {
		return value
	}
	return strings.TrimSpace(option.TextContent())
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes", "y", "checked":
		return true
	}
	b, err := strconv.ParseBool(value)
	return err == nil && b
}
