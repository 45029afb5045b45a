package formset

// Reset clears every value-bearing field below el back to its empty state:
// checkboxes and radios lose "checked", other inputs get an empty value,
// selects fall back to their first option and textareas are emptied. Inputs of
// type button, submit and image are left untouched. Elements that are not form
// fields are descended into.
func Reset(el *Element) {
	resetField(el)
}

func resetField(el *Element) {
	if el == nil || el.IsText() {
		return
	}
	switch el.Tag {
	case "input":
		switch el.InputType() {
		case "radio", "checkbox":
			el.RemoveAttr("checked")
		case "button", "submit", "image":
		default:
			el.SetAttr("value", "")
		}
	case "select":
		resetSelect(el)
	case "textarea":
		el.Children = nil
	default:
		for _, child := range el.Children {
			resetField(child)
		}
	}
}

func resetSelect(el *Element) {
	first := true
	el.Walk(func(node *Element) bool {
		if node.Tag != "option" {
			return true
		}
		node.RemoveAttr("selected")
		if first {
			node.SetAttr("selected", "")
			first = false
		}
		return false
	})
}
