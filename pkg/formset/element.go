package formset

import "strings"

// Attr is a single element attribute. Order is preserved so rendering stays
// deterministic.
type Attr struct {
	Key   string
	Value string
}

// Element is an owned, in-memory element tree. An Element with an empty Tag is
// a text node and only carries Text.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// NewElement builds an element with the supplied attributes given as
// alternating key/value pairs. A trailing key without value is ignored.
func NewElement(tag string, attrs ...string) *Element {
	el := &Element{Tag: strings.ToLower(strings.TrimSpace(tag))}
	for i := 0; i+1 < len(attrs); i += 2 {
		el.SetAttr(attrs[i], attrs[i+1])
	}
	return el
}

// TextNode builds a text node.
func TextNode(text string) *Element {
	return &Element{Text: text}
}

// IsText reports whether the element is a text node.
func (e *Element) IsText() bool {
	return e != nil && e.Tag == ""
}

// Append adds children and returns the receiver for chaining.
func (e *Element) Append(children ...*Element) *Element {
	for _, child := range children {
		if child != nil {
			e.Children = append(e.Children, child)
		}
	}
	return e
}

// Attr returns the attribute value and whether it is present. Keys are
// matched case-insensitively.
func (e *Element) Attr(key string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, attr := range e.Attrs {
		if strings.EqualFold(attr.Key, key) {
			return attr.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(key string) bool {
	_, ok := e.Attr(key)
	return ok
}

// SetAttr sets or appends an attribute.
func (e *Element) SetAttr(key, value string) {
	key = strings.ToLower(strings.TrimSpace(key))
	if e == nil || key == "" {
		return
	}
	for i := range e.Attrs {
		if strings.EqualFold(e.Attrs[i].Key, key) {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
}

// RemoveAttr drops an attribute if present.
func (e *Element) RemoveAttr(key string) {
	if e == nil {
		return
	}
	out := e.Attrs[:0]
	for _, attr := range e.Attrs {
		if strings.EqualFold(attr.Key, key) {
			continue
		}
		out = append(out, attr)
	}
	e.Attrs = out
}

// InputType returns the lower-cased type of an input element, defaulting to
// "text" as browsers do.
func (e *Element) InputType() string {
	if e == nil || e.Tag != "input" {
		return ""
	}
	kind, _ := e.Attr("type")
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		return "text"
	}
	return kind
}

// HasClass reports whether the class attribute lists name.
func (e *Element) HasClass(name string) bool {
	classes, ok := e.Attr("class")
	if !ok {
		return false
	}
	for _, class := range strings.Fields(classes) {
		if class == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the element subtree.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	out := &Element{
		Tag:  e.Tag,
		Text: e.Text,
	}
	if len(e.Attrs) > 0 {
		out.Attrs = append([]Attr(nil), e.Attrs...)
	}
	if len(e.Children) > 0 {
		out.Children = make([]*Element, len(e.Children))
		for i, child := range e.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// Walk visits the element and all descendants depth-first. Returning false
// from fn skips the element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil || fn == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, child := range e.Children {
		child.Walk(fn)
	}
}

// Find returns the first element (depth-first, including the receiver)
// accepted by match.
func (e *Element) Find(match func(*Element) bool) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if found != nil {
			return false
		}
		if match(el) {
			found = el
			return false
		}
		return true
	})
	return found
}

// TextContent concatenates the text of all descendant text nodes.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.Walk(func(el *Element) bool {
		if el.IsText() {
			b.WriteString(el.Text)
		}
		return true
	})
	return b.String()
}
