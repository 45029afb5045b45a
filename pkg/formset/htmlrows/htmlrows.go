// Package htmlrows converts between HTML fragments and formset element trees
// so rows rendered by the server can be managed and written back.
package htmlrows

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-formwizard/internal/htmlmin"
	"github.com/goliatone/go-formwizard/pkg/formset"
)

// ErrEmptyFragment is returned when the fragment holds no elements.
var ErrEmptyFragment = errors.New("htmlrows: empty fragment")

// Parse reads an HTML fragment and returns a synthetic container element whose
// children are the fragment's top-level nodes. The parsing context follows the
// fragment's first tag so table rows and cells survive. Whitespace-only text
// nodes and comments are dropped, except inside textarea and pre.
func Parse(r io.Reader) (*formset.Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("htmlrows: read fragment: %w", err)
	}
	context := fragmentContext(data)
	nodes, err := html.ParseFragment(bytes.NewReader(data), context)
	if err != nil {
		return nil, fmt.Errorf("htmlrows: parse fragment: %w", err)
	}

	root := &formset.Element{Tag: context.Data}
	for _, node := range nodes {
		if el := convertNode(node, false); el != nil {
			root.Children = append(root.Children, el)
		}
	}
	if len(root.Children) == 0 {
		return nil, ErrEmptyFragment
	}
	return root, nil
}

// fragmentContext picks the element a fragment is parsed inside of. Rows and
// cells are only kept by the parser when their table ancestors are in scope.
func fragmentContext(data []byte) *html.Node {
	parent := atom.Div
	tokenizer := html.NewTokenizer(bytes.NewReader(data))
scan:
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			break scan
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			switch atom.Lookup(name) {
			case atom.Tr:
				parent = atom.Tbody
			case atom.Td, atom.Th:
				parent = atom.Tr
			case atom.Tbody, atom.Thead, atom.Tfoot, atom.Caption, atom.Colgroup:
				parent = atom.Table
			case atom.Col:
				parent = atom.Colgroup
			case atom.Option, atom.Optgroup:
				parent = atom.Select
			}
			break scan
		}
	}
	return &html.Node{Type: html.ElementNode, Data: parent.String(), DataAtom: parent}
}

// ParseString is a convenience wrapper around Parse.
func ParseString(fragment string) (*formset.Element, error) {
	return Parse(strings.NewReader(fragment))
}

func convertNode(node *html.Node, keepSpace bool) *formset.Element {
	switch node.Type {
	case html.TextNode:
		if !keepSpace && strings.TrimSpace(node.Data) == "" {
			return nil
		}
		return formset.TextNode(node.Data)
	case html.ElementNode:
		el := &formset.Element{Tag: strings.ToLower(node.Data)}
		for _, attr := range node.Attr {
			key := attr.Key
			if attr.Namespace != "" {
				key = attr.Namespace + ":" + key
			}
			el.Attrs = append(el.Attrs, formset.Attr{Key: key, Value: attr.Val})
		}
		literal := node.DataAtom == atom.Textarea || node.DataAtom == atom.Pre
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if converted := convertNode(child, literal); converted != nil {
				el.Children = append(el.Children, converted)
			}
		}
		return el
	default:
		return nil
	}
}

// RenderOption configures Render.
type RenderOption func(*renderConfig)

type renderConfig struct {
	minify    bool
	container bool
}

// WithMinify compacts the rendered markup.
func WithMinify() RenderOption {
	return func(cfg *renderConfig) {
		cfg.minify = true
	}
}

// WithContainer renders the element itself instead of only its children. By
// default the synthetic container returned by Parse is omitted.
func WithContainer() RenderOption {
	return func(cfg *renderConfig) {
		cfg.container = true
	}
}

// Render writes el as HTML.
func Render(w io.Writer, el *formset.Element, opts ...RenderOption) error {
	out, err := RenderString(el, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// RenderString returns el as HTML.
func RenderString(el *formset.Element, opts ...RenderOption) (string, error) {
	if el == nil {
		return "", ErrEmptyFragment
	}
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	roots := el.Children
	if cfg.container {
		roots = []*formset.Element{el}
	}

	var buf bytes.Buffer
	for _, root := range roots {
		if err := html.Render(&buf, toNode(root)); err != nil {
			return "", fmt.Errorf("htmlrows: render: %w", err)
		}
	}

	if cfg.minify {
		return htmlmin.String(buf.String()), nil
	}
	return buf.String(), nil
}

func toNode(el *formset.Element) *html.Node {
	if el.IsText() {
		return &html.Node{Type: html.TextNode, Data: el.Text}
	}
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     el.Tag,
		DataAtom: atom.Lookup([]byte(el.Tag)),
	}
	for _, attr := range el.Attrs {
		node.Attr = append(node.Attr, html.Attribute{Key: attr.Key, Val: attr.Value})
	}
	for _, child := range el.Children {
		node.AppendChild(toNode(child))
	}
	return node
}

// SyncManagementForm copies management form values onto matching hidden
// inputs already present below root. Fields without a matching input are
// ignored.
func SyncManagementForm(root *formset.Element, fields []formset.HiddenField) {
	if root == nil || len(fields) == 0 {
		return
	}
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		values[field.Name] = field.Value
	}
	root.Walk(func(el *formset.Element) bool {
		if el.Tag != "input" {
			return true
		}
		name, _ := el.Attr("name")
		if value, ok := values[name]; ok {
			el.SetAttr("value", value)
		}
		return false
	})
}

// ManagementInputs builds hidden inputs for fields. With skip set, fields that
// already have a matching input below skip are left out.
func ManagementInputs(fields []formset.HiddenField, skip *formset.Element) []*formset.Element {
	present := make(map[string]bool)
	if skip != nil {
		skip.Walk(func(el *formset.Element) bool {
			if el.Tag == "input" {
				if name, ok := el.Attr("name"); ok {
					present[name] = true
				}
			}
			return true
		})
	}
	var inputs []*formset.Element
	for _, field := range fields {
		if present[field.Name] {
			continue
		}
		inputs = append(inputs, formset.NewElement("input",
			"type", "hidden",
			"name", field.Name,
			"value", field.Value,
			"id", "id_"+field.Name,
		))
	}
	return inputs
}
