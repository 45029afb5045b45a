package formset

import (
	"regexp"
	"strconv"
	"strings"
)

// PrefixPlaceholder is the index placeholder used by empty-form templates.
const PrefixPlaceholder = "__prefix__"

// renumberAttrs lists the attributes that carry row-indexed identifiers.
var renumberAttrs = []string{"id", "name", "for"}

type indexer struct {
	pattern *regexp.Regexp
	// literal is the prefix escaped for use in a replacement template.
	literal string
}

// newIndexer compiles the "<prefix>-<N>-" matcher. The prefix must start the
// value or follow a non-alphanumeric character ("id_form-0-x" matches,
// "subform-1-x" does not for prefix "form").
func newIndexer(prefix string) *indexer {
	expr := `(^|[^A-Za-z0-9])` + regexp.QuoteMeta(prefix) + `-(\d+|` + PrefixPlaceholder + `)-`
	return &indexer{
		pattern: regexp.MustCompile(expr),
		literal: strings.ReplaceAll(prefix, "$", "$$"),
	}
}

func (ix *indexer) rewrite(value string, index int) string {
	replacement := "${1}" + ix.literal + "-" + strconv.Itoa(index) + "-"
	return ix.pattern.ReplaceAllString(value, replacement)
}

// apply rewrites every indexed identifier below el to index.
func (ix *indexer) apply(el *Element, index int) {
	el.Walk(func(node *Element) bool {
		if node.IsText() {
			return false
		}
		for i := range node.Attrs {
			if !isRenumberAttr(node.Attrs[i].Key) {
				continue
			}
			node.Attrs[i].Value = ix.rewrite(node.Attrs[i].Value, index)
		}
		return true
	})
}

func isRenumberAttr(key string) bool {
	for _, candidate := range renumberAttrs {
		if key == candidate {
			return true
		}
	}
	return false
}

// FieldName returns the conventional "<prefix>-<index>-<field>" name.
func FieldName(prefix string, index int, field string) string {
	return prefix + "-" + strconv.Itoa(index) + "-" + field
}
