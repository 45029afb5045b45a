package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formwizard/pkg/model"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetRangeSlider = "range-slider"
	WidgetFormset     = "formset"
	WidgetRichText    = "rich-text"
	WidgetImage       = "image"
	WidgetSelect      = "select"
	WidgetToggle      = "toggle"
	// WidgetText is the fallback callers use when nothing resolves.
	WidgetText = "text"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field model.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on explicit hints or registered
// matchers. Higher priority wins; ties fall back to registration order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher under name. The latest registration wins when two
// rules share name and priority.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. An explicit "widget" entry in
// Metadata or UIHints is honoured before matchers run.
func (r *Registry) Resolve(field model.Field) (string, bool) {
	if explicit := explicitWidget(field); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	if len(rules) == 0 {
		return "", false
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order > rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// ResolveOrText resolves a widget and falls back to WidgetText.
func (r *Registry) ResolveOrText(field model.Field) string {
	if widget, ok := r.Resolve(field); ok {
		return widget
	}
	return WidgetText
}

// Decorate implements model.Decorator by recording the resolved widget in
// UIHints["widget"] for every field without one.
func (r *Registry) Decorate(form *model.FormModel) error {
	if r == nil || form == nil {
		return nil
	}
	for i := range form.Fields {
		field := &form.Fields[i]
		widget, ok := r.Resolve(*field)
		if !ok {
			continue
		}
		if field.UIHints == nil {
			field.UIHints = make(map[string]string)
		}
		if field.UIHints["widget"] == "" {
			field.UIHints["widget"] = widget
		}
	}
	return nil
}

func explicitWidget(field model.Field) string {
	if widget := strings.TrimSpace(field.Metadata["widget"]); widget != "" {
		return widget
	}
	return strings.TrimSpace(field.UIHints["widget"])
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetFormset, 90, func(field model.Field) bool {
		return field.Type == model.FieldTypeArray && strings.TrimSpace(field.Row) != ""
	})

	r.Register(WidgetRangeSlider, 80, func(field model.Field) bool {
		return field.IsNumeric() && field.HasRange()
	})

	r.Register(WidgetRichText, 70, func(field model.Field) bool {
		return field.Type == model.FieldTypeString && strings.EqualFold(strings.TrimSpace(field.Format), model.FormatHTML)
	})

	r.Register(WidgetImage, 60, func(field model.Field) bool {
		return field.Type == model.FieldTypeString && strings.EqualFold(strings.TrimSpace(field.Format), model.FormatImage)
	})

	r.Register(WidgetSelect, 50, func(field model.Field) bool {
		return field.Type != model.FieldTypeArray && len(field.Enum) > 0
	})

	r.Register(WidgetToggle, 40, func(field model.Field) bool {
		return field.Type == model.FieldTypeBoolean
	})
}
