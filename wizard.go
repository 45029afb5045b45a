// Package formwizard drives one step of the "new entity" wizard: it classifies
// the step's fields through the widget registry, wires a range controller per
// numeric range, a formset manager per repeating group and mirrors every change
// into the live preview card and the submission values.
package formwizard

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formwizard/pkg/formset"
	"github.com/goliatone/go-formwizard/pkg/formset/htmlrows"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/preview"
	"github.com/goliatone/go-formwizard/pkg/rangeslider"
	"github.com/goliatone/go-formwizard/pkg/widgets"
)

type formsetState struct {
	root    *formset.Element
	manager *formset.Manager
}

// Wizard owns the state of one wizard step. It is not safe for concurrent
// use: operations are expected to run one at a time, as UI events do.
type Wizard struct {
	form      model.FormModel
	registry  *widgets.Registry
	logger    *slog.Logger
	minify    bool
	rangeOpts []rangeslider.Option

	card     *preview.Card
	values   values
	widgets  map[string]string
	ranges   map[string]*rangeslider.Controller
	formsets map[string]*formsetState
}

// New builds the wizard for form.
func New(form model.FormModel, opts ...Option) (*Wizard, error) {
	w := &Wizard{
		form:     form,
		registry: widgets.NewRegistry(),
		logger:   discardLogger(),
		values:   make(values),
		widgets:  make(map[string]string, len(form.Fields)),
		ranges:   make(map[string]*rangeslider.Controller),
		formsets: make(map[string]*formsetState),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}

	form.Fields = cloneFields(form.Fields)
	if err := w.registry.Decorate(&form); err != nil {
		return nil, fmt.Errorf("formwizard: decorate %q: %w", form.Name, err)
	}
	w.form = form

	var cardOpts []preview.Option
	if w.minify {
		cardOpts = append(cardOpts, preview.WithMinify())
	}
	if form.Heading != "" {
		cardOpts = append(cardOpts, preview.WithImageAlt(form.Heading))
	}
	w.card = preview.New(form.SlotPrefix, cardOpts...)

	for _, field := range form.Fields {
		widget := w.registry.ResolveOrText(field)
		w.widgets[field.Name] = widget

		var err error
		switch widget {
		case widgets.WidgetRangeSlider:
			err = w.wireRange(field)
		case widgets.WidgetFormset:
			err = w.wireFormset(field)
		}
		if err != nil {
			return nil, fmt.Errorf("formwizard: field %q: %w", field.Name, err)
		}
		w.logger.Debug("field wired", "form", form.Name, "field", field.Name, "widget", widget)
	}
	return w, nil
}

func (w *Wizard) wireRange(field model.Field) error {
	if !field.HasRange() {
		return fmt.Errorf("%w: range widget without minimum and maximum", ErrWidgetMismatch)
	}
	lo, hi := *field.Minimum, *field.Maximum
	startLower, startUpper := lo, hi
	if len(field.Start) == 2 {
		startLower, startUpper = field.Start[0], field.Start[1]
	}

	lowerKey, upperKey := field.Name+"_lower", field.Name+"_upper"
	opts := []rangeslider.Option{
		rangeslider.WithDisplays(w.card.Slot(field.Name+"-lower"), w.card.Slot(field.Name+"-upper")),
		rangeslider.WithSinks(w.values.sink(lowerKey), w.values.sink(upperKey)),
	}
	if field.Type == model.FieldTypeInteger {
		opts = append(opts, rangeslider.WithPrecision(0))
	}
	opts = append(opts, w.rangeOpts...)

	ctrl, err := rangeslider.New(lo, hi, startLower, startUpper, opts...)
	if err != nil {
		return err
	}
	bounds := ctrl.Bounds()
	w.values[lowerKey] = rangeslider.Format(bounds.Lower)
	w.values[upperKey] = rangeslider.Format(bounds.Upper)
	w.ranges[field.Name] = ctrl
	return nil
}

func (w *Wizard) wireFormset(field model.Field) error {
	root, err := htmlrows.ParseString(field.Row)
	if err != nil {
		return err
	}
	prefix := strings.TrimSpace(field.Prefix)
	if prefix == "" {
		prefix = field.Name
	}
	manager, err := formset.New(prefix, root, formset.WithRowMatcher(func(el *formset.Element) bool {
		return !formset.IsManagementInput(prefix, el)
	}))
	if err != nil {
		return err
	}
	w.formsets[field.Name] = &formsetState{root: root, manager: manager}
	return nil
}

// Form returns the model the wizard was built from.
func (w *Wizard) Form() model.FormModel {
	return w.form
}

// Fields returns the wizard fields in declaration order.
func (w *Wizard) Fields() []model.Field {
	return append([]model.Field(nil), w.form.Fields...)
}

// Widget returns the widget resolved for the named field.
func (w *Wizard) Widget(name string) (string, bool) {
	widget, ok := w.widgets[name]
	return widget, ok
}

// Card exposes the preview card.
func (w *Wizard) Card() *preview.Card {
	return w.card
}

// SetText records a plain value (text, select or toggle field) and echoes it
// to the preview card.
func (w *Wizard) SetText(name, value string) error {
	field, widget, err := w.lookup(name)
	if err != nil {
		return err
	}
	switch widget {
	case widgets.WidgetText, widgets.WidgetToggle:
	case widgets.WidgetSelect:
		if !containsOption(field.Enum, value) {
			return fmt.Errorf("%w: %q for field %q", ErrInvalidOption, value, name)
		}
	default:
		return fmt.Errorf("%w: SetText on %s field %q", ErrWidgetMismatch, widget, name)
	}
	w.values[name] = value
	w.card.Set(name, value)
	w.logger.Debug("text updated", "field", name)
	return nil
}

// SetRichText records rich-text content. The submitted value keeps the raw
// markup; the preview shows the sanitised version.
func (w *Wizard) SetRichText(name, raw string) error {
	if _, err := w.expect(name, widgets.WidgetRichText); err != nil {
		return err
	}
	w.values[name] = raw
	w.card.SetHTML(name, raw)
	w.logger.Debug("rich text updated", "field", name, "bytes", len(raw))
	return nil
}

// SetImage records the image source and shows it on the preview card.
func (w *Wizard) SetImage(name, src string) error {
	if _, err := w.expect(name, widgets.WidgetImage); err != nil {
		return err
	}
	if err := w.card.SetImage(src); err != nil {
		return err
	}
	w.values[name] = strings.TrimSpace(src)
	w.logger.Debug("image updated", "field", name)
	return nil
}

// UpdateRange feeds a raw slider pair into the field's controller and returns
// the normalised bounds.
func (w *Wizard) UpdateRange(name string, lower, upper float64) (rangeslider.Bounds, error) {
	if _, err := w.expect(name, widgets.WidgetRangeSlider); err != nil {
		return rangeslider.Bounds{}, err
	}
	bounds := w.ranges[name].Update(lower, upper)
	w.logger.Debug("range updated", "field", name, "raw_lower", lower, "raw_upper", upper, "lower", bounds.Lower, "upper", bounds.Upper)
	return bounds, nil
}

// Range returns the current bounds of a range field.
func (w *Wizard) Range(name string) (rangeslider.Bounds, error) {
	if _, err := w.expect(name, widgets.WidgetRangeSlider); err != nil {
		return rangeslider.Bounds{}, err
	}
	return w.ranges[name].Bounds(), nil
}

// AddRow appends a blank row to a formset field. The boolean is false when
// the formset refused the row.
func (w *Wizard) AddRow(name string) (formset.Row, bool, error) {
	state, err := w.formset(name)
	if err != nil {
		return formset.Row{}, false, err
	}
	row, ok := state.manager.AddRow()
	w.logger.Debug("formset row added", "field", name, "added", ok, "rows", state.manager.Len())
	return row, ok, nil
}

// RemoveRow removes a formset row. The boolean is false when the removal was
// refused, e.g. for the only remaining row.
func (w *Wizard) RemoveRow(name string, index int) (bool, error) {
	state, err := w.formset(name)
	if err != nil {
		return false, err
	}
	ok := state.manager.RemoveRow(index)
	w.logger.Debug("formset row removed", "field", name, "index", index, "removed", ok, "rows", state.manager.Len())
	return ok, nil
}

// Rows returns the number of rows of a formset field.
func (w *Wizard) Rows(name string) (int, error) {
	state, err := w.formset(name)
	if err != nil {
		return 0, err
	}
	return state.manager.Len(), nil
}

// SetRowField writes value into the named field of a formset row.
func (w *Wizard) SetRowField(name string, index int, field, value string) error {
	state, err := w.formset(name)
	if err != nil {
		return err
	}
	el := state.manager.Field(index, field)
	if el == nil {
		return fmt.Errorf("%w: %s row %d field %q", ErrUnknownRowField, name, index, field)
	}
	formset.SetValue(el, value)
	return nil
}

// RenderFormset returns the current markup of a formset field, headed by its
// management form. Management inputs already present in the row template are
// updated in place; missing ones are emitted before the rows.
func (w *Wizard) RenderFormset(name string) (string, error) {
	state, err := w.formset(name)
	if err != nil {
		return "", err
	}
	fields := state.manager.ManagementForm()
	htmlrows.SyncManagementForm(state.root, fields)

	out := &formset.Element{Tag: state.root.Tag}
	out.Children = append(htmlrows.ManagementInputs(fields, state.root), state.root.Children...)

	var opts []htmlrows.RenderOption
	if w.minify {
		opts = append(opts, htmlrows.WithMinify())
	}
	return htmlrows.RenderString(out, opts...)
}

// RenderPreview returns the preview card markup.
func (w *Wizard) RenderPreview() (string, error) {
	return w.card.Render()
}

// Values returns the submission payload: plain values, range bounds
// ("<name>_lower", "<name>_upper"), every formset row field and the formset
// management forms.
func (w *Wizard) Values() map[string]string {
	out := w.values.clone()
	for _, state := range w.formsets {
		for key, value := range formset.Collect(state.root) {
			out[key] = value
		}
		for _, hidden := range state.manager.ManagementForm() {
			out[hidden.Name] = hidden.Value
		}
	}
	return out
}

func (w *Wizard) lookup(name string) (model.Field, string, error) {
	field, ok := w.form.Field(name)
	if !ok {
		return model.Field{}, "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return field, w.widgets[name], nil
}

func (w *Wizard) expect(name, widget string) (model.Field, error) {
	field, got, err := w.lookup(name)
	if err != nil {
		return model.Field{}, err
	}
	if got != widget {
		return model.Field{}, fmt.Errorf("%w: %q is a %s field, not %s", ErrWidgetMismatch, name, got, widget)
	}
	return field, nil
}

func (w *Wizard) formset(name string) (*formsetState, error) {
	if _, err := w.expect(name, widgets.WidgetFormset); err != nil {
		return nil, err
	}
	return w.formsets[name], nil
}

// cloneFields copies fields deep enough that decorating the copy leaves the
// caller's hint maps alone.
func cloneFields(fields []model.Field) []model.Field {
	out := make([]model.Field, len(fields))
	copy(out, fields)
	for i := range out {
		if out[i].UIHints == nil {
			continue
		}
		hints := make(map[string]string, len(out[i].UIHints))
		for key, value := range out[i].UIHints {
			hints[key] = value
		}
		out[i].UIHints = hints
	}
	return out
}

func containsOption(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
