// Package preview keeps the live preview card shown next to the wizard form.
// Every form change lands in a named slot; Render turns the slots into the
// card markup.
package preview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formwizard/internal/htmlmin"
)

// ImageSlot is the slot name used by SetImage.
const ImageSlot = "image"

// ErrInvalidImage is returned when an image source is neither http(s) nor an
// inline data:image URL.
var ErrInvalidImage = errors.New("preview: invalid image source")

// Slot is a single named preview value.
type Slot struct {
	ID    string
	Name  string
	Value string
	HTML  bool
}

// Option configures a Card.
type Option func(*Card)

// WithMinify compacts the rendered card.
func WithMinify() Option {
	return func(c *Card) {
		c.minify = true
	}
}

// WithTemplate replaces the embedded card template with a pongo2 template
// source. Slots are exposed as "slots", the image as "image" and the card id
// as "id".
func WithTemplate(source string) Option {
	return func(c *Card) {
		if strings.TrimSpace(source) != "" {
			c.templateSource = source
		}
	}
}

// WithImageAlt sets the alternative text of the card image.
func WithImageAlt(alt string) Option {
	return func(c *Card) {
		c.imageAlt = strings.TrimSpace(alt)
	}
}

// Card holds the preview slots in first-write order.
type Card struct {
	prefix         string
	order          []string
	slots          map[string]*Slot
	minify         bool
	templateSource string
	imageAlt       string
}

// New creates an empty card. Slot ids are "<prefix>-<name>"; an empty prefix
// defaults to "preview".
func New(prefix string, opts ...Option) *Card {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "preview"
	}
	c := &Card{
		prefix: prefix,
		slots:  make(map[string]*Slot),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// ID returns the slot id for name.
func (c *Card) ID(name string) string {
	return c.prefix + "-" + normaliseName(name)
}

// Set stores a plain-text value. It is escaped when rendered.
func (c *Card) Set(name, text string) {
	c.put(name, text, false)
}

// SetHTML stores sanitised rich text.
func (c *Card) SetHTML(name, raw string) {
	c.put(name, sanitizeRichText(raw), true)
}

// SetImage stores the card image source.
func (c *Card) SetImage(src string) error {
	clean, ok := cleanImageSource(src)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidImage, src)
	}
	c.put(ImageSlot, clean, false)
	return nil
}

// Value returns the stored value for name.
func (c *Card) Value(name string) (string, bool) {
	slot, ok := c.slots[normaliseName(name)]
	if !ok {
		return "", false
	}
	return slot.Value, true
}

// Slots returns a copy of the slots in first-write order.
func (c *Card) Slots() []Slot {
	out := make([]Slot, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, *c.slots[name])
	}
	return out
}

// Slot returns a writer bound to a plain-text slot. It satisfies the display
// contract of range controllers.
func (c *Card) Slot(name string) *SlotWriter {
	return &SlotWriter{card: c, name: name}
}

// SlotWriter writes plain text into one slot.
type SlotWriter struct {
	card *Card
	name string
}

// SetText stores text in the bound slot.
func (w *SlotWriter) SetText(text string) {
	if w == nil || w.card == nil {
		return
	}
	w.card.Set(w.name, text)
}

// Render returns the card markup.
func (c *Card) Render() (string, error) {
	tpl, err := c.template()
	if err != nil {
		return "", err
	}

	var image *Slot
	slots := make([]Slot, 0, len(c.order))
	for _, slot := range c.Slots() {
		if slot.Name == ImageSlot {
			img := slot
			image = &img
			continue
		}
		slots = append(slots, slot)
	}

	ctx := pongo2.Context{
		"id":       c.prefix + "-card",
		"slots":    slots,
		"imageAlt": c.imageAlt,
	}
	if image != nil {
		ctx["image"] = image
	}

	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("preview: execute template: %w", err)
	}
	if c.minify {
		return htmlmin.String(out), nil
	}
	return out, nil
}

func (c *Card) template() (*pongo2.Template, error) {
	set := pongo2.NewSet("preview", pongo2.NewFSLoader(templatesFS))
	if c.templateSource != "" {
		tpl, err := set.FromString(c.templateSource)
		if err != nil {
			return nil, fmt.Errorf("preview: parse template: %w", err)
		}
		return tpl, nil
	}
	tpl, err := set.FromFile(cardTemplate)
	if err != nil {
		return nil, fmt.Errorf("preview: load template %q: %w", cardTemplate, err)
	}
	return tpl, nil
}

func (c *Card) put(name, value string, html bool) {
	key := normaliseName(name)
	if key == "" {
		return
	}
	slot, ok := c.slots[key]
	if !ok {
		slot = &Slot{ID: c.ID(key), Name: key}
		c.slots[key] = slot
		c.order = append(c.order, key)
	}
	slot.Value = value
	slot.HTML = html
}

func normaliseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
