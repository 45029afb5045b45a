package model

import (
	"strings"
	"unicode"
)

// DefaultLabeler turns a field name into a sentence-case label:
// "duration_lower" becomes "Duration lower", "priceUpper" becomes
// "Price upper".
func DefaultLabeler(name string) string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(strings.TrimSpace(name))
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			continue
		case i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]):
			flush()
		}
		current = append(current, r)
	}
	flush()

	if len(words) == 0 {
		return ""
	}
	label := []rune(strings.Join(words, " "))
	label[0] = unicode.ToUpper(label[0])
	return string(label)
}

// LabelDecorator fills empty field labels using labeler, or DefaultLabeler
// when labeler is nil.
func LabelDecorator(labeler func(string) string) Decorator {
	if labeler == nil {
		labeler = DefaultLabeler
	}
	return DecoratorFunc(func(form *FormModel) error {
		if form == nil {
			return nil
		}
		for i := range form.Fields {
			if strings.TrimSpace(form.Fields[i].Label) == "" {
				form.Fields[i].Label = labeler(form.Fields[i].Name)
			}
		}
		return nil
	})
}
