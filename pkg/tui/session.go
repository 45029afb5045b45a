// Package tui drives a wizard step interactively from the terminal. Each loop
// iteration picks a field, collects input through the prompt driver and feeds
// it into the wizard, the terminal counterpart of the browser event handlers.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	formwizard "github.com/goliatone/go-formwizard"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/preview"
	"github.com/goliatone/go-formwizard/pkg/rangeslider"
	"github.com/goliatone/go-formwizard/pkg/widgets"
)

const (
	actionPreview = "Show preview"
	actionFinish  = "Finish"

	rowAdd    = "Add row"
	rowRemove = "Remove row"
	rowEdit   = "Edit row field"
	rowBack   = "Back"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session runs the interactive loop for one wizard.
type Session struct {
	wizard *formwizard.Wizard
	driver PromptDriver
	logger *slog.Logger
}

// NewSession binds a wizard to a prompt driver.
func NewSession(w *formwizard.Wizard, driver PromptDriver, opts ...Option) *Session {
	s := &Session{
		wizard: w,
		driver: driver,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Run loops until the user picks "Finish" or aborts.
func (s *Session) Run(ctx context.Context) error {
	fields := s.wizard.Fields()
	if len(fields) == 0 {
		return ErrNoFields
	}
	if heading := s.wizard.Form().Heading; heading != "" {
		if err := s.driver.Info(ctx, heading); err != nil {
			return err
		}
	}

	options := make([]string, 0, len(fields)+2)
	for _, field := range fields {
		options = append(options, fieldLabel(field))
	}
	options = append(options, actionPreview, actionFinish)

	for {
		idx, err := s.driver.Select(ctx, SelectConfig{Message: "Edit field", Options: options, PageSize: 12})
		if err != nil {
			return err
		}
		switch {
		case idx < 0 || idx >= len(options):
			continue
		case options[idx] == actionFinish:
			s.logger.Info("wizard finished", "form", s.wizard.Form().Name)
			return nil
		case options[idx] == actionPreview:
			if err := s.showPreview(ctx); err != nil {
				return err
			}
			continue
		}

		field := fields[idx]
		if err := s.editField(ctx, field); err != nil {
			if errors.Is(err, ErrAborted) || errors.Is(err, context.Canceled) {
				return err
			}
			s.logger.Warn("field update rejected", "field", field.Name, "error", err)
			if infoErr := s.driver.Info(ctx, "! "+err.Error()); infoErr != nil {
				return infoErr
			}
		}
	}
}

func (s *Session) editField(ctx context.Context, field model.Field) error {
	widget, _ := s.wizard.Widget(field.Name)
	switch widget {
	case widgets.WidgetRangeSlider:
		return s.editRange(ctx, field)
	case widgets.WidgetFormset:
		return s.editFormset(ctx, field)
	case widgets.WidgetRichText:
		text, err := s.driver.TextArea(ctx, TextAreaConfig{Message: fieldLabel(field)})
		if err != nil {
			return err
		}
		return s.wizard.SetRichText(field.Name, text)
	case widgets.WidgetImage:
		src, err := s.driver.Input(ctx, InputConfig{Message: fieldLabel(field) + " (URL)"})
		if err != nil {
			return err
		}
		return s.wizard.SetImage(field.Name, src)
	case widgets.WidgetSelect:
		idx, err := s.driver.Select(ctx, SelectConfig{Message: fieldLabel(field), Options: field.Enum})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Enum) {
			return fmt.Errorf("%w: no option selected", formwizard.ErrInvalidOption)
		}
		return s.wizard.SetText(field.Name, field.Enum[idx])
	case widgets.WidgetToggle:
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: fieldLabel(field)})
		if err != nil {
			return err
		}
		return s.wizard.SetText(field.Name, strconv.FormatBool(ok))
	default:
		text, err := s.driver.Input(ctx, InputConfig{Message: fieldLabel(field)})
		if err != nil {
			return err
		}
		return s.wizard.SetText(field.Name, text)
	}
}

func (s *Session) editRange(ctx context.Context, field model.Field) error {
	current, err := s.wizard.Range(field.Name)
	if err != nil {
		return err
	}
	lower, err := s.askNumber(ctx, fieldLabel(field)+" from", current.Lower)
	if err != nil {
		return err
	}
	upper, err := s.askNumber(ctx, fieldLabel(field)+" to", current.Upper)
	if err != nil {
		return err
	}
	bounds, err := s.wizard.UpdateRange(field.Name, lower, upper)
	if err != nil {
		return err
	}
	return s.driver.Info(ctx, fmt.Sprintf("%s: %s - %s", fieldLabel(field), rangeslider.Format(bounds.Lower), rangeslider.Format(bounds.Upper)))
}

func (s *Session) askNumber(ctx context.Context, message string, current float64) (float64, error) {
	raw, err := s.driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   rangeslider.Format(current),
		Validator: validateNumber,
	})
	if err != nil {
		return 0, err
	}
	if err := validateNumber(raw); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

func (s *Session) editFormset(ctx context.Context, field model.Field) error {
	actions := []string{rowAdd, rowRemove, rowEdit, rowBack}
	for {
		rows, err := s.wizard.Rows(field.Name)
		if err != nil {
			return err
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message: fmt.Sprintf("%s (%d rows)", fieldLabel(field), rows),
			Options: actions,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}

		switch actions[idx] {
		case rowAdd:
			row, ok, err := s.wizard.AddRow(field.Name)
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("added row %d", row.Index)
			if !ok {
				msg = "row limit reached"
			}
			if err := s.driver.Info(ctx, msg); err != nil {
				return err
			}
		case rowRemove:
			index, err := s.askIndex(ctx, rows)
			if err != nil {
				return err
			}
			ok, err := s.wizard.RemoveRow(field.Name, index)
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("removed row %d", index)
			if !ok {
				msg = "at least one row must remain"
			}
			if err := s.driver.Info(ctx, msg); err != nil {
				return err
			}
		case rowEdit:
			if err := s.editRowField(ctx, field, rows); err != nil {
				return err
			}
		case rowBack:
			return nil
		}
	}
}

func (s *Session) editRowField(ctx context.Context, field model.Field, rows int) error {
	index, err := s.askIndex(ctx, rows)
	if err != nil {
		return err
	}
	name, err := s.driver.Input(ctx, InputConfig{Message: "Row field"})
	if err != nil {
		return err
	}
	value, err := s.driver.Input(ctx, InputConfig{Message: "Value"})
	if err != nil {
		return err
	}
	return s.wizard.SetRowField(field.Name, index, strings.TrimSpace(name), value)
}

func (s *Session) askIndex(ctx context.Context, rows int) (int, error) {
	raw, err := s.driver.Input(ctx, InputConfig{
		Message: fmt.Sprintf("Row index (0-%d)", rows-1),
		Default: "0",
		Validator: func(text string) error {
			_, err := strconv.Atoi(strings.TrimSpace(text))
			return err
		},
	})
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(raw))
}

func (s *Session) showPreview(ctx context.Context) error {
	out, err := s.wizard.RenderPreview()
	if err != nil {
		return err
	}
	return s.driver.Info(ctx, out)
}

// Summary formats the card slots as "name: value" lines.
func Summary(card *preview.Card) string {
	var b strings.Builder
	for _, slot := range card.Slots() {
		fmt.Fprintf(&b, "%s: %s\n", slot.Name, slot.Value)
	}
	return b.String()
}

func validateNumber(text string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil {
		return fmt.Errorf("%q is not a number", text)
	}
	return nil
}

func fieldLabel(field model.Field) string {
	if label := strings.TrimSpace(field.Label); label != "" {
		return label
	}
	return model.DefaultLabeler(field.Name)
}
