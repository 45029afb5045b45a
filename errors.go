package formwizard

import "errors"

var (
	// ErrUnknownField is returned when an operation names a field the wizard
	// does not define.
	ErrUnknownField = errors.New("formwizard: unknown field")
	// ErrWidgetMismatch is returned when an operation does not fit the field's
	// widget, e.g. UpdateRange on a text field.
	ErrWidgetMismatch = errors.New("formwizard: operation does not match widget")
	// ErrInvalidOption is returned when a select value is not one of the
	// field's options.
	ErrInvalidOption = errors.New("formwizard: value is not an allowed option")
	// ErrUnknownRowField is returned when a formset row or row field is missing.
	ErrUnknownRowField = errors.New("formwizard: unknown formset row field")
)
