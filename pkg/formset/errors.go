package formset

import "errors"

var (
	// ErrNilContainer is returned when the manager has no container to own.
	ErrNilContainer = errors.New("formset: container is nil")
	// ErrEmptyPrefix is returned when no field-name prefix is configured.
	ErrEmptyPrefix = errors.New("formset: prefix is empty")
	// ErrNoRows is returned when the container holds fewer rows than the
	// configured minimum; the last row is needed as clone template.
	ErrNoRows = errors.New("formset: not enough rows")
)
