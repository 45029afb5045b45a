// Package model defines the typed wizard model consumed by the widget registry
// and the wizard session. Field carries the numeric domain (minimum, maximum,
// start pair) used by range widgets and the row template and name prefix used
// by formsets. Metadata and UIHints stay free-form string maps; the "widget"
// hint in either map overrides registry resolution.
package model
