package formwizard

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-formwizard/pkg/rangeslider"
	"github.com/goliatone/go-formwizard/pkg/widgets"
)

// Option configures a Wizard.
type Option func(*Wizard)

// WithLogger routes debug traces of wizard operations to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Wizard) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithRegistry overrides the widget registry used to classify fields.
func WithRegistry(registry *widgets.Registry) Option {
	return func(w *Wizard) {
		if registry != nil {
			w.registry = registry
		}
	}
}

// WithMinify compacts rendered preview and formset markup.
func WithMinify() Option {
	return func(w *Wizard) {
		w.minify = true
	}
}

// WithRangeOptions appends options applied to every range controller, e.g.
// rangeslider.WithTieBreak.
func WithRangeOptions(opts ...rangeslider.Option) Option {
	return func(w *Wizard) {
		w.rangeOpts = append(w.rangeOpts, opts...)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
