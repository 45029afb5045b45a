package formwizard

import "github.com/goliatone/go-formwizard/pkg/rangeslider"

// values is the submission payload the wizard builds up, the stand-in for the
// hidden inputs of the rendered form.
type values map[string]string

func (v values) sink(key string) rangeslider.Sink {
	return rangeslider.SinkFunc(func(value string) {
		v[key] = value
	})
}

func (v values) clone() map[string]string {
	out := make(map[string]string, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}
