package rangeslider

// Display receives the textual echo of a bound, e.g. a label next to the
// slider or a preview card slot.
type Display interface {
	SetText(text string)
}

// Sink receives the value of a bound, e.g. the hidden input submitted with the
// form.
type Sink interface {
	SetValue(value string)
}

// DisplayFunc adapts a function to the Display interface.
type DisplayFunc func(text string)

// SetText implements Display.
func (f DisplayFunc) SetText(text string) {
	if f != nil {
		f(text)
	}
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(value string)

// SetValue implements Sink.
func (f SinkFunc) SetValue(value string) {
	if f != nil {
		f(value)
	}
}

// Observer carries the optional change callbacks. Either slot may be nil; only
// the populated ones are invoked.
type Observer struct {
	OnLowerChanged func(lower float64)
	OnUpperChanged func(upper float64)
}

func (o Observer) notify(b Bounds) {
	if o.OnLowerChanged != nil {
		o.OnLowerChanged(b.Lower)
	}
	if o.OnUpperChanged != nil {
		o.OnUpperChanged(b.Upper)
	}
}
