package rangeslider

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	texts []string
}

func (r *recorder) SetText(text string)   { r.texts = append(r.texts, text) }
func (r *recorder) SetValue(value string) { r.texts = append(r.texts, value) }

func (r *recorder) last() string {
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[len(r.texts)-1]
}

func TestNew_RejectsInvalidDomain(t *testing.T) {
	cases := []struct {
		name     string
		min, max float64
	}{
		{name: "inverted", min: 10, max: 0},
		{name: "nan min", min: math.NaN(), max: 10},
		{name: "infinite max", min: 0, max: math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.min, tc.max, 0, 0); !errors.Is(err, ErrInvalidDomain) {
				t.Fatalf("expected ErrInvalidDomain, got %v", err)
			}
		})
	}
}

func TestNew_ClampsAndReordersStartValues(t *testing.T) {
	ctrl, err := New(0, 100, 150, -20)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := Bounds{Lower: 0, Upper: 100}
	if diff := cmp.Diff(want, ctrl.Bounds()); diff != "" {
		t.Fatalf("start bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_EchoesStartValuesToDisplaysOnly(t *testing.T) {
	displayLower, displayUpper := &recorder{}, &recorder{}
	sinkLower, sinkUpper := &recorder{}, &recorder{}
	calls := 0

	_, err := New(0, 250, 10, 50,
		WithDisplays(displayLower, displayUpper),
		WithSinks(sinkLower, sinkUpper),
		WithObserver(Observer{OnLowerChanged: func(float64) { calls++ }}),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if displayLower.last() != "10" || displayUpper.last() != "50" {
		t.Fatalf("expected displays 10/50, got %q/%q", displayLower.last(), displayUpper.last())
	}
	if len(sinkLower.texts)+len(sinkUpper.texts) != 0 {
		t.Fatalf("expected sinks untouched at construction, got %v %v", sinkLower.texts, sinkUpper.texts)
	}
	if calls != 0 {
		t.Fatalf("expected no observer calls at construction, got %d", calls)
	}
}

func TestUpdate_ClampPolicy(t *testing.T) {
	cases := []struct {
		name         string
		min, max     float64
		opts         []Option
		lower, upper float64
		want         Bounds
	}{
		{name: "in range", min: 0, max: 100, lower: 20, upper: 80, want: Bounds{20, 80}},
		{name: "both outside", min: 0, max: 100, lower: -5, upper: 105, want: Bounds{0, 100}},
		{name: "crossed pulls upper", min: 0, max: 100, lower: 70, upper: 30, want: Bounds{70, 70}},
		{name: "crossed pulls lower", min: 0, max: 100, opts: []Option{WithTieBreak(PullLower)}, lower: 70, upper: 30, want: Bounds{30, 30}},
		{name: "under floor then crossed", min: 0, max: 100, lower: -10, upper: -20, want: Bounds{0, 0}},
		{name: "both above max", min: 0, max: 100, lower: 150, upper: 200, want: Bounds{100, 100}},
		{name: "non zero floor", min: 1, max: 50, lower: -3, upper: 10, want: Bounds{1, 10}},
		{name: "legacy zero floor lifted to min", min: 1, max: 50, opts: []Option{WithLegacyZeroFloor()}, lower: -3, upper: 10, want: Bounds{1, 10}},
		{name: "legacy zero floor negative domain", min: -10, max: 10, opts: []Option{WithLegacyZeroFloor()}, lower: -20, upper: 5, want: Bounds{0, 5}},
		{name: "nan values", min: 0, max: 48, lower: math.NaN(), upper: math.NaN(), want: Bounds{0, 48}},
		{name: "rounding", min: 0, max: 250, opts: []Option{WithPrecision(0)}, lower: 10.4, upper: 99.6, want: Bounds{10, 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, err := New(tc.min, tc.max, tc.min, tc.max, tc.opts...)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			got := ctrl.Update(tc.lower, tc.upper)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("bounds mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.want, ctrl.Bounds()); diff != "" {
				t.Fatalf("stored bounds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdate_InvariantHoldsForAnyInput(t *testing.T) {
	domains := [][2]float64{{0, 100}, {1, 50}, {-10, 10}, {5, 5}}
	samples := []float64{-1000, -10.5, -1, 0, 0.5, 1, 5, 9.99, 10, 49, 50, 51, 99, 100, 1000, math.Inf(1), math.Inf(-1), math.NaN()}
	ties := []TieBreak{PullUpper, PullLower}

	for _, domain := range domains {
		for _, tie := range ties {
			ctrl, err := New(domain[0], domain[1], domain[0], domain[1], WithTieBreak(tie), WithLegacyZeroFloor())
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			for _, lower := range samples {
				for _, upper := range samples {
					got := ctrl.Update(lower, upper)
					if !(domain[0] <= got.Lower && got.Lower <= got.Upper && got.Upper <= domain[1]) {
						t.Fatalf("domain %v tie %d update(%v, %v) broke invariant: %+v", domain, tie, lower, upper, got)
					}
				}
			}
		}
	}
}

func TestUpdate_PublishesEveryCall(t *testing.T) {
	displayLower, displayUpper := &recorder{}, &recorder{}
	sinkLower, sinkUpper := &recorder{}, &recorder{}
	var lowers, uppers []float64

	ctrl, err := New(0, 48, 0, 48,
		WithDisplays(displayLower, displayUpper),
		WithSinks(sinkLower, sinkUpper),
		WithObserver(Observer{
			OnLowerChanged: func(v float64) { lowers = append(lowers, v) },
			OnUpperChanged: func(v float64) { uppers = append(uppers, v) },
		}),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	first := ctrl.Update(2, 12)
	second := ctrl.Update(2, 12)
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}

	if diff := cmp.Diff([]float64{2, 2}, lowers); diff != "" {
		t.Fatalf("lower callbacks mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{12, 12}, uppers); diff != "" {
		t.Fatalf("upper callbacks mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"2", "2"}, sinkLower.texts); diff != "" {
		t.Fatalf("lower sink mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"48", "12", "12"}, displayUpper.texts); diff != "" {
		t.Fatalf("upper display mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate_PartialObserver(t *testing.T) {
	var uppers []float64
	ctrl, err := New(0, 10, 0, 10, WithObserver(Observer{
		OnUpperChanged: func(v float64) { uppers = append(uppers, v) },
	}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctrl.Update(1, 9)
	if diff := cmp.Diff([]float64{9}, uppers); diff != "" {
		t.Fatalf("upper callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestFuncAdaptersAndFormatter(t *testing.T) {
	var shown, stored string
	ctrl, err := New(0, 250, 0, 250,
		WithDisplays(DisplayFunc(func(s string) { shown = s }), nil),
		WithSinks(nil, SinkFunc(func(s string) { stored = s })),
		WithFormatter(func(v float64) string { return "£" + Format(v) }),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctrl.Update(12.5, 99)
	if shown != "£12.5" || stored != "£99" {
		t.Fatalf("unexpected published values %q / %q", shown, stored)
	}
}
