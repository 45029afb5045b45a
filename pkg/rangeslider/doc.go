// Package rangeslider owns the state behind a dual-handle range widget. A
// Controller keeps a (lower, upper) pair inside a fixed [min, max] domain,
// normalises every raw pair delivered by a drag event, and publishes the result
// to injected display surfaces, value sinks and optional observer callbacks.
//
// The controller never rejects input: out-of-domain and crossed values are
// clamped in a fixed order (floor snap, ceiling snap, cross clamp, symmetric
// clamp) so the stored bounds always satisfy min <= lower <= upper <= max.
//
// A crossed pair is resolved by pulling the upper handle onto the lower one, so
// Update(70, 30) yields (70, 70), which is how the legacy slider behaved.
// Callers that expect the lower handle to yield instead, giving (30, 30), pass
// WithTieBreak(PullLower).
package rangeslider
