package linlogplot

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadConfig is returned by constructors when a scale parameter is out of
// its valid range.
var ErrBadConfig = errors.New("linlogplot: bad scale configuration")

// LinLogTransform maps data coordinates to display coordinates: linear
// within LinThresh of zero, logarithmic beyond it. The mapping is
// odd-symmetric, so negative values mirror positive ones exactly, and the
// two branches agree at the threshold.
type LinLogTransform struct {
	base      float64
	linthresh float64
	linscale  float64

	logBase     float64
	linscaleAdj float64
}

// NewLinLogTransform validates the scale parameters and precomputes the
// derived constants. base must be larger than 1; linthresh and linscale must
// be positive.
func NewLinLogTransform(base, linthresh, linscale float64) (*LinLogTransform, error) {
	if base <= 1 {
		return nil, fmt.Errorf("%w: base must be larger than 1, got %v", ErrBadConfig, base)
	}
	if linthresh <= 0 {
		return nil, fmt.Errorf("%w: linthresh must be positive, got %v", ErrBadConfig, linthresh)
	}
	if linscale <= 0 {
		return nil, fmt.Errorf("%w: linscale must be positive, got %v", ErrBadConfig, linscale)
	}

	return &LinLogTransform{
		base:      base,
		linthresh: linthresh,
		linscale:  linscale,
		// The adjustment makes one linscale unit span the same display
		// distance as the fraction 1-1/base of a decade, so tick density
		// stays continuous across the threshold.
		logBase:     math.Log(base),
		linscaleAdj: linscale / (1 - 1/base),
	}, nil
}

func (t *LinLogTransform) Base() float64      { return t.base }
func (t *LinLogTransform) LinThresh() float64 { return t.linthresh }
func (t *LinLogTransform) LinScale() float64  { return t.linscale }

// At maps a single data value to display coordinates. NaN maps to NaN.
func (t *LinLogTransform) At(v float64) float64 {
	a := math.Abs(v)
	if a < t.linthresh {
		return v * t.linscaleAdj
	}
	out := t.linthresh * (t.linscaleAdj + math.Log(a/t.linthresh)/t.logBase)
	return math.Copysign(out, v)
}

// Transform maps values elementwise, returning a new slice. Invalid
// elements degrade to NaN rather than aborting the batch.
func (t *LinLogTransform) Transform(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = t.At(v)
	}
	return out
}

// Inverted returns the inverse transform built from the same parameters.
func (t *LinLogTransform) Inverted() *InvertedLinLogTransform {
	inv, _ := NewInvertedLinLogTransform(t.base, t.linthresh, t.linscale)
	return inv
}

// InvertedLinLogTransform is the exact algebraic inverse of LinLogTransform
// for the same base, linthresh, and linscale.
type InvertedLinLogTransform struct {
	base      float64
	linthresh float64
	linscale  float64

	logBase      float64
	linscaleAdj  float64
	invlinthresh float64
}

// NewInvertedLinLogTransform validates the scale parameters and precomputes
// the display-space threshold invlinthresh, the forward image of linthresh.
func NewInvertedLinLogTransform(base, linthresh, linscale float64) (*InvertedLinLogTransform, error) {
	fwd, err := NewLinLogTransform(base, linthresh, linscale)
	if err != nil {
		return nil, err
	}

	return &InvertedLinLogTransform{
		base:         base,
		linthresh:    linthresh,
		linscale:     linscale,
		logBase:      fwd.logBase,
		linscaleAdj:  fwd.linscaleAdj,
		invlinthresh: fwd.At(linthresh),
	}, nil
}

func (t *InvertedLinLogTransform) Base() float64      { return t.base }
func (t *InvertedLinLogTransform) LinThresh() float64 { return t.linthresh }
func (t *InvertedLinLogTransform) LinScale() float64  { return t.linscale }

// At maps a single display value back to data coordinates.
func (t *InvertedLinLogTransform) At(v float64) float64 {
	a := math.Abs(v)
	if a < t.invlinthresh {
		return v / t.linscaleAdj
	}
	out := t.linthresh * math.Exp(t.logBase*(a/t.linthresh-t.linscaleAdj))
	return math.Copysign(out, v)
}

// Transform maps values elementwise, returning a new slice.
func (t *InvertedLinLogTransform) Transform(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = t.At(v)
	}
	return out
}

// Inverted returns the forward transform built from the same parameters.
func (t *InvertedLinLogTransform) Inverted() *LinLogTransform {
	fwd, _ := NewLinLogTransform(t.base, t.linthresh, t.linscale)
	return fwd
}

// ClipPolicy decides what happens to non-positive inputs before they reach
// log-domain consumers. Mask turns them into NaN so they are omitted from
// the plot; ClipTo substitutes a fixed positive value. Positive inputs pass
// through unchanged either way.
type ClipPolicy struct {
	clip  bool
	value float64
}

// Mask returns the policy that maps non-positive inputs to NaN.
func Mask() ClipPolicy { return ClipPolicy{} }

// ClipTo returns the policy that replaces non-positive inputs with v.
func ClipTo(v float64) ClipPolicy { return ClipPolicy{clip: true, value: v} }

// At sanitizes a single value.
func (p ClipPolicy) At(v float64) float64 {
	if v > 0 {
		return v
	}
	if p.clip {
		return p.value
	}
	return math.NaN()
}

// Apply sanitizes values elementwise, returning a new slice.
func (p ClipPolicy) Apply(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = p.At(v)
	}
	return out
}
