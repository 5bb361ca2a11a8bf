// Package linlogplot provides a gonum/plot axis scale that is linear within
// a threshold of zero and logarithmic beyond it, along with the matching
// tick marker and label format.
package linlogplot

import (
	"fmt"

	"gonum.org/v1/plot"
)

// ScaleName is the identifier the lin-log scale is registered under.
const ScaleName = "linlog"

// Defaults for Config fields left at their zero value aren't assumed; use
// DefaultConfig to start from the standard parameters.
const (
	DefaultBase      = 10.0
	DefaultLinThresh = 2.0
	DefaultLinScale  = 1.0
)

// Config collects the scale parameters. Base, LinThresh, and LinScale are
// validated at construction; Subs defaults to {1} and Clip to Mask().
type Config struct {
	Base      float64
	LinThresh float64
	LinScale  float64
	Subs      []float64
	Clip      ClipPolicy
}

// DefaultConfig returns the standard parameters: base 10, linthresh 2,
// linscale 1, subs {1}, mask clipping.
func DefaultConfig() Config {
	return Config{
		Base:      DefaultBase,
		LinThresh: DefaultLinThresh,
		LinScale:  DefaultLinScale,
		Subs:      []float64{1},
		Clip:      Mask(),
	}
}

// LinLogScale adapts a LinLogTransform to the plot.Normalizer contract and
// installs the matching tick marker on an axis. It holds no state beyond
// the configuration captured at construction, so a single value may be
// shared across axes and goroutines.
type LinLogScale struct {
	transform *LinLogTransform
	subs      []float64
	clip      ClipPolicy
}

var _ plot.Normalizer = (*LinLogScale)(nil)

// New builds a scale from cfg. It returns an error wrapping ErrBadConfig
// when base <= 1, linthresh <= 0, or linscale <= 0.
func New(cfg Config) (*LinLogScale, error) {
	transform, err := NewLinLogTransform(cfg.Base, cfg.LinThresh, cfg.LinScale)
	if err != nil {
		return nil, err
	}

	subs := cfg.Subs
	if len(subs) == 0 {
		subs = []float64{1}
	}

	return &LinLogScale{
		transform: transform,
		subs:      subs,
		clip:      cfg.Clip,
	}, nil
}

func (s *LinLogScale) Base() float64      { return s.transform.Base() }
func (s *LinLogScale) LinThresh() float64 { return s.transform.LinThresh() }
func (s *LinLogScale) LinScale() float64  { return s.transform.LinScale() }

// Transform returns the owned forward transform.
func (s *LinLogScale) Transform() *LinLogTransform { return s.transform }

// Clip pre-sanitizes data values according to the configured clip policy:
// non-positive inputs become NaN under Mask or the substitute value under
// ClipTo. Values the policy lets through are ready for log-domain use.
func (s *LinLogScale) Clip(values []float64) []float64 {
	return s.clip.Apply(values)
}

// Normalize implements plot.Normalizer by forward-transforming min, max,
// and x. The transform itself is odd-symmetric, so axes spanning zero work
// without clipping.
func (s *LinLogScale) Normalize(min, max, x float64) float64 {
	if min == max {
		return 0.5
	}
	tmin := s.transform.At(min)
	tmax := s.transform.At(max)
	return (s.transform.At(x) - tmin) / (tmax - tmin)
}

// Install sets this scale and its default tick marker on the axis.
func (s *LinLogScale) Install(a *plot.Axis) {
	a.Scale = s
	a.Tick.Marker = LinLogTicks{
		Base:      s.Base(),
		LinThresh: s.LinThresh(),
		Subs:      s.subs,
	}
}

// Factory builds a scale from a configuration, as stored in the registry.
type Factory func(cfg Config) (*LinLogScale, error)

var registry = map[string]Factory{}

// Register makes a scale constructor available under name, replacing any
// previous registration.
func Register(name string, f Factory) {
	registry[name] = f
}

// ByName looks up a registered scale constructor.
func ByName(name string) (Factory, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("linlogplot: no scale registered under %q", name)
	}
	return f, nil
}

func init() {
	Register(ScaleName, New)
}
