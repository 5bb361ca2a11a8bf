package linlogplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinLogLabels(t *testing.T) {
	labels := LinLogLabels{LinThresh: 2}

	for _, tt := range []struct {
		value float64
		want  string
	}{
		// Linear region: precision grows as the magnitude shrinks.
		{0.5, "0.5"},
		{0.05, "0.05"},
		{0.123, "0.1"},
		{1, "1"},
		{-0.5, "-0.5"},
		{0, "0"},
		// Log region: generic tick format.
		{50, "50"},
		{-50, "-50"},
		{3.14, "3.14"},
		{1e6, "1e+06"},
	} {
		assert.Equal(t, tt.want, labels.Format(tt.value), "format(%v)", tt.value)
	}
}

func TestLinLogLabelsNeverPanics(t *testing.T) {
	labels := LinLogLabels{LinThresh: 2}
	assert.NotPanics(t, func() {
		for _, v := range []float64{0, -0, 1e-300, -1e-300, 1e300, -1e300} {
			labels.Format(v)
		}
	})
}
