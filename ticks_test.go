package linlogplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func labeled(ticks []plot.Tick) []float64 {
	var vals []float64
	for _, tick := range ticks {
		if tick.Label != "" {
			vals = append(vals, tick.Value)
		}
	}
	return vals
}

func assertAscendingIn(t *testing.T, ticks []plot.Tick, min, max float64) {
	t.Helper()
	for i, tick := range ticks {
		assert.GreaterOrEqual(t, tick.Value, min)
		assert.LessOrEqual(t, tick.Value, max)
		if i > 0 {
			assert.Greater(t, tick.Value, ticks[i-1].Value, "ticks not ascending/deduplicated at %d", i)
		}
	}
}

func TestLinLogTicksSeparation(t *testing.T) {
	ticks := LinLogTicks{Base: 10, LinThresh: 2}.Ticks(0.01, 100)
	require.NotEmpty(t, ticks)
	assertAscendingIn(t, ticks, 0.01, 100)

	// At or above the threshold every tick sits at an integer mantissa
	// multiple of a power of ten.
	for _, tick := range ticks {
		if tick.Value < 2 {
			continue
		}
		exp := math.Floor(math.Log10(tick.Value))
		mant := tick.Value / math.Pow10(int(exp))
		assert.InDelta(t, math.Round(mant), mant, 1e-9, "tick %v is not on the log grid", tick.Value)
	}

	// Labeled log-region ticks are plain powers of ten with default subs.
	var logMajors []float64
	for _, v := range labeled(ticks) {
		if v >= 2 {
			logMajors = append(logMajors, v)
		}
	}
	assert.Equal(t, []float64{10, 100}, logMajors)

	// Below the threshold ticks come from the even generator: equal gaps.
	var lin []float64
	for _, tick := range ticks {
		if tick.Value < 2 {
			lin = append(lin, tick.Value)
		}
	}
	require.Greater(t, len(lin), 2)
	gap := lin[1] - lin[0]
	for i := 1; i < len(lin); i++ {
		assert.InDelta(t, gap, lin[i]-lin[i-1], 1e-6, "uneven linear gap at %v", lin[i])
	}

	// The threshold itself is never double-counted.
	n := 0
	for _, tick := range ticks {
		if math.Abs(tick.Value-2) < 1e-9 {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestLinLogTicksAllLog(t *testing.T) {
	ticks := LinLogTicks{Base: 10, LinThresh: 2}.Ticks(5, 5000)
	require.NotEmpty(t, ticks)
	assertAscendingIn(t, ticks, 5, 5000)
	assert.Equal(t, []float64{10, 100, 1000}, labeled(ticks))
}

func TestLinLogTicksNegativeRange(t *testing.T) {
	// Entirely below the threshold, including negative values: the linear
	// generator covers the whole range and no log ticks appear.
	ticks := LinLogTicks{Base: 10, LinThresh: 2}.Ticks(-10, 1)
	require.NotEmpty(t, ticks)
	assertAscendingIn(t, ticks, -10, 1)

	for _, tick := range ticks {
		assert.Less(t, tick.Value, 2.0)
	}
	assert.Contains(t, labeled(ticks), 0.0)
}

func TestLinLogTicksSpanningZero(t *testing.T) {
	ticks := LinLogTicks{Base: 10, LinThresh: 2}.Ticks(-10, 100)
	require.NotEmpty(t, ticks)
	assertAscendingIn(t, ticks, -10, 100)

	majors := labeled(ticks)
	assert.Contains(t, majors, 0.0)
	assert.Contains(t, majors, 10.0)
	assert.Contains(t, majors, 100.0)
}

func TestLinLogTicksStridesWideRanges(t *testing.T) {
	ticks := LinLogTicks{Base: 10, LinThresh: 2}.Ticks(2, 1e15)
	require.NotEmpty(t, ticks)
	assertAscendingIn(t, ticks, 2, 1e15)
	assert.LessOrEqual(t, len(ticks), maxLogMajorTicks)
}

func TestLinLogTicksSubs(t *testing.T) {
	ticks := LinLogTicks{Base: 10, LinThresh: 2, Subs: []float64{1, 5}}.Ticks(2, 100)
	majors := labeled(ticks)
	assert.Equal(t, []float64{5, 10, 50, 100}, majors)
}

func TestLinLogTicksPanicsOnIllegalRange(t *testing.T) {
	assert.Panics(t, func() { LinLogTicks{}.Ticks(1, 1) })
	assert.Panics(t, func() { PreciseTicks{}.Ticks(2, 1) })
}

func TestPreciseTicks(t *testing.T) {
	ticks := PreciseTicks{NSuggestedTicks: 4}.Ticks(0, 10)
	require.NotEmpty(t, ticks)

	assert.Equal(t, []float64{0, 3, 6, 9}, labeled(ticks))
	for _, tick := range ticks {
		assert.GreaterOrEqual(t, tick.Value, 0.0)
		assert.LessOrEqual(t, tick.Value, 10.0)
	}
}
