package linlogplot

import (
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
)

const (
	defaultSuggestedTicks = 4

	// maxLogMajorTicks caps how many decades get major ticks before the
	// locator starts striding over decades.
	maxLogMajorTicks = 10
)

type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	if t.NSuggestedTicks == 0 {
		t.NSuggestedTicks = defaultSuggestedTicks
	}

	if max <= min {
		panic("illegal range")
	}

	majors, majorDelta, majorMult := niceTicks(min, max, t.NSuggestedTicks)

	var ticks []plot.Tick
	for _, v := range majors {
		ticks = append(ticks, plot.Tick{Value: v, Label: formatFloatTick(v, -1)})
	}
	for _, v := range minorTickValues(min, max, majorDelta, majorMult, majors) {
		ticks = append(ticks, plot.Tick{Value: v})
	}
	return ticks
}

// LinLogTicks places ticks for an axis that is linear below LinThresh and
// logarithmic at or above it. The linear region gets evenly spaced
// nice-number ticks; the log region gets ticks at Subs multiples of powers
// of Base. Minor ticks carry no label. The threshold itself belongs to the
// log region, so it is never emitted twice.
type LinLogTicks struct {
	Base            float64   // log base; 0 means 10
	LinThresh       float64   // linear/log boundary; 0 means 2
	Subs            []float64 // mantissa subdivisions for major log ticks; empty means {1}
	NSuggestedTicks int       // suggested tick count for the linear region; 0 means 4
}

func (t LinLogTicks) Ticks(min, max float64) []plot.Tick {
	if t.Base == 0 {
		t.Base = DefaultBase
	}
	if t.LinThresh == 0 {
		t.LinThresh = DefaultLinThresh
	}
	if len(t.Subs) == 0 {
		t.Subs = []float64{1}
	}
	if t.NSuggestedTicks == 0 {
		t.NSuggestedTicks = defaultSuggestedTicks
	}

	if max <= min {
		panic("illegal range")
	}

	labels := LinLogLabels{LinThresh: t.LinThresh}

	var ticks []plot.Tick
	if min < t.LinThresh {
		ticks = append(ticks, t.linearTicks(min, max, labels)...)
	}
	if max >= t.LinThresh {
		ticks = append(ticks, t.logTicks(min, max, labels)...)
	}

	return sortedTicks(ticks)
}

func (t LinLogTicks) linearTicks(min, max float64, labels LinLogLabels) []plot.Tick {
	hi := math.Min(max, t.LinThresh)
	if hi <= min {
		return nil
	}

	majors, majorDelta, majorMult := niceTicks(min, hi, t.NSuggestedTicks)

	var ticks []plot.Tick
	var kept []float64
	for _, v := range majors {
		if v >= t.LinThresh {
			continue
		}
		kept = append(kept, v)
		ticks = append(ticks, plot.Tick{Value: v, Label: labels.Format(v)})
	}
	for _, v := range minorTickValues(min, hi, majorDelta, majorMult, kept) {
		if v >= t.LinThresh {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v})
	}
	return ticks
}

func (t LinLogTicks) logTicks(min, max float64, labels LinLogLabels) []plot.Tick {
	// Candidates below the threshold are discarded anyway, so the decade
	// walk starts there. The axis has no minimum-positive-value accessor,
	// so guard against a non-positive start to keep the logs finite.
	lo := math.Max(min, t.LinThresh)
	if lo <= 0 {
		lo = math.SmallestNonzeroFloat64
	}
	logBase := math.Log(t.Base)
	kmin := int(math.Floor(math.Log(lo) / logBase))
	kmax := int(math.Ceil(math.Log(max) / logBase))

	stride := 1
	if n := kmax - kmin + 1; n > maxLogMajorTicks {
		stride = (n + maxLogMajorTicks - 1) / maxLogMajorTicks
	}

	var ticks []plot.Tick
	for k := kmin; k <= kmax; k += stride {
		pk := math.Pow(t.Base, float64(k))
		for _, sub := range t.Subs {
			v := sub * pk
			if v < t.LinThresh || v < min || v > max {
				continue
			}
			ticks = append(ticks, plot.Tick{Value: v, Label: labels.Format(v)})
		}

		if stride > 1 {
			continue
		}
		// Unlabeled mantissa ticks fill in each decade.
		for m := 2.0; m < t.Base && m < 10; m++ {
			v := m * pk
			if v < t.LinThresh || v < min || v > max {
				continue
			}
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

// niceTicks returns evenly spaced major tick values covering [min, max] at
// round positions, along with the spacing used and its leading multiplier.
func niceTicks(min, max float64, nSuggested int) (majors []float64, majorDelta float64, majorMult int) {
	tens := math.Pow10(int(math.Floor(math.Log10(max - min))))
	n := (max - min) / tens
	for n < float64(nSuggested)-1 {
		tens /= 10
		n = (max - min) / tens
	}

	majorMult = int(n / float64(nSuggested-1))
	switch majorMult {
	case 7:
		majorMult = 6
	case 9:
		majorMult = 8
	}
	majorDelta = float64(majorMult) * tens
	val := math.Floor(min/majorDelta) * majorDelta
	var raw []float64
	for val <= max {
		if val >= min {
			raw = append(raw, val)
		}
		val += majorDelta
	}
	prec := int(math.Ceil(math.Log10(val)) - math.Floor(math.Log10(majorDelta)))
	for _, v := range raw {
		majors = append(majors, round(v, prec))
	}
	return majors, majorDelta, majorMult
}

func minorTickValues(min, max, majorDelta float64, majorMult int, majors []float64) []float64 {
	minorDelta := majorDelta / 2
	switch majorMult {
	case 3, 6:
		minorDelta = majorDelta / 3
	case 5:
		minorDelta = majorDelta / 5
	}

	// Accumulated steps drift away from the rounded majors, so coincidence
	// is checked with a tolerance rather than exact equality.
	tol := minorDelta * 1e-9

	var minors []float64
	val := math.Floor(min/minorDelta) * minorDelta
	for val <= max {
		found := false
		for _, m := range majors {
			if math.Abs(m-val) <= tol {
				found = true
			}
		}
		if val >= min && !found {
			minors = append(minors, val)
		}
		val += minorDelta
	}
	return minors
}

// sortedTicks returns ticks in ascending order with duplicate values
// collapsed, keeping the labeled tick when a major and a minor coincide.
func sortedTicks(ticks []plot.Tick) []plot.Tick {
	sort.Slice(ticks, func(i, j int) bool {
		return ticks[i].Value < ticks[j].Value
	})

	var out []plot.Tick
	for _, tick := range ticks {
		if n := len(out); n > 0 && nearEqual(out[n-1].Value, tick.Value) {
			if out[n-1].Label == "" {
				out[n-1] = tick
			}
			continue
		}
		out = append(out, tick)
	}
	return out
}

func nearEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

func round(x float64, prec int) float64 {
	if x == 0 {
		// Make sure zero is returned
		// without the negative bit set.
		return 0
	}
	// Fast path for positive precision on integers.
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	intermed := x * pow
	if math.IsInf(intermed, 0) {
		return x
	}
	if x < 0 {
		x = math.Ceil(intermed - 0.5)
	} else {
		x = math.Floor(intermed + 0.5)
	}

	if x == 0 {
		return 0
	}

	return x / pow
}

func formatFloatTick(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}
