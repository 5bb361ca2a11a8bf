package linlogplot

import (
	"math"
	"strconv"
)

// LinLogLabels formats tick values for a lin-log axis. Values inside the
// linear region get fixed-point labels whose precision grows as the
// magnitude shrinks, so small values stay legible; values at or beyond the
// threshold use the generic tick format.
type LinLogLabels struct {
	LinThresh float64
}

func (l LinLogLabels) Format(v float64) string {
	a := math.Abs(v)
	if a >= l.LinThresh {
		return formatFloatTick(v, -1)
	}

	places := 0
	if a > 0 {
		if p := -math.Floor(math.Log10(a)); p > 0 {
			places = int(p)
		}
	}
	return strconv.FormatFloat(v, 'f', places, 64)
}
