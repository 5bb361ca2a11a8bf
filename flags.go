package linlogplot

import (
	"fmt"
	"strconv"
)

// SubsFlag collects repeated -sub flag values into a mantissa subdivision
// set for the log region of a lin-log axis.
type SubsFlag struct {
	Subs    []float64
	beenSet bool
}

func (f *SubsFlag) Set(valueStr string) error {
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return err
	}
	if value < 1 {
		return fmt.Errorf("sub must be at least 1, got %v", value)
	}

	if !f.beenSet {
		f.beenSet = true
		f.Subs = nil
	}

	f.Subs = append(f.Subs, value)
	return nil
}

func (f *SubsFlag) String() string {
	return fmt.Sprint(f.Subs)
}
