package composition

import (
	"fmt"
	"math"
	"strconv"
)

// Result is the weighted-average composition of a charge.
type Result struct {
	Percent     [ElementCount]float64
	TotalWeight float64
}

// Empty reports whether the charge had no positive total weight. An empty
// result is the "no input" condition, not an error.
func (r Result) Empty() bool {
	return r.TotalWeight <= 0
}

// Compute returns the weighted average of every element column, each value
// truncated toward zero to three decimals. A total weight of zero or less
// yields an all-zero result.
func Compute(v Values) Result {
	var total float64
	for r := range v {
		total += v[r][WeightColumn]
	}
	if total <= 0 {
		return Result{}
	}

	res := Result{TotalWeight: total}
	for col := 0; col < ElementCount; col++ {
		var sum float64
		for r := range v {
			sum += v[r][col] * v[r][WeightColumn]
		}
		res.Percent[col] = Trunc3(sum / total)
	}
	return res
}

// ComputeGrid parses g and computes its result.
func ComputeGrid(g Grid) Result {
	return Compute(g.Values())
}

// Trunc3 drops everything past the third decimal without rounding. Negative
// values truncate toward zero, not toward negative infinity. The multiply
// happens in binary floating point, so values that sit exactly on a
// thousandth boundary may land one step low.
func Trunc3(v float64) float64 {
	var t float64
	if v >= 0 {
		t = math.Floor(v*1000) / 1000
	} else {
		t = -math.Floor(math.Abs(v)*1000) / 1000
	}
	if t == 0 {
		// normalise -0
		return 0
	}
	return t
}

// FormatPercent renders an element percentage for display.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// FormatWeight renders a weight with six significant digits, dropping
// trailing zeros.
func FormatWeight(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
