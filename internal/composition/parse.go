package composition

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// ParseField converts the text of one input cell to a number. Surrounding
// whitespace is ignored, a decimal comma is accepted, and full-width digits are
// folded to ASCII. Empty, unparseable or non-finite text yields 0.
func ParseField(text string) float64 {
	s := strings.TrimSpace(width.Fold.String(text))
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
