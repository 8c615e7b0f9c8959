// Package report renders a charge grid and its computed composition as plain
// text.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"charge-calculator/internal/composition"
)

// Write renders the grid followed by the result. Empty cells print as "-".
func Write(w io.Writer, g composition.Grid, res composition.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "Material\t")
	for _, e := range composition.Elements {
		fmt.Fprintf(tw, "%%%s\t", e)
	}
	fmt.Fprint(tw, "Weight\t\n")

	for r, row := range g {
		fmt.Fprintf(tw, "%s\t", composition.Materials[r])
		for _, cell := range row {
			if cell == "" {
				cell = "-"
			}
			fmt.Fprintf(tw, "%s\t", cell)
		}
		fmt.Fprint(tw, "\n")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if res.Empty() {
		_, err := fmt.Fprintln(w, "Total weight is zero. Please enter weights.")
		return err
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, e := range composition.Elements {
		fmt.Fprintf(tw, "%%%s\t%s\n", e, composition.FormatPercent(res.Percent[i]))
	}
	fmt.Fprintf(tw, "Total Weight\t%s\n", composition.FormatWeight(res.TotalWeight))
	return tw.Flush()
}
