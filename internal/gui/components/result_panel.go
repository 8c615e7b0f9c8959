package components

import (
	"charge-calculator/internal/composition"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ResultPanel shows the final percentage of every element and the total weight
// in read-only fields
type ResultPanel struct {
	container   *fyne.Container
	percentages [composition.ElementCount]*widget.Entry
	totalWeight *widget.Entry
}

func NewResultPanel() *ResultPanel {
	panel := &ResultPanel{}
	panel.setupPanel()
	return panel
}

func (rp *ResultPanel) setupPanel() {
	cells := make([]fyne.CanvasObject, 0, 2*(composition.ElementCount+1))

	for i, name := range composition.Elements {
		rp.percentages[i] = newReadOnlyEntry()
		cells = append(cells, widget.NewLabelWithStyle(name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), rp.percentages[i])
	}

	rp.totalWeight = newReadOnlyEntry()
	cells = append(cells, widget.NewLabelWithStyle("Total Weight", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), rp.totalWeight)

	rp.container = container.NewVBox(
		widget.NewLabelWithStyle("Result", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(2, cells...),
	)
}

func newReadOnlyEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.Disable()
	return entry
}

func (rp *ResultPanel) GetContainer() *fyne.Container {
	return rp.container
}

func (rp *ResultPanel) SetResult(res composition.Result) {
	for i, entry := range rp.percentages {
		entry.SetText(composition.FormatPercent(res.Percent[i]))
	}
	rp.totalWeight.SetText(composition.FormatWeight(res.TotalWeight))
}

// Percent returns the displayed text for element i
func (rp *ResultPanel) Percent(i int) string {
	if i < 0 || i >= composition.ElementCount {
		return ""
	}
	return rp.percentages[i].Text
}

// TotalWeight returns the displayed total weight
func (rp *ResultPanel) TotalWeight() string {
	return rp.totalWeight.Text
}
