package layout

import (
	"fyne.io/fyne/v2"
)

// FixedColumnLayout keeps every row of the input grid on the same column
// widths, whatever the cell contents
type FixedColumnLayout struct {
	columnWidths []float32
	padding      float32
}

func NewFixedColumnLayout(columnWidths []float32, padding float32) *FixedColumnLayout {
	return &FixedColumnLayout{
		columnWidths: columnWidths,
		padding:      padding,
	}
}

// NewGridRowLayout builds a layout with one label column followed by cells
// equal-width columns.
func NewGridRowLayout(labelWidth, cellWidth float32, cells int, padding float32) *FixedColumnLayout {
	widths := make([]float32, 0, cells+1)
	widths = append(widths, labelWidth)
	for i := 0; i < cells; i++ {
		widths = append(widths, cellWidth)
	}
	return NewFixedColumnLayout(widths, padding)
}

func (fcl *FixedColumnLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	x := float32(0)
	for i, obj := range objects {
		if i >= len(fcl.columnWidths) {
			obj.Hide()
			continue
		}

		width := fcl.columnWidths[i]
		obj.Resize(fyne.NewSize(width-fcl.padding, containerSize.Height))
		obj.Move(fyne.NewPos(x, 0))
		x += width
	}
}

func (fcl *FixedColumnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	totalWidth := float32(0)
	maxHeight := float32(0)

	for i, width := range fcl.columnWidths {
		totalWidth += width

		if i < len(objects) {
			objMin := objects[i].MinSize()
			if objMin.Height > maxHeight {
				maxHeight = objMin.Height
			}
		}
	}

	return fyne.NewSize(totalWidth, maxHeight)
}

// Columns returns the number of laid out columns
func (fcl *FixedColumnLayout) Columns() int {
	return len(fcl.columnWidths)
}
