package components

import (
	"charge-calculator/internal/composition"
	"charge-calculator/internal/gui/layout"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	MaterialColumnWidth = 140
	CellColumnWidth     = 110
	GridPadding         = 4
	GridViewportWidth   = 760
	GridViewportHeight  = 420
)

// InputGrid is the 9 materials × (8 elements + weight) editable table
type InputGrid struct {
	container *fyne.Container
	entries   [composition.RowCount][composition.FieldCount]*widget.Entry

	// set while the grid is being filled programmatically so that
	// Entry.OnChanged does not echo the text back to the controller
	rendering bool

	cellChangeHandler func(row, col int, text string)
}

func NewInputGrid() *InputGrid {
	grid := &InputGrid{}
	grid.setupGrid()
	return grid
}

func (ig *InputGrid) setupGrid() {
	header := make([]fyne.CanvasObject, 0, composition.FieldCount+1)
	header = append(header, widget.NewLabelWithStyle("Material", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, name := range composition.Elements {
		header = append(header, widget.NewLabelWithStyle(name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
	}
	header = append(header, widget.NewLabelWithStyle("Weight", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))

	rows := container.NewVBox(ig.newRow(header...))

	for r := 0; r < composition.RowCount; r++ {
		cells := make([]fyne.CanvasObject, 0, composition.FieldCount+1)
		cells = append(cells, widget.NewLabel(composition.Materials[r]))

		for c := 0; c < composition.FieldCount; c++ {
			row, col := r, c
			entry := widget.NewEntry()
			entry.OnChanged = func(text string) {
				ig.onCellChanged(row, col, text)
			}
			ig.entries[r][c] = entry
			cells = append(cells, entry)
		}
		rows.Add(ig.newRow(cells...))
	}

	scroll := container.NewScroll(rows)
	scroll.SetMinSize(fyne.NewSize(GridViewportWidth, GridViewportHeight))

	ig.container = container.NewBorder(
		widget.NewLabelWithStyle("Inputs", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		scroll,
	)
}

func (ig *InputGrid) newRow(objects ...fyne.CanvasObject) *fyne.Container {
	return container.New(
		layout.NewGridRowLayout(MaterialColumnWidth, CellColumnWidth, composition.FieldCount, GridPadding),
		objects...,
	)
}

func (ig *InputGrid) GetContainer() *fyne.Container {
	return ig.container
}

func (ig *InputGrid) SetCellChangeHandler(handler func(row, col int, text string)) {
	ig.cellChangeHandler = handler
}

// SetGrid replaces the text of every cell
func (ig *InputGrid) SetGrid(g composition.Grid) {
	ig.rendering = true
	defer func() { ig.rendering = false }()

	for r := range ig.entries {
		for c, entry := range ig.entries[r] {
			if entry.Text != g[r][c] {
				entry.SetText(g[r][c])
			}
		}
	}
}

// Entry returns the widget for one cell
func (ig *InputGrid) Entry(row, col int) *widget.Entry {
	if row < 0 || row >= composition.RowCount || col < 0 || col >= composition.FieldCount {
		return nil
	}
	return ig.entries[row][col]
}

func (ig *InputGrid) onCellChanged(row, col int, text string) {
	if ig.rendering || ig.cellChangeHandler == nil {
		return
	}
	ig.cellChangeHandler(row, col, text)
}
