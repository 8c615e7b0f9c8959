package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the calculator actions below the input grid
type Toolbar struct {
	container          *fyne.Container
	CalculateButton    *widget.Button
	ClearWeightsButton *widget.Button
	ResetButton        *widget.Button
	HelpButton         *widget.Button

	calculateHandler    func()
	clearWeightsHandler func()
	resetHandler        func()
	helpHandler         func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.setupToolbar()
	return toolbar
}

func (t *Toolbar) setupToolbar() {
	background := canvas.NewRectangle(color.RGBA{R: 22, G: 26, B: 31, A: 255})
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeWidth = 1.0
	border.StrokeColor = color.RGBA{R: 52, G: 58, B: 64, A: 255}

	t.CalculateButton = widget.NewButton("Calculate", t.onCalculate)
	t.CalculateButton.Importance = widget.HighImportance
	t.ClearWeightsButton = widget.NewButton("Clear Weights", t.onClearWeights)
	t.ResetButton = widget.NewButton("Reset Defaults", t.onReset)
	t.HelpButton = widget.NewButton("Help", t.onHelp)

	buttons := container.NewGridWithColumns(4,
		t.CalculateButton,
		t.ClearWeightsButton,
		t.ResetButton,
		t.HelpButton,
	)

	t.container = container.NewStack(
		border,
		container.NewPadded(
			container.NewStack(background, container.NewPadded(buttons)),
		),
	)
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetCalculateHandler(handler func()) {
	t.calculateHandler = handler
}

func (t *Toolbar) SetClearWeightsHandler(handler func()) {
	t.clearWeightsHandler = handler
}

func (t *Toolbar) SetResetHandler(handler func()) {
	t.resetHandler = handler
}

func (t *Toolbar) SetHelpHandler(handler func()) {
	t.helpHandler = handler
}

func (t *Toolbar) onCalculate() {
	if t.calculateHandler != nil {
		t.calculateHandler()
	}
}

func (t *Toolbar) onClearWeights() {
	if t.clearWeightsHandler != nil {
		t.clearWeightsHandler()
	}
}

func (t *Toolbar) onReset() {
	if t.resetHandler != nil {
		t.resetHandler()
	}
}

func (t *Toolbar) onHelp() {
	if t.helpHandler != nil {
		t.helpHandler()
	}
}
