package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var (
	pillBackground = color.RGBA{R: 28, G: 54, B: 58, A: 255}
	pillBorder     = color.RGBA{R: 41, G: 133, B: 140, A: 255}
)

// Pill is a rounded badge used for the lock state and the total weight
type Pill struct {
	container *fyne.Container
	label     *widget.Label
}

func NewPill(text string) *Pill {
	background := canvas.NewRectangle(pillBackground)
	background.CornerRadius = 12
	background.StrokeColor = pillBorder
	background.StrokeWidth = 1

	label := widget.NewLabel(text)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}

	return &Pill{
		container: container.NewStack(background, label),
		label:     label,
	}
}

func (p *Pill) GetContainer() *fyne.Container {
	return p.container
}

func (p *Pill) SetText(text string) {
	p.label.SetText(text)
}

func (p *Pill) Text() string {
	return p.label.Text
}
