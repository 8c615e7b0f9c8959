package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the last calculator status next to the Lock button
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	LockButton  *widget.Button

	lockHandler func()
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}

	sb.statusLabel = widget.NewLabel("Ready.")
	sb.statusLabel.Wrapping = fyne.TextWrapWord
	sb.LockButton = widget.NewButton("Lock", sb.onLock)

	sb.container = container.NewVBox(
		sb.statusLabel,
		layout.NewSpacer(),
		sb.LockButton,
	)
	return sb
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) Status() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetLockHandler(handler func()) {
	sb.lockHandler = handler
}

func (sb *StatusBar) onLock() {
	if sb.lockHandler != nil {
		sb.lockHandler()
	}
}
