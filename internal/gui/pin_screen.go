package gui

import (
	"charge-calculator/internal/access"
	"charge-calculator/internal/gui/components"
	"charge-calculator/internal/gui/layout"
	"charge-calculator/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynelayout "fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// PinScreen is the lock screen: lock pill, PIN dots, message line and keypad
type PinScreen struct {
	window    fyne.Window
	logger    logger.Logger
	container *fyne.Container

	lockPill     *components.Pill
	dots         *widget.Label
	message      *widget.Label
	keypad       *components.Keypad
	ClearButton  *widget.Button
	EnterButton  *widget.Button
	shakeLayout  *layout.ShakeLayout
	shakeBox     *fyne.Container
	shakeCounter int

	clearHandler  func()
	submitHandler func()
}

func NewPinScreen(window fyne.Window, log logger.Logger) *PinScreen {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	ps := &PinScreen{
		window: window,
		logger: log,
	}
	ps.setupScreen()
	return ps
}

func (ps *PinScreen) setupScreen() {
	initial := access.State{}

	title := widget.NewLabelWithStyle("Locked App", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabel("Enter your 4-digit PIN to continue")
	ps.lockPill = components.NewPill(initial.LockText())

	header := container.NewBorder(nil, nil,
		container.NewVBox(title, subtitle),
		ps.lockPill.GetContainer(),
	)

	ps.dots = widget.NewLabelWithStyle(initial.Dots(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true})
	ps.dots.SizeName = theme.SizeNameHeadingText
	ps.message = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	ps.ClearButton = widget.NewButton("Clear", ps.onClear)
	ps.EnterButton = widget.NewButton("Enter", ps.onSubmit)
	ps.EnterButton.Importance = widget.HighImportance

	ps.shakeLayout = &layout.ShakeLayout{}
	ps.shakeBox = container.New(ps.shakeLayout, ps.dots)

	pinCard := container.NewVBox(
		widget.NewLabelWithStyle("PIN", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		ps.shakeBox,
		ps.message,
		fynelayout.NewSpacer(),
		container.NewGridWithColumns(2, ps.ClearButton, ps.EnterButton),
	)

	ps.keypad = components.NewKeypad()

	ps.container = container.NewBorder(
		container.NewPadded(header),
		nil, nil, nil,
		container.NewGridWithColumns(2,
			container.NewPadded(pinCard),
			container.NewPadded(ps.keypad.GetContainer()),
		),
	)
}

func (ps *PinScreen) GetContainer() *fyne.Container {
	return ps.container
}

// Keypad exposes the keypad so callers can bind its buttons
func (ps *PinScreen) Keypad() *components.Keypad {
	return ps.keypad
}

func (ps *PinScreen) SetClearHandler(handler func()) {
	ps.clearHandler = handler
}

func (ps *PinScreen) SetSubmitHandler(handler func()) {
	ps.submitHandler = handler
}

func (ps *PinScreen) RenderAccess(state access.State) {
	ps.dots.SetText(state.Dots())
	ps.message.SetText(state.Message)
	ps.lockPill.SetText(state.LockText())
}

// Shake plays a short horizontal shake on the PIN dots
func (ps *PinScreen) Shake() {
	ps.shakeCounter++
	layout.NewShake(ps.shakeBox, ps.shakeLayout).Start()
}

func (ps *PinScreen) ShowInfo(title, message string) {
	ps.logger.Debug("PinScreen", "showing dialog", map[string]interface{}{
		"title": title,
	})
	dialog.ShowInformation(title, message, ps.window)
}

// Dots returns the PIN dots currently shown
func (ps *PinScreen) Dots() string {
	return ps.dots.Text
}

// Message returns the message line currently shown
func (ps *PinScreen) Message() string {
	return ps.message.Text
}

// LockText returns the lock pill text
func (ps *PinScreen) LockText() string {
	return ps.lockPill.Text()
}

// Shakes returns how many times the screen has shaken
func (ps *PinScreen) Shakes() int {
	return ps.shakeCounter
}

func (ps *PinScreen) onClear() {
	if ps.clearHandler != nil {
		ps.clearHandler()
	}
}

func (ps *PinScreen) onSubmit() {
	if ps.submitHandler != nil {
		ps.submitHandler()
	}
}
