package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const BackspaceSymbol = "⌫"

// Keypad is the 3-column PIN keypad: digits 1-9, then backspace, 0 and Help
type Keypad struct {
	container       *fyne.Container
	digitButtons    [10]*widget.Button
	BackspaceButton *widget.Button
	HelpButton      *widget.Button

	digitHandler     func(rune)
	backspaceHandler func()
	helpHandler      func()
}

func NewKeypad() *Keypad {
	keypad := &Keypad{}
	keypad.setupKeypad()
	return keypad
}

func (k *Keypad) setupKeypad() {
	for d := 0; d <= 9; d++ {
		digit := rune('0' + d)
		k.digitButtons[d] = widget.NewButton(string(digit), func() {
			k.onDigit(digit)
		})
	}

	k.BackspaceButton = widget.NewButton(BackspaceSymbol, k.onBackspace)
	k.HelpButton = widget.NewButton("Help", k.onHelp)

	cells := make([]fyne.CanvasObject, 0, 12)
	for d := 1; d <= 9; d++ {
		cells = append(cells, k.digitButtons[d])
	}
	cells = append(cells, k.BackspaceButton, k.digitButtons[0], k.HelpButton)

	k.container = container.NewVBox(
		widget.NewLabelWithStyle("Keypad", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(3, cells...),
	)
}

func (k *Keypad) GetContainer() *fyne.Container {
	return k.container
}

// DigitButton returns the button for digit d (0-9)
func (k *Keypad) DigitButton(d int) *widget.Button {
	if d < 0 || d > 9 {
		return nil
	}
	return k.digitButtons[d]
}

func (k *Keypad) SetDigitHandler(handler func(rune)) {
	k.digitHandler = handler
}

func (k *Keypad) SetBackspaceHandler(handler func()) {
	k.backspaceHandler = handler
}

func (k *Keypad) SetHelpHandler(handler func()) {
	k.helpHandler = handler
}

func (k *Keypad) onDigit(d rune) {
	if k.digitHandler != nil {
		k.digitHandler(d)
	}
}

func (k *Keypad) onBackspace() {
	if k.backspaceHandler != nil {
		k.backspaceHandler()
	}
}

func (k *Keypad) onHelp() {
	if k.helpHandler != nil {
		k.helpHandler()
	}
}
