package app

import (
	"charge-calculator/internal/controllers"
	"charge-calculator/internal/gui"
	"charge-calculator/internal/logger"
)

// Handlers connects widget events to the controllers and moves between the
// two screens
type Handlers struct {
	guiManager *gui.Manager
	access     *controllers.AccessController
	calculator *controllers.CalculatorController
	logger     logger.Logger
}

func NewHandlers(gm *gui.Manager, ac *controllers.AccessController, cc *controllers.CalculatorController, log logger.Logger) *Handlers {
	return &Handlers{
		guiManager: gm,
		access:     ac,
		calculator: cc,
		logger:     log,
	}
}

// Bind attaches every handler
func (h *Handlers) Bind() {
	pin := h.guiManager.PinScreen()
	h.access.SetView(pin)
	pin.Keypad().SetDigitHandler(h.access.Digit)
	pin.Keypad().SetBackspaceHandler(h.access.Backspace)
	pin.Keypad().SetHelpHandler(h.access.Help)
	pin.SetClearHandler(h.access.Clear)
	pin.SetSubmitHandler(h.access.Submit)

	calc := h.guiManager.CalcScreen()
	h.calculator.SetView(calc)
	calc.InputGrid().SetCellChangeHandler(h.calculator.SetCell)
	calc.Toolbar().SetCalculateHandler(h.calculator.Calculate)
	calc.Toolbar().SetClearWeightsHandler(h.calculator.ClearWeights)
	calc.Toolbar().SetResetHandler(h.calculator.Reset)
	calc.Toolbar().SetHelpHandler(h.calculator.Help)
	calc.StatusBar().SetLockHandler(h.calculator.Lock)

	h.access.SetUnlockHandler(h.HandleUnlock)
	h.calculator.SetLockHandler(h.HandleLock)
}

// HandleUnlock opens the calculator after a correct PIN
func (h *Handlers) HandleUnlock() {
	h.guiManager.ShowCalculator()
	h.calculator.Enter()
}

// HandleLock returns to a freshly reset PIN screen
func (h *Handlers) HandleLock() {
	h.guiManager.ShowPIN()
	h.access.Enter()
}
