package gui

import (
	"sync/atomic"

	"charge-calculator/internal/logger"

	"fyne.io/fyne/v2"
)

// Screen identifies which screen the window shows
type Screen int

const (
	ScreenNone Screen = iota
	ScreenPIN
	ScreenCalculator
)

func (s Screen) String() string {
	switch s {
	case ScreenPIN:
		return "pin"
	case ScreenCalculator:
		return "calculator"
	default:
		return "none"
	}
}

// Manager owns both screens and swaps the window content between them
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown atomic.Bool
	current    Screen

	pinScreen  *PinScreen
	calcScreen *CalcScreen
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	manager := &Manager{
		window:     window,
		logger:     log,
		pinScreen:  NewPinScreen(window, log),
		calcScreen: NewCalcScreen(window, log),
	}

	log.Info("GUIManager", "initialized", nil)
	return manager
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) PinScreen() *PinScreen {
	return m.pinScreen
}

func (m *Manager) CalcScreen() *CalcScreen {
	return m.calcScreen
}

// Current returns the screen being shown
func (m *Manager) Current() Screen {
	return m.current
}

// ShowPIN switches the window to the PIN screen
func (m *Manager) ShowPIN() {
	m.show(ScreenPIN, m.pinScreen.GetContainer())
}

// ShowCalculator switches the window to the calculator screen
func (m *Manager) ShowCalculator() {
	m.show(ScreenCalculator, m.calcScreen.GetContainer())
}

func (m *Manager) show(screen Screen, content fyne.CanvasObject) {
	if m.isShutdown.Load() || m.current == screen {
		return
	}

	m.window.SetContent(content)
	m.logger.Debug("GUIManager", "screen changed", map[string]interface{}{
		"from": m.current.String(),
		"to":   screen.String(),
	})
	m.current = screen
}

func (m *Manager) Shutdown() {
	if m.isShutdown.Swap(true) {
		return
	}
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
