package app

import (
	"testing"

	"charge-calculator/internal/composition"
	"charge-calculator/internal/config"
	"charge-calculator/internal/gui"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()

	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.PIN = "1234"

	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)

	a, err := newApplication(fyneApp, cfg, nil)
	require.NoError(t, err)
	t.Cleanup(a.lifecycle.Shutdown)
	return a
}

func enterPIN(a *Application, pin string) {
	keypad := a.guiManager.PinScreen().Keypad()
	for _, d := range pin {
		test.Tap(keypad.DigitButton(int(d - '0')))
	}
}

func TestConfiguredPINUnlocks(t *testing.T) {
	a := newTestApplication(t)
	a.guiManager.ShowPIN()
	a.access.Enter()

	enterPIN(a, "4252")
	assert.Equal(t, gui.ScreenPIN, a.guiManager.Current())

	enterPIN(a, "1234")
	assert.Equal(t, gui.ScreenCalculator, a.guiManager.Current())
	assert.Equal(t, composition.DefaultGrid(), a.calculator.Grid())
}

func TestLockAndShutdownPersistGrid(t *testing.T) {
	a := newTestApplication(t)
	a.guiManager.ShowPIN()
	enterPIN(a, "1234")

	calc := a.guiManager.CalcScreen()
	test.Type(calc.InputGrid().Entry(4, composition.WeightColumn), "3")

	test.Tap(calc.StatusBar().LockButton)
	assert.Equal(t, gui.ScreenPIN, a.guiManager.Current())

	saved, err := a.store.Read()
	require.NoError(t, err)
	assert.Equal(t, "3", saved[4][composition.WeightColumn])

	a.lifecycle.Shutdown()
	select {
	case <-a.lifecycle.Done():
	default:
		t.Fatal("lifecycle not shut down")
	}
}
