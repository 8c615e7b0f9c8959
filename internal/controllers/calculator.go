package controllers

import (
	"sync"

	"charge-calculator/internal/composition"
	"charge-calculator/internal/logger"
)

const (
	StatusReady        = "Ready."
	StatusLoaded       = "Loaded saved data."
	StatusCalculated   = "Calculated successfully."
	StatusZeroWeight   = "Total weight is zero. Please enter weights."
	StatusWeightsClear = "Weights cleared."
	StatusDefaults     = "Defaults loaded."
	StatusSaveFailed   = "Could not save data."
)

// ZeroWeightText is the body of the dialog shown when no weight is entered
const ZeroWeightText = "Total weight is zero.\nPlease enter weights in the Weight column."

// CalculatorHelpText is shown by the Help button on the calculator screen
const CalculatorHelpText = "Charge Calculation Application\n\n" +
	"Each row contains 8 element percentages and one Weight value.\n\n" +
	"Formula used:\n" +
	"Final %Element = Σ(%Element × Weight) / Σ(Weight)\n\n" +
	"Rounding method:\n" +
	"Values are truncated to 3 decimal places, never rounded up."

// CalculatorView renders the calculator screen
type CalculatorView interface {
	RenderGrid(g composition.Grid)
	RenderResult(res composition.Result)
	SetStatus(status string)
	ShowInfo(title, message string)
}

// GridStore persists the grid
type GridStore interface {
	Save(g composition.Grid) bool
	Load() (composition.Grid, bool)
}

// CalculatorController owns the grid being edited and runs every calculator
// action
type CalculatorController struct {
	store  GridStore
	logger logger.Logger

	mu      sync.Mutex
	grid    composition.Grid
	result  composition.Result
	entered bool

	view   CalculatorView
	onLock func()
}

// NewCalculatorController creates a controller backed by store
func NewCalculatorController(store GridStore, log logger.Logger) *CalculatorController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &CalculatorController{
		store:  store,
		logger: log,
		grid:   composition.DefaultGrid(),
		onLock: func() {},
	}
}

// SetView associates the calculator screen with this controller
func (cc *CalculatorController) SetView(view CalculatorView) {
	cc.view = view
}

// SetLockHandler sets the function called when the user locks the app
func (cc *CalculatorController) SetLockHandler(handler func()) {
	cc.onLock = handler
}

// Enter populates the screen the first time it is shown: the saved grid if
// there is one, the defaults otherwise.
func (cc *CalculatorController) Enter() {
	cc.mu.Lock()
	if cc.entered {
		cc.mu.Unlock()
		return
	}
	cc.entered = true
	cc.mu.Unlock()

	saved, ok := cc.store.Load()
	if !ok {
		cc.logger.Info("CalculatorController", "no saved data, using defaults", nil)
		cc.Reset()
		return
	}

	cc.mu.Lock()
	cc.grid = saved
	cc.mu.Unlock()

	cc.logger.Info("CalculatorController", "saved data loaded", nil)
	cc.renderGrid(saved)
	cc.setStatus(StatusLoaded)
	cc.calculate(false)
}

// SetCell records an edit made in the input grid
func (cc *CalculatorController) SetCell(row, col int, text string) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if !cc.grid.SetCell(row, col, text) {
		cc.logger.Warning("CalculatorController", "cell out of range", map[string]interface{}{
			"row": row,
			"col": col,
		})
	}
}

// Calculate computes the composition, shows it and saves the grid
func (cc *CalculatorController) Calculate() {
	cc.calculate(true)
}

// ClearWeights empties the weight column and recalculates
func (cc *CalculatorController) ClearWeights() {
	cc.mu.Lock()
	cc.grid.ClearWeights()
	g := cc.grid
	cc.mu.Unlock()

	cc.renderGrid(g)
	cc.setStatus(StatusWeightsClear)
	cc.calculate(true)
}

// Reset restores the default grid and recalculates
func (cc *CalculatorController) Reset() {
	cc.mu.Lock()
	cc.grid = composition.DefaultGrid()
	g := cc.grid
	cc.mu.Unlock()

	cc.renderGrid(g)
	cc.setStatus(StatusDefaults)
	cc.calculate(true)
}

// Help shows the formula and rounding help
func (cc *CalculatorController) Help() {
	if cc.view != nil {
		cc.view.ShowInfo("Help", CalculatorHelpText)
	}
}

// Lock saves the grid and hands control back to the PIN screen
func (cc *CalculatorController) Lock() {
	cc.save()
	cc.logger.Info("CalculatorController", "locked by user", nil)
	cc.onLock()
}

// Grid returns a copy of the grid being edited
func (cc *CalculatorController) Grid() composition.Grid {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.grid
}

// Result returns the last computed result
func (cc *CalculatorController) Result() composition.Result {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.result
}

func (cc *CalculatorController) calculate(save bool) {
	cc.mu.Lock()
	res := composition.ComputeGrid(cc.grid)
	cc.result = res
	cc.mu.Unlock()

	if cc.view != nil {
		cc.view.RenderResult(res)
	}

	if res.Empty() {
		cc.setStatus(StatusZeroWeight)
		if cc.view != nil {
			cc.view.ShowInfo("Info", ZeroWeightText)
		}
	} else {
		cc.setStatus(StatusCalculated)
	}

	cc.logger.Debug("CalculatorController", "calculated", map[string]interface{}{
		"total_weight": res.TotalWeight,
		"save":         save,
	})

	if save && !cc.save() {
		cc.setStatus(StatusSaveFailed)
	}
}

func (cc *CalculatorController) save() bool {
	cc.mu.Lock()
	g := cc.grid
	cc.mu.Unlock()

	if !cc.store.Save(g) {
		cc.logger.Warning("CalculatorController", "grid not saved", nil)
		return false
	}
	return true
}

func (cc *CalculatorController) renderGrid(g composition.Grid) {
	if cc.view != nil {
		cc.view.RenderGrid(g)
	}
}

func (cc *CalculatorController) setStatus(status string) {
	if cc.view != nil {
		cc.view.SetStatus(status)
	}
}

// Shutdown saves the grid if the calculator was ever opened
func (cc *CalculatorController) Shutdown() {
	cc.mu.Lock()
	entered := cc.entered
	cc.mu.Unlock()

	if !entered {
		return
	}
	if cc.save() {
		cc.logger.Debug("CalculatorController", "grid saved on shutdown", nil)
	}
}
