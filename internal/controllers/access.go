package controllers

import (
	"context"

	"charge-calculator/internal/access"
	"charge-calculator/internal/logger"
)

// PINHelpText is shown by the Help button on the PIN screen
const PINHelpText = "Charge Calculation Application\n\n" +
	"Login:\n" +
	"Enter the 4-digit PIN to unlock."

// AccessView renders the PIN screen
type AccessView interface {
	RenderAccess(state access.State)
	Shake()
	ShowInfo(title, message string)
}

// AccessController routes keypad events to the gate and drives the lockout
// countdown
type AccessController struct {
	gate      *access.Gate
	countdown *access.Countdown
	logger    logger.Logger
	ctx       context.Context

	view     AccessView
	onUnlock func()
	dispatch func(func())
}

// NewAccessController creates a controller for gate. The countdown is
// cancelled when ctx ends.
func NewAccessController(ctx context.Context, gate *access.Gate, countdown *access.Countdown, log logger.Logger) *AccessController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &AccessController{
		gate:      gate,
		countdown: countdown,
		logger:    log,
		ctx:       ctx,
		onUnlock:  func() {},
		dispatch:  func(fn func()) { fn() },
	}
}

// SetView associates the PIN screen with this controller
func (ac *AccessController) SetView(view AccessView) {
	ac.view = view
}

// SetUnlockHandler sets the function called after a correct PIN
func (ac *AccessController) SetUnlockHandler(handler func()) {
	ac.onUnlock = handler
}

// SetDispatcher sets how countdown ticks reach the UI goroutine
func (ac *AccessController) SetDispatcher(dispatch func(func())) {
	ac.dispatch = dispatch
}

// Enter resets the gate; called each time the PIN screen is shown
func (ac *AccessController) Enter() {
	ac.countdown.Stop()
	ac.gate.Reset()
	ac.render()
}

// Digit handles a keypad digit
func (ac *AccessController) Digit(d rune) {
	ac.handle(ac.gate.AddDigit(d))
}

// Backspace removes the last digit
func (ac *AccessController) Backspace() {
	ac.gate.Backspace()
	ac.render()
}

// Clear drops all entered digits
func (ac *AccessController) Clear() {
	ac.gate.Clear()
	ac.render()
}

// Submit checks the entered PIN
func (ac *AccessController) Submit() {
	ac.handle(ac.gate.Submit())
}

// Help shows the login help
func (ac *AccessController) Help() {
	if ac.view != nil {
		ac.view.ShowInfo("Help", PINHelpText)
	}
}

// State returns the current gate snapshot
func (ac *AccessController) State() access.State {
	return ac.gate.State()
}

func (ac *AccessController) handle(outcome access.Outcome) {
	switch outcome {
	case access.OutcomeUnlocked:
		ac.logger.Info("AccessController", "unlocked", nil)
		ac.render()
		ac.onUnlock()
		return

	case access.OutcomeWrongPIN:
		ac.logger.Warning("AccessController", "wrong PIN", map[string]interface{}{
			"attempts":     ac.gate.State().Attempts,
			"max_attempts": ac.gate.MaxAttempts(),
		})
		ac.shake()

	case access.OutcomeLocked:
		ac.logger.Warning("AccessController", "too many attempts, locking", map[string]interface{}{
			"remaining_s": ac.gate.State().Remaining,
		})
		ac.shake()
		ac.startCountdown()

	case access.OutcomeIncomplete:
		ac.shake()

	case access.OutcomeRejected:
		ac.logger.Debug("AccessController", "input rejected while locked", nil)
	}

	ac.render()
}

func (ac *AccessController) startCountdown() {
	ac.countdown.Start(ac.ctx, func() bool {
		locked := ac.gate.Tick()
		state := ac.gate.State()

		ac.dispatch(func() {
			if ac.view != nil {
				ac.view.RenderAccess(state)
			}
		})

		if !locked {
			ac.logger.Info("AccessController", "lock expired", nil)
		}
		return locked
	})
}

func (ac *AccessController) render() {
	if ac.view != nil {
		ac.view.RenderAccess(ac.gate.State())
	}
}

func (ac *AccessController) shake() {
	if ac.view != nil {
		ac.view.Shake()
	}
}

// Shutdown stops the lockout countdown
func (ac *AccessController) Shutdown() {
	ac.countdown.Stop()
	ac.logger.Debug("AccessController", "shutdown complete", nil)
}
