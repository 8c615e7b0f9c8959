// Package access implements the PIN gate that guards the calculator: digit
// entry, an attempt counter and a timed lockout after repeated failures.
package access

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	// PINLength is the number of digits in a PIN
	PINLength = 4

	DefaultPIN          = "4252"
	DefaultMaxAttempts  = 3
	DefaultLockDuration = 30 * time.Second
	DefaultTickInterval = 200 * time.Millisecond
)

const (
	MsgTooManyAttempts = "Too many attempts. Please wait."
	MsgEnterDigits     = "Enter 4 digits."
)

// Outcome describes what a gate operation did
type Outcome int

const (
	// OutcomeNone means the state changed without anything to report, or not at all
	OutcomeNone Outcome = iota
	// OutcomeRejected means the gate is locked and the action was refused
	OutcomeRejected
	// OutcomeIncomplete means submit was called with fewer than PINLength digits
	OutcomeIncomplete
	// OutcomeWrongPIN means a full PIN was entered and did not match
	OutcomeWrongPIN
	// OutcomeLocked means a wrong PIN exhausted the attempts and started a lockout
	OutcomeLocked
	// OutcomeUnlocked means the PIN matched
	OutcomeUnlocked
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeRejected:
		return "rejected"
	case OutcomeIncomplete:
		return "incomplete"
	case OutcomeWrongPIN:
		return "wrong_pin"
	case OutcomeLocked:
		return "locked"
	case OutcomeUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Options configures a Gate
type Options struct {
	PIN          string
	MaxAttempts  int
	LockDuration time.Duration
	Clock        Clock
}

// DefaultOptions returns the stock gate configuration
func DefaultOptions() Options {
	return Options{
		PIN:          DefaultPIN,
		MaxAttempts:  DefaultMaxAttempts,
		LockDuration: DefaultLockDuration,
		Clock:        SystemClock{},
	}
}

// State is a read-only snapshot of the gate
type State struct {
	Digits    int
	Attempts  int
	Message   string
	Locked    bool
	Remaining int // whole seconds left in the lockout
}

// Gate is the PIN entry state machine. The zero lock time means unlocked.
// All methods are safe for concurrent use.
type Gate struct {
	mu          sync.Mutex
	opts        Options
	digits      []byte
	attempts    int
	lockedUntil time.Time
	message     string
}

// NewGate creates a gate in the Entering("") state. Zero option fields fall
// back to the defaults.
func NewGate(opts Options) *Gate {
	def := DefaultOptions()
	if opts.PIN == "" {
		opts.PIN = def.PIN
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = def.MaxAttempts
	}
	if opts.LockDuration <= 0 {
		opts.LockDuration = def.LockDuration
	}
	if opts.Clock == nil {
		opts.Clock = def.Clock
	}

	return &Gate{
		opts:   opts,
		digits: make([]byte, 0, PINLength),
	}
}

// AddDigit appends one digit. A fourth digit submits automatically.
func (g *Gate) AddDigit(d rune) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.lockActive() {
		g.message = MsgTooManyAttempts
		return OutcomeRejected
	}
	if d < '0' || d > '9' || len(g.digits) >= PINLength {
		return OutcomeNone
	}

	g.digits = append(g.digits, byte(d))
	g.message = ""

	if len(g.digits) == PINLength {
		return g.submitLocked()
	}
	return OutcomeNone
}

// Backspace removes the last digit. It does nothing while locked.
func (g *Gate) Backspace() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.lockActive() || len(g.digits) == 0 {
		return
	}
	g.digits = g.digits[:len(g.digits)-1]
	g.message = ""
}

// Clear drops every entered digit.
func (g *Gate) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.digits = g.digits[:0]
	g.message = ""
}

// Submit checks the entered digits against the PIN.
func (g *Gate) Submit() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.submitLocked()
}

// SubmitPIN checks a whole PIN in one step, replacing any digits already
// entered. Anything other than exactly PINLength ASCII digits is incomplete
// and does not count as an attempt.
func (g *Gate) SubmitPIN(pin string) Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.digits = g.digits[:0]
	if !validPIN(pin) {
		if g.lockActive() {
			g.message = MsgTooManyAttempts
			return OutcomeRejected
		}
		g.message = MsgEnterDigits
		return OutcomeIncomplete
	}

	g.digits = append(g.digits, pin...)
	return g.submitLocked()
}

func validPIN(pin string) bool {
	if len(pin) != PINLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

func (g *Gate) submitLocked() Outcome {
	if g.lockActive() {
		g.message = MsgTooManyAttempts
		return OutcomeRejected
	}
	if len(g.digits) != PINLength {
		g.message = MsgEnterDigits
		return OutcomeIncomplete
	}

	entered := string(g.digits)
	g.digits = g.digits[:0]

	if entered == g.opts.PIN {
		g.message = ""
		return OutcomeUnlocked
	}

	g.attempts++
	g.message = fmt.Sprintf("Wrong PIN. Attempt %d/%d", g.attempts, g.opts.MaxAttempts)

	if g.attempts >= g.opts.MaxAttempts {
		g.lockedUntil = g.opts.Clock.Now().Add(g.opts.LockDuration)
		g.message = fmt.Sprintf("Locked for %d seconds.", int(g.opts.LockDuration/time.Second))
		return OutcomeLocked
	}
	return OutcomeWrongPIN
}

// Tick refreshes the lockout. Once the lock instant has passed the message is
// cleared and entry is accepted again. It reports whether the gate is still
// locked.
func (g *Gate) Tick() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.lockActive()
}

// Reset returns the gate to its initial state.
func (g *Gate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.digits = g.digits[:0]
	g.attempts = 0
	g.lockedUntil = time.Time{}
	g.message = ""
}

// State returns a snapshot for rendering.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := State{
		Digits:   len(g.digits),
		Attempts: g.attempts,
		Message:  g.message,
	}
	if g.lockActive() {
		s.Locked = true
		s.Remaining = int(g.lockedUntil.Sub(g.opts.Clock.Now()) / time.Second)
	}
	return s
}

// MaxAttempts returns the configured attempt limit.
func (g *Gate) MaxAttempts() int {
	return g.opts.MaxAttempts
}

// lockActive reports whether a lockout is active, expiring it when its time
// has passed. The caller must hold g.mu.
func (g *Gate) lockActive() bool {
	if g.lockedUntil.IsZero() {
		return false
	}
	if g.opts.Clock.Now().Before(g.lockedUntil) {
		return true
	}

	// lock expired: a fresh set of attempts
	g.lockedUntil = time.Time{}
	g.attempts = 0
	g.message = ""
	return false
}

// Dots renders entered digits as filled circles and the rest as empty ones.
func (s State) Dots() string {
	dots := make([]string, PINLength)
	for i := range dots {
		if i < s.Digits {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	return strings.Join(dots, " ")
}

// LockText renders the lock pill label.
func (s State) LockText() string {
	if s.Locked {
		return fmt.Sprintf("Locked: %ds", s.Remaining)
	}
	return "Unlocked"
}
