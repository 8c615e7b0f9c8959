package app

import (
	"context"
	"sync"

	"charge-calculator/internal/logger"
	"charge-calculator/internal/shutdown"
)

// Lifecycle runs the shutdown sequence once, whether it is triggered by the
// window closing, by a signal or by the end of the event loop
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
	once    sync.Once
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{
		manager: shutdown.NewManager(log),
		logger:  log,
	}
}

// Register adds a component; components stop in reverse registration order
func (l *Lifecycle) Register(name string, component shutdown.Shutdownable) {
	l.manager.Register(name, component)
}

// Context is cancelled as soon as shutdown starts
func (l *Lifecycle) Context() context.Context {
	return l.manager.Context()
}

// Listen handles SIGINT/SIGTERM; onSignal runs after the components stop
func (l *Lifecycle) Listen(onSignal func()) {
	l.manager.Listen(onSignal)
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(func() {
		l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
		l.manager.Shutdown()
		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
	})
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
