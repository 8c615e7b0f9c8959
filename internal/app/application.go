package app

import (
	"charge-calculator/internal/access"
	"charge-calculator/internal/config"
	"charge-calculator/internal/controllers"
	"charge-calculator/internal/gui"
	"charge-calculator/internal/logger"
	"charge-calculator/internal/storage"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName         = "Charge Calculation"
	AppID           = "com.chargecalculation.calculator"
	AppVersion      = "1.0.0"
	MinWindowWidth  = 1200
	MinWindowHeight = 680
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	logger     logger.Logger
	guiManager *gui.Manager
	access     *controllers.AccessController
	calculator *controllers.CalculatorController
	store      *storage.Store
	lifecycle  *Lifecycle
}

// NewApplication builds the desktop application from cfg
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, err
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(MinWindowWidth, MinWindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"data_dir":      dataDir,
		"max_attempts":  cfg.MaxAttempts,
		"lock_seconds":  cfg.LockSeconds,
		"window_width":  MinWindowWidth,
		"window_height": MinWindowHeight,
	})

	store := storage.NewStore(dataDir, log)
	guiManager := gui.NewManager(window, log)
	lifecycle := NewLifecycle(log)

	gate := access.NewGate(cfg.GateOptions())
	countdown := access.NewCountdown(cfg.TickInterval)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     log,
		guiManager: guiManager,
		access:     controllers.NewAccessController(lifecycle.Context(), gate, countdown, log),
		calculator: controllers.NewCalculatorController(store, log),
		store:      store,
		lifecycle:  lifecycle,
	}

	application.setupHandlers()

	lifecycle.Register("gui", guiManager)
	lifecycle.Register("access", application.access)
	lifecycle.Register("calculator", application.calculator)

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	handlers := NewHandlers(a.guiManager, a.access, a.calculator, a.logger)
	handlers.Bind()

	// countdown ticks arrive on their own goroutine
	a.access.SetDispatcher(fyne.Do)
}

// Run shows the PIN screen and blocks until the window is closed
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.lifecycle.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.guiManager.ShowPIN()
	a.access.Enter()
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}
