package app

import (
	"context"
	"fmt"
	"runtime"

	"contact-manager/internal/config"
	"contact-manager/internal/controllers"
	"contact-manager/internal/logger"
	"contact-manager/internal/services"
	"contact-manager/internal/shutdown"
	"contact-manager/internal/store"
	"contact-manager/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName = "Contact Manager"
	AppID   = "com.contactmanager.desktop"
)

// Version is overridden at build time.
var Version = "dev"

// Application owns the window, the contact store and their shutdown order.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	store      *store.Store
	controller *controllers.MainController
	view       *views.MainView
	lifecycle  *Lifecycle
}

// NewApplication opens the store named by cfg and builds the main window.
// The store is released by the lifecycle when the window closes or the
// process is signalled.
func NewApplication(ctx context.Context, cfg *config.Config, log logger.Logger) (*Application, error) {
	return newApplication(ctx, app.NewWithID(AppID), cfg, log)
}

func newApplication(ctx context.Context, fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	contactStore, err := store.Open(cfg.Database.Path, store.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("open contact store: %w", err)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    Version,
		"database":   cfg.Database.Path,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel().String(),
	})

	service := services.NewContactService(contactStore, log)
	controller := controllers.NewMainController(ctx, service, log)
	view := views.NewMainView(window)
	controller.SetMainView(view)

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register("contact store", contactStore)
	shutdownManager.Register("main controller", controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		store:      contactStore,
		controller: controller,
		view:       view,
		lifecycle:  NewLifecycle(shutdownManager, log),
	}

	controller.Start()
	log.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the window and blocks until the UI exits. Resources are
// released before it returns.
func (a *Application) Run() error {
	a.lifecycle.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
		a.lifecycle.Shutdown()
	})

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

// Close releases resources without running the UI.
func (a *Application) Close() {
	a.lifecycle.Shutdown()
}
