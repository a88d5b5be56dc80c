package app

import (
	"contact-manager/internal/logger"
	"contact-manager/internal/shutdown"
)

// Lifecycle ties the shutdown manager to the window lifecycle
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(manager *shutdown.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		manager: manager,
		logger:  log,
	}
}

// Listen forwards termination signals to onSignal after resources are released.
func (l *Lifecycle) Listen(onSignal func()) {
	l.manager.Listen(onSignal)
}

// Shutdown releases resources once; later calls are no-ops.
func (l *Lifecycle) Shutdown() {
	select {
	case <-l.manager.Done():
		return
	default:
	}

	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
	l.manager.Shutdown()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
