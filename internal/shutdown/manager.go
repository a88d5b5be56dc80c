package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"contact-manager/internal/logger"
)

// Closer is a resource released during shutdown
type Closer interface {
	Close() error
}

// CloserFunc adapts a plain function to Closer.
type CloserFunc func() error

func (f CloserFunc) Close() error {
	return f()
}

type component struct {
	name   string
	closer Closer
}

// Manager releases registered resources exactly once, in reverse order of
// registration.
type Manager struct {
	components []component
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		components: make([]component, 0),
		logger:     log,
		timeout:    10 * time.Second,
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetTimeout bounds how long a single component may take to close.
func (m *Manager) SetTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = d
}

func (m *Manager) Register(name string, c Closer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component{name: name, closer: c})
}

// Listen shuts down on SIGINT or SIGTERM and then calls onSignal, which
// typically quits the UI event loop.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
			if onSignal != nil {
				onSignal()
			}
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return // Already shut down
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		c := m.components[i]

		errCh := make(chan error, 1)
		go func() {
			errCh <- c.closer.Close()
		}()

		select {
		case err := <-errCh:
			if err != nil {
				m.logger.Error("ShutdownManager", err, map[string]interface{}{
					"component": c.name,
				})
				continue
			}
			m.logger.Debug("ShutdownManager", "component closed", map[string]interface{}{
				"component": c.name,
			})
		case <-time.After(m.timeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component": c.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

// Context is cancelled when shutdown starts.
func (m *Manager) Context() context.Context {
	return m.ctx
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
