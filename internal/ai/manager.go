package ai

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// TickManager drives AI ticks for all registered units
type TickManager struct {
	controllers     sync.Map // map[uint32]Controller — entity ID → controller
	interval        time.Duration
	stopCh          chan struct{}
	controllerCount atomic.Int32 // cached count of controllers (O(1) access)
}

// NewTickManager creates a tick manager with the given tick interval
func NewTickManager(interval time.Duration) *TickManager {
	return &TickManager{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Register registers an AI controller for a unit
func (m *TickManager) Register(entityID uint32, controller Controller) {
	m.controllers.Store(entityID, controller)
	m.controllerCount.Add(1)
	controller.Start()

	slog.Debug("AI controller registered",
		"entityID", entityID,
		"behavior", controller.CurrentBehavior())
}

// Unregister unregisters a unit's AI controller
func (m *TickManager) Unregister(entityID uint32) {
	value, ok := m.controllers.LoadAndDelete(entityID)
	if !ok {
		return
	}

	m.controllerCount.Add(-1)

	controller := value.(Controller)
	controller.Stop()

	slog.Debug("AI controller unregistered", "entityID", entityID)
}

// Start starts the AI tick loop (blocks until context is canceled)
func (m *TickManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	slog.Info("AI tick manager started", "interval", m.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("AI tick manager stopping")
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("AI tick manager stopped")
			return nil

		case <-ticker.C:
			m.tickAll()
		}
	}
}

// Stop stops the AI tick loop
func (m *TickManager) Stop() {
	close(m.stopCh)
}

// tickAll ticks all registered controllers
func (m *TickManager) tickAll() {
	count := 0

	m.controllers.Range(func(key, value any) bool {
		controller := value.(Controller)
		controller.Tick()
		count++
		return true
	})

	if count > 0 && IsDebugEnabled() {
		slog.Debug("AI tick completed", "controllers", count)
	}
}

// Count returns the number of registered controllers (cached, O(1))
func (m *TickManager) Count() int {
	return int(m.controllerCount.Load())
}
