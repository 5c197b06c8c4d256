package worker

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/ranjeetgautam/SubStack/app/models"
	"github.com/ranjeetgautam/SubStack/internal/pkg/database"
	metrics "github.com/ranjeetgautam/SubStack/internal/pkg/metrics/counter"
)

// Manager runs the background tasks of the app
type Manager struct {
	counterFlushTicker    *time.Ticker
	settingsRefreshTicker *time.Ticker
	stopCh                chan struct{}
	wg                    sync.WaitGroup
	mu                    sync.Mutex
	running               bool
}

var (
	globalManager *Manager
	managerOnce   sync.Once
)

// GetManager returns the global background task manager (singleton)
func GetManager() *Manager {
	managerOnce.Do(func() {
		globalManager = &Manager{
			stopCh: make(chan struct{}),
		}
	})
	return globalManager
}

// Start starts the background tasks
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}

	// Recreate stop channel for each start cycle so manager can be restarted safely.
	m.stopCh = make(chan struct{})
	m.running = true
	log.Info("[Worker Manager] Starting background tasks")

	// Start counter flush worker (Redis -> DB) every 5 seconds
	m.counterFlushTicker = time.NewTicker(5 * time.Second)
	m.wg.Add(1)
	go m.counterFlushWorker()

	// Reload app settings periodically so multiple instances converge
	m.settingsRefreshTicker = time.NewTicker(5 * time.Minute)
	m.wg.Add(1)
	go m.settingsRefreshWorker()

	log.Info("[Worker Manager] Started successfully")
}

// Stop stops the background tasks
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	log.Info("[Worker Manager] Stopping background tasks...")
	close(m.stopCh)

	m.counterFlushTicker.Stop()
	m.settingsRefreshTicker.Stop()

	m.wg.Wait()
	m.running = false
	log.Info("[Worker Manager] Stopped")
}

// counterFlushWorker periodically flushes pending plan view counters from Redis to DB
func (m *Manager) counterFlushWorker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.stopCh:
			log.Info("[Worker Manager] Counter flush worker stopping")
			return
		case <-m.counterFlushTicker.C:
			if err := metrics.FlushAll(); err != nil {
				log.Errorf("[Worker Manager] Counter flush error: %v", err)
			}
		}
	}
}

// settingsRefreshWorker periodically reloads app settings from the database
func (m *Manager) settingsRefreshWorker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.stopCh:
			log.Info("[Worker Manager] Settings refresh worker stopping")
			return
		case <-m.settingsRefreshTicker.C:
			if err := models.LoadSettings(database.GetDB()); err != nil {
				log.Errorf("[Worker Manager] Settings refresh error: %v", err)
			}
		}
	}
}

// IsRunning returns whether the manager is currently running
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}
