package domain

import (
	"errors"
	"time"
)

type WorkerStatus string

const (
	WorkerStatusOnline  WorkerStatus = "online"
	WorkerStatusOffline WorkerStatus = "offline"
)

// Worker is a registered kitchen-simulator instance. Each instance
// heartbeats while running so tracking can tell live simulators from
// dead ones.
type Worker struct {
	ID              int
	Name            string
	Modes           string
	Status          WorkerStatus
	LastSeen        time.Time
	OrdersProcessed int
	CreatedAt       time.Time
}

func NewWorker(name, modes string) (*Worker, error) {
	if name == "" {
		return nil, errors.New("worker name is required")
	}

	return &Worker{
		Name:      name,
		Modes:     modes,
		Status:    WorkerStatusOnline,
		LastSeen:  time.Now(),
		CreatedAt: time.Now(),
	}, nil
}

func (w *Worker) SetOffline() {
	w.Status = WorkerStatusOffline
}

// IsOnline treats a stale heartbeat as offline regardless of the
// stored status.
func (w *Worker) IsOnline(heartbeatTimeout time.Duration) bool {
	if w.Status == WorkerStatusOffline {
		return false
	}
	return time.Since(w.LastSeen) <= heartbeatTimeout
}
