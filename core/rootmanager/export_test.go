package rootmanager

import "time"

// SetClock replaces the manager's time source so external tests can
// steer dispute windows and snapshot boundaries.
func SetClock(m *Manager, now func() time.Time) {
	m.now = now
}
