package share

import (
	"sync"
	"time"

	"github.com/vytor/chronoquest/internal/models"
)

// DefaultResetDelay is how long copied/error stays visible.
const DefaultResetDelay = 2 * time.Second

// StatusTracker holds the outcome of the last share attempt and reverts it
// to idle after a delay. A new outcome replaces any pending revert.
type StatusTracker struct {
	mu     sync.Mutex
	delay  time.Duration
	status models.ShareStatus
	timer  *time.Timer
	// gen invalidates a revert whose timer fired while a newer Set held mu.
	gen uint64
}

func NewStatusTracker(delay time.Duration) *StatusTracker {
	if delay <= 0 {
		delay = DefaultResetDelay
	}
	return &StatusTracker{delay: delay, status: models.ShareIdle}
}

func (s *StatusTracker) Status() models.ShareStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Set records an outcome and schedules the revert to idle.
func (s *StatusTracker) Set(status models.ShareStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	s.status = status
	if status == models.ShareIdle {
		return
	}
	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			return
		}
		s.status = models.ShareIdle
		s.timer = nil
	})
}

// Record sets copied when err is nil and error otherwise.
func (s *StatusTracker) Record(err error) models.ShareStatus {
	status := models.ShareCopied
	if err != nil {
		status = models.ShareError
	}
	s.Set(status)
	return status
}

// Reset returns to idle immediately and drops any pending revert.
func (s *StatusTracker) Reset() {
	s.Set(models.ShareIdle)
}

func (s *StatusTracker) cancelLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
