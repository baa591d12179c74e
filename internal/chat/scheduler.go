package chat

import (
	"sync"
	"time"
)

// Default reply delays, matching the widget's typing pause.
const (
	DefaultOptionDelay = 500 * time.Millisecond
	DefaultTextDelay   = 800 * time.Millisecond
)

// Scheduler posts deliveries on a channel once their typing delay elapses.
// The owner of the session reads C and applies what arrives.
type Scheduler struct {
	optionDelay time.Duration
	textDelay   time.Duration

	mu      sync.Mutex
	nextID  uint64
	timers  map[uint64]*time.Timer
	stopped bool
	out     chan Delivery
	done    chan struct{}
}

// NewScheduler creates a scheduler. Non-positive delays use the defaults.
func NewScheduler(optionDelay, textDelay time.Duration) *Scheduler {
	if optionDelay <= 0 {
		optionDelay = DefaultOptionDelay
	}
	if textDelay <= 0 {
		textDelay = DefaultTextDelay
	}
	return &Scheduler{
		optionDelay: optionDelay,
		textDelay:   textDelay,
		timers:      make(map[uint64]*time.Timer),
		out:         make(chan Delivery, 8),
		done:        make(chan struct{}),
	}
}

// Delay returns the typing delay for a reply kind.
func (s *Scheduler) Delay(kind string) time.Duration {
	if kind == KindText {
		return s.textDelay
	}
	return s.optionDelay
}

// C receives deliveries whose delay has elapsed.
func (s *Scheduler) C() <-chan Delivery { return s.out }

// Schedule arranges for d to be posted after its delay. It returns false
// once the scheduler is stopped.
func (s *Scheduler) Schedule(d Delivery) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return false
	}
	id := s.nextID
	s.nextID++
	s.timers[id] = time.AfterFunc(s.Delay(d.Reply.Kind), func() {
		s.fire(id, d)
	})
	return true
}

// Pending is the number of deliveries still waiting on their timer.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *Scheduler) fire(id uint64, d Delivery) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	s.mu.Unlock()

	select {
	case s.out <- d:
	case <-s.done:
	}
}

// Stop cancels every pending delivery. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	close(s.done)
}
