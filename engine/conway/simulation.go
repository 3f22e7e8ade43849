package conway

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the play-mode tick period.
const DefaultInterval = 100 * time.Millisecond

// Simulation runs a periodic tick on its own goroutine until stopped.
// Each Start opens a new run with its own id; ticks carry that id so a
// receiver can drop work from a run that has since been stopped.
type Simulation struct {
	interval time.Duration
	tick     func(run uint64)

	mu    sync.Mutex
	stop  chan struct{}
	run   uint64 // id of the active run, 0 when idle
	next  uint64
	loops atomic.Int64
}

// NewSimulation returns an idle simulation calling tick every interval
// once started. A non-positive interval uses DefaultInterval.
func NewSimulation(interval time.Duration, tick func(run uint64)) *Simulation {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Simulation{interval: interval, tick: tick}
}

// Start begins ticking. Starting a running simulation is a no-op and
// reports false.
func (s *Simulation) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run != 0 {
		return false
	}
	s.next++
	s.run = s.next
	s.stop = make(chan struct{})
	s.loops.Add(1)
	go s.loop(s.run, s.stop)
	return true
}

// Stop halts ticking. Stopping an idle simulation is a no-op and reports
// false. Stop does not wait for the goroutine: a tick already in flight
// may still be delivered, tagged with the stopped run's id.
func (s *Simulation) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == 0 {
		return false
	}
	close(s.stop)
	s.stop = nil
	s.run = 0
	return true
}

// Running reports whether a run is active.
func (s *Simulation) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run != 0
}

// Active reports whether run is the currently active run.
func (s *Simulation) Active(run uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return run != 0 && run == s.run
}

// Loops returns the number of tick goroutines still alive.
func (s *Simulation) Loops() int {
	return int(s.loops.Load())
}

func (s *Simulation) loop(run uint64, stop <-chan struct{}) {
	defer s.loops.Add(-1)
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			if !s.Active(run) {
				return
			}
			s.tick(run)
		}
	}
}
