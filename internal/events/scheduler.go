// Package events delivers signed event envelopes to registered webhook
// endpoints and runs the simulator's delayed effects.
package events

import (
	"sort"
	"sync"
	"time"

	"github.com/paysim/paysim/internal/metrics"
)

// Scheduler runs a task after a delay. Once scheduled a task always
// fires; there is no cancellation.
type Scheduler interface {
	Schedule(delay time.Duration, task func())
}

// TimerScheduler fires tasks on real wall-clock timers.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, task func()) {
	metrics.EventsScheduledTotal.Inc()
	time.AfterFunc(delay, task)
}

type manualTask struct {
	due  time.Duration
	seq  int
	task func()
}

// ManualScheduler holds tasks until simulated time is advanced, so tests
// control exactly when delayed effects fire. Each task fires once.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []manualTask
}

// NewManualScheduler returns a scheduler at simulated time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (m *ManualScheduler) Schedule(delay time.Duration, task func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	metrics.EventsScheduledTotal.Inc()
	m.seq++
	m.tasks = append(m.tasks, manualTask{due: m.now + delay, seq: m.seq, task: task})
}

// Advance moves simulated time forward and synchronously runs every task
// that came due, in due-time then schedule order. Tasks run outside the
// lock so they may schedule further work.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	var due, rest []manualTask
	for _, t := range m.tasks {
		if t.due <= m.now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	m.tasks = rest
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.task()
	}
}

// Pending reports how many tasks have not fired yet.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}
