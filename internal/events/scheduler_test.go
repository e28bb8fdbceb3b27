package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualSchedulerAdvance(t *testing.T) {
	m := NewManualScheduler()

	var fired []string
	m.Schedule(3*time.Second, func() { fired = append(fired, "late") })
	m.Schedule(0, func() { fired = append(fired, "now") })
	m.Schedule(time.Second, func() { fired = append(fired, "soon") })
	assert.Equal(t, 3, m.Pending())

	m.Advance(0)
	assert.Equal(t, []string{"now"}, fired)
	assert.Equal(t, 2, m.Pending())

	m.Advance(2 * time.Second)
	assert.Equal(t, []string{"now", "soon"}, fired)

	m.Advance(time.Second)
	assert.Equal(t, []string{"now", "soon", "late"}, fired)
	assert.Equal(t, 0, m.Pending())
}

func TestManualSchedulerFiresOnce(t *testing.T) {
	m := NewManualScheduler()

	count := 0
	m.Schedule(time.Second, func() { count++ })

	m.Advance(5 * time.Second)
	m.Advance(5 * time.Second)
	assert.Equal(t, 1, count, "a task must not fire again on later advances")
}

func TestManualSchedulerOrdering(t *testing.T) {
	m := NewManualScheduler()

	var fired []int
	m.Schedule(2*time.Second, func() { fired = append(fired, 3) })
	m.Schedule(time.Second, func() { fired = append(fired, 1) })
	m.Schedule(time.Second, func() { fired = append(fired, 2) })

	m.Advance(10 * time.Second)
	assert.Equal(t, []int{1, 2, 3}, fired, "tasks run by due time, then schedule order")
}

func TestManualSchedulerTasksCanReschedule(t *testing.T) {
	m := NewManualScheduler()

	var fired []string
	m.Schedule(time.Second, func() {
		fired = append(fired, "first")
		m.Schedule(time.Second, func() { fired = append(fired, "second") })
	})

	m.Advance(time.Second)
	assert.Equal(t, []string{"first"}, fired)
	assert.Equal(t, 1, m.Pending())

	m.Advance(time.Second)
	assert.Equal(t, []string{"first", "second"}, fired)
}
