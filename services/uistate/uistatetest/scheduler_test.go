package uistatetest_test

import (
	"testing"
	"time"

	"advocacia_elite/services/uistate"
	"advocacia_elite/services/uistate/uistatetest"

	"github.com/stretchr/testify/assert"
)

var _ uistate.Scheduler = (*uistatetest.Scheduler)(nil)

func TestScheduler(t *testing.T) {
	var sched uistatetest.Scheduler
	var a, b int

	cancelA := sched.Every(time.Second, func() { a++ })
	sched.Every(2*time.Second, func() { b++ })
	assert.Equal(t, 2, sched.Live())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sched.Intervals())

	sched.Tick()
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)

	cancelA()
	sched.Tick()
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 1, sched.Live())

	sched.FireAll()
	assert.Equal(t, 2, a)
	assert.Equal(t, 3, b)
}
