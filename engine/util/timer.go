package util

import (
	"fmt"
	"math"
	"sort"
	"time"
)

type TimerState struct {
	name         string
	lastDuration float64

	totalDuration  float64
	executionCount int64

	minDuration float64
	maxDuration float64
}

func (t *TimerState) Name() string {
	return t.name
}

func (t *TimerState) Count() int64 {
	return t.executionCount
}

func (t *TimerState) Last() float64 {
	return t.lastDuration
}

func (t *TimerState) Average() float64 {
	if t.executionCount == 0 {
		return 0
	}
	return t.totalDuration / float64(t.executionCount)
}

func (t *TimerState) String() string {
	if t.executionCount == 0 {
		return fmt.Sprintf("%s: never ran", t.name)
	}
	return fmt.Sprintf("%s x%d last: %.2fms, avg: %.2fms, min: %.2fms, max: %.2fms", t.name, t.executionCount, t.lastDuration, t.Average(), t.minDuration, t.maxDuration)
}

// Timer collects wall clock durations per named section, in milliseconds.
// It is not safe for concurrent use.
type Timer struct {
	states map[string]*TimerState
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*TimerState),
	}
}

func (t *Timer) GetState(name string) *TimerState {
	return t.states[name]
}

func (t *Timer) Reset() {
	for _, state := range t.states {
		state.lastDuration = 0
		state.totalDuration = 0
		state.executionCount = 0
		state.minDuration = math.MaxFloat64
		state.maxDuration = 0
	}
}

func (t *Timer) String() string {
	names := make([]string, 0, len(t.states))
	for name := range t.states {
		names = append(names, name)
	}
	sort.Strings(names)
	var str string
	for _, name := range names {
		str += t.states[name].String() + "\n"
	}
	return str
}

// Start begins measuring the named section. Calling the returned func stops
// the measurement and reports the duration in milliseconds.
func (t *Timer) Start(name string) func() float64 {
	state, ok := t.states[name]
	if !ok {
		state = &TimerState{
			name:        name,
			minDuration: math.MaxFloat64,
		}
		t.states[name] = state
	}
	start := time.Now()
	return func() float64 {
		durationInMS := float64(time.Since(start).Microseconds()) / 1000.0
		state.lastDuration = durationInMS
		state.totalDuration += durationInMS
		state.executionCount++
		if durationInMS < state.minDuration {
			state.minDuration = durationInMS
		}
		if durationInMS > state.maxDuration {
			state.maxDuration = durationInMS
		}
		return durationInMS
	}
}
