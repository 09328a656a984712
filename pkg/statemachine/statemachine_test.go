package statemachine

import (
	"testing"
)

type counter struct {
	ticks int
	limit int
}

func countingState(c *counter) StateFn[counter] {
	c.ticks++
	if c.ticks >= c.limit {
		return nil
	}
	return countingState
}

func TestStepRunsUntilTerminal(t *testing.T) {
	c := &counter{limit: 3}
	sm := NewStateMachine(c, countingState)

	steps := 0
	for sm.Step() {
		steps++
	}
	if c.ticks != 3 {
		t.Errorf("Expected 3 ticks, got %d", c.ticks)
	}
	if sm.GetCurrentState() != nil {
		t.Error("Expected terminal state to be nil")
	}
	// A terminated machine stays terminated
	if sm.Step() {
		t.Error("Expected Step to report false after termination")
	}
}

func TestDispatchSetsAndRuns(t *testing.T) {
	c := &counter{limit: 10}
	sm := NewStateMachine[counter](c, nil)

	sm.Dispatch(countingState)
	if c.ticks != 1 {
		t.Errorf("Expected one tick after dispatch, got %d", c.ticks)
	}
	if sm.GetCurrentState() == nil {
		t.Error("Expected a next state after dispatch")
	}
}

func TestSetState(t *testing.T) {
	c := &counter{limit: 1}
	sm := NewStateMachine[counter](c, nil)
	sm.SetState(countingState)
	if sm.GetCurrentState() == nil {
		t.Error("Expected SetState to install the state")
	}
	if c.ticks != 0 {
		t.Error("Expected SetState not to run the state")
	}
}
