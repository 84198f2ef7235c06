// Package task implements the abstract task orchestration pattern from
// spec §4.7: a state-machine contract shared by every long-running,
// user-confirmed operation, plus the single-active-task discipline that
// an application's task slot enforces. It ships one concrete example
// machine, FileOpTask, exercised only in tests — it is not a real file
// mover (spec's Non-goals exclude the file-manager application itself).
package task

import (
	"errors"
	"sync"
)

// State is a task's current state label.
type State string

// IDLE and Completed are the two states in which IsActive reports false
// for every task, concrete or not (spec §4.7).
const (
	StateIdle      State = "IDLE"
	StateCompleted State = "COMPLETED"
)

// Task is the abstract contract every concrete task implements.
type Task interface {
	Start() error
	Cancel()
	IsActive() bool
	GetState() State
}

// ErrAlreadyActive is returned by Slot.Start when the slot already holds
// an active task (spec §4.7: "attempting to start a second fails
// explicitly").
var ErrAlreadyActive = errors.New("task: a task is already active in this slot")

// Slot holds at most one active task for an application (spec §4.7,
// spec §5 "single-active-task invariant"). The zero value is usable.
type Slot struct {
	mu     sync.Mutex
	active Task
}

// Start installs and starts t, failing if a task is already active.
func (s *Slot) Start(t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil && s.active.IsActive() {
		return ErrAlreadyActive
	}
	if err := t.Start(); err != nil {
		return err
	}
	s.active = t
	return nil
}

// Cancel cancels the active task, if any.
func (s *Slot) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		s.active.Cancel()
	}
}

// Active returns the current task and whether one is installed (it may
// no longer be active — callers check IsActive themselves).
func (s *Slot) Active() (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.active != nil
}

// Clear drops the slot's reference to its task. Applications call this
// once a completed or cancelled task has been acknowledged (e.g. its
// result dialog dismissed); the framework itself never clears the slot
// automatically, since the acknowledgment moment is an application
// concern the spec leaves open.
func (s *Slot) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

// Hooks are optional state-enter/exit callbacks a concrete task's
// transitions invoke (spec §4.7: "the framework only provides
// state-enter/exit hooks and the single-active-task invariant").
type Hooks struct {
	OnEnter func(State)
	OnExit  func(State)
}

func (h Hooks) enter(s State) {
	if h.OnEnter != nil {
		h.OnEnter(s)
	}
}

func (h Hooks) exit(s State) {
	if h.OnExit != nil {
		h.OnExit(s)
	}
}
