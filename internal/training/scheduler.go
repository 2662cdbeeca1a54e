package training

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Purpose tags what a scheduled task does when it fires.
type Purpose int

const (
	PurposeNone Purpose = iota
	PurposeAdvanceCorrect
	PurposeAdvanceIncorrect
	PurposeClearInvalid
)

func (p Purpose) String() string {
	switch p {
	case PurposeAdvanceCorrect:
		return "advance-correct"
	case PurposeAdvanceIncorrect:
		return "advance-incorrect"
	case PurposeClearInvalid:
		return "clear-invalid"
	}
	return "none"
}

type task struct {
	id      uint64
	purpose Purpose
	timer   clockwork.Timer
}

// scheduler holds at most one live task. Callers serialize access.
type scheduler struct {
	clock   clockwork.Clock
	lastID  uint64
	current *task
}

func newScheduler(clock clockwork.Clock) *scheduler {
	return &scheduler{clock: clock}
}

// schedule cancels the live task and arms a new one.
// fire receives the task id so that a stale fire can be told apart.
func (s *scheduler) schedule(d time.Duration, purpose Purpose, fire func(id uint64)) {
	s.cancel()
	s.lastID++
	id := s.lastID
	s.current = &task{
		id:      id,
		purpose: purpose,
		timer: s.clock.AfterFunc(d, func() {
			fire(id)
		}),
	}
}

// cancel stops the live task and clears its purpose.
func (s *scheduler) cancel() {
	if s.current == nil {
		return
	}
	s.current.timer.Stop()
	s.current = nil
}

func (s *scheduler) pending() Purpose {
	if s.current == nil {
		return PurposeNone
	}
	return s.current.purpose
}

// take consumes the live task if id still refers to it.
func (s *scheduler) take(id uint64) (Purpose, bool) {
	if s.current == nil || s.current.id != id {
		return PurposeNone, false
	}
	purpose := s.current.purpose
	s.current = nil
	return purpose, true
}
