package domain

import "time"

// DialogState marks which field of the in-progress report the next text
// event will populate. The state alone determines the target slot.
type DialogState string

const (
	StateAwaitCrew             DialogState = "await_crew"
	StateAwaitWell             DialogState = "await_well"
	StateAwaitField            DialogState = "await_field"
	StateAwaitOpName           DialogState = "await_op_name"
	StateAwaitOpStart          DialogState = "await_op_start"
	StateAwaitOpEnd            DialogState = "await_op_end"
	StateAwaitOpEquipment      DialogState = "await_op_equipment"
	StateAwaitOpRepresentative DialogState = "await_op_representative"
	StateAwaitOpMaterials      DialogState = "await_op_materials"
	StateAwaitAction           DialogState = "await_action"
)

// Session is the per-user dialogue state for one in-progress report.
// Created on the start trigger (overwriting any prior session for the
// user), mutated by every subsequent text event, cleared on finalize.
// Pending is the operation currently being filled; it is committed to
// Operations atomically once its last field arrives.
type Session struct {
	UserID     int64
	ChatID     int64
	State      DialogState
	Header     Header
	Operations []Operation
	Pending    *Operation
	StartedAt  time.Time
	UpdatedAt  time.Time
}

// NewSession creates a fresh session positioned at the first dialogue state
func NewSession(userID, chatID int64, now time.Time) *Session {
	return &Session{
		UserID:    userID,
		ChatID:    chatID,
		State:     StateAwaitCrew,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// BeginOperation starts a fresh pending operation
func (s *Session) BeginOperation() {
	s.Pending = &Operation{}
}

// CommitPending appends the pending operation to the completed list and
// clears it. The shift label is derived from the start time at commit.
func (s *Session) CommitPending() {
	if s.Pending == nil {
		return
	}
	op := *s.Pending
	op.Shift = ShiftLabelFor(op.StartTime)
	s.Operations = append(s.Operations, op)
	s.Pending = nil
}

// Clone returns an independent copy of the session. Stores hand out
// clones so a failed transition never leaks partial mutations back.
func (s *Session) Clone() *Session {
	c := *s
	if s.Pending != nil {
		pending := *s.Pending
		c.Pending = &pending
	}
	if s.Operations != nil {
		c.Operations = make([]Operation, len(s.Operations))
		copy(c.Operations, s.Operations)
	}
	return &c
}
