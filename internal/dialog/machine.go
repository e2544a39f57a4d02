// Package dialog implements the multi-step dialogue state machine that
// walks an operator through a shift report one field at a time.
package dialog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shiftbot/internal/domain"
	"shiftbot/internal/logging"
	"shiftbot/internal/ports"
	"shiftbot/internal/report"
)

// Finalizer turns a completed session into a persisted report
type Finalizer interface {
	Finalize(ctx context.Context, session *domain.Session) (*domain.Report, error)
}

// Reply is the outgoing message produced by one dialogue step
type Reply struct {
	Text           string
	Keyboard       [][]string
	RemoveKeyboard bool
	// Report is set when this step finalized a report
	Report *domain.Report
}

// step describes one field-collection state: how to validate the
// incoming text, which slot it fills, and where the dialogue goes next.
// The current state alone determines the slot; apply never touches any
// other field.
type step struct {
	prompt   string
	validate func(s *domain.Session, text string) error
	apply    func(s *domain.Session, text string)
	next     domain.DialogState
}

var steps = map[domain.DialogState]step{
	domain.StateAwaitCrew: {
		prompt: promptCrew,
		apply:  func(s *domain.Session, text string) { s.Header.Crew = text },
		next:   domain.StateAwaitWell,
	},
	domain.StateAwaitWell: {
		prompt: promptWell,
		apply:  func(s *domain.Session, text string) { s.Header.Well = text },
		next:   domain.StateAwaitField,
	},
	domain.StateAwaitField: {
		prompt: promptField,
		apply:  func(s *domain.Session, text string) { s.Header.Field = text },
		next:   domain.StateAwaitOpName,
	},
	domain.StateAwaitOpName: {
		prompt: promptOpName,
		apply:  func(s *domain.Session, text string) { s.Pending.Name = text },
		next:   domain.StateAwaitOpStart,
	},
	domain.StateAwaitOpStart: {
		prompt: promptOpStart,
		validate: func(_ *domain.Session, text string) error {
			_, err := domain.ValidateTime(text)
			return err
		},
		apply: func(s *domain.Session, text string) { s.Pending.StartTime = text },
		next:  domain.StateAwaitOpEnd,
	},
	domain.StateAwaitOpEnd: {
		prompt: promptOpEnd,
		validate: func(s *domain.Session, text string) error {
			if _, err := domain.ValidateTime(text); err != nil {
				return err
			}
			return domain.ValidateTimeOrder(s.Pending.StartTime, text)
		},
		apply: func(s *domain.Session, text string) { s.Pending.EndTime = text },
		next:  domain.StateAwaitOpEquipment,
	},
	domain.StateAwaitOpEquipment: {
		prompt: promptOpEquipment,
		apply:  func(s *domain.Session, text string) { s.Pending.Equipment = text },
		next:   domain.StateAwaitOpRepresentative,
	},
	domain.StateAwaitOpRepresentative: {
		prompt: promptOpRepresentati,
		apply:  func(s *domain.Session, text string) { s.Pending.Representative = text },
		next:   domain.StateAwaitOpMaterials,
	},
	domain.StateAwaitOpMaterials: {
		prompt: promptOpMaterials,
		apply:  func(s *domain.Session, text string) { s.Pending.Materials = text },
		next:   domain.StateAwaitAction,
	},
}

// Machine drives the per-user dialogue. It owns no session state itself;
// everything lives behind the SessionStore, so events for the same user
// must be serialized by the caller.
type Machine struct {
	store     ports.SessionStore
	finalizer Finalizer
	now       func() time.Time
}

// NewMachine creates a dialogue machine over the given store and finalizer
func NewMachine(store ports.SessionStore, finalizer Finalizer) *Machine {
	return &Machine{
		store:     store,
		finalizer: finalizer,
		now:       time.Now,
	}
}

// HandleStart begins a fresh session for the user, overwriting any
// in-progress one. An abandoned report is silently discarded.
func (m *Machine) HandleStart(ctx context.Context, userID, chatID int64) (Reply, error) {
	sess := domain.NewSession(userID, chatID, m.now())

	if err := m.store.Save(ctx, sess); err != nil {
		return Reply{Text: promptRetry}, fmt.Errorf("failed to create session: %w", err)
	}

	logging.Logger.Info("session started", "user_id", userID)
	return Reply{Text: greeting + "\n\n" + promptCrew, RemoveKeyboard: true}, nil
}

// HandleText routes one incoming text event through the state machine.
// On validation failure the session is left untouched and the same
// prompt is repeated. On store failure the transition is not committed,
// so a retry with the same text is safe.
func (m *Machine) HandleText(ctx context.Context, userID, chatID int64, text string) (Reply, error) {
	sess, err := m.store.Load(ctx, userID)
	if err != nil {
		return Reply{Text: promptRetry}, fmt.Errorf("failed to load session: %w", err)
	}
	if sess == nil {
		return Reply{Text: promptStart}, nil
	}

	text = strings.TrimSpace(text)

	if sess.State == domain.StateAwaitAction {
		return m.handleAction(ctx, userID, sess, text)
	}

	st, ok := steps[sess.State]
	if !ok {
		// Unknown state can only mean corrupted persisted data.
		logging.Logger.Error("session in unknown state", "user_id", userID, "state", sess.State)
		if err := m.store.Clear(ctx, userID); err != nil {
			logging.Logger.Warn("failed to clear corrupted session", "user_id", userID, "error", err)
		}
		return Reply{Text: promptStart}, nil
	}

	if st.validate != nil {
		if err := st.validate(sess, text); err != nil {
			logging.Logger.Debug("input rejected", "user_id", userID, "state", sess.State, "error", err)
			return Reply{Text: err.Error() + "\n\n" + st.prompt}, nil
		}
	}

	st.apply(sess, text)
	sess.State = st.next
	sess.UpdatedAt = m.now()

	switch sess.State {
	case domain.StateAwaitAction:
		sess.CommitPending()
	case domain.StateAwaitOpName:
		sess.BeginOperation()
	}

	if err := m.store.Save(ctx, sess); err != nil {
		return Reply{Text: promptRetry}, fmt.Errorf("failed to save session: %w", err)
	}

	logging.Logger.Debug("session advanced", "user_id", userID, "state", sess.State)
	return m.promptFor(sess.State), nil
}

// handleAction processes the two-choice menu after a completed operation
func (m *Machine) handleAction(ctx context.Context, userID int64, sess *domain.Session, text string) (Reply, error) {
	switch {
	case strings.EqualFold(text, ActionAddOperation):
		sess.BeginOperation()
		sess.State = domain.StateAwaitOpName
		sess.UpdatedAt = m.now()
		if err := m.store.Save(ctx, sess); err != nil {
			return Reply{Text: promptRetry, Keyboard: actionKeyboard}, fmt.Errorf("failed to save session: %w", err)
		}
		return Reply{Text: promptOpName, RemoveKeyboard: true}, nil

	case strings.EqualFold(text, ActionFinalize):
		rep, err := m.finalizer.Finalize(ctx, sess)
		if err != nil {
			// Session stays at the action menu so the operator can retry.
			return Reply{Text: promptRetry, Keyboard: actionKeyboard}, fmt.Errorf("failed to finalize report: %w", err)
		}

		// The report is persisted; a failed clear is survivable because
		// the next /start overwrites the session anyway.
		if err := m.store.Clear(ctx, userID); err != nil {
			logging.Logger.Warn("failed to clear session after finalize", "user_id", userID, "error", err)
		}

		logging.Logger.Info("report finalized",
			"user_id", userID,
			"report_id", rep.ID,
			"crew", rep.Crew,
			"number", rep.Number,
			"operations", len(rep.Operations))

		return Reply{Text: report.RenderText(*rep), RemoveKeyboard: true, Report: rep}, nil

	default:
		// Unrecognized input at the menu is a no-op re-prompt.
		return Reply{Text: promptAction, Keyboard: actionKeyboard}, nil
	}
}

// promptFor builds the outgoing prompt for the state just entered
func (m *Machine) promptFor(state domain.DialogState) Reply {
	if state == domain.StateAwaitAction {
		return Reply{Text: promptAction, Keyboard: actionKeyboard}
	}
	return Reply{Text: steps[state].prompt}
}
