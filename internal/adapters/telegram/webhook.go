package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"shiftbot/internal/dialog"
	"shiftbot/internal/logging"
	"shiftbot/internal/ports"
	"shiftbot/internal/report"
)

// Handler receives webhook updates and routes them through the dialogue
// machine. Events for the same user are strictly serialized; events for
// different users may run concurrently.
type Handler struct {
	machine       *dialog.Machine
	replier       ports.Replier
	exporter      ports.Exporter
	broadcastChat int64
	token         string
	mux           *http.ServeMux

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewHandler creates the webhook handler. broadcastChat of zero means
// finalized reports are not broadcast anywhere.
func NewHandler(machine *dialog.Machine, replier ports.Replier, exporter ports.Exporter, broadcastChat int64, token string) *Handler {
	h := &Handler{
		machine:       machine,
		replier:       replier,
		exporter:      exporter,
		broadcastChat: broadcastChat,
		token:         token,
		locks:         make(map[int64]*sync.Mutex),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("POST /webhook/"+token, h.handleUpdate)
	h.mux = mux

	return h
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleUpdate processes one webhook delivery. The response is always
// 200 once the payload decodes; signalling an error would only make the
// platform redeliver an update we already consumed.
func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logging.Logger.Warn("failed to decode update", "error", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	h.dispatch(r.Context(), update.Message)
	w.WriteHeader(http.StatusOK)
}

// dispatch serializes the event per user and drives the machine
func (h *Handler) dispatch(ctx context.Context, msg *Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	lock := h.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	var reply dialog.Reply
	var err error
	if msg.Text == "/start" {
		reply, err = h.machine.HandleStart(ctx, userID, chatID)
	} else {
		reply, err = h.machine.HandleText(ctx, userID, chatID, msg.Text)
	}
	if err != nil {
		// The machine already shaped a user-visible retry message.
		logging.Logger.Error("dialogue event failed", "user_id", userID, "error", err)
	}

	if reply.Text == "" {
		return
	}

	opts := &ports.ReplyOptions{
		Keyboard:       reply.Keyboard,
		RemoveKeyboard: reply.RemoveKeyboard,
	}
	if err := h.replier.Reply(ctx, chatID, reply.Text, opts); err != nil {
		logging.Logger.Error("failed to send reply", "chat_id", chatID, "error", err)
		return
	}

	if reply.Report != nil {
		h.broadcast(ctx, reply)
	}
}

// broadcast forwards a finalized report to the configured channel along
// with its export attachment
func (h *Handler) broadcast(ctx context.Context, reply dialog.Reply) {
	if h.broadcastChat == 0 {
		return
	}

	if err := h.replier.Reply(ctx, h.broadcastChat, reply.Text, nil); err != nil {
		logging.Logger.Error("failed to broadcast report", "report_id", reply.Report.ID, "error", err)
		return
	}

	data, err := h.exporter.Export(*reply.Report, report.RenderRecords(*reply.Report))
	if err != nil {
		logging.Logger.Error("failed to export report for broadcast", "report_id", reply.Report.ID, "error", err)
		return
	}
	if err := h.replier.SendDocument(ctx, h.broadcastChat, h.exporter.Filename(*reply.Report), data); err != nil {
		logging.Logger.Error("failed to send report document", "report_id", reply.Report.ID, "error", err)
	}
}

func (h *Handler) lockFor(userID int64) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()

	lock, ok := h.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		h.locks[userID] = lock
	}
	return lock
}
