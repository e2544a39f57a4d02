package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftbot/internal/adapters/export"
	"shiftbot/internal/adapters/memory"
	"shiftbot/internal/dialog"
	"shiftbot/internal/domain"
	"shiftbot/internal/ports"
	"shiftbot/internal/report"
)

const testToken = "test-token"

// capturingReplier records every outgoing message
type capturingReplier struct {
	mu        sync.Mutex
	messages  []sentMessage
	documents []sentDocument
}

type sentMessage struct {
	chatID int64
	text   string
	opts   *ports.ReplyOptions
}

type sentDocument struct {
	chatID   int64
	filename string
}

func (c *capturingReplier) Reply(_ context.Context, chatID int64, text string, opts *ports.ReplyOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, sentMessage{chatID: chatID, text: text, opts: opts})
	return nil
}

func (c *capturingReplier) SendDocument(_ context.Context, chatID int64, filename string, _ []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.documents = append(c.documents, sentDocument{chatID: chatID, filename: filename})
	return nil
}

func (c *capturingReplier) lastMessage() sentMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.messages[len(c.messages)-1]
}

// assemblingFinalizer finalizes without persistence
type assemblingFinalizer struct{}

func (assemblingFinalizer) Finalize(_ context.Context, session *domain.Session) (*domain.Report, error) {
	rep := report.Assemble(session, 1, fmt.Sprintf("operator-%d", session.UserID), time.Now())
	rep.ID = "report-1"
	return &rep, nil
}

func newTestHandler(broadcastChat int64) (*Handler, *capturingReplier) {
	replier := &capturingReplier{}
	machine := dialog.NewMachine(memory.NewSessionStore(0), assemblingFinalizer{})
	handler := NewHandler(machine, replier, export.NewCSVExporter(), broadcastChat, testToken)
	return handler, replier
}

func postUpdate(t *testing.T, server *httptest.Server, token string, userID int64, text string) *http.Response {
	t.Helper()
	update := Update{
		UpdateID: 1,
		Message: &Message{
			From: &User{ID: userID},
			Chat: Chat{ID: userID},
			Text: text,
		},
	}
	body, err := json.Marshal(update)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/webhook/"+token, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestHandler_Health(t *testing.T) {
	handler, _ := newTestHandler(0)
	server := httptest.NewServer(handler)
	defer server.Close()

	resp, err := http.Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_WrongTokenIsNotFound(t *testing.T) {
	handler, _ := newTestHandler(0)
	server := httptest.NewServer(handler)
	defer server.Close()

	resp := postUpdate(t, server, "wrong-token", 42, "/start")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_StartPromptsForCrew(t *testing.T) {
	handler, replier := newTestHandler(0)
	server := httptest.NewServer(handler)
	defer server.Close()

	resp := postUpdate(t, server, testToken, 42, "/start")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, replier.messages, 1)
	assert.Equal(t, int64(42), replier.messages[0].chatID)
	assert.Contains(t, replier.messages[0].text, "crew")
}

func TestHandler_MalformedBodyIsBadRequest(t *testing.T) {
	handler, _ := newTestHandler(0)
	server := httptest.NewServer(handler)
	defer server.Close()

	resp, err := http.Post(server.URL+"/webhook/"+testToken, "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_UpdateWithoutTextIsIgnored(t *testing.T) {
	handler, replier := newTestHandler(0)
	server := httptest.NewServer(handler)
	defer server.Close()

	resp := postUpdate(t, server, testToken, 42, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, replier.messages)
}

func TestHandler_FullDialogueBroadcastsFinalReport(t *testing.T) {
	const broadcastChat int64 = -100123
	handler, replier := newTestHandler(broadcastChat)
	server := httptest.NewServer(handler)
	defer server.Close()

	inputs := []string{
		"/start", "12", "Well 45", "FieldX",
		"Repair pump", "09:00", "11:00", "Crane", "Ivanov", "Seals",
		dialog.ActionFinalize,
	}
	for _, input := range inputs {
		resp := postUpdate(t, server, testToken, 42, input)
		resp.Body.Close()
	}

	last := replier.lastMessage()
	assert.Equal(t, broadcastChat, last.chatID, "final summary is broadcast")
	assert.Contains(t, last.text, "Crew: 12")
	assert.Contains(t, last.text, "Repair pump")

	require.Len(t, replier.documents, 1)
	assert.Equal(t, broadcastChat, replier.documents[0].chatID)
	assert.Equal(t, "shift-report-crew12-1.csv", replier.documents[0].filename)
}

func TestHandler_NoBroadcastWhenUnconfigured(t *testing.T) {
	handler, replier := newTestHandler(0)
	server := httptest.NewServer(handler)
	defer server.Close()

	inputs := []string{
		"/start", "12", "w", "f",
		"op", "09:00", "10:00", "e", "r", "m",
		dialog.ActionFinalize,
	}
	for _, input := range inputs {
		resp := postUpdate(t, server, testToken, 42, input)
		resp.Body.Close()
	}

	assert.Empty(t, replier.documents)
	for _, msg := range replier.messages {
		assert.Equal(t, int64(42), msg.chatID)
	}
}
