// Package telegram is the chat-transport adapter: a minimal Bot API
// client and the webhook endpoint feeding the dialogue machine.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"shiftbot/internal/ports"
)

const defaultAPIBase = "https://api.telegram.org"

// Client talks to the Bot API. Only sendMessage and sendDocument are
// needed; anything richer is out of scope for this bot.
type Client struct {
	apiBase string
	token   string
	http    *http.Client
}

var _ ports.Replier = (*Client)(nil)

// NewClient creates a Bot API client for the given token
func NewClient(token string) *Client {
	return &Client{
		apiBase: defaultAPIBase,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBase creates a client against a custom API base URL
func NewClientWithBase(token, apiBase string) *Client {
	c := NewClient(token)
	c.apiBase = apiBase
	return c
}

// Reply implements ports.Replier.Reply
func (c *Client) Reply(ctx context.Context, chatID int64, text string, opts *ports.ReplyOptions) error {
	payload := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}

	if opts != nil {
		switch {
		case len(opts.Keyboard) > 0:
			rows := make([][]keyboardButton, len(opts.Keyboard))
			for i, row := range opts.Keyboard {
				buttons := make([]keyboardButton, len(row))
				for j, label := range row {
					buttons[j] = keyboardButton{Text: label}
				}
				rows[i] = buttons
			}
			payload["reply_markup"] = replyKeyboardMarkup{
				Keyboard:        rows,
				ResizeKeyboard:  true,
				OneTimeKeyboard: true,
			}
		case opts.RemoveKeyboard:
			payload["reply_markup"] = replyKeyboardRemove{RemoveKeyboard: true}
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode sendMessage payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendMessage"), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, "sendMessage")
}

// SendDocument implements ports.Replier.SendDocument
func (c *Client) SendDocument(ctx context.Context, chatID int64, filename string, data []byte) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("chat_id", strconv.FormatInt(chatID, 10)); err != nil {
		return err
	}
	part, err := w.CreateFormFile("document", filename)
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL("sendDocument"), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, "sendDocument")
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.apiBase, c.token, method)
}

func (c *Client) do(req *http.Request, method string) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", method, err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("failed to decode %s response (status %d): %w", method, resp.StatusCode, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("%s rejected: %s", method, apiResp.Description)
	}
	return nil
}
