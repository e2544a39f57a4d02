package ports

import "context"

// ReplyOptions carries optional markup for an outgoing message
type ReplyOptions struct {
	// Keyboard is a reply keyboard layout, one row per inner slice
	Keyboard [][]string
	// RemoveKeyboard hides any previously sent reply keyboard
	RemoveKeyboard bool
}

// Replier delivers outgoing messages to the chat platform
type Replier interface {
	// Reply sends a text message to the given chat
	Reply(ctx context.Context, chatID int64, text string, opts *ReplyOptions) error

	// SendDocument sends a named byte attachment to the given chat
	SendDocument(ctx context.Context, chatID int64, filename string, data []byte) error
}
