package telegram

// Update is the incoming webhook payload. Only the fields the bot
// consumes are mapped.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message is an incoming chat message
type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// User is the message sender
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Chat is the conversation the message arrived in
type Chat struct {
	ID int64 `json:"id"`
}

// replyKeyboardMarkup is the sendMessage reply_markup for a one-time
// reply keyboard
type replyKeyboardMarkup struct {
	Keyboard        [][]keyboardButton `json:"keyboard"`
	ResizeKeyboard  bool               `json:"resize_keyboard"`
	OneTimeKeyboard bool               `json:"one_time_keyboard"`
}

type keyboardButton struct {
	Text string `json:"text"`
}

// replyKeyboardRemove hides a previously sent reply keyboard
type replyKeyboardRemove struct {
	RemoveKeyboard bool `json:"remove_keyboard"`
}

// apiResponse is the Bot API response envelope
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}
