package internal

import "time"

// Transcript is a point-in-time snapshot of a conversation, produced when
// the user saves the session from the conversation screen. Conversations
// themselves are not persisted; a transcript is an explicit export.
type Transcript struct {
	User     string    `json:"user,omitempty" yaml:"user,omitempty"`
	SavedAt  string    `json:"saved_at" yaml:"saved_at"`
	Messages []Message `json:"messages" yaml:"messages"`
}

// NewTranscript snapshots the given messages for the given user.
func NewTranscript(user string, messages []Message) *Transcript {
	msgs := make([]Message, len(messages))
	copy(msgs, messages)
	return &Transcript{
		User:     user,
		SavedAt:  time.Now().UTC().Format(time.RFC3339),
		Messages: msgs,
	}
}
