package internal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Durable store key prefixes for feedback records.
const (
	ContactKeyPrefix  = "aicad_contact:"
	WaitlistKeyPrefix = "aicad_waitlist:"
)

// ContactMessage is a submission from the main screen's contact form.
type ContactMessage struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// WaitlistEntry is an email captured by the landing screen's waitlist form.
type WaitlistEntry struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// FeedbackStore collects contact messages and waitlist signups in the
// KV store so the inbox command has something to show.
type FeedbackStore struct {
	store *KVStore
}

// NewFeedbackStore creates a FeedbackStore over the KV store.
func NewFeedbackStore(store *KVStore) *FeedbackStore {
	return &FeedbackStore{store: store}
}

// AddContact records a contact form submission. Email and message are
// both required.
func (f *FeedbackStore) AddContact(email, message string) error {
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if email == "" || message == "" {
		return fmt.Errorf("contact submission requires email and message")
	}

	record := ContactMessage{
		ID:        uuid.NewString(),
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode contact message: %w", err)
	}
	return f.store.Set(ContactKeyPrefix+record.ID, string(value))
}

// AddWaitlist records a waitlist signup.
func (f *FeedbackStore) AddWaitlist(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("waitlist signup requires an email")
	}

	record := WaitlistEntry{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode waitlist entry: %w", err)
	}
	return f.store.Set(WaitlistKeyPrefix+record.ID, string(value))
}

// Contacts returns all stored contact messages. Malformed records are
// skipped.
func (f *FeedbackStore) Contacts() ([]ContactMessage, error) {
	pairs, err := f.store.List(ContactKeyPrefix + "%")
	if err != nil {
		return nil, err
	}

	messages := make([]ContactMessage, 0, len(pairs))
	for _, pair := range pairs {
		var msg ContactMessage
		if err := json.Unmarshal([]byte(pair.Value), &msg); err != nil {
			logger.Debugw("skipping malformed contact record", "key", pair.Key, "error", err)
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// Waitlist returns all stored waitlist entries. Malformed records are
// skipped.
func (f *FeedbackStore) Waitlist() ([]WaitlistEntry, error) {
	pairs, err := f.store.List(WaitlistKeyPrefix + "%")
	if err != nil {
		return nil, err
	}

	entries := make([]WaitlistEntry, 0, len(pairs))
	for _, pair := range pairs {
		var entry WaitlistEntry
		if err := json.Unmarshal([]byte(pair.Value), &entry); err != nil {
			logger.Debugw("skipping malformed waitlist record", "key", pair.Key, "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
