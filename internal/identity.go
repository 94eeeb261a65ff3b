package internal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Identity represents the authenticated user's profile for the duration
// of a session.
type Identity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Bio     string `json:"bio,omitempty"`
}

// NewIdentity creates an Identity with a fresh ID. When name is empty it
// is derived from the email local part, matching the sign-in behavior of
// the web app this demo descends from.
func NewIdentity(name, email string) Identity {
	if name == "" {
		name = emailLocalPart(email)
	}
	return Identity{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
}

// ParseIdentity parses a persisted JSON identity record. A record without
// an id or email is considered malformed.
func ParseIdentity(value string) (*Identity, error) {
	var id Identity
	if err := json.Unmarshal([]byte(value), &id); err != nil {
		return nil, fmt.Errorf("failed to parse identity JSON: %w", err)
	}
	if id.ID == "" || id.Email == "" {
		return nil, fmt.Errorf("incomplete identity record")
	}
	return &id, nil
}

// Encode serializes the identity for the durable store.
func (id Identity) Encode() (string, error) {
	data, err := json.Marshal(id)
	if err != nil {
		return "", fmt.Errorf("failed to encode identity: %w", err)
	}
	return string(data), nil
}

// ProfileUpdate carries a partial profile edit. Nil fields keep their
// previous value.
type ProfileUpdate struct {
	Name    *string
	Email   *string
	Company *string
	Bio     *string
}

// Apply merges the update into id, leaving unnamed fields untouched.
func (u ProfileUpdate) Apply(id Identity) Identity {
	if u.Name != nil {
		id.Name = *u.Name
	}
	if u.Email != nil {
		id.Email = *u.Email
	}
	if u.Company != nil {
		id.Company = *u.Company
	}
	if u.Bio != nil {
		id.Bio = *u.Bio
	}
	return id
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
