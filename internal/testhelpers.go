package internal

// Test helpers shared across packages. Kept out of _test.go files so the
// export package's tests can use them too.

// CreateTestTranscript builds a transcript with a canned exchange.
func CreateTestTranscript(user string) *Transcript {
	return CreateTestTranscriptWithMessages(user, []Message{
		{Role: RoleAssistant, Content: Greeting},
		{Role: RoleUser, Content: "Create a simple gear with 12 teeth"},
		{Role: RoleAssistant, Content: "I've generated a 3D CAD model based on your description."},
	})
}

// CreateTestTranscriptWithMessages builds a transcript around the given
// messages with a fixed timestamp.
func CreateTestTranscriptWithMessages(user string, messages []Message) *Transcript {
	return &Transcript{
		User:     user,
		SavedAt:  "2024-01-01T00:00:00Z",
		Messages: messages,
	}
}
