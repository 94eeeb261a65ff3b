package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/zft5024/manus-aicad/internal"
)

func TestJSONExporter_Export(t *testing.T) {
	tests := []struct {
		name       string
		transcript *internal.Transcript
		contains   []string
	}{
		{
			name:       "canned exchange",
			transcript: internal.CreateTestTranscript("ada@example.com"),
			contains:   []string{`"user": "ada@example.com"`, `"saved_at"`, `"role": "user"`},
		},
		{
			name:       "no messages",
			transcript: internal.CreateTestTranscriptWithMessages("bob@example.com", []internal.Message{}),
			contains:   []string{`"messages": []`},
		},
		{
			name: "anonymous transcript omits user",
			transcript: internal.CreateTestTranscriptWithMessages("", []internal.Message{
				{Role: internal.RoleUser, Content: "hello"},
			}),
			contains: []string{`"content": "hello"`},
		},
	}

	exporter := &JSONExporter{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := exporter.Export(tt.transcript, &buf); err != nil {
				t.Fatalf("Export() error = %v", err)
			}

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q:\n%s", want, output)
				}
			}

			// Output must round-trip as a single JSON document
			var decoded internal.Transcript
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if len(decoded.Messages) != len(tt.transcript.Messages) {
				t.Errorf("round trip has %d messages, want %d", len(decoded.Messages), len(tt.transcript.Messages))
			}
		})
	}
}

func TestJSONExporter_OmitsEmptyUser(t *testing.T) {
	exporter := &JSONExporter{}

	var buf bytes.Buffer
	if err := exporter.Export(internal.CreateTestTranscriptWithMessages("", nil), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if strings.Contains(buf.String(), `"user"`) {
		t.Errorf("empty user was not omitted:\n%s", buf.String())
	}
}

func TestJSONExporter_Extension(t *testing.T) {
	exporter := &JSONExporter{}
	if got := exporter.Extension(); got != "json" {
		t.Errorf("Extension() = %v, want json", got)
	}
}
