package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zft5024/manus-aicad/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExporter_Export(t *testing.T) {
	tests := []struct {
		name       string
		transcript *internal.Transcript
		contains   []string
	}{
		{
			name:       "canned exchange",
			transcript: internal.CreateTestTranscript("ada@example.com"),
			contains:   []string{"user: ada@example.com", "saved_at:", "role: user"},
		},
		{
			name:       "no messages",
			transcript: internal.CreateTestTranscriptWithMessages("bob@example.com", []internal.Message{}),
			contains:   []string{"messages: []"},
		},
	}

	exporter := &YAMLExporter{}

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

			var decoded internal.Transcript
			if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not valid YAML: %v", err)
			}
			if len(decoded.Messages) != len(tt.transcript.Messages) {
				t.Errorf("round trip has %d messages, want %d", len(decoded.Messages), len(tt.transcript.Messages))
			}
		})
	}
}

func TestYAMLExporter_Extension(t *testing.T) {
	exporter := &YAMLExporter{}
	if got := exporter.Extension(); got != "yaml" {
		t.Errorf("Extension() = %v, want yaml", got)
	}
}
