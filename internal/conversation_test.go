package internal

import (
	"testing"
	"time"
)

// fixedGenerator always replies with the same string.
type fixedGenerator struct {
	reply string
}

func (g fixedGenerator) Reply(string) string { return g.reply }

func newTestEngine() *Engine {
	return NewEngine(fixedGenerator{reply: "done"}, 5*time.Millisecond)
}

func TestEngine_SeededWithGreeting(t *testing.T) {
	e := newTestEngine()

	msgs := e.Messages()
	if len(msgs) != 1 {
		t.Fatalf("new engine has %d messages, want 1", len(msgs))
	}
	if msgs[0].Role != RoleAssistant {
		t.Errorf("seed role = %q, want assistant", msgs[0].Role)
	}
	if msgs[0].Content != Greeting {
		t.Errorf("seed content = %q, want greeting", msgs[0].Content)
	}
	if e.State() != StateIdle {
		t.Errorf("initial state = %v, want Idle", e.State())
	}
}

func TestEngine_SubmitAppendsTrimmedUserMessage(t *testing.T) {
	e := newTestEngine()

	if !e.Submit("  Create a gear  ") {
		t.Fatal("Submit() rejected valid input")
	}

	msgs := e.Messages()
	if len(msgs) != 2 {
		t.Fatalf("log has %d messages, want 2", len(msgs))
	}
	last := msgs[len(msgs)-1]
	if last.Role != RoleUser {
		t.Errorf("appended role = %q, want user", last.Role)
	}
	if last.Content != "Create a gear" {
		t.Errorf("appended content = %q, want trimmed text", last.Content)
	}
	if e.State() != StateGenerating {
		t.Errorf("state = %v, want Generating", e.State())
	}
}

func TestEngine_SubmitRejectsBlank(t *testing.T) {
	e := newTestEngine()

	for _, input := range []string{"", "   ", "\t\n"} {
		if e.Submit(input) {
			t.Errorf("Submit(%q) accepted blank input", input)
		}
	}
	if len(e.Messages()) != 1 {
		t.Errorf("blank submissions changed the log: %d messages", len(e.Messages()))
	}
	if e.State() != StateIdle {
		t.Errorf("state = %v, want Idle", e.State())
	}
}

func TestEngine_SingleFlight(t *testing.T) {
	e := newTestEngine()

	if !e.Submit("first") {
		t.Fatal("Submit() rejected first message")
	}

	// While generating, further submissions are rejected, not queued
	if e.Submit("second") {
		t.Error("Submit() accepted a message while generating")
	}
	if len(e.Messages()) != 2 {
		t.Errorf("log has %d messages, want 2 (no second user message)", len(e.Messages()))
	}
}

func TestEngine_FinishAppendsAssistant(t *testing.T) {
	e := newTestEngine()
	e.Submit("make a cube")

	msg := e.Finish()

	if msg.Role != RoleAssistant || msg.Content != "done" {
		t.Errorf("Finish() = %+v, want assistant/done", msg)
	}
	if e.State() != StateIdle {
		t.Errorf("state after Finish() = %v, want Idle", e.State())
	}

	msgs := e.Messages()
	if len(msgs) != 3 {
		t.Fatalf("log has %d messages, want 3", len(msgs))
	}
	// User append precedes the corresponding assistant append
	if msgs[1].Role != RoleUser || msgs[2].Role != RoleAssistant {
		t.Errorf("ordering = %q, %q; want user then assistant", msgs[1].Role, msgs[2].Role)
	}
}

func TestEngine_FinishWhileIdleIsNoop(t *testing.T) {
	e := newTestEngine()

	msg := e.Finish()

	if msg != (Message{}) {
		t.Errorf("Finish() while idle = %+v, want zero message", msg)
	}
	if len(e.Messages()) != 1 {
		t.Errorf("Finish() while idle changed the log")
	}
}

func TestEngine_OnAppendHook(t *testing.T) {
	e := newTestEngine()

	var appended []Message
	e.OnAppend(func(m Message) { appended = append(appended, m) })

	e.Submit("hello")
	e.Finish()

	if len(appended) != 2 {
		t.Fatalf("hook fired %d times, want 2", len(appended))
	}
	if appended[0].Role != RoleUser || appended[1].Role != RoleAssistant {
		t.Errorf("hook order = %q, %q; want user then assistant", appended[0].Role, appended[1].Role)
	}
}

func TestEngine_GenerateFullCycle(t *testing.T) {
	e := newTestEngine()

	done := make(chan Message, 1)
	task, ok := e.Generate("Create a gear with 12 teeth", func(m Message) { done <- m })
	if !ok {
		t.Fatal("Generate() rejected valid input")
	}
	if task == nil {
		t.Fatal("Generate() returned nil task")
	}

	// Submission effects are visible immediately
	if len(e.Messages()) != 2 {
		t.Errorf("log has %d messages before completion, want 2", len(e.Messages()))
	}
	if e.State() != StateGenerating {
		t.Errorf("state = %v, want Generating", e.State())
	}

	select {
	case msg := <-done:
		if msg.Role != RoleAssistant {
			t.Errorf("completion role = %q, want assistant", msg.Role)
		}
	case <-time.After(time.Second):
		t.Fatal("generation did not complete")
	}

	if e.State() != StateIdle {
		t.Errorf("state after completion = %v, want Idle", e.State())
	}
	msgs := e.Messages()
	if len(msgs) != 3 {
		t.Fatalf("log has %d messages after completion, want 3", len(msgs))
	}
	if msgs[2].Role != RoleAssistant {
		t.Errorf("last message role = %q, want assistant", msgs[2].Role)
	}
}

func TestEngine_GenerateRejectsWhileGenerating(t *testing.T) {
	e := NewEngine(fixedGenerator{reply: "done"}, 100*time.Millisecond)

	if _, ok := e.Generate("first", nil); !ok {
		t.Fatal("Generate() rejected first message")
	}
	if task, ok := e.Generate("second", nil); ok || task != nil {
		t.Error("Generate() accepted a second in-flight generation")
	}
}

func TestEngine_MessagesReturnsCopy(t *testing.T) {
	e := newTestEngine()

	msgs := e.Messages()
	msgs[0].Content = "mutated"

	if e.Messages()[0].Content != Greeting {
		t.Error("Messages() exposed internal state to mutation")
	}
}
