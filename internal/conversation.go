package internal

import (
	"strings"
	"sync"
	"time"
)

// Role identifies the author of a message. Using a dedicated type keeps
// free-form strings out of the log.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn in a conversation. The log is append-only; position
// is insertion order.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Greeting seeds every new conversation as the assistant's opener.
const Greeting = `Hello! I'm your AI CAD assistant. Describe the 3D model you want to create, and I'll generate it for you. For example, try "Create a simple gear with 12 teeth" or "Design a coffee mug with a handle".`

// GenerationState tracks whether a simulated response is pending.
type GenerationState int

const (
	StateIdle GenerationState = iota
	StateGenerating
)

// DefaultGenerationDelay is the simulated generation latency.
const DefaultGenerationDelay = 1500 * time.Millisecond

// Engine owns the ordered message log and the single-flight generation
// state machine. At most one generation is in flight; submissions while
// generating are rejected, not queued. The mutex covers the scheduled
// completion, which runs on a timer goroutine.
type Engine struct {
	mu         sync.Mutex
	messages   []Message
	state      GenerationState
	generator  Generator
	delay      time.Duration
	lastPrompt string
	onAppend   func(Message)
}

// NewEngine creates an engine seeded with the assistant greeting.
func NewEngine(gen Generator, delay time.Duration) *Engine {
	e := &Engine{
		generator: gen,
		delay:     delay,
		state:     StateIdle,
	}
	e.messages = append(e.messages, Message{Role: RoleAssistant, Content: Greeting})
	return e
}

// OnAppend registers a hook invoked after every append. The conversation
// screen uses it to keep the newest message in view.
func (e *Engine) OnAppend(fn func(Message)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onAppend = fn
}

// Messages returns a copy of the log in insertion order.
func (e *Engine) Messages() []Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	return out
}

// State returns the current generation state.
func (e *Engine) State() GenerationState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Delay returns the configured generation latency.
func (e *Engine) Delay() time.Duration {
	return e.delay
}

// Submit attempts the Idle -> Generating transition. It appends the
// trimmed text as a user message and reports whether the submission was
// accepted. Blank input and submissions while generating are rejected.
func (e *Engine) Submit(text string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" || e.state != StateIdle {
		return false
	}

	e.lastPrompt = trimmed
	e.append(Message{Role: RoleUser, Content: trimmed})
	e.state = StateGenerating
	return true
}

// Finish completes the Generating -> Idle transition: it obtains the
// assistant reply for the last submitted prompt, appends it, and returns
// it. Calling Finish while idle is a no-op and returns an empty message.
func (e *Engine) Finish() Message {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != StateGenerating {
		return Message{}
	}

	msg := Message{Role: RoleAssistant, Content: e.generator.Reply(e.lastPrompt)}
	e.append(msg)
	e.state = StateIdle
	return msg
}

// Generate runs a full submission cycle asynchronously: on acceptance it
// schedules Finish after the configured delay and invokes done with the
// assistant message. The returned task can cancel the pending completion,
// though the application never does; a generation runs to completion.
func (e *Engine) Generate(text string, done func(Message)) (*Task, bool) {
	if !e.Submit(text) {
		return nil, false
	}

	task := Schedule(e.delay, func() {
		msg := e.Finish()
		if done != nil {
			done(msg)
		}
	})
	return task, true
}

func (e *Engine) append(msg Message) {
	e.messages = append(e.messages, msg)
	if e.onAppend != nil {
		e.onAppend(msg)
	}
}
