package internal

import "math/rand"

// Generator produces the assistant reply for a prompt. The canned
// implementation below stands in for a real model call; swapping in a
// real backend replaces this interface's implementation, not the engine.
type Generator interface {
	Reply(prompt string) string
}

// cannedResponses is the pool of simulated assistant replies.
var cannedResponses = []string{
	"I've generated a 3D CAD model based on your description. You can see it in the viewer on the left. The model includes all the specifications you mentioned. Would you like me to make any adjustments?",
	"Great! I've created the model you requested. It's now visible in the 3D viewer. You can rotate and zoom to inspect it from all angles. Let me know if you'd like to modify anything.",
	"The CAD model has been generated successfully! Check out the 3D viewer on the left to see your design. Feel free to ask for any changes or refinements.",
	"Perfect! Your 3D model is ready and displayed in the viewer. I've incorporated all the details from your description. Would you like to adjust any dimensions or features?",
}

// CannedGenerator picks uniformly at random from a fixed response pool.
type CannedGenerator struct {
	pool []string
	rng  *rand.Rand
}

// NewCannedGenerator creates a generator over the default pool.
func NewCannedGenerator() *CannedGenerator {
	return &CannedGenerator{pool: cannedResponses, rng: nil}
}

// NewCannedGeneratorWithSource creates a generator with an explicit
// random source, for deterministic tests.
func NewCannedGeneratorWithSource(pool []string, src rand.Source) *CannedGenerator {
	return &CannedGenerator{pool: pool, rng: rand.New(src)}
}

// Reply returns a random response from the pool. The prompt is ignored.
func (g *CannedGenerator) Reply(string) string {
	if len(g.pool) == 0 {
		return ""
	}
	if g.rng != nil {
		return g.pool[g.rng.Intn(len(g.pool))]
	}
	return g.pool[rand.Intn(len(g.pool))]
}
