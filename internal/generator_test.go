package internal

import (
	"math/rand"
	"testing"
)

func TestCannedGenerator_ReplyFromPool(t *testing.T) {
	g := NewCannedGenerator()

	pool := make(map[string]bool, len(cannedResponses))
	for _, r := range cannedResponses {
		pool[r] = true
	}

	for i := 0; i < 20; i++ {
		reply := g.Reply("anything")
		if !pool[reply] {
			t.Fatalf("Reply() = %q, not in the canned pool", reply)
		}
	}
}

func TestCannedGenerator_DeterministicWithSeededSource(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}

	g1 := NewCannedGeneratorWithSource(pool, rand.NewSource(42))
	g2 := NewCannedGeneratorWithSource(pool, rand.NewSource(42))

	for i := 0; i < 10; i++ {
		r1, r2 := g1.Reply("x"), g2.Reply("x")
		if r1 != r2 {
			t.Fatalf("seeded generators diverged at reply %d: %q vs %q", i, r1, r2)
		}
	}
}

func TestCannedGenerator_IgnoresPrompt(t *testing.T) {
	pool := []string{"only"}
	g := NewCannedGeneratorWithSource(pool, rand.NewSource(1))

	if got := g.Reply("Create a gear"); got != "only" {
		t.Errorf("Reply() = %q, want %q", got, "only")
	}
	if got := g.Reply(""); got != "only" {
		t.Errorf("Reply(empty) = %q, want %q", got, "only")
	}
}
