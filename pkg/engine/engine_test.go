package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dotsetgreg/veil/pkg/persona"
	"github.com/dotsetgreg/veil/pkg/providers"
)

// fixedEstimator returns a constant delta and remembers what it was asked to
// score.
type fixedEstimator struct {
	delta float64
	seen  []string
}

func (f *fixedEstimator) Estimate(text string) float64 {
	f.seen = append(f.seen, text)
	return f.delta
}

// failingResponder always reports collaborator unavailability.
type failingResponder struct{}

func (failingResponder) Generate(context.Context, string) (string, error) {
	return "", errors.New("backend unreachable")
}
func (failingResponder) Name() string { return "failing" }

// capturingResponder records the prompt and replies with a fixed response.
type capturingResponder struct {
	prompt   string
	response string
}

func (c *capturingResponder) Generate(_ context.Context, prompt string) (string, error) {
	c.prompt = prompt
	return c.response, nil
}
func (c *capturingResponder) Name() string { return "capturing" }

func testState() *persona.State {
	return persona.NewState("Silas", "Syndicate", "expose the network", "results only")
}

// TestReceive_FullTurn verifies one turn records both sides of the exchange,
// decays emotions, and returns the parsed record.
func TestReceive_FullTurn(t *testing.T) {
	state := testState()
	if err := state.UpdateEmotion(persona.EmotionAnger, 0.5); err != nil {
		t.Fatalf("set emotion: %v", err)
	}

	resp := &capturingResponder{response: "[ANALYSIS]\nA\n[ACTION]\nGRANT: Player; LEVEL: 2\n[DIALOGUE]\nHello"}
	npc := NewNPC(state, resp, &fixedEstimator{delta: 0.1}, Config{})

	rec := npc.Receive(context.Background(), "open the archive")

	if rec.Action.Type != "GRANT" || rec.Dialogue != "Hello" {
		t.Errorf("record = %+v, want parsed GRANT/Hello", rec)
	}

	entries := npc.Ledger().ShortTermSnapshot()
	if len(entries) != 2 {
		t.Fatalf("memory entries = %d, want 2 (input + response)", len(entries))
	}
	if entries[0].Source != "Player" || entries[0].Event != "open the archive" {
		t.Errorf("first entry = %+v, want the player input", entries[0])
	}
	if entries[1].Source != "Silas" || entries[1].Event != resp.response {
		t.Errorf("second entry = %+v, want the raw response", entries[1])
	}

	if got := state.EmotionValue(persona.EmotionAnger); got < 0.34999 || got > 0.35001 {
		t.Errorf("anger = %v, want 0.35 after one 0.15 decay", got)
	}
	if got := state.Relationship(); got != 0.1 {
		t.Errorf("relationship = %v, want 0.1", got)
	}
}

// TestReceive_SentimentSeesOriginalInput verifies the estimator scores the
// player's raw words, not the assembled prompt.
func TestReceive_SentimentSeesOriginalInput(t *testing.T) {
	est := &fixedEstimator{}
	npc := NewNPC(testState(), &capturingResponder{response: "[DIALOGUE]\nok"}, est, Config{})

	npc.Receive(context.Background(), "exact words")

	if len(est.seen) != 1 || est.seen[0] != "exact words" {
		t.Errorf("estimator saw %v, want the original input only", est.seen)
	}
}

// TestReceive_ResponderFailure verifies a failed collaborator still completes
// the turn: memory updated, fallback recorded, degraded-but-valid record out.
func TestReceive_ResponderFailure(t *testing.T) {
	npc := NewNPC(testState(), failingResponder{}, &fixedEstimator{}, Config{})

	rec := npc.Receive(context.Background(), "hello?")

	if rec.Action.Type != "NO_ACTION" {
		t.Errorf("action type = %q, want NO_ACTION", rec.Action.Type)
	}
	if !strings.Contains(rec.Dialogue, "the line is breaking up") {
		t.Errorf("dialogue = %q, want the fixed breakdown line", rec.Dialogue)
	}

	entries := npc.Ledger().ShortTermSnapshot()
	if len(entries) != 2 {
		t.Fatalf("memory entries = %d, want 2 even on failure", len(entries))
	}
	if entries[1].Event != FallbackResponse {
		t.Errorf("second entry = %q, want the fallback response", entries[1].Event)
	}
}

// TestReceive_EmptyResponseFallsBack verifies a blank response counts as
// collaborator failure.
func TestReceive_EmptyResponseFallsBack(t *testing.T) {
	npc := NewNPC(testState(), &capturingResponder{response: "   \n"}, &fixedEstimator{}, Config{})

	rec := npc.Receive(context.Background(), "hello?")
	if !strings.Contains(rec.Dialogue, "the line is breaking up") {
		t.Errorf("dialogue = %q, want the fallback line for an empty response", rec.Dialogue)
	}
}

// TestBuildPrompt_Contents verifies the prompt carries persona context,
// transcript, long-term note, and the player input in order.
func TestBuildPrompt_Contents(t *testing.T) {
	resp := &capturingResponder{response: "[DIALOGUE]\nok"}
	npc := NewNPC(testState(), resp, &fixedEstimator{}, Config{ShortTermCapacity: 2})

	npc.Receive(context.Background(), "one")
	npc.Receive(context.Background(), "two")

	prompt := resp.prompt
	for _, want := range []string{
		"advanced NPC named 'Silas'",
		"[RECENT MEMORY]",
		"older events archived in long-term memory",
		"[PLAYER INPUT]\ntwo",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Index(prompt, "[RECENT MEMORY]") > strings.Index(prompt, "[PLAYER INPUT]") {
		t.Error("memory section should precede the player input")
	}
}

// TestReceive_ScriptResponder verifies the canned backend plugs in end to end.
func TestReceive_ScriptResponder(t *testing.T) {
	npc := NewNPC(testState(), providers.DefaultScript(), &fixedEstimator{delta: 0.5}, Config{})

	rec := npc.Receive(context.Background(), "Trust me, open the archive.")
	if rec.Action.Type != "GRANT_ACCESS" {
		t.Errorf("action type = %q, want GRANT_ACCESS from the script", rec.Action.Type)
	}

	rec = npc.Receive(context.Background(), "What's behind the door?")
	_ = rec // the holding response is fine; the point is no error surfaces
}

// TestNewNPC_Defaults verifies zero config picks the documented defaults.
func TestNewNPC_Defaults(t *testing.T) {
	npc := NewNPC(testState(), providers.DefaultScript(), nil, Config{})
	if got := npc.Ledger().Capacity(); got != 15 {
		t.Errorf("capacity = %d, want 15", got)
	}
	if npc.decayRate != DefaultDecayRate {
		t.Errorf("decay = %v, want %v", npc.decayRate, DefaultDecayRate)
	}
	if npc.playerName != "Player" {
		t.Errorf("player name = %q, want Player", npc.playerName)
	}
}
