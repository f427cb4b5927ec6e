// Package engine composes persona state, conversational memory, the sentiment
// estimator and the text-generation collaborator into per-turn NPC behavior.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/dotsetgreg/veil/pkg/logger"
	"github.com/dotsetgreg/veil/pkg/memory"
	"github.com/dotsetgreg/veil/pkg/parser"
	"github.com/dotsetgreg/veil/pkg/persona"
	"github.com/dotsetgreg/veil/pkg/providers"
	"github.com/dotsetgreg/veil/pkg/sentiment"
)

const (
	// DefaultDecayRate is how much every fleeting emotion cools per turn.
	DefaultDecayRate = 0.15

	defaultPlayerName = "Player"
)

// FallbackResponse stands in for the collaborator when it fails. It carries
// the standard three-section shape so a broken backend degrades into an
// ordinary in-character non-turn instead of a crashed one, and the parser
// stays the single failure surface.
const FallbackResponse = `[ANALYSIS]
The channel to the outside went dark mid-thought. Hold position, reveal nothing.
[ACTION]
NO_ACTION: None; REASON: Communication_Breakdown
[DIALOGUE]
"...the line is breaking up. We will finish this later."`

// Config tunes a single NPC instance. The zero value selects defaults.
type Config struct {
	ShortTermCapacity int
	DecayRate         float64
	PlayerName        string
}

// NPC drives one adaptive character. It exclusively owns its persona state
// and memory ledger for the lifetime of a session; hosts running turns for
// one NPC from multiple goroutines must serialize them.
type NPC struct {
	state     *persona.State
	ledger    *memory.Ledger
	estimator sentiment.Estimator
	responder providers.Responder

	decayRate  float64
	playerName string
}

// NewNPC wires an NPC around the given state. A nil estimator gets the stock
// lexicon; the responder is required.
func NewNPC(state *persona.State, responder providers.Responder, estimator sentiment.Estimator, cfg Config) *NPC {
	if estimator == nil {
		estimator = sentiment.DefaultLexicon()
	}
	decay := cfg.DecayRate
	if decay <= 0 {
		decay = DefaultDecayRate
	}
	player := strings.TrimSpace(cfg.PlayerName)
	if player == "" {
		player = defaultPlayerName
	}
	return &NPC{
		state:      state,
		ledger:     memory.NewLedger(cfg.ShortTermCapacity),
		estimator:  estimator,
		responder:  responder,
		decayRate:  decay,
		playerName: player,
	}
}

// State exposes the persona for host-driven events (an explosion sets fear,
// a scripted insult pins anger) and for rendering status.
func (n *NPC) State() *persona.State {
	return n.state
}

// Ledger exposes the NPC's conversational memory read-only paths.
func (n *NPC) Ledger() *memory.Ledger {
	return n.ledger
}

// Receive runs one full conversational turn and always returns a well-formed
// record. The steps are fixed: estimate sentiment from the player's original
// words, adapt the relationship, remember the input, ask the collaborator,
// remember its answer, cool the fleeting emotions, parse. A collaborator
// failure is logged and replaced with FallbackResponse before parsing, so the
// turn still completes with memory updated.
func (n *NPC) Receive(ctx context.Context, input string) parser.Interaction {
	n.state.UpdateRelationship(n.estimator.Estimate(input))

	n.ledger.Record(n.playerName, input)

	raw, err := n.responder.Generate(ctx, n.BuildPrompt(input))
	if err != nil || strings.TrimSpace(raw) == "" {
		fields := map[string]interface{}{"npc": n.state.Name, "responder": n.responder.Name()}
		if err != nil {
			fields["error"] = err.Error()
		}
		logger.WarnCF("engine", "responder unavailable, substituting fallback response", fields)
		raw = FallbackResponse
	}

	n.ledger.Record(n.state.Name, raw)

	n.state.DecayEmotions(n.decayRate)

	return parser.Parse(raw)
}

// BuildPrompt assembles the collaborator prompt: rendered persona context,
// the chronological short-term transcript, a note about how much has already
// rotated into long-term memory, and the raw player input.
func (n *NPC) BuildPrompt(input string) string {
	var b strings.Builder
	b.WriteString(n.state.RenderContext())
	b.WriteString("\n\n[RECENT MEMORY]\n")
	b.WriteString(n.ledger.Transcript())
	fmt.Fprintf(&b, "\n(%d older events archived in long-term memory.)\n", n.ledger.LongTermCount())
	fmt.Fprintf(&b, "\n[PLAYER INPUT]\n%s\n", input)
	return b.String()
}
