package providers

import (
	"context"
	"strings"

	"github.com/dotsetgreg/veil/pkg/config"
)

func init() {
	RegisterFactory(ProviderScript, func(*config.Config) (Responder, error) {
		return DefaultScript(), nil
	}, nil)
}

// Rule maps a prompt condition to a canned response. An empty Contains
// matches every prompt.
type Rule struct {
	Contains string
	Response string
}

// Script is the canned responder: it replays fixed three-section responses
// chosen by substring match against the prompt, first matching rule wins.
// It needs no credentials and never fails, which makes it the backend for
// tests and the offline demo.
type Script struct {
	rules []Rule
}

func NewScript(rules ...Rule) *Script {
	return &Script{rules: rules}
}

func (s *Script) Name() string { return ProviderScript }

func (s *Script) Generate(_ context.Context, prompt string) (string, error) {
	for _, r := range s.rules {
		if r.Contains == "" || strings.Contains(prompt, r.Contains) {
			return r.Response, nil
		}
	}
	return scriptHoldingResponse, nil
}

var _ Responder = (*Script)(nil)

// DefaultScript covers the demo scenario: a visibly angry NPC threatens, a
// trusting ask gets guarded access, anything else deflects. Rules match
// against the assembled prompt, so the anger rule keys off the rendered
// emotional state rather than the player's words, and it is checked first
// because the memory transcript may still carry old trust-building lines.
func DefaultScript() *Script {
	return NewScript(
		Rule{Contains: "Anger", Response: scriptThreatResponse},
		Rule{Contains: "Trust me", Response: scriptGrantResponse},
	)
}

const scriptGrantResponse = `[ANALYSIS]
- GOAL CHECK: Archive access is vital. The player has shown loyalty.
- MORAL/FEAR CHECK: Moral alignment allows for manipulation. Fear is low. Proceed with caution.
- PLAYER PREDICTION: They are currently reliable but will become demanding.
- STRATEGY: Grant limited access and use a confident, direct tone.
[ACTION]
GRANT_ACCESS: Player; LEVEL: 2
[DIALOGUE]
"Very well, partner. I'll grant you Level 2 access. But understand, you're merely borrowing the keys to *my* archive. Don't disappoint me."`

const scriptThreatResponse = `[ANALYSIS]
- GOAL CHECK: The player is showing hostility and wasting time. This must be shut down immediately.
- MORAL/FEAR CHECK: Anger overcomes fear. My moral score permits a forceful response.
- PLAYER PREDICTION: They are attempting to provoke me or distract me from my objective.
- STRATEGY: Issue a direct threat to regain control and create distance.
[ACTION]
ISSUE_THREAT: Player; INTENSITY: High
[DIALOGUE]
"**Do not test my patience!** The only thing you'll find down that corridor is a power cable wrapped around your throat if you keep wasting my time. Leave now."`

const scriptHoldingResponse = `[ANALYSIS]
- GOAL CHECK: The query is harmless but distracting. Maintain focus.
- MORAL/FEAR CHECK: No moral conflict. Low ambition prevents spending effort on trivialities.
- PLAYER PREDICTION: The player is stalling or probing.
- STRATEGY: Be evasive and redirect the conversation back to the primary mission.
[ACTION]
NO_ACTION: None; REASON: Observing
[DIALOGUE]
"You worry about trivialities, when the Corporate Dynasty's sensors are still humming? Focus. We have bigger problems than your idle questions."`
