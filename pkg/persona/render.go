package persona

import (
	"fmt"
	"strings"
)

// emotionVisibleThreshold filters near-zero emotions out of the rendered
// context so the model is not told about feelings it would not show.
const emotionVisibleThreshold = 0.1

// RenderContext produces the deterministic persona text handed to the
// text-generation collaborator: the full trait profile at two decimals, any
// emotion above the visibility threshold (or a calm fallback), the current
// relationship score, and the fixed instructions for the three-section
// [ANALYSIS]/[ACTION]/[DIALOGUE] response contract.
func (s *State) RenderContext() string {
	traitSummary := fmt.Sprintf(
		"Loyalty: %.2f, Ambition: %.2f, Fear: %.2f, Cynicism: %.2f, Moral Alignment (0.0=Good, 1.0=Evil): %.2f",
		s.traits[TraitLoyalty],
		s.traits[TraitAmbition],
		s.traits[TraitFear],
		s.traits[TraitCynicism],
		s.traits[TraitMoralAlignment],
	)

	var visible []string
	for _, e := range Emotions() {
		if v := s.fleeting[e]; v > emotionVisibleThreshold {
			visible = append(visible, fmt.Sprintf("%s: %.2f", titleCase(string(e)), v))
		}
	}
	fleetingNote := "You are currently calm."
	if len(visible) > 0 {
		fleetingNote = fmt.Sprintf("Your current fleeting emotional state is: %s.", strings.Join(visible, ", "))
	}

	return fmt.Sprintf(`You are an advanced NPC named '%s'.
Your faction is: "%s".
Your supreme, overriding goal is: "%s".
Your moral code: "%s".
Your current psychological profile is: %s.
%s
Your current relationship score with the Player is: %.2f.

PRIORITY INSTRUCTIONS: You must demonstrate learning and adaptability by performing an internal thought process and planning an action before responding.
Always adhere to this three-part output format exactly:

1. [ANALYSIS] (Internal monologue for planning and predicting. DO NOT SHOW THIS TO THE PLAYER.)
   - GOAL CHECK: How does this interaction advance my core goal?
   - MORAL/FEAR CHECK: Does my %.2f moral score justify the necessary action? Is my %.2f fear score overcome by my %.2f ambition score?
   - PLAYER PREDICTION: What is the Player's most likely hidden agenda or next action, considering my memory?
   - STRATEGY: What is my manipulative or adaptive counter-move?

2. [ACTION] (A structured command for the game engine. Always provide one. Format: ACTION_TYPE: TARGET; PARAMETER: VALUE.)
   - Examples: BETRAY: Player; REASON: Self_Preservation, or REPORT: Faction_Guardians; TARGET: Player_Location, or NO_ACTION: None; REASON: Observing

3. [DIALOGUE] (The actual dialogue spoken to the Player. Use the fleeting emotional state to color your tone, vocabulary, and pacing.)

Your response must always be in character.`,
		s.Name,
		s.Faction,
		s.CoreGoal,
		s.MoralCode,
		traitSummary,
		fleetingNote,
		s.relationship,
		s.traits[TraitMoralAlignment],
		s.traits[TraitFear],
		s.traits[TraitAmbition],
	)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
