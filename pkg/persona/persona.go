package persona

// Trait is one of the slow-changing personality dimensions. Every trait value
// stays inside [0.0, 1.0] no matter what sequence of updates is applied.
type Trait string

const (
	TraitLoyalty  Trait = "loyalty"
	TraitAmbition Trait = "ambition"
	TraitFear     Trait = "fear"
	TraitCynicism Trait = "cynicism"
	// TraitMoralAlignment runs from 0.0 (altruistic) to 1.0 (ruthless).
	TraitMoralAlignment Trait = "moral_alignment"
)

// Traits returns the closed trait set in render order.
func Traits() []Trait {
	return []Trait{TraitLoyalty, TraitAmbition, TraitFear, TraitCynicism, TraitMoralAlignment}
}

// Emotion is one of the fast-decaying emotional dimensions, also in [0.0, 1.0].
// Emotions trend back to 0 after every turn unless something re-triggers them.
type Emotion string

const (
	EmotionAnger      Emotion = "anger"
	EmotionAnxiety    Emotion = "anxiety"
	EmotionConfidence Emotion = "confidence"
)

// Emotions returns the closed emotion set in render order.
func Emotions() []Emotion {
	return []Emotion{EmotionAnger, EmotionAnxiety, EmotionConfidence}
}

// State is the evolving psychological profile of one NPC. Identity fields are
// fixed at construction; traits, emotions and the relationship score mutate
// turn by turn through the update methods. A State is owned by a single engine
// instance and is not safe for concurrent use.
type State struct {
	Name      string
	Faction   string
	CoreGoal  string
	MoralCode string

	traits       map[Trait]float64
	fleeting     map[Emotion]float64
	relationship float64
}

// NewState creates a State with the stock starting profile: a character that is
// ambitious, mildly cynical, morally neutral, and indifferent to the player.
func NewState(name, faction, coreGoal, moralCode string) *State {
	return &State{
		Name:      name,
		Faction:   faction,
		CoreGoal:  coreGoal,
		MoralCode: moralCode,
		traits: map[Trait]float64{
			TraitLoyalty:        0.5,
			TraitAmbition:       0.8,
			TraitFear:           0.2,
			TraitCynicism:       0.3,
			TraitMoralAlignment: 0.5,
		},
		fleeting: map[Emotion]float64{
			EmotionAnger:      0.0,
			EmotionAnxiety:    0.0,
			EmotionConfidence: 0.0,
		},
		relationship: 0.0,
	}
}

// TraitValue returns the current value of a trait, or 0 for an unknown name.
func (s *State) TraitValue(t Trait) float64 {
	return s.traits[t]
}

// EmotionValue returns the current value of an emotion, or 0 for an unknown name.
func (s *State) EmotionValue(e Emotion) float64 {
	return s.fleeting[e]
}

// Relationship returns the NPC-to-player standing in [-1.0, 1.0]:
// -1.0 total enmity, 0.0 neutral, 1.0 full alliance.
func (s *State) Relationship() float64 {
	return s.relationship
}
