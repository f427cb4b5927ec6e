package persona

import "math"

const (
	// Moral drift factors applied when the relationship takes a hit.
	driftCynicismFactor = 0.1
	driftMoralFactor    = 0.05
)

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// UpdateTrait shifts a trait by delta, clamped to [0, 1]. Unknown trait names
// return UnknownTraitError and change nothing.
func (s *State) UpdateTrait(t Trait, delta float64) error {
	cur, ok := s.traits[t]
	if !ok {
		return &UnknownTraitError{Name: string(t)}
	}
	s.traits[t] = clamp(cur+delta, 0.0, 1.0)
	return nil
}

// UpdateEmotion sets an emotion to an absolute value, clamped to [0, 1]. This
// is a set, not a delta: the host reacts to in-game events by pinning an
// emotion outright ("the insult lands, anger is now 0.75"). Unknown emotion
// names return UnknownEmotionError and change nothing.
func (s *State) UpdateEmotion(e Emotion, value float64) error {
	if _, ok := s.fleeting[e]; !ok {
		return &UnknownEmotionError{Name: string(e)}
	}
	s.fleeting[e] = clamp(value, 0.0, 1.0)
	return nil
}

// DecayEmotions subtracts rate from every emotion above zero, floored at zero.
// Emotions already at zero stay there, so repeated calls converge and never go
// negative.
func (s *State) DecayEmotions(rate float64) {
	for e, v := range s.fleeting {
		if v > 0 {
			s.fleeting[e] = math.Max(0.0, v-rate)
		}
	}
}

// UpdateMoralAlignment shifts moral alignment by delta, clamped to [0, 1].
func (s *State) UpdateMoralAlignment(delta float64) {
	s.traits[TraitMoralAlignment] = clamp(s.traits[TraitMoralAlignment]+delta, 0.0, 1.0)
}

// UpdateRelationship shifts the relationship score by delta, clamped to
// [-1, 1]. A negative delta also hardens the character: cynicism grows by
// |delta|*0.1 and moral alignment drifts toward the ruthless pole by
// |delta|*0.05. The drift fires exactly once per negative call, using the
// pre-clamp magnitude of delta, and positive deltas never soften either trait
// back.
func (s *State) UpdateRelationship(delta float64) {
	s.relationship = clamp(s.relationship+delta, -1.0, 1.0)
	if delta < 0 {
		mag := math.Abs(delta)
		// Cynicism is a known trait, the error path is unreachable here.
		_ = s.UpdateTrait(TraitCynicism, mag*driftCynicismFactor)
		s.UpdateMoralAlignment(mag * driftMoralFactor)
	}
}
