package persona

import "fmt"

// UnknownTraitError reports an update against a name outside the closed trait
// set. The state is left untouched when it is returned.
type UnknownTraitError struct {
	Name string
}

func (e *UnknownTraitError) Error() string {
	return fmt.Sprintf("persona: unknown trait %q", e.Name)
}

// UnknownEmotionError reports an update against a name outside the closed
// emotion set. The state is left untouched when it is returned.
type UnknownEmotionError struct {
	Name string
}

func (e *UnknownEmotionError) Error() string {
	return fmt.Sprintf("persona: unknown emotion %q", e.Name)
}
