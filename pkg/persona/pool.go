package persona

import (
	"fmt"

	"github.com/dotsetgreg/veil/configs"
	"gopkg.in/yaml.v3"
)

// Definition is a named NPC blueprint as shipped in the embedded persona file.
// It carries only the immutable identity; the mutable profile always starts
// from the stock defaults.
type Definition struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Faction   string `yaml:"faction"`
	CoreGoal  string `yaml:"coreGoal"`
	MoralCode string `yaml:"moralCode"`
}

// NewState instantiates a fresh mutable State for this definition.
func (d *Definition) NewState() *State {
	return NewState(d.Name, d.Faction, d.CoreGoal, d.MoralCode)
}

// Pool holds the persona definitions available to a host.
type Pool struct {
	Personas []*Definition `yaml:"personas"`
}

// NewPool loads the embedded persona definitions.
func NewPool() (*Pool, error) {
	var p Pool
	if err := yaml.Unmarshal(configs.Personas, &p); err != nil {
		return nil, fmt.Errorf("unmarshal embedded personas: %w", err)
	}
	return &p, nil
}

func (p *Pool) GetAll() []*Definition {
	if p == nil {
		return nil
	}
	return p.Personas
}

func (p *Pool) GetByID(id string) (*Definition, error) {
	for _, d := range p.GetAll() {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("persona with id %q not found", id)
}
