// Package pokedex holds the static game data the bot validates characters
// against: species, types, abilities, moves, and movepools. The data ships
// embedded in the binary and never changes at runtime.
package pokedex

import (
	"embed"
	"encoding/json"

	"emperror.dev/errors"
)

//go:embed resources
var resources embed.FS

// Registry is the loaded game data, indexed for lookups.
type Registry struct {
	species   []*Species
	speciesID map[string]*Species

	types   []*Typing
	typesID map[string]*Typing

	abilities   []*Ability
	abilitiesID map[string]*Ability

	moves   []*Move
	movesID map[string]*Move
}

// Load parses the embedded resource files into a Registry.
func Load() (*Registry, error) {
	r := &Registry{
		speciesID:   make(map[string]*Species),
		typesID:     make(map[string]*Typing),
		abilitiesID: make(map[string]*Ability),
		movesID:     make(map[string]*Move),
	}

	if err := loadResource("resources/types.json", &r.types); err != nil {
		return nil, errors.Wrap(err, "loading types")
	}
	for _, t := range r.types {
		r.typesID[Fix(t.Name)] = t
	}

	if err := loadResource("resources/abilities.json", &r.abilities); err != nil {
		return nil, errors.Wrap(err, "loading abilities")
	}
	for _, a := range r.abilities {
		r.abilitiesID[Fix(a.Name)] = a
	}

	if err := loadResource("resources/moves.json", &r.moves); err != nil {
		return nil, errors.Wrap(err, "loading moves")
	}
	for _, m := range r.moves {
		r.movesID[Fix(m.Name)] = m
	}

	if err := loadResource("resources/species.json", &r.species); err != nil {
		return nil, errors.Wrap(err, "loading species")
	}
	for _, s := range r.species {
		r.speciesID[Fix(s.ID)] = s
	}

	return r, nil
}

func loadResource(path string, v any) error {
	b, err := resources.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading file")
	}
	return errors.Wrap(json.Unmarshal(b, v), "unmarshaling")
}

// Species returns the species with the given ID or name, if any.
func (r *Registry) Species(id string) (*Species, bool) {
	s, ok := r.speciesID[Fix(id)]
	return s, ok
}

// AllSpecies returns every loaded species, in file order.
func (r *Registry) AllSpecies() []*Species { return r.species }

// Type returns the typing with the given name, if any.
func (r *Registry) Type(name string) (*Typing, bool) {
	t, ok := r.typesID[Fix(name)]
	return t, ok
}

// Ability returns the ability with the given name, if any.
func (r *Registry) Ability(name string) (*Ability, bool) {
	a, ok := r.abilitiesID[Fix(name)]
	return a, ok
}

// Move returns the move with the given name, if any.
func (r *Registry) Move(name string) (*Move, bool) {
	m, ok := r.movesID[Fix(name)]
	return m, ok
}

// AllMoves returns every loaded move, in file order.
func (r *Registry) AllMoves() []*Move { return r.moves }

// AllAbilities returns every loaded ability, in file order.
func (r *Registry) AllAbilities() []*Ability { return r.abilities }
