package pokedex

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

var accentReplacer = strings.NewReplacer(
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U",
	"á", "A", "é", "E", "í", "I", "ó", "O", "ú", "U",
)

// Fix normalizes a name for lookups: uppercased, accents stripped, and
// anything that isn't a letter or digit removed. "Mr. Mime" and "MRMIME"
// normalize to the same key.
func Fix(name string) string {
	s := accentReplacer.Replace(strings.ToUpper(strings.TrimSpace(name)))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DeduceSpecies finds the closest species to the given input, first by
// normalized exact match, then fuzzily by name. Returns nil if nothing
// plausible matches.
func (r *Registry) DeduceSpecies(input string) *Species {
	if input == "" {
		return nil
	}

	if s, ok := r.Species(input); ok {
		return s
	}

	names := make([]string, len(r.species))
	for i, s := range r.species {
		names[i] = s.Name
	}

	matches := fuzzy.Find(input, names)
	if len(matches) == 0 {
		return nil
	}
	return r.species[matches[0].Index]
}

// DeduceMove is DeduceSpecies for moves.
func (r *Registry) DeduceMove(input string) *Move {
	if input == "" {
		return nil
	}

	if m, ok := r.Move(input); ok {
		return m
	}

	names := make([]string, len(r.moves))
	for i, m := range r.moves {
		names[i] = m.Name
	}

	matches := fuzzy.Find(input, names)
	if len(matches) == 0 {
		return nil
	}
	return r.moves[matches[0].Index]
}

// DeduceAbility is DeduceSpecies for abilities.
func (r *Registry) DeduceAbility(input string) *Ability {
	if input == "" {
		return nil
	}

	if a, ok := r.Ability(input); ok {
		return a
	}

	names := make([]string, len(r.abilities))
	for i, a := range r.abilities {
		names[i] = a.Name
	}

	matches := fuzzy.Find(input, names)
	if len(matches) == 0 {
		return nil
	}
	return r.abilities[matches[0].Index]
}
