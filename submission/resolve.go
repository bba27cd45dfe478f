// Package submission implements character registration: the /oc command
// family, pokedex validation of submitted characters, and the embed a
// character renders to.
package submission

import (
	"strconv"
	"strings"

	"emperror.dev/errors"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/pokedex"
)

// MaxMoves is how many moves a character may carry.
const MaxMoves = 6

// SplitList splits a comma-separated option into trimmed entries.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseStats parses a fakemon stat spread written as
// "hp/atk/def/spa/spd/spe".
func ParseStats(s string) (st pokedex.Stats, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 6 {
		return st, errors.New("stats must be six numbers separated by slashes, like 3/4/2/3/3/3")
	}

	vals := make([]int, 6)
	for i, p := range parts {
		vals[i], err = strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return st, errors.Errorf("%q is not a number", strings.TrimSpace(p))
		}
	}

	st = pokedex.Stats{HP: vals[0], Atk: vals[1], Def: vals[2], SpA: vals[3], SpD: vals[4], Spe: vals[5]}
	return st, pokedex.ValidateFakemonStats(st)
}

// ResolveAbilities validates the picked abilities against the species,
// sampling defaults when none are given. A special ability takes up all
// but one slot.
func ResolveAbilities(dex *pokedex.Registry, s *pokedex.Species, picks []string, hasSpAbility bool, pick func(max int) int) ([]string, error) {
	if hasSpAbility && !s.CanHaveSpecialAbilities() {
		return nil, errors.Errorf("%v can't have a special ability", s.Name)
	}

	// ultra beasts always run Beast Boost
	if s.Kind == pokedex.KindUltraBeast {
		return []string{pokedex.BeastBoost}, nil
	}

	max := s.MaxAbilities()
	if hasSpAbility {
		max = 1
	}

	if len(picks) == 0 {
		return sampleAbilities(dex, s, max, pick), nil
	}
	if len(picks) > max {
		return nil, errors.Errorf("too many abilities: %v allows at most %d", s.Name, max)
	}

	out := make([]string, 0, len(picks))
	for _, p := range picks {
		a := dex.DeduceAbility(p)
		if a == nil {
			return nil, errors.Errorf("unknown ability %q", p)
		}
		if !speciesHasAbility(s, a.Name) {
			return nil, errors.Errorf("%v can't have the ability %v", s.Name, a.Name)
		}
		if common.Contains(out, a.Name) {
			return nil, errors.Errorf("duplicate ability %v", a.Name)
		}
		out = append(out, a.Name)
	}
	if len(out) > 1 && common.Contains(out, pokedex.BeastBoost) {
		return nil, errors.New("Beast Boost can't be paired with another ability")
	}
	return out, nil
}

// speciesHasAbility reports whether the species can carry the ability.
// Fakemon pick their abilities freely.
func speciesHasAbility(s *pokedex.Species, name string) bool {
	if s.Kind == pokedex.KindFakemon {
		return true
	}
	for _, a := range s.Abilities {
		if pokedex.Fix(a) == pokedex.Fix(name) {
			return true
		}
	}
	return false
}

func sampleAbilities(dex *pokedex.Registry, s *pokedex.Species, max int, pick func(max int) int) []string {
	pool := s.Abilities
	if s.Kind == pokedex.KindFakemon && len(pool) == 0 {
		for _, a := range dex.AllAbilities() {
			pool = append(pool, a.Name)
		}
	}
	return common.Sample(pool, max, pick)
}

// ResolveMoves validates the picked moveset against the species
// movepool, sampling a default set when none is given.
func ResolveMoves(dex *pokedex.Registry, s *pokedex.Species, picks []string, pick func(max int) int) ([]string, error) {
	if len(picks) > MaxMoves {
		return nil, errors.Errorf("a moveset is at most %d moves", MaxMoves)
	}

	if len(picks) == 0 {
		return sampleMoves(dex, s, pick), nil
	}

	out := make([]string, 0, len(picks))
	for _, p := range picks {
		m := dex.DeduceMove(p)
		if m == nil {
			return nil, errors.Errorf("unknown move %q", p)
		}
		if m.Banned {
			return nil, errors.Errorf("the move %v is banned", m.Name)
		}
		if s.Kind != pokedex.KindFakemon && !s.Movepool.Contains(m.Name) {
			return nil, errors.Errorf("%v doesn't learn %v", s.Name, m.Name)
		}
		if common.Contains(out, m.Name) {
			return nil, errors.Errorf("duplicate move %v", m.Name)
		}
		out = append(out, m.Name)
	}
	return out, nil
}

func sampleMoves(dex *pokedex.Registry, s *pokedex.Species, pick func(max int) int) []string {
	var pool []string
	if s.Kind == pokedex.KindFakemon {
		for _, m := range dex.AllMoves() {
			if !m.Banned {
				pool = append(pool, m.Name)
			}
		}
	} else {
		for _, id := range s.Movepool.Moves() {
			m, ok := dex.Move(id)
			if !ok || m.Banned {
				continue
			}
			pool = append(pool, m.Name)
		}
	}
	return common.Sample(pool, MaxMoves, pick)
}
