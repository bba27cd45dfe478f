package pokedex

import (
	"fmt"
	"math"

	"emperror.dev/errors"
)

// Kind is a species category. It decides ability limits, special ability
// eligibility, and whether a submitted character must provide an image.
type Kind string

const (
	KindPokemon    Kind = "pokemon"
	KindLegendary  Kind = "legendary"
	KindMythical   Kind = "mythical"
	KindUltraBeast Kind = "ultrabeast"
	KindMega       Kind = "mega"
	KindFakemon    Kind = "fakemon"
	KindFusion     Kind = "fusion"
)

// BeastBoost is forced on ultra beasts and caps fakemon that carry it.
const BeastBoost = "Beast Boost"

// Stats is a stat spread. Regular species use base-stat scale; fakemon
// use the 1-5 scale enforced by ValidateFakemonStats.
type Stats struct {
	HP  int `json:"hp"`
	Atk int `json:"atk"`
	Def int `json:"def"`
	SpA int `json:"spa"`
	SpD int `json:"spd"`
	Spe int `json:"spe"`
}

// Total returns the stat total.
func (s Stats) Total() int {
	return s.HP + s.Atk + s.Def + s.SpA + s.SpD + s.Spe
}

func average(a, b int) int {
	return int(math.Round(float64(a+b) / 2))
}

// Average returns the per-stat average of two spreads, rounding half up.
func (s Stats) Average(o Stats) Stats {
	return Stats{
		HP:  average(s.HP, o.HP),
		Atk: average(s.Atk, o.Atk),
		Def: average(s.Def, o.Def),
		SpA: average(s.SpA, o.SpA),
		SpD: average(s.SpD, o.SpD),
		Spe: average(s.Spe, o.Spe),
	}
}

// Species is one entry of the species resource file, or a synthetic
// species (fakemon, fusion) created during submission.
type Species struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Shape string `json:"shape,omitempty"`
	Color string `json:"color,omitempty"`

	Types     []string `json:"types"`
	Abilities []string `json:"abilities,omitempty"`
	Stats     Stats    `json:"stats"`
	Height    int      `json:"height,omitempty"`
	Weight    int      `json:"weight,omitempty"`

	BaseImage        string `json:"base_image,omitempty"`
	ShinyImage       string `json:"shiny_image,omitempty"`
	FemaleImage      string `json:"female_image,omitempty"`
	FemaleShinyImage string `json:"female_shiny_image,omitempty"`

	// Banned species can't be submitted or used for NPC narration.
	Banned bool `json:"banned,omitempty"`

	Movepool Movepool `json:"movepool,omitempty"`
}

// MaxAbilities is how many regular abilities a character of this species
// may carry.
func (s *Species) MaxAbilities() int {
	switch s.Kind {
	case KindUltraBeast, KindFusion:
		return 1
	case KindFakemon:
		for _, a := range s.Abilities {
			if Fix(a) == Fix(BeastBoost) {
				return 1
			}
		}
		return 2
	default:
		return 2
	}
}

// CanHaveSpecialAbilities reports whether a character of this species may
// trade its ability slots for a custom special ability.
func (s *Species) CanHaveSpecialAbilities() bool {
	switch s.Kind {
	case KindPokemon:
		return true
	case KindFakemon:
		return s.MaxAbilities() == 2
	default:
		return false
	}
}

// RequiresImage reports whether a submission of this species must come
// with its own image: true for species that have no official art.
func (s *Species) RequiresImage() bool {
	return s.Kind == KindFakemon || s.Kind == KindFusion
}

// Image picks the sprite for the given presentation. Female sprites fall
// back to the base ones when the species has no gender difference.
func (s *Species) Image(shiny, female bool) string {
	switch {
	case shiny && female && s.FemaleShinyImage != "":
		return s.FemaleShinyImage
	case shiny && s.ShinyImage != "":
		return s.ShinyImage
	case female && s.FemaleImage != "":
		return s.FemaleImage
	default:
		return s.BaseImage
	}
}

// ValidateFakemonStats enforces the fakemon stat budget: every stat in
// 1..5 and a total of at most 18.
func ValidateFakemonStats(st Stats) error {
	for _, v := range []int{st.HP, st.Atk, st.Def, st.SpA, st.SpD, st.Spe} {
		if v < 1 {
			return errors.New("minimum stat value is 1")
		}
		if v > 5 {
			return errors.New("maximum stat value is 5")
		}
	}
	if st.Total() > 18 {
		return errors.Errorf("stat total %d is over the limit of 18", st.Total())
	}
	return nil
}

// NewFakemon builds a user-defined species. Abilities are picked during
// submission; stats default to a flat 3 spread when zero.
func NewFakemon(name string, st Stats) (*Species, error) {
	if st == (Stats{}) {
		st = Stats{HP: 3, Atk: 3, Def: 3, SpA: 3, SpD: 3, Spe: 3}
	}
	if err := ValidateFakemonStats(st); err != nil {
		return nil, err
	}

	return &Species{
		ID:    "FAKEMON_" + Fix(name),
		Name:  name,
		Kind:  KindFakemon,
		Stats: st,
	}, nil
}

// PossibleFusionTypes lists the legal type combinations for a fusion of
// the two species:
//   - two or fewer distinct types between them: that set itself;
//   - a shared type: the shared type paired with each unshared one;
//   - otherwise: every cross pairing of the two type lists.
func PossibleFusionTypes(a, b *Species) [][]string {
	has := func(list []string, t string) bool {
		for _, x := range list {
			if Fix(x) == Fix(t) {
				return true
			}
		}
		return false
	}

	var union, common []string
	for _, t := range append(append([]string{}, a.Types...), b.Types...) {
		if !has(union, t) {
			union = append(union, t)
		}
	}
	for _, t := range a.Types {
		if has(b.Types, t) && !has(common, t) {
			common = append(common, t)
		}
	}

	var out [][]string
	switch {
	case len(union) <= 2:
		out = append(out, union)
	case len(common) > 0:
		for _, c := range common {
			for _, t := range union {
				if !has(common, t) {
					out = append(out, []string{c, t})
				}
			}
		}
	default:
		for _, x := range a.Types {
			for _, y := range b.Types {
				out = append(out, []string{x, y})
			}
		}
	}
	return out
}

// NewFusion combines two species: averaged stats and size, merged
// movepools and abilities. types must be one of PossibleFusionTypes; pass
// nil to take the first legal combination.
func NewFusion(a, b *Species, types []string) (*Species, error) {
	legal := PossibleFusionTypes(a, b)
	if types == nil {
		if len(legal) == 0 {
			return nil, errors.New("species have no legal fusion typing")
		}
		types = legal[0]
	} else {
		found := false
		for _, combo := range legal {
			if sameTypeSet(combo, types) {
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("invalid typing %v for this fusion", types)
		}
	}

	abilities := append([]string{}, a.Abilities...)
	for _, ab := range b.Abilities {
		if !containsFixed(abilities, ab) {
			abilities = append(abilities, ab)
		}
	}

	return &Species{
		ID:        fmt.Sprintf("%s_%s", a.ID, b.ID),
		Name:      fmt.Sprintf("%s/%s", a.Name, b.Name),
		Kind:      KindFusion,
		Types:     types,
		Abilities: abilities,
		Stats:     a.Stats.Average(b.Stats),
		Height:    average(a.Height, b.Height),
		Weight:    average(a.Weight, b.Weight),
		Movepool:  a.Movepool.Union(b.Movepool),
	}, nil
}

func containsFixed(list []string, v string) bool {
	for _, x := range list {
		if Fix(x) == Fix(v) {
			return true
		}
	}
	return false
}

func sameTypeSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, t := range a {
		if !containsFixed(b, t) {
			return false
		}
	}
	return true
}
