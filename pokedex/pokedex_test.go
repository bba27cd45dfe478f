package pokedex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T) *Registry {
	t.Helper()

	r, err := Load()
	require.NoError(t, err)
	return r
}

func TestLoad(t *testing.T) {
	r := mustLoad(t)

	assert.NotEmpty(t, r.AllSpecies())
	assert.NotEmpty(t, r.AllMoves())
	assert.NotEmpty(t, r.AllAbilities())

	_, ok := r.Type("Fire")
	assert.True(t, ok)

	s, ok := r.Species("Pikachu")
	require.True(t, ok)
	assert.Equal(t, KindPokemon, s.Kind)
	assert.Equal(t, []string{"Electric"}, s.Types)
}

func TestFix(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Pikachu", "PIKACHU"},
		{"  mr. mime ", "MRMIME"},
		{"Flabébé", "FLABEBE"},
		{"Ho-Oh", "HOOH"},
		{"Porygon2", "PORYGON2"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Fix(tt.in), "Fix(%q)", tt.in)
	}
}

func TestDeduce(t *testing.T) {
	r := mustLoad(t)

	s := r.DeduceSpecies("pikachu")
	require.NotNil(t, s)
	assert.Equal(t, "Pikachu", s.Name)

	s = r.DeduceSpecies("Growlith")
	require.NotNil(t, s)
	assert.Contains(t, s.Name, "Growlithe")

	assert.Nil(t, r.DeduceSpecies(""))
	assert.Nil(t, r.DeduceSpecies("xqzv"))

	m := r.DeduceMove("thunder bolt")
	require.NotNil(t, m)
	assert.Equal(t, "Thunderbolt", m.Name)

	a := r.DeduceAbility("beast boost")
	require.NotNil(t, a)
	assert.Equal(t, BeastBoost, a.Name)
}

func TestMovepool(t *testing.T) {
	r := mustLoad(t)

	s, ok := r.Species("Pikachu")
	require.True(t, ok)

	assert.True(t, s.Movepool.Contains("Thunderbolt"))
	assert.True(t, s.Movepool.Contains("thunder bolt"))
	assert.False(t, s.Movepool.Contains("Surf"))

	p := Movepool{
		Level: map[int][]string{1: {"Tackle"}},
		TM:    []string{"Protect"},
	}
	o := Movepool{
		Level: map[int][]string{1: {"Quick Attack"}, 10: {"Tackle"}},
		Egg:   []string{"Protect"},
	}

	u := p.Union(o)
	assert.Equal(t, 3, u.Len(), "union should deduplicate")
	assert.ElementsMatch(t, []string{"TACKLE", "PROTECT", "QUICKATTACK"}, u.Moves())
}

func TestMaxAbilities(t *testing.T) {
	r := mustLoad(t)

	pika, _ := r.Species("Pikachu")
	assert.Equal(t, 2, pika.MaxAbilities())
	assert.True(t, pika.CanHaveSpecialAbilities())

	ub, _ := r.Species("Nihilego")
	require.NotNil(t, ub)
	assert.Equal(t, 1, ub.MaxAbilities())
	assert.False(t, ub.CanHaveSpecialAbilities())

	leg, _ := r.Species("Articuno")
	require.NotNil(t, leg)
	assert.Equal(t, 2, leg.MaxAbilities())
	assert.False(t, leg.CanHaveSpecialAbilities())
}

func TestFakemon(t *testing.T) {
	fm, err := NewFakemon("Testmon", Stats{})
	require.NoError(t, err)
	assert.Equal(t, KindFakemon, fm.Kind)
	assert.Equal(t, 18, fm.Stats.Total(), "default spread is flat 3s")
	assert.True(t, fm.RequiresImage())

	_, err = NewFakemon("Badmon", Stats{HP: 0, Atk: 3, Def: 3, SpA: 3, SpD: 3, Spe: 3})
	assert.Error(t, err)

	_, err = NewFakemon("Badmon", Stats{HP: 6, Atk: 3, Def: 3, SpA: 3, SpD: 3, Spe: 3})
	assert.Error(t, err)

	_, err = NewFakemon("Badmon", Stats{HP: 5, Atk: 5, Def: 5, SpA: 5, SpD: 1, Spe: 1})
	assert.Error(t, err, "total over 18")

	fm, err = NewFakemon("Boosted", Stats{HP: 3, Atk: 3, Def: 3, SpA: 3, SpD: 3, Spe: 3})
	require.NoError(t, err)
	fm.Abilities = []string{BeastBoost}
	assert.Equal(t, 1, fm.MaxAbilities())
	assert.False(t, fm.CanHaveSpecialAbilities())
}

func TestPossibleFusionTypes(t *testing.T) {
	mono := func(name, typ string) *Species {
		return &Species{ID: Fix(name), Name: name, Types: []string{typ}}
	}

	// two mono types: only the union
	combos := PossibleFusionTypes(mono("A", "Fire"), mono("B", "Water"))
	require.Len(t, combos, 1)
	assert.ElementsMatch(t, []string{"Fire", "Water"}, combos[0])

	// shared type: shared x each unshared
	a := &Species{ID: "A", Types: []string{"Fire", "Flying"}}
	b := &Species{ID: "B", Types: []string{"Fire", "Rock"}}
	combos = PossibleFusionTypes(a, b)
	require.Len(t, combos, 2)
	for _, c := range combos {
		assert.Contains(t, c, "Fire")
	}

	// no overlap, four distinct: cross product
	a = &Species{ID: "A", Types: []string{"Fire", "Flying"}}
	b = &Species{ID: "B", Types: []string{"Water", "Ground"}}
	combos = PossibleFusionTypes(a, b)
	assert.Len(t, combos, 4)
}

func TestNewFusion(t *testing.T) {
	r := mustLoad(t)

	char, _ := r.Species("Charizard")
	gard, _ := r.Species("Gardevoir")
	require.NotNil(t, char)
	require.NotNil(t, gard)

	f, err := NewFusion(char, gard, nil)
	require.NoError(t, err)
	assert.Equal(t, KindFusion, f.Kind)
	assert.Equal(t, "Charizard/Gardevoir", f.Name)
	assert.Equal(t, 1, f.MaxAbilities())
	assert.True(t, f.RequiresImage())
	assert.Len(t, f.Types, 2)

	// averaged stats
	assert.Equal(t, average(char.Stats.HP, gard.Stats.HP), f.Stats.HP)

	// merged movepool
	assert.True(t, f.Movepool.Contains("Flare Blitz"))
	assert.True(t, f.Movepool.Contains("Moonblast"))

	_, err = NewFusion(char, gard, []string{"Ice", "Dragon"})
	assert.Error(t, err, "typing not in the legal set")
}

func TestEffectiveness(t *testing.T) {
	r := mustLoad(t)

	assert.Equal(t, 4.0, r.Effectiveness("Electric", "Water", "Flying"))
	assert.Equal(t, 0.0, r.Effectiveness("Ground", "Electric", "Flying"))
	assert.Equal(t, 1.0, r.Effectiveness("Normal", "Fire"))
}
