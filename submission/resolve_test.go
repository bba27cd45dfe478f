package submission

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallel-yonder/yonder/db"
	"github.com/parallel-yonder/yonder/pokedex"
)

func mustLoad(t *testing.T) *pokedex.Registry {
	t.Helper()

	r, err := pokedex.Load()
	require.NoError(t, err)
	return r
}

func mustSpecies(t *testing.T, dex *pokedex.Registry, name string) *pokedex.Species {
	t.Helper()

	s, ok := dex.Species(name)
	require.True(t, ok, "species %v should exist", name)
	return s
}

// firstPick makes sampling deterministic for tests.
func firstPick(int) int { return 0 }

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("   "))
	assert.Equal(t, []string{"a", "b", "c"}, SplitList("a, b ,,c"))
	assert.Equal(t, []string{"Quick Attack"}, SplitList("Quick Attack"))
}

func TestParseStats(t *testing.T) {
	st, err := ParseStats("3/4/2/3/3/3")
	require.NoError(t, err)
	assert.Equal(t, pokedex.Stats{HP: 3, Atk: 4, Def: 2, SpA: 3, SpD: 3, Spe: 3}, st)

	_, err = ParseStats("3/4")
	assert.Error(t, err)
	_, err = ParseStats("3/4/x/3/3/3")
	assert.Error(t, err)
	_, err = ParseStats("9/1/1/1/1/1")
	assert.Error(t, err)
	_, err = ParseStats("5/5/5/5/5/5")
	assert.Error(t, err, "total over 18 should be rejected")
}

func TestResolveAbilities(t *testing.T) {
	dex := mustLoad(t)

	pikachu := mustSpecies(t, dex, "Pikachu")
	growlithe := mustSpecies(t, dex, "Growlithe")
	nihilego := mustSpecies(t, dex, "Nihilego")
	articuno := mustSpecies(t, dex, "Articuno")

	got, err := ResolveAbilities(dex, pikachu, []string{"static"}, false, firstPick)
	require.NoError(t, err)
	assert.Equal(t, []string{"Static"}, got)

	// sampled default
	got, err = ResolveAbilities(dex, pikachu, nil, false, firstPick)
	require.NoError(t, err)
	assert.Equal(t, []string{"Static"}, got)

	_, err = ResolveAbilities(dex, pikachu, []string{"qqq"}, false, firstPick)
	assert.Error(t, err)

	_, err = ResolveAbilities(dex, pikachu, []string{"Blaze"}, false, firstPick)
	assert.Error(t, err, "Pikachu can't have Blaze")

	_, err = ResolveAbilities(dex, growlithe, []string{"Intimidate", "Flash Fire", "Justified"}, false, firstPick)
	assert.Error(t, err, "three abilities is over the limit")

	_, err = ResolveAbilities(dex, growlithe, []string{"Intimidate", "Intimidate"}, false, firstPick)
	assert.Error(t, err, "duplicates should be rejected")

	// ultra beasts are locked to Beast Boost
	got, err = ResolveAbilities(dex, nihilego, []string{"Levitate"}, false, firstPick)
	require.NoError(t, err)
	assert.Equal(t, []string{pokedex.BeastBoost}, got)

	// a special ability takes all but one slot
	_, err = ResolveAbilities(dex, growlithe, []string{"Intimidate", "Flash Fire"}, true, firstPick)
	assert.Error(t, err)
	got, err = ResolveAbilities(dex, growlithe, []string{"Intimidate"}, true, firstPick)
	require.NoError(t, err)
	assert.Equal(t, []string{"Intimidate"}, got)

	_, err = ResolveAbilities(dex, articuno, nil, true, firstPick)
	assert.Error(t, err, "legendaries can't have special abilities")
}

func TestResolveAbilitiesFakemon(t *testing.T) {
	dex := mustLoad(t)

	fake, err := pokedex.NewFakemon("Blob", pokedex.Stats{})
	require.NoError(t, err)

	got, err := ResolveAbilities(dex, fake, []string{"Levitate", "Blaze"}, false, firstPick)
	require.NoError(t, err)
	assert.Equal(t, []string{"Levitate", "Blaze"}, got)

	_, err = ResolveAbilities(dex, fake, []string{"Beast Boost", "Blaze"}, false, firstPick)
	assert.Error(t, err, "Beast Boost can't be paired")

	got, err = ResolveAbilities(dex, fake, []string{"Beast Boost"}, false, firstPick)
	require.NoError(t, err)
	assert.Equal(t, []string{pokedex.BeastBoost}, got)
}

func TestResolveMoves(t *testing.T) {
	dex := mustLoad(t)
	pikachu := mustSpecies(t, dex, "Pikachu")

	got, err := ResolveMoves(dex, pikachu, []string{"thunderbolt", "tackle"}, firstPick)
	require.NoError(t, err)
	assert.Equal(t, []string{"Thunderbolt", "Tackle"}, got)

	_, err = ResolveMoves(dex, pikachu, []string{"Fire Blast"}, firstPick)
	assert.Error(t, err, "Pikachu doesn't learn Fire Blast")

	_, err = ResolveMoves(dex, pikachu, []string{"Double Team"}, firstPick)
	assert.Error(t, err, "banned moves are rejected")

	_, err = ResolveMoves(dex, pikachu, []string{"Tackle", "Tackle"}, firstPick)
	assert.Error(t, err)

	_, err = ResolveMoves(dex, pikachu,
		[]string{"Tackle", "Thunder Wave", "Quick Attack", "Thunderbolt", "Protect", "Volt Tackle", "Tackle"}, firstPick)
	assert.Error(t, err, "seven moves is over the limit")

	// sampled default fills the whole moveset
	got, err = ResolveMoves(dex, pikachu, nil, firstPick)
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"Protect", "Quick Attack", "Tackle", "Thunderbolt", "Thunder Wave", "Volt Tackle"}, got)
}

func TestCharacterEmbed(t *testing.T) {
	dex := mustLoad(t)
	pikachu := mustSpecies(t, dex, "Pikachu")

	c := db.Character{
		Name:      "Sparky",
		Age:       14,
		Pronoun:   pokedex.PronounShe,
		Species:   *pikachu,
		Abilities: []string{"Static"},
		Moveset:   []string{"Thunderbolt", "Quick Attack"},
		Backstory: "Found in a power plant.",
	}

	e := CharacterEmbed(dex, c)
	assert.Equal(t, "Sparky", e.Title)
	assert.Equal(t, "Found in a power plant.", e.Description)
	require.NotNil(t, e.Footer)
	assert.Equal(t, "Electric", e.Footer.Text)
	require.NotNil(t, e.Thumbnail)
	assert.NotEmpty(t, e.Thumbnail.URL)

	var fields []string
	for _, f := range e.Fields {
		fields = append(fields, f.Name)
	}
	assert.Contains(t, fields, "Species")
	assert.Contains(t, fields, "Pronoun")
	assert.Contains(t, fields, "Age")
	assert.Contains(t, fields, "Abilities")
	assert.Contains(t, fields, "Moveset")
	assert.NotContains(t, fields, "Personality")
}

func TestCharacterList(t *testing.T) {
	assert.Nil(t, CharacterList(nil))

	cs := []db.Character{
		{Name: "Sparky", Species: pokedex.Species{Name: "Pikachu"}, Shiny: true},
		{Name: "Ember", Species: pokedex.Species{Name: "Growlithe"}},
	}

	embeds := CharacterList(cs)
	require.Len(t, embeds, 1)
	assert.Equal(t, "Characters (2)", embeds[0].Title)
	assert.Contains(t, embeds[0].Description, "**Sparky** — Pikachu ✨")
	assert.Contains(t, embeds[0].Description, "**Ember** — Growlithe")
}

func TestCharacterListChunks(t *testing.T) {
	var cs []db.Character
	for i := 0; i < 200; i++ {
		cs = append(cs, db.Character{
			Name:    fmt.Sprintf("Character %03d %v", i, strings.Repeat("x", 60)),
			Species: pokedex.Species{Name: "Pikachu"},
		})
	}

	embeds := CharacterList(cs)
	require.Greater(t, len(embeds), 1)
	assert.Equal(t, "Characters (200)", embeds[0].Title)

	for _, e := range embeds {
		assert.LessOrEqual(t, len(e.Description), 4096)
	}
}
