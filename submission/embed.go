package submission

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/db"
	"github.com/parallel-yonder/yonder/pokedex"
)

// listDescriptionLimit leaves headroom under Discord's 4096-character
// embed description cap.
const listDescriptionLimit = 4000

// maxListEmbeds is Discord's embeds-per-message cap.
const maxListEmbeds = 10

// CharacterList renders one line per character, chunked into as many
// embeds as the lines need.
func CharacterList(cs []db.Character) []discord.Embed {
	if len(cs) == 0 {
		return nil
	}

	var (
		embeds []discord.Embed
		b      strings.Builder
	)

	flush := func() {
		if b.Len() == 0 {
			return
		}
		embeds = append(embeds, discord.Embed{
			Description: b.String(),
			Color:       common.ColourBlurple,
		})
		b.Reset()
	}

	for _, c := range cs {
		line := fmt.Sprintf("**%v** — %v", c.Name, c.Species.Name)
		if c.Shiny {
			line += " ✨"
		}
		line += "\n"

		if b.Len()+len(line) > listDescriptionLimit {
			flush()
		}
		b.WriteString(line)
	}
	flush()

	if len(embeds) > maxListEmbeds {
		embeds = embeds[:maxListEmbeds]
	}

	embeds[0].Title = fmt.Sprintf("Characters (%d)", len(cs))
	return embeds
}

// CharacterEmbed renders a character sheet. The same embed is used for
// the submission preview, the staff announcement, and /oc list detail.
func CharacterEmbed(dex *pokedex.Registry, c db.Character) discord.Embed {
	e := discord.Embed{
		Title:       c.Name,
		Description: c.Backstory,
		Color:       embedColour(dex, c.Species.Types),
		Footer: &discord.EmbedFooter{
			Text: strings.Join(c.Species.Types, " / "),
		},
	}

	species := c.Species.Name
	if c.Species.Kind != pokedex.KindPokemon {
		species = fmt.Sprintf("%v (%v)", c.Species.Name, c.Species.Kind)
	}
	if c.Shiny {
		species += " ✨"
	}
	e.Fields = append(e.Fields, discord.EmbedField{
		Name:   "Species",
		Value:  species,
		Inline: true,
	})

	e.Fields = append(e.Fields, discord.EmbedField{
		Name:   "Pronoun",
		Value:  string(c.Pronoun),
		Inline: true,
	})
	if c.Age > 0 {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:   "Age",
			Value:  fmt.Sprint(c.Age),
			Inline: true,
		})
	}

	if c.SpAbility != nil && !c.SpAbility.IsZero() {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  "Special ability: " + c.SpAbility.Name,
			Value: spAbilityValue(*c.SpAbility),
		})
	}
	if len(c.Abilities) > 0 {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  "Abilities",
			Value: abilityList(dex, c.Abilities),
		})
	}

	if len(c.Moveset) > 0 {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  "Moveset",
			Value: moveList(dex, c.Moveset),
		})
	}

	if c.Personality != "" {
		e.Fields = append(e.Fields, discord.EmbedField{Name: "Personality", Value: c.Personality})
	}
	if c.Extra != "" {
		e.Fields = append(e.Fields, discord.EmbedField{Name: "Extra", Value: c.Extra})
	}

	if img := characterImage(c); img != "" {
		e.Thumbnail = &discord.EmbedThumbnail{URL: img}
	}
	return e
}

func characterImage(c db.Character) string {
	if c.Image != "" {
		return c.Image
	}
	return c.Species.Image(c.Shiny, c.Pronoun.Female())
}

func embedColour(dex *pokedex.Registry, types []string) discord.Color {
	if len(types) > 0 {
		if t, ok := dex.Type(types[0]); ok && t.Color != 0 {
			return discord.Color(t.Color)
		}
	}
	return common.ColourBlurple
}

func abilityList(dex *pokedex.Registry, names []string) string {
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		if a, ok := dex.Ability(name); ok && a.Description != "" {
			fmt.Fprintf(&b, "**%v**: %v", a.Name, a.Description)
		} else {
			fmt.Fprintf(&b, "**%v**", name)
		}
	}
	return b.String()
}

func moveList(dex *pokedex.Registry, names []string) string {
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		if m, ok := dex.Move(name); ok {
			b.WriteString(m.Label())
		} else {
			b.WriteString(name)
		}
	}
	return b.String()
}

func spAbilityValue(sp pokedex.SpAbility) string {
	var b strings.Builder
	b.WriteString(sp.Description)
	if sp.Origin != "" {
		fmt.Fprintf(&b, "\n*Origin:* %v", sp.Origin)
	}
	if sp.Pros != "" {
		fmt.Fprintf(&b, "\n*Pros:* %v", sp.Pros)
	}
	if sp.Cons != "" {
		fmt.Fprintf(&b, "\n*Cons:* %v", sp.Cons)
	}
	return b.String()
}
