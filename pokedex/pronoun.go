package pokedex

// Pronoun is the pronoun set a character goes by.
type Pronoun string

const (
	PronounHe   Pronoun = "He"
	PronounShe  Pronoun = "She"
	PronounThem Pronoun = "Them"
)

// ParsePronoun maps free input to a pronoun, defaulting to Them.
func ParsePronoun(s string) Pronoun {
	switch Fix(s) {
	case "HE", "HIM", "HEHIM":
		return PronounHe
	case "SHE", "HER", "SHEHER":
		return PronounShe
	default:
		return PronounThem
	}
}

// Female reports whether the pronoun selects female sprites.
func (p Pronoun) Female() bool { return p == PronounShe }
