package pokedex

// Ability is a standard ability a species can carry.
type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SpAbility is a user-written special ability, unique to one character.
// It takes up the character's only ability slot.
type SpAbility struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Origin      string `json:"origin"`
	Pros        string `json:"pros"`
	Cons        string `json:"cons"`
}

// IsZero reports whether the special ability is empty.
func (s SpAbility) IsZero() bool {
	return s == SpAbility{}
}
