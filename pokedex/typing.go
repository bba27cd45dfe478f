package pokedex

// Typing is a single elemental type, along with its share of the type chart.
type Typing struct {
	Name  string `json:"name"`
	Color uint32 `json:"color"`
	Emoji string `json:"emoji,omitempty"`

	// Chart maps an attacking type's name to the damage multiplier
	// against this type. Types not present take 1x.
	Chart map[string]float64 `json:"chart,omitempty"`
}

// Effectiveness returns the damage multiplier when a move of the given
// type hits this type.
func (t *Typing) Effectiveness(attacking string) float64 {
	if m, ok := t.Chart[Fix(attacking)]; ok {
		return m
	}
	return 1
}

// Effectiveness returns the combined multiplier of an attacking type
// against a defending type combination.
func (r *Registry) Effectiveness(attacking string, defending ...string) float64 {
	mult := 1.0
	for _, d := range defending {
		if t, ok := r.Type(d); ok {
			mult *= t.Effectiveness(attacking)
		}
	}
	return mult
}
