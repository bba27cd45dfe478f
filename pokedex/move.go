package pokedex

import "fmt"

// Move categories.
const (
	CategoryPhysical = "Physical"
	CategorySpecial  = "Special"
	CategoryStatus   = "Status"
)

// Move is a single move, as shown in character movesets.
type Move struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Power    int    `json:"power"`
	Accuracy int    `json:"accuracy"`
	PP       int    `json:"pp"`
	Banned   bool   `json:"banned,omitempty"`

	Description string `json:"description,omitempty"`
}

// Label renders the move the way character embeds display it.
func (m *Move) Label() string {
	return fmt.Sprintf("%s (%s, %s)", m.Name, m.Type, m.Category)
}
