package roles

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuComponents(t *testing.T) {
	m := menus["pronouns"]
	rows := m.components("pronouns")

	require.Len(t, rows, 1)
	row, ok := rows[0].(*discord.ActionRowComponent)
	require.True(t, ok)
	require.Len(t, *row, 5)

	btn, ok := (*row)[0].(*discord.ButtonComponent)
	require.True(t, ok)
	assert.Equal(t, discord.ComponentID("roles:pronouns:He/Him"), btn.CustomID)
	assert.Equal(t, "He/Him", btn.Label)
}

func TestMenuComponentsRowSplit(t *testing.T) {
	m := menus["colours"]
	rows := m.components("colours")

	// seven colours split into rows of five and two
	require.Len(t, rows, 2)
	first := rows[0].(*discord.ActionRowComponent)
	second := rows[1].(*discord.ActionRowComponent)
	assert.Len(t, *first, 5)
	assert.Len(t, *second, 2)
}

func TestRPSearchMenuRoles(t *testing.T) {
	m := menus["rp-search"]
	assert.Contains(t, m.Roles, "RP: Any")
	assert.Contains(t, m.Roles, "RP: GameMaster")

	// role names contain a colon, so custom IDs have to survive one
	rows := m.components("rp-search")
	row := rows[0].(*discord.ActionRowComponent)
	btn := (*row)[0].(*discord.ButtonComponent)
	assert.Equal(t, discord.ComponentID("roles:rp-search:RP: Any"), btn.CustomID)
}

func TestSearchPostComponents(t *testing.T) {
	rows := searchPostComponents("Plot", 1234567890)

	require.Len(t, rows, 1)
	row, ok := rows[0].(*discord.ActionRowComponent)
	require.True(t, ok)
	require.Len(t, *row, 2)

	toggle := (*row)[0].(*discord.ButtonComponent)
	assert.Equal(t, discord.ComponentID("roles:rp-search:RP: Plot"), toggle.CustomID)

	// the second button points at the pinger's character list
	ocs := (*row)[1].(*discord.ButtonComponent)
	assert.Equal(t, discord.ComponentID("roles:ocs:1234567890"), ocs.CustomID)
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold([]string{"Any", "Plot"}, "any"))
	assert.True(t, containsFold([]string{"Any", "Plot"}, "PLOT"))
	assert.False(t, containsFold([]string{"Any", "Plot"}, "Casual"))
}
