package roles

import (
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/parallel-yonder/yonder/common"
)

// customIDPrefix marks role menu buttons. Menu buttons carry the target
// role's name, so menus keep working across restarts without any state.
const customIDPrefix = "roles:"

// menu is one self-assign role menu. Roles are matched by name, so the
// server roles have to exist before a menu is posted.
type menu struct {
	Title       string
	Description string
	Roles       []string
}

var menus = map[string]menu{
	"pronouns": {
		Title:       "Pronoun roles",
		Description: "Pick the pronoun roles that fit you. Click a button again to remove the role.",
		Roles:       []string{"He/Him", "She/Her", "They/Them", "Any Pronouns", "Ask My Pronouns"},
	},
	"colours": {
		Title:       "Colour roles",
		Description: "Pick a name colour. Click a button again to remove the role.",
		Roles:       []string{"Red", "Orange", "Yellow", "Green", "Blue", "Purple", "Pink"},
	},
	"pings": {
		Title:       "Ping roles",
		Description: "Opt in to server announcement pings. Click a button again to remove the role.",
		Roles:       []string{"Announcements", "Events", "Updates"},
	},
	"rp-search": {
		Title:       "RP search roles",
		Description: "Pick the kinds of RP you want to be pinged for. Click a button again to remove the role.",
		Roles:       rpSearchRoleNames(),
	},
}

func rpSearchRoleNames() []string {
	out := make([]string, len(common.RPSearchRoles))
	for i, r := range common.RPSearchRoles {
		out[i] = common.RPSearchRoleName(r)
	}
	return out
}

// components renders the menu's buttons, five to a row.
func (m menu) components(id string) discord.ContainerComponents {
	var out discord.ContainerComponents

	row := discord.ActionRowComponent{}
	for _, name := range m.Roles {
		row = append(row, &discord.ButtonComponent{
			CustomID: discord.ComponentID(customIDPrefix + id + ":" + name),
			Label:    name,
			Style:    discord.SecondaryButtonStyle(),
		})
		if len(row) == 5 {
			r := row
			out = append(out, &r)
			row = discord.ActionRowComponent{}
		}
	}
	if len(row) > 0 {
		out = append(out, &row)
	}
	return out
}

func (m menu) embed() discord.Embed {
	return discord.Embed{
		Title:       m.Title,
		Description: m.Description,
		Color:       common.ColourBlurple,
		Image:       &discord.EmbedImage{URL: common.WhiteBar},
	}
}
