package common

import "github.com/diamondburned/arikawa/v3/discord"

// Embed colours used across the bot.
const (
	ColourBlurple = discord.Color(0x5865F2)
	ColourGreen   = discord.Color(0x57F287)
	ColourYellow  = discord.Color(0xFEE75C)
	ColourRed     = discord.Color(0xED4245)
)

// WhiteBar is a thin transparent banner used to force a consistent
// embed width.
const WhiteBar = "https://cdn.discordapp.com/attachments/748384705098940426/880837466007949362/white_bar.png"

// RPSearchRoleName is the server role name for an RP search kind.
func RPSearchRoleName(kind string) string {
	return "RP: " + kind
}
