package meta

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr/v2"

	"github.com/parallel-yonder/yonder/common"
)

func (bot *Bot) cmdHelp(ctx *bcr.CommandContext) (err error) {
	e := discord.Embed{
		Title: "Help",
		Description: fmt.Sprintf(`%v is this server's roleplay companion: it handles character submissions, message proxying, self-assign roles, and RP search pings.`,
			bot.Me().Username),
		Color: common.ColourBlurple,

		Fields: []discord.EmbedField{
			{
				Name: "Characters",
				Value: "`/oc create`: submit a new character\n" +
					"`/oc list`: list a member's characters\n" +
					"`/oc edit`: edit one of your characters\n" +
					"`/oc delete`: delete one of your characters",
			},
			{
				Name: "Proxying",
				Value: "`/proxy set`: set a proxy tag for a character, like `k:text`\n" +
					"`/proxy list`: show your proxies\n" +
					"`/npc set` and `/npc say`: narrate as a one-off NPC\n" +
					"React with ❌ to delete your own proxied message, or ❓ to see who sent one.",
			},
			{
				Name:  "Roles and RP",
				Value: "Use the role menus to pick pronoun, colour and ping roles.\n`/ping`: ping an RP search role (once every two hours)",
			},
		},

		Footer: &discord.EmbedFooter{
			Text: "Version " + common.Version(),
		},
	}

	e.Fields = append(e.Fields, bot.Config.Info.HelpFields...)

	if bot.Config.Info.SupportServer != "" {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  "Support",
			Value: "Use this link to join the support server: " + bot.Config.Info.SupportServer,
		})
	}

	return ctx.ReplyComplex(api.InteractionResponseData{
		Embeds: &[]discord.Embed{e},
		Flags:  discord.EphemeralMessage,
	})
}

func (bot *Bot) cmdInvite(ctx *bcr.CommandContext) (err error) {
	base := bot.Config.Info.InviteBase
	if base == "" {
		base = "https://discord.com/api/oauth2/authorize"
	}

	perms := discord.PermissionViewChannel |
		discord.PermissionReadMessageHistory |
		discord.PermissionAddReactions |
		discord.PermissionAttachFiles |
		discord.PermissionUseExternalEmojis |
		discord.PermissionEmbedLinks |
		discord.PermissionManageMessages |
		discord.PermissionSendMessages |
		discord.PermissionManageWebhooks |
		discord.PermissionManageRoles |
		discord.PermissionKickMembers |
		discord.PermissionBanMembers

	link := fmt.Sprintf("%v?client_id=%v&permissions=%v&scope=bot%%20applications.commands", base, bot.Me().ID, uint64(perms))

	return ctx.ReplyEphemeral(fmt.Sprintf("Use the following link to invite me to your server: <%v>", link))
}
