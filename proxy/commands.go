package proxy

import (
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/api/webhook"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr/v2"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/db"
)

func (bot *Bot) cmdProxySet(ctx *bcr.CommandContext) error {
	opts := common.CommandOptions(ctx.Event)

	name := common.OptionString(opts, "oc")
	variant := common.OptionString(opts, "variant")
	image := common.OptionString(opts, "image")

	char, err := bot.DB.CharacterByName(ctx.Event.GuildID, ctx.User.ID, name)
	if err == db.ErrNotFound {
		return ctx.ReplyEphemeral("You don't have a character called **" + name + "**.")
	} else if err != nil {
		return bot.ReportError(ctx, err)
	}

	defer bot.invalidateMembers(ctx.User.ID)

	if common.OptionBool(opts, "delete") {
		n, err := bot.DB.DeleteCharacterProxies(ctx.User.ID, char.ID)
		if err != nil {
			return bot.ReportError(ctx, err)
		}
		if n == 0 {
			return ctx.ReplyEphemeral("**" + char.Name + "** had no proxies to delete.")
		}
		return ctx.Reply(fmt.Sprintf("Deleted %d proxy(s) for **%v**.", n, char.Name))
	}

	p, err := bot.DB.UpsertProxy(ctx.User.ID, char.ID, variant, image)
	if err != nil {
		return bot.ReportError(ctx, err)
	}

	if prefix := common.OptionString(opts, "prefix"); prefix != "" {
		tag, err := ParseTag(prefix)
		if err != nil {
			return ctx.ReplyEphemeral("That doesn't look like a proxy tag. Write it around the word \"text\", like `k:text` or `[text]`.")
		}

		if _, err := bot.DB.AddProxyTag(p.ID, tag.Prefix, tag.Suffix); err != nil {
			return bot.ReportError(ctx, err)
		}
	}

	label := char.Name
	if variant != "" {
		label += " (" + variant + ")"
	}
	return ctx.Reply("", discord.Embed{
		Title:       "Proxy updated",
		Description: "Messages matching **" + label + "**'s tags will now be reposted under that name.",
		Color:       common.ColourGreen,
	})
}

func (bot *Bot) cmdProxyList(ctx *bcr.CommandContext) error {
	proxies, err := bot.DB.UserProxies(ctx.User.ID)
	if err != nil {
		return bot.ReportError(ctx, err)
	}
	if len(proxies) == 0 {
		return ctx.ReplyEphemeral("You have no proxies set up. Use `/proxy set` to add one.")
	}

	chars := map[int64]string{}
	var fields []discord.EmbedField
	for _, p := range proxies {
		name, ok := chars[p.CharacterID]
		if !ok {
			c, err := bot.DB.Character(p.CharacterID)
			if err != nil {
				return bot.ReportError(ctx, err)
			}
			name = c.Name
			chars[p.CharacterID] = name
		}
		if p.Variant != "" {
			name += " (" + p.Variant + ")"
		}

		tags := make([]string, 0, len(p.Tags))
		for _, t := range p.Tags {
			tags = append(tags, "`"+Tag{Prefix: t.Prefix, Suffix: t.Suffix}.String()+"`")
		}
		if len(tags) == 0 {
			tags = append(tags, "*no tags*")
		}

		fields = append(fields, discord.EmbedField{
			Name:  name,
			Value: strings.Join(tags, ", "),
		})
	}

	return ctx.ReplyComplex(api.InteractionResponseData{
		Embeds: &[]discord.Embed{{
			Title:  "Your proxies",
			Color:  common.ColourBlurple,
			Fields: fields,
		}},
		Flags: discord.EphemeralMessage,
	})
}

func (bot *Bot) cmdNPCSet(ctx *bcr.CommandContext) error {
	opts := common.CommandOptions(ctx.Event)

	npc := db.NPC{
		UserID: ctx.User.ID,
		Name:   common.OptionString(opts, "name"),
		Image:  common.OptionString(opts, "image"),
	}

	if sp := common.OptionString(opts, "species"); sp != "" {
		s := bot.Dex.DeduceSpecies(sp)
		if s == nil {
			return ctx.ReplyEphemeral("I couldn't find a species matching **" + sp + "**.")
		}
		if s.Banned {
			return ctx.ReplyEphemeral("**" + s.Name + "** can't be used here.")
		}

		if npc.Name == "" {
			npc.Name = s.Name
		}
		if npc.Image == "" {
			npc.Image = s.Image(common.OptionBool(opts, "shiny"), false)
		}
	}

	if npc.Name == "" {
		return ctx.ReplyEphemeral("Give the NPC a name, or a species to take the name from.")
	}

	if err := bot.DB.SetNPC(npc); err != nil {
		return bot.ReportError(ctx, err)
	}
	return ctx.ReplyEphemeral("Saved **" + npc.Name + "** as your NPC. Narrate with `/npc say`.")
}

func (bot *Bot) cmdNPCSay(ctx *bcr.CommandContext) error {
	opts := common.CommandOptions(ctx.Event)
	text := common.OptionString(opts, "text")

	var npc db.NPC
	if sp := common.OptionString(opts, "species"); sp != "" {
		s := bot.Dex.DeduceSpecies(sp)
		if s == nil {
			return ctx.ReplyEphemeral("I couldn't find a species matching **" + sp + "**.")
		}
		if s.Banned {
			return ctx.ReplyEphemeral("**" + s.Name + "** can't be used here.")
		}
		npc = db.NPC{Name: s.Name, Image: s.Image(false, false)}
	} else {
		var err error
		npc, err = bot.DB.NPC(ctx.User.ID)
		if err == db.ErrNotFound {
			return ctx.ReplyEphemeral("You have no saved NPC. Set one with `/npc set`, or pass a species.")
		} else if err != nil {
			return bot.ReportError(ctx, err)
		}
	}

	_, err := bot.ExecuteAs(ctx.Event.GuildID, ctx.Event.ChannelID, webhook.ExecuteData{
		Content:   text,
		Username:  SafeUsername(npc.Name),
		AvatarURL: npc.Image,
		AllowedMentions: &api.AllowedMentions{
			Parse: []api.AllowedMentionType{api.AllowUserMention},
		},
	})
	if err != nil {
		return bot.ReportError(ctx, err)
	}

	return ctx.ReplyEphemeral("Sent!")
}
