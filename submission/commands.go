package submission

import (
	"context"
	"fmt"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/starshine-sys/bcr/v2"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
	"github.com/parallel-yonder/yonder/db"
	"github.com/parallel-yonder/yonder/pokedex"
)

func (bot *Bot) cmdList(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	userID := common.OptionUser(opts, "member")
	if !userID.IsValid() {
		userID = ctx.User.ID
	}

	cs, err := bot.DB.UserCharacters(ctx.Event.GuildID, userID)
	if err != nil {
		log.Errorf("getting characters for %v: %v", userID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "getting characters"))
	}
	if len(cs) == 0 {
		return ctx.ReplyEphemeral(fmt.Sprintf("%v has no characters yet.", userID.Mention()))
	}

	embeds := CharacterList(cs)

	return ctx.ReplyComplex(api.InteractionResponseData{
		Embeds:          &embeds,
		AllowedMentions: &api.AllowedMentions{},
	})
}

func (bot *Bot) cmdEdit(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	c, err := bot.DB.CharacterByName(ctx.Event.GuildID, ctx.User.ID, common.OptionString(opts, "name"))
	if err == db.ErrNotFound {
		return ctx.ReplyEphemeral("You don't have a character by that name.")
	} else if err != nil {
		log.Errorf("getting character for %v: %v", ctx.User.ID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "getting character"))
	}

	if rename := common.OptionString(opts, "rename"); rename != "" {
		if _, err := bot.DB.CharacterByName(ctx.Event.GuildID, ctx.User.ID, rename); err == nil {
			return ctx.ReplyEphemeral(fmt.Sprintf("You already have a character named %v.", rename))
		} else if err != db.ErrNotFound {
			return bot.ReportError(ctx, errors.Wrap(err, "checking for existing character"))
		}
		c.Name = rename
	}

	if age := common.OptionInt(opts, "age", -1); age >= 0 {
		c.Age = int(age)
	}
	if p := common.OptionString(opts, "pronoun"); p != "" {
		c.Pronoun = pokedex.ParsePronoun(p)
	}

	if in := common.OptionString(opts, "abilities"); in != "" {
		c.Abilities, err = ResolveAbilities(bot.Dex, &c.Species, SplitList(in), c.SpAbility != nil, randPick)
		if err != nil {
			return ctx.ReplyEphemeral(err.Error())
		}
	}
	if in := common.OptionString(opts, "moves"); in != "" {
		c.Moveset, err = ResolveMoves(bot.Dex, &c.Species, SplitList(in), randPick)
		if err != nil {
			return ctx.ReplyEphemeral(err.Error())
		}
	}

	if opts.Find("shiny").Name != "" {
		c.Shiny = common.OptionBool(opts, "shiny")
	}
	if img := common.OptionString(opts, "image"); img != "" {
		c.Image = img
	}
	if v := common.OptionString(opts, "backstory"); v != "" {
		c.Backstory = v
	}
	if v := common.OptionString(opts, "personality"); v != "" {
		c.Personality = v
	}
	if v := common.OptionString(opts, "extra"); v != "" {
		c.Extra = v
	}

	c, err = bot.DB.UpdateCharacter(c)
	if err != nil {
		log.Errorf("updating character %v: %v", c.ID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "updating character"))
	}

	// keep the staff announcement in sync
	if c.MessageID.IsValid() {
		e := CharacterEmbed(bot.Dex, c)
		e.Author = &discord.EmbedAuthor{
			Name: fmt.Sprintf("Submitted by %v", ctx.User.Tag()),
			Icon: ctx.User.AvatarURL(),
		}

		s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
		_, err = s.EditEmbeds(c.ChannelID, c.MessageID, e)
		if err != nil {
			log.Errorf("updating announcement message for %v: %v", c.ID, err)
		}
	}

	return ctx.ReplyComplex(api.InteractionResponseData{
		Content: option.NewNullableString(fmt.Sprintf("✅ %v has been updated!", c.Name)),
		Embeds:  &[]discord.Embed{CharacterEmbed(bot.Dex, c)},
	})
}

func (bot *Bot) cmdDelete(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	c, err := bot.DB.CharacterByName(ctx.Event.GuildID, ctx.User.ID, common.OptionString(opts, "name"))
	if err == db.ErrNotFound {
		return ctx.ReplyEphemeral("You don't have a character by that name.")
	} else if err != nil {
		log.Errorf("getting character for %v: %v", ctx.User.ID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "getting character"))
	}

	w := &wizard{bot: bot, ctx: ctx, first: true}
	err = w.respond(api.InteractionResponseData{
		Content: option.NewNullableString(fmt.Sprintf("Are you sure you want to delete %v? This can't be undone.", c.Name)),
		Components: &discord.ContainerComponents{
			&discord.ActionRowComponent{
				&discord.ButtonComponent{
					CustomID: "oc:delete",
					Label:    "Delete",
					Style:    discord.DangerButtonStyle(),
				},
				cancelButton(),
			},
		},
	})
	if err != nil {
		log.Errorf("sending delete confirmation for %v: %v", ctx.Event.ID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "sending confirmation"))
	}

	cctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for {
		id, _, ok := w.wait(cctx)
		if !ok {
			w.clearComponents()
			return nil
		}

		switch id {
		case "oc:cancel":
			return w.finish("Deletion cancelled.", nil)
		case "oc:delete":
			err = bot.DB.DeleteCharacter(c.ID)
			if err != nil {
				log.Errorf("deleting character %v: %v", c.ID, err)
				return bot.ReportError(w.cur, errors.Wrap(err, "deleting character"))
			}

			if c.MessageID.IsValid() {
				s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
				err = s.DeleteMessage(c.ChannelID, c.MessageID, "Character deleted")
				if err != nil {
					log.Errorf("deleting announcement message for %v: %v", c.ID, err)
				}
			}

			return w.finish(fmt.Sprintf("%v has been deleted.", c.Name), nil)
		}
	}
}

// cmdRegister grants the registered member role, marking a member's
// introduction as approved by staff.
func (bot *Bot) cmdRegister(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	userID := common.OptionUser(opts, "member")
	if !userID.IsValid() {
		return ctx.ReplyEphemeral("No member given.")
	}

	roleID := bot.Config.Bot.RegisteredRole
	if !roleID.IsValid() {
		return ctx.ReplyEphemeral("No registered role is configured.")
	}

	s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
	err = s.AddRole(ctx.Event.GuildID, userID, roleID, api.AddRoleData{
		AuditLogReason: api.AuditLogReason(fmt.Sprintf("Registered by %v", ctx.User.Tag())),
	})
	if err != nil {
		log.Errorf("adding role %v to %v: %v", roleID, userID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "adding role"))
	}

	return ctx.ReplyComplex(api.InteractionResponseData{
		Content:         option.NewNullableString(fmt.Sprintf("✅ %v is now registered!", userID.Mention())),
		AllowedMentions: &api.AllowedMentions{},
	})
}
