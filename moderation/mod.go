package moderation

import (
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
)

func (bot *Bot) cmdWarn(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	userID := common.OptionUser(opts, "member")
	reason := common.OptionString(opts, "reason")

	w, err := bot.DB.InsertWarning(db.Warning{
		GuildID:   ctx.Event.GuildID,
		UserID:    userID,
		Moderator: ctx.User.ID,
		Reason:    reason,
	})
	if err != nil {
		log.Errorf("recording warning for %v: %v", userID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "recording warning"))
	}

	ws, err := bot.DB.UserWarnings(ctx.Event.GuildID, userID)
	if err != nil {
		log.Errorf("getting warnings for %v: %v", userID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "getting warnings"))
	}

	bot.dmUser(userID, discord.Embed{
		Title:       "You have been warned",
		Description: reason,
		Color:       common.ColourYellow,
		Timestamp:   discord.NewTimestamp(w.Created),
	})

	bot.logAction(ctx, "Warn", userID, reason, common.ColourYellow)

	return ctx.ReplyEphemeral(fmt.Sprintf(
		"⚠️ Warned %v. They now have %d warning(s).", userID.Mention(), len(ws)))
}

func (bot *Bot) cmdKick(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	userID := common.OptionUser(opts, "member")
	reason := common.OptionString(opts, "reason")

	// DM first, it's impossible once they're gone
	bot.dmUser(userID, discord.Embed{
		Title:       "You have been kicked",
		Description: reason,
		Color:       common.ColourRed,
		Timestamp:   discord.NewTimestamp(time.Now()),
	})

	s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
	err = s.Kick(ctx.Event.GuildID, userID, auditReason(ctx, reason))
	if err != nil {
		log.Errorf("kicking %v: %v", userID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "kicking member"))
	}

	bot.logAction(ctx, "Kick", userID, reason, common.ColourRed)

	return ctx.ReplyEphemeral(fmt.Sprintf("👢 Kicked %v.", userID.Mention()))
}

func (bot *Bot) cmdBan(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	userID := common.OptionUser(opts, "member")
	reason := common.OptionString(opts, "reason")

	days := common.OptionInt(opts, "days", 0)
	if days < 0 || days > 7 {
		return ctx.ReplyEphemeral("`days` must be between 0 and 7.")
	}

	bot.dmUser(userID, discord.Embed{
		Title:       "You have been banned",
		Description: reason,
		Color:       common.ColourRed,
		Timestamp:   discord.NewTimestamp(time.Now()),
	})

	s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
	err = s.Ban(ctx.Event.GuildID, userID, api.BanData{
		DeleteDays:     option.NewUint(uint(days)),
		AuditLogReason: auditReason(ctx, reason),
	})
	if err != nil {
		log.Errorf("banning %v: %v", userID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "banning member"))
	}

	bot.logAction(ctx, "Ban", userID, reason, common.ColourRed)

	return ctx.ReplyEphemeral(fmt.Sprintf("🔨 Banned %v.", userID.Mention()))
}

func (bot *Bot) cmdUnban(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	sf, err := discord.ParseSnowflake(common.OptionString(opts, "user"))
	if err != nil {
		return ctx.ReplyEphemeral("That's not a valid user ID.")
	}
	userID := discord.UserID(sf)
	reason := common.OptionString(opts, "reason")

	s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
	err = s.Unban(ctx.Event.GuildID, userID, auditReason(ctx, reason))
	if err != nil {
		log.Errorf("unbanning %v: %v", userID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "unbanning user"))
	}

	bot.logAction(ctx, "Unban", userID, reason, common.ColourGreen)

	return ctx.ReplyEphemeral(fmt.Sprintf("Unbanned %v.", userID.Mention()))
}

func auditReason(ctx *bcr.CommandContext, reason string) api.AuditLogReason {
	if reason == "" {
		reason = "No reason given"
	}
	return api.AuditLogReason(fmt.Sprintf("%v: %v", ctx.User.Tag(), reason))
}

// dmUser tries to notify a user of an action taken against them.
// Failures (DMs off, user left) are expected and only logged.
func (bot *Bot) dmUser(userID discord.UserID, e discord.Embed) {
	s, _ := bot.StateFromGuildID(bot.Config.Bot.GuildID)
	ch, err := s.CreatePrivateChannel(userID)
	if err != nil {
		log.Debugf("opening DM channel to %v: %v", userID, err)
		return
	}
	_, err = s.SendEmbeds(ch.ID, e)
	if err != nil {
		log.Debugf("DMing %v: %v", userID, err)
	}
}

// logAction posts a moderation action to the mod log channel.
func (bot *Bot) logAction(ctx *bcr.CommandContext, action string, target discord.UserID, reason string, colour discord.Color) {
	channelID := bot.Config.Bot.ModLogChannel
	if !channelID.IsValid() {
		return
	}

	if reason == "" {
		reason = "No reason given"
	}

	s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
	_, err := s.SendEmbeds(channelID, discord.Embed{
		Title: action,
		Color: colour,
		Fields: []discord.EmbedField{
			{Name: "User", Value: fmt.Sprintf("%v (%v)", target.Mention(), target), Inline: true},
			{Name: "Moderator", Value: ctx.User.Mention(), Inline: true},
			{Name: "Reason", Value: reason},
		},
		Timestamp: discord.NewTimestamp(time.Now()),
	})
	if err != nil {
		log.Errorf("sending mod log for %v: %v", target, err)
	}
}
