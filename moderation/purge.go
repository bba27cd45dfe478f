package moderation

import (
	"fmt"
	"regexp"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/starshine-sys/bcr/v2"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
)

// bulkDeleteMaxAge is how far back bulk deletion can reach.
const bulkDeleteMaxAge = 14 * 24 * time.Hour

func (bot *Bot) cmdPurge(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	amount := common.OptionInt(opts, "amount", 5)
	if amount < 1 {
		amount = 1
	} else if amount > 100 {
		amount = 100
	}

	botsOnly := common.OptionBool(opts, "bots")
	userID := common.OptionUser(opts, "member")

	var match *regexp.Regexp
	if in := common.OptionString(opts, "match"); in != "" {
		match, err = regexp.Compile(in)
		if err != nil {
			return ctx.ReplyEphemeral("That's not a valid regular expression.")
		}
	}

	s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
	msgs, err := s.Messages(ctx.Event.ChannelID, uint(amount))
	if err != nil {
		log.Errorf("getting messages in %v: %v", ctx.Event.ChannelID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "getting messages"))
	}

	cutoff := time.Now().Add(-bulkDeleteMaxAge)

	var ids []discord.MessageID
	for _, m := range msgs {
		if m.ID.Time().Before(cutoff) {
			continue
		}
		if botsOnly && !m.Author.Bot {
			continue
		}
		if userID.IsValid() && m.Author.ID != userID {
			continue
		}
		if match != nil && !match.MatchString(m.Content) {
			continue
		}
		ids = append(ids, m.ID)
	}

	if len(ids) == 0 {
		return ctx.ReplyEphemeral("No messages matched, nothing was deleted.")
	}

	reason := api.AuditLogReason(fmt.Sprintf("%v: purge", ctx.User.Tag()))
	if len(ids) == 1 {
		err = s.DeleteMessage(ctx.Event.ChannelID, ids[0], reason)
	} else {
		err = s.DeleteMessages(ctx.Event.ChannelID, ids, reason)
	}
	if err != nil {
		log.Errorf("purging %d messages in %v: %v", len(ids), ctx.Event.ChannelID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "deleting messages"))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("Deleted %d message(s).", len(ids)))
}

func (bot *Bot) cmdSlowmode(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	seconds := common.OptionInt(opts, "seconds", 21600)
	if seconds < 0 || seconds > 21600 {
		return ctx.ReplyEphemeral("Slowmode must be between 0 and 21600 seconds.")
	}

	s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
	err = s.ModifyChannel(ctx.Event.ChannelID, api.ModifyChannelData{
		UserRateLimit:  option.NewNullableUint(uint(seconds)),
		AuditLogReason: api.AuditLogReason(fmt.Sprintf("%v: slowmode", ctx.User.Tag())),
	})
	if err != nil {
		log.Errorf("setting slowmode in %v: %v", ctx.Event.ChannelID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "setting slowmode"))
	}

	if seconds == 0 {
		return ctx.ReplyEphemeral("Slowmode turned off.")
	}
	return ctx.ReplyEphemeral(fmt.Sprintf("Slowmode set to %d seconds.", seconds))
}
