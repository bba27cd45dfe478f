package moderation

import (
	"fmt"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr/v2"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
	"github.com/parallel-yonder/yonder/db"
)

func (bot *Bot) cmdReport(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	text := common.OptionString(opts, "text")
	anonymous := common.OptionBool(opts, "anonymous")

	channelID := bot.Config.Bot.ReportChannel
	if !channelID.IsValid() {
		channelID = bot.Config.Bot.StaffChannel
	}
	if !channelID.IsValid() {
		return ctx.ReplyEphemeral("No report channel is configured, please tell staff directly.")
	}

	e := discord.Embed{
		Title:       "New report",
		Description: text,
		Color:       common.ColourRed,
		Timestamp:   discord.NewTimestamp(time.Now()),
	}
	if anonymous {
		e.Author = &discord.EmbedAuthor{Name: "Anonymous"}
	} else {
		e.Author = &discord.EmbedAuthor{
			Name: ctx.User.Tag(),
			Icon: ctx.User.AvatarURL(),
		}
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  "Reporter",
			Value: fmt.Sprintf("%v (%v)", ctx.User.Mention(), ctx.User.ID),
		})
	}

	s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
	msg, err := s.SendEmbeds(channelID, e)
	if err != nil {
		log.Errorf("sending report to %v: %v", channelID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "sending report"))
	}

	_, err = bot.DB.InsertReport(db.Report{
		GuildID:   ctx.Event.GuildID,
		UserID:    ctx.User.ID,
		Anonymous: anonymous,
		Text:      text,
		MessageID: msg.ID,
	})
	if err != nil {
		log.Errorf("recording report from %v: %v", ctx.User.ID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "recording report"))
	}

	return ctx.ReplyEphemeral("Your report has been sent to staff. Thank you!")
}
