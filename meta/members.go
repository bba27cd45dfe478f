package meta

import (
	"context"
	"fmt"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/dustin/go-humanize"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
	"github.com/parallel-yonder/yonder/store"
)

// newAccountAge is the account age below which a join is flagged.
const newAccountAge = 7 * 24 * time.Hour

func (bot *Bot) guildMemberAdd(m *gateway.GuildMemberAddEvent) {
	err := bot.Cabinet.SetMember(context.Background(), m.GuildID, m.Member)
	if err != nil {
		log.Errorf("caching member %v: %v", m.User.ID, err)
	}

	if !bot.Config.Bot.JoinLeaveLog.IsValid() {
		return
	}

	e := discord.Embed{
		Title: "Member joined",
		Thumbnail: &discord.EmbedThumbnail{
			URL: m.User.AvatarURL(),
		},

		Color:       common.ColourGreen,
		Description: fmt.Sprintf("%v\n%v", m.Mention(), m.User.Tag()),

		Fields: []discord.EmbedField{
			{
				Name:   "Account created",
				Value:  fmt.Sprintf("<t:%v>\n(%v)", m.User.ID.Time().Unix(), humanize.Time(m.User.ID.Time())),
				Inline: true,
			},
		},

		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("ID: %v", m.User.ID),
		},
		Timestamp: discord.NowTimestamp(),
	}

	if time.Since(m.User.ID.Time()) < newAccountAge {
		e.Color = common.ColourYellow
		e.Description += "\n⚠️ New account"
	}

	s, _ := bot.StateFromGuildID(m.GuildID)
	if g, err := s.GuildWithCount(m.GuildID); err == nil {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:   "Member count",
			Value:  humanize.Comma(int64(g.ApproximateMembers)),
			Inline: true,
		})
	}

	_, err = s.SendEmbeds(bot.Config.Bot.JoinLeaveLog, e)
	if err != nil {
		log.Errorf("sending join log for %v: %v", m.User.ID, err)
	}
}

func (bot *Bot) guildMemberRemove(ev *gateway.GuildMemberRemoveEvent) {
	// grab the cached member before dropping it, for the join date
	cached, cacheErr := bot.Cabinet.Member(context.Background(), ev.GuildID, ev.User.ID)

	err := bot.Cabinet.DeleteMember(context.Background(), ev.GuildID, ev.User.ID)
	if err != nil && err != store.ErrNotFound {
		log.Errorf("removing member %v from cache: %v", ev.User.ID, err)
	}

	if !bot.Config.Bot.JoinLeaveLog.IsValid() {
		return
	}

	e := discord.Embed{
		Title: "Member left",
		Author: &discord.EmbedAuthor{
			Icon: ev.User.AvatarURL(),
			Name: ev.User.Tag(),
		},

		Color:       common.ColourYellow,
		Description: ev.User.Mention(),

		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("ID: %v", ev.User.ID),
		},
		Timestamp: discord.NowTimestamp(),
	}

	if cacheErr == nil && cached.Joined.IsValid() {
		e.Fields = append(e.Fields, discord.EmbedField{
			Name:  "Joined",
			Value: fmt.Sprintf("<t:%v> (%v)", cached.Joined.Time().Unix(), humanize.Time(cached.Joined.Time())),
		})
	}

	s, _ := bot.StateFromGuildID(ev.GuildID)
	_, err = s.SendEmbeds(bot.Config.Bot.JoinLeaveLog, e)
	if err != nil {
		log.Errorf("sending leave log for %v: %v", ev.User.ID, err)
	}
}

// memberCountLoop keeps the member count voice channel's name up to
// date. Channel renames are heavily rate limited, so this only runs
// every ten minutes.
func (bot *Bot) memberCountLoop() {
	if !bot.Config.Bot.MemberCountVoice.IsValid() {
		return
	}

	tick := time.NewTicker(10 * time.Minute)
	defer tick.Stop()

	for range tick.C {
		guildID := bot.Config.Bot.GuildID
		if !guildID.IsValid() {
			continue
		}

		s, _ := bot.StateFromGuildID(guildID)
		g, err := s.GuildWithCount(guildID)
		if err != nil {
			log.Errorf("getting member count for %v: %v", guildID, err)
			continue
		}

		err = s.ModifyChannel(bot.Config.Bot.MemberCountVoice, api.ModifyChannelData{
			Name: fmt.Sprintf("Members: %v", g.ApproximateMembers),
		})
		if err != nil {
			log.Errorf("updating member count channel: %v", err)
		}
	}
}
