package proxy

import (
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/api/webhook"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
	"github.com/parallel-yonder/yonder/db"
)

// mentionDeleteDelay is how long a trigger message with pings sticks
// around, so the pings still reach their targets.
const mentionDeleteDelay = 5 * time.Second

func (bot *Bot) messageCreate(m *gateway.MessageCreateEvent) {
	if !m.GuildID.IsValid() || m.Author.Bot || m.WebhookID.IsValid() || m.Content == "" {
		return
	}

	members, err := bot.userMembers(m.Author.ID)
	if err != nil {
		log.Errorf("getting proxies for %v: %v", m.Author.ID, err)
		return
	}
	if len(members) == 0 {
		return
	}

	segments := Lookup(m.Content, members)
	if segments == nil {
		return
	}

	for _, seg := range segments {
		if err := bot.proxySegment(m, seg); err != nil {
			log.Errorf("proxying message %v: %v", m.ID, err)
			return
		}
	}

	bot.proxyTriggers.Add(m.ID)

	s, _ := bot.StateFromGuildID(m.GuildID)
	del := func() {
		err := s.DeleteMessage(m.ChannelID, m.ID, "proxied message")
		if err != nil {
			log.Errorf("deleting trigger message %v: %v", m.ID, err)
		}
	}

	if len(m.Mentions) > 0 || m.MentionEveryone {
		time.AfterFunc(mentionDeleteDelay, del)
	} else {
		del()
	}
}

func (bot *Bot) proxySegment(m *gateway.MessageCreateEvent, seg Segment) error {
	name := SafeUsername(seg.Member.Name)
	if last, ok := bot.lastNames.Get(m.ChannelID); ok && last.name == name && last.userID != m.Author.ID {
		name = SafeUsername(Alternate(seg.Member.Name))
	}

	msg, err := bot.ExecuteAs(m.GuildID, m.ChannelID, webhook.ExecuteData{
		Content:   seg.Content,
		Username:  name,
		AvatarURL: seg.Member.Avatar,
		// let user pings through, never everyone/role pings
		AllowedMentions: &api.AllowedMentions{
			Parse: []api.AllowedMentionType{api.AllowUserMention},
		},
	})
	if err != nil {
		return err
	}

	bot.lastNames.Set(m.ChannelID, lastName{name: name, userID: m.Author.ID})
	bot.Stats.IncProxied()

	err = bot.DB.InsertProxiedMessage(db.ProxiedMessage{
		MessageID:   msg.ID,
		ChannelID:   m.ChannelID,
		GuildID:     m.GuildID,
		UserID:      m.Author.ID,
		CharacterID: seg.Member.CharacterID,
		Variant:     seg.Member.Variant,
	})
	if err != nil {
		return err
	}

	go bot.logProxied(m, seg, msg)
	return nil
}

// logProxied mirrors the proxied message to the proxy log channel, so
// moderation can always tell who wrote what.
func (bot *Bot) logProxied(m *gateway.MessageCreateEvent, seg Segment, sent *discord.Message) {
	if !bot.Config.Bot.ProxyLogChannel.IsValid() {
		return
	}

	s, _ := bot.StateFromGuildID(m.GuildID)

	e := discord.Embed{
		Author: &discord.EmbedAuthor{
			Name: seg.Member.Name,
			Icon: seg.Member.Avatar,
		},
		Description: seg.Content,
		Color:       common.ColourBlurple,
		Fields: []discord.EmbedField{
			{Name: "Author", Value: m.Author.Mention(), Inline: true},
			{Name: "Channel", Value: m.ChannelID.Mention(), Inline: true},
			{Name: "Link", Value: messageLink(m.GuildID, m.ChannelID, sent.ID), Inline: true},
		},
		Timestamp: discord.NowTimestamp(),
	}

	_, err := s.SendEmbeds(bot.Config.Bot.ProxyLogChannel, e)
	if err != nil {
		log.Errorf("sending proxy log for %v: %v", sent.ID, err)
	}
}

func messageLink(guildID discord.GuildID, channelID discord.ChannelID, id discord.MessageID) string {
	return "https://discord.com/channels/" + guildID.String() + "/" + channelID.String() + "/" + id.String()
}

func (bot *Bot) messageDelete(m *gateway.MessageDeleteEvent) {
	if bot.proxyTriggers.Remove(m.ID) {
		return
	}

	err := bot.DB.DeleteProxiedMessage(m.ID)
	if err != nil {
		log.Errorf("cleaning proxied message %v: %v", m.ID, err)
	}
}
