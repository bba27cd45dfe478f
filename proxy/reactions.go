package proxy

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
	"github.com/parallel-yonder/yonder/db"
)

// Reaction controls on proxied messages.
const (
	deleteEmoji = "❌"
	whoisEmoji  = "❓"
)

func (bot *Bot) reactionAdd(ev *gateway.MessageReactionAddEvent) {
	if !ev.GuildID.IsValid() || ev.UserID == bot.Me().ID {
		return
	}

	name := ev.Emoji.Name
	if name != deleteEmoji && name != whoisEmoji {
		return
	}

	pm, err := bot.DB.ProxiedMessage(ev.MessageID)
	if err != nil {
		if err != db.ErrNotFound {
			log.Errorf("looking up proxied message %v: %v", ev.MessageID, err)
		}
		return
	}

	switch name {
	case deleteEmoji:
		bot.deleteOwnMessage(ev, pm)
	case whoisEmoji:
		bot.whois(ev, pm)
	}
}

// deleteOwnMessage deletes a proxied message when its original author
// reacts with the delete emoji.
func (bot *Bot) deleteOwnMessage(ev *gateway.MessageReactionAddEvent, pm db.ProxiedMessage) {
	if ev.UserID != pm.UserID {
		return
	}

	s, _ := bot.StateFromGuildID(ev.GuildID)

	err := s.DeleteMessage(ev.ChannelID, ev.MessageID, "proxied message deleted by author")
	if err != nil {
		log.Errorf("deleting proxied message %v: %v", ev.MessageID, err)
		return
	}

	err = bot.DB.DeleteProxiedMessage(ev.MessageID)
	if err != nil {
		log.Errorf("cleaning proxied message %v: %v", ev.MessageID, err)
	}
}

// whois DMs the reacting user the identity behind a proxied message,
// then removes their reaction.
func (bot *Bot) whois(ev *gateway.MessageReactionAddEvent, pm db.ProxiedMessage) {
	s, _ := bot.StateFromGuildID(ev.GuildID)

	e := discord.Embed{
		Title:       "Proxied message",
		Description: "That message was sent by " + pm.UserID.Mention() + ".",
		Color:       common.ColourBlurple,
		Fields: []discord.EmbedField{
			{Name: "Link", Value: messageLink(pm.GuildID, pm.ChannelID, pm.MessageID)},
		},
		Timestamp: discord.NewTimestamp(pm.Created),
	}

	if c, err := bot.DB.Character(pm.CharacterID); err == nil {
		name := c.Name
		if pm.Variant != "" {
			name += " (" + pm.Variant + ")"
		}
		e.Fields = append([]discord.EmbedField{{Name: "Character", Value: name}}, e.Fields...)
	}

	dm, err := s.CreatePrivateChannel(ev.UserID)
	if err != nil {
		log.Errorf("opening DM with %v: %v", ev.UserID, err)
		return
	}
	if _, err := s.SendEmbeds(dm.ID, e); err != nil {
		log.Errorf("sending whois DM to %v: %v", ev.UserID, err)
		return
	}

	err = s.DeleteUserReaction(ev.ChannelID, ev.MessageID, ev.UserID, ev.Emoji.APIString())
	if err != nil {
		log.Errorf("removing whois reaction on %v: %v", ev.MessageID, err)
	}
}
