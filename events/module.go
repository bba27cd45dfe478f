// Package events keeps the entity caches in sync with the gateway:
// guilds, channels and roles from guild create and their update events,
// and members through chunking.
package events

import (
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/parallel-yonder/yonder/bot"
	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
)

type Bot struct {
	*bot.Bot

	guildsToChunk *common.Set[discord.GuildID]
}

func Setup(root *bot.Bot) {
	log.Debug("Adding cache handlers")

	b := &Bot{
		Bot:           root,
		guildsToChunk: common.NewSet[discord.GuildID](),
	}

	b.AddHandler(
		b.guildCreate,
		b.guildUpdate,
		b.guildDelete,

		b.channelCreate,
		b.channelUpdate,
		b.channelDelete,

		b.roleCreate,
		b.roleUpdate,
		b.roleDelete,

		b.guildMemberUpdate,
		b.guildMembersChunk,
	)

	go b.chunkGuilds()
}
