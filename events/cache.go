package events

import (
	"context"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/parallel-yonder/yonder/common/log"
)

func getctx() (context.Context, func()) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func (bot *Bot) guildCreate(g *gateway.GuildCreateEvent) {
	ctx, cancel := getctx()
	defer cancel()

	if err := bot.Cabinet.GuildSet(ctx, g.Guild); err != nil {
		log.Errorf("caching guild %v: %v", g.ID, err)
	}
	if err := bot.Cabinet.SetChannels(ctx, g.ID, g.Channels); err != nil {
		log.Errorf("caching channels for %v: %v", g.ID, err)
	}
	if err := bot.Cabinet.SetRoles(ctx, g.ID, g.Roles); err != nil {
		log.Errorf("caching roles for %v: %v", g.ID, err)
	}

	cached, err := bot.Cabinet.IsGuildCached(ctx, g.ID)
	if err != nil {
		log.Errorf("checking if guild %v is cached: %v", g.ID, err)
	}
	if !cached {
		bot.guildsToChunk.Add(g.ID)
	}
}

func (bot *Bot) guildUpdate(g *gateway.GuildUpdateEvent) {
	ctx, cancel := getctx()
	defer cancel()

	if err := bot.Cabinet.GuildSet(ctx, g.Guild); err != nil {
		log.Errorf("caching guild %v: %v", g.ID, err)
	}
}

func (bot *Bot) guildDelete(g *gateway.GuildDeleteEvent) {
	if g.Unavailable {
		return
	}

	bot.guildsToChunk.Remove(g.ID)

	ctx, cancel := getctx()
	defer cancel()

	if err := bot.Cabinet.GuildRemove(ctx, g.ID); err != nil {
		log.Errorf("removing guild %v from cache: %v", g.ID, err)
	}
	if err := bot.Cabinet.RemoveChannels(ctx, g.ID); err != nil {
		log.Errorf("removing channels for %v from cache: %v", g.ID, err)
	}
	if err := bot.Cabinet.RemoveRoles(ctx, g.ID); err != nil {
		log.Errorf("removing roles for %v from cache: %v", g.ID, err)
	}
}

func (bot *Bot) channelCreate(ev *gateway.ChannelCreateEvent) {
	ctx, cancel := getctx()
	defer cancel()

	if err := bot.Cabinet.SetChannel(ctx, ev.GuildID, ev.Channel); err != nil {
		log.Errorf("caching channel %v: %v", ev.ID, err)
	}
}

func (bot *Bot) channelUpdate(ev *gateway.ChannelUpdateEvent) {
	ctx, cancel := getctx()
	defer cancel()

	if err := bot.Cabinet.SetChannel(ctx, ev.GuildID, ev.Channel); err != nil {
		log.Errorf("caching channel %v: %v", ev.ID, err)
	}
}

func (bot *Bot) channelDelete(ev *gateway.ChannelDeleteEvent) {
	ctx, cancel := getctx()
	defer cancel()

	if err := bot.Cabinet.RemoveChannel(ctx, ev.GuildID, ev.ID); err != nil {
		log.Errorf("removing channel %v from cache: %v", ev.ID, err)
	}
}

func (bot *Bot) roleCreate(ev *gateway.GuildRoleCreateEvent) {
	ctx, cancel := getctx()
	defer cancel()

	if err := bot.Cabinet.SetRole(ctx, ev.GuildID, ev.Role); err != nil {
		log.Errorf("caching role %v: %v", ev.Role.ID, err)
	}
}

func (bot *Bot) roleUpdate(ev *gateway.GuildRoleUpdateEvent) {
	ctx, cancel := getctx()
	defer cancel()

	if err := bot.Cabinet.SetRole(ctx, ev.GuildID, ev.Role); err != nil {
		log.Errorf("caching role %v: %v", ev.Role.ID, err)
	}
}

func (bot *Bot) roleDelete(ev *gateway.GuildRoleDeleteEvent) {
	ctx, cancel := getctx()
	defer cancel()

	if err := bot.Cabinet.RemoveRole(ctx, ev.GuildID, ev.RoleID); err != nil {
		log.Errorf("removing role %v from cache: %v", ev.RoleID, err)
	}
}

func (bot *Bot) guildMemberUpdate(ev *gateway.GuildMemberUpdateEvent) {
	ctx, cancel := getctx()
	defer cancel()

	m, err := bot.Cabinet.Member(ctx, ev.GuildID, ev.User.ID)
	if err != nil {
		return
	}

	ev.UpdateMember(&m)
	if err := bot.Cabinet.SetMember(ctx, ev.GuildID, m); err != nil {
		log.Errorf("caching member %v: %v", ev.User.ID, err)
	}
}

func (bot *Bot) guildMembersChunk(g *gateway.GuildMembersChunkEvent) {
	ctx, cancel := getctx()
	defer cancel()

	if err := bot.Cabinet.SetMembers(ctx, g.GuildID, g.Members); err != nil {
		log.Errorf("caching members for %v: %v", g.GuildID, err)
	}
}

// chunkGuilds requests member chunks for uncached guilds, one guild
// every two seconds to stay clear of the gateway rate limit.
func (bot *Bot) chunkGuilds() {
	tick := time.NewTicker(2 * time.Second)
	defer tick.Stop()

	for range tick.C {
		var guildID discord.GuildID
		for _, id := range bot.guildsToChunk.Values() {
			guildID = id
			bot.guildsToChunk.Remove(id)
			break
		}
		if !guildID.IsValid() {
			continue
		}

		s, _ := bot.StateFromGuildID(guildID)
		err := s.Gateway().Send(context.Background(), &gateway.RequestGuildMembersCommand{
			GuildIDs: []discord.GuildID{guildID},
			Limit:    0,
		})
		if err != nil {
			log.Errorf("requesting members for guild %v: %v", guildID, err)
			bot.guildsToChunk.Add(guildID)
			continue
		}

		ctx, cancel := getctx()
		err = bot.Cabinet.MarkGuildCached(ctx, guildID)
		cancel()
		if err != nil {
			log.Errorf("marking guild %v as cached: %v", guildID, err)
		}
	}
}
