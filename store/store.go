// Package store defines interfaces for the entity caches the bot manages
// itself. Members aren't sent in ready/guild create events, so they're
// fetched from Discord once and kept here; keeping the caches behind
// interfaces means they can be swapped for a persistent backend without
// touching the rest of the bot.
package store

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
)

const ErrNotFound = errors.Sentinel("value not found in store")

type MemberStore interface {
	Member(ctx context.Context, guildID discord.GuildID, userID discord.UserID) (discord.Member, error)
	Members(ctx context.Context, guildID discord.GuildID) ([]discord.Member, error)
	MemberExists(ctx context.Context, guildID discord.GuildID, userID discord.UserID) (bool, error)
	SetMember(ctx context.Context, guildID discord.GuildID, m discord.Member) error
	SetMembers(ctx context.Context, guildID discord.GuildID, ms []discord.Member) error
	DeleteMember(ctx context.Context, guildID discord.GuildID, userID discord.UserID) error
}

type ChannelStore interface {
	Channel(ctx context.Context, channelID discord.ChannelID) (discord.Channel, error)
	Channels(ctx context.Context, guildID discord.GuildID) ([]discord.Channel, error)
	SetChannel(ctx context.Context, guildID discord.GuildID, ch discord.Channel) error
	SetChannels(ctx context.Context, guildID discord.GuildID, chs []discord.Channel) error
	RemoveChannel(ctx context.Context, guildID discord.GuildID, channelID discord.ChannelID) error
	RemoveChannels(ctx context.Context, guildID discord.GuildID) error
}

type GuildStore interface {
	Guild(ctx context.Context, id discord.GuildID) (discord.Guild, error)
	GuildSet(ctx context.Context, g discord.Guild) error
	GuildRemove(ctx context.Context, id discord.GuildID) error

	IsGuildCached(ctx context.Context, guildID discord.GuildID) (bool, error)
	MarkGuildCached(ctx context.Context, guildID discord.GuildID) error
}

type RoleStore interface {
	Role(ctx context.Context, guildID discord.GuildID, roleID discord.RoleID) (discord.Role, error)
	Roles(ctx context.Context, guildID discord.GuildID) ([]discord.Role, error)
	SetRole(ctx context.Context, guildID discord.GuildID, r discord.Role) error
	SetRoles(ctx context.Context, guildID discord.GuildID, rls []discord.Role) error
	RemoveRole(ctx context.Context, guildID discord.GuildID, roleID discord.RoleID) error
	RemoveRoles(ctx context.Context, guildID discord.GuildID) error
}

// Cabinet bundles one store per entity type.
type Cabinet struct {
	MemberStore
	ChannelStore
	GuildStore
	RoleStore
}
