package proxy

import (
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/parallel-yonder/yonder/bot"
	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
	"github.com/parallel-yonder/yonder/db"
)

type lastName struct {
	name   string
	userID discord.UserID
}

type Bot struct {
	*bot.Bot

	// members is a per-user cache of resolved proxyable identities
	members *ttlcache.Cache

	// lastNames tracks the last proxied display name per channel, for
	// the consecutive-name alternation
	lastNames *common.Map[discord.ChannelID, lastName]

	// proxyTriggers are messages we deleted ourselves; their delete
	// events are not errors
	proxyTriggers *common.Set[discord.MessageID]
}

func Setup(root *bot.Bot) {
	log.Debug("Adding proxy handlers")

	members := ttlcache.NewCache()
	members.SetTTL(5 * time.Minute)

	b := &Bot{
		Bot:           root,
		members:       members,
		lastNames:     common.NewMap[discord.ChannelID, lastName](),
		proxyTriggers: common.NewSet[discord.MessageID](),
	}

	b.AddHandler(
		b.messageCreate,
		b.messageDelete,
		b.reactionAdd,
	)

	b.Router.Command("proxy/set").Exec(b.cmdProxySet)
	b.Router.Command("proxy/list").Exec(b.cmdProxyList)
	b.Router.Command("npc/set").Exec(b.cmdNPCSet)
	b.Router.Command("npc/say").Exec(b.cmdNPCSay)
}

// userMembers resolves a user's proxies to proxyable identities,
// inheriting name and image from the character where unset.
func (bot *Bot) userMembers(userID discord.UserID) ([]*Member, error) {
	if v, err := bot.members.Get(userID.String()); err == nil {
		return v.([]*Member), nil
	}

	proxies, err := bot.DB.UserProxies(userID)
	if err != nil {
		return nil, err
	}

	chars := map[int64]db.Character{}
	var ms []*Member
	for _, p := range proxies {
		if len(p.Tags) == 0 {
			continue
		}

		c, ok := chars[p.CharacterID]
		if !ok {
			c, err = bot.DB.Character(p.CharacterID)
			if err != nil {
				return nil, err
			}
			chars[p.CharacterID] = c
		}

		m := &Member{
			ProxyID:     p.ID,
			CharacterID: p.CharacterID,
			Variant:     p.Variant,
			Name:        c.Name,
			Avatar:      p.Image,
		}
		if p.Variant != "" {
			m.Name = c.Name + " (" + p.Variant + ")"
		}
		if m.Avatar == "" {
			m.Avatar = c.Image
		}
		if m.Avatar == "" {
			m.Avatar = c.Species.Image(c.Shiny, c.Pronoun.Female())
		}

		for _, t := range p.Tags {
			m.Tags = append(m.Tags, Tag{Prefix: t.Prefix, Suffix: t.Suffix})
		}
		ms = append(ms, m)
	}

	bot.members.Set(userID.String(), ms)
	return ms, nil
}

func (bot *Bot) invalidateMembers(userID discord.UserID) {
	bot.members.Remove(userID.String())
}
