package roles

import (
	"fmt"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/dustin/go-humanize"
	"github.com/starshine-sys/bcr/v2"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
	"github.com/parallel-yonder/yonder/db"
)

// purgeInterval is how often expired search posts are cleaned up.
const purgeInterval = 10 * time.Minute

func (bot *Bot) cmdPing(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	kind := common.OptionString(opts, "role")
	if !containsFold(common.RPSearchRoles, kind) {
		return ctx.ReplyEphemeral("That's not an RP search role.")
	}

	if reg := bot.Config.Bot.RegisteredRole; reg.IsValid() {
		if ctx.Event.Member == nil || !hasRole(ctx.Event.Member.RoleIDs, reg) {
			return ctx.ReplyEphemeral("You need a registered character to use RP search pings. Create one with `/oc create`!")
		}
	}

	onCooldown, remaining, err := bot.DB.RPSearchCooldowns(ctx.Event.GuildID, ctx.User.ID, kind)
	if err != nil {
		log.Errorf("checking RP search cooldown for %v: %v", ctx.User.ID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "checking cooldown"))
	}
	if onCooldown {
		return ctx.ReplyEphemeral(fmt.Sprintf(
			"That role was pinged too recently, you can ping it again %v.",
			humanize.Time(time.Now().Add(remaining))))
	}

	role, err := bot.guildRole(ctx.Event.GuildID, common.RPSearchRoleName(kind))
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("There's no %v role on this server, please tell staff!", common.RPSearchRoleName(kind)))
	}

	channelID := bot.Config.Bot.SearchChannel
	if !channelID.IsValid() {
		channelID = ctx.Event.ChannelID
	}

	s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
	msg, err := s.SendMessageComplex(channelID, api.SendMessageData{
		Content: fmt.Sprintf("%v is looking for %v partners, %v!", ctx.User.Mention(), kind, role.Mention()),
		AllowedMentions: &api.AllowedMentions{
			Roles: []discord.RoleID{role.ID},
			Users: []discord.UserID{},
		},
		Components: searchPostComponents(kind, ctx.User.ID),
	})
	if err != nil {
		log.Errorf("sending RP search ping in %v: %v", channelID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "sending search ping"))
	}

	_, err = bot.DB.InsertRPSearch(db.RPSearch{
		GuildID:   ctx.Event.GuildID,
		UserID:    ctx.User.ID,
		Role:      kind,
		MessageID: msg.ID,
		ChannelID: msg.ChannelID,
	})
	if err != nil {
		log.Errorf("recording RP search for %v: %v", ctx.User.ID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "recording search"))
	}

	err = bot.DB.SetRPSearchCooldown(ctx.Event.GuildID, ctx.User.ID, kind)
	if err != nil {
		log.Errorf("setting RP search cooldown for %v: %v", ctx.User.ID, err)
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("Pinged the %v role in %v!", common.RPSearchRoleName(kind), channelID.Mention()))
}

// searchPostComponents builds a search post's buttons: one to toggle
// the search role, one to look at the pinger's characters.
func searchPostComponents(kind string, userID discord.UserID) discord.ContainerComponents {
	return discord.ContainerComponents{
		&discord.ActionRowComponent{
			&discord.ButtonComponent{
				CustomID: discord.ComponentID(customIDPrefix + "rp-search:" + common.RPSearchRoleName(kind)),
				Label:    "Toggle the " + common.RPSearchRoleName(kind) + " role",
				Style:    discord.SecondaryButtonStyle(),
			},
			&discord.ButtonComponent{
				CustomID: discord.ComponentID(fmt.Sprintf("%vocs:%v", customIDPrefix, userID)),
				Label:    "View their characters",
				Style:    discord.SecondaryButtonStyle(),
			},
		},
	}
}

// messageDelete drops the search record when a search post is deleted by
// hand, so the purge loop doesn't try to delete it again later.
func (bot *Bot) messageDelete(ev *gateway.MessageDeleteEvent) {
	s, err := bot.DB.RPSearchByMessage(ev.ID)
	if err != nil {
		if err != db.ErrNotFound {
			log.Errorf("getting RP search for message %v: %v", ev.ID, err)
		}
		return
	}

	err = bot.DB.DeleteRPSearch(s.ID)
	if err != nil {
		log.Errorf("deleting RP search %v: %v", s.ID, err)
	}
}

// purgeExpiredSearches deletes search posts past their lifetime, so the
// search channel only shows pings that are still fresh.
func (bot *Bot) purgeExpiredSearches() {
	tick := time.NewTicker(purgeInterval)
	defer tick.Stop()

	for ; ; <-tick.C {
		ss, err := bot.DB.ExpiredRPSearches()
		if err != nil {
			log.Errorf("getting expired RP searches: %v", err)
			continue
		}

		for _, s := range ss {
			st, _ := bot.StateFromGuildID(s.GuildID)
			err = st.DeleteMessage(s.ChannelID, s.MessageID, "Expired RP search post")
			if err != nil {
				log.Errorf("deleting expired search message %v: %v", s.MessageID, err)
			}

			err = bot.DB.DeleteRPSearch(s.ID)
			if err != nil {
				log.Errorf("deleting expired search %v: %v", s.ID, err)
			}
		}
	}
}
