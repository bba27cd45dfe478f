package roles

import (
	"context"
	"fmt"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/utils/json/option"

	"github.com/parallel-yonder/yonder/common/log"
	"github.com/parallel-yonder/yonder/submission"
)

// interactionCreate toggles a role when a menu button is clicked. This
// is a plain event handler rather than a wait-for loop so menus posted
// before a restart keep working.
func (bot *Bot) interactionCreate(ev *gateway.InteractionCreateEvent) {
	data, ok := ev.Data.(*discord.ButtonInteraction)
	if !ok || !strings.HasPrefix(string(data.CustomID), customIDPrefix) {
		return
	}
	if ev.Member == nil || !ev.GuildID.IsValid() {
		return
	}

	// roles:<menu>:<role name>, or roles:ocs:<user id>
	parts := strings.SplitN(string(data.CustomID), ":", 3)
	if len(parts) != 3 {
		return
	}
	menuID, roleName := parts[1], parts[2]

	if menuID == "ocs" {
		bot.showCharacters(ev, parts[2])
		return
	}

	m, ok := menus[menuID]
	if !ok || !containsFold(m.Roles, roleName) {
		return
	}

	role, err := bot.guildRole(ev.GuildID, roleName)
	if err != nil {
		log.Errorf("resolving role %q in guild %v: %v", roleName, ev.GuildID, err)
		bot.respondEphemeral(ev, fmt.Sprintf("There's no role named %v on this server, please tell staff!", roleName))
		return
	}

	s, _ := bot.StateFromGuildID(ev.GuildID)
	reason := api.AuditLogReason("Self-assigned role menu")

	if hasRole(ev.Member.RoleIDs, role.ID) {
		err = s.RemoveRole(ev.GuildID, ev.SenderID(), role.ID, reason)
		if err != nil {
			log.Errorf("removing role %v from %v: %v", role.ID, ev.SenderID(), err)
			bot.respondEphemeral(ev, "Something went wrong taking that role away, please try again.")
			return
		}
		bot.respondEphemeral(ev, fmt.Sprintf("Took away the %v role!", role.Name))
		return
	}

	err = s.AddRole(ev.GuildID, ev.SenderID(), role.ID, api.AddRoleData{AuditLogReason: reason})
	if err != nil {
		log.Errorf("adding role %v to %v: %v", role.ID, ev.SenderID(), err)
		bot.respondEphemeral(ev, "Something went wrong giving you that role, please try again.")
		return
	}
	bot.respondEphemeral(ev, fmt.Sprintf("Gave you the %v role!", role.Name))
}

// showCharacters replies with the character list of the user a search
// post's button points at.
func (bot *Bot) showCharacters(ev *gateway.InteractionCreateEvent, rawID string) {
	sf, err := discord.ParseSnowflake(rawID)
	if err != nil {
		return
	}
	userID := discord.UserID(sf)

	cs, err := bot.DB.UserCharacters(ev.GuildID, userID)
	if err != nil {
		log.Errorf("getting characters for %v: %v", userID, err)
		bot.respondEphemeral(ev, "Something went wrong getting their characters, please try again.")
		return
	}
	if len(cs) == 0 {
		bot.respondEphemeral(ev, fmt.Sprintf("%v has no characters yet.", userID.Mention()))
		return
	}

	embeds := submission.CharacterList(cs)

	s, _ := bot.StateFromGuildID(ev.GuildID)
	err = s.RespondInteraction(ev.ID, ev.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds: &embeds,
			Flags:  discord.EphemeralMessage,
		},
	})
	if err != nil {
		log.Errorf("responding to interaction %v: %v", ev.ID, err)
	}
}

// guildRole resolves a role by name, preferring the cache and falling
// back to the API.
func (bot *Bot) guildRole(guildID discord.GuildID, name string) (discord.Role, error) {
	rls, err := bot.Cabinet.Roles(context.Background(), guildID)
	if err != nil || len(rls) == 0 {
		s, _ := bot.StateFromGuildID(guildID)
		rls, err = s.Roles(guildID)
		if err != nil {
			return discord.Role{}, err
		}
	}

	for _, r := range rls {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return discord.Role{}, fmt.Errorf("no role named %q", name)
}

func (bot *Bot) respondEphemeral(ev *gateway.InteractionCreateEvent, content string) {
	s, _ := bot.StateFromGuildID(ev.GuildID)
	err := s.RespondInteraction(ev.ID, ev.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Content: option.NewNullableString(content),
			Flags:   discord.EphemeralMessage,
		},
	})
	if err != nil {
		log.Errorf("responding to interaction %v: %v", ev.ID, err)
	}
}

func hasRole(ids []discord.RoleID, id discord.RoleID) bool {
	for _, r := range ids {
		if r == id {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, x := range list {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}
