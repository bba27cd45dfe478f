package roles

import (
	"fmt"
	"strings"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/starshine-sys/bcr/v2"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
)

func (bot *Bot) cmdPost(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	menuID := common.OptionString(opts, "menu")
	m, ok := menus[menuID]
	if !ok {
		return ctx.ReplyEphemeral("That menu doesn't exist.")
	}

	channelID := common.OptionChannel(opts, "channel")
	if !channelID.IsValid() {
		channelID = ctx.Event.ChannelID
	}

	// warn about roles the menu references but the server doesn't have
	var missing []string
	for _, name := range m.Roles {
		if _, err := bot.guildRole(ctx.Event.GuildID, name); err != nil {
			missing = append(missing, name)
		}
	}

	s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
	_, err = s.SendMessageComplex(channelID, api.SendMessageData{
		Embeds:     []discord.Embed{m.embed()},
		Components: m.components(menuID),
	})
	if err != nil {
		log.Errorf("posting role menu %q in %v: %v", menuID, channelID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "posting role menu"))
	}

	content := fmt.Sprintf("Posted the %v menu in %v!", menuID, channelID.Mention())
	if len(missing) > 0 {
		content += fmt.Sprintf("\n⚠️ These roles don't exist yet, their buttons won't work: %v", strings.Join(missing, ", "))
	}
	return ctx.ReplyEphemeral(content)
}
