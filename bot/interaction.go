package bot

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/parallel-yonder/yonder/common/log"
)

func (bot *Bot) interactionCreate(ev *gateway.InteractionCreateEvent) {
	if _, ok := ev.Data.(*discord.CommandInteraction); ok {
		bot.Stats.IncCommand()
	}

	err := bot.Router.Execute(ev)
	if err != nil {
		log.Errorf("handling interaction %v: %v", ev.ID, err)
	}
}
