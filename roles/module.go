// Package roles implements the self-assign role menus and the RP search
// ping command.
package roles

import (
	"github.com/parallel-yonder/yonder/bot"
	"github.com/parallel-yonder/yonder/common/log"
)

type Bot struct {
	*bot.Bot
}

func Setup(root *bot.Bot) {
	log.Debug("Adding role menu handlers")

	b := &Bot{root}

	b.AddHandler(b.interactionCreate)
	b.AddHandler(b.messageDelete)

	b.Router.Command("roles/post").Exec(b.cmdPost)
	b.Router.Command("ping").Exec(b.cmdPing)

	go b.purgeExpiredSearches()
}
