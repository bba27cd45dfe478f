// Package moderation implements the /report and /mod command families.
package moderation

import (
	"github.com/parallel-yonder/yonder/bot"
	"github.com/parallel-yonder/yonder/common/log"
)

type Bot struct {
	*bot.Bot
}

func Setup(root *bot.Bot) {
	log.Debug("Adding moderation commands")

	b := &Bot{root}

	b.Router.Command("report").Exec(b.cmdReport)

	b.Router.Command("mod/warn").Exec(b.cmdWarn)
	b.Router.Command("mod/kick").Exec(b.cmdKick)
	b.Router.Command("mod/ban").Exec(b.cmdBan)
	b.Router.Command("mod/unban").Exec(b.cmdUnban)
	b.Router.Command("mod/purge").Exec(b.cmdPurge)
	b.Router.Command("mod/slowmode").Exec(b.cmdSlowmode)
}
