// Package meta implements the bot's info commands, the member
// join/leave log, and the background upkeep loops.
package meta

import (
	"time"

	"github.com/parallel-yonder/yonder/bot"
	"github.com/parallel-yonder/yonder/common/log"
)

type Bot struct {
	*bot.Bot

	startTime time.Time
}

func Setup(root *bot.Bot) {
	log.Debug("Adding meta commands")

	b := &Bot{Bot: root, startTime: time.Now()}

	b.Router.Command("yonder/help").Exec(b.cmdHelp)
	b.Router.Command("yonder/invite").Exec(b.cmdInvite)
	b.Router.Command("yonder/stats").Exec(b.cmdStats)

	b.AddHandler(
		b.guildMemberAdd,
		b.guildMemberRemove,
	)

	go b.statusLoop()
	go b.memberCountLoop()
	go b.cleanMessagesLoop()
}
