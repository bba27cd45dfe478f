package submission

import (
	"math/rand"

	"github.com/parallel-yonder/yonder/bot"
	"github.com/parallel-yonder/yonder/common/log"
)

type Bot struct {
	*bot.Bot
}

func Setup(root *bot.Bot) {
	log.Debug("Adding submission commands")

	b := &Bot{root}

	b.Router.Command("oc/create").Exec(b.cmdCreate)
	b.Router.Command("oc/list").Exec(b.cmdList)
	b.Router.Command("oc/edit").Exec(b.cmdEdit)
	b.Router.Command("oc/delete").Exec(b.cmdDelete)
	b.Router.Command("register").Exec(b.cmdRegister)
}

func randPick(max int) int { return rand.Intn(max) }
