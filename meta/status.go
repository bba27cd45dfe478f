package meta

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session/shard"
	"github.com/diamondburned/arikawa/v3/state"

	"github.com/parallel-yonder/yonder/common/log"
)

// statuses are rotated through on a timer.
var statuses = []string{
	"over the tall grass",
	"new trainers arrive",
	"for RP search pings",
	"characters take shape",
}

func (bot *Bot) statusLoop() {
	// wait for the gateway to settle before the first update
	time.Sleep(15 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	tick := time.NewTicker(10 * time.Minute)
	defer tick.Stop()

	i := 0
	bot.setStatus(ctx, statuses[i])

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}

		i = (i + 1) % len(statuses)
		bot.setStatus(ctx, statuses[i])
	}
}

func (bot *Bot) setStatus(ctx context.Context, status string) {
	bot.Router.ShardManager.ForEach(func(sh shard.Shard) {
		s := sh.(*state.State)

		go func() {
			err := s.Gateway().Send(ctx, &gateway.UpdatePresenceCommand{
				Status: discord.OnlineStatus,
				Activities: []discord.Activity{{
					Name: status,
					Type: discord.WatchingActivity,
				}},
			})
			if err != nil {
				log.Errorf("setting status: %v", err)
			}
		}()
	})
}

// cleanMessagesLoop expires old proxied message records. The records
// only serve the ❌/❓ reactions and the proxy log, so there's no point
// keeping them around forever.
func (bot *Bot) cleanMessagesLoop() {
	tick := time.NewTicker(time.Hour)
	defer tick.Stop()

	for range tick.C {
		n, err := bot.DB.CleanProxiedMessages(30 * 24 * time.Hour)
		if err != nil {
			log.Errorf("cleaning old proxied messages: %v", err)
			continue
		}
		if n > 0 {
			log.Debugf("cleaned %v old proxied messages", n)
		}
	}
}
