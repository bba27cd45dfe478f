package bot

import (
	"os"
	"os/signal"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/getsentry/sentry-go"
	"github.com/urfave/cli/v2"

	"github.com/parallel-yonder/yonder/bot"
	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
	"github.com/parallel-yonder/yonder/events"
	"github.com/parallel-yonder/yonder/meta"
	"github.com/parallel-yonder/yonder/moderation"
	"github.com/parallel-yonder/yonder/proxy"
	"github.com/parallel-yonder/yonder/roles"
	"github.com/parallel-yonder/yonder/submission"
	"github.com/parallel-yonder/yonder/web"
)

var Command = &cli.Command{
	Name:   "bot",
	Usage:  "Run the bot",
	Action: run,
}

func run(c *cli.Context) error {
	conf, err := bot.ReadConfig("config.toml")
	if err != nil {
		return errors.Wrap(err, "reading config")
	}

	// set up sentry
	if conf.Auth.Sentry != "" {
		log.Debug("setting up sentry")
		err := sentry.Init(sentry.ClientOptions{
			Dsn:     conf.Auth.Sentry,
			Release: common.Version(),
		})
		if err != nil {
			log.Fatalf("setting up sentry: %v", err)
		}

		log.Debug("set up sentry")
	} else {
		log.Debugf("sentry DSN was not provided, not setting it up")
	}

	b, err := bot.New(conf)
	if err != nil {
		return errors.Wrap(err, "creating bot")
	}

	// set up modules (cache, features, meta)
	events.Setup(b)     // gateway cache handlers
	proxy.Setup(b)      // character + NPC proxying
	submission.Setup(b) // character submissions
	roles.Setup(b)      // role menus + RP search pings
	moderation.Setup(b) // reports + mod commands
	meta.Setup(b)       // help, stats, join/leave logging

	web.New(b) // health + status endpoints

	if !conf.Bot.NoSyncCommands {
		syncCommands(conf)
	}

	// actually run bot!
	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt, os.Kill)
	defer cancel()

	err = b.Open(ctx)
	if err != nil {
		return errors.Wrap(err, "opening gateway connection")
	}

	defer func() {
		err = b.Router.ShardManager.Close()
		if err != nil {
			log.Errorf("closing gateway connection: %v", err)
		}
	}()

	<-ctx.Done()
	return nil
}

func syncCommands(conf bot.Config) {
	client := api.NewClient("Bot " + conf.Auth.Discord)

	app, err := client.CurrentApplication()
	if err != nil {
		log.Errorf("getting current application: %v", err)
		return
	}

	if conf.Bot.CommandsGuildID.IsValid() {
		_, err = client.BulkOverwriteGuildCommands(app.ID, conf.Bot.CommandsGuildID, common.Commands)
	} else {
		_, err = client.BulkOverwriteCommands(app.ID, common.Commands)
	}
	if err != nil {
		log.Errorf("syncing commands: %v", err)
		return
	}

	if conf.Bot.CommandsGuildID.IsValid() {
		log.Infof("synced commands in guild %v", conf.Bot.CommandsGuildID)
	} else {
		log.Info("synced global commands")
	}
}
