package bot

import (
	"context"
	"sync"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api/webhook"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/session/shard"
	"github.com/diamondburned/arikawa/v3/state"
	arikawastore "github.com/diamondburned/arikawa/v3/state/store"
	"github.com/diamondburned/arikawa/v3/utils/ws"
	"github.com/starshine-sys/bcr/v2"

	"github.com/parallel-yonder/yonder/common/log"
	"github.com/parallel-yonder/yonder/db"
	"github.com/parallel-yonder/yonder/db/stats"
	"github.com/parallel-yonder/yonder/pokedex"
	"github.com/parallel-yonder/yonder/store"
	"github.com/parallel-yonder/yonder/store/memory"
)

const Intents = gateway.IntentGuilds |
	gateway.IntentGuildMembers |
	gateway.IntentGuildBans |
	gateway.IntentGuildMessages |
	gateway.IntentGuildMessageReactions |
	gateway.IntentGuildWebhooks |
	gateway.IntentDirectMessages |
	gateway.IntentMessageContent

type Bot struct {
	Router *bcr.Router
	DB     *db.DB
	Dex    *pokedex.Registry
	Stats  *stats.Client

	user   discord.User
	Config Config

	Cabinet store.Cabinet

	webhookClients   map[discord.WebhookID]*webhook.Client
	webhookClientsMu sync.Mutex
}

// New creates a new Bot.
func New(c Config) (*Bot, error) {
	ws.WSDebug = log.Debug
	ws.WSError = func(err error) {
		log.SugaredLogger.Error("ws error: ", err)
	}

	mgr, err := shard.NewManager("Bot "+c.Auth.Discord, state.NewShardFunc(func(m *shard.Manager, s *state.State) {
		s.AddIntents(Intents)

		// clear the stores we manage ourselves, plus ones we never read
		s.Cabinet.ChannelStore = arikawastore.Noop
		s.Cabinet.GuildStore = arikawastore.Noop
		s.Cabinet.MemberStore = arikawastore.Noop
		s.Cabinet.MessageStore = arikawastore.Noop
		s.Cabinet.PresenceStore = arikawastore.Noop
		s.Cabinet.RoleStore = arikawastore.Noop
	}))
	if err != nil {
		return nil, errors.Wrap(err, "creating shard manager")
	}

	bot := &Bot{
		Config:         c,
		Router:         bcr.NewFromShardManager("Bot "+c.Auth.Discord, mgr),
		webhookClients: make(map[discord.WebhookID]*webhook.Client),
	}

	bot.Dex, err = pokedex.Load()
	if err != nil {
		return nil, errors.Wrap(err, "loading pokedex")
	}

	bot.DB, err = db.New(c.Auth.Postgres, c.Auth.Redis, !c.Bot.NoAutoMigrate)
	if err != nil {
		return nil, errors.Wrap(err, "creating database")
	}

	if c.Auth.Influx.URL != "" {
		bot.Stats = stats.New(c.Auth.Influx.URL, c.Auth.Influx.Token, c.Auth.Influx.Organization, c.Auth.Influx.Database)
		bot.AddHandler(bot.Stats.EventHandler)
	}

	memoryStore := memory.New()

	mgr.Shard(0).(*state.State).AddHandler(bot.ready)

	bot.Cabinet = store.Cabinet{
		MemberStore:  memoryStore,
		ChannelStore: memoryStore,
		GuildStore:   memoryStore,
		RoleStore:    memoryStore,
	}

	bot.AddHandler(bot.interactionCreate)

	return bot, nil
}

func (bot *Bot) Open(ctx context.Context) error {
	log.Debug("opening gateway connection")

	return bot.Router.ShardManager.Open(ctx)
}

func (bot *Bot) Close() error {
	return bot.Router.ShardManager.Close()
}

// AddHandler adds handlers to all states.
func (bot *Bot) AddHandler(i ...any) {
	bot.Router.ShardManager.ForEach(func(shard shard.Shard) {
		s := shard.(*state.State)
		for _, hn := range i {
			s.AddHandler(hn)
		}
	})
}

func (bot *Bot) StateFromGuildID(guildID discord.GuildID) (s *state.State, id int) {
	shard, id := bot.Router.ShardManager.FromGuildID(guildID)
	return shard.(*state.State), id
}

// Me returns the bot's own user, once the gateway is ready.
func (bot *Bot) Me() discord.User { return bot.user }

// ready sets the bot user for webhook purposes
func (bot *Bot) ready(ev *gateway.ReadyEvent) {
	if ev.Shard == nil || ev.Shard.ShardID() != 0 {
		return
	}
	bot.user = ev.User
}
