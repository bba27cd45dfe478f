package bot

import (
	"os"

	"emperror.dev/errors"
	"github.com/BurntSushi/toml"
	"github.com/diamondburned/arikawa/v3/discord"
)

type Config struct {
	Auth AuthConfig `toml:"auth"`
	Bot  BotConfig  `toml:"bot"`
	Web  WebConfig  `toml:"web"`
	Info InfoConfig `toml:"info"`
}

type AuthConfig struct {
	Discord  string `toml:"discord"`
	Postgres string `toml:"postgres"`
	Redis    string `toml:"redis"`
	Sentry   string `toml:"sentry"`

	Influx AuthInfluxConfig `toml:"influx"`
}

type AuthInfluxConfig struct {
	URL          string `toml:"url"`
	Token        string `toml:"token"`
	Organization string `toml:"organization"`
	Database     string `toml:"database"`
}

type BotConfig struct {
	Owner           discord.UserID  `toml:"owner"`
	GuildID         discord.GuildID `toml:"guild_id"`
	CommandsGuildID discord.GuildID `toml:"commands_guild_id"`
	NoSyncCommands  bool            `toml:"no_sync_commands"`

	// RegisteredRole is granted by /register and gates most channels.
	RegisteredRole discord.RoleID `toml:"registered_role"`

	StaffChannel     discord.ChannelID `toml:"staff_channel"`
	ReportChannel    discord.ChannelID `toml:"report_channel"`
	ModLogChannel    discord.ChannelID `toml:"mod_log_channel"`
	SearchChannel    discord.ChannelID `toml:"search_channel"`
	JoinLeaveLog     discord.ChannelID `toml:"join_leave_log"`
	ProxyLogChannel  discord.ChannelID `toml:"proxy_log_channel"`
	MemberCountVoice discord.ChannelID `toml:"member_count_voice"`

	// NoAutoMigrate disables migrations on startup. If set, migrations
	// must be run manually with the `migrate` subcommand.
	NoAutoMigrate bool `toml:"no_auto_migrate"`
}

type WebConfig struct {
	Port string `toml:"port"`
}

type InfoConfig struct {
	SupportServer string `toml:"support_server"`
	InviteBase    string `toml:"invite_base"`

	HelpFields []discord.EmbedField `toml:"help_fields"`
}

func ReadConfig(path string) (c Config, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrap(err, "read config file")
	}

	err = toml.Unmarshal(b, &c)
	if err != nil {
		return c, errors.Wrap(err, "unmarshal config")
	}

	// environment variables (including a .env file, if one exists) override
	// credentials from the config file
	if s := os.Getenv("DISCORD_TOKEN"); s != "" {
		c.Auth.Discord = s
	}
	if s := os.Getenv("DATABASE_URL"); s != "" {
		c.Auth.Postgres = s
	}
	if s := os.Getenv("REDIS"); s != "" {
		c.Auth.Redis = s
	}
	if s := os.Getenv("SENTRY_URL"); s != "" {
		c.Auth.Sentry = s
	}
	return c, nil
}
