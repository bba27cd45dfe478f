package common

import (
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
)

// CommandOptions returns a slash command interaction's options,
// descending into subcommands so handlers get the innermost option list.
func CommandOptions(ev *gateway.InteractionCreateEvent) discord.CommandInteractionOptions {
	data, ok := ev.Data.(*discord.CommandInteraction)
	if !ok {
		return nil
	}

	opts := data.Options
	for len(opts) == 1 &&
		(opts[0].Type == discord.SubcommandOptionType || opts[0].Type == discord.SubcommandGroupOptionType) {
		opts = opts[0].Options
	}
	return opts
}

// OptionString returns the named string option, or "" if unset.
func OptionString(opts discord.CommandInteractionOptions, name string) string {
	return opts.Find(name).String()
}

// OptionInt returns the named integer option, or def if unset.
func OptionInt(opts discord.CommandInteractionOptions, name string, def int64) int64 {
	o := opts.Find(name)
	if o.Name == "" {
		return def
	}
	v, err := o.IntValue()
	if err != nil {
		return def
	}
	return v
}

// OptionBool returns the named boolean option, or false if unset.
func OptionBool(opts discord.CommandInteractionOptions, name string) bool {
	v, _ := opts.Find(name).BoolValue()
	return v
}

// OptionUser returns the named user option, or 0 if unset.
func OptionUser(opts discord.CommandInteractionOptions, name string) discord.UserID {
	o := opts.Find(name)
	if o.Name == "" {
		return 0
	}
	v, err := o.SnowflakeValue()
	if err != nil {
		return 0
	}
	return discord.UserID(v)
}

// OptionChannel returns the named channel option, or 0 if unset.
func OptionChannel(opts discord.CommandInteractionOptions, name string) discord.ChannelID {
	o := opts.Find(name)
	if o.Name == "" {
		return 0
	}
	v, err := o.SnowflakeValue()
	if err != nil {
		return 0
	}
	return discord.ChannelID(v)
}
