package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/parallel-yonder/yonder/cmd/bot"
	"github.com/parallel-yonder/yonder/cmd/commands"
	"github.com/parallel-yonder/yonder/cmd/migrate"
	"github.com/parallel-yonder/yonder/common"
)

var app = &cli.App{
	Name:    "Yonder",
	Usage:   "Pokémon roleplay community bot",
	Version: common.Version(),

	Commands: []*cli.Command{
		bot.Command,
		migrate.Command,
		commands.Command,
	},
}

func Run() error {
	return app.Run(os.Args)
}
