package common

import (
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
)

// RPSearchRoles are the /ping choices, in display order.
var RPSearchRoles = []string{"Any", "Plot", "Casual", "Action", "GameMaster"}

func rpSearchChoices() (choices []discord.StringChoice) {
	for _, r := range RPSearchRoles {
		choices = append(choices, discord.StringChoice{Name: r, Value: r})
	}
	return choices
}

// Commands is every slash command the bot responds to.
// These are pushed to Discord with `yonder commands`.
var Commands = []api.CreateCommandData{
	{
		Name:        "yonder",
		Description: "Meta commands",
		Options: discord.CommandOptions{
			&discord.SubcommandOption{
				OptionName:  "help",
				Description: "Show help!",
			},
			&discord.SubcommandOption{
				OptionName:  "invite",
				Description: "Get an invite for the bot",
			},
			&discord.SubcommandOption{
				OptionName:  "stats",
				Description: "Show runtime statistics (owner only)",
			},
		},
	},
	{
		Name:        "oc",
		Description: "Manage your characters",
		Options: discord.CommandOptions{
			&discord.SubcommandOption{
				OptionName:  "create",
				Description: "Create a new character",
				Options: []discord.CommandOptionValue{
					&discord.StringOption{
						OptionName:  "name",
						Description: "The character's name",
						Required:    true,
					},
					&discord.StringOption{
						OptionName:  "species",
						Description: "Species, a fusion (\"A/B\"), or a new fakemon name",
						Required:    true,
					},
					&discord.IntegerOption{
						OptionName:  "age",
						Description: "The character's age",
					},
					&discord.StringOption{
						OptionName:  "pronoun",
						Description: "The character's pronouns",
						Choices: []discord.StringChoice{
							{Name: "He/Him", Value: "He"},
							{Name: "She/Her", Value: "She"},
							{Name: "They/Them", Value: "Them"},
						},
					},
					&discord.StringOption{
						OptionName:  "abilities",
						Description: "Comma-separated abilities (sampled from the species if omitted)",
					},
					&discord.StringOption{
						OptionName:  "moves",
						Description: "Comma-separated moveset, up to 6 moves from the movepool",
					},
					&discord.StringOption{
						OptionName:  "stats",
						Description: "Fakemon stats as hp/atk/def/spa/spd/spe, each 1-5, total up to 18",
					},
					&discord.StringOption{
						OptionName:  "sp_ability",
						Description: "Name of a unique special ability (takes the only ability slot)",
					},
					&discord.StringOption{
						OptionName:  "sp_ability_desc",
						Description: "What the special ability does",
					},
					&discord.BooleanOption{
						OptionName:  "shiny",
						Description: "Use the shiny sprite",
					},
					&discord.StringOption{
						OptionName:  "image",
						Description: "Image URL (required for fakemon and fusions)",
					},
					&discord.StringOption{
						OptionName:  "backstory",
						Description: "The character's backstory",
					},
					&discord.StringOption{
						OptionName:  "personality",
						Description: "The character's personality",
					},
					&discord.StringOption{
						OptionName:  "extra",
						Description: "Any extra information",
					},
				},
			},
			&discord.SubcommandOption{
				OptionName:  "list",
				Description: "List a member's characters",
				Options: []discord.CommandOptionValue{
					&discord.UserOption{
						OptionName:  "member",
						Description: "Member to show characters for (yours if omitted)",
					},
				},
			},
			&discord.SubcommandOption{
				OptionName:  "edit",
				Description: "Edit one of your characters",
				Options: []discord.CommandOptionValue{
					&discord.StringOption{
						OptionName:  "name",
						Description: "Name of the character to edit",
						Required:    true,
					},
					&discord.StringOption{
						OptionName:  "rename",
						Description: "New name for the character",
					},
					&discord.IntegerOption{
						OptionName:  "age",
						Description: "The character's age",
					},
					&discord.StringOption{
						OptionName:  "pronoun",
						Description: "The character's pronouns",
						Choices: []discord.StringChoice{
							{Name: "He/Him", Value: "He"},
							{Name: "She/Her", Value: "She"},
							{Name: "They/Them", Value: "Them"},
						},
					},
					&discord.StringOption{
						OptionName:  "abilities",
						Description: "Comma-separated abilities",
					},
					&discord.StringOption{
						OptionName:  "moves",
						Description: "Comma-separated moveset, up to 6 moves from the movepool",
					},
					&discord.BooleanOption{
						OptionName:  "shiny",
						Description: "Use the shiny sprite",
					},
					&discord.StringOption{
						OptionName:  "image",
						Description: "Image URL",
					},
					&discord.StringOption{
						OptionName:  "backstory",
						Description: "The character's backstory",
					},
					&discord.StringOption{
						OptionName:  "personality",
						Description: "The character's personality",
					},
					&discord.StringOption{
						OptionName:  "extra",
						Description: "Any extra information",
					},
				},
			},
			&discord.SubcommandOption{
				OptionName:  "delete",
				Description: "Delete one of your characters",
				Options: []discord.CommandOptionValue{
					&discord.StringOption{
						OptionName:  "name",
						Description: "Name of the character to delete",
						Required:    true,
					},
				},
			},
		},
	},
	{
		Name:                     "register",
		Description:              "Grant the registered role to a member",
		DefaultMemberPermissions: discord.NewPermissions(discord.PermissionManageRoles),
		Options: discord.CommandOptions{
			&discord.UserOption{
				OptionName:  "member",
				Description: "Member to register",
				Required:    true,
			},
		},
	},
	{
		Name:        "proxy",
		Description: "Manage character proxies",
		Options: discord.CommandOptions{
			&discord.SubcommandOption{
				OptionName:  "set",
				Description: "Create or update a proxy for a character",
				Options: []discord.CommandOptionValue{
					&discord.StringOption{
						OptionName:  "oc",
						Description: "Character the proxy belongs to",
						Required:    true,
					},
					&discord.StringOption{
						OptionName:  "prefix",
						Description: "Proxy tags, written around the word \"text\" (e.g. k:text)",
					},
					&discord.StringOption{
						OptionName:  "variant",
						Description: "Variant name (its own image and tags)",
					},
					&discord.StringOption{
						OptionName:  "image",
						Description: "Image URL for the proxy or variant",
					},
					&discord.BooleanOption{
						OptionName:  "delete",
						Description: "Delete the proxy, variant, or tag instead",
					},
				},
			},
			&discord.SubcommandOption{
				OptionName:  "list",
				Description: "List your proxies and their tags",
			},
		},
	},
	{
		Name:        "npc",
		Description: "NPC narration",
		Options: discord.CommandOptions{
			&discord.SubcommandOption{
				OptionName:  "set",
				Description: "Set your saved NPC for later narration",
				Options: []discord.CommandOptionValue{
					&discord.StringOption{
						OptionName:  "name",
						Description: "Name of the NPC",
					},
					&discord.StringOption{
						OptionName:  "species",
						Description: "Species to use for name and avatar",
					},
					&discord.BooleanOption{
						OptionName:  "shiny",
						Description: "Use the shiny sprite",
					},
					&discord.StringOption{
						OptionName:  "image",
						Description: "Avatar image URL",
					},
				},
			},
			&discord.SubcommandOption{
				OptionName:  "say",
				Description: "Narrate a message as an NPC",
				Options: []discord.CommandOptionValue{
					&discord.StringOption{
						OptionName:  "text",
						Description: "What the NPC says",
						Required:    true,
					},
					&discord.StringOption{
						OptionName:  "species",
						Description: "Narrate as this species instead of your saved NPC",
					},
				},
			},
		},
	},
	{
		Name:        "ping",
		Description: "Ping an RP search role",
		Options: discord.CommandOptions{
			&discord.StringOption{
				OptionName:  "role",
				Description: "Kind of RP to search for",
				Required:    true,
				Choices:     rpSearchChoices(),
			},
		},
	},
	{
		Name:        "report",
		Description: "Report a situation to staff",
		Options: discord.CommandOptions{
			&discord.StringOption{
				OptionName:  "text",
				Description: "Message to be sent to staff",
				Required:    true,
			},
			&discord.BooleanOption{
				OptionName:  "anonymous",
				Description: "Hide your name from staff",
			},
		},
	},
	{
		Name:                     "mod",
		Description:              "Moderation commands",
		DefaultMemberPermissions: discord.NewPermissions(discord.PermissionManageMessages),
		Options: discord.CommandOptions{
			&discord.SubcommandOption{
				OptionName:  "warn",
				Description: "Warn a member",
				Options: []discord.CommandOptionValue{
					&discord.UserOption{
						OptionName:  "member",
						Description: "Member to warn",
						Required:    true,
					},
					&discord.StringOption{
						OptionName:  "reason",
						Description: "Reason for the warning",
						Required:    true,
					},
				},
			},
			&discord.SubcommandOption{
				OptionName:  "kick",
				Description: "Kick a member",
				Options: []discord.CommandOptionValue{
					&discord.UserOption{
						OptionName:  "member",
						Description: "Member to kick",
						Required:    true,
					},
					&discord.StringOption{
						OptionName:  "reason",
						Description: "Reason for the kick",
					},
				},
			},
			&discord.SubcommandOption{
				OptionName:  "ban",
				Description: "Ban a member",
				Options: []discord.CommandOptionValue{
					&discord.UserOption{
						OptionName:  "member",
						Description: "Member to ban",
						Required:    true,
					},
					&discord.StringOption{
						OptionName:  "reason",
						Description: "Reason for the ban",
					},
					&discord.IntegerOption{
						OptionName:  "days",
						Description: "Days of messages to delete (0-7)",
					},
				},
			},
			&discord.SubcommandOption{
				OptionName:  "unban",
				Description: "Unban a user by ID",
				Options: []discord.CommandOptionValue{
					&discord.StringOption{
						OptionName:  "user",
						Description: "ID of the user to unban",
						Required:    true,
					},
					&discord.StringOption{
						OptionName:  "reason",
						Description: "Reason for the unban",
					},
				},
			},
			&discord.SubcommandOption{
				OptionName:  "purge",
				Description: "Bulk delete recent messages in this channel",
				Options: []discord.CommandOptionValue{
					&discord.IntegerOption{
						OptionName:  "amount",
						Description: "How many messages to check (default 5)",
					},
					&discord.BooleanOption{
						OptionName:  "bots",
						Description: "Only delete messages sent by bots",
					},
					&discord.UserOption{
						OptionName:  "member",
						Description: "Only delete messages sent by this member",
					},
					&discord.StringOption{
						OptionName:  "match",
						Description: "Only delete messages matching this regular expression",
					},
				},
			},
			&discord.SubcommandOption{
				OptionName:  "slowmode",
				Description: "Set this channel's slowmode",
				Options: []discord.CommandOptionValue{
					&discord.IntegerOption{
						OptionName:  "seconds",
						Description: "Slowmode interval (default 21600)",
					},
				},
			},
		},
	},
	{
		Name:                     "roles",
		Description:              "Post the self-assign role menus",
		DefaultMemberPermissions: discord.NewPermissions(discord.PermissionManageGuild),
		Options: discord.CommandOptions{
			&discord.SubcommandOption{
				OptionName:  "post",
				Description: "Post a role menu in a channel",
				Options: []discord.CommandOptionValue{
					&discord.StringOption{
						OptionName:  "menu",
						Description: "Which menu to post",
						Required:    true,
						Choices: []discord.StringChoice{
							{Name: "Pronouns", Value: "pronouns"},
							{Name: "Colours", Value: "colours"},
							{Name: "Pings", Value: "pings"},
							{Name: "RP search", Value: "rp-search"},
						},
					},
					&discord.ChannelOption{
						OptionName:  "channel",
						Description: "Channel to post in (here if omitted)",
					},
				},
			},
		},
	},
}
