package bot

import (
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/api/webhook"
	"github.com/diamondburned/arikawa/v3/discord"
)

// webhookClient returns a client for the given webhook.
// If no client is cached, it creates a new one.
func (bot *Bot) webhookClient(wh *discord.Webhook) *webhook.Client {
	bot.webhookClientsMu.Lock()
	defer bot.webhookClientsMu.Unlock()

	c, ok := bot.webhookClients[wh.ID]
	if !ok {
		c = webhook.FromAPI(wh.ID, wh.Token, bot.Router.Rest)
		bot.webhookClients[wh.ID] = c
	}

	return c
}

// ChannelWebhook finds the bot's webhook in the given channel, creating
// one if the channel has none.
func (bot *Bot) ChannelWebhook(guildID discord.GuildID, channelID discord.ChannelID) (*discord.Webhook, error) {
	s, _ := bot.StateFromGuildID(guildID)

	whs, err := s.ChannelWebhooks(channelID)
	if err != nil {
		return nil, err
	}

	for i, wh := range whs {
		if wh.User.ID == bot.user.ID || !wh.User.ID.IsValid() {
			return &whs[i], nil
		}
	}

	return s.CreateWebhook(channelID, api.CreateWebhookData{
		Name: bot.user.Username,
	})
}

// ExecuteAs sends a webhook message in the given channel under the given
// name and avatar, and returns the sent message.
func (bot *Bot) ExecuteAs(guildID discord.GuildID, channelID discord.ChannelID, data webhook.ExecuteData) (*discord.Message, error) {
	wh, err := bot.ChannelWebhook(guildID, channelID)
	if err != nil {
		return nil, err
	}

	return bot.webhookClient(wh).ExecuteAndWait(data)
}
