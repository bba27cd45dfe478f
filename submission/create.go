package submission

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/utils/json/option"
	"github.com/starshine-sys/bcr/v2"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
	"github.com/parallel-yonder/yonder/db"
	"github.com/parallel-yonder/yonder/pokedex"
)

// errCancelled aborts the wizard after the message has already been
// updated with a cancellation notice.
const errCancelled = errors.Sentinel("submission: cancelled")

const wizardTimeout = 10 * time.Minute

func (bot *Bot) cmdCreate(ctx *bcr.CommandContext) (err error) {
	opts := common.CommandOptions(ctx.Event)

	name := common.OptionString(opts, "name")
	if _, err := bot.DB.CharacterByName(ctx.Event.GuildID, ctx.User.ID, name); err == nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("You already have a character named %v.", name))
	} else if err != db.ErrNotFound {
		log.Errorf("checking for existing character %q: %v", name, err)
		return bot.ReportError(ctx, errors.Wrap(err, "checking for existing character"))
	}

	c := db.Character{
		UserID:  ctx.User.ID,
		GuildID: ctx.Event.GuildID,

		Name:    name,
		Age:     int(common.OptionInt(opts, "age", 0)),
		Pronoun: pokedex.ParsePronoun(common.OptionString(opts, "pronoun")),

		Image: common.OptionString(opts, "image"),
		Shiny: common.OptionBool(opts, "shiny"),

		Backstory:   common.OptionString(opts, "backstory"),
		Personality: common.OptionString(opts, "personality"),
		Extra:       common.OptionString(opts, "extra"),
	}

	if spName := common.OptionString(opts, "sp_ability"); spName != "" {
		desc := common.OptionString(opts, "sp_ability_desc")
		if desc == "" {
			return ctx.ReplyEphemeral("A special ability needs a description, set `sp_ability_desc` too.")
		}
		c.SpAbility = &pokedex.SpAbility{Name: spName, Description: desc}
	}

	var stats pokedex.Stats
	if in := common.OptionString(opts, "stats"); in != "" {
		stats, err = ParseStats(in)
		if err != nil {
			return ctx.ReplyEphemeral(err.Error())
		}
	}

	w := &wizard{bot: bot, ctx: ctx, first: true}
	cctx, cancel := context.WithTimeout(context.Background(), wizardTimeout)
	defer cancel()

	species, err := bot.resolveSpecies(w, cctx, common.OptionString(opts, "species"), stats)
	if err == errCancelled {
		return nil
	} else if err != nil {
		return w.fail(err.Error())
	}

	if c.SpAbility != nil && !species.CanHaveSpecialAbilities() {
		return w.fail(fmt.Sprintf("%v can't have a special ability.", species.Name))
	}
	if species.RequiresImage() && c.Image == "" {
		return w.fail("Fakemon and fusions need an `image` to be submitted.")
	}

	c.Species = *species
	c.Abilities, err = ResolveAbilities(bot.Dex, species, SplitList(common.OptionString(opts, "abilities")), c.SpAbility != nil, randPick)
	if err != nil {
		return w.fail(err.Error())
	}
	c.Moveset, err = ResolveMoves(bot.Dex, species, SplitList(common.OptionString(opts, "moves")), randPick)
	if err != nil {
		return w.fail(err.Error())
	}

	// preview and final confirmation
	err = w.respond(api.InteractionResponseData{
		Content: option.NewNullableString("This is how your character will look. Submit it?"),
		Embeds:  &[]discord.Embed{CharacterEmbed(bot.Dex, c)},
		Components: &discord.ContainerComponents{
			&discord.ActionRowComponent{
				&discord.ButtonComponent{
					CustomID: "oc:submit",
					Label:    "Submit",
					Style:    discord.SuccessButtonStyle(),
				},
				cancelButton(),
			},
		},
	})
	if err != nil {
		log.Errorf("sending submission preview for %v: %v", ctx.Event.ID, err)
		return bot.ReportError(ctx, errors.Wrap(err, "sending preview"))
	}

	for {
		id, _, ok := w.wait(cctx)
		if !ok {
			w.clearComponents()
			return nil
		}

		switch id {
		case "oc:cancel":
			return w.finish("Submission cancelled.", nil)
		case "oc:submit":
			c, err = bot.DB.CreateCharacter(c)
			if err != nil {
				log.Errorf("creating character %q for %v: %v", c.Name, ctx.User.ID, err)
				return bot.ReportError(w.cur, errors.Wrap(err, "creating character"))
			}

			go bot.announce(ctx, c)

			return w.finish(
				fmt.Sprintf("✅ %v has been submitted! Staff have been notified.", c.Name),
				[]discord.Embed{CharacterEmbed(bot.Dex, c)},
			)
		}
	}
}

// resolveSpecies turns the species option into a concrete species,
// asking the user when the input is ambiguous: a typing choice for
// fusions with several legal typings, and a confirmation before
// creating a fakemon.
func (bot *Bot) resolveSpecies(w *wizard, cctx context.Context, input string, stats pokedex.Stats) (*pokedex.Species, error) {
	if first, rest, isFusion := strings.Cut(input, "/"); isFusion {
		a := bot.Dex.DeduceSpecies(first)
		b := bot.Dex.DeduceSpecies(rest)
		if a == nil || b == nil {
			return nil, errors.Errorf("couldn't figure out both halves of the fusion %q", input)
		}
		if a.Banned || b.Banned {
			return nil, errors.New("one of those species can't be submitted")
		}

		combos := pokedex.PossibleFusionTypes(a, b)
		types := combos[0]
		if len(combos) > 1 {
			var err error
			types, err = w.pickFusionTyping(cctx, a, b, combos)
			if err != nil {
				return nil, err
			}
		}
		return pokedex.NewFusion(a, b, types)
	}

	s := bot.Dex.DeduceSpecies(input)
	if s != nil && pokedex.Fix(s.Name) == pokedex.Fix(input) {
		if s.Banned {
			return nil, errors.Errorf("%v can't be submitted", s.Name)
		}
		return s, nil
	}
	return w.fakemonPrompt(cctx, input, s, stats)
}

// wizard drives a multi-stage interaction flow on a single response
// message: the first respond creates the message, every later one
// updates it through the latest button or select interaction.
type wizard struct {
	bot   *Bot
	ctx   *bcr.CommandContext
	cur   bcr.HasContext
	msg   *discord.Message
	first bool
}

func (w *wizard) respond(data api.InteractionResponseData) error {
	if w.first {
		w.first = false
		err := w.ctx.ReplyComplex(data)
		if err != nil {
			return err
		}
		w.msg, err = w.ctx.Original()
		return err
	}

	nctx := w.cur.Ctx()
	return nctx.State.RespondInteraction(nctx.InteractionID, nctx.InteractionToken, api.InteractionResponse{
		Type: api.UpdateMessage,
		Data: &data,
	})
}

// wait blocks for the next button or select interaction on the wizard
// message by the submitting user. The returned values are only set for
// select interactions.
func (w *wizard) wait(cctx context.Context) (customID string, values []string, ok bool) {
	for {
		ev, ok := common.WaitFor(cctx, w.ctx.State, func(ev *gateway.InteractionCreateEvent) bool {
			if ev.Message == nil || w.msg == nil || ev.Message.ID != w.msg.ID {
				return false
			}
			if ev.SenderID() != w.ctx.User.ID {
				return false
			}

			switch data := ev.Data.(type) {
			case *discord.ButtonInteraction:
				return strings.HasPrefix(string(data.CustomID), "oc:")
			case *discord.StringSelectInteraction:
				return strings.HasPrefix(string(data.CustomID), "oc:")
			}
			return false
		})
		if !ok {
			return "", nil, false
		}

		rctx, err := w.bot.Router.NewRootContext(ev)
		if err != nil {
			log.Errorf("creating context for interaction %v: %v", ev.ID, err)
			continue
		}
		w.cur = rctx

		switch data := ev.Data.(type) {
		case *discord.ButtonInteraction:
			return string(data.CustomID), nil, true
		case *discord.StringSelectInteraction:
			return string(data.CustomID), data.Values, true
		}
	}
}

// finish replaces the wizard message with a final state and no buttons.
func (w *wizard) finish(content string, embeds []discord.Embed) error {
	if embeds == nil {
		embeds = []discord.Embed{}
	}
	return w.respond(api.InteractionResponseData{
		Content:    option.NewNullableString(content),
		Embeds:     &embeds,
		Components: &discord.ContainerComponents{},
	})
}

// fail reports a validation error: ephemerally if nothing has been sent
// yet, otherwise by replacing the wizard message.
func (w *wizard) fail(msg string) error {
	if w.first {
		return w.ctx.ReplyEphemeral(msg)
	}
	return w.finish("❌ "+msg, nil)
}

func (w *wizard) clearComponents() {
	_, err := w.ctx.State.EditInteractionResponse(discord.AppID(w.bot.Me().ID), w.ctx.InteractionToken, api.EditInteractionResponseData{
		Components: &discord.ContainerComponents{},
	})
	if err != nil {
		log.Errorf("clearing components for %v: %v", w.ctx.Event.ID, err)
	}
}

func cancelButton() *discord.ButtonComponent {
	return &discord.ButtonComponent{
		CustomID: "oc:cancel",
		Label:    "Cancel",
		Style:    discord.SecondaryButtonStyle(),
	}
}

// pickFusionTyping asks which of the legal type combinations the fusion
// should have.
func (w *wizard) pickFusionTyping(cctx context.Context, a, b *pokedex.Species, combos [][]string) ([]string, error) {
	selectOpts := make([]discord.SelectOption, 0, len(combos))
	for i, combo := range combos {
		selectOpts = append(selectOpts, discord.SelectOption{
			Label: strings.Join(combo, " / "),
			Value: strconv.Itoa(i),
		})
	}

	err := w.respond(api.InteractionResponseData{
		Embeds: &[]discord.Embed{{
			Title:       "Choose a typing",
			Description: fmt.Sprintf("A fusion of %v and %v can be typed %d different ways. Pick one below.", a.Name, b.Name, len(combos)),
			Color:       common.ColourBlurple,
		}},
		Components: &discord.ContainerComponents{
			&discord.ActionRowComponent{
				&discord.StringSelectComponent{
					CustomID:    "oc:typing",
					Placeholder: "Typing",
					Options:     selectOpts,
				},
			},
			&discord.ActionRowComponent{cancelButton()},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "sending typing prompt")
	}

	for {
		id, values, ok := w.wait(cctx)
		if !ok {
			w.clearComponents()
			return nil, errCancelled
		}

		switch id {
		case "oc:cancel":
			if err := w.finish("Submission cancelled.", nil); err != nil {
				log.Errorf("updating message for %v: %v", w.ctx.Event.ID, err)
			}
			return nil, errCancelled
		case "oc:typing":
			if len(values) == 0 {
				continue
			}
			i, err := strconv.Atoi(values[0])
			if err != nil || i < 0 || i >= len(combos) {
				continue
			}
			return combos[i], nil
		}
	}
}

// fakemonPrompt is shown when the species input matches nothing
// exactly: the user picks between the closest match, a brand new
// fakemon, or cancelling.
func (w *wizard) fakemonPrompt(cctx context.Context, input string, match *pokedex.Species, stats pokedex.Stats) (*pokedex.Species, error) {
	row := discord.ActionRowComponent{}
	if match != nil && !match.Banned {
		row = append(row, &discord.ButtonComponent{
			CustomID: "oc:match",
			Label:    "Use " + match.Name,
			Style:    discord.PrimaryButtonStyle(),
		})
	}
	row = append(row, &discord.ButtonComponent{
		CustomID: "oc:fakemon",
		Label:    fmt.Sprintf("New fakemon: %v", input),
		Style:    discord.SuccessButtonStyle(),
	}, cancelButton())

	desc := fmt.Sprintf("No species named %q exists. You can create it as a fakemon instead.", input)
	if match != nil && !match.Banned {
		desc = fmt.Sprintf("No species named %q exists. Did you mean %v? You can also create %q as a fakemon.", input, match.Name, input)
	}

	err := w.respond(api.InteractionResponseData{
		Embeds: &[]discord.Embed{{
			Title:       "Unknown species",
			Description: desc,
			Color:       common.ColourYellow,
		}},
		Components: &discord.ContainerComponents{&row},
	})
	if err != nil {
		return nil, errors.Wrap(err, "sending fakemon prompt")
	}

	for {
		id, _, ok := w.wait(cctx)
		if !ok {
			w.clearComponents()
			return nil, errCancelled
		}

		switch id {
		case "oc:cancel":
			if err := w.finish("Submission cancelled.", nil); err != nil {
				log.Errorf("updating message for %v: %v", w.ctx.Event.ID, err)
			}
			return nil, errCancelled
		case "oc:match":
			return match, nil
		case "oc:fakemon":
			return pokedex.NewFakemon(input, stats)
		}
	}
}

// announce posts a submitted character to the staff channel.
func (bot *Bot) announce(ctx *bcr.CommandContext, c db.Character) {
	if !bot.Config.Bot.StaffChannel.IsValid() {
		return
	}

	e := CharacterEmbed(bot.Dex, c)
	e.Author = &discord.EmbedAuthor{
		Name: fmt.Sprintf("Submitted by %v", ctx.User.Tag()),
		Icon: ctx.User.AvatarURL(),
	}

	s, _ := bot.StateFromGuildID(ctx.Event.GuildID)
	msg, err := s.SendEmbeds(bot.Config.Bot.StaffChannel, e)
	if err != nil {
		log.Errorf("sending submission announcement for %v: %v", c.ID, err)
		return
	}

	err = bot.DB.SetCharacterMessage(c.ID, msg.ChannelID, msg.ID)
	if err != nil {
		log.Errorf("recording announcement message for %v: %v", c.ID, err)
	}
}
