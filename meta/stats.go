package meta

import (
	"fmt"
	"runtime"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/starshine-sys/bcr/v2"

	"github.com/parallel-yonder/yonder/common"
	"github.com/parallel-yonder/yonder/common/log"
)

func (bot *Bot) cmdStats(ctx *bcr.CommandContext) (err error) {
	if owner := bot.Config.Bot.Owner; owner.IsValid() && ctx.User.ID != owner {
		return ctx.ReplyEphemeral("Only the bot owner can use this command.")
	}

	memStats := runtime.MemStats{}
	runtime.ReadMemStats(&memStats)

	s, _ := bot.StateFromGuildID(ctx.Event.GuildID)

	// this returns 0 in the first minute after a restart, nothing to be
	// done about that
	heartbeat := s.Gateway().EchoBeat().Sub(s.Gateway().SentBeat()).Round(time.Millisecond)

	t := time.Now()
	characters, err := bot.DB.CharacterCount(ctx.Event.GuildID)
	if err != nil {
		log.Errorf("getting character count for %v: %v", ctx.Event.GuildID, err)
	}
	dbLatency := time.Since(t).Round(time.Microsecond)

	memory := fmt.Sprintf("%v used (%v allocated)",
		humanize.Bytes(memStats.Alloc), humanize.Bytes(memStats.Sys))
	if sysMem, err := mem.VirtualMemory(); err == nil {
		memory += fmt.Sprintf("\nSystem: %v/%v (%.1f%%)",
			humanize.Bytes(sysMem.Used), humanize.Bytes(sysMem.Total), sysMem.UsedPercent)
	}

	e := discord.Embed{
		Title: "Stats",
		Color: common.ColourBlurple,
		Fields: []discord.EmbedField{
			{
				Name:   "Ping",
				Value:  fmt.Sprintf("Heartbeat: %v\nDatabase: %v", heartbeat, dbLatency),
				Inline: true,
			},
			{
				Name:   "Uptime",
				Value:  fmt.Sprintf("%v\n(since <t:%v>)", prettyDuration(time.Since(bot.startTime)), bot.startTime.Unix()),
				Inline: true,
			},
			{
				Name:   "Characters",
				Value:  humanize.Comma(characters),
				Inline: true,
			},
			{
				Name:  "Memory",
				Value: memory,
			},
		},
		Footer: &discord.EmbedFooter{
			Text: fmt.Sprintf("Version %v (%v on %v/%v)", common.Version(), runtime.Version(), runtime.GOOS, runtime.GOARCH),
		},
		Timestamp: discord.NowTimestamp(),
	}

	return ctx.ReplyComplex(api.InteractionResponseData{
		Embeds: &[]discord.Embed{e},
	})
}

func prettyDuration(d time.Duration) string {
	d = d.Round(time.Minute)

	days := d / (24 * time.Hour)
	hours := (d % (24 * time.Hour)) / time.Hour
	minutes := (d % time.Hour) / time.Minute

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
