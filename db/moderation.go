package db

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/georgysavva/scany/pgxscan"
)

// Warning is a moderator warning issued to a user.
type Warning struct {
	ID        int64
	GuildID   discord.GuildID
	UserID    discord.UserID
	Moderator discord.UserID
	Reason    string
	Created   time.Time
}

// InsertWarning records a warning and returns it with its ID set.
func (db *DB) InsertWarning(w Warning) (Warning, error) {
	err := pgxscan.Get(context.Background(), db.Pool, &w,
		`insert into warnings (guild_id, user_id, moderator, reason)
		values ($1, $2, $3, $4) returning *`,
		w.GuildID, w.UserID, w.Moderator, w.Reason)
	return w, errors.Cause(err)
}

// UserWarnings returns a user's warnings, newest first.
func (db *DB) UserWarnings(guildID discord.GuildID, userID discord.UserID) (ws []Warning, err error) {
	err = pgxscan.Select(context.Background(), db.Pool, &ws,
		"select * from warnings where guild_id = $1 and user_id = $2 order by created desc", guildID, userID)
	return ws, errors.Cause(err)
}

// Report is a user-filed report forwarded to the staff channel.
type Report struct {
	ID        int64
	GuildID   discord.GuildID
	UserID    discord.UserID
	Anonymous bool
	Text      string
	MessageID discord.MessageID
	Created   time.Time
}

// InsertReport records a report and returns it with its ID set.
func (db *DB) InsertReport(r Report) (Report, error) {
	err := pgxscan.Get(context.Background(), db.Pool, &r,
		`insert into reports (guild_id, user_id, anonymous, text, message_id)
		values ($1, $2, $3, $4, $5) returning *`,
		r.GuildID, r.UserID, r.Anonymous, r.Text, r.MessageID)
	return r, errors.Cause(err)
}

// Report returns a report by ID.
func (db *DB) Report(id int64) (r Report, err error) {
	err = pgxscan.Get(context.Background(), db.Pool, &r,
		"select * from reports where id = $1", id)
	if pgxscan.NotFound(err) {
		return r, ErrNotFound
	}
	return r, errors.Cause(err)
}
