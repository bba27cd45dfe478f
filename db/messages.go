package db

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/georgysavva/scany/pgxscan"
)

// ProxiedMessage maps a webhook message back to the user and character
// that sent it, for the reaction controls and the proxy log.
type ProxiedMessage struct {
	MessageID   discord.MessageID
	ChannelID   discord.ChannelID
	GuildID     discord.GuildID
	UserID      discord.UserID
	CharacterID int64
	Variant     string
	Created     time.Time
}

// InsertProxiedMessage records a proxied message.
func (db *DB) InsertProxiedMessage(m ProxiedMessage) error {
	_, err := db.Pool.Exec(context.Background(),
		`insert into proxied_messages (message_id, channel_id, guild_id, user_id, character_id, variant)
		values ($1, $2, $3, $4, $5, $6)`,
		m.MessageID, m.ChannelID, m.GuildID, m.UserID, m.CharacterID, m.Variant)
	return errors.Cause(err)
}

// ProxiedMessage returns the record for the given message ID.
func (db *DB) ProxiedMessage(id discord.MessageID) (m ProxiedMessage, err error) {
	err = pgxscan.Get(context.Background(), db.Pool, &m,
		"select * from proxied_messages where message_id = $1", id)
	if pgxscan.NotFound(err) {
		return m, ErrNotFound
	}
	return m, errors.Cause(err)
}

// DeleteProxiedMessage removes a record, usually after the message itself
// was deleted.
func (db *DB) DeleteProxiedMessage(id discord.MessageID) error {
	_, err := db.Pool.Exec(context.Background(),
		"delete from proxied_messages where message_id = $1", id)
	return errors.Cause(err)
}

// CleanProxiedMessages removes records older than the given age, and
// returns how many were deleted.
func (db *DB) CleanProxiedMessages(age time.Duration) (int64, error) {
	ct, err := db.Pool.Exec(context.Background(),
		"delete from proxied_messages where created < $1", time.Now().UTC().Add(-age))
	return ct.RowsAffected(), errors.Cause(err)
}
