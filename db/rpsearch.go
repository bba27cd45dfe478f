package db

import (
	"context"
	"strconv"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/georgysavva/scany/pgxscan"
	"github.com/mediocregopher/radix/v4"
)

// RPSearchCooldown is how long a user, and a search role, stay on
// cooldown after a ping.
const RPSearchCooldown = 2 * time.Hour

// RPSearchLifetime is how long a search post stays up before cleanup.
const RPSearchLifetime = 24 * time.Hour

// RPSearch is an active roleplay search post.
type RPSearch struct {
	ID        int64
	GuildID   discord.GuildID
	UserID    discord.UserID
	Role      string
	MessageID discord.MessageID
	ChannelID discord.ChannelID
	Created   time.Time
	Expires   time.Time
}

// InsertRPSearch records a search post and returns it with its ID set.
func (db *DB) InsertRPSearch(s RPSearch) (RPSearch, error) {
	err := pgxscan.Get(context.Background(), db.Pool, &s,
		`insert into rp_searches (guild_id, user_id, role, message_id, channel_id, expires)
		values ($1, $2, $3, $4, $5, $6) returning *`,
		s.GuildID, s.UserID, s.Role, s.MessageID, s.ChannelID,
		time.Now().UTC().Add(RPSearchLifetime))
	return s, errors.Cause(err)
}

// ExpiredRPSearches returns search posts past their expiry.
func (db *DB) ExpiredRPSearches() (ss []RPSearch, err error) {
	err = pgxscan.Select(context.Background(), db.Pool, &ss,
		"select * from rp_searches where expires < $1", time.Now().UTC())
	return ss, errors.Cause(err)
}

// DeleteRPSearch removes a search post record.
func (db *DB) DeleteRPSearch(id int64) error {
	_, err := db.Pool.Exec(context.Background(), "delete from rp_searches where id = $1", id)
	return errors.Cause(err)
}

// RPSearchByMessage returns the search post for a message, if any.
func (db *DB) RPSearchByMessage(id discord.MessageID) (s RPSearch, err error) {
	err = pgxscan.Get(context.Background(), db.Pool, &s,
		"select * from rp_searches where message_id = $1", id)
	if pgxscan.NotFound(err) {
		return s, ErrNotFound
	}
	return s, errors.Cause(err)
}

func userCooldownKey(userID discord.UserID) string {
	return "rpsearch:user:" + userID.String()
}

func roleCooldownKey(guildID discord.GuildID, role string) string {
	return "rpsearch:role:" + guildID.String() + ":" + role
}

// SetRPSearchCooldown puts the user and the pinged role on cooldown.
func (db *DB) SetRPSearchCooldown(guildID discord.GuildID, userID discord.UserID, role string) error {
	ctx := context.Background()
	ex := strconv.Itoa(int(RPSearchCooldown.Seconds()))

	err := db.Redis.Do(ctx, radix.Cmd(nil, "SET", userCooldownKey(userID), "1", "EX", ex))
	if err != nil {
		return errors.Cause(err)
	}
	return errors.Cause(
		db.Redis.Do(ctx, radix.Cmd(nil, "SET", roleCooldownKey(guildID, role), "1", "EX", ex)))
}

// RPSearchCooldowns reports whether the user or the role are still on
// cooldown, with the longer remaining duration.
func (db *DB) RPSearchCooldowns(guildID discord.GuildID, userID discord.UserID, role string) (onCooldown bool, remaining time.Duration, err error) {
	ctx := context.Background()

	for _, key := range []string{userCooldownKey(userID), roleCooldownKey(guildID, role)} {
		var ttl int
		err = db.Redis.Do(ctx, radix.Cmd(&ttl, "TTL", key))
		if err != nil {
			return false, 0, errors.Cause(err)
		}

		if d := time.Duration(ttl) * time.Second; ttl > 0 && d > remaining {
			onCooldown = true
			remaining = d
		}
	}
	return onCooldown, remaining, nil
}
