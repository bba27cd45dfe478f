package db

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/georgysavva/scany/pgxscan"

	"github.com/parallel-yonder/yonder/pokedex"
)

// ErrNotFound is returned when a row doesn't exist.
const ErrNotFound = errors.Sentinel("db: row not found")

// Character is a single registered OC.
type Character struct {
	ID      int64
	UserID  discord.UserID
	GuildID discord.GuildID

	Name    string
	Age     int
	Pronoun pokedex.Pronoun

	Species   pokedex.Species
	Abilities []string
	Moveset   []string
	SpAbility *pokedex.SpAbility

	Image string
	Shiny bool

	Backstory   string
	Personality string
	Extra       string

	// staff channel announcement, if one was posted
	ChannelID discord.ChannelID
	MessageID discord.MessageID

	Created time.Time
}

// UserCharacters returns all of a user's characters, sorted by name.
func (db *DB) UserCharacters(guildID discord.GuildID, userID discord.UserID) (cs []Character, err error) {
	err = pgxscan.Select(context.Background(), db.Pool, &cs,
		"select * from characters where guild_id = $1 and user_id = $2 order by name", guildID, userID)
	return cs, errors.Cause(err)
}

// Character returns the character with the given ID.
func (db *DB) Character(id int64) (c Character, err error) {
	err = pgxscan.Get(context.Background(), db.Pool, &c,
		"select * from characters where id = $1", id)
	if pgxscan.NotFound(err) {
		return c, ErrNotFound
	}
	return c, errors.Cause(err)
}

// CharacterByName returns a user's character with the given name.
// Name matching is case insensitive.
func (db *DB) CharacterByName(guildID discord.GuildID, userID discord.UserID, name string) (c Character, err error) {
	err = pgxscan.Get(context.Background(), db.Pool, &c,
		"select * from characters where guild_id = $1 and user_id = $2 and lower(name) = lower($3)", guildID, userID, name)
	if pgxscan.NotFound(err) {
		return c, ErrNotFound
	}
	return c, errors.Cause(err)
}

// CreateCharacter inserts a character and returns it with its ID set.
func (db *DB) CreateCharacter(c Character) (Character, error) {
	sql, args, err := sq.Insert("characters").
		Columns("user_id", "guild_id", "name", "age", "pronoun", "species",
			"abilities", "moveset", "sp_ability", "image", "shiny",
			"backstory", "personality", "extra").
		Values(c.UserID, c.GuildID, c.Name, c.Age, c.Pronoun, c.Species,
			c.Abilities, c.Moveset, c.SpAbility, c.Image, c.Shiny,
			c.Backstory, c.Personality, c.Extra).
		Suffix("returning *").ToSql()
	if err != nil {
		return c, errors.Wrap(err, "building query")
	}

	err = pgxscan.Get(context.Background(), db.Pool, &c, sql, args...)
	return c, errors.Cause(err)
}

// UpdateCharacter saves the character's mutable fields.
func (db *DB) UpdateCharacter(c Character) (Character, error) {
	sql, args, err := sq.Update("characters").
		Set("name", c.Name).
		Set("age", c.Age).
		Set("pronoun", c.Pronoun).
		Set("species", c.Species).
		Set("abilities", c.Abilities).
		Set("moveset", c.Moveset).
		Set("sp_ability", c.SpAbility).
		Set("image", c.Image).
		Set("shiny", c.Shiny).
		Set("backstory", c.Backstory).
		Set("personality", c.Personality).
		Set("extra", c.Extra).
		Where("id = ?", c.ID).
		Suffix("returning *").ToSql()
	if err != nil {
		return c, errors.Wrap(err, "building query")
	}

	err = pgxscan.Get(context.Background(), db.Pool, &c, sql, args...)
	return c, errors.Cause(err)
}

// SetCharacterMessage records where the character's announcement was posted.
func (db *DB) SetCharacterMessage(id int64, channelID discord.ChannelID, messageID discord.MessageID) error {
	_, err := db.Pool.Exec(context.Background(),
		"update characters set channel_id = $1, message_id = $2 where id = $3", channelID, messageID, id)
	return errors.Cause(err)
}

// DeleteCharacter deletes a character and, through cascades, its proxies.
func (db *DB) DeleteCharacter(id int64) error {
	_, err := db.Pool.Exec(context.Background(), "delete from characters where id = $1", id)
	return errors.Cause(err)
}

// CharacterCount returns how many characters are registered in the guild.
func (db *DB) CharacterCount(guildID discord.GuildID) (n int64, err error) {
	err = db.Pool.QueryRow(context.Background(),
		"select count(*) from characters where guild_id = $1", guildID).Scan(&n)
	return n, errors.Cause(err)
}
