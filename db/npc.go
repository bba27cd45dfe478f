package db

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/georgysavva/scany/pgxscan"
)

// NPC is a user's saved narrator identity for /npc say.
type NPC struct {
	UserID discord.UserID
	Name   string
	Image  string
}

// SetNPC saves or replaces the user's NPC.
func (db *DB) SetNPC(n NPC) error {
	_, err := db.Pool.Exec(context.Background(),
		`insert into npcs (user_id, name, image) values ($1, $2, $3)
		on conflict (user_id) do update set name = $2, image = $3`,
		n.UserID, n.Name, n.Image)
	return errors.Cause(err)
}

// NPC returns the user's saved NPC, if any.
func (db *DB) NPC(userID discord.UserID) (n NPC, err error) {
	err = pgxscan.Get(context.Background(), db.Pool, &n,
		"select * from npcs where user_id = $1", userID)
	if pgxscan.NotFound(err) {
		return n, ErrNotFound
	}
	return n, errors.Cause(err)
}
