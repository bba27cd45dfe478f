package db

import (
	"context"

	"emperror.dev/errors"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/georgysavva/scany/pgxscan"
)

// Proxy links a character (or one of its variants) to a set of trigger
// tags. The base proxy has an empty variant name; variants inherit the
// character's name and image unless they override them.
type Proxy struct {
	ID          int64
	UserID      discord.UserID
	CharacterID int64
	Variant     string
	Image       string

	Tags []ProxyTag `db:"-"`
}

// ProxyTag is a prefix/suffix pair that triggers a proxy. A message (or
// line) matches when it starts with the prefix and ends with the suffix.
type ProxyTag struct {
	ID      int64
	ProxyID int64
	Prefix  string
	Suffix  string
}

// UserProxies returns all of a user's proxies with their tags loaded.
func (db *DB) UserProxies(userID discord.UserID) (ps []Proxy, err error) {
	ctx := context.Background()

	err = pgxscan.Select(ctx, db.Pool, &ps,
		"select * from proxies where user_id = $1 order by character_id, variant", userID)
	if err != nil {
		return nil, errors.Cause(err)
	}
	if len(ps) == 0 {
		return ps, nil
	}

	ids := make([]int64, len(ps))
	index := make(map[int64]*Proxy, len(ps))
	for i := range ps {
		ids[i] = ps[i].ID
		index[ps[i].ID] = &ps[i]
	}

	var tags []ProxyTag
	err = pgxscan.Select(ctx, db.Pool, &tags,
		"select * from proxy_tags where proxy_id = any($1) order by id", ids)
	if err != nil {
		return nil, errors.Cause(err)
	}

	for _, t := range tags {
		p := index[t.ProxyID]
		p.Tags = append(p.Tags, t)
	}
	return ps, nil
}

// CharacterProxies returns the proxies for a single character.
func (db *DB) CharacterProxies(userID discord.UserID, characterID int64) (ps []Proxy, err error) {
	all, err := db.UserProxies(userID)
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if p.CharacterID == characterID {
			ps = append(ps, p)
		}
	}
	return ps, nil
}

// UpsertProxy creates a proxy for the character/variant pair, or updates
// its image if it already exists.
func (db *DB) UpsertProxy(userID discord.UserID, characterID int64, variant, image string) (p Proxy, err error) {
	err = pgxscan.Get(context.Background(), db.Pool, &p,
		`insert into proxies (user_id, character_id, variant, image) values ($1, $2, $3, $4)
		on conflict (user_id, character_id, variant) do update set image = $4
		returning *`, userID, characterID, variant, image)
	return p, errors.Cause(err)
}

// AddProxyTag attaches a tag pair to a proxy. Duplicate pairs are ignored.
func (db *DB) AddProxyTag(proxyID int64, prefix, suffix string) (t ProxyTag, err error) {
	err = pgxscan.Get(context.Background(), db.Pool, &t,
		`insert into proxy_tags (proxy_id, prefix, suffix) values ($1, $2, $3)
		on conflict (proxy_id, prefix, suffix) do update set prefix = $2
		returning *`, proxyID, prefix, suffix)
	return t, errors.Cause(err)
}

// ClearProxyTags removes all tags from a proxy.
func (db *DB) ClearProxyTags(proxyID int64) error {
	_, err := db.Pool.Exec(context.Background(), "delete from proxy_tags where proxy_id = $1", proxyID)
	return errors.Cause(err)
}

// DeleteProxy deletes a proxy and its tags.
func (db *DB) DeleteProxy(id int64) error {
	_, err := db.Pool.Exec(context.Background(), "delete from proxies where id = $1", id)
	return errors.Cause(err)
}

// DeleteCharacterProxies deletes every proxy of a character, returning
// how many were removed.
func (db *DB) DeleteCharacterProxies(userID discord.UserID, characterID int64) (int64, error) {
	ct, err := db.Pool.Exec(context.Background(),
		"delete from proxies where user_id = $1 and character_id = $2", userID, characterID)
	return ct.RowsAffected(), errors.Cause(err)
}
