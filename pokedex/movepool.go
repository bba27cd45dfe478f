package pokedex

import "sort"

// Movepool is the set of moves a species can legally learn, split by
// learn method. Move names are stored normalized (see Fix).
type Movepool struct {
	Level map[int][]string `json:"level,omitempty"`
	TM    []string         `json:"tm,omitempty"`
	Egg   []string         `json:"egg,omitempty"`
	Tutor []string         `json:"tutor,omitempty"`
	Event []string         `json:"event,omitempty"`
	Other []string         `json:"other,omitempty"`
}

// Moves returns every distinct move in the pool, sorted.
func (p Movepool) Moves() []string {
	seen := map[string]struct{}{}
	add := func(names []string) {
		for _, n := range names {
			seen[Fix(n)] = struct{}{}
		}
	}

	for _, names := range p.Level {
		add(names)
	}
	add(p.TM)
	add(p.Egg)
	add(p.Tutor)
	add(p.Event)
	add(p.Other)

	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len returns the total number of distinct moves in the pool.
func (p Movepool) Len() int { return len(p.Moves()) }

// Contains reports whether the pool teaches the given move.
func (p Movepool) Contains(move string) bool {
	want := Fix(move)
	for _, n := range p.Moves() {
		if n == want {
			return true
		}
	}
	return false
}

// Union merges two movepools. Level entries are concatenated per level;
// the flat categories are concatenated and deduplicated by Moves().
func (p Movepool) Union(o Movepool) Movepool {
	out := Movepool{
		TM:    append(append([]string{}, p.TM...), o.TM...),
		Egg:   append(append([]string{}, p.Egg...), o.Egg...),
		Tutor: append(append([]string{}, p.Tutor...), o.Tutor...),
		Event: append(append([]string{}, p.Event...), o.Event...),
		Other: append(append([]string{}, p.Other...), o.Other...),
	}
	if len(p.Level) > 0 || len(o.Level) > 0 {
		out.Level = make(map[int][]string)
		for lvl, names := range p.Level {
			out.Level[lvl] = append(out.Level[lvl], names...)
		}
		for lvl, names := range o.Level {
			out.Level[lvl] = append(out.Level[lvl], names...)
		}
	}
	return out
}
