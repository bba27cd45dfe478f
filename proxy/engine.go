// Package proxy implements webhook proxying: messages matching a user's
// registered tags are reposted under their character's name and avatar,
// and the trigger message is deleted.
package proxy

import (
	"strings"

	"emperror.dev/errors"
)

// ErrInvalidTag is returned for tag strings without the word "text".
const ErrInvalidTag = errors.Sentinel("proxy: tag must contain the word \"text\"")

// Tag is a prefix/suffix pair that triggers a proxy.
type Tag struct {
	Prefix string
	Suffix string
}

// ParseTag parses a user-written tag string such as "k:text" or
// "[text]". The literal word "text" stands for the message content.
func ParseTag(s string) (Tag, error) {
	prefix, suffix, ok := strings.Cut(s, "text")
	if !ok {
		return Tag{}, ErrInvalidTag
	}

	t := Tag{
		Prefix: strings.TrimLeft(prefix, " "),
		Suffix: strings.TrimRight(suffix, " "),
	}
	if t.Prefix == "" && t.Suffix == "" {
		return Tag{}, ErrInvalidTag
	}
	return t, nil
}

// String renders the tag back in its user-written form.
func (t Tag) String() string {
	return t.Prefix + "text" + t.Suffix
}

// Match tests the tag against a line and returns the inner content.
func (t Tag) Match(line string) (content string, ok bool) {
	if len(line) <= len(t.Prefix)+len(t.Suffix) {
		return "", false
	}
	if !strings.HasPrefix(line, t.Prefix) || !strings.HasSuffix(line, t.Suffix) {
		return "", false
	}

	content = strings.TrimSpace(line[len(t.Prefix) : len(line)-len(t.Suffix)])
	if content == "" {
		return "", false
	}
	return content, true
}

// Member is a proxyable identity: a character, or one of its variants,
// with the display name and avatar already resolved.
type Member struct {
	ProxyID     int64
	CharacterID int64
	Variant     string

	Name   string
	Avatar string

	Tags []Tag
}

func (m *Member) match(line string) (content string, ok bool) {
	for _, t := range m.Tags {
		if c, ok := t.Match(line); ok {
			return c, true
		}
	}
	return "", false
}

// Segment is a run of message content attributed to one member.
type Segment struct {
	Member  *Member
	Content string
}

// Lookup splits a message into proxied segments. Each line is tested
// against every member's tags; a matching line starts a run, and
// following non-matching lines attach to the current run. If the first
// line matches nothing the whole content is tested instead. A nil return
// means no proxy fired.
func Lookup(content string, members []*Member) []Segment {
	lines := strings.Split(content, "\n")

	var segments []Segment
	matched := false

	for _, line := range lines {
		attributed := false
		for _, m := range members {
			c, ok := m.match(strings.TrimSpace(line))
			if !ok {
				continue
			}

			matched = true
			attributed = true
			if n := len(segments); n > 0 && segments[n-1].Member == m {
				segments[n-1].Content += "\n" + c
			} else {
				segments = append(segments, Segment{Member: m, Content: c})
			}
			break
		}

		if !attributed {
			if len(segments) == 0 {
				// first line matched nothing: only the
				// whole-content fallback can still fire
				break
			}
			segments[len(segments)-1].Content += "\n" + line
		}
	}

	if matched {
		return segments
	}

	// whole-content fallback, for tags wrapping a multi-line message
	whole := strings.TrimSpace(content)
	for _, m := range members {
		if c, ok := m.match(whole); ok {
			return []Segment{{Member: m, Content: c}}
		}
	}
	return nil
}
