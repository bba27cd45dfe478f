package proxy

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	tag, err := ParseTag("k:text")
	require.NoError(t, err)
	assert.Equal(t, Tag{Prefix: "k:"}, tag)
	assert.Equal(t, "k:text", tag.String())

	tag, err = ParseTag("[text]")
	require.NoError(t, err)
	assert.Equal(t, Tag{Prefix: "[", Suffix: "]"}, tag)

	tag, err = ParseTag("text -k")
	require.NoError(t, err)
	assert.Equal(t, Tag{Suffix: " -k"}, tag)

	_, err = ParseTag("k:")
	assert.ErrorIs(t, err, ErrInvalidTag)

	_, err = ParseTag("text")
	assert.ErrorIs(t, err, ErrInvalidTag, "bare tag matches everything")
}

func TestTagMatch(t *testing.T) {
	tag := Tag{Prefix: "k:"}

	c, ok := tag.Match("k:hello there")
	require.True(t, ok)
	assert.Equal(t, "hello there", c)

	_, ok = tag.Match("k:")
	assert.False(t, ok, "empty content shouldn't match")

	_, ok = tag.Match("hello k:there")
	assert.False(t, ok)

	tag = Tag{Prefix: "{", Suffix: "}"}
	c, ok = tag.Match("{quoted}")
	require.True(t, ok)
	assert.Equal(t, "quoted", c)
}

func members() (k, v *Member) {
	k = &Member{
		CharacterID: 1,
		Name:        "Kira",
		Tags:        []Tag{{Prefix: "k:"}},
	}
	v = &Member{
		CharacterID: 2,
		Name:        "Vesper",
		Tags:        []Tag{{Prefix: "v:"}, {Prefix: "{", Suffix: "}"}},
	}
	return k, v
}

func TestLookupSingle(t *testing.T) {
	k, v := members()

	segs := Lookup("k:hello", []*Member{k, v})
	require.Len(t, segs, 1)
	assert.Equal(t, k, segs[0].Member)
	assert.Equal(t, "hello", segs[0].Content)
}

func TestLookupNoMatch(t *testing.T) {
	k, v := members()

	assert.Nil(t, Lookup("just a normal message", []*Member{k, v}))
	assert.Nil(t, Lookup("", []*Member{k, v}))
}

func TestLookupRuns(t *testing.T) {
	k, v := members()

	content := strings.Join([]string{
		"k:first line",
		"continues here",
		"v:now someone else",
		"k:and back",
	}, "\n")

	segs := Lookup(content, []*Member{k, v})
	require.Len(t, segs, 3)

	assert.Equal(t, k, segs[0].Member)
	assert.Equal(t, "first line\ncontinues here", segs[0].Content)
	assert.Equal(t, v, segs[1].Member)
	assert.Equal(t, "now someone else", segs[1].Content)
	assert.Equal(t, k, segs[2].Member)
	assert.Equal(t, "and back", segs[2].Content)
}

func TestLookupMergesSameMember(t *testing.T) {
	k, _ := members()

	segs := Lookup("k:one\nk:two", []*Member{k})
	require.Len(t, segs, 1)
	assert.Equal(t, "one\ntwo", segs[0].Content)
}

func TestLookupWholeContentFallback(t *testing.T) {
	_, v := members()

	// tags wrap the whole multi-line message
	segs := Lookup("{a poem\nspanning lines}", []*Member{v})
	require.Len(t, segs, 1)
	assert.Equal(t, v, segs[0].Member)
	assert.Equal(t, "a poem\nspanning lines", segs[0].Content)
}

func TestLookupFirstLineNoMatch(t *testing.T) {
	k, _ := members()

	// a matching line later in the message doesn't fire when the
	// first line is unattributed
	assert.Nil(t, Lookup("narration first\nk:too late", []*Member{k}))
}

func TestSafeUsername(t *testing.T) {
	assert.Equal(t, "Kira", SafeUsername("Kira"))

	safe := SafeUsername("Clyde Jr.")
	assert.NotContains(t, strings.ToLower(safe), "clyde")
	assert.Equal(t, "Cl yde Jr.", safe)

	safe = SafeUsername("CLYDECLYDE")
	assert.NotContains(t, strings.ToLower(safe), "clyde")

	long := strings.Repeat("a", 100)
	assert.Len(t, SafeUsername(long), 80)

	// truncation may not split a multi-byte rune
	safe = SafeUsername(strings.Repeat("é", 100))
	assert.True(t, utf8.ValidString(safe))
	assert.Equal(t, 80, utf8.RuneCountInString(safe))
}

func TestAlternate(t *testing.T) {
	assert.Equal(t, "K ira", Alternate("Kira"))
	assert.Equal(t, "É lan", Alternate("Élan"), "splits on runes, not bytes")
	assert.Equal(t, " ", Alternate(""))
}
