package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitforge/kitforge/text"
)

func TestClean(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name, in, want string
	}{
		{"plain", "hello world", "hello world"},
		{"outer whitespace", "  hello world  ", "hello world"},
		{"inner runs", "hello    world", "hello world"},
		{"tabs and newlines", "\thello\n\nworld\t", "hello world"},
		{"empty", "", ""},
		{"only whitespace", "   \n\t ", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, text.Clean(tc.in))
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name, in, want string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation dropped", "Hello, World!", "hello-world"},
		{"underscores collapse", "snake_case_name", "snake-case-name"},
		{"mixed separators", "a _ b - c", "a-b-c"},
		{"diacritics folded", "Crème Brûlée", "creme-brulee"},
		{"numbers kept", "Go 1.23 Release", "go-123-release"},
		{"outer separators trimmed", " -hello- ", "hello"},
		{"empty", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, text.Slugify(tc.in))
		})
	}
}

func TestBetween(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name, s, left, right, want string
	}{
		{"simple", "a[b]c", "[", "]", "b"},
		{"first match wins", "x<1>y<2>z", "<", ">", "1"},
		{"multichar markers", "begin middle end", "begin ", " end", "middle"},
		{"left missing", "abc", "[", "]", ""},
		{"right missing", "a[bc", "[", "]", ""},
		{"right before left only", "]a[b", "[", "]", ""},
		{"empty markers", "abc", "", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, text.Between(tc.s, tc.left, tc.right))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	got, err := text.Truncate("hello", 3)
	require.NoError(t, err)
	assert.Equal(t, "hel", got)

	got, err = text.Truncate("hi", 10)
	require.NoError(t, err)
	assert.Equal(t, "hi", got, "short input passes through")

	got, err = text.Truncate("héllo", 2)
	require.NoError(t, err)
	assert.Equal(t, "hé", got, "multi-byte runes are never split")

	got, err = text.Truncate("abc", 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = text.Truncate("abc", -1)
	assert.ErrorIs(t, err, text.ErrNegativeLimit)
}
