package chunk

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunker_Chunk(t *testing.T) {
	t.Run("Should split 10000 characters into 3500, 3500, 3000", func(t *testing.T) {
		text := strings.Repeat("a", 10000)

		chunks := New(3500).Chunk(text)

		require.Len(t, chunks, 3)
		assert.Len(t, chunks[0], 3500)
		assert.Len(t, chunks[1], 3500)
		assert.Len(t, chunks[2], 3000)
	})

	t.Run("Should reconstruct the input when chunks are concatenated", func(t *testing.T) {
		inputs := []string{
			"x",
			"abcdefghij",
			strings.Repeat("0123456789", 701),
			"héllo wörld — ünïcode ✓ " + strings.Repeat("日本語", 50),
		}
		for _, size := range []int{1, 3, 7, 3500} {
			c := New(size)
			for _, in := range inputs {
				chunks := c.Chunk(in)
				assert.Equal(t, in, strings.Join(chunks, ""), "size %d", size)
				for i, ch := range chunks {
					n := utf8.RuneCountInString(ch)
					assert.LessOrEqual(t, n, size)
					if i < len(chunks)-1 {
						assert.Equal(t, size, n, "only the last chunk may be short")
					}
					assert.True(t, utf8.ValidString(ch))
				}
			}
		}
	})

	t.Run("Should return a single chunk for short text", func(t *testing.T) {
		assert.Equal(t, []string{"short"}, New(3500).Chunk("short"))
	})

	t.Run("Should return a single chunk when text length equals the size", func(t *testing.T) {
		assert.Equal(t, []string{"abc"}, New(3).Chunk("abc"))
	})

	t.Run("Should return nil for empty text", func(t *testing.T) {
		assert.Nil(t, New(10).Chunk(""))
	})

	t.Run("Should use the default size for a zero-value chunker", func(t *testing.T) {
		text := strings.Repeat("q", DefaultSize+1)

		var chunks []string
		require.NotPanics(t, func() { chunks = (&Chunker{}).Chunk(text) })

		require.Len(t, chunks, 2)
		assert.Len(t, chunks[0], DefaultSize)
		assert.Equal(t, "q", chunks[1])
	})

	t.Run("Should default the size when non-positive", func(t *testing.T) {
		assert.Equal(t, DefaultSize, New(0).Size)
		assert.Equal(t, DefaultSize, New(-5).Size)
	})
}

func TestTruncate(t *testing.T) {
	t.Run("Should cut to the character cap", func(t *testing.T) {
		assert.Equal(t, "abc", Truncate("abcdef", 3))
	})

	t.Run("Should leave shorter text alone", func(t *testing.T) {
		assert.Equal(t, "ab", Truncate("ab", 3))
	})

	t.Run("Should count runes, not bytes", func(t *testing.T) {
		out := Truncate("ééééé", 2)
		assert.Equal(t, "éé", out)
		assert.Equal(t, 2, utf8.RuneCountInString(out))
	})

	t.Run("Should return empty for a non-positive cap", func(t *testing.T) {
		assert.Empty(t, Truncate("abc", 0))
	})
}
