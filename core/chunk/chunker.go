// Package chunk splits text into fixed-size character chunks so each piece
// fits a summarization model's input window.
// Chunks partition the input exactly: no overlap, no gaps.
package chunk

import "unicode/utf8"

// DefaultSize is the chunk length used when none is given.
const DefaultSize = 3500

// Chunker splits text into contiguous chunks of at most Size characters.
type Chunker struct {
	Size int // characters (runes) per chunk
}

// New creates a Chunker with the given chunk size.
// Defaults to DefaultSize if size <= 0.
func New(size int) *Chunker {
	if size <= 0 {
		size = DefaultSize
	}
	return &Chunker{Size: size}
}

// Chunk splits text left to right into chunks of Size characters; the
// last chunk may be shorter. Concatenating the result yields text.
// Boundaries fall on rune boundaries so multi-byte characters stay whole.
// A zero-value Chunker uses DefaultSize.
func (c *Chunker) Chunk(text string) []string {
	if text == "" {
		return nil
	}
	size := c.Size
	if size <= 0 {
		size = DefaultSize
	}

	chunks := make([]string, 0, utf8.RuneCountInString(text)/size+1)
	start, count := 0, 0
	for i := range text {
		if count == size {
			chunks = append(chunks, text[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(chunks, text[start:])
}

// Truncate returns at most limit characters of text.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	count := 0
	for i := range text {
		if count == limit {
			return text[:i]
		}
		count++
	}
	return text
}
