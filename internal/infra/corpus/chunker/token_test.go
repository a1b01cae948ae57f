package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkEmpty(t *testing.T) {
	c := NewTokenChunker(300, 50)
	require.Nil(t, c.Chunk(""))
	require.Nil(t, c.Chunk("   \n  "))
}

func TestChunkShortText(t *testing.T) {
	c := NewTokenChunker(300, 50)
	out := c.Chunk("Remove stagnant water from flower pot plates.")
	require.Len(t, out, 1)
	require.Equal(t, 0, out[0].Index)
	require.Equal(t, "Remove stagnant water from flower pot plates.", out[0].Content)
	require.Positive(t, out[0].TokenCount)
}

func TestChunkSplitsLongText(t *testing.T) {
	c := NewTokenChunker(20, 5)
	text := strings.Repeat("advisory guidance on outdoor activity ", 40)
	out := c.Chunk(text)
	require.Greater(t, len(out), 1)
	for i, chunk := range out {
		require.Equal(t, i, chunk.Index)
		require.LessOrEqual(t, chunk.TokenCount, 20+5)
		require.NotEmpty(t, chunk.Content)
	}
}

func TestChunkOverlapCarriesTail(t *testing.T) {
	c := NewTokenChunker(20, 5)
	text := strings.Repeat("w ", 200)
	out := c.Chunk(text)
	require.Greater(t, len(out), 1)
	// Every later chunk starts with words already seen at the end of the
	// previous one.
	prev := strings.Fields(out[0].Content)
	next := strings.Fields(out[1].Content)
	require.Equal(t, prev[len(prev)-1], next[0])
}

func TestChunkDefaults(t *testing.T) {
	c := NewTokenChunker(0, -1)
	require.Equal(t, 300, c.MaxTokens)
	require.Equal(t, 0, c.Overlap)
}
