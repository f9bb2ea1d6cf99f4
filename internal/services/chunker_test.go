package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_ShortTextSingleChunk(t *testing.T) {
	tc := NewTextChunker()

	chunks := tc.ChunkText("A short job description.", 1000, 200)
	require.Len(t, chunks, 1)
	assert.Equal(t, "A short job description.", chunks[0])
}

func TestChunkText_EmptyText(t *testing.T) {
	tc := NewTextChunker()

	assert.Empty(t, tc.ChunkText("", 1000, 200))
	assert.Empty(t, tc.ChunkText("\n\n  \n\n", 1000, 200))
}

func TestChunkText_SplitsLongTextIntoMultipleChunks(t *testing.T) {
	tc := NewTextChunker()

	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("This paragraph describes one responsibility of the role in some detail.")
		sb.WriteString("\n\n")
	}

	chunks := tc.ChunkText(sb.String(), 300, 50)
	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 300+50+2, "chunk %d too large", i)
		assert.NotEmpty(t, strings.TrimSpace(chunk))
	}
}

func TestChunkText_OverlapCarriesTextBetweenChunks(t *testing.T) {
	tc := NewTextChunker()

	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString("Responsibility paragraph with enough words to force chunk boundaries.")
		sb.WriteString("\n\n")
	}

	chunks := tc.ChunkText(sb.String(), 200, 60)
	require.Greater(t, len(chunks), 1)

	tail := getLastNChars(chunks[0], 60)
	assert.True(t, strings.HasPrefix(chunks[1], tail), "second chunk starts with the tail of the first")
}

func TestChunkText_DefaultsOnInvalidParams(t *testing.T) {
	tc := NewTextChunker()

	// Zero chunk size and oversized overlap fall back to sane values
	// instead of looping forever.
	chunks := tc.ChunkText("some text", 0, -5)
	require.Len(t, chunks, 1)

	chunks = tc.ChunkText("some text", 100, 500)
	require.Len(t, chunks, 1)
}

func TestGetLastNChars(t *testing.T) {
	assert.Equal(t, "", getLastNChars("hello", 0))
	assert.Equal(t, "llo", getLastNChars("hello", 3))
	assert.Equal(t, "hello", getLastNChars("hello", 10))
}

func TestSplitIntoSentences(t *testing.T) {
	got := splitIntoSentences("First sentence. Second one! Third? ")
	assert.Equal(t, []string{"First sentence", "Second one", "Third"}, got)
}
