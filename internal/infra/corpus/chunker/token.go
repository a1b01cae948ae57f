// Package chunker splits extracted corpus text into overlapping pieces
// sized by token count.
package chunker

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"

	domain "github.com/steadyday/steadyday/internal/domain/corpus"
)

const encodingName = "cl100k_base"

// TokenChunker splits text into segments of at most MaxTokens tokens with
// Overlap tokens carried between consecutive segments. Token counts come
// from the cl100k_base encoding; if the encoder cannot be initialized the
// chunker falls back to whitespace word counts.
type TokenChunker struct {
	MaxTokens int
	Overlap   int
	encoder   *tiktoken.Tiktoken
}

// NewTokenChunker constructs a chunker with defaults.
func NewTokenChunker(maxTokens, overlap int) *TokenChunker {
	if maxTokens <= 0 {
		maxTokens = 300
	}
	if overlap < 0 || overlap >= maxTokens {
		overlap = 0
	}
	encoder, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		encoder = nil
	}
	return &TokenChunker{MaxTokens: maxTokens, Overlap: overlap, encoder: encoder}
}

// Chunk splits by lines and then by token budget.
func (c *TokenChunker) Chunk(text string) []domain.ChunkCandidate {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var (
		current strings.Builder
		index   int
		out     []domain.ChunkCandidate
	)

	flush := func() {
		content := strings.TrimSpace(current.String())
		if content == "" {
			current.Reset()
			return
		}
		out = append(out, domain.ChunkCandidate{
			Index:      index,
			Content:    content,
			TokenCount: c.countTokens(content),
		})
		index++
		current.Reset()
	}

	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' }) {
		for _, word := range strings.Fields(line) {
			if c.countTokens(current.String()+word) >= c.MaxTokens {
				flush()
				if c.Overlap > 0 && len(out) > 0 {
					current.WriteString(c.tail(out[len(out)-1].Content))
				}
			}
			current.WriteString(word)
			current.WriteString(" ")
		}
		current.WriteString("\n")
	}
	if current.Len() > 0 {
		flush()
	}
	return out
}

func (c *TokenChunker) countTokens(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	if c.encoder != nil {
		return len(c.encoder.Encode(text, nil, nil))
	}
	return len(strings.Fields(text))
}

// tail returns the last Overlap words of the previous chunk to seed the
// next one. Word granularity is close enough to token granularity here.
func (c *TokenChunker) tail(content string) string {
	words := strings.Fields(content)
	if len(words) <= c.Overlap {
		return content + " "
	}
	return strings.Join(words[len(words)-c.Overlap:], " ") + " "
}

var _ domain.Chunker = (*TokenChunker)(nil)
