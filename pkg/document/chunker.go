package document

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultChunkTokens keeps each ingest request comfortably under the
// service's 50K character document limit.
const DefaultChunkTokens = 8000

// TokenCounter reports how many tokens a string encodes to.
type TokenCounter interface {
	CountTokens(text string) int
}

// TiktokenCounter counts tokens with the cl100k_base encoding.
type TiktokenCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewTiktokenCounter initializes the tiktoken encoding. This can fail when
// the encoding data is unavailable; callers may fall back to
// EstimateCounter.
func NewTiktokenCounter() (*TiktokenCounter, error) {
	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, err
	}
	return &TiktokenCounter{encoding: encoding}, nil
}

// CountTokens returns the exact token count of text.
func (c *TiktokenCounter) CountTokens(text string) int {
	return len(c.encoding.Encode(text, nil, nil))
}

// EstimateCounter approximates tokens as one per four characters, the usual
// rule of thumb for English text.
type EstimateCounter struct{}

func (EstimateCounter) CountTokens(text string) int {
	return (len(text) + 3) / 4
}

// Chunker splits text into pieces that each fit a token budget.
type Chunker struct {
	counter   TokenCounter
	maxTokens int
}

// NewChunker creates a chunker with the given counter and per-chunk token
// budget. A nil counter uses EstimateCounter; a non-positive budget uses
// DefaultChunkTokens.
func NewChunker(counter TokenCounter, maxTokens int) *Chunker {
	if counter == nil {
		counter = EstimateCounter{}
	}
	if maxTokens <= 0 {
		maxTokens = DefaultChunkTokens
	}
	return &Chunker{counter: counter, maxTokens: maxTokens}
}

// Split breaks text into chunks of at most the configured token budget,
// preferring paragraph boundaries, then line boundaries, then words.
// Empty input yields no chunks.
func (c *Chunker) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if c.counter.CountTokens(text) <= c.maxTokens {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}

		pieces := []string{paragraph}
		if c.counter.CountTokens(paragraph) > c.maxTokens {
			pieces = c.splitOversized(paragraph)
		}

		for _, piece := range pieces {
			candidate := piece
			if current.Len() > 0 {
				candidate = current.String() + "\n\n" + piece
			}
			if c.counter.CountTokens(candidate) > c.maxTokens {
				flush()
				current.WriteString(piece)
				continue
			}
			current.Reset()
			current.WriteString(candidate)
		}
	}
	flush()

	return chunks
}

// splitOversized breaks a paragraph that alone exceeds the budget, first by
// lines and, when a single line is still too large, by words.
func (c *Chunker) splitOversized(paragraph string) []string {
	var pieces []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			pieces = append(pieces, current.String())
			current.Reset()
		}
	}

	appendUnit := func(unit, separator string) {
		candidate := unit
		if current.Len() > 0 {
			candidate = current.String() + separator + unit
		}
		if c.counter.CountTokens(candidate) > c.maxTokens {
			flush()
			current.WriteString(unit)
			return
		}
		current.Reset()
		current.WriteString(candidate)
	}

	for _, line := range strings.Split(paragraph, "\n") {
		if c.counter.CountTokens(line) <= c.maxTokens {
			appendUnit(line, "\n")
			continue
		}
		for _, word := range strings.Fields(line) {
			appendUnit(word, " ")
		}
	}
	flush()

	return pieces
}
