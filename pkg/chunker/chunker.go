// Package chunker splits flattened document text into bounded, overlapping
// chunks for embedding.
package chunker

import (
	"strings"
)

const (
	DefaultChunkSize    = 800
	DefaultChunkOverlap = 100
)

// separators ordered from coarsest to finest; the splitter always falls back
// to a harder cut when no separator fits inside the window.
var separators = []string{"\n\n", "\n", " ", ""}

type Splitter struct {
	chunkSize    int
	chunkOverlap int
}

func NewSplitter(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = DefaultChunkOverlap
	}

	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// SplitText cuts text into chunks of at most chunkSize characters, preferring
// paragraph, then line, then word boundaries, with chunkOverlap characters
// repeated between consecutive chunks.
func (s *Splitter) SplitText(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var chunks []string
	runes := []rune(text)

	start := 0
	for start < len(runes) {
		end := start + s.chunkSize
		if end >= len(runes) {
			chunk := strings.TrimSpace(string(runes[start:]))
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
			break
		}

		cutAt := s.findCut(runes, start, end)

		chunk := strings.TrimSpace(string(runes[start:cutAt]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		nextStart := cutAt - s.chunkOverlap
		if nextStart <= start {
			nextStart = cutAt
		}
		start = nextStart
	}

	return chunks
}

func (s *Splitter) findCut(runes []rune, start, end int) int {
	window := string(runes[start:end])

	for _, separator := range separators {
		if separator == "" {
			break
		}

		cut := strings.LastIndex(window, separator)
		if cut <= 0 {
			continue
		}

		return start + len([]rune(window[:cut])) + len([]rune(separator))
	}

	return end
}
