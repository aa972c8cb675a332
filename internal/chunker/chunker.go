package chunker

import (
	"strings"
)

const (
	// DefaultChunkSize is the default chunk budget in words. Word-count
	// windows approximate token budgets for downstream LLM consumption.
	DefaultChunkSize = 500
	// DefaultOverlap is the default number of trailing words repeated at the
	// start of the next chunk so context is not lost at a cut point.
	DefaultOverlap = 50
)

// SplitDefault splits text using the default chunk size and overlap.
func SplitDefault(text string) []Chunk {
	return Split(text, DefaultChunkSize, DefaultOverlap)
}

// Split converts raw document text into an ordered sequence of chunks.
// Paragraphs are packed greedily by word count so natural semantic units
// stay together when they fit; a paragraph larger than chunkSize is split
// alone with a sliding window of chunkSize words advancing by
// chunkSize-overlap words per step.
//
// Empty or whitespace-only text returns nil. Callers must ensure
// chunkSize > overlap >= 0; a non-advancing window (overlap >= chunkSize)
// is not guarded against.
func Split(text string, chunkSize, overlap int) []Chunk {
	clean := normalize(text)
	if clean == "" {
		return nil
	}

	var chunks []Chunk
	var segments []string
	wordCount := 0

	flush := func() {
		chunks = append(chunks, Chunk{
			Content:    strings.Join(segments, "\n\n"),
			ChunkIndex: len(chunks),
		})
		segments = nil
		wordCount = 0
	}

	for _, para := range splitParagraphs(clean) {
		words := strings.Fields(para)

		if len(words) > chunkSize {
			// Oversized paragraph: flush whatever is pending, then window
			// the paragraph on its own.
			if len(segments) > 0 {
				flush()
			}
			chunks = appendWindows(chunks, words, chunkSize, overlap)
			continue
		}

		if wordCount+len(words) > chunkSize && len(segments) > 0 {
			flush()

			// Seed the new chunk with the trailing words of the chunk just
			// emitted, as a segment of its own.
			prev := strings.Fields(chunks[len(chunks)-1].Content)
			n := overlap
			if n > len(prev) {
				n = len(prev)
			}
			if n > 0 {
				segments = append(segments, strings.Join(prev[len(prev)-n:], " "))
				wordCount = n
			}
		}

		segments = append(segments, para)
		wordCount += len(words)
	}

	if len(segments) > 0 {
		flush()
	}

	// Degenerate input where paragraph packing produced nothing: window the
	// whole cleaned text as one unit.
	if len(chunks) == 0 {
		chunks = appendWindows(chunks, strings.Fields(clean), chunkSize, overlap)
	}

	return chunks
}

// appendWindows emits fixed windows of chunkSize words advancing by
// chunkSize-overlap words per step. The final window always ends at the
// last word, even when it is shorter than a full step.
func appendWindows(chunks []Chunk, words []string, chunkSize, overlap int) []Chunk {
	step := chunkSize - overlap
	for start := 0; ; start += step {
		end := start + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, Chunk{
			Content:    strings.Join(words[start:end], " "),
			ChunkIndex: len(chunks),
		})
		if end >= len(words) {
			break
		}
	}
	return chunks
}

// normalize collapses runs of horizontal whitespace to single spaces while
// keeping newlines meaningful, and trims the edges of every line and of the
// text as a whole. Line-break variants all become a single "\n".
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// splitParagraphs splits normalized text on one-or-more consecutive
// newlines, dropping empty paragraphs.
func splitParagraphs(text string) []string {
	var paras []string
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			paras = append(paras, line)
		}
	}
	return paras
}
