package chunker

import (
	"sort"
	"strings"
)

// DefaultTopK is the default number of ranked chunks returned to the caller.
const DefaultTopK = 5

// stopwords is the closed set of low-information words excluded from query
// tokenization. Built once at init; scoring never mutates it.
var stopwords = map[string]struct{}{
	"what": {}, "is": {}, "the": {}, "of": {}, "as": {}, "in": {}, "a": {},
	"an": {}, "and": {}, "or": {}, "to": {}, "that": {}, "this": {}, "it": {},
	"for": {}, "on": {}, "are": {}, "was": {}, "with": {}, "by": {}, "at": {},
	"from": {}, "stated": {}, "text": {}, "me": {}, "tell": {}, "about": {},
	"does": {},
}

// Rank selects the topK chunks most relevant to query by lexical overlap.
// Each surviving query token contributes its case-insensitive substring
// occurrence count within a chunk's content; a token can match inside a
// longer word. Ties keep the relative order of the input sequence.
//
// A query whose tokens are all filtered out returns the first topK chunks
// unranked, and a query matching nothing falls back to scoring the full
// chunk list, so downstream LLM calls always receive some context.
// An empty chunk list or empty query returns nil. topK <= 0 means
// DefaultTopK.
func Rank(chunks []Chunk, query string, topK int) []RankedChunk {
	if len(chunks) == 0 || query == "" {
		return nil
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	tokens := tokenizeQuery(query)
	if len(tokens) == 0 {
		// Relevance cannot be determined; hand back the head of the list
		// in its given order rather than failing.
		out := make([]RankedChunk, 0, topK)
		for _, c := range chunks {
			if len(out) == topK {
				break
			}
			out = append(out, RankedChunk{Chunk: c})
		}
		return out
	}

	scored := make([]RankedChunk, 0, len(chunks))
	for _, c := range chunks {
		content := strings.ToLower(c.Content)
		score := 0
		for _, tok := range tokens {
			score += strings.Count(content, tok)
		}
		scored = append(scored, RankedChunk{Chunk: c, Score: score})
	}

	candidates := make([]RankedChunk, 0, len(scored))
	for _, rc := range scored {
		if rc.Score > 0 {
			candidates = append(candidates, rc)
		}
	}
	if len(candidates) == 0 {
		candidates = scored
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > topK {
		candidates = candidates[:topK]
	}
	return candidates
}

// tokenizeQuery lowercases and whitespace-splits the query, discarding
// tokens of length <= 2 and tokens in the stop-word set.
func tokenizeQuery(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 2 {
			continue
		}
		if _, stop := stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
