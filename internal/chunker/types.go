package chunker

// Chunk represents a bounded slice of document text.
type Chunk struct {
	Content    string // Chunk text content
	ChunkIndex int    // Position in document order (starts at 0)
	PageNumber int    // Page attribution placeholder (always 0 for now)
}

// RankedChunk is a chunk decorated with a lexical relevance score.
type RankedChunk struct {
	Chunk
	Score int // Total substring match count for the query tokens
}
