package ingest

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"studydeck/internal/chunker"
	"studydeck/internal/contextutil"
	"studydeck/internal/extract"
	"studydeck/internal/storage"
)

// ErrEmptyDocument is returned when extraction yields no usable text.
var ErrEmptyDocument = errors.New("document contains no extractable text")

// Pipeline orchestrates document ingestion: extraction, chunking and storage.
type Pipeline struct {
	docRepo      storage.DocumentStore
	chunkRepo    storage.ChunkStore
	chunkSize    int
	chunkOverlap int
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(docRepo storage.DocumentStore, chunkRepo storage.ChunkStore, chunkSize, chunkOverlap int) *Pipeline {
	if chunkSize <= 0 {
		chunkSize = chunker.DefaultChunkSize
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = chunker.DefaultOverlap
		if chunkOverlap >= chunkSize {
			chunkOverlap = 0
		}
	}
	return &Pipeline{
		docRepo:      docRepo,
		chunkRepo:    chunkRepo,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// IngestDocument extracts text from an uploaded file, chunks it, and stores
// the document record with its chunks. A re-upload with unchanged content is
// detected via hash and skipped; changed content replaces the old chunks.
func (p *Pipeline) IngestDocument(ctx context.Context, userID, filename string, r io.Reader) (*storage.DocumentRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	text, err := extract.Extract(filename, r)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from %s: %w", filename, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	hash := sha256.Sum256([]byte(text))
	hashHex := fmt.Sprintf("%x", hash)

	existing, err := p.docRepo.GetByUserAndFilename(ctx, userID, filename)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing document: %w", err)
	}

	// Skip re-ingestion if content is unchanged.
	if existing != nil && existing.Hash == hashHex {
		logger.DebugContext(ctx, "skipping unchanged document", "filename", filename, "hash", hashHex)
		return existing, nil
	}

	chunks := chunker.Split(text, p.chunkSize, p.chunkOverlap)
	if len(chunks) == 0 {
		return nil, ErrEmptyDocument
	}

	docID := uuid.New().String()
	if existing != nil {
		docID = existing.ID
	}

	doc := &storage.DocumentRecord{
		ID:       docID,
		UserID:   userID,
		Filename: filename,
		Title:    titleFromFilename(filename),
		Hash:     hashHex,
	}
	if err := p.docRepo.Upsert(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to upsert document: %w", err)
	}

	if existing != nil {
		if err := p.chunkRepo.DeleteByDocument(ctx, docID); err != nil {
			return nil, fmt.Errorf("failed to delete old chunks: %w", err)
		}
	}

	for _, c := range chunks {
		record := &storage.ChunkRecord{
			ID:         uuid.New().String(),
			DocumentID: docID,
			ChunkIndex: c.ChunkIndex,
			PageNumber: c.PageNumber,
			Content:    c.Content,
		}
		if err := p.chunkRepo.Insert(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to insert chunk: %w", err)
		}
	}

	logger.InfoContext(ctx, "ingested document",
		"filename", filename, "document_id", docID, "chunks", len(chunks))
	return doc, nil
}

// titleFromFilename strips the extension from an upload filename.
func titleFromFilename(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
