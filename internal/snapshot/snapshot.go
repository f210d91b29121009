// Package snapshot exports and imports every persisted apiary key as one zstd-compressed document.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/osse101/Apiary_Go/internal/clock"
	"github.com/osse101/Apiary_Go/internal/domain"
	"github.com/osse101/Apiary_Go/internal/logger"
	"github.com/osse101/Apiary_Go/internal/storage"
	"github.com/osse101/Apiary_Go/internal/validation"
)

// Document is the uncompressed snapshot. Entries hold each key's raw JSON text.
type Document struct {
	Version    string            `json:"version"`
	ExportedAt time.Time         `json:"exportedAt"`
	Entries    map[string]string `json:"entries"`
}

// Service moves documents between a store and a byte stream
type Service struct {
	clock     clock.Clock
	validator validation.SchemaValidator
}

// NewService creates a snapshot service
func NewService(c clock.Clock, v validation.SchemaValidator) *Service {
	return &Service{clock: c, validator: v}
}

// Export writes every present key to w and returns the number of entries
func (s *Service) Export(ctx context.Context, store storage.Store, w io.Writer) (int, error) {
	doc := Document{
		Version:    FormatVersion,
		ExportedAt: s.clock.Now().UTC(),
		Entries:    make(map[string]string),
	}
	for _, key := range storage.Keys() {
		v, ok, err := store.Get(ctx, key)
		if err != nil {
			return 0, fmt.Errorf("%w: read %s: %v", domain.ErrPersistence, key, err)
		}
		if ok {
			doc.Entries[key] = v
		}
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, err
	}
	if err := json.NewEncoder(enc).Encode(doc); err != nil {
		enc.Close()
		return 0, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("compress snapshot: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgExported, "entries", len(doc.Entries))
	return len(doc.Entries), nil
}

// Read decompresses and validates a document without touching any store
func (s *Service) Read(r io.Reader) (Document, error) {
	var doc Document

	dec, err := zstd.NewReader(r)
	if err != nil {
		return doc, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgInvalidFormat, err)
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return doc, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgInvalidFormat, err)
	}
	if err := s.validator.ValidateBytes(raw, SchemaName); err != nil {
		return doc, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgInvalidFormat, err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgInvalidFormat, err)
	}

	for key, value := range doc.Entries {
		if !storage.IsKnownKey(key) {
			return doc, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownKey, key)
		}
		if !json.Valid([]byte(value)) {
			return doc, fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, ErrMsgInvalidEntry, key)
		}
		if s.validator.HasSchema(key) {
			if err := s.validator.ValidateBytes([]byte(value), key); err != nil {
				return doc, fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
			}
		}
	}
	return doc, nil
}

// Import validates the whole document first and only then writes its keys
func (s *Service) Import(ctx context.Context, store storage.Store, r io.Reader) (int, error) {
	doc, err := s.Read(r)
	if err != nil {
		return 0, err
	}
	if err := storage.SetAll(ctx, store, doc.Entries); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	logger.FromContext(ctx).Info(LogMsgImported, "entries", len(doc.Entries), "exported_at", doc.ExportedAt)
	return len(doc.Entries), nil
}
