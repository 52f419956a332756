// Package attachment stores uploaded files: the bytes in S3, the metadata in
// DynamoDB. Object keys are derived from the generated attachment id, so the
// two records can always be correlated.
package attachment

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/go-inventory-api/internal/domain"
	"github.com/go-inventory-api/internal/pkg/id"
)

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type metadataStore interface {
	Put(ctx context.Context, a *domain.Attachment) error
	Get(ctx context.Context, attachmentID string) (*domain.Attachment, error)
	Delete(ctx context.Context, attachmentID string) error
}

type Service struct {
	objects objectStore
	records metadataStore
}

func NewService(objects objectStore, records metadataStore) *Service {
	return &Service{objects: objects, records: records}
}

// Upload reads the file fully to compute its size and SHA-256 digest, stores
// the bytes in S3, then writes the metadata record.
func (s *Service) Upload(ctx context.Context, name, contentType, uploadedBy string, r io.Reader) (*domain.Attachment, error) {
	if name == "" {
		return nil, &domain.ValidationError{Messages: []string{"file name is required"}}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, &domain.ValidationError{Messages: []string{"file is empty"}}
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	sum := sha256.Sum256(data)
	now := time.Now().UTC()
	a := &domain.Attachment{
		AttachmentID: id.New(),
		Name:         name,
		Size:         int64(len(data)),
		ContentType:  contentType,
		Hash:         hex.EncodeToString(sum[:]),
		UploadedBy:   uploadedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	a.Key = objectKey(a.AttachmentID, name)

	if err := s.objects.Upload(ctx, a.Key, bytes.NewReader(data), contentType); err != nil {
		return nil, err
	}
	if err := s.records.Put(ctx, a); err != nil {
		// The metadata write failed, so the object is unreachable. Best effort
		// cleanup keeps the bucket from accumulating orphans.
		_ = s.objects.Delete(ctx, a.Key)
		return nil, err
	}
	return a, nil
}

// Download resolves the metadata record and streams the object.
func (s *Service) Download(ctx context.Context, attachmentID string) (*domain.Attachment, io.ReadCloser, error) {
	if !id.Valid(attachmentID) {
		return nil, nil, fmt.Errorf("id %q: %w", attachmentID, domain.ErrInvalidID)
	}
	a, err := s.records.Get(ctx, attachmentID)
	if err != nil {
		return nil, nil, err
	}
	body, err := s.objects.Download(ctx, a.Key)
	if err != nil {
		return nil, nil, err
	}
	return a, body, nil
}

// Delete removes the object first, then the record. A record without an
// object would 500 on download; an object without a record is merely
// unreachable.
func (s *Service) Delete(ctx context.Context, attachmentID string) error {
	if !id.Valid(attachmentID) {
		return fmt.Errorf("id %q: %w", attachmentID, domain.ErrInvalidID)
	}
	a, err := s.records.Get(ctx, attachmentID)
	if err != nil {
		return err
	}
	if err := s.objects.Delete(ctx, a.Key); err != nil {
		return err
	}
	return s.records.Delete(ctx, attachmentID)
}

func objectKey(attachmentID, name string) string {
	return "attachments/" + attachmentID + path.Ext(name)
}
