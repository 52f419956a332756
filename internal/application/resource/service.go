// Package resource implements the shared create/read/update/delete pipeline
// behind every stored entity type. Entity-specific behavior lives entirely in
// the domain input struct's validation tags and its builder function; the
// service contributes identity, timestamps, and persistence.
package resource

import (
	"context"
	"fmt"
	"time"

	"github.com/go-inventory-api/internal/domain"
	"github.com/go-inventory-api/internal/pkg/id"
	"github.com/go-inventory-api/internal/pkg/validate"
)

// Entity constrains a type parameter to "pointer to a struct embedding
// domain.Meta", which is what lets the service stamp ids and timestamps
// without knowing the concrete type.
type Entity[E any] interface {
	*E
	EntityMeta() *domain.Meta
}

type store[E any] interface {
	Put(ctx context.Context, e *E) error
	Get(ctx context.Context, id string) (*E, error)
	ScanPage(ctx context.Context, limit int32, cursor string) ([]E, string, error)
	Replace(ctx context.Context, id string, e *E) error
	Delete(ctx context.Context, id string) error
}

// Service is the generic CRUD service for one entity type. I is the input
// (request) type, E the stored entity, PE the entity pointer.
type Service[I any, E any, PE Entity[E]] struct {
	repo  store[E]
	build func(in *I) PE
}

func NewService[I any, E any, PE Entity[E]](repo store[E], build func(in *I) PE) *Service[I, E, PE] {
	return &Service[I, E, PE]{repo: repo, build: build}
}

// Create validates the input, builds the entity, stamps identity and
// timestamps, and persists it. Validation is fail-slow: the returned
// *domain.ValidationError carries one message per violated field.
func (s *Service[I, E, PE]) Create(ctx context.Context, in *I) (PE, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	e := s.build(in)
	now := time.Now().UTC()
	m := e.EntityMeta()
	m.ID = id.New()
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := s.repo.Put(ctx, (*E)(e)); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service[I, E, PE]) List(ctx context.Context, limit int32, cursor string) ([]E, string, error) {
	return s.repo.ScanPage(ctx, limit, cursor)
}

func (s *Service[I, E, PE]) Get(ctx context.Context, rid string) (*E, error) {
	if !id.Valid(rid) {
		return nil, fmt.Errorf("id %q: %w", rid, domain.ErrInvalidID)
	}
	return s.repo.Get(ctx, rid)
}

// Update replaces the stored entity wholesale from a full, validated input.
// The original creation time survives the replacement; everything else is
// rebuilt from the input.
func (s *Service[I, E, PE]) Update(ctx context.Context, rid string, in *I) (PE, error) {
	if !id.Valid(rid) {
		return nil, fmt.Errorf("id %q: %w", rid, domain.ErrInvalidID)
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	prior, err := s.repo.Get(ctx, rid)
	if err != nil {
		return nil, err
	}
	e := s.build(in)
	m := e.EntityMeta()
	m.ID = rid
	m.CreatedAt = PE(prior).EntityMeta().CreatedAt
	m.UpdatedAt = time.Now().UTC()
	if err := s.repo.Replace(ctx, rid, (*E)(e)); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service[I, E, PE]) Delete(ctx context.Context, rid string) error {
	if !id.Valid(rid) {
		return fmt.Errorf("id %q: %w", rid, domain.ErrInvalidID)
	}
	return s.repo.Delete(ctx, rid)
}
