package resource

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/go-inventory-api/internal/domain"
	"github.com/go-inventory-api/internal/pkg/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory stand-in for the DynamoDB repository, matching its
// error contract.
type memStore[E any, PE Entity[E]] struct {
	items map[string]E
}

func newMemStore[E any, PE Entity[E]]() *memStore[E, PE] {
	return &memStore[E, PE]{items: make(map[string]E)}
}

func (s *memStore[E, PE]) Put(_ context.Context, e *E) error {
	s.items[PE(e).EntityMeta().ID] = *e
	return nil
}

func (s *memStore[E, PE]) Get(_ context.Context, id string) (*E, error) {
	e, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return &e, nil
}

func (s *memStore[E, PE]) ScanPage(_ context.Context, limit int32, cursor string) ([]E, string, error) {
	ids := make([]string, 0, len(s.items))
	for k := range s.items {
		ids = append(ids, k)
	}
	sort.Strings(ids)
	out := make([]E, 0, len(ids))
	for _, k := range ids {
		if limit > 0 && int32(len(out)) >= limit {
			break
		}
		out = append(out, s.items[k])
	}
	return out, "", nil
}

func (s *memStore[E, PE]) Replace(_ context.Context, id string, e *E) error {
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	s.items[id] = *e
	return nil
}

func (s *memStore[E, PE]) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	delete(s.items, id)
	return nil
}

func newCategoryService() (*Service[domain.CategoryInput, domain.Category, *domain.Category], *memStore[domain.Category, *domain.Category]) {
	store := newMemStore[domain.Category, *domain.Category]()
	return NewService[domain.CategoryInput](store, domain.NewCategory), store
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps id and timestamps", func(t *testing.T) {
		svc, _ := newCategoryService()

		before := time.Now().UTC()
		cat, err := svc.Create(ctx, &domain.CategoryInput{
			CategoryID:   "electronics",
			CategoryName: "Electronics",
		})
		require.NoError(t, err)

		assert.True(t, id.Valid(cat.ID))
		assert.False(t, cat.CreatedAt.Before(before))
		assert.Equal(t, cat.CreatedAt, cat.UpdatedAt)
		assert.Equal(t, "Electronics", cat.CategoryName)
	})

	t.Run("reports all violations together", func(t *testing.T) {
		store := newMemStore[domain.Product, *domain.Product]()
		svc := NewService[domain.ProductInput](store, domain.NewProduct)

		// Name, description, price, stockQuantity, categoryId and supplierId
		// are all missing.
		_, err := svc.Create(ctx, &domain.ProductInput{})
		verr, ok := domain.IsValidation(err)
		require.True(t, ok)
		assert.Len(t, verr.Messages, 6)
		assert.Empty(t, store.items)
	})

	t.Run("rejects a bad enum value with the allowed set", func(t *testing.T) {
		store := newMemStore[domain.Transaction, *domain.Transaction]()
		svc := NewService[domain.TransactionInput](store, domain.NewTransaction)

		qty, payment := 3, 25.0
		_, err := svc.Create(ctx, &domain.TransactionInput{
			TransactionID:   "t-1",
			ProductID:       "p-1",
			InventoryID:     "i-1",
			OrderID:         "o-1",
			TransactionType: "refund",
			TransactionDate: "2026-08-29T10:00:00Z",
			Quantity:        &qty,
			Payment:         &payment,
		})
		verr, ok := domain.IsValidation(err)
		require.True(t, ok)
		require.Len(t, verr.Messages, 1)
		assert.Contains(t, verr.Messages[0], "purchase sale")
	})

	t.Run("derives the order line total", func(t *testing.T) {
		store := newMemStore[domain.OrderDetail, *domain.OrderDetail]()
		svc := NewService[domain.OrderDetailInput](store, domain.NewOrderDetail)

		qty, price := 3, 10.0
		line, err := svc.Create(ctx, &domain.OrderDetailInput{
			OrderID:   "o-1",
			ProductID: "p-1",
			Quantity:  &qty,
			Price:     &price,
		})
		require.NoError(t, err)
		assert.Equal(t, 30.0, line.TotalPrice)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCategoryService()

	t.Run("malformed id fails before any lookup", func(t *testing.T) {
		_, err := svc.Get(ctx, "not-a-ulid")
		assert.ErrorIs(t, err, domain.ErrInvalidID)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("well-formed but absent id is not found", func(t *testing.T) {
		_, err := svc.Get(ctx, id.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces fields but keeps the creation time", func(t *testing.T) {
		svc, _ := newCategoryService()

		created, err := svc.Create(ctx, &domain.CategoryInput{
			CategoryID:   "books",
			CategoryName: "Books",
		})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, &domain.CategoryInput{
			CategoryID:   "books",
			CategoryName: "Books & Media",
			Description:  "Printed and digital",
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
		assert.Equal(t, "Books & Media", updated.CategoryName)

		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Printed and digital", got.Description)
	})

	t.Run("validates before touching the store", func(t *testing.T) {
		svc, _ := newCategoryService()
		created, err := svc.Create(ctx, &domain.CategoryInput{
			CategoryID:   "toys",
			CategoryName: "Toys",
		})
		require.NoError(t, err)

		_, err = svc.Update(ctx, created.ID, &domain.CategoryInput{})
		_, ok := domain.IsValidation(err)
		require.True(t, ok)

		got, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Toys", got.CategoryName)
	})

	t.Run("absent id is not found", func(t *testing.T) {
		svc, _ := newCategoryService()
		_, err := svc.Update(ctx, id.New(), &domain.CategoryInput{
			CategoryID:   "x",
			CategoryName: "X",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, store := newCategoryService()

	created, err := svc.Create(ctx, &domain.CategoryInput{
		CategoryID:   "garden",
		CategoryName: "Garden",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, store.items)

	err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(ctx, "###")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCategoryService()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, &domain.CategoryInput{
			CategoryID:   fmt.Sprintf("cat-%d", i),
			CategoryName: fmt.Sprintf("Category %d", i),
		})
		require.NoError(t, err)
	}

	all, _, err := svc.List(ctx, 0, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, _, err := svc.List(ctx, 2, "")
	require.NoError(t, err)
	assert.Len(t, page, 2)
}
