package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-inventory-api/internal/application/resource"
	"github.com/go-inventory-api/internal/domain"
	"github.com/go-inventory-api/internal/pkg/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryStore struct {
	items map[string]domain.Category
}

func (s *categoryStore) Put(_ context.Context, e *domain.Category) error {
	s.items[e.ID] = *e
	return nil
}

func (s *categoryStore) Get(_ context.Context, id string) (*domain.Category, error) {
	e, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return &e, nil
}

func (s *categoryStore) ScanPage(_ context.Context, limit int32, cursor string) ([]domain.Category, string, error) {
	out := make([]domain.Category, 0, len(s.items))
	for _, e := range s.items {
		if limit > 0 && int32(len(out)) >= limit {
			break
		}
		out = append(out, e)
	}
	return out, "", nil
}

func (s *categoryStore) Replace(_ context.Context, id string, e *domain.Category) error {
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	s.items[id] = *e
	return nil
}

func (s *categoryStore) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	delete(s.items, id)
	return nil
}

func newCategoryRouter() http.Handler {
	store := &categoryStore{items: make(map[string]domain.Category)}
	h := NewResource(resource.NewService[domain.CategoryInput](store, domain.NewCategory))

	r := chi.NewRouter()
	r.Post("/category", h.Create)
	r.Get("/category", h.List)
	r.Get("/category/{id}", h.Get)
	r.Put("/category/{id}", h.Update)
	r.Delete("/category/{id}", h.Delete)
	return r
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestResourceCRUD(t *testing.T) {
	router := newCategoryRouter()

	// Create.
	rr := do(t, router, http.MethodPost, "/category", `{"categoryId":"books","categoryName":"Books"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created domain.Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.True(t, id.Valid(created.ID))
	assert.Equal(t, "Books", created.CategoryName)

	// Read back.
	rr = do(t, router, http.MethodGet, "/category/"+created.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)

	// List.
	rr = do(t, router, http.MethodGet, "/category", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list ListEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)

	// Update.
	rr = do(t, router, http.MethodPut, "/category/"+created.ID, `{"categoryId":"books","categoryName":"Books & Media"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var updated domain.Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Books & Media", updated.CategoryName)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// Delete responds 200 with a body.
	rr = do(t, router, http.MethodDelete, "/category/"+created.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "deleted")

	rr = do(t, router, http.MethodGet, "/category/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestResourceValidationErrors(t *testing.T) {
	router := newCategoryRouter()

	rr := do(t, router, http.MethodPost, "/category", `{}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Len(t, env.Errors, 2)

	rr = do(t, router, http.MethodPost, "/category", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResourceIDChecks(t *testing.T) {
	router := newCategoryRouter()

	// Malformed ids never read as not-found.
	rr := do(t, router, http.MethodGet, "/category/not-a-ulid", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, router, http.MethodGet, "/category/"+id.New(), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, router, http.MethodDelete, "/category/not-a-ulid", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
