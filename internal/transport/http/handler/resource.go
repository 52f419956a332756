package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-inventory-api/internal/application/resource"
)

// Resource serves the uniform CRUD endpoints for one entity type. All twelve
// entity route groups are instances of this handler; they differ only in the
// input type's validation tags and the builder wired into the service.
type Resource[I any, E any, PE resource.Entity[E]] struct {
	svc *resource.Service[I, E, PE]
}

func NewResource[I any, E any, PE resource.Entity[E]](svc *resource.Service[I, E, PE]) *Resource[I, E, PE] {
	return &Resource[I, E, PE]{svc: svc}
}

func (h *Resource[I, E, PE]) Create(w http.ResponseWriter, r *http.Request) {
	var in I
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e, err := h.svc.Create(r.Context(), &in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *Resource[I, E, PE]) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, next, err := h.svc.List(r.Context(), int32(limit), r.URL.Query().Get("cursor"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ListEnvelope{Data: items, NextCursor: next})
}

func (h *Resource[I, E, PE]) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Resource[I, E, PE]) Update(w http.ResponseWriter, r *http.Request) {
	var in I
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), &in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// Delete confirms with a 200 and a body, never a bare 204.
func (h *Resource[I, E, PE]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "item deleted successfully"})
}
