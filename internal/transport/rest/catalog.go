package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/catalog-backend/internal/domain"
	"github.com/heartmarshall/catalog-backend/internal/service/catalog"
	"github.com/heartmarshall/catalog-backend/internal/transport/middleware"
)

type catalogService interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	ItemsTable(ctx context.Context, input catalog.ListItemsInput) (*domain.ItemTable, error)
	GetItem(ctx context.Context, code string) (*catalog.ItemDetails, error)
	GetItemsByName(ctx context.Context, name string) ([]catalog.ItemDetails, error)
	CreateItem(ctx context.Context, input catalog.CreateItemInput) (*catalog.ItemDetails, error)
	UpdateItem(ctx context.Context, input catalog.UpdateItemInput) (*catalog.ItemDetails, error)
	DeleteItems(ctx context.Context, input catalog.DeleteItemsInput) error
}

// CatalogHandler serves the /api/items endpoints.
type CatalogHandler struct {
	svc      catalogService
	validate *validator.Validate
	log      *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		svc:      svc,
		validate: newValidator(),
		log:      log.With("handler", "catalog"),
	}
}

// Routes mounts the catalog endpoints on r. writeLimit, when non-nil, wraps
// the create, update and delete routes.
func (h *CatalogHandler) Routes(r chi.Router, writeLimit middleware.Middleware) {
	r.Get("/categories", h.Categories)
	r.Post("/table", h.ItemsTable)
	r.Get("/by-code/{code}", h.GetItem)
	r.Get("/by-name/{name}", h.GetItemsByName)

	r.Group(func(r chi.Router) {
		if writeLimit != nil {
			r.Use(writeLimit)
		}
		r.Post("/", h.CreateItem)
		r.Put("/", h.UpdateItem)
		r.Delete("/", h.DeleteItems)
	})
}

// pathParam returns the named URL parameter decoded. chi matches on
// RawPath when the request path carries escapes such as %2F, so the
// segment it captured is still encoded in that case.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", domain.NewValidationError(name, "malformed escape in path")
	}
	return decoded, nil
}

// Categories handles GET /api/items/categories.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponses(cats))
}

// ItemsTable handles POST /api/items/table: one filtered, sorted page of items.
func (h *CatalogHandler) ItemsTable(w http.ResponseWriter, r *http.Request) {
	var req ItemsTableRequest
	if err := decodeBody(w, r, h.validate, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	table, err := h.svc.ItemsTable(r.Context(), req.input())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemsTableResponse(table))
}

// GetItem handles GET /api/items/by-code/{code}.
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	code, err := pathParam(r, "code")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	details, err := h.svc.GetItem(r.Context(), code)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDetailsResponse(*details))
}

// GetItemsByName handles GET /api/items/by-name/{name}; no match is an empty list.
func (h *CatalogHandler) GetItemsByName(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "name")
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	list, err := h.svc.GetItemsByName(r.Context(), name)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]ItemDetailsResponse, len(list))
	for i, d := range list {
		out[i] = toItemDetailsResponse(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateItem handles POST /api/items and answers 201 with the stored item.
func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := decodeBody(w, r, h.validate, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	details, err := h.svc.CreateItem(r.Context(), req.input())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemDetailsResponse(*details))
}

// UpdateItem handles PUT /api/items; the code in the body selects the item.
func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := decodeBody(w, r, h.validate, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	details, err := h.svc.UpdateItem(r.Context(), req.input())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDetailsResponse(*details))
}

// DeleteItems handles DELETE /api/items with a {"codes": [...]} body.
func (h *CatalogHandler) DeleteItems(w http.ResponseWriter, r *http.Request) {
	var req DeleteItemsRequest
	if err := decodeBody(w, r, h.validate, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteItems(r.Context(), catalog.DeleteItemsInput{Codes: req.Codes}); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteItemsResponse{Deleted: true})
}
