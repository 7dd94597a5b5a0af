package rest

import (
	"github.com/heartmarshall/catalog-backend/internal/domain"
	"github.com/heartmarshall/catalog-backend/internal/service/catalog"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

// ItemsTableRequest is the body of POST /api/items/table. Zero paging and
// sort fields take the service defaults.
type ItemsTableRequest struct {
	CategoryIDs []int64 `json:"categoryIds" validate:"omitempty,dive,gt=0"`
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Page        int     `json:"page"        validate:"gte=0"`
	PageSize    int     `json:"pageSize"    validate:"gte=0"`
	OrderBy     string  `json:"orderBy"     validate:"omitempty,oneof=NAME RATING"`
	Direction   string  `json:"direction"   validate:"omitempty,oneof=ASC DESC"`
}

func (r ItemsTableRequest) input() catalog.ListItemsInput {
	return catalog.ListItemsInput{
		CategoryIDs: r.CategoryIDs,
		Name:        r.Name,
		Code:        r.Code,
		Page:        r.Page,
		PageSize:    r.PageSize,
		SortBy:      domain.SortKey(r.OrderBy),
		Direction:   domain.SortDirection(r.Direction),
	}
}

// ItemRequest is the body of POST and PUT /api/items. Categories are
// stored in the order given.
type ItemRequest struct {
	Code        string   `json:"code"        validate:"required,max=64"`
	Name        string   `json:"name"        validate:"required,max=255"`
	Rating      *float64 `json:"rating"      validate:"required,gte=0,lte=10"`
	ReleaseYear *int     `json:"releaseYear" validate:"required,gt=0"`
	Status      string   `json:"status"      validate:"required,oneof=ACTIVE INACTIVE"`
	Categories  []int64  `json:"categories"  validate:"required,min=1,dive,gt=0"`
}

func (r ItemRequest) input() catalog.ItemInput {
	return catalog.ItemInput{
		Code:        r.Code,
		Name:        r.Name,
		Rating:      *r.Rating,
		ReleaseYear: *r.ReleaseYear,
		Status:      domain.ItemStatus(r.Status),
		CategoryIDs: r.Categories,
	}
}

// DeleteItemsRequest is the body of DELETE /api/items.
type DeleteItemsRequest struct {
	Codes []string `json:"codes" validate:"required,min=1,dive,required"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ItemResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	ReleaseYear int     `json:"releaseYear"`
	Status      string  `json:"status"`
}

// ItemDetailsResponse is an item with its categories in relation order.
type ItemDetailsResponse struct {
	Item       ItemResponse       `json:"item"`
	Categories []CategoryResponse `json:"categories"`
}

// ItemRowResponse is one row of the items table; Categories is the
// comma-joined category names.
type ItemRowResponse struct {
	ItemResponse
	Categories string `json:"categories"`
}

type ItemsTableResponse struct {
	Items      []ItemRowResponse `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalItems int64             `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
}

type DeleteItemsResponse struct {
	Deleted bool `json:"deleted"`
}

func toCategoryResponses(cats []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		out[i] = CategoryResponse{ID: c.ID, Name: c.Name}
	}
	return out
}

func toItemResponse(it domain.Item) ItemResponse {
	return ItemResponse{
		Code:        it.Code,
		Name:        it.Name,
		Rating:      it.Rating,
		ReleaseYear: it.ReleaseYear,
		Status:      it.Status.String(),
	}
}

func toItemDetailsResponse(d catalog.ItemDetails) ItemDetailsResponse {
	return ItemDetailsResponse{
		Item:       toItemResponse(d.Item),
		Categories: toCategoryResponses(d.Categories),
	}
}

func toItemsTableResponse(t *domain.ItemTable) ItemsTableResponse {
	rows := make([]ItemRowResponse, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = ItemRowResponse{
			ItemResponse: ItemResponse{
				Code:        r.Code,
				Name:        r.Name,
				Rating:      r.Rating,
				ReleaseYear: r.ReleaseYear,
				Status:      r.Status.String(),
			},
			Categories: r.Categories,
		}
	}
	return ItemsTableResponse{
		Items:      rows,
		Page:       t.Page,
		PageSize:   t.PageSize,
		TotalItems: t.TotalItems,
		TotalPages: t.TotalPages,
	}
}
