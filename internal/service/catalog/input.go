package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

const (
	maxCodeLength = 64
	maxNameLength = 255
	maxRating     = 10
)

// ListItemsInput holds the filter, paging and sort controls for the items table.
// Zero paging and sort fields take their defaults.
type ListItemsInput struct {
	CategoryIDs []int64
	Name        *string
	Code        *string
	Page        int
	PageSize    int
	SortBy      domain.SortKey
	Direction   domain.SortDirection
}

// filter returns the input as a domain.ItemFilter with defaults applied.
func (i ListItemsInput) filter(defaultPageSize int) domain.ItemFilter {
	f := domain.ItemFilter{
		CategoryIDs: i.CategoryIDs,
		Name:        i.Name,
		Code:        i.Code,
		Page:        i.Page,
		PageSize:    i.PageSize,
		SortBy:      i.SortBy,
		Direction:   i.Direction,
	}
	if f.PageSize == 0 && defaultPageSize > 0 {
		f.PageSize = defaultPageSize
	}
	f.ApplyDefaults()
	return f
}

// Validate checks paging and sort fields against maxPageSize and collects all errors.
func (i ListItemsInput) Validate(maxPageSize int) error {
	var errs []domain.FieldError

	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 1"})
	}
	if i.PageSize < 0 {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: "must be positive"})
	}
	if i.PageSize > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: fmt.Sprintf("max %d", maxPageSize)})
	}
	if size := pageSizeBound(i.PageSize, maxPageSize); size > 0 && i.Page > math.MaxInt/size {
		errs = append(errs, domain.FieldError{Field: "page", Message: fmt.Sprintf("max %d", math.MaxInt/size)})
	}
	if i.SortBy != "" && !i.SortBy.IsValid() {
		errs = append(errs, domain.FieldError{Field: "order_by", Message: "must be NAME or RATING"})
	}
	if i.Direction != "" && !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be ASC or DESC"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// pageSizeBound is the page size the offset is computed with, or the
// largest it can be when the default applies.
func pageSizeBound(pageSize, maxPageSize int) int {
	if pageSize > 0 {
		return pageSize
	}
	return maxPageSize
}

// ItemInput holds the fields of an item and its requested categories.
// Category order is significant: it is the order relations are stored in.
type ItemInput struct {
	Code        string
	Name        string
	Rating      float64
	ReleaseYear int
	Status      domain.ItemStatus
	CategoryIDs []int64
}

// CreateItemInput holds the parameters for creating an item.
type CreateItemInput = ItemInput

// UpdateItemInput holds the parameters for updating an item. Code selects
// the item and is never changed.
type UpdateItemInput = ItemInput

// Validate checks the shape of all fields and collects all errors. Rules
// that need the store or the clock are applied by the service.
func (i ItemInput) Validate() error {
	var errs []domain.FieldError

	code := strings.TrimSpace(i.Code)
	if code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if len(code) > maxCodeLength {
		errs = append(errs, domain.FieldError{Field: "code", Message: fmt.Sprintf("max %d characters", maxCodeLength)})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLength)})
	}

	if math.IsNaN(i.Rating) || i.Rating < 0 || i.Rating > maxRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 0 and 10"})
	}
	if i.ReleaseYear <= 0 {
		errs = append(errs, domain.FieldError{Field: "release_year", Message: "must be positive"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be ACTIVE or INACTIVE"})
	}

	seen := make(map[int64]struct{}, len(i.CategoryIDs))
	for _, id := range i.CategoryIDs {
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: "categories", Message: fmt.Sprintf("duplicate category %d", id)})
			break
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// item returns the trimmed domain item described by the input.
func (i ItemInput) item() domain.Item {
	return domain.Item{
		Code:        strings.TrimSpace(i.Code),
		Name:        strings.TrimSpace(i.Name),
		Rating:      i.Rating,
		ReleaseYear: i.ReleaseYear,
		Status:      i.Status,
	}
}

// DeleteItemsInput holds the codes of the items to delete.
type DeleteItemsInput struct {
	Codes []string
}

// Validate checks all fields and collects all errors.
func (i DeleteItemsInput) Validate(maxBatch int) error {
	var errs []domain.FieldError

	if len(i.Codes) == 0 {
		errs = append(errs, domain.FieldError{Field: "codes", Message: "required"})
	}
	if len(i.Codes) > maxBatch {
		errs = append(errs, domain.FieldError{Field: "codes", Message: fmt.Sprintf("max %d items", maxBatch)})
	}
	for _, c := range i.Codes {
		if strings.TrimSpace(c) == "" {
			errs = append(errs, domain.FieldError{Field: "codes", Message: "must not contain blank codes"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// uniqueCodes returns the trimmed codes without duplicates, first occurrence wins.
func (i DeleteItemsInput) uniqueCodes() []string {
	seen := make(map[string]struct{}, len(i.Codes))
	codes := make([]string, 0, len(i.Codes))
	for _, c := range i.Codes {
		c = strings.TrimSpace(c)
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		codes = append(codes, c)
	}
	return codes
}
