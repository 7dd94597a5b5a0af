package domain

import "strings"

const (
	DefaultPage     = 1
	DefaultPageSize = 5
)

// ItemFilter is the caller-supplied criteria plus pagination and sort
// controls for the items table. Page is 1-based.
type ItemFilter struct {
	CategoryIDs []int64
	Name        *string
	Code        *string
	Page        int
	PageSize    int
	SortBy      SortKey
	Direction   SortDirection
}

// ApplyDefaults fills zero-valued paging and sort fields.
func (f *ItemFilter) ApplyDefaults() {
	if f.Page == 0 {
		f.Page = DefaultPage
	}
	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}
	if f.SortBy == "" {
		f.SortBy = SortByRating
	}
	if f.Direction == "" {
		f.Direction = SortAsc
	}
}

// Predicates returns the optional constraints of f. An empty result means
// every item matches. Blank strings and empty id lists are treated as absent.
func (f ItemFilter) Predicates() []Predicate {
	var preds []Predicate
	if len(f.CategoryIDs) > 0 {
		preds = append(preds, InCategories{IDs: f.CategoryIDs})
	}
	if f.Name != nil && strings.TrimSpace(*f.Name) != "" {
		preds = append(preds, NameContains{Substring: strings.TrimSpace(*f.Name)})
	}
	if f.Code != nil && strings.TrimSpace(*f.Code) != "" {
		preds = append(preds, CodeContains{Substring: strings.TrimSpace(*f.Code)})
	}
	return preds
}

// Offset is the number of rows skipped before the current page.
func (f ItemFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// Query builds the listing query for f.
func (f ItemFilter) Query() ItemQuery {
	return ItemQuery{
		Predicates: f.Predicates(),
		SortBy:     f.SortBy,
		Direction:  f.Direction,
		Limit:      f.PageSize,
		Offset:     f.Offset(),
	}
}

// TotalPages returns ceil(total/pageSize). Zero items give zero pages.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

// Predicate is one optional constraint on items. Predicates are combined
// with logical AND.
type Predicate interface {
	predicate()
}

// InCategories matches items related to at least one of IDs.
type InCategories struct {
	IDs []int64
}

// NameContains matches items whose name contains Substring, ignoring case.
type NameContains struct {
	Substring string
}

// CodeContains matches items whose code contains Substring, ignoring case.
type CodeContains struct {
	Substring string
}

func (InCategories) predicate() {}
func (NameContains) predicate() {}
func (CodeContains) predicate() {}

// ItemQuery is a fully resolved listing request for the store.
type ItemQuery struct {
	Predicates []Predicate
	SortBy     SortKey
	Direction  SortDirection
	Limit      int
	Offset     int
}
