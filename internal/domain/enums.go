package domain

// ItemStatus is the lifecycle state of a catalog item.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "ACTIVE"
	ItemStatusInactive ItemStatus = "INACTIVE"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusActive, ItemStatusInactive:
		return true
	}
	return false
}

// SortKey selects the column the items table is ordered by.
type SortKey string

const (
	SortByName   SortKey = "NAME"
	SortByRating SortKey = "RATING"
)

func (k SortKey) String() string { return string(k) }

func (k SortKey) IsValid() bool {
	switch k {
	case SortByName, SortByRating:
		return true
	}
	return false
}

// SortDirection is ascending or descending order.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

func (d SortDirection) String() string { return string(d) }

func (d SortDirection) IsValid() bool {
	switch d {
	case SortAsc, SortDesc:
		return true
	}
	return false
}
