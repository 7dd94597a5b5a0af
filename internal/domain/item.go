package domain

// Item is a catalog entry identified by an externally supplied code.
type Item struct {
	Code        string
	Name        string
	Rating      float64
	ReleaseYear int
	Status      ItemStatus
}

// SameFields reports whether every mutable field of i equals the one in other.
func (i Item) SameFields(other Item) bool {
	return i.Code == other.Code &&
		i.Name == other.Name &&
		i.Rating == other.Rating &&
		i.ReleaseYear == other.ReleaseYear &&
		i.Status == other.Status
}

// Category is a classification tag. Categories are seed data.
type Category struct {
	ID   int64
	Name string
}

// Relation is one (item, category) membership fact.
type Relation struct {
	ItemCode   string
	CategoryID int64
}

// CategoryIDs returns the category ids of rels in order.
func CategoryIDs(rels []Relation) []int64 {
	ids := make([]int64, len(rels))
	for i, r := range rels {
		ids[i] = r.CategoryID
	}
	return ids
}

// ItemRow is one grouped row of the items table. Categories holds the
// item's category names joined with ", " in insertion order.
type ItemRow struct {
	Code        string
	Name        string
	Rating      float64
	ReleaseYear int
	Status      ItemStatus
	Categories  string
}

// ItemTable is one page of the items table.
type ItemTable struct {
	Rows       []ItemRow
	Page       int
	PageSize   int
	TotalItems int64
	TotalPages int
}

// ItemCategory is a category together with the code of the item it is
// attached to. Batch lookups return it so callers can group by item.
type ItemCategory struct {
	ItemCode string
	Category
}
