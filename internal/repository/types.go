package repository

// MenuListFilter carries the filter options for listing menu items.
type MenuListFilter struct {
	Page        int
	PageSize    int
	Category    string
	Search      string
	OnlyPopular bool
}

// ReviewListFilter carries the filter options for listing reviews.
type ReviewListFilter struct {
	Page       int
	PageSize   int
	MenuItemID uint
}
