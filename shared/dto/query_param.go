package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries ordering for list queries. The content lists in this
// service are small and always fully materialized, so there is no pagination.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderedBy returns QueryParams sorting ascending on the given column.
func OrderedBy(column string) QueryParams {
	return QueryParams{
		SortBy:  column,
		SortDir: SortDirAsc,
	}
}
