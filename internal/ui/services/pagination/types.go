package pagination

// State holds the pagination view state plus the totals from the most
// recently applied fetch.
type State struct {
	Offset       int // zero-based index of the first visible record
	PageSize     int
	TotalRecords int
	TotalPages   int
}
