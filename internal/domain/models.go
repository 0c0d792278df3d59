package domain

// Record represents a single entry in the remote catalog
type Record struct {
	ID    int64
	Title string
	Label string // secondary description, may be empty
}

// Page represents one fetched window of the catalog
type Page struct {
	Items        []Record // in source order
	PageNumber   int      // 1-based page this data belongs to
	PageSize     int      // size the page was requested with
	TotalRecords int
	TotalPages   int // ceil(TotalRecords / PageSize)
}

// IsEmpty reports whether the page carries no items
func (p *Page) IsEmpty() bool {
	return len(p.Items) == 0
}
