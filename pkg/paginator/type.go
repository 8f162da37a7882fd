package paginator

// CursorQuery contains forward-only cursor pagination parameters.
type CursorQuery struct {
	AfterID *int `json:"afterId" form:"afterId"` // Ordering key of the last item already seen
	Limit   int  `json:"limit" form:"limit"`     // Number of items per page
}

// PageInfo contains pagination metadata for a cursor page.
type PageInfo struct {
	EndCursor       *string `json:"endCursor"`       // Ordering key of the last returned item, null when empty
	HasNextPage     bool    `json:"hasNextPage"`     // A row exists beyond this page
	HasPreviousPage bool    `json:"hasPreviousPage"` // A cursor was supplied
	Total           int64   `json:"total"`           // Unfiltered item count
}

// Connection is a page of nodes plus its PageInfo.
type Connection[T any] struct {
	Nodes    []T      `json:"nodes"`
	PageInfo PageInfo `json:"pageInfo"`
}
