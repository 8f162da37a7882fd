package paginator

import "strconv"

// Adjust clamps the limit to [MinLimit, MaxLimit].
func (q *CursorQuery) Adjust() {
	if q.Limit < MinLimit {
		q.Limit = MinLimit
	} else if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
}

// HasCursor reports whether the query continues a previous traversal.
func (q CursorQuery) HasCursor() bool {
	return q.AfterID != nil
}

// FetchLimit is the number of rows to request from the store: one more than
// the page size so the presence of a next page can be detected.
func (q CursorQuery) FetchLimit() int {
	return q.Limit + 1
}

// Trim drops the look-ahead row if the store returned more than limit rows.
// The second return value reports whether a next page exists.
func Trim[T any](rows []T, limit int) ([]T, bool) {
	if len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}

// EncodeCursor renders an ordering key as a cursor.
func EncodeCursor(key int) *string {
	s := strconv.Itoa(key)
	return &s
}

// DecodeCursor parses a cursor back into an ordering key.
func DecodeCursor(cursor string) (int, error) {
	return strconv.Atoi(cursor)
}

// NewConnection builds a Connection from an already trimmed page. keyOf
// returns the ordering key of a node and is used to derive EndCursor.
func NewConnection[T any](q CursorQuery, nodes []T, hasNext bool, total int64, keyOf func(T) int) Connection[T] {
	info := PageInfo{
		HasNextPage:     hasNext,
		HasPreviousPage: q.HasCursor(),
		Total:           total,
	}
	if len(nodes) > 0 {
		info.EndCursor = EncodeCursor(keyOf(nodes[len(nodes)-1]))
	}
	if nodes == nil {
		nodes = []T{}
	}
	return Connection[T]{Nodes: nodes, PageInfo: info}
}
