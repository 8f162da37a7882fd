package querycache

import "pokedex-srv/pkg/paginator"

// InfiniteData is the cached value of a paginated list: every page loaded so
// far, in order, plus the cursor each page was requested with.
type InfiniteData[T any] struct {
	Pages      []paginator.Connection[T]
	PageParams []*string
}

// Clone returns a deep copy of the page structure.
func (d InfiniteData[T]) Clone() any {
	return d.clone()
}

func (d InfiniteData[T]) clone() InfiniteData[T] {
	out := InfiniteData[T]{
		Pages:      make([]paginator.Connection[T], len(d.Pages)),
		PageParams: make([]*string, len(d.PageParams)),
	}
	for i, p := range d.Pages {
		nodes := make([]T, len(p.Nodes))
		copy(nodes, p.Nodes)
		info := p.PageInfo
		if info.EndCursor != nil {
			c := *info.EndCursor
			info.EndCursor = &c
		}
		out.Pages[i] = paginator.Connection[T]{Nodes: nodes, PageInfo: info}
	}
	for i, param := range d.PageParams {
		if param != nil {
			c := *param
			out.PageParams[i] = &c
		}
	}
	return out
}

// Items flattens the loaded pages.
func (d InfiniteData[T]) Items() []T {
	var items []T
	for _, p := range d.Pages {
		items = append(items, p.Nodes...)
	}
	return items
}

// Total is the item count reported by the most recent page.
func (d InfiniteData[T]) Total() int64 {
	if len(d.Pages) == 0 {
		return 0
	}
	return d.Pages[len(d.Pages)-1].PageInfo.Total
}

// NextCursor returns the cursor of the next page, or false when the list is
// exhausted or nothing is loaded yet.
func (d InfiniteData[T]) NextCursor() (*string, bool) {
	if len(d.Pages) == 0 {
		return nil, false
	}
	last := d.Pages[len(d.Pages)-1].PageInfo
	if !last.HasNextPage || last.EndCursor == nil {
		return nil, false
	}
	return last.EndCursor, true
}

// AppendPage returns a copy of d with page added.
func (d InfiniteData[T]) AppendPage(param *string, page paginator.Connection[T]) InfiniteData[T] {
	out := d.clone()
	out.Pages = append(out.Pages, page)
	out.PageParams = append(out.PageParams, param)
	return out
}

// RemoveWhere returns a copy of d without the nodes matching pred. When any
// node is removed every page total is lowered by the removed count, floored at zero.
func (d InfiniteData[T]) RemoveWhere(pred func(T) bool) InfiniteData[T] {
	out := d.clone()
	removed := 0
	for i, p := range out.Pages {
		kept := p.Nodes[:0]
		for _, n := range p.Nodes {
			if pred(n) {
				removed++
				continue
			}
			kept = append(kept, n)
		}
		out.Pages[i].Nodes = kept
	}
	if removed == 0 {
		return out
	}
	for i := range out.Pages {
		total := out.Pages[i].PageInfo.Total - int64(removed)
		if total < 0 {
			total = 0
		}
		out.Pages[i].PageInfo.Total = total
	}
	return out
}
