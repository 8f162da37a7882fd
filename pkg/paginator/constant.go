package paginator

const (
	// DefaultLimit is the page size used when the request does not specify one.
	DefaultLimit = 10
	// MinLimit is the smallest page size; zero or negative limits are raised to it.
	MinLimit = 1
	// MaxLimit is the maximum number of items per page to prevent excessive queries.
	MaxLimit = 100
)
