package common

const (
	// MaxRequestBody limits JSON request bodies for submission endpoints.
	MaxRequestBody = 1 << 20
	// DefaultRecentLimit is the page size of the admin response listing.
	DefaultRecentLimit = 50
	// MaxRecentLimit caps the admin response listing.
	MaxRecentLimit = 500
)
