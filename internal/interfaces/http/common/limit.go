package common

import (
	"strconv"
	"strings"
)

// ParseLimit reads a ?limit= query value for list endpoints. Blank, malformed
// or non-positive values give fallback; the result never exceeds ceiling.
func ParseLimit(raw string, fallback, ceiling int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		n = fallback
	}
	return min(n, ceiling)
}
