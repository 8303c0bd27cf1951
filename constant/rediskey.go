package constant

import "fmt"

const (
	BasePrefix = "shortener:"
	Separator  = ":"
)

// Redis key templates
const (
	UrlByShortCode = BasePrefix + "url" + Separator + "%s" // shortener:url:<short_url>
)

// GetUrlKey returns the cache key of the url addressed by shortCode.
func GetUrlKey(shortCode string) string {
	return fmt.Sprintf(UrlByShortCode, shortCode)
}
