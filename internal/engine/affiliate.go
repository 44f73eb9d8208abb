package engine

import "net/url"

// Placeholder parameter; replace with real program params when an affiliate
// program goes live.
const (
	affiliateParam = "affid"
	affiliateTag   = "shoply"
)

// WithAffiliate appends the affiliate tracking parameter if absent. It never
// fails and is idempotent: a URL that already carries the parameter, or one
// that does not parse, comes back unchanged.
func WithAffiliate(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	q := u.Query()
	if q.Has(affiliateParam) {
		return rawURL
	}
	q.Set(affiliateParam, affiliateTag)
	u.RawQuery = q.Encode()
	return u.String()
}
