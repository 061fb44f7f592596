package aggregate

import (
	"net/url"
	"strings"
)

// paywalledDomains are hosts known to gate their articles.
var paywalledDomains = []string{
	"theathletic.com",
	"wsj.com",
	"nytimes.com",
	"ft.com",
	"bostonglobe.com",
	"telegraph.co.uk",
	"washingtonpost.com",
	"economist.com",
}

// IsPaywalled reports whether the URL's host belongs to a known paywalled
// domain.
func IsPaywalled(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, d := range paywalledDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
