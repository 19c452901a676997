package catalog

import "net/url"

// marketplaceSuffix narrows outbound searches to menswear results.
const marketplaceSuffix = " メンズファッション"

// MarketplaceURL builds the outbound search-engine URL for an item's
// search query. Pure string formatting; the caller opens it in a new tab
// and never handles a response.
func MarketplaceURL(searchQuery string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(searchQuery+marketplaceSuffix)
}
