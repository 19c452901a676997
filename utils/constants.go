// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// SessionPrefix is the prefix used for Redis session markers.
const SessionPrefix = "session:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// Durable collection keys. These names are part of the storage contract and
// must remain stable across sessions.
const (
	KeyFavorites     = "akanuke_favorites_data"
	KeyBrowsingHist  = "akanuke_browsing_history"
	KeySearchHistory = "akanuke_search_history"
	KeyUserProfile   = "akanuke_user_profile"
)
