package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// BookingLockPrefix is the prefix used for per-staff booking lock keys.
const BookingLockPrefix = "bookinglock:"

// SlugCachePrefix is the prefix for cached slug-to-business lookups.
const SlugCachePrefix = "slug:"

// SlugCacheTTL is the time-to-live for cached slug lookups.
const SlugCacheTTL = 5 * time.Minute
