// File: utils/constants.go
package utils

import "time"

// CounselorCachePrefix is the prefix used for Redis counselor directory cache keys.
const CounselorCachePrefix = "counselors:"

// CounselorCacheTTL is the time-to-live for counselor directory cache entries.
const CounselorCacheTTL = 5 * time.Minute
