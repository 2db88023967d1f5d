package turso

import "time"

// SetClock replaces the repository clock in tests.
func (r *ResponseCacheRepository) SetClock(now func() time.Time) {
	r.now = now
}

var ConnectionString = connectionString
