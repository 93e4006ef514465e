// Package lifecycle holds shared timing constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup checks across deliveries.
const DefaultTimeout = 10 * time.Second
