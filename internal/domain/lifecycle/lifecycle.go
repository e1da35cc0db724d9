// Package lifecycle holds shared timeouts for startup/shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as DB pings and graceful
// HTTP shutdown.
const DefaultTimeout = 10 * time.Second
