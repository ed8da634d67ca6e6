// Package lifecycle holds shared start/stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds start-up probes and graceful shutdown.
const DefaultTimeout = 10 * time.Second
