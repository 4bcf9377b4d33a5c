// Package lifecycle holds shared start/stop timing constants.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown steps.
const DefaultTimeout = 10 * time.Second
