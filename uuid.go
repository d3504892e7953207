package middlegem

import "github.com/google/uuid"

// IDGenerator generates unique call IDs.
// The default implementation generates RFC 4122 UUID v4 strings.
type IDGenerator func() string

// DefaultIDGenerator is used by Stack to stamp each call with an ID.
// The ID appears in log lines and in CallMetrics so a call can be traced
// across both. Replace it to integrate an existing correlation scheme:
//
//	middlegem.DefaultIDGenerator = func() string { return nextTraceID() }
var DefaultIDGenerator IDGenerator = uuid.NewString

// WithIDGenerator overrides the call ID generator for a single Stack.
func WithIDGenerator(newID IDGenerator) StackOption {
	return func(cfg *stackConfig) {
		cfg.newID = newID
	}
}
