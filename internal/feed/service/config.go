package service

// Config holds configuration for the feed service.
type Config struct {
	// Capacity is how many topics the feed keeps.
	Capacity int
	// EventBuffer is the size of the internal event channel.
	EventBuffer int
	// ExternalEventBuffer is the size of the external events channel.
	ExternalEventBuffer int
	// DropExternalEvents determines whether external event channel drops on overflow.
	DropExternalEvents bool
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Capacity:            100,
		EventBuffer:         256,
		ExternalEventBuffer: 256,
		DropExternalEvents:  true,
	}
}
