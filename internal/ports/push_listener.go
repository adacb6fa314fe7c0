package ports

// PushListener consumes real-time marketplace events and applies them to
// local state. Implementations run until Stop is called.
type PushListener interface {
	// Start begins consuming events
	Start() error

	// Stop shuts the listener down and releases its connection
	Stop() error
}
