package services

// EventTracker records product analytics events. Implementations must not block the caller.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}
