// Package telemetry reports pseudonymous page-view hits to an analytics sink.
package telemetry

// Sink receives analytics events. It mirrors the browser-side
// ym(counterID, event, payload) call.
// Implementations own any transport; errors are theirs to handle.
type Sink interface {
	Send(counterID int, event string, payload any)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(counterID int, event string, payload any)

// Send calls f.
func (f SinkFunc) Send(counterID int, event string, payload any) {
	f(counterID, event, payload)
}

// Event names sent to a Sink, in the order ReportHit emits them.
const (
	EventHit        = "hit"
	EventUserParams = "userParams"
	EventParams     = "params"
)

// UserParams is the payload of a "userParams" event.
type UserParams struct {
	UserID string `json:"UserID"`
}

// Params is the payload of a "params" event.
type Params struct {
	UserID string `json:"userId"`
}
