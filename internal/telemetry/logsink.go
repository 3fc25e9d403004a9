package telemetry

import (
	"encoding/json"
	"fmt"

	"github.com/asteroid-belt/ymstat/internal/log"
)

// LogSink writes every event to the module logger instead of a transport.
type LogSink struct{}

// Send logs the event as ym(counter, "event", payload).
func (LogSink) Send(counterID int, event string, payload any) {
	log.Println(FormatEvent(counterID, event, payload))
}

// FormatEvent renders an event the way the browser call would look.
func FormatEvent(counterID int, event string, payload any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		data = []byte(fmt.Sprintf("%q", fmt.Sprint(payload)))
	}
	return fmt.Sprintf("ym(%d, %q, %s)", counterID, event, data)
}
