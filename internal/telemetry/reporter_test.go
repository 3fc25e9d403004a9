package telemetry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteroid-belt/ymstat/internal/identity"
)

type sentEvent struct {
	counterID int
	event     string
	payload   any
}

// recordingSink captures every Send call.
type recordingSink struct {
	events []sentEvent
}

func (s *recordingSink) Send(counterID int, event string, payload any) {
	s.events = append(s.events, sentEvent{counterID, event, payload})
}

func TestReportHit_FanOut(t *testing.T) {
	sink := &recordingSink{}
	r := NewReporter(sink, WithLocation(func() string { return "/c/new" }))

	id := r.ReportHit(12345, "user@example.com")

	want := identity.PseudonymousID("user@example.com")
	assert.Equal(t, want, id)
	require.Len(t, sink.events, 3)

	assert.Equal(t, sentEvent{12345, EventHit, "/c/new"}, sink.events[0])
	assert.Equal(t, sentEvent{12345, EventUserParams, UserParams{UserID: want}}, sink.events[1])
	assert.Equal(t, sentEvent{12345, EventParams, Params{UserID: want}}, sink.events[2])
}

func TestReportHit_NoSink(t *testing.T) {
	r := NewReporter(nil)

	var id string
	assert.NotPanics(t, func() {
		id = r.ReportHit(1, "user@example.com")
	})
	assert.Equal(t, identity.PseudonymousID("user@example.com"), id)
}

func TestReportHit_NeverSendsRawEmail(t *testing.T) {
	const email = "secret.person@example.com"
	sink := &recordingSink{}
	NewReporter(sink).ReportHit(7, email)

	for _, ev := range sink.events {
		data, err := json.Marshal(ev.payload)
		require.NoError(t, err)
		assert.NotContains(t, string(data), email)
		assert.NotContains(t, string(data), "secret.person")
	}
}

func TestReportHit_DefaultPath(t *testing.T) {
	tests := []struct {
		name     string
		location func() string
	}{
		{"no provider", nil},
		{"empty path", func() string { return "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			NewReporter(sink, WithLocation(tt.location)).ReportHit(1, "a@b.c")
			require.NotEmpty(t, sink.events)
			assert.Equal(t, DefaultPath, sink.events[0].payload)
		})
	}
}

func TestReportHit_CustomHasher(t *testing.T) {
	h := identity.NewHasher("other")
	sink := &recordingSink{}

	id := NewReporter(sink, WithHasher(h)).ReportHit(1, "user@example.com")

	assert.Equal(t, h.PseudonymousID("user@example.com"), id)
	assert.NotEqual(t, identity.PseudonymousID("user@example.com"), id)
}

func TestSinkFunc(t *testing.T) {
	var names []string
	sink := SinkFunc(func(_ int, event string, _ any) {
		names = append(names, event)
	})

	NewReporter(sink).ReportHit(3, "user@example.com")

	assert.Equal(t, []string{"hit", "userParams", "params"}, names)
}

func TestPayloadJSONKeys(t *testing.T) {
	up, err := json.Marshal(UserParams{UserID: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"UserID":"x"}`, string(up))

	p, err := json.Marshal(Params{UserID: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":"x"}`, string(p))
}
