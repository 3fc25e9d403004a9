package telemetry

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/posthog/posthog-go"
)

// DefaultEndpoint is the PostHog ingestion host used when none is configured.
const DefaultEndpoint = "https://us.i.posthog.com"

// EnabledEnvVar opts out of tracking when set to "false".
const EnabledEnvVar = "YMSTAT_TELEMETRY_TRACKING_ENABLED"

// InstallIDProvider is an interface for getting the anonymous install ID.
// This allows for testing without a real database.
type InstallIDProvider interface {
	GetOrCreateInstallID() string
}

// PostHogConfig configures the PostHog sink.
type PostHogConfig struct {
	APIKey   string
	Endpoint string
}

// enqueuer is the subset of posthog.Client the sink needs.
type enqueuer interface {
	Enqueue(posthog.Message) error
	Close() error
}

// PostHogSink forwards sink events to PostHog.
//
// "hit" becomes a $pageview captured under the anonymous install id,
// "userParams" identifies the pseudonymous user and links the install id
// to it, and "params" is captured under the pseudonymous id.
type PostHogSink struct {
	client    enqueuer
	installID string
	mu        sync.Mutex
}

// IsEnabled returns true if tracking is enabled for cfg.
// Tracking is opt-out: enabled by default unless YMSTAT_TELEMETRY_TRACKING_ENABLED=false.
func IsEnabled(cfg PostHogConfig) bool {
	return os.Getenv(EnabledEnvVar) != "false" && cfg.APIKey != ""
}

// NewPostHogSink creates a PostHog-backed sink, or returns nil when tracking
// is disabled or the client cannot be built. If provider is nil, a new UUID
// is generated per session.
func NewPostHogSink(cfg PostHogConfig, provider InstallIDProvider) *PostHogSink {
	if !IsEnabled(cfg) {
		return nil
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	client, err := posthog.NewWithConfig(cfg.APIKey, posthog.Config{
		Endpoint:  endpoint,
		BatchSize: 250,
		Interval:  5 * time.Second,
	})
	if err != nil {
		return nil
	}

	return newPostHogSink(client, provider)
}

func newPostHogSink(client enqueuer, provider InstallIDProvider) *PostHogSink {
	var installID string
	if provider != nil {
		installID = provider.GetOrCreateInstallID()
	} else {
		installID = uuid.New().String()
	}
	return &PostHogSink{client: client, installID: installID}
}

// Send maps one sink event onto a PostHog message and enqueues it.
// Enqueue errors are dropped: reporting is fire-and-forget.
func (s *PostHogSink) Send(counterID int, event string, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	props := posthog.NewProperties()
	for k, v := range baseProperties() {
		props.Set(k, v)
	}
	props.Set("$geoip_disable", true)
	props.Set(PropCounterID, strconv.Itoa(counterID))
	props.Set(PropInstallID, s.installID)

	var msg posthog.Message
	switch p := payload.(type) {
	case string:
		props.Set(PropPathname, p)
		msg = posthog.Capture{
			DistinctId: s.installID,
			Event:      PostHogEventPageView,
			Properties: props,
		}
	case UserParams:
		props.Set("UserID", p.UserID)
		props.Set("$anon_distinct_id", s.installID)
		msg = posthog.Identify{
			DistinctId: p.UserID,
			Properties: props,
		}
	case Params:
		props.Set("userId", p.UserID)
		msg = posthog.Capture{
			DistinctId: p.UserID,
			Event:      PostHogEventParams,
			Properties: props,
		}
	default:
		props.Set("payload", p)
		msg = posthog.Capture{
			DistinctId: s.installID,
			Event:      event,
			Properties: props,
		}
	}

	_ = s.client.Enqueue(msg)
}

// InstallID returns the anonymous install id used for page views.
func (s *PostHogSink) InstallID() string {
	return s.installID
}

// Close flushes remaining events and closes the client.
func (s *PostHogSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.client.Close()
}
