package telemetry

import (
	"github.com/asteroid-belt/ymstat/internal/identity"
)

// DefaultPath is reported when no location provider is configured.
const DefaultPath = "/"

// Reporter sends hits tagged with a pseudonymous user id.
// The raw email is hashed before anything reaches the sink.
type Reporter struct {
	sink     Sink
	hasher   identity.Hasher
	location func() string
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithHasher overrides the identity hasher.
func WithHasher(h identity.Hasher) Option {
	return func(r *Reporter) { r.hasher = h }
}

// WithLocation sets the provider of the current navigation path.
func WithLocation(fn func() string) Option {
	return func(r *Reporter) { r.location = fn }
}

// NewReporter creates a Reporter. A nil sink is allowed: the reporter
// then computes ids but sends nothing.
func NewReporter(sink Sink, opts ...Option) *Reporter {
	r := &Reporter{
		sink:   sink,
		hasher: identity.DefaultHasher,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReportHit sends, in order, a "hit" event with the current path, a
// "userParams" event and a "params" event, both carrying the
// pseudonymous id of email. Without a sink nothing is sent.
// It returns the computed id.
func (r *Reporter) ReportHit(counterID int, email string) string {
	pseudoID := r.hasher.PseudonymousID(email)
	if r.sink == nil {
		return pseudoID
	}

	r.sink.Send(counterID, EventHit, r.path())
	r.sink.Send(counterID, EventUserParams, UserParams{UserID: pseudoID})
	r.sink.Send(counterID, EventParams, Params{UserID: pseudoID})
	return pseudoID
}

func (r *Reporter) path() string {
	if r.location == nil {
		return DefaultPath
	}
	if p := r.location(); p != "" {
		return p
	}
	return DefaultPath
}
