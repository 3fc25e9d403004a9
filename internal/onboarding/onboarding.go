// Package onboarding decides when to offer the training course to a user
// and records their answer.
package onboarding

import (
	"errors"
	"fmt"

	"github.com/asteroid-belt/ymstat/internal/identity"
)

// DefaultCourseURL is opened when a user accepts the course.
const DefaultCourseURL = "https://study.brusnika.ru/catalog/content/info/5845"

// DeclinedNotice is shown after a user declines the course.
const DeclinedNotice = "You can always find the course in your account settings"

// ErrNoUser is returned when an answer is recorded without a signed-in user.
var ErrNoUser = errors.New("no signed-in user")

// StateStore persists course answers keyed by pseudonymous user id.
type StateStore interface {
	GetLearning(userID string) (*bool, error)
	SetLearning(userID string, completed bool) error
}

// Outcome is the result of answering the prompt.
type Outcome struct {
	// OpenURL is set when the course should be opened.
	OpenURL string
	// Notice is a message for the user, if any.
	Notice string
}

// Prompt drives the course dialog for a store.
type Prompt struct {
	store     StateStore
	hasher    identity.Hasher
	courseURL string
}

// NewPrompt creates a Prompt. An empty courseURL means DefaultCourseURL.
func NewPrompt(store StateStore, courseURL string) *Prompt {
	if courseURL == "" {
		courseURL = DefaultCourseURL
	}
	return &Prompt{
		store:     store,
		hasher:    identity.DefaultHasher,
		courseURL: courseURL,
	}
}

// ShouldPrompt reports whether the dialog should open for email.
// An empty email means nobody is signed in, which never prompts.
func (p *Prompt) ShouldPrompt(email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	answered, err := p.store.GetLearning(p.hasher.PseudonymousID(email))
	if err != nil {
		return false, fmt.Errorf("load learning state: %w", err)
	}
	return answered == nil, nil
}

// Accept records that the user took the course and returns the URL to open.
func (p *Prompt) Accept(email string) (Outcome, error) {
	if err := p.record(email, true); err != nil {
		return Outcome{}, err
	}
	return Outcome{OpenURL: p.courseURL}, nil
}

// Deny records that the user declined the course.
func (p *Prompt) Deny(email string) (Outcome, error) {
	if err := p.record(email, false); err != nil {
		return Outcome{}, err
	}
	return Outcome{Notice: DeclinedNotice}, nil
}

// Later closes the dialog without recording anything; it opens again next session.
func (p *Prompt) Later() Outcome {
	return Outcome{}
}

func (p *Prompt) record(email string, completed bool) error {
	if email == "" {
		return ErrNoUser
	}
	if err := p.store.SetLearning(p.hasher.PseudonymousID(email), completed); err != nil {
		return fmt.Errorf("save learning state: %w", err)
	}
	return nil
}
