package chat

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"dreambook/internal/models"
)

// Message is a single entry in the chat timeline. Messages live only in
// memory for the duration of the session.
type Message struct {
	ID        string
	Content   string
	IsUser    bool
	Timestamp time.Time
}

const (
	// Simulated typing delay bounds. Cosmetic, not a contract.
	minComposeDelay = 600 * time.Millisecond
	maxComposeDelay = 1600 * time.Millisecond
)

type composeJob struct {
	text    string
	profile *models.UserProfile
	dreams  []models.Dream
}

// Session owns an append-only message timeline and a composing flag.
// User submissions append immediately; replies are computed after a
// simulated delay. Composition is serialized: rapid submissions queue
// up and replies land in submission order, never interleaved.
type Session struct {
	mu        sync.Mutex
	messages  []Message
	composing bool

	responder *Responder
	rng       *rand.Rand
	sleep     func(time.Duration)
	now       func() time.Time

	jobs    chan composeJob
	updates chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
}

// Option customizes a Session, mainly for tests
type Option func(*Session)

// WithSleep replaces the delay function (tests pass a no-op)
func WithSleep(fn func(time.Duration)) Option {
	return func(s *Session) { s.sleep = fn }
}

// WithClock replaces the timestamp source
func WithClock(fn func() time.Time) Option {
	return func(s *Session) { s.now = fn }
}

// NewSession creates a session seeded with the assistant greeting and
// starts the compose worker. Callers must Close the session when the
// chat view goes away; a reply already in flight is still appended,
// matching the source behavior of replies landing on a dismissed view.
func NewSession(rng *rand.Rand, opts ...Option) *Session {
	s := &Session{
		responder: NewResponder(rng),
		rng:       rng,
		sleep:     time.Sleep,
		now:       time.Now,
		jobs:      make(chan composeJob, 16),
		updates:   make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.messages = append(s.messages, Message{ID: uuid.New().String(), Content: Greeting, IsUser: false, Timestamp: s.now()})

	s.wg.Add(1)
	go s.worker()
	return s
}

// Send appends the trimmed user message and queues a reply. Empty or
// whitespace-only input is rejected. Returns whether the message was
// accepted.
func (s *Session) Send(text string, profile *models.UserProfile, dreams []models.Dream) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	s.mu.Lock()
	s.messages = append(s.messages, Message{
		ID: uuid.New().String(), Content: trimmed, IsUser: true, Timestamp: s.now(),
	})
	s.composing = true
	s.mu.Unlock()
	s.notify()

	select {
	case s.jobs <- composeJob{text: trimmed, profile: profile, dreams: dreams}:
	case <-s.done:
	}
	return true
}

// Messages returns a copy of the timeline
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Composing reports whether a reply is pending
func (s *Session) Composing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.composing
}

// Updates signals whenever the timeline or composing flag changes. The
// channel is coalescing: a pending signal absorbs later ones.
func (s *Session) Updates() <-chan struct{} {
	return s.updates
}

// Close stops the compose worker and waits for it to drain
func (s *Session) Close() {
	close(s.done)
	s.wg.Wait()
}

func (s *Session) worker() {
	defer s.wg.Done()
	for {
		select {
		case job := <-s.jobs:
			s.compose(job)
		case <-s.done:
			return
		}
	}
}

func (s *Session) compose(job composeJob) {
	s.mu.Lock()
	delay := minComposeDelay + time.Duration(s.rng.Int63n(int64(maxComposeDelay-minComposeDelay)))
	s.mu.Unlock()
	s.sleep(delay)

	s.mu.Lock()
	reply := s.responder.Respond(job.text, job.profile, job.dreams)
	s.messages = append(s.messages, Message{
		ID: uuid.New().String(), Content: reply, IsUser: false, Timestamp: s.now(),
	})
	// Stay in composing state while more submissions are queued
	s.composing = len(s.jobs) > 0
	s.mu.Unlock()
	s.notify()
}

func (s *Session) notify() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
