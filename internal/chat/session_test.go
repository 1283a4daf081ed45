package chat

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreambook/internal/models"
)

func newTestSession() *Session {
	return NewSession(
		rand.New(rand.NewSource(1)),
		WithSleep(func(time.Duration) {}),
	)
}

// waitForMessages polls until the timeline reaches n entries and
// composing is clear, or the deadline passes
func waitForMessages(t *testing.T, s *Session, n int) []Message {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			msgs := s.Messages()
			t.Fatalf("timed out waiting for %d messages, have %d", n, len(msgs))
			return msgs
		case <-time.After(5 * time.Millisecond):
			if msgs := s.Messages(); len(msgs) >= n && !s.Composing() {
				return msgs
			}
		}
	}
}

func TestSession_StartsWithGreeting(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, Greeting, msgs[0].Content)
	assert.False(t, msgs[0].IsUser)
	assert.False(t, s.Composing())
}

func TestSession_RejectsEmptyInput(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	assert.False(t, s.Send("", nil, nil))
	assert.False(t, s.Send("   \t\n", nil, nil))
	assert.Len(t, s.Messages(), 1)
	assert.False(t, s.Composing())
}

func TestSession_SendAppendsUserMessageAndReply(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	require.True(t, s.Send("  hello  ", &models.UserProfile{Name: "Ada"}, nil))

	msgs := waitForMessages(t, s, 3)
	assert.Equal(t, "hello", msgs[1].Content)
	assert.True(t, msgs[1].IsUser)
	assert.False(t, msgs[2].IsUser)
	assert.Contains(t, msgs[2].Content, "Ada")
}

func TestSession_SerializesRapidSubmissions(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	dreams := []models.Dream{{Title: "a", Completed: true}}
	require.True(t, s.Send("what's my progress", nil, dreams))
	require.True(t, s.Send("thank you", nil, dreams))

	msgs := waitForMessages(t, s, 5)

	var replies []Message
	for _, m := range msgs[1:] {
		if !m.IsUser {
			replies = append(replies, m)
		}
	}
	require.Len(t, replies, 2)
	// Replies land in submission order, never interleaved
	assert.Contains(t, replies[0].Content, "total dreams")
	assert.NotContains(t, replies[1].Content, "total dreams")
}

func TestSession_UpdatesSignal(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	s.Send("hello", nil, nil)

	select {
	case <-s.Updates():
	case <-time.After(2 * time.Second):
		t.Fatal("no update signal after send")
	}
}

func TestSession_ClockInjection(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := NewSession(
		rand.New(rand.NewSource(1)),
		WithSleep(func(time.Duration) {}),
		WithClock(func() time.Time { return fixed }),
	)
	defer s.Close()

	s.Send("hello", nil, nil)
	msgs := waitForMessages(t, s, 3)
	for _, m := range msgs {
		assert.Equal(t, fixed, m.Timestamp)
	}
}

func TestSession_MessagesReturnsCopy(t *testing.T) {
	s := newTestSession()
	defer s.Close()

	msgs := s.Messages()
	msgs[0].Content = "mutated"
	assert.Equal(t, Greeting, s.Messages()[0].Content)
}
