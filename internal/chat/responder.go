// Package chat implements the canned-response assistant: a keyword
// dispatcher over fixed reply sets and a session that owns the message
// timeline. Replies are scripted; the only computation is pulling live
// numbers from the engine.
package chat

import (
	"fmt"
	"math/rand"
	"strings"

	"dreambook/internal/engine"
	"dreambook/internal/models"
)

// Responder turns user text into an assistant reply. The random source
// is injected so tests can pin which synonym gets picked.
type Responder struct {
	rng *rand.Rand
}

// NewResponder creates a responder backed by the given random source
func NewResponder(rng *rand.Rand) *Responder {
	return &Responder{rng: rng}
}

// Greeting is the assistant's opening message on a fresh session
const Greeting = "Hi there! I'm your Dream Assistant. I can help you discover new dreams, track your progress, and stay motivated. What's on your mind?"

// Respond matches the lowercased input against an ordered list of
// keyword predicates and returns a reply from the first matching set.
// Unmatched input falls through to generic deflections.
func (r *Responder) Respond(message string, profile *models.UserProfile, dreams []models.Dream) string {
	lower := strings.ToLower(message)
	name := "friend"
	if profile != nil && profile.Name != "" {
		name = profile.Name
	}

	switch {
	case isGreeting(lower):
		return r.pick(
			fmt.Sprintf("Hey %s! Great to see you. What dreams are we working on today?", name),
			fmt.Sprintf("Hello %s! Ready to make some progress on your goals?", name),
			fmt.Sprintf("Hi %s! I'm here to help. What would you like to focus on?", name),
		)

	case containsAny(lower, "progress", "how am i", "status", "update"):
		return r.progressSnapshot(name, dreams)

	case isMotivationRequest(lower):
		return r.pick(
			fmt.Sprintf("Remember, %s: every expert was once a beginner. Your dreams are valid and absolutely achievable!", name),
			"The fact that you're here working on your dreams puts you ahead of most people. Keep going!",
			fmt.Sprintf("Think about where you'll be a year from now if you keep taking small steps every day. You've got this, %s!", name),
			"Dreams don't work unless you do — but the good news? You're already doing the work!",
			fmt.Sprintf("Every step forward, no matter how small, is real progress. Be proud of yourself, %s!", name),
		)

	case containsAny(lower, "suggest", "recommend", "idea", "new dream"):
		return r.suggestions(profile, dreams)

	case containsAny(lower, "help", "what can you"):
		return "I can help you with:\n\n• Track your dream progress\n• Discover new dreams and goals\n• Break down big dreams into steps\n• Stay motivated and focused\n• Review your achievements\n\nJust ask me anything!"

	case strings.Contains(lower, "thank"):
		return r.pick(
			fmt.Sprintf("You're welcome, %s! I'm always here when you need a boost.", name),
			"Anytime! That's what I'm here for. Keep dreaming big!",
			"My pleasure! Let me know if there's anything else I can help with.",
		)

	case containsAny(lower, "complete", "finish", "done", "achieve"):
		completed := models.CompletedDreams(dreams)
		if len(completed) == 0 {
			return "You're working hard toward your first completed dream! Keep at it — the feeling of achievement will be incredible."
		}
		plural := "s"
		if len(completed) == 1 {
			plural = ""
		}
		return fmt.Sprintf("Amazing work! You've already completed %d dream%s. Each one is proof that you can achieve anything you set your mind to!", len(completed), plural)
	}

	return r.pick(
		fmt.Sprintf("That's an interesting thought, %s! What dream does this connect to?", name),
		"I love your energy! Have you checked your dream progress lately? You might be closer than you think.",
		"Great point! Remember, achieving your dreams is a journey. Every day counts.",
		fmt.Sprintf("What's the one thing you could do today to move closer to your biggest dream, %s?", name),
		"Thanks for sharing! Is there a specific dream you'd like to focus on right now?",
	)
}

// NoDreamsReply is returned for progress queries when no dreams exist
const NoDreamsReply = "You haven't added any dreams yet! Head to the Discover tab — I've curated personalized suggestions based on your skills and interests."

func (r *Responder) progressSnapshot(name string, dreams []models.Dream) string {
	total := len(dreams)
	if total == 0 {
		return NoDreamsReply
	}
	completed := len(models.CompletedDreams(dreams))
	inProgress := total - completed
	avg := int(engine.AverageActiveProgress(dreams) * 100)
	return fmt.Sprintf("Here's your snapshot, %s:\n\n%d total dreams\n%d completed\n%d in progress\n%d%% average progress\n\nKeep pushing forward! Every step counts.",
		name, total, completed, inProgress, avg)
}

func (r *Responder) suggestions(profile *models.UserProfile, dreams []models.Dream) string {
	if profile != nil {
		titles := make([]string, 0, len(dreams))
		for _, d := range dreams {
			titles = append(titles, d.Title)
		}
		suggested := engine.Suggest(profile, titles)
		if len(suggested) > 3 {
			suggested = suggested[:3]
		}
		if len(suggested) > 0 {
			var b strings.Builder
			for _, t := range suggested {
				fmt.Fprintf(&b, "  • %s\n", t.Title)
			}
			return fmt.Sprintf("Based on your profile, here are some dreams that might excite you:\n\n%s\nCheck the Discover tab for the full list!", b.String())
		}
	}
	return "Check out the Discover tab — I've curated personalized dream suggestions just for you based on your skills and interests!"
}

func (r *Responder) pick(options ...string) string {
	return options[r.rng.Intn(len(options))]
}

func isGreeting(lower string) bool {
	return strings.HasPrefix(lower, "hi") || strings.HasPrefix(lower, "hello") ||
		strings.HasPrefix(lower, "hey") || strings.Contains(lower, "good morning") ||
		strings.Contains(lower, "good evening")
}

func isMotivationRequest(lower string) bool {
	if containsAny(lower, "motivat", "inspire", "encourage") {
		return true
	}
	return strings.Contains(lower, "feel") && containsAny(lower, "down", "stuck")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
