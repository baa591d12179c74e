package chat

import (
	"errors"
	"strings"
)

// ErrUnknownOption is returned for option ids outside the catalog.
var ErrUnknownOption = errors.New("chat: unknown option")

// FallbackResponse answers free text and follow-ups that match nothing.
const FallbackResponse = "Thank you for sharing that with me. I'm here to listen and provide support. While I can offer general mental health information and resources, for personalized care, I'd recommend connecting with one of our licensed therapists. Is there a specific aspect of your mental health you'd like to focus on?"

// Reply kinds.
const (
	KindOption   = "option"
	KindFollowup = "followup"
	KindText     = "text"
)

// Reply is the assistant's answer to one user action.
type Reply struct {
	Kind     string `json:"kind"`
	Topic    string `json:"topic,omitempty"`
	Category string `json:"category,omitempty"`
	Content  string `json:"content"`
}

// keywordRule answers free text containing any of its keywords.
type keywordRule struct {
	Topic    string
	Keywords []string
	Response string
}

// keywordRules are checked in order; the first match wins.
var keywordRules = []keywordRule{
	{
		Topic:    "anxiety",
		Keywords: []string{"anxious", "anxiety"},
		Response: "I understand you're feeling anxious. That's a very common experience, and you're not alone. Try some deep breathing - inhale for 4 counts, hold for 4, exhale for 6. Would you like me to guide you through some specific anxiety-coping techniques?",
	},
	{
		Topic:    "depression",
		Keywords: []string{"depressed", "sad", "down"},
		Response: "I hear that you're going through a difficult time. These feelings are valid, and it's important to acknowledge them. Small steps can help - like getting some sunlight, talking to someone you trust, or doing one small self-care activity. How can I best support you right now?",
	},
	{
		Topic:    "stress",
		Keywords: []string{"stress", "overwhelmed"},
		Response: "Feeling stressed or overwhelmed is incredibly common, especially in today's world. Let's focus on what you can control right now. Can you identify one small task you could complete today? Sometimes breaking things down helps reduce that overwhelming feeling.",
	},
	{
		Topic:    "sleep",
		Keywords: []string{"sleep", "insomnia"},
		Response: "Sleep issues can really impact your mental health. Good sleep hygiene includes: keeping a consistent bedtime, avoiding screens before bed, and creating a relaxing bedtime routine. Are you having trouble falling asleep or staying asleep?",
	},
	{
		Topic:    "therapy",
		Keywords: []string{"therapy", "therapist"},
		Response: "Seeking therapy is a positive step toward better mental health! At Mantara, we offer various types of therapy including individual sessions, group therapy, and specialized treatments. Would you like help finding the right therapist for your needs?",
	},
	{
		Topic:    "help",
		Keywords: []string{"help", "support"},
		Response: "I'm here to help! Mantara offers comprehensive mental health support including crisis intervention, therapy, self-care resources, and professional guidance. What specific area would you like support with today?",
	},
}

// followupResponses is keyed by lowercased follow-up label.
var followupResponses = map[string]string{
	"book consultation":    "I'd be happy to help you book a consultation! You can schedule a free 15-minute initial consultation with one of our licensed therapists through our booking system, or call us directly at (555) MANTARA. What type of support are you most interested in?",
	"find a therapist":     "Finding the right therapist is important. At Mantara, we have specialists in anxiety, depression, trauma, relationships, and more. I can help match you based on your specific needs, preferences, and schedule. Would you like to tell me what you're looking for?",
	"breathing exercises":  "Let's try the 4-7-8 breathing technique: Breathe in through your nose for 4 counts, hold for 7 counts, then exhale through your mouth for 8 counts. Repeat 3-4 times. This activates your parasympathetic nervous system and promotes relaxation.",
	"grounding techniques": "Here's a helpful grounding exercise: Look around and name 5 things you can see, 4 things you can touch, 3 things you can hear, 2 things you can smell, and 1 thing you can taste. This helps bring you back to the present moment.",
}

// Responder picks replies. It holds no per-conversation state.
type Responder struct {
	catalog *Catalog
}

// NewResponder creates a responder over catalog, or the default catalog when nil.
func NewResponder(catalog *Catalog) *Responder {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Responder{catalog: catalog}
}

// Catalog returns the catalog the responder answers from.
func (r *Responder) Catalog() *Catalog { return r.catalog }

// RespondOption returns the canned reply of a catalog option.
func (r *Responder) RespondOption(id string) (Reply, error) {
	opt, ok := r.catalog.Option(id)
	if !ok {
		return Reply{}, ErrUnknownOption
	}
	return Reply{
		Kind:     KindOption,
		Topic:    opt.ID,
		Category: opt.Category,
		Content:  opt.Response,
	}, nil
}

// RespondText answers free text by case-insensitive substring match.
func (r *Responder) RespondText(text string) Reply {
	lower := strings.ToLower(text)
	for _, rule := range keywordRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return Reply{Kind: KindText, Topic: rule.Topic, Content: rule.Response}
			}
		}
	}
	return Reply{Kind: KindText, Content: FallbackResponse}
}

// RespondFollowup answers a follow-up label by exact lowercase match.
func (r *Responder) RespondFollowup(label string) Reply {
	key := strings.ToLower(label)
	if resp, ok := followupResponses[key]; ok {
		return Reply{Kind: KindFollowup, Topic: key, Content: resp}
	}
	return Reply{Kind: KindFollowup, Content: FallbackResponse}
}
