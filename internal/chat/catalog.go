// Package chat implements the clinic's scripted support assistant: a fixed
// catalog of options, keyword replies for free text, the transcript and the
// timed delivery of replies.
package chat

import "github.com/Anshgoswami194/mind-embrace-connect/internal/icon"

const (
	// Greeting is the single assistant message a fresh or reset chat shows.
	Greeting = "Hello! I'm Mantara's AI Mental Health Assistant. I'm here to provide support, resources, and guidance for your mental wellbeing. How can I help you today?"

	// Disclaimer is shown beneath the message input.
	Disclaimer = "This AI assistant provides general support. For personalized care, consult our therapists."
)

// Category groups catalog options.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Color string `json:"color" yaml:"color"`
}

// Option is a predefined support topic with its canned reply.
type Option struct {
	ID        string   `json:"id" yaml:"id"`
	Label     string   `json:"label" yaml:"label"`
	Icon      icon.ID  `json:"icon" yaml:"icon"`
	Category  string   `json:"category" yaml:"category"`
	Color     string   `json:"color" yaml:"color"`
	Response  string   `json:"response" yaml:"response"`
	Followups []string `json:"followups,omitempty" yaml:"followups"`
}

// QuickAction is offered once an option reply has been delivered. Actions
// with Reset set start the chat over instead of sending a follow-up.
type QuickAction struct {
	Label    string  `json:"label"`
	Followup string  `json:"followup,omitempty"`
	Icon     icon.ID `json:"icon"`
	Reset    bool    `json:"reset,omitempty"`
}

// QuickActions lists the actions shown in the quick actions view.
var QuickActions = []QuickAction{
	{Label: "Book Session", Followup: "Book consultation", Icon: icon.Calendar},
	{Label: "Find Therapist", Followup: "Find a therapist", Icon: icon.Users},
	{Label: "Emergency", Followup: "Emergency help", Icon: icon.Phone},
	{Label: "Start Over", Icon: icon.Target, Reset: true},
}

// Catalog holds the categories and options in display order.
type Catalog struct {
	Categories []Category `json:"categories"`
	Options    []Option   `json:"options"`
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Option looks up an option by id.
func (c *Catalog) Option(id string) (Option, bool) {
	for _, opt := range c.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// OptionsFor returns the options of a category in catalog order.
func (c *Catalog) OptionsFor(category string) []Option {
	var out []Option
	for _, opt := range c.Options {
		if opt.Category == category {
			out = append(out, opt)
		}
	}
	return out
}

// DefaultCatalog returns the clinic's built-in support catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Categories: []Category{
			{ID: "crisis", Label: "Crisis Support", Color: "bg-red-100 text-red-800"},
			{ID: "immediate", Label: "Immediate Help", Color: "bg-blue-100 text-blue-800"},
			{ID: "wellness", Label: "Wellness & Self-Care", Color: "bg-green-100 text-green-800"},
			{ID: "relationships", Label: "Relationships", Color: "bg-pink-100 text-pink-800"},
			{ID: "professional", Label: "Professional Help", Color: "bg-purple-100 text-purple-800"},
			{ID: "growth", Label: "Growth & Goals", Color: "bg-yellow-100 text-yellow-800"},
		},
		Options: []Option{
			{
				ID:        "crisis",
				Label:     "I need immediate help",
				Icon:      icon.Phone,
				Category:  "crisis",
				Color:     "bg-red-500",
				Response:  "I'm here for you right now. If you're having thoughts of suicide or self-harm, please contact emergency services (911) immediately. You can also reach the 988 Suicide & Crisis Lifeline (call or text 988) or text HOME to 741741 for the Crisis Text Line. You are valued and help is available 24/7.",
				Followups: []string{"Call 988 Lifeline", "Text Crisis Line", "Emergency Services", "Find local resources"},
			},
			{
				ID:        "anxiety",
				Label:     "I'm feeling anxious",
				Icon:      icon.Brain,
				Category:  "immediate",
				Color:     "bg-blue-500",
				Response:  "Anxiety is very common and you're not alone. Let's try some immediate techniques: Take slow, deep breaths (4 counts in, 7 counts hold, 8 counts out). Try the 5-4-3-2-1 grounding technique: name 5 things you see, 4 you can touch, 3 you hear, 2 you smell, 1 you taste. Would you like me to guide you through a breathing exercise?",
				Followups: []string{"Breathing exercises", "Grounding techniques", "Relaxation tips", "Find a therapist"},
			},
			{
				ID:        "depression",
				Label:     "I'm feeling depressed",
				Icon:      icon.Heart,
				Category:  "immediate",
				Color:     "bg-purple-500",
				Response:  "Thank you for sharing. Depression can feel overwhelming, but there is hope. Small steps matter: try to maintain a daily routine, stay connected with people you trust, get some sunlight, and consider gentle movement. Remember, seeking help is a sign of strength, not weakness.",
				Followups: []string{"Self-care tips", "Support groups", "Professional help", "Daily routine ideas"},
			},
			{
				ID:        "stress",
				Label:     "I'm stressed about work/life",
				Icon:      icon.Zap,
				Category:  "immediate",
				Color:     "bg-orange-500",
				Response:  "Work-life stress is incredibly common. Let's focus on what you can control: break large tasks into smaller ones, set healthy boundaries, take regular breaks, and practice saying 'no' when overwhelmed. Time management and self-care aren't selfish - they're essential.",
				Followups: []string{"Time management", "Work-life balance", "Boundary setting", "Stress management"},
			},
			{
				ID:        "sleep",
				Label:     "Sleep problems",
				Icon:      icon.Moon,
				Category:  "wellness",
				Color:     "bg-indigo-500",
				Response:  "Good sleep is crucial for mental health. Try creating a bedtime routine: no screens 1 hour before bed, keep your room cool and dark, avoid caffeine after 2 PM, and try relaxation techniques like progressive muscle relaxation or meditation.",
				Followups: []string{"Sleep hygiene tips", "Relaxation techniques", "Bedtime routines", "Professional help"},
			},
			{
				ID:        "selfcare",
				Label:     "Self-care ideas",
				Icon:      icon.Coffee,
				Category:  "wellness",
				Color:     "bg-green-500",
				Response:  "Self-care isn't selfish - it's necessary! Try: taking a warm bath, going for a walk in nature, journaling your thoughts, calling a friend, practicing mindfulness, reading a book, or doing something creative. What activities usually make you feel better?",
				Followups: []string{"Mindfulness exercises", "Creative activities", "Physical wellness", "Social connection"},
			},
			{
				ID:        "mindfulness",
				Label:     "Mindfulness & meditation",
				Icon:      icon.Lightbulb,
				Category:  "wellness",
				Color:     "bg-yellow-500",
				Response:  "Mindfulness can significantly reduce stress and anxiety. Start with just 5 minutes daily: focus on your breath, notice thoughts without judgment, try body scans, or use guided meditation apps. Even mindful walking or eating can be beneficial.",
				Followups: []string{"Guided meditations", "Breathing exercises", "Body scan techniques", "Mindful activities"},
			},
			{
				ID:        "relationships",
				Label:     "Relationship issues",
				Icon:      icon.Users,
				Category:  "relationships",
				Color:     "bg-pink-500",
				Response:  "Relationships can be challenging but also rewarding. Focus on healthy communication: use 'I' statements, listen actively, set boundaries, and remember that it's okay to ask for space when needed. Consider couples therapy for deeper issues.",
				Followups: []string{"Communication tips", "Boundary setting", "Couples therapy", "Conflict resolution"},
			},
			{
				ID:        "loneliness",
				Label:     "Feeling lonely",
				Icon:      icon.Heart,
				Category:  "relationships",
				Color:     "bg-rose-500",
				Response:  "Loneliness is a common human experience. Try reaching out to one person today - a text, call, or meeting for coffee. Consider joining clubs, volunteering, or online communities with shared interests. Remember, quality connections matter more than quantity.",
				Followups: []string{"Social activities", "Support groups", "Community resources", "Making new friends"},
			},
			{
				ID:        "therapy",
				Label:     "I want to start therapy",
				Icon:      icon.BookOpen,
				Category:  "professional",
				Color:     "bg-teal-500",
				Response:  "That's a wonderful step toward better mental health! Mantara offers various therapy options: individual therapy, group sessions, online consultations, and specialized treatments. Our licensed therapists specialize in anxiety, depression, trauma, relationships, and more.",
				Followups: []string{"Book consultation", "Therapy types", "Find right therapist", "Insurance coverage"},
			},
			{
				ID:        "medication",
				Label:     "Questions about medication",
				Icon:      icon.Shield,
				Category:  "professional",
				Color:     "bg-cyan-500",
				Response:  "Medication can be an effective part of mental health treatment. Our psychiatrists can evaluate if medication might help you, discuss options, and monitor your progress. Always consult with a healthcare provider before starting, stopping, or changing medications.",
				Followups: []string{"Psychiatrist consultation", "Medication options", "Side effects", "Insurance coverage"},
			},
			{
				ID:        "goals",
				Label:     "Setting mental health goals",
				Icon:      icon.Target,
				Category:  "growth",
				Color:     "bg-emerald-500",
				Response:  "Setting mental health goals is empowering! Start with SMART goals: Specific, Measurable, Achievable, Relevant, Time-bound. Examples: 'I'll practice 10 minutes of mindfulness daily this week' or 'I'll reach out to one friend each day.' What area would you like to focus on?",
				Followups: []string{"Goal setting tips", "Habit building", "Progress tracking", "Motivation strategies"},
			},
		},
	}
}
