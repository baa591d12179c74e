package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondText_KeywordPriority(t *testing.T) {
	r := NewResponder(nil)

	cases := []struct {
		text  string
		topic string
	}{
		{"I FEEL ANXIOUS TODAY", "anxiety"},
		{"my anxiety and stress are bad", "anxiety"},
		{"feeling sad and stressed", "depression"},
		{"I'm overwhelmed", "stress"},
		{"can't sleep", "sleep"},
		{"insomnia again", "sleep"},
		{"looking for a therapist", "therapy"},
		{"I need support", "help"},
		{"Please HELP", "help"},
		{"slow down", "depression"},
	}
	for _, tc := range cases {
		reply := r.RespondText(tc.text)
		assert.Equal(t, KindText, reply.Kind, tc.text)
		assert.Equal(t, tc.topic, reply.Topic, tc.text)
	}
}

func TestRespondText_Fallback(t *testing.T) {
	r := NewResponder(nil)
	reply := r.RespondText("what is the weather")
	assert.Equal(t, FallbackResponse, reply.Content)
	assert.Empty(t, reply.Topic)
}

func TestRespondOption(t *testing.T) {
	r := NewResponder(nil)
	for _, opt := range r.Catalog().Options {
		reply, err := r.RespondOption(opt.ID)
		require.NoError(t, err)
		assert.Equal(t, opt.Response, reply.Content)
		assert.Equal(t, opt.Category, reply.Category)
		assert.Equal(t, KindOption, reply.Kind)
	}

	_, err := r.RespondOption("weather")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestRespondFollowup(t *testing.T) {
	r := NewResponder(nil)

	reply := r.RespondFollowup("Book consultation")
	assert.Contains(t, reply.Content, "free 15-minute initial consultation")
	reply = r.RespondFollowup("BREATHING EXERCISES")
	assert.Contains(t, reply.Content, "4-7-8 breathing technique")

	reply = r.RespondFollowup("Emergency help")
	assert.Equal(t, FallbackResponse, reply.Content)
	assert.Equal(t, KindFollowup, reply.Kind)
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.Len(t, c.Categories, 6)
	assert.Len(t, c.Options, 12)
	for _, opt := range c.Options {
		_, ok := c.Category(opt.Category)
		assert.True(t, ok, "option %s has unknown category", opt.ID)
		assert.True(t, opt.Icon.Valid(), "option %s", opt.ID)
	}
	assert.Len(t, c.OptionsFor("immediate"), 3)
	assert.Empty(t, c.OptionsFor("nope"))
}
