package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/assessment"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/chat"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/content"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAssessInteractive(t *testing.T) {
	// Answer 4, go back from question two, then re-answer everything with the
	// top option for a 15 point severe result.
	input := "9\n4\nb\n4\n4\n4\n4\n4\n"
	out, err := execute(t, input, "assess")
	require.NoError(t, err)

	assert.Contains(t, out, "Question 1 of 5 (20%)")
	assert.Contains(t, out, "Choose a number between 1 and 4.")
	assert.Contains(t, out, "Severe (score 15 of 15)")
	assert.Contains(t, out, assessment.Disclaimer)
}

func TestAssessQuit(t *testing.T) {
	out, err := execute(t, "1\nq\n", "assess")
	require.NoError(t, err)
	assert.Contains(t, out, "Assessment cancelled.")
	assert.NotContains(t, out, "Recommendation:")
}

func TestAssessAnswersJSON(t *testing.T) {
	out, err := execute(t, "", "assess",
		"--answers", "several-days,not-at-all,several-days,not-at-all,good", "-o", "json")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, float64(3), result["score"])
	assert.Equal(t, "Minimal", result["tier"])
}

func TestAssessAnswersErrors(t *testing.T) {
	_, err := execute(t, "", "assess", "--answers", "good")
	assert.Error(t, err)

	_, err = execute(t, "", "assess", "--answers", "a,b,c,d,e")
	assert.ErrorIs(t, err, assessment.ErrUnknownOption)
}

func TestChatBrowseAndType(t *testing.T) {
	cat := chat.DefaultCatalog()
	first := cat.Categories[0]
	option := cat.OptionsFor(first.ID)[0]

	// Open the first category, pick its first option, type a message, quit.
	input := "1\n1\nI feel anxious\n/quit\n"
	out, err := execute(t, input, "chat", "--option-delay", "1ms", "--text-delay", "1ms")
	require.NoError(t, err)

	assert.Contains(t, out, chat.Greeting)
	assert.Contains(t, out, "You: "+option.Label)
	assert.Contains(t, out, option.Response)
	assert.Contains(t, out, "You: I feel anxious")
	assert.Contains(t, out, "Start Over")
}

func TestChatReset(t *testing.T) {
	input := "hello\n/reset\n/quit\n"
	out, err := execute(t, input, "chat", "--option-delay", "1ms", "--text-delay", "1ms")
	require.NoError(t, err)
	assert.Contains(t, out, "-- conversation restarted --")
	assert.Equal(t, 2, strings.Count(out, chat.Greeting))
}

func TestPagesNavigation(t *testing.T) {
	out, err := execute(t, "", "pages")
	require.NoError(t, err)
	for _, id := range content.RequiredPages {
		assert.Contains(t, out, id)
	}
}

func TestPagesYAMLFallsBackToHome(t *testing.T) {
	out, err := execute(t, "", "pages", "nowhere", "-o", "yaml")
	require.NoError(t, err)

	var page map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &page))
	assert.Equal(t, content.PageHome, page["id"])
}

func TestPagesUnknownFormat(t *testing.T) {
	_, err := execute(t, "", "pages", "about", "-o", "xml")
	assert.Error(t, err)
}
