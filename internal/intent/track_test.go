package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTrackRequest(t *testing.T) {
	tests := map[string]string{
		"I want to track yoga":                    "yoga",
		"i would like to start tracking pottery":  "pottery",
		"Add journaling to my habits":             "journaling",
		"start tracking cold showers daily":       "cold showers",
		"Begin tracking flossing.":                "flossing",
		"Track water intake for me":               "water intake",
		"I want to track my daily reading habit!": "reading",
		"wanna track push-ups":                    "push-ups",
		"Let's start tracking meditation":         "meditation",
		"I'd like to track meditation":            "meditation",
		"Add reading to my daily habits":          "reading",
		"add stretching to my morning habit list": "stretching",
		"Please start tracking yoga":              "yoga",
		"Hey, I want to track yoga":               "yoga",
		"Can you track yoga for me?":              "yoga",
		"ok so let's track coding every day":      "coding",
	}
	for text, want := range tests {
		name, ok := DetectTrackRequest(text)
		assert.True(t, ok, "text=%q", text)
		assert.Equal(t, want, name, "text=%q", text)
	}
}

func TestDetectTrackRequest_Rejects(t *testing.T) {
	long := "i want to track " + strings.Repeat("x", MaxActivityNameLen)
	for _, text := range []string{
		"track",
		"I want to track",
		"I want to track my daily habit",
		"Did 2 coding questions",
		"how do you track streaks?",
		"Hey, how do you track streaks?",
		"Do you track sleep?",
		"did I track yoga yesterday",
		"please",
		"tracking yoga went well",
		long,
	} {
		_, ok := DetectTrackRequest(text)
		assert.False(t, ok, "text=%q", text)
	}
}

func TestDetectTrackRequest_NameLengthCountsCharacters(t *testing.T) {
	name := strings.Repeat("é", MaxActivityNameLen-1)
	got, ok := DetectTrackRequest("I want to track " + name)
	assert.True(t, ok)
	assert.Equal(t, name, got)

	_, ok = DetectTrackRequest("I want to track " + strings.Repeat("é", MaxActivityNameLen))
	assert.False(t, ok)
}

func TestIsGeneralQuery(t *testing.T) {
	assert.True(t, IsGeneralQuery("What's the capital of France?", nil))
	assert.True(t, IsGeneralQuery("tell me a joke", nil))
	assert.False(t, IsGeneralQuery("Did 2 coding questions", nil))
	assert.False(t, IsGeneralQuery("slept badly yesterday", nil))
}

func TestIsGeneralQuery_KnownActivityIsHabitRelated(t *testing.T) {
	assert.True(t, IsGeneralQuery("how is pottery going", nil))
	assert.False(t, IsGeneralQuery("how is pottery going", []string{"pottery"}))
}

func TestIsGeneralQuery_CommandsAreHabitRelated(t *testing.T) {
	assert.False(t, IsGeneralQuery("please delete pottery", nil))
	assert.False(t, IsGeneralQuery("rename pottery to ceramics", nil))
}
