package llm

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"headline":"test"}`,
			want:  `{"headline":"test"}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"headline\":\"test\"}\n```",
			want:  `{"headline":"test"}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"headline\":\"test\"}\n```",
			want:  `{"headline":"test"}`,
		},
		{
			name:  "trims surrounding whitespace",
			input: "  {\"headline\":\"test\"}  ",
			want:  `{"headline":"test"}`,
		},
		{
			name:  "drops prose around the object",
			input: "Here is the brief:\n{\"headline\":\"test\"}\nLet me know.",
			want:  `{"headline":"test"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var out struct {
		Headline string            `json:"headline"`
		Sections map[string]string `json:"sections"`
	}

	err := DecodeJSON("```json\n{\"headline\": \"Rotation, Not Retreat\", \"sections\": {\"the_day\": \"Quiet.\"}}\n```", &out)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Rotation, Not Retreat", out.Headline)
	assert.Equal(t, "Quiet.", out.Sections["the_day"])
}

func TestDecodeJSONRejectsInvalidReply(t *testing.T) {
	var out map[string]any

	err := DecodeJSON("I could not write the brief today.", &out)

	assert.NotEqual(t, nil, err)
}
