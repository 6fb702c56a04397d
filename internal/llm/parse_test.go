package llm

import (
	"errors"
	"testing"
	"time"
)

const validReply = `{
	"personality_type": "Explorer",
	"personality_summary": "Curious and hands-on.",
	"strengths": ["curiosity", "persistence"],
	"suggested_hobbies": [
		{"hobby": "rock climbing", "reason": "you prefer active challenges"},
		{"hobby": "photography", "reason": "you notice details"}
	],
	"generated_at": "2020-01-01T00:00:00Z"
}`

func TestParseRecommendation_Bare(t *testing.T) {
	result, err := ParseRecommendation(validReply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PersonalityType != "Explorer" {
		t.Fatalf("unexpected personality type: %q", result.PersonalityType)
	}
	if len(result.Strengths) != 2 || result.Strengths[0] != "curiosity" {
		t.Fatalf("unexpected strengths: %v", result.Strengths)
	}
	if len(result.SuggestedHobbies) != 2 {
		t.Fatalf("expected 2 hobbies, got %d", len(result.SuggestedHobbies))
	}
	if result.SuggestedHobbies[0].Hobby != "rock climbing" {
		t.Fatalf("unexpected hobby: %q", result.SuggestedHobbies[0].Hobby)
	}
}

func TestParseRecommendation_FencedEqualsBare(t *testing.T) {
	bare, err := ParseRecommendation(validReply)
	if err != nil {
		t.Fatalf("unexpected error on bare reply: %v", err)
	}

	for _, fenced := range []string{
		"```json\n" + validReply + "\n```",
		"```\n" + validReply + "\n```",
		"  ```json\n" + validReply + "\n```  \n",
	} {
		got, err := ParseRecommendation(fenced)
		if err != nil {
			t.Fatalf("unexpected error on fenced reply: %v", err)
		}
		if got.PersonalityType != bare.PersonalityType ||
			got.PersonalitySummary != bare.PersonalitySummary ||
			len(got.Strengths) != len(bare.Strengths) ||
			len(got.SuggestedHobbies) != len(bare.SuggestedHobbies) {
			t.Fatalf("fenced reply parsed differently: %+v vs %+v", got, bare)
		}
	}
}

func TestParseRecommendation_MissingHobbies(t *testing.T) {
	reply := `{"personality_type": "Explorer", "personality_summary": "s", "strengths": []}`
	_, err := ParseRecommendation(reply)

	var format *ErrFormatInvalid
	if !errors.As(err, &format) {
		t.Fatalf("expected ErrFormatInvalid, got %v", err)
	}
}

func TestParseRecommendation_MalformedJSON(t *testing.T) {
	_, err := ParseRecommendation("I think you would enjoy gardening!")

	var format *ErrFormatInvalid
	if !errors.As(err, &format) {
		t.Fatalf("expected ErrFormatInvalid, got %v", err)
	}
}

func TestParseRecommendation_WrongFieldTypes(t *testing.T) {
	cases := map[string]string{
		"strengths not array":   `{"personality_type":"t","personality_summary":"s","strengths":"many","suggested_hobbies":[]}`,
		"type not string":       `{"personality_type":7,"personality_summary":"s","strengths":[],"suggested_hobbies":[]}`,
		"hobby not object":      `{"personality_type":"t","personality_summary":"s","strengths":[],"suggested_hobbies":["chess"]}`,
		"hobby missing reason":  `{"personality_type":"t","personality_summary":"s","strengths":[],"suggested_hobbies":[{"hobby":"chess"}]}`,
		"strength not a string": `{"personality_type":"t","personality_summary":"s","strengths":[1],"suggested_hobbies":[]}`,
	}
	for name, reply := range cases {
		_, err := ParseRecommendation(reply)
		var format *ErrFormatInvalid
		if !errors.As(err, &format) {
			t.Fatalf("%s: expected ErrFormatInvalid, got %v", name, err)
		}
	}
}

func TestParseRecommendation_IgnoresExtraFieldsAndEngineTimestamp(t *testing.T) {
	reply := `{
		"personality_type": "Explorer",
		"personality_summary": "s",
		"strengths": [],
		"suggested_hobbies": [],
		"generated_at": "1999-01-01T00:00:00Z",
		"confidence": 0.9
	}`
	result, err := ParseRecommendation(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The engine's own timestamp is untrusted; the result is stamped locally.
	if time.Since(result.GeneratedAt) > time.Minute {
		t.Fatalf("expected local timestamp, got %v", result.GeneratedAt)
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```JSON\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  \n```json\n{\"a\":1}\n```\n ", "{\"a\":1}"},
	}
	for _, tc := range cases {
		if got := stripFences(tc.in); got != tc.want {
			t.Fatalf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
